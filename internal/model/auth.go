package model

type RegisterRequest struct {
	Name     string `json:"nombre"`
	Surname  string `json:"apellidos"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

type VerifyEmailRequest struct {
	Token string `json:"token"`
}

type ResendVerificationRequest struct {
	Email string `json:"email"`
}

// Ack is the generic acknowledgement body returned by the backend.
type Ack struct {
	Message string `json:"message,omitempty"`
}
