package model

type User struct {
	ID               int64  `json:"id"`
	Name             string `json:"nombre"`
	Surname          string `json:"apellidos"`
	Email            string `json:"email"`
	HasHealthData    bool   `json:"hasHealthData"`
	HasExercisePlan  bool   `json:"hasExercisePlan"`
	HasNutritionPlan bool   `json:"hasNutritionPlan"`
}

func (u *User) FullName() string {
	if u.Surname == "" {
		return u.Name
	}
	return u.Name + " " + u.Surname
}

type UserProfile struct {
	ID            int64          `json:"id"`
	Name          string         `json:"nombre"`
	Surname       string         `json:"apellidos"`
	Email         string         `json:"email"`
	HealthProfile *HealthProfile `json:"datosFisicos,omitempty"`
}

type UpdateUserRequest struct {
	Name    *string `json:"nombre,omitempty"`
	Surname *string `json:"apellidos,omitempty"`
	Email   *string `json:"email,omitempty"`
}
