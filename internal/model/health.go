package model

type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
	SexOther  Sex = "Otro"
)

type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "Sedentario"
	ActivityLight     ActivityLevel = "Ligero"
	ActivityModerate  ActivityLevel = "Moderado"
	ActivityIntense   ActivityLevel = "Intenso"
)

type Experience string

const (
	ExperienceBeginner     Experience = "Principiante"
	ExperienceIntermediate Experience = "Intermedio"
	ExperienceAdvanced     Experience = "Avanzado"
)

// HealthProfile is the questionnaire-derived record of a user's physical data.
// There is at most one per user.
type HealthProfile struct {
	ID            int64         `json:"id,omitempty"`
	UserID        int64         `json:"usuarioId,omitempty"`
	Age           int           `json:"edad"`
	Sex           Sex           `json:"sexo"`
	Weight        float64       `json:"peso"`
	Height        float64       `json:"altura"`
	ActivityLevel ActivityLevel `json:"nivelActividad"`
	Goal          string        `json:"objetivo,omitempty"`
	Experience    Experience    `json:"experiencia,omitempty"`
	Limitations   string        `json:"limitaciones,omitempty"`
}

type CreateHealthProfileRequest struct {
	Age           int           `json:"edad"`
	Sex           Sex           `json:"sexo"`
	Weight        float64       `json:"peso"`
	Height        float64       `json:"altura"`
	ActivityLevel ActivityLevel `json:"nivelActividad"`
	Goal          string        `json:"objetivo,omitempty"`
	Experience    Experience    `json:"experiencia,omitempty"`
	Limitations   string        `json:"limitaciones,omitempty"`
}

type UpdateHealthProfileRequest struct {
	Age           *int           `json:"edad,omitempty"`
	Sex           *Sex           `json:"sexo,omitempty"`
	Weight        *float64       `json:"peso,omitempty"`
	Height        *float64       `json:"altura,omitempty"`
	ActivityLevel *ActivityLevel `json:"nivelActividad,omitempty"`
	Goal          *string        `json:"objetivo,omitempty"`
	Experience    *Experience    `json:"experiencia,omitempty"`
	Limitations   *string        `json:"limitaciones,omitempty"`
}

// UpdateFrom builds a full replacement update from a create payload.
func UpdateFrom(req CreateHealthProfileRequest) UpdateHealthProfileRequest {
	return UpdateHealthProfileRequest{
		Age:           &req.Age,
		Sex:           &req.Sex,
		Weight:        &req.Weight,
		Height:        &req.Height,
		ActivityLevel: &req.ActivityLevel,
		Goal:          &req.Goal,
		Experience:    &req.Experience,
		Limitations:   &req.Limitations,
	}
}
