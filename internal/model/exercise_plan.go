package model

import "time"

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "principiante"
	DifficultyIntermediate Difficulty = "intermedio"
	DifficultyAdvanced     Difficulty = "avanzado"
)

// Difficulties lists the levels in display order.
var Difficulties = []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

func (d Difficulty) Label() string {
	switch d {
	case DifficultyBeginner:
		return "Principiante"
	case DifficultyIntermediate:
		return "Intermedio"
	case DifficultyAdvanced:
		return "Avanzado"
	}
	return string(d)
}

type Exercise struct {
	Name     string   `json:"nombre"`
	Sets     int      `json:"series"`
	Reps     string   `json:"repeticiones"`
	Rest     string   `json:"descanso"`
	Weight   *float64 `json:"peso,omitempty"`
	Duration *int     `json:"duracion,omitempty"` // seconds
	Notes    string   `json:"notas,omitempty"`
}

type ExercisePlan struct {
	ID              int64      `json:"id"`
	UserID          int64      `json:"usuarioId,omitempty"`
	Name            string     `json:"nombre"`
	Description     string     `json:"descripcion"`
	Exercises       []Exercise `json:"ejercicios"`
	DurationMinutes int        `json:"duracionMinutos"`
	Difficulty      Difficulty `json:"nivelDificultad"`
	Active          bool       `json:"activo"`
	CreatedAt       *time.Time `json:"fechaCreacion,omitempty"`
	UpdatedAt       *time.Time `json:"fechaActualizacion,omitempty"`
}

type CreateExercisePlanRequest struct {
	Name            string     `json:"nombre"`
	Description     string     `json:"descripcion"`
	Exercises       []Exercise `json:"ejercicios"`
	DurationMinutes int        `json:"duracionMinutos"`
	Difficulty      Difficulty `json:"nivelDificultad"`
}

// UpdateExercisePlanRequest is a partial update: nil fields are left untouched.
type UpdateExercisePlanRequest struct {
	Name            *string     `json:"nombre,omitempty"`
	Description     *string     `json:"descripcion,omitempty"`
	Exercises       []Exercise  `json:"ejercicios,omitempty"`
	DurationMinutes *int        `json:"duracionMinutos,omitempty"`
	Difficulty      *Difficulty `json:"nivelDificultad,omitempty"`
	Active          *bool       `json:"activo,omitempty"`
}
