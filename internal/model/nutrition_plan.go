package model

import "time"

type Food struct {
	Name     string  `json:"nombre"`
	Quantity string  `json:"cantidad,omitempty"`
	Calories float64 `json:"calorias,omitempty"`
	Protein  float64 `json:"proteinas,omitempty"`
	Carbs    float64 `json:"carbohidratos,omitempty"`
	Fat      float64 `json:"grasas,omitempty"`
}

type Meal struct {
	Name     string `json:"nombre"`
	Schedule string `json:"horario,omitempty"`
	Foods    []Food `json:"alimentos"`
	Notes    string `json:"notas,omitempty"`
}

// Calories sums the calories of every food in the meal.
func (m Meal) Calories() float64 {
	var total float64
	for _, f := range m.Foods {
		total += f.Calories
	}
	return total
}

type NutritionPlan struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"usuarioId,omitempty"`
	Name           string     `json:"nombre"`
	Description    string     `json:"descripcion,omitempty"`
	Meals          []Meal     `json:"comidas"`
	TargetCalories int        `json:"caloriasObjetivo,omitempty"`
	Active         bool       `json:"activo"`
	CreatedAt      *time.Time `json:"fechaCreacion,omitempty"`
	UpdatedAt      *time.Time `json:"fechaActualizacion,omitempty"`
}

// Calories sums the calories of every meal in the plan.
func (p NutritionPlan) Calories() float64 {
	var total float64
	for _, m := range p.Meals {
		total += m.Calories()
	}
	return total
}

type CreateNutritionPlanRequest struct {
	Name           string `json:"nombre"`
	Description    string `json:"descripcion,omitempty"`
	Meals          []Meal `json:"comidas"`
	TargetCalories int    `json:"caloriasObjetivo,omitempty"`
}

type UpdateNutritionPlanRequest struct {
	Name           *string `json:"nombre,omitempty"`
	Description    *string `json:"descripcion,omitempty"`
	Meals          []Meal  `json:"comidas,omitempty"`
	TargetCalories *int    `json:"caloriasObjetivo,omitempty"`
	Active         *bool   `json:"activo,omitempty"`
}
