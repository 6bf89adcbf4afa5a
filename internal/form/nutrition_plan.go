package form

import (
	"net/url"
	"strconv"

	"github.com/Dianagomez24/FrontFilLife/internal/model"
)

type FoodDraft struct {
	Name     string
	Quantity string
	Calories string
	Protein  string
	Carbs    string
	Fat      string
}

type MealDraft struct {
	Name     string
	Schedule string
	Notes    string
	Foods    []FoodDraft
}

type NutritionPlanDraft struct {
	Name           string
	Description    string
	TargetCalories string
	Meals          []MealDraft
}

func newMealRow() MealDraft {
	return MealDraft{Foods: []FoodDraft{{}}}
}

func NewNutritionPlanDraft() *NutritionPlanDraft {
	return &NutritionPlanDraft{
		TargetCalories: "2000",
		Meals:          []MealDraft{newMealRow()},
	}
}

// NutritionPlanDraftFromValues reads the form post. Each food row carries the index
// of its meal in "alimento_comida".
func NutritionPlanDraftFromValues(v url.Values) *NutritionPlanDraft {
	d := &NutritionPlanDraft{
		Name:           v.Get("nombre"),
		Description:    v.Get("descripcion"),
		TargetCalories: v.Get("caloriasObjetivo"),
	}
	for i := range v["comida_nombre"] {
		d.Meals = append(d.Meals, MealDraft{
			Name:     column(v, "comida_nombre", i),
			Schedule: column(v, "comida_horario", i),
			Notes:    column(v, "comida_notas", i),
		})
	}
	for i := range v["alimento_nombre"] {
		meal, err := strconv.Atoi(column(v, "alimento_comida", i))
		if err != nil || meal < 0 || meal >= len(d.Meals) {
			continue
		}
		d.Meals[meal].Foods = append(d.Meals[meal].Foods, FoodDraft{
			Name:     column(v, "alimento_nombre", i),
			Quantity: column(v, "alimento_cantidad", i),
			Calories: column(v, "alimento_calorias", i),
			Protein:  column(v, "alimento_proteinas", i),
			Carbs:    column(v, "alimento_carbohidratos", i),
			Fat:      column(v, "alimento_grasas", i),
		})
	}
	if len(d.Meals) == 0 {
		d.Meals = []MealDraft{newMealRow()}
	}
	for i := range d.Meals {
		if len(d.Meals[i].Foods) == 0 {
			d.Meals[i].Foods = []FoodDraft{{}}
		}
	}
	return d
}

func NutritionPlanDraftFromPlan(p model.NutritionPlan) *NutritionPlanDraft {
	d := &NutritionPlanDraft{
		Name:           p.Name,
		Description:    p.Description,
		TargetCalories: formatInt(p.TargetCalories),
	}
	for _, m := range p.Meals {
		meal := MealDraft{Name: m.Name, Schedule: m.Schedule, Notes: m.Notes}
		for _, f := range m.Foods {
			meal.Foods = append(meal.Foods, FoodDraft{
				Name:     f.Name,
				Quantity: f.Quantity,
				Calories: formatFloat(f.Calories),
				Protein:  formatFloat(f.Protein),
				Carbs:    formatFloat(f.Carbs),
				Fat:      formatFloat(f.Fat),
			})
		}
		if len(meal.Foods) == 0 {
			meal.Foods = []FoodDraft{{}}
		}
		d.Meals = append(d.Meals, meal)
	}
	if len(d.Meals) == 0 {
		d.Meals = []MealDraft{newMealRow()}
	}
	return d
}

func (d *NutritionPlanDraft) AddMeal() {
	d.Meals = append(d.Meals, newMealRow())
}

func (d *NutritionPlanDraft) RemoveMeal(i int) error {
	rows, err := removeAt(d.Meals, i)
	if err != nil {
		return err
	}
	d.Meals = rows
	return nil
}

func (d *NutritionPlanDraft) AddFood(meal int) error {
	if meal < 0 || meal >= len(d.Meals) {
		return ErrRowNotFound
	}
	d.Meals[meal].Foods = append(d.Meals[meal].Foods, FoodDraft{})
	return nil
}

func (d *NutritionPlanDraft) RemoveFood(meal, i int) error {
	if meal < 0 || meal >= len(d.Meals) {
		return ErrRowNotFound
	}
	rows, err := removeAt(d.Meals[meal].Foods, i)
	if err != nil {
		return err
	}
	d.Meals[meal].Foods = rows
	return nil
}

func (d *NutritionPlanDraft) Validate() Errors {
	errs := Errors{}
	errs.required("nombre", d.Name)
	errs.required("descripcion", d.Description)
	errs.integer("caloriasObjetivo", d.TargetCalories)
	if len(d.Meals) == 0 {
		errs["comidas"] = "Agrega al menos una comida"
	}
	for i, m := range d.Meals {
		prefix := field("comidas", i, "")
		errs.required(prefix+"nombre", m.Name)
		if len(m.Foods) == 0 {
			errs[prefix+"alimentos"] = "Agrega al menos un alimento"
		}
		for j, f := range m.Foods {
			errs.required(field(prefix+"alimentos", j, "nombre"), f.Name)
			errs.decimal(field(prefix+"alimentos", j, "calorias"), f.Calories)
			errs.decimal(field(prefix+"alimentos", j, "proteinas"), f.Protein)
			errs.decimal(field(prefix+"alimentos", j, "carbohidratos"), f.Carbs)
			errs.decimal(field(prefix+"alimentos", j, "grasas"), f.Fat)
		}
	}
	return errs
}

func (d *NutritionPlanDraft) Valid() bool {
	return len(d.Validate()) == 0
}

// Calories totals the drafted food calories, ignoring unparsable input.
func (d *NutritionPlanDraft) Calories() float64 {
	var total float64
	for _, m := range d.Meals {
		for _, f := range m.Foods {
			total += atFloat(f.Calories)
		}
	}
	return total
}

func (d *NutritionPlanDraft) meals() []model.Meal {
	out := make([]model.Meal, 0, len(d.Meals))
	for _, m := range d.Meals {
		meal := model.Meal{
			Name:     trim(m.Name),
			Schedule: trim(m.Schedule),
			Notes:    trim(m.Notes),
			Foods:    make([]model.Food, 0, len(m.Foods)),
		}
		for _, f := range m.Foods {
			meal.Foods = append(meal.Foods, model.Food{
				Name:     trim(f.Name),
				Quantity: trim(f.Quantity),
				Calories: atFloat(f.Calories),
				Protein:  atFloat(f.Protein),
				Carbs:    atFloat(f.Carbs),
				Fat:      atFloat(f.Fat),
			})
		}
		out = append(out, meal)
	}
	return out
}

func (d *NutritionPlanDraft) CreateRequest() (model.CreateNutritionPlanRequest, error) {
	if !d.Valid() {
		return model.CreateNutritionPlanRequest{}, ErrInvalid
	}
	return model.CreateNutritionPlanRequest{
		Name:           trim(d.Name),
		Description:    trim(d.Description),
		Meals:          d.meals(),
		TargetCalories: atInt(d.TargetCalories),
	}, nil
}

func (d *NutritionPlanDraft) UpdateRequest() (model.UpdateNutritionPlanRequest, error) {
	req, err := d.CreateRequest()
	if err != nil {
		return model.UpdateNutritionPlanRequest{}, err
	}
	return model.UpdateNutritionPlanRequest{
		Name:           &req.Name,
		Description:    &req.Description,
		Meals:          req.Meals,
		TargetCalories: &req.TargetCalories,
	}, nil
}
