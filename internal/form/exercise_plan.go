package form

import (
	"net/url"
	"strconv"

	"github.com/Dianagomez24/FrontFilLife/internal/model"
)

type ExerciseDraft struct {
	Name     string
	Sets     string
	Reps     string
	Rest     string
	Weight   string
	Duration string
	Notes    string
}

type ExercisePlanDraft struct {
	Name            string
	Description     string
	DurationMinutes string
	Difficulty      string
	Exercises       []ExerciseDraft
}

func newExerciseRow() ExerciseDraft {
	return ExerciseDraft{Sets: "1"}
}

func NewExercisePlanDraft() *ExercisePlanDraft {
	return &ExercisePlanDraft{
		DurationMinutes: "30",
		Difficulty:      string(model.DifficultyBeginner),
		Exercises:       []ExerciseDraft{newExerciseRow()},
	}
}

// ExercisePlanDraftFromValues reads the form post. Exercise rows come as repeated fields.
func ExercisePlanDraftFromValues(v url.Values) *ExercisePlanDraft {
	d := &ExercisePlanDraft{
		Name:            v.Get("nombre"),
		Description:     v.Get("descripcion"),
		DurationMinutes: v.Get("duracionMinutos"),
		Difficulty:      v.Get("nivelDificultad"),
	}
	for i := range v["ejercicio_nombre"] {
		d.Exercises = append(d.Exercises, ExerciseDraft{
			Name:     column(v, "ejercicio_nombre", i),
			Sets:     column(v, "ejercicio_series", i),
			Reps:     column(v, "ejercicio_repeticiones", i),
			Rest:     column(v, "ejercicio_descanso", i),
			Weight:   column(v, "ejercicio_peso", i),
			Duration: column(v, "ejercicio_duracion", i),
			Notes:    column(v, "ejercicio_notas", i),
		})
	}
	if len(d.Exercises) == 0 {
		d.Exercises = []ExerciseDraft{newExerciseRow()}
	}
	return d
}

// ExercisePlanDraftFromPlan prefills the edit form.
func ExercisePlanDraftFromPlan(p model.ExercisePlan) *ExercisePlanDraft {
	d := &ExercisePlanDraft{
		Name:            p.Name,
		Description:     p.Description,
		DurationMinutes: formatInt(p.DurationMinutes),
		Difficulty:      string(p.Difficulty),
	}
	for _, e := range p.Exercises {
		row := ExerciseDraft{
			Name:  e.Name,
			Sets:  strconv.Itoa(e.Sets),
			Reps:  e.Reps,
			Rest:  e.Rest,
			Notes: e.Notes,
		}
		if e.Weight != nil {
			row.Weight = formatFloat(*e.Weight)
		}
		if e.Duration != nil {
			row.Duration = strconv.Itoa(*e.Duration)
		}
		d.Exercises = append(d.Exercises, row)
	}
	if len(d.Exercises) == 0 {
		d.Exercises = []ExerciseDraft{newExerciseRow()}
	}
	return d
}

func (d *ExercisePlanDraft) AddExercise() {
	d.Exercises = append(d.Exercises, newExerciseRow())
}

func (d *ExercisePlanDraft) RemoveExercise(i int) error {
	rows, err := removeAt(d.Exercises, i)
	if err != nil {
		return err
	}
	d.Exercises = rows
	return nil
}

func (d *ExercisePlanDraft) Validate() Errors {
	errs := Errors{}
	errs.required("nombre", d.Name)
	errs.required("descripcion", d.Description)
	errs.integer("duracionMinutos", d.DurationMinutes)
	if !model.Difficulty(d.Difficulty).Valid() {
		errs["nivelDificultad"] = "Selecciona un nivel de dificultad"
	}
	if len(d.Exercises) == 0 {
		errs["ejercicios"] = "Agrega al menos un ejercicio"
	}
	for i, e := range d.Exercises {
		errs.required(field("ejercicios", i, "nombre"), e.Name)
		errs.required(field("ejercicios", i, "repeticiones"), e.Reps)
		errs.required(field("ejercicios", i, "descanso"), e.Rest)
		errs.integer(field("ejercicios", i, "series"), e.Sets)
		errs.decimal(field("ejercicios", i, "peso"), e.Weight)
		errs.integer(field("ejercicios", i, "duracion"), e.Duration)
	}
	return errs
}

func (d *ExercisePlanDraft) Valid() bool {
	return len(d.Validate()) == 0
}

func (d *ExercisePlanDraft) exercises() []model.Exercise {
	out := make([]model.Exercise, 0, len(d.Exercises))
	for _, e := range d.Exercises {
		out = append(out, model.Exercise{
			Name:     trim(e.Name),
			Sets:     atInt(e.Sets),
			Reps:     trim(e.Reps),
			Rest:     trim(e.Rest),
			Weight:   optFloat(e.Weight),
			Duration: optInt(e.Duration),
			Notes:    trim(e.Notes),
		})
	}
	return out
}

func (d *ExercisePlanDraft) CreateRequest() (model.CreateExercisePlanRequest, error) {
	if !d.Valid() {
		return model.CreateExercisePlanRequest{}, ErrInvalid
	}
	return model.CreateExercisePlanRequest{
		Name:            trim(d.Name),
		Description:     trim(d.Description),
		Exercises:       d.exercises(),
		DurationMinutes: atInt(d.DurationMinutes),
		Difficulty:      model.Difficulty(d.Difficulty),
	}, nil
}

// UpdateRequest sends the whole edited form. The active flag is left alone.
func (d *ExercisePlanDraft) UpdateRequest() (model.UpdateExercisePlanRequest, error) {
	req, err := d.CreateRequest()
	if err != nil {
		return model.UpdateExercisePlanRequest{}, err
	}
	return model.UpdateExercisePlanRequest{
		Name:            &req.Name,
		Description:     &req.Description,
		Exercises:       req.Exercises,
		DurationMinutes: &req.DurationMinutes,
		Difficulty:      &req.Difficulty,
	}, nil
}
