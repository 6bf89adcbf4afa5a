package questionnaire

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/Dianagomez24/FrontFilLife/internal/model"
	"github.com/Dianagomez24/FrontFilLife/internal/validation"
)

// Draft holds the raw answers. Option fields carry the option values.
type Draft struct {
	Age              string
	Sex              string
	Weight           string
	Height           string
	ActivityLevel    string
	Goal             string
	Experience       string
	Conditions       []string
	Limitations      string
	Medications      string
	Injuries         string
	TimeAvailability string
	Location         string
}

func DraftFromValues(v url.Values) Draft {
	return Draft{
		Age:              v.Get("edad"),
		Sex:              v.Get("sexo"),
		Weight:           v.Get("peso"),
		Height:           v.Get("altura"),
		ActivityLevel:    v.Get("nivelActividad"),
		Goal:             v.Get("objetivo"),
		Experience:       v.Get("experiencia"),
		Conditions:       v["enfermedades"],
		Limitations:      v.Get("limitaciones"),
		Medications:      v.Get("medicamentos"),
		Injuries:         v.Get("lesiones"),
		TimeAvailability: v.Get("disponibilidadTiempo"),
		Location:         v.Get("lugarEntrenamiento"),
	}
}

// Values is the inverse of DraftFromValues, for carrying the draft between steps.
func (d Draft) Values() url.Values {
	v := url.Values{}
	set := func(k, s string) {
		if s != "" {
			v.Set(k, s)
		}
	}
	set("edad", d.Age)
	set("sexo", d.Sex)
	set("peso", d.Weight)
	set("altura", d.Height)
	set("nivelActividad", d.ActivityLevel)
	set("objetivo", d.Goal)
	set("experiencia", d.Experience)
	set("limitaciones", d.Limitations)
	set("medicamentos", d.Medications)
	set("lesiones", d.Injuries)
	set("disponibilidadTiempo", d.TimeAvailability)
	set("lugarEntrenamiento", d.Location)
	for _, c := range d.Conditions {
		v.Add("enfermedades", c)
	}
	return v
}

func (d Draft) HasCondition(c string) bool {
	return slices.Contains(d.Conditions, c)
}

// missing lists the required fields of step that are blank or invalid.
func (d Draft) missing(step Step) []string {
	var out []string
	switch step {
	case StepBasics:
		if n, ok, err := validation.ParseInt(d.Age); !ok || err != nil || n <= 0 {
			out = append(out, "edad")
		}
		if !has(SexOptions, d.Sex) {
			out = append(out, "sexo")
		}
		if f, ok, err := validation.ParseFloat(d.Weight); !ok || err != nil || f <= 0 {
			out = append(out, "peso")
		}
		if f, ok, err := validation.ParseFloat(d.Height); !ok || err != nil || f <= 0 {
			out = append(out, "altura")
		}
	case StepActivity:
		if !has(ActivityOptions, d.ActivityLevel) {
			out = append(out, "nivelActividad")
		}
		if !has(GoalOptions, d.Goal) {
			out = append(out, "objetivo")
		}
		if !has(ExperienceOptions, d.Experience) {
			out = append(out, "experiencia")
		}
	case StepAvailability:
		if !has(AvailabilityOptions, d.TimeAvailability) {
			out = append(out, "disponibilidadTiempo")
		}
		if !has(LocationOptions, d.Location) {
			out = append(out, "lugarEntrenamiento")
		}
	}
	return out
}

func (d Draft) BMI() (float64, bool) {
	w, _, _ := validation.ParseFloat(d.Weight)
	h, _, _ := validation.ParseFloat(d.Height)
	return BMI(w, h)
}

var (
	sexToModel = map[string]model.Sex{
		"masculino": model.SexMale,
		"femenino":  model.SexFemale,
		"otro":      model.SexOther,
	}
	activityToModel = map[string]model.ActivityLevel{
		"sedentario": model.ActivitySedentary,
		"ligero":     model.ActivityLight,
		"moderado":   model.ActivityModerate,
		"activo":     model.ActivityIntense,
	}
	experienceToModel = map[string]model.Experience{
		"principiante": model.ExperienceBeginner,
		"intermedio":   model.ExperienceIntermediate,
		"avanzado":     model.ExperienceAdvanced,
	}
)

// Limitations sections. The backend has a single free-text field for everything
// in steps 3 and 4, so each answer is stored under its own label.
const (
	secConditions   = "Condiciones"
	secLimitations  = "Limitaciones"
	secMedications  = "Medicamentos"
	secInjuries     = "Lesiones"
	secAvailability = "Disponibilidad"
	secLocation     = "Lugar"
	secSeparator    = "; "
)

func (d Draft) limitationsText() string {
	var parts []string
	add := func(label, value string) {
		if value = strings.TrimSpace(value); value != "" {
			parts = append(parts, label+": "+value)
		}
	}
	var conditions []string
	for _, c := range d.Conditions {
		if c != NoCondition {
			conditions = append(conditions, c)
		}
	}
	add(secConditions, strings.Join(conditions, ", "))
	add(secLimitations, d.Limitations)
	add(secMedications, d.Medications)
	add(secInjuries, d.Injuries)
	add(secAvailability, d.TimeAvailability)
	add(secLocation, d.Location)
	return strings.Join(parts, secSeparator)
}

// Request maps a complete draft to the create payload.
func (d Draft) Request() model.CreateHealthProfileRequest {
	age, _, _ := validation.ParseInt(d.Age)
	weight, _, _ := validation.ParseFloat(d.Weight)
	height, _, _ := validation.ParseFloat(d.Height)
	return model.CreateHealthProfileRequest{
		Age:           age,
		Sex:           sexToModel[d.Sex],
		Weight:        weight,
		Height:        height,
		ActivityLevel: activityToModel[d.ActivityLevel],
		Goal:          d.Goal,
		Experience:    experienceToModel[d.Experience],
		Limitations:   d.limitationsText(),
	}
}

// DraftFromProfile prefills the questionnaire for editing.
func DraftFromProfile(p model.HealthProfile) Draft {
	d := Draft{
		Age:    strconv.Itoa(p.Age),
		Weight: strconv.FormatFloat(p.Weight, 'f', -1, 64),
		Height: strconv.FormatFloat(p.Height, 'f', -1, 64),
		Goal:   p.Goal,
	}
	d.Sex = reverse(sexToModel, p.Sex)
	d.ActivityLevel = reverse(activityToModel, p.ActivityLevel)
	d.Experience = reverse(experienceToModel, p.Experience)

	sections := parseLimitations(p.Limitations)
	if c := sections[secConditions]; c != "" {
		d.Conditions = strings.Split(c, ", ")
	}
	d.Limitations = sections[secLimitations]
	d.Medications = sections[secMedications]
	d.Injuries = sections[secInjuries]
	d.TimeAvailability = sections[secAvailability]
	d.Location = sections[secLocation]
	return d
}

// parseLimitations splits the labelled sections. Text without a known label is kept
// as a plain limitation.
func parseLimitations(s string) map[string]string {
	out := map[string]string{}
	if strings.TrimSpace(s) == "" {
		return out
	}
	known := []string{secConditions, secLimitations, secMedications, secInjuries, secAvailability, secLocation}
	var loose []string
	for _, part := range strings.Split(s, secSeparator) {
		label, value, found := strings.Cut(part, ": ")
		if found && slices.Contains(known, label) {
			out[label] = value
			continue
		}
		loose = append(loose, part)
	}
	if len(loose) > 0 && out[secLimitations] == "" {
		out[secLimitations] = strings.Join(loose, secSeparator)
	}
	return out
}

func reverse[V comparable](m map[string]V, v V) string {
	for k, mv := range m {
		if mv == v {
			return k
		}
	}
	return ""
}
