package pages

import (
	"strings"

	"github.com/Dianagomez24/FrontFilLife/internal/model"
	"github.com/Dianagomez24/FrontFilLife/internal/questionnaire"
	"github.com/Dianagomez24/FrontFilLife/internal/ui"
)

type StepInfo struct {
	Number int
	Title  string
}

var questionnaireSteps = []StepInfo{
	{int(questionnaire.StepBasics), "Datos básicos"},
	{int(questionnaire.StepActivity), "Actividad y objetivos"},
	{int(questionnaire.StepHealth), "Salud"},
	{int(questionnaire.StepAvailability), "Disponibilidad"},
}

type SummaryRow struct {
	Label string
	Value string
}

type HealthProps struct {
	Step      int
	LastStep  int
	Steps     []StepInfo
	Draft     questionnaire.Draft
	Missing   map[string]bool
	Profile   *model.HealthProfile
	Summary   []SummaryRow
	BMI       float64
	HasBMI    bool
	BMILabel  string
	Error     string
	Sexes     []questionnaire.Option
	Activity  []questionnaire.Option
	Goals     []questionnaire.Option
	Levels    []questionnaire.Option
	Times     []questionnaire.Option
	Locations []questionnaire.Option
	Diseases  []string
}

// Health renders the questionnaire at its current step, or the saved profile.
func Health(q *questionnaire.Questionnaire, errMsg string) ui.View {
	p := HealthProps{
		Step:      int(q.Step()),
		LastStep:  int(questionnaire.LastStep),
		Steps:     questionnaireSteps,
		Draft:     q.Draft,
		Missing:   map[string]bool{},
		Profile:   q.Profile(),
		Error:     errMsg,
		Sexes:     questionnaire.SexOptions,
		Activity:  questionnaire.ActivityOptions,
		Goals:     questionnaire.GoalOptions,
		Levels:    questionnaire.ExperienceOptions,
		Times:     questionnaire.AvailabilityOptions,
		Locations: questionnaire.LocationOptions,
		Diseases:  questionnaire.ConditionOptions,
	}
	if errMsg != "" {
		for _, f := range q.Missing() {
			p.Missing[f] = true
		}
	}
	p.BMI, p.HasBMI = q.Draft.BMI()
	if p.HasBMI {
		p.BMILabel = questionnaire.BMICategory(p.BMI)
	}
	if p.Profile != nil && q.Step() == questionnaire.StepProfile {
		p.Summary = HealthSummary(q.Draft)
	}
	return ui.NewView("health", "Cuestionario de salud", p)
}

// HealthSummary lists the answers of a complete draft for display. Empty optional answers are left out.
func HealthSummary(d questionnaire.Draft) []SummaryRow {
	rows := []SummaryRow{
		{"Edad", d.Age + " años"},
		{"Sexo", questionnaire.Label(questionnaire.SexOptions, d.Sex)},
		{"Peso", d.Weight + " kg"},
		{"Altura", d.Height + " cm"},
		{"Nivel de actividad", questionnaire.Label(questionnaire.ActivityOptions, d.ActivityLevel)},
		{"Objetivo", questionnaire.Label(questionnaire.GoalOptions, d.Goal)},
		{"Experiencia", questionnaire.Label(questionnaire.ExperienceOptions, d.Experience)},
	}
	optional := []SummaryRow{
		{"Condiciones", strings.Join(d.Conditions, ", ")},
		{"Limitaciones", d.Limitations},
		{"Medicamentos", d.Medications},
		{"Lesiones", d.Injuries},
		{"Disponibilidad", questionnaire.Label(questionnaire.AvailabilityOptions, d.TimeAvailability)},
		{"Lugar de entrenamiento", questionnaire.Label(questionnaire.LocationOptions, d.Location)},
	}
	for _, r := range optional {
		if r.Value != "" {
			rows = append(rows, r)
		}
	}
	return rows
}
