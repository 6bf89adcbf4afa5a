package questionnaire

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Dianagomez24/FrontFilLife/internal/model"
)

type MockSaver struct {
	mock.Mock
}

func (m *MockSaver) Save(ctx context.Context, req model.CreateHealthProfileRequest) (*model.HealthProfile, error) {
	args := m.Called(ctx, req)
	p, _ := args.Get(0).(*model.HealthProfile)
	return p, args.Error(1)
}

func completeDraft() Draft {
	return Draft{
		Age:              "30",
		Sex:              "femenino",
		Weight:           "70",
		Height:           "175",
		ActivityLevel:    "activo",
		Goal:             "ganar-musculo",
		Experience:       "intermedio",
		Conditions:       []string{"Hipertensión", "Diabetes"},
		Injuries:         "Rodilla izquierda",
		TimeAvailability: "45-60min",
		Location:         "gimnasio",
	}
}

func TestBMI(t *testing.T) {
	tests := []struct {
		weight, height float64
		bmi            float64
		category       string
	}{
		{70, 175, 22.9, "Peso normal"},
		{50, 180, 15.4, "Bajo peso"},
		{85, 175, 27.8, "Sobrepeso"},
		{110, 170, 38.1, "Obesidad"},
	}
	for _, tt := range tests {
		bmi, ok := BMI(tt.weight, tt.height)
		require.True(t, ok)
		assert.Equal(t, tt.bmi, bmi)
		assert.Equal(t, tt.category, BMICategory(bmi))
	}

	_, ok := BMI(70, 0)
	assert.False(t, ok)
}

func TestNextBlockedOnIncompleteBasics(t *testing.T) {
	full := completeDraft()
	blanks := map[string]func(d *Draft){
		"edad":   func(d *Draft) { d.Age = "" },
		"sexo":   func(d *Draft) { d.Sex = "" },
		"peso":   func(d *Draft) { d.Weight = " " },
		"altura": func(d *Draft) { d.Height = "" },
	}

	for field, blank := range blanks {
		t.Run(field, func(t *testing.T) {
			d := full
			blank(&d)
			q := At(StepBasics, d)

			err := q.Next()
			assert.ErrorIs(t, err, ErrStepIncomplete)
			assert.Equal(t, StepBasics, q.Step())
			assert.Equal(t, []string{field}, q.Missing())
		})
	}
}

func TestWalkThroughSteps(t *testing.T) {
	q := New()
	assert.Equal(t, StepIntro, q.Step())
	require.NoError(t, q.Next())
	assert.Equal(t, StepBasics, q.Step())

	q.Draft = completeDraft()
	q.Draft.Conditions = nil
	q.Draft.Injuries = ""
	require.NoError(t, q.Next())
	require.NoError(t, q.Next())
	// step 3 is optional
	require.NoError(t, q.Next())
	assert.Equal(t, StepAvailability, q.Step())

	q.Back()
	q.Back()
	assert.Equal(t, StepActivity, q.Step())
	q.Back()
	q.Back()
	q.Back()
	assert.Equal(t, StepIntro, q.Step())
}

func TestActivityStepRequiresAllChoices(t *testing.T) {
	d := completeDraft()
	d.Experience = ""
	q := At(StepActivity, d)
	assert.False(t, q.CanAdvance())
	assert.ErrorIs(t, q.Next(), ErrStepIncomplete)
	assert.Equal(t, StepActivity, q.Step())
}

func TestSubmitSavesAndShowsProfile(t *testing.T) {
	saver := new(MockSaver)
	d := completeDraft()
	want := model.CreateHealthProfileRequest{
		Age:           30,
		Sex:           model.SexFemale,
		Weight:        70,
		Height:        175,
		ActivityLevel: model.ActivityIntense,
		Goal:          "ganar-musculo",
		Experience:    model.ExperienceIntermediate,
		Limitations:   "Condiciones: Hipertensión, Diabetes; Lesiones: Rodilla izquierda; Disponibilidad: 45-60min; Lugar: gimnasio",
	}
	saved := &model.HealthProfile{ID: 1, Age: 30, Sex: model.SexFemale, Weight: 70, Height: 175}
	saver.On("Save", mock.Anything, want).Return(saved, nil).Once()

	q := At(StepAvailability, d)
	p, err := q.Submit(context.Background(), saver)
	require.NoError(t, err)
	assert.Equal(t, saved, p)
	assert.Equal(t, StepProfile, q.Step())
	saver.AssertExpectations(t)
}

func TestSubmitEmptyAckShowsSubmittedAnswers(t *testing.T) {
	saver := new(MockSaver)
	saver.On("Save", mock.Anything, mock.Anything).Return(nil, nil).Once()

	q := At(StepAvailability, completeDraft())
	p, err := q.Submit(context.Background(), saver)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 30, p.Age)
	assert.Equal(t, model.SexFemale, p.Sex)
	assert.Equal(t, StepProfile, q.Step())
	assert.Same(t, p, q.Profile())
}

func TestSubmitJumpsToFirstIncompleteStep(t *testing.T) {
	saver := new(MockSaver)
	d := completeDraft()
	d.Goal = ""

	q := At(StepAvailability, d)
	_, err := q.Submit(context.Background(), saver)

	var incomplete *IncompleteError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, StepActivity, incomplete.Step)
	assert.Equal(t, StepActivity, q.Step())
	saver.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSubmitErrorStaysOnStep(t *testing.T) {
	saver := new(MockSaver)
	saver.On("Save", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	q := At(StepAvailability, completeDraft())
	_, err := q.Submit(context.Background(), saver)
	require.Error(t, err)
	assert.Equal(t, StepAvailability, q.Step())
	assert.Nil(t, q.Profile())
}

func TestResumeAndEdit(t *testing.T) {
	assert.Equal(t, StepIntro, Resume(nil).Step())

	profile := &model.HealthProfile{
		Age:           30,
		Sex:           model.SexFemale,
		Weight:        70.5,
		Height:        175,
		ActivityLevel: model.ActivityModerate,
		Goal:          "fuerza",
		Experience:    model.ExperienceBeginner,
		Limitations:   "Condiciones: Diabetes; Disponibilidad: 15-30min; Lugar: casa",
	}
	q := Resume(profile)
	assert.Equal(t, StepProfile, q.Step())

	q.Edit()
	assert.Equal(t, StepBasics, q.Step())
	assert.Equal(t, "femenino", q.Draft.Sex)
	assert.Equal(t, "70.5", q.Draft.Weight)
	assert.Equal(t, "moderado", q.Draft.ActivityLevel)
	assert.Equal(t, []string{"Diabetes"}, q.Draft.Conditions)
	assert.Equal(t, "15-30min", q.Draft.TimeAvailability)
	assert.Equal(t, "casa", q.Draft.Location)

	// editing and saving again does not duplicate the sections
	assert.Equal(t, profile.Limitations, q.Draft.Request().Limitations)
}

func TestLooseLimitationsKept(t *testing.T) {
	d := DraftFromProfile(model.HealthProfile{Limitations: "Dolor lumbar"})
	assert.Equal(t, "Dolor lumbar", d.Limitations)
}

func TestDraftValuesRoundTrip(t *testing.T) {
	d := completeDraft()
	assert.Equal(t, d, DraftFromValues(d.Values()))
}
