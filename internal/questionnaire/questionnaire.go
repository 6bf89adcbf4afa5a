// Package questionnaire drives the multi-step health questionnaire.
package questionnaire

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dianagomez24/FrontFilLife/internal/model"
)

type Step int

const (
	StepIntro Step = iota
	StepBasics
	StepActivity
	StepHealth
	StepAvailability
	StepProfile
)

// LastStep is the final input step before submission.
const LastStep = StepAvailability

var ErrStepIncomplete = errors.New("required fields missing")

// IncompleteError names the fields that keep a step from advancing.
type IncompleteError struct {
	Step   Step
	Fields []string
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("step %d: %v: %v", e.Step, ErrStepIncomplete, e.Fields)
}

func (e *IncompleteError) Unwrap() error {
	return ErrStepIncomplete
}

type Saver interface {
	Save(ctx context.Context, req model.CreateHealthProfileRequest) (*model.HealthProfile, error)
}

type Questionnaire struct {
	step    Step
	Draft   Draft
	profile *model.HealthProfile
}

func New() *Questionnaire {
	return &Questionnaire{step: StepIntro}
}

// Resume opens straight into the profile view when the user already has one.
func Resume(profile *model.HealthProfile) *Questionnaire {
	if profile == nil {
		return New()
	}
	return &Questionnaire{
		step:    StepProfile,
		Draft:   DraftFromProfile(*profile),
		profile: profile,
	}
}

// At restores an in-progress questionnaire. Out of range steps clamp to the intro.
func At(step Step, draft Draft) *Questionnaire {
	if step < StepIntro || step > LastStep {
		step = StepIntro
	}
	return &Questionnaire{step: step, Draft: draft}
}

func (q *Questionnaire) Step() Step {
	return q.step
}

func (q *Questionnaire) Profile() *model.HealthProfile {
	return q.profile
}

// Missing lists the required fields of the current step that still need an answer.
func (q *Questionnaire) Missing() []string {
	return q.Draft.missing(q.step)
}

func (q *Questionnaire) CanAdvance() bool {
	return q.step < StepProfile && len(q.Missing()) == 0
}

// Next advances one step. It stays put when the current step is incomplete.
func (q *Questionnaire) Next() error {
	if q.step >= LastStep {
		return nil
	}
	if missing := q.Missing(); len(missing) > 0 {
		return &IncompleteError{Step: q.step, Fields: missing}
	}
	q.step++
	return nil
}

func (q *Questionnaire) Back() {
	if q.step > StepIntro && q.step <= LastStep {
		q.step--
	}
}

// Edit leaves the profile view for step 1 with the draft prefilled.
func (q *Questionnaire) Edit() {
	if q.profile != nil {
		q.Draft = DraftFromProfile(*q.profile)
	}
	q.step = StepBasics
}

// Submit checks every step, saves the profile and switches to the profile view.
func (q *Questionnaire) Submit(ctx context.Context, saver Saver) (*model.HealthProfile, error) {
	for step := StepBasics; step <= LastStep; step++ {
		if missing := q.Draft.missing(step); len(missing) > 0 {
			q.step = step
			return nil, &IncompleteError{Step: step, Fields: missing}
		}
	}

	req := q.Draft.Request()
	profile, err := saver.Save(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to save health profile: %w", err)
	}
	if profile == nil || profile.Age == 0 {
		// the backend only acknowledged; show what was submitted
		profile = &model.HealthProfile{
			Age:           req.Age,
			Sex:           req.Sex,
			Weight:        req.Weight,
			Height:        req.Height,
			ActivityLevel: req.ActivityLevel,
			Goal:          req.Goal,
			Experience:    req.Experience,
			Limitations:   req.Limitations,
		}
	}
	q.profile = profile
	q.step = StepProfile
	return profile, nil
}
