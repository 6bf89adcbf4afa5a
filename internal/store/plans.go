package store

import (
	"context"
	"errors"
	"sync"

	"github.com/Dianagomez24/FrontFilLife/internal/model"
)

var ErrPlanNotFound = errors.New("plan not found")

// PlanService is the backend resource behind a plan store.
type PlanService[T, C, U any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, req C) (*T, error)
	Update(ctx context.Context, id int64, req U) (*T, error)
	Delete(ctx context.Context, id int64) error
}

type (
	ExercisePlanService  = PlanService[model.ExercisePlan, model.CreateExercisePlanRequest, model.UpdateExercisePlanRequest]
	NutritionPlanService = PlanService[model.NutritionPlan, model.CreateNutritionPlanRequest, model.UpdateNutritionPlanRequest]
)

// Plans keeps a plan list in sync with the server. Every mutation is followed by a
// full reload; the list is never patched locally. Mutations run one at a time.
type Plans[T, C, U any] struct {
	*Collection[T]
	svc PlanService[T, C, U]

	id        func(T) int64
	active    func(T) bool
	setActive func(bool) U

	mutating sync.Mutex
}

type (
	ExercisePlans  = Plans[model.ExercisePlan, model.CreateExercisePlanRequest, model.UpdateExercisePlanRequest]
	NutritionPlans = Plans[model.NutritionPlan, model.CreateNutritionPlanRequest, model.UpdateNutritionPlanRequest]
)

const (
	msgLoadPlans  = "Error al cargar los planes"
	msgCreatePlan = "Error al crear el plan"
	msgUpdatePlan = "Error al actualizar el plan"
	msgDeletePlan = "Error al eliminar el plan"
)

func NewExercisePlans(svc ExercisePlanService) *ExercisePlans {
	return &ExercisePlans{
		Collection: NewCollection(svc.List, msgLoadPlans),
		svc:        svc,
		id:         func(p model.ExercisePlan) int64 { return p.ID },
		active:     func(p model.ExercisePlan) bool { return p.Active },
		setActive: func(v bool) model.UpdateExercisePlanRequest {
			return model.UpdateExercisePlanRequest{Active: &v}
		},
	}
}

func NewNutritionPlans(svc NutritionPlanService) *NutritionPlans {
	return &NutritionPlans{
		Collection: NewCollection(svc.List, msgLoadPlans),
		svc:        svc,
		id:         func(p model.NutritionPlan) int64 { return p.ID },
		active:     func(p model.NutritionPlan) bool { return p.Active },
		setActive: func(v bool) model.UpdateNutritionPlanRequest {
			return model.UpdateNutritionPlanRequest{Active: &v}
		},
	}
}

// Create returns the server's plan. The list itself comes from the reload.
func (p *Plans[T, C, U]) Create(ctx context.Context, req C) (*T, error) {
	p.mutating.Lock()
	defer p.mutating.Unlock()

	created, err := p.svc.Create(ctx, req)
	if err != nil {
		return nil, p.fail(err, msgCreatePlan)
	}
	p.reload(ctx)
	return created, nil
}

func (p *Plans[T, C, U]) Update(ctx context.Context, id int64, req U) (*T, error) {
	p.mutating.Lock()
	defer p.mutating.Unlock()

	updated, err := p.svc.Update(ctx, id, req)
	if err != nil {
		return nil, p.fail(err, msgUpdatePlan)
	}
	p.reload(ctx)
	return updated, nil
}

// ToggleStatus flips the active flag of a loaded plan.
func (p *Plans[T, C, U]) ToggleStatus(ctx context.Context, id int64) error {
	plan, ok := p.Find(id)
	if !ok {
		return p.fail(ErrPlanNotFound, msgUpdatePlan)
	}
	_, err := p.Update(ctx, id, p.setActive(!p.active(plan)))
	return err
}

func (p *Plans[T, C, U]) Delete(ctx context.Context, id int64) error {
	p.mutating.Lock()
	defer p.mutating.Unlock()

	err := p.svc.Delete(ctx, id)
	if err != nil {
		return p.fail(err, msgDeletePlan)
	}
	p.reload(ctx)
	return nil
}

// Active is the subset of the list with the active flag set.
func (p *Plans[T, C, U]) Active() []T {
	return p.filter(p.active)
}

func (p *Plans[T, C, U]) Find(id int64) (T, bool) {
	return p.find(func(item T) bool { return p.id(item) == id })
}

// reload failures are kept in Err(); the mutation itself already succeeded.
func (p *Plans[T, C, U]) reload(ctx context.Context) {
	_ = p.Load(ctx)
}
