package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"

	"github.com/Dianagomez24/FrontFilLife/internal/backend"
	"github.com/Dianagomez24/FrontFilLife/internal/ctxkeys"
	"github.com/Dianagomez24/FrontFilLife/internal/model"
	"github.com/Dianagomez24/FrontFilLife/internal/service"
)

var testUser = &model.User{ID: 7, Name: "ana", Surname: "lópez", Email: "ana@fitlife.com"}

var (
	errUnauthorized = &backend.Error{StatusCode: http.StatusUnauthorized, Message: "Token inválido"}
	errNotFound     = &backend.Error{StatusCode: http.StatusNotFound, Message: "No encontrado"}
	errServer       = &backend.Error{StatusCode: http.StatusInternalServerError}
)

// newRequest builds a request as the auth middleware would leave it. A non-nil form is
// sent urlencoded.
func newRequest(method, target string, form url.Values, htmx bool) *http.Request {
	var r *http.Request
	if form != nil {
		r = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	if htmx {
		r.Header.Set("HX-Request", "true")
	}
	ctx := ctxkeys.WithUser(r.Context(), testUser)
	ctx = ctxkeys.WithSessionID(ctx, "sid-1")
	ctx = ctxkeys.WithCSRFToken(ctx, "csrf-1")
	return r.WithContext(ctx)
}

type fakeExercisePlans struct {
	mu      sync.Mutex
	plans   []model.ExercisePlan
	listErr error
	saveErr error
	nextID  int64
	created []model.CreateExercisePlanRequest
	updated map[int64]model.UpdateExercisePlanRequest
	deleted []int64
}

func newFakeExercisePlans(plans ...model.ExercisePlan) *fakeExercisePlans {
	return &fakeExercisePlans{plans: plans, nextID: 100, updated: map[int64]model.UpdateExercisePlanRequest{}}
}

func (f *fakeExercisePlans) List(ctx context.Context) ([]model.ExercisePlan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]model.ExercisePlan(nil), f.plans...), nil
}

func (f *fakeExercisePlans) ByID(ctx context.Context, id int64) (*model.ExercisePlan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.plans {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeExercisePlans) Create(ctx context.Context, req model.CreateExercisePlanRequest) (*model.ExercisePlan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.created = append(f.created, req)
	f.nextID++
	p := model.ExercisePlan{ID: f.nextID, Name: req.Name, Description: req.Description, Exercises: req.Exercises, DurationMinutes: req.DurationMinutes, Difficulty: req.Difficulty, Active: true}
	f.plans = append(f.plans, p)
	return &p, nil
}

func (f *fakeExercisePlans) Update(ctx context.Context, id int64, req model.UpdateExercisePlanRequest) (*model.ExercisePlan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.updated[id] = req
	for i := range f.plans {
		if f.plans[i].ID != id {
			continue
		}
		if req.Active != nil {
			f.plans[i].Active = *req.Active
		}
		if req.Name != nil {
			f.plans[i].Name = *req.Name
		}
		p := f.plans[i]
		return &p, nil
	}
	return nil, errNotFound
}

func (f *fakeExercisePlans) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.plans {
		if p.ID == id {
			f.plans = append(f.plans[:i], f.plans[i+1:]...)
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return errNotFound
}

type fakeNutritionPlans struct {
	mu      sync.Mutex
	plans   []model.NutritionPlan
	created []model.CreateNutritionPlanRequest
}

func (f *fakeNutritionPlans) List(ctx context.Context) ([]model.NutritionPlan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.NutritionPlan(nil), f.plans...), nil
}

func (f *fakeNutritionPlans) ByID(ctx context.Context, id int64) (*model.NutritionPlan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.plans {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeNutritionPlans) Create(ctx context.Context, req model.CreateNutritionPlanRequest) (*model.NutritionPlan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, req)
	p := model.NutritionPlan{ID: int64(len(f.plans) + 1), Name: req.Name, Meals: req.Meals, TargetCalories: req.TargetCalories, Active: true}
	f.plans = append(f.plans, p)
	return &p, nil
}

func (f *fakeNutritionPlans) Update(ctx context.Context, id int64, req model.UpdateNutritionPlanRequest) (*model.NutritionPlan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.plans {
		if f.plans[i].ID == id {
			if req.Active != nil {
				f.plans[i].Active = *req.Active
			}
			p := f.plans[i]
			return &p, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeNutritionPlans) Delete(ctx context.Context, id int64) error {
	return nil
}

type fakeNotifications struct {
	mu      sync.Mutex
	items   []model.Notification
	listErr error
	read    []int64
	deleted []int64
	created []model.CreateNotificationRequest
}

func (f *fakeNotifications) List(ctx context.Context) ([]model.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]model.Notification(nil), f.items...), nil
}

func (f *fakeNotifications) Unread(ctx context.Context) ([]model.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []model.Notification
	for _, n := range f.items {
		if !n.Read {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotifications) Create(ctx context.Context, req model.CreateNotificationRequest) (*model.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, req)
	n := model.Notification{ID: int64(len(f.items) + 1), Type: req.Type, Title: req.Title, Message: req.Message, ScheduledAt: req.ScheduledAt}
	f.items = append(f.items, n)
	return &n, nil
}

func (f *fakeNotifications) MarkAsRead(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.read = append(f.read, id)
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Read = true
		}
	}
	return nil
}

func (f *fakeNotifications) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	for i, n := range f.items {
		if n.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			break
		}
	}
	return nil
}

type fakeAuth struct {
	loginErr    error
	loginResp   *model.LoginResponse
	registerErr error
	logins      int
	registered  []model.RegisterRequest
}

func (f *fakeAuth) Register(ctx context.Context, req model.RegisterRequest) (*model.Ack, error) {
	f.registered = append(f.registered, req)
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &model.Ack{}, nil
}

func (f *fakeAuth) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	f.logins++
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginResp, nil
}

func (f *fakeAuth) VerifyEmail(ctx context.Context, token string) (*model.Ack, error) {
	if token == "bad" {
		return nil, &backend.Error{StatusCode: http.StatusBadRequest}
	}
	return &model.Ack{}, nil
}

func (f *fakeAuth) ResendVerification(ctx context.Context, email string) (*model.Ack, error) {
	return &model.Ack{}, nil
}

type fakeHealth struct {
	profile *model.HealthProfile
	saved   []model.CreateHealthProfileRequest
}

func (f *fakeHealth) Get(ctx context.Context) (*model.HealthProfile, error) {
	if f.profile == nil {
		return nil, service.ErrNoHealthProfile
	}
	return f.profile, nil
}

func (f *fakeHealth) Save(ctx context.Context, req model.CreateHealthProfileRequest) (*model.HealthProfile, error) {
	f.saved = append(f.saved, req)
	f.profile = &model.HealthProfile{
		Age: req.Age, Sex: req.Sex, Weight: req.Weight, Height: req.Height,
		ActivityLevel: req.ActivityLevel, Goal: req.Goal, Experience: req.Experience, Limitations: req.Limitations,
	}
	return f.profile, nil
}
