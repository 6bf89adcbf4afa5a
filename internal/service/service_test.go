package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/Dianagomez24/FrontFilLife/internal/backend"
	"github.com/Dianagomez24/FrontFilLife/internal/model"
)

type recorded struct {
	Method string
	Path   string
	Auth   string
	Body   map[string]any
}

// fakeAPI answers each "METHOD /path" with a fixed status and body and records the calls.
type fakeAPI struct {
	mu     sync.Mutex
	routes map[string]func() (int, string)
	calls  []recorded
}

func newFakeAPI(t *testing.T) (*fakeAPI, *backend.Client) {
	t.Helper()
	f := &fakeAPI{routes: map[string]func() (int, string){}}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)

	api, err := backend.New(srv.URL)
	require.NoError(t, err)
	return f, api
}

func (f *fakeAPI) on(method, path string, status int, body string) {
	f.routes[method+" "+path] = func() (int, string) { return status, body }
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	data, _ := io.ReadAll(r.Body)
	var body map[string]any
	_ = json.Unmarshal(data, &body)

	f.mu.Lock()
	f.calls = append(f.calls, recorded{Method: r.Method, Path: r.URL.Path, Auth: r.Header.Get("Authorization"), Body: body})
	route, ok := f.routes[r.Method+" "+r.URL.Path]
	f.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
		return
	}
	status, resp := route()
	w.WriteHeader(status)
	_, _ = w.Write([]byte(resp))
}

func TestExercisePlanListAcceptsBareAndWrappedLists(t *testing.T) {
	f, api := newFakeAPI(t)
	svc := NewExercisePlanService(api)

	f.on("GET", "/plans/ejercicio", 200, `[{"id":1,"nombre":"Fuerza","activo":true}]`)
	plans, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "Fuerza", plans[0].Name)
	assert.True(t, plans[0].Active)

	f.on("GET", "/plans/ejercicio", 200, `{"planes":[{"id":2,"nombre":"Cardio"},{"id":3,"nombre":"Yoga"}]}`)
	plans, err = svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, plans, 2)

	f.on("GET", "/plans/ejercicio", 200, `{"planes":null}`)
	plans, err = svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestExercisePlanCreateSendsDTO(t *testing.T) {
	f, api := newFakeAPI(t)
	svc := NewExercisePlanService(api)
	f.on("POST", "/plans/ejercicio", 201, `{"plan":{"id":9,"nombre":"Fuerza","nivelDificultad":"intermedio"}}`)

	plan, err := svc.Create(context.Background(), model.CreateExercisePlanRequest{
		Name:            "Fuerza",
		Description:     "Tren superior",
		Exercises:       []model.Exercise{{Name: "Press banca", Sets: 4, Reps: "8-10", Rest: "90"}},
		DurationMinutes: 45,
		Difficulty:      model.DifficultyIntermediate,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), plan.ID)
	assert.Equal(t, model.DifficultyIntermediate, plan.Difficulty)

	require.Len(t, f.calls, 1)
	body := f.calls[0].Body
	assert.ElementsMatch(t, []string{"nombre", "descripcion", "ejercicios", "duracionMinutos", "nivelDificultad"}, keys(body))
}

func TestNutritionPlanUpdateIsPartial(t *testing.T) {
	f, api := newFakeAPI(t)
	svc := NewNutritionPlanService(api)
	f.on("PUT", "/plans/nutricion/4", 200, `{"id":4,"nombre":"Déficit","activo":false}`)

	active := false
	plan, err := svc.Update(context.Background(), 4, model.UpdateNutritionPlanRequest{Active: &active})
	require.NoError(t, err)
	assert.False(t, plan.Active)
	assert.Equal(t, []string{"activo"}, keys(f.calls[0].Body))
}

func TestPlanErrorsPropagate(t *testing.T) {
	f, api := newFakeAPI(t)
	svc := NewNutritionPlanService(api)
	f.on("DELETE", "/plans/nutricion/1", 403, `{"message":"No autorizado"}`)

	err := svc.Delete(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, backend.ErrForbidden)
	assert.Equal(t, "No autorizado", backend.Message(err, ""))
	assert.Len(t, f.calls, 1)
}

func TestNotificationEndpoints(t *testing.T) {
	f, api := newFakeAPI(t)
	svc := NewNotificationService(api)
	f.on("GET", "/notifications", 200, `[{"id":1,"tipo":"meta","titulo":"Meta","mensaje":"m","leida":false}]`)
	f.on("GET", "/notifications/unread", 200, `[]`)
	f.on("PUT", "/notifications/1/read", 200, `{"message":"ok"}`)
	f.on("DELETE", "/notifications/1", 200, `{"message":"ok"}`)

	ctx := context.Background()
	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, model.NotificationGoal, list[0].Type)

	unread, err := svc.Unread(ctx)
	require.NoError(t, err)
	assert.Empty(t, unread)

	require.NoError(t, svc.MarkAsRead(ctx, 1))
	require.NoError(t, svc.Delete(ctx, 1))
	assert.Equal(t, "PUT", f.calls[2].Method)
	assert.Equal(t, "/notifications/1/read", f.calls[2].Path)
}

func TestAuthLoginNormalizesEmail(t *testing.T) {
	f, api := newFakeAPI(t)
	svc := NewAuthService(api)
	f.on("POST", "/auth/login", 200, `{"access_token":"tok","user":{"id":3,"nombre":"Ana","email":"ana@fitlife.com"}}`)

	resp, err := svc.Login(context.Background(), model.LoginRequest{Email: "  Ana@FitLife.com ", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "tok", resp.AccessToken)
	assert.Equal(t, "Ana", resp.User.Name)
	assert.Equal(t, "ana@fitlife.com", f.calls[0].Body["email"])
}

func TestUserProfileUnwrapsUser(t *testing.T) {
	f, api := newFakeAPI(t)
	svc := NewUserService(api)
	f.on("GET", "/users/profile", 200, `{"user":{"id":3,"nombre":"Ana","apellidos":"López","email":"ana@fitlife.com"}}`)

	p, err := svc.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "López", p.Surname)
}

func TestHealthDataSaveCreatesWhenMissing(t *testing.T) {
	f, api := newFakeAPI(t)
	svc := NewHealthDataService(api)
	f.on("GET", "/users/datos-fisicos", 404, `{"message":"Datos no encontrados"}`)
	f.on("POST", "/users/datos-fisicos", 201, `{"datosFisicos":{"id":1,"edad":30,"peso":70,"altura":175}}`)

	p, err := svc.Save(context.Background(), model.CreateHealthProfileRequest{Age: 30, Weight: 70, Height: 175})
	require.NoError(t, err)
	assert.Equal(t, 30, p.Age)
	require.Len(t, f.calls, 2)
	assert.Equal(t, "POST", f.calls[1].Method)
}

func TestHealthDataSaveUpdatesWhenPresent(t *testing.T) {
	f, api := newFakeAPI(t)
	svc := NewHealthDataService(api)
	f.on("GET", "/users/datos-fisicos", 200, `{"datosFisicos":{"id":1,"edad":30,"peso":70,"altura":175}}`)
	f.on("PUT", "/users/datos-fisicos", 200, `{"datosFisicos":{"id":1,"edad":31,"peso":72,"altura":175}}`)

	p, err := svc.Save(context.Background(), model.CreateHealthProfileRequest{Age: 31, Weight: 72, Height: 175})
	require.NoError(t, err)
	assert.Equal(t, 31, p.Age)
	require.Len(t, f.calls, 2)
	assert.Equal(t, "PUT", f.calls[1].Method)
}

func TestHealthDataGetMissing(t *testing.T) {
	f, api := newFakeAPI(t)
	svc := NewHealthDataService(api)
	f.on("GET", "/users/datos-fisicos", 200, `{"datosFisicos":null}`)

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, ErrNoHealthProfile)
}

func TestWearableByDate(t *testing.T) {
	f, api := newFakeAPI(t)
	svc := NewWearableService(api)
	f.on("GET", "/api/fitness/2025-06-01", 200, `{"date":"2025-06-01","exercise_summary":{"total_burned_calories":420},"daily_total_stats":{"total_intake_calories":1850}}`)

	m, err := svc.ByDate(context.Background(), time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 420, m.ExerciseSummary.BurnedCalories)
	assert.Equal(t, 1850, m.Totals.IntakeCalories)
}

func TestWearableSendsNoAccessToken(t *testing.T) {
	f := &fakeAPI{routes: map[string]func() (int, string){}}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	f.on("GET", "/api/fitness", 200, `{"date":"2025-06-01"}`)
	f.on("GET", "/api/fitness/2025-06-01", 200, `{"date":"2025-06-01"}`)

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "cli-token"})
	api, err := backend.New(srv.URL, backend.WithTokenSource(ts))
	require.NoError(t, err)
	svc := NewWearableService(api)

	ctx := backend.WithToken(context.Background(), "web-token")
	_, err = svc.Today(ctx)
	require.NoError(t, err)
	_, err = svc.ByDate(ctx, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Len(t, f.calls, 2)
	for _, c := range f.calls {
		assert.Empty(t, c.Auth, c.Path)
	}
}

func TestBackendCallsCarryAccessToken(t *testing.T) {
	f, api := newFakeAPI(t)
	f.on("GET", "/notifications", 200, `[]`)

	_, err := NewNotificationService(api).List(backend.WithToken(context.Background(), "web-token"))
	require.NoError(t, err)
	require.Len(t, f.calls, 1)
	assert.Equal(t, "Bearer web-token", f.calls[0].Auth)
}

func TestWritesAcceptEmptyAck(t *testing.T) {
	f, api := newFakeAPI(t)
	f.on("POST", "/plans/ejercicio", 201, ``)
	f.on("POST", "/plans/nutricion", 201, ``)
	f.on("POST", "/notifications", 201, ``)
	f.on("GET", "/users/datos-fisicos", 404, `{"message":"Datos no encontrados"}`)
	f.on("POST", "/users/datos-fisicos", 201, ``)

	ctx := context.Background()
	plan, err := NewExercisePlanService(api).Create(ctx, model.CreateExercisePlanRequest{Name: "Piernas"})
	require.NoError(t, err)
	assert.Nil(t, plan)

	meal, err := NewNutritionPlanService(api).Create(ctx, model.CreateNutritionPlanRequest{Name: "Volumen"})
	require.NoError(t, err)
	assert.Nil(t, meal)

	n, err := NewNotificationService(api).Create(ctx, model.CreateNotificationRequest{Title: "Agua"})
	require.NoError(t, err)
	assert.Nil(t, n)

	p, err := NewHealthDataService(api).Save(ctx, model.CreateHealthProfileRequest{Age: 30, Weight: 70, Height: 175})
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Len(t, f.calls, 5)
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
