package routes

import (
	"net/http"

	"github.com/Dianagomez24/FrontFilLife/internal/app"
	"github.com/Dianagomez24/FrontFilLife/internal/handler"
	"github.com/Dianagomez24/FrontFilLife/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	home := handler.NewHomeHandler()
	auth := handler.NewAuthHandler(app.AuthService, app.Sessions, app.Cookies, app.Lockout)
	dashboard := handler.NewDashboardHandler(app.ExercisePlanService, app.NutritionPlanService, app.WearableService)
	exercise := handler.NewExercisePlanHandler(app.ExercisePlanService)
	nutrition := handler.NewNutritionPlanHandler(app.NutritionPlanService)
	notifications := handler.NewNotificationHandler(app.NotificationService)
	health := handler.NewHealthHandler(app.HealthDataService, app.Sessions)
	profile := handler.NewProfileHandler(app.UserService, app.Sessions)

	limit := app.AuthLimiter.Limit

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /healthz", home.Healthz)
	mux.HandleFunc("GET /{$}", home.HomePage)

	// Auth Pages
	// Login clears expired sessions itself, so it is not guest-only
	mux.HandleFunc("GET /auth/login", auth.LoginPage)
	mux.HandleFunc("GET /auth/register", middleware.RequireGuest(auth.RegisterPage))
	mux.HandleFunc("GET /auth/verify-email", auth.VerifyEmailPage)

	// Auth Actions (rate limited)
	mux.HandleFunc("POST /auth/login", limit(middleware.RequireGuest(auth.Login)))
	mux.HandleFunc("POST /auth/register", limit(middleware.RequireGuest(auth.Register)))
	mux.HandleFunc("POST /auth/resend-verification", limit(auth.ResendVerification))
	mux.HandleFunc("POST /auth/logout", auth.Logout)

	// ============================================================================
	// PROTECTED ROUTES (/app/*)
	// ============================================================================

	mux.HandleFunc("GET /app/dashboard", middleware.RequireAuth(dashboard.DashboardPage))

	// Profile
	mux.HandleFunc("GET /app/profile", middleware.RequireAuth(profile.ProfilePage))
	mux.HandleFunc("PUT /app/profile", middleware.RequireAuth(profile.UpdateProfile))
	mux.HandleFunc("POST /app/profile", middleware.RequireAuth(profile.UpdateProfile))

	// Health questionnaire
	mux.HandleFunc("GET /app/health", middleware.RequireAuth(health.HealthPage))
	mux.HandleFunc("GET /app/health/edit", middleware.RequireAuth(health.EditPage))
	mux.HandleFunc("POST /app/health", middleware.RequireAuth(health.Step))

	// Exercise plans
	mux.HandleFunc("GET /app/exercise-plans", middleware.RequireAuth(exercise.PlansPage))
	mux.HandleFunc("GET /app/exercise-plans/new", middleware.RequireAuth(exercise.NewPlanPage))
	mux.HandleFunc("GET /app/exercise-plans/{id}", middleware.RequireAuth(exercise.PlanPage))
	mux.HandleFunc("GET /app/exercise-plans/{id}/edit", middleware.RequireAuth(exercise.EditPlanPage))
	mux.HandleFunc("POST /app/exercise-plans", middleware.RequireAuth(exercise.CreatePlan))
	mux.HandleFunc("POST /app/exercise-plans/validate", middleware.RequireAuth(exercise.ValidatePlan))
	mux.HandleFunc("PUT /app/exercise-plans/{id}", middleware.RequireAuth(exercise.UpdatePlan))
	mux.HandleFunc("POST /app/exercise-plans/{id}", middleware.RequireAuth(exercise.UpdatePlan))
	mux.HandleFunc("POST /app/exercise-plans/{id}/toggle", middleware.RequireAuth(exercise.TogglePlan))
	mux.HandleFunc("DELETE /app/exercise-plans/{id}", middleware.RequireAuth(exercise.DeletePlan))

	// Nutrition plans
	mux.HandleFunc("GET /app/nutrition-plans", middleware.RequireAuth(nutrition.PlansPage))
	mux.HandleFunc("GET /app/nutrition-plans/new", middleware.RequireAuth(nutrition.NewPlanPage))
	mux.HandleFunc("GET /app/nutrition-plans/{id}", middleware.RequireAuth(nutrition.PlanPage))
	mux.HandleFunc("GET /app/nutrition-plans/{id}/edit", middleware.RequireAuth(nutrition.EditPlanPage))
	mux.HandleFunc("POST /app/nutrition-plans", middleware.RequireAuth(nutrition.CreatePlan))
	mux.HandleFunc("POST /app/nutrition-plans/validate", middleware.RequireAuth(nutrition.ValidatePlan))
	mux.HandleFunc("PUT /app/nutrition-plans/{id}", middleware.RequireAuth(nutrition.UpdatePlan))
	mux.HandleFunc("POST /app/nutrition-plans/{id}", middleware.RequireAuth(nutrition.UpdatePlan))
	mux.HandleFunc("POST /app/nutrition-plans/{id}/toggle", middleware.RequireAuth(nutrition.TogglePlan))
	mux.HandleFunc("DELETE /app/nutrition-plans/{id}", middleware.RequireAuth(nutrition.DeletePlan))

	// Notifications
	mux.HandleFunc("GET /app/notifications", middleware.RequireAuth(notifications.NotificationsPage))
	mux.HandleFunc("GET /app/notifications/feed", middleware.RequireAuth(notifications.Feed))
	mux.HandleFunc("GET /app/notifications/badge", middleware.RequireAuth(notifications.Badge))
	mux.HandleFunc("GET /app/notifications/calendar.ics", middleware.RequireAuth(notifications.Calendar))
	mux.HandleFunc("POST /app/notifications", middleware.RequireAuth(notifications.CreateNotification))
	mux.HandleFunc("POST /app/notifications/read-all", middleware.RequireAuth(notifications.MarkAllAsRead))
	mux.HandleFunc("POST /app/notifications/{id}/read", middleware.RequireAuth(notifications.MarkAsRead))
	mux.HandleFunc("DELETE /app/notifications/{id}", middleware.RequireAuth(notifications.DeleteNotification))

	// ============================================================================
	// FALLBACK
	// ============================================================================

	// 404
	mux.HandleFunc("/{path...}", home.NotFoundPage)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.Config(app.Cfg), // Config must be first (SecurityHeaders reads it)
		middleware.NonceMiddleware, // Must run before SecurityHeaders
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.CSRFProtection,
		middleware.AuthMiddleware(app.Sessions, app.Cookies),
		middleware.WithURLPath,
	)

	return handler
}
