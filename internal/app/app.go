package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/robfig/cron/v3"

	"github.com/Dianagomez24/FrontFilLife/internal/backend"
	"github.com/Dianagomez24/FrontFilLife/internal/config"
	"github.com/Dianagomez24/FrontFilLife/internal/db"
	"github.com/Dianagomez24/FrontFilLife/internal/lockout"
	"github.com/Dianagomez24/FrontFilLife/internal/middleware"
	"github.com/Dianagomez24/FrontFilLife/internal/repository"
	"github.com/Dianagomez24/FrontFilLife/internal/service"
	"github.com/Dianagomez24/FrontFilLife/internal/session"
)

// Auth POSTs allowed per client IP and window, on top of the per-browser lockout.
const (
	authRateLimit  = 20
	authRateWindow = 15 * time.Minute
)

type App struct {
	Cfg      *config.Config
	DB       *sqlx.DB
	Sessions *session.Manager
	Cookies  *session.Cookies
	Lockout  *lockout.Guard

	AuthLimiter *middleware.RateLimiter

	API      *backend.Client
	Wearable *backend.Client

	AuthService          *service.AuthService
	UserService          *service.UserService
	HealthDataService    *service.HealthDataService
	ExercisePlanService  *service.ExercisePlanService
	NutritionPlanService *service.NutritionPlanService
	NotificationService  *service.NotificationService
	WearableService      *service.WearableService
}

// New wires the web application. Backend calls take the access token from the
// request context, set by the auth middleware.
func New(cfg *config.Config) (*App, error) {
	a, err := open(cfg)
	if err != nil {
		return nil, err
	}

	err = a.connect()
	if err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

// NewCLI wires the command-line client. Backend calls take the access token from the
// session stored under session.CLIKey.
func NewCLI(cfg *config.Config) (*App, error) {
	a, err := open(cfg)
	if err != nil {
		return nil, err
	}

	ts := a.Sessions.TokenSource(context.Background(), session.CLIKey)
	err = a.connect(backend.WithTokenSource(ts))
	if err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func open(cfg *config.Config) (*App, error) {
	database, err := db.Open(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	sessions := session.NewManager(repository.NewSessionRepository(database), cfg.SessionExpiry)

	return &App{
		Cfg:         cfg,
		DB:          database,
		Sessions:    sessions,
		Cookies:     session.NewCookies(cfg.JWTSecret, cfg.SecureCookies()),
		Lockout:     lockout.New(cfg.LoginMaxAttempts, cfg.LoginLockout),
		AuthLimiter: middleware.NewRateLimiter(authRateLimit, authRateWindow),
	}, nil
}

func (a *App) connect(opts ...backend.Option) error {
	opts = append([]backend.Option{backend.WithTimeout(a.Cfg.HTTPTimeout)}, opts...)

	api, err := backend.New(a.Cfg.BackendAPIURL, opts...)
	if err != nil {
		return fmt.Errorf("failed to create backend client: %w", err)
	}
	// no token source: the fitness-data host is a separate service
	wearable, err := backend.New(a.Cfg.WearableAPIURL, backend.WithTimeout(a.Cfg.HTTPTimeout))
	if err != nil {
		return fmt.Errorf("failed to create wearable client: %w", err)
	}

	a.API = api
	a.Wearable = wearable
	a.AuthService = service.NewAuthService(api)
	a.UserService = service.NewUserService(api)
	a.HealthDataService = service.NewHealthDataService(api)
	a.ExercisePlanService = service.NewExercisePlanService(api)
	a.NutritionPlanService = service.NewNutritionPlanService(api)
	a.NotificationService = service.NewNotificationService(api)
	a.WearableService = service.NewWearableService(wearable)
	return nil
}

// RunBackground prunes lockout entries, rate limit counters and expired sessions
// until ctx is done.
func (a *App) RunBackground(ctx context.Context) {
	go a.Lockout.Cleanup(ctx, time.Minute)
	go a.AuthLimiter.Cleanup(ctx, 5*time.Minute)

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	_, err := c.AddFunc("@hourly", func() {
		n, err := a.Sessions.Purge(ctx)
		if err != nil {
			slog.Error("failed to purge expired sessions", "error", err)
			return
		}
		if n > 0 {
			slog.Info("purged expired sessions", "count", n)
		}
	})
	if err != nil {
		slog.Error("failed to schedule session purge", "error", err)
		return
	}
	c.Start()

	go func() {
		<-ctx.Done()
		<-c.Stop().Done()
	}()
}

func (a *App) Close() error {
	if a.DB != nil {
		return db.Close(a.DB)
	}
	return nil
}
