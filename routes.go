package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"gorm.io/gorm"

	"github.com/user/aquarealty/apperror"
	"github.com/user/aquarealty/auth"
	"github.com/user/aquarealty/config"
	"github.com/user/aquarealty/db"
	_ "github.com/user/aquarealty/docs" // Generated Swagger docs
	"github.com/user/aquarealty/logging"
	"github.com/user/aquarealty/metrics"
	"github.com/user/aquarealty/realties"
	"github.com/user/aquarealty/users"
	"github.com/user/aquarealty/waterpoints"
	"github.com/user/aquarealty/zones"
)

// application holds the wired handlers for one database.
type application struct {
	db          *gorm.DB
	logger      *slog.Logger
	metrics     *metrics.Metrics
	users       *users.UserHandlers
	realties    *realties.RealtyHandlers
	zones       *zones.ZoneHandlers
	waterpoints *waterpoints.WaterpointHandlers
}

func newApplication(cfg *config.AppConfig, gdb *gorm.DB, logger *slog.Logger) *application {
	hasher := auth.NewHasher(cfg.Auth.BcryptCost)
	tokens := auth.NewTokenIssuer(*cfg.Auth)

	userStore := users.NewStore(gdb, hasher)
	login := users.NewLoginService(userStore, hasher, tokens)

	return &application{
		db:          gdb,
		logger:      logger,
		metrics:     metrics.New(),
		users:       users.NewUserHandlers(userStore, login, auth.BearerMiddleware(tokens)),
		realties:    realties.NewRealtyHandlers(realties.NewStore(gdb)),
		zones:       zones.NewZoneHandlers(zones.NewStore(gdb)),
		waterpoints: waterpoints.NewWaterpointHandlers(waterpoints.NewStore(gdb)),
	}
}

func (a *application) router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(a.logger))
	r.Use(a.metrics.Middleware)
	r.Use(recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Authorization", "Location"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.Get("/healthz", a.handleHealth())
	r.Handle("/metrics", a.metrics.Handler())

	r.Route("/users", a.users.RegisterRoutes)
	r.Route("/realties", a.realties.RegisterRoutes)
	r.Route("/zones", a.zones.RegisterRoutes)
	r.Route("/waterpoints", a.waterpoints.RegisterRoutes)

	return r
}

// handleHealth godoc
// @Summary Database health check
// @Tags Health
// @Produce json
// @Success 200
// @Failure 503 {object} apperror.ErrorResponse "Database unreachable"
// @Router /healthz [get]
func (a *application) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx, a.db); err != nil {
			a.logger.WarnContext(ctx, "health check failed", "error", err)
			apperror.WriteJSON(w, http.StatusServiceUnavailable, apperror.ErrorResponse{Message: "database unreachable"})
			return
		}
		apperror.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// recoverer turns a panic in a handler into a generic 500 response.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}
				slog.ErrorContext(r.Context(), "panic recovered", "panic", rvr, "request_id", middleware.GetReqID(r.Context()))
				apperror.WriteError(w, r, apperror.NewInternalError("internal server error", nil))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
