package gateway

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"sirms/backend/internal/auth"
	"sirms/backend/internal/gateway/handlers"
	"sirms/backend/internal/gateway/util"
	"sirms/backend/internal/shared"
)

// Deps is everything the router needs.
type Deps struct {
	Clients  *ServiceClients
	Config   *shared.GatewayConfig
	Sessions *auth.SessionManager
	Logger   *zap.Logger
}

// SetupRoutes configures the Chi router, middleware, and route handlers.
func SetupRoutes(deps Deps) *chi.Mux {
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()

	// 1. Global Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if !shared.IsProduction(&cfg.ServiceConfig) {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	r.Use(SessionMiddleware(deps.Sessions))

	// 2. Initialize Handlers
	authHandler := &handlers.AuthHandler{
		Authenticator: auth.NewAuthenticator(cfg.Security, RecordsVerifier{Client: deps.Clients.RecordsClient}, logger),
		Sessions:      deps.Sessions,
		CookieSecure:  cfg.Security.CookieSecure,
		Timeout:       cfg.RequestTimeout,
		Logger:        logger,
	}
	studentHandler := &handlers.StudentHandler{RecordsClient: deps.Clients.RecordsClient, Timeout: cfg.RequestTimeout}
	adminHandler := &handlers.AdminHandler{RecordsClient: deps.Clients.RecordsClient, Timeout: cfg.RequestTimeout}

	// 3. Define Routes

	// --- Public Routes ---
	r.Get("/", authHandler.Home)
	r.Post("/login", authHandler.Login)
	r.Get("/logout", authHandler.Logout)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		util.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true})
	})

	// --- Student Views ---
	r.Get("/student_dashboard", studentHandler.Dashboard)

	// --- Admin Views (anyone else is sent home) ---
	r.Group(func(r chi.Router) {
		r.Use(RequireAdmin(util.RedirectHome))
		r.Get("/admin_dashboard", adminHandler.Dashboard)
		r.Get("/manage/*", adminHandler.Manage)
	})

	// --- Admin Mutations ---
	r.Group(func(r chi.Router) {
		r.Use(RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
			util.WriteJSONError(w, http.StatusForbidden, "Admin access required")
		}))
		r.Post("/add_student", adminHandler.AddStudent)
		r.Post("/upload_grade", adminHandler.UploadGrade)
		r.Post("/delete_student", adminHandler.DeleteStudent)
		r.Post("/delete_course", adminHandler.DeleteCourse)
	})

	return r
}

// SessionMiddleware resolves the session token into the request identity.
// Missing, invalid or expired tokens leave the caller anonymous.
func SessionMiddleware(sessions *auth.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := shared.Anonymous
			if tokenStr, err := util.ExtractToken(r); err == nil {
				if id, err := sessions.Parse(tokenStr); err == nil {
					identity = id
				}
			}
			next.ServeHTTP(w, r.WithContext(util.WithIdentity(r.Context(), identity)))
		})
	}
}

// RequireAdmin lets admin callers through and hands everyone else to deny.
func RequireAdmin(deny http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !util.IdentityFrom(r.Context()).IsAdmin() {
				deny(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
