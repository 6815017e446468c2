package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/api/http/handler"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/api/http/middleware"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/api/http/response"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/logger"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/model"
)

const (
	authBasePath      = "/auth"
	usersBasePath     = "/users"
	bookmarksBasePath = "/bookmarks"

	healthTimeout = 2 * time.Second
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Services groups everything the router dispatches to.
type Services struct {
	Auth          handler.AuthService
	Users         handler.UserService
	Bookmarks     handler.BookmarkService
	Authenticator middleware.Authenticator
	Guard         middleware.AccessGuard
	Health        Pinger
}

// Options are transport level settings.
type Options struct {
	Cookie         handler.CookieOptions
	AllowedOrigins []string
}

// Router builds the HTTP handler tree.
type Router struct {
	services       Services
	options        Options
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	services Services,
	options Options,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		services:       services,
		options:        options,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register wires middleware and routes and returns the root handler.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.services.Authenticator, r.contextManager, r.logger)

	mux := chi.NewRouter()
	mux.Use(chimiddleware.RequestID)
	mux.Use(logging.Handle)
	mux.Use(chimiddleware.Recoverer)
	mux.Use(middleware.NewCORS(r.options.AllowedOrigins))

	mux.Get("/healthz", r.health)

	r.registerAuthRoutes(mux)
	mux.Group(func(protected chi.Router) {
		protected.Use(authenticate.Handle)
		r.registerUserRoutes(protected)
		r.registerBookmarkRoutes(protected)
	})

	return mux
}

func (r *Router) registerAuthRoutes(mux chi.Router) {
	authHandler := handler.NewAuth(r.services.Auth, r.options.Cookie, r.logger)
	mux.Route(authBasePath, func(sub chi.Router) {
		sub.Post("/signup", authHandler.SignUp)
		sub.Post("/signin", authHandler.SignIn)
	})
}

func (r *Router) registerUserRoutes(mux chi.Router) {
	userHandler := handler.NewUser(r.services.Users, r.contextManager, r.logger)
	mux.Get(usersBasePath+"/me", userHandler.GetMe)
}

func (r *Router) registerBookmarkRoutes(mux chi.Router) {
	bookmarkHandler := handler.NewBookmark(r.services.Bookmarks, r.contextManager, r.logger)
	guard := middleware.NewRequireBookmarkAccess(r.services.Guard, r.contextManager, r.logger)

	mux.Route(bookmarksBasePath, func(sub chi.Router) {
		sub.Get("/", bookmarkHandler.List)
		sub.With(guard.Handle).Get("/{"+handler.ParamID+"}", bookmarkHandler.Get)
	})
}

func (r *Router) health(w http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), healthTimeout)
	defer cancel()

	if err := r.services.Health.Ping(ctx); err != nil {
		r.logger.Error("Health check failed",
			"error", err.Error())
		response.Error(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
