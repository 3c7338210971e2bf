package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
	"github.com/vncsmyrnk/lunchvote/internal/core/ports"

	_ "github.com/vncsmyrnk/lunchvote/docs"
)

type Handlers struct {
	Auth        *AuthHandler
	Users       *UserHandler
	Restaurants *RestaurantHandler
	Menus       *MenuHandler
	Employees   *EmployeeHandler
	Votes       *VoteHandler
}

type RouterConfig struct {
	AuthService    ports.AuthService
	AllowedOrigins []string

	// Instrument and MetricsHandler are optional.
	Instrument     func(http.Handler) http.Handler
	MetricsHandler http.Handler
}

func NewHandler(h Handlers, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if cfg.Instrument != nil {
		r.Use(cfg.Instrument)
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/token", h.Auth.Login)
		r.Post("/refresh", h.Auth.Refresh)
		r.Post("/logout", h.Auth.Logout)
	})
	r.Post("/oauth/callback", h.Auth.GoogleCallback)

	r.Route("/api", func(r chi.Router) {
		r.Use(APIVersion)
		r.Use(Authenticate(cfg.AuthService))

		r.Get("/me", h.Users.GetMe)

		r.Route("/users", func(r chi.Router) {
			r.With(RequirePermission(domain.ResourceUser, domain.ActionList)).Get("/", h.Users.List)
			r.With(RequirePermission(domain.ResourceUser, domain.ActionCreate)).Post("/", h.Users.Create)
			r.With(RequirePermission(domain.ResourceUser, domain.ActionRetrieve)).Get("/{id}", h.Users.Get)
		})

		r.Route("/restaurants", func(r chi.Router) {
			crud(r, domain.ResourceRestaurant, h.Restaurants)
		})

		r.Route("/menus", func(r chi.Router) {
			r.With(RequirePermission(domain.ResourceMenu, domain.ActionUploadMenu)).Post("/upload-menu", h.Menus.Upload)
			r.With(RequirePermission(domain.ResourceMenu, domain.ActionCurrentDayMenu)).Get("/current-day-menu", h.Menus.CurrentDay)
			crud(r, domain.ResourceMenu, h.Menus)
		})

		r.Route("/employees", func(r chi.Router) {
			crud(r, domain.ResourceEmployee, h.Employees)
		})

		r.Route("/votes", func(r chi.Router) {
			r.With(RequirePermission(domain.ResourceVote, domain.ActionCastVote)).Post("/cast-vote", h.Votes.CastVote)
			r.With(RequirePermission(domain.ResourceVote, domain.ActionMyVote)).Get("/my-vote", h.Votes.MyVote)
			r.With(RequirePermission(domain.ResourceVote, domain.ActionAllVotesResults)).Get("/all-votes-results", h.Votes.AllVotesResults)
			crud(r, domain.ResourceVote, h.Votes)
		})
	})

	return r
}

type crudHandler interface {
	Create(http.ResponseWriter, *http.Request)
	List(http.ResponseWriter, *http.Request)
	Get(http.ResponseWriter, *http.Request)
	Update(http.ResponseWriter, *http.Request)
	Delete(http.ResponseWriter, *http.Request)
}

// crud mounts the list/create/retrieve/update/destroy routes of a resource,
// each behind its own permission.
func crud(r chi.Router, resource domain.Resource, h crudHandler) {
	gate := func(action domain.Action) chi.Router {
		return r.With(RequirePermission(resource, action))
	}
	gate(domain.ActionList).Get("/", h.List)
	gate(domain.ActionCreate).Post("/", h.Create)
	gate(domain.ActionRetrieve).Get("/{id}", h.Get)
	gate(domain.ActionUpdate).Put("/{id}", h.Update)
	gate(domain.ActionUpdate).Patch("/{id}", h.Update)
	gate(domain.ActionDestroy).Delete("/{id}", h.Delete)
}
