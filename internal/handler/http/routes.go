package http

import (
	"net/http"

	_ "github.com/MKhiriev/ergo/docs"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Init builds the router with the full middleware chain.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(h.withCORS())
	router.Use(withSecurityHeaders)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Get("/api/version", h.getServerVersion)
		r.Method(http.MethodGet, "/metrics", h.metrics.handler())
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

		r.Post("/api/users", h.register)
		r.Post("/api/users/login", h.login)
	})

	// per-user routes behind the auth guard
	router.Route("/api/tasks/{"+userIDParam+"}", func(r chi.Router) {
		r.Use(h.restricted)

		r.Post("/", h.createTask)
		r.Get("/", h.listTasks)
		r.Get("/{"+taskIDParam+"}", h.getTask)
		r.Put("/{"+taskIDParam+"}", h.updateTask)
		r.Delete("/{"+taskIDParam+"}", h.deleteTask)
		r.Post("/{"+taskIDParam+"}/completions", h.completeTask)
		r.Delete("/{"+taskIDParam+"}/completions/{"+completionIDParam+"}", h.uncompleteTask)
	})

	router.Route("/api/tags/{"+userIDParam+"}", func(r chi.Router) {
		r.Use(h.restricted)

		r.Post("/", h.createTag)
		r.Get("/", h.listTags)
		r.Post("/tasks/{"+taskIDParam+"}", h.createTagForTask)
		r.Get("/{"+tagIDParam+"}", h.getTag)
		r.Put("/{"+tagIDParam+"}", h.updateTag)
		r.Delete("/{"+tagIDParam+"}", h.deleteTag)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
