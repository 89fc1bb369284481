package http

import (
	"encoding/json"
	"net/http"

	"github.com/projectdesk/projectdesk/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves the tracker
// API. It applies JSON content-type enforcement and request logging
// globally, and bearer-token authentication to everything except the auth
// endpoints and the health check.
//
// Routes:
//
//	GET  /api/health                                → liveness probe
//	POST /api/auth/register                         → authHandler.Register
//	POST /api/auth/login                            → authHandler.Login
//	GET/POST /api/settings/fields                   → projectFields
//	DELETE   /api/settings/fields/{id}              → projectFields
//	GET/POST /api/settings/specification-fields     → specFields
//	DELETE   /api/settings/specification-fields/{id}→ specFields
//	GET/POST /api/projects                          → projects
//	GET/PUT/DELETE /api/projects/{projectID}        → projects
//	GET/POST /api/projects/{projectID}/tasks        → tasks
//	PUT/DELETE /api/projects/{projectID}/tasks/{taskID} → tasks
func NewRouter(
	authHandler *AuthHandler,
	projectFields *FieldsHandler,
	specFields *FieldsHandler,
	projects *ProjectsHandler,
	tasks *TasksHandler,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
		})

		// Public endpoints
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// Protected group: requires a valid bearer token
		r.Group(func(r chi.Router) {
			r.Use(middleware.BearerAuth)

			r.Route("/settings", func(r chi.Router) {
				r.Get("/fields", projectFields.List)
				r.Post("/fields", projectFields.Create)
				r.Delete("/fields/{id}", projectFields.Delete)

				r.Get("/specification-fields", specFields.List)
				r.Post("/specification-fields", specFields.Create)
				r.Delete("/specification-fields/{id}", specFields.Delete)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", projects.List)
				r.Post("/", projects.Create)

				r.Route("/{projectID}", func(r chi.Router) {
					r.Get("/", projects.Get)
					r.Put("/", projects.Update)
					r.Delete("/", projects.Delete)

					r.Route("/tasks", func(r chi.Router) {
						r.Get("/", tasks.List)
						r.Post("/", tasks.Create)
						r.Put("/{taskID}", tasks.Update)
						r.Delete("/{taskID}", tasks.Delete)
					})
				})
			})
		})
	})

	return r
}
