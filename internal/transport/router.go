package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/seojinp/projectboard/internal/domain/comment"
	"github.com/seojinp/projectboard/internal/domain/project"
)

// Handlers wires the domain services to the HTTP surface.
type Handlers struct {
	projects *project.Service
	comments *comment.Service
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandlers creates the handler set.
func NewHandlers(projects *project.Service, comments *comment.Service, logger *slog.Logger) *Handlers {
	return &Handlers{
		projects: projects,
		comments: comments,
		validate: validator.New(),
		logger:   logger,
	}
}

// NewRouter builds the API router. Everything under /api requires a
// resolved viewer.
func NewRouter(h *Handlers, resolver *ViewerResolver) *chi.Mux {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(AuthMiddleware(resolver))

		r.Get("/projects", h.listOwnProjects)
		r.Post("/projects", h.createProject)
		r.Get("/projects/{ownerID}", h.listProjects)

		r.Route("/projects/{ownerID}/{projectID}", func(r chi.Router) {
			r.Get("/", h.getProject)
			r.Put("/", h.updateProject)
			r.Delete("/", h.deleteProject)

			r.Get("/comments", h.listComments)
			r.Post("/comments", h.addComment)
			r.Get("/comments/feed", h.commentFeed)
			r.Delete("/comments/{commentID}", h.deleteComment)
			r.Post("/comments/{commentID}/ack", h.acknowledgeComment)
		})
	})

	return r
}
