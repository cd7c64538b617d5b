package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dmitrijs2005/studyhub/internal/app"
	"github.com/dmitrijs2005/studyhub/internal/logging"
)

// Handler serves the API routes over one App.
type Handler struct {
	core *app.App
	log  logging.Logger
}

func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	})
}

// NewRouter builds the chi router. Request bodies must be JSON. CORS is only
// enabled when the config lists allowed origins.
func NewRouter(core *app.App, log logging.Logger) http.Handler {
	h := &Handler{core: core, log: log.With("module", "httpapi")}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.AllowContentType("application/json"))

	if len(core.Config.CORSAllowedOrigins) > 0 {
		r.Use(corsMiddleware(core.Config.CORSAllowedOrigins))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/flashcards", func(r chi.Router) {
		r.Get("/", h.ListFlashcards)
		r.Post("/", h.CreateFlashcard)
		r.Post("/generate", h.GenerateFlashcards)
		r.Get("/{id}", h.GetFlashcard)
		r.Put("/{id}", h.UpdateFlashcard)
		r.Delete("/{id}", h.DeleteFlashcard)
	})
	r.Get("/study", h.Study)

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", h.ListPosts)
		r.Post("/", h.CreatePost)
		r.Delete("/{id}", h.DeletePost)
		r.Post("/{id}/like", h.LikePost)
	})

	r.Get("/chat", h.ChatHistory)
	r.Post("/chat", h.SendChat)
	r.Get("/videos", h.SearchVideos)

	r.Get("/keys", h.ListKeys)
	r.Put("/keys/{provider}", h.SetKey)
	r.Get("/stats", h.Stats)

	return r
}
