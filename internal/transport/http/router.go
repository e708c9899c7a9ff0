package http

import (
	"net/http"
	"time"

	httpmw "github.com/pairpad/collab-service/internal/transport/http/middleware"
	"github.com/pairpad/collab-service/internal/transport/ws"
	"github.com/pairpad/collab-service/pkg/httputil"

	"github.com/go-chi/chi/v5"
	middlewareChi "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(h *Handler, verifier httpmw.TokenVerifier, wsServer *ws.Server) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewareChi.RealIP)
	r.Use(middlewareChi.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// WS endpoint does its own token check; no wrapping middleware so the
	// upgrader keeps access to the raw connection.
	r.Get("/ws", wsServer.HandleWS)

	r.Group(func(pr chi.Router) {
		pr.Use(httputil.MiddlewareRequestID)
		pr.Use(httputil.MiddlewareLogging)
		pr.Use(middlewareChi.Timeout(30 * time.Second))

		pr.Post("/auth/signup", h.Signup)
		pr.Post("/auth/login", h.Login)

		pr.Group(func(ar chi.Router) {
			ar.Use(httpmw.AuthMiddleware(verifier))

			ar.Get("/users/me", h.Me)

			ar.Route("/sessions", func(sr chi.Router) {
				sr.Get("/", h.ListSessions)
				sr.Post("/", h.CreateSession)
				sr.Post("/{id}/join", h.JoinSession)
			})

			ar.Route("/recordings/{sessionId}", func(rr chi.Router) {
				rr.Post("/{ts}", h.StoreRecording)
				rr.Get("/", h.ListRecordings)
				rr.Get("/playback", h.Playback)
			})

			ar.Route("/workflows", func(wr chi.Router) {
				wr.Get("/", h.ListWorkflows)
				wr.Post("/{id}/start", h.StartWorkflow)
			})

			ar.Post("/sandbox/run", h.RunSandbox)
			ar.Post("/ai/suggest", h.Suggest)
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}
