package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pairpad/collab-service/internal/domain"
	"github.com/pairpad/collab-service/internal/service"
	httpmw "github.com/pairpad/collab-service/internal/transport/http/middleware"
	"github.com/pairpad/collab-service/pkg/httputil"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	authSvc      *service.AuthService
	sessionSvc   *service.SessionService
	recordingSvc *service.RecordingService
	workflowSvc  *service.WorkflowService
}

func NewHandler(
	auth *service.AuthService,
	session *service.SessionService,
	recording *service.RecordingService,
	workflow *service.WorkflowService,
) *Handler {
	return &Handler{
		authSvc:      auth,
		sessionSvc:   session,
		recordingSvc: recording,
		workflowSvc:  workflow,
	}
}

// POST /sessions
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	ownerID := httpmw.UserIDFromCtx(r.Context())

	sess, err := h.sessionSvc.Create(r.Context(), ownerID, req.Name)
	if err != nil {
		slog.Error("handler.CreateSession", slog.Any("err", err))
		httputil.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	httputil.JSON(w, http.StatusOK, CreateSessionResponse{ID: sess.ID})
}

// GET /sessions
func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	userID := httpmw.UserIDFromCtx(r.Context())

	sessions, err := h.sessionSvc.List(r.Context(), userID)
	if err != nil {
		slog.Error("handler.ListSessions", slog.Any("err", err))
		httputil.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	items := make([]SessionItem, 0, len(sessions))
	for _, s := range sessions {
		items = append(items, SessionItem{
			ID:        s.ID,
			Name:      s.Name,
			OwnerID:   s.OwnerID,
			CreatedAt: s.CreatedAt,
		})
	}

	httputil.JSON(w, http.StatusOK, items)
}

// POST /sessions/{id}/join
func (h *Handler) JoinSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	userID := httpmw.UserIDFromCtx(r.Context())

	if err := h.sessionSvc.Join(r.Context(), sessionID, userID); err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			httputil.Error(w, http.StatusNotFound, "session not found")
			return
		}
		slog.Error("handler.JoinSession", slog.Any("err", err))
		httputil.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	httputil.JSON(w, http.StatusOK, StatusResponse{Status: "joined"})
}

// authorizeSession rejects callers who are not participants of the session.
// Reports whether the request may proceed.
func (h *Handler) authorizeSession(w http.ResponseWriter, r *http.Request, sessionID string) bool {
	userID := httpmw.UserIDFromCtx(r.Context())

	err := h.sessionSvc.Authorize(r.Context(), sessionID, userID)
	switch {
	case err == nil:
		return true
	case errors.Is(err, domain.ErrSessionNotFound):
		httputil.Error(w, http.StatusNotFound, "session not found")
	case errors.Is(err, domain.ErrNotParticipant):
		httputil.Error(w, http.StatusForbidden, "not a session participant")
	default:
		slog.Error("handler.authorizeSession", slog.Any("err", err))
		httputil.Error(w, http.StatusInternalServerError, "internal error")
	}
	return false
}

// POST /recordings/{sessionId}/{ts}
func (h *Handler) StoreRecording(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")
	ts := chi.URLParam(r, "ts")
	if !h.authorizeSession(w, r, sessionID) {
		return
	}

	if _, err := h.recordingSvc.Store(r.Context(), sessionID, ts); err != nil {
		slog.Error("handler.StoreRecording", slog.Any("err", err))
		httputil.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	httputil.JSON(w, http.StatusOK, StatusResponse{Status: "stored"})
}

// GET /recordings/{sessionId}
func (h *Handler) ListRecordings(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")
	if !h.authorizeSession(w, r, sessionID) {
		return
	}

	recs, err := h.recordingSvc.List(r.Context(), sessionID)
	if err != nil {
		slog.Error("handler.ListRecordings", slog.Any("err", err))
		httputil.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	items := make([]RecordingItem, 0, len(recs))
	for _, rec := range recs {
		items = append(items, RecordingItem{Key: rec.Key, RecordedAt: rec.RecordedAt})
	}

	httputil.JSON(w, http.StatusOK, items)
}

// GET /recordings/{sessionId}/playback
func (h *Handler) Playback(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")
	if !h.authorizeSession(w, r, sessionID) {
		return
	}

	files, err := h.recordingSvc.Playback(r.Context(), sessionID)
	if err != nil {
		slog.Error("handler.Playback", slog.Any("err", err))
		httputil.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	if files == nil {
		files = []string{}
	}

	httputil.JSON(w, http.StatusOK, PlaybackResponse{Files: files})
}

// GET /workflows
func (h *Handler) ListWorkflows(w http.ResponseWriter, r *http.Request) {
	workflows, err := h.workflowSvc.List(r.Context())
	if err != nil {
		slog.Error("handler.ListWorkflows", slog.Any("err", err))
		httputil.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	items := make([]WorkflowItem, 0, len(workflows))
	for _, wf := range workflows {
		items = append(items, WorkflowItem{ID: wf.ID, Name: wf.Name})
	}

	httputil.JSON(w, http.StatusOK, items)
}

// POST /workflows/{id}/start
func (h *Handler) StartWorkflow(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	status, err := h.workflowSvc.Start(r.Context(), id)
	if err != nil {
		slog.Error("handler.StartWorkflow", slog.Any("err", err))
		httputil.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	httputil.JSON(w, http.StatusOK, StartWorkflowResponse{Workflow: id, Status: status})
}

// POST /sandbox/run — execution is stubbed.
func (h *Handler) RunSandbox(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, SandboxRunResponse{Output: "sandbox execution placeholder"})
}

// POST /ai/suggest — suggestions are stubbed.
func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, SuggestResponse{Suggestion: "// AI suggestion placeholder"})
}
