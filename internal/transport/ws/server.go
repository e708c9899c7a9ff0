package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

// TokenVerifier yields the subject identifier for a presented credential.
type TokenVerifier interface {
	UserIDFromAccessToken(token string) (string, error)
}

// SessionRegistry authorizes room binding.
type SessionRegistry interface {
	Exists(ctx context.Context, sessionID string) (bool, error)
	IsParticipant(ctx context.Context, sessionID, userID string) (bool, error)
}

type Server struct {
	upgrader websocket.Upgrader
	hub      *Hub
	registry SessionRegistry
	verifier TokenVerifier

	pingEvery time.Duration
}

func NewServer(hub *Hub, registry SessionRegistry, verifier TokenVerifier) *Server {
	return &Server{
		hub:      hub,
		registry: registry,
		verifier: verifier,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		pingEvery: 15 * time.Second,
	}
}

// WS endpoint: GET /ws?access_token=...
// The token is verified before the upgrade; the connection then stays
// unbound until a joinRoom event arrives.
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	accessToken := strings.TrimSpace(r.URL.Query().Get("access_token"))
	if accessToken == "" {
		http.Error(w, "missing access_token", http.StatusUnauthorized)
		return
	}
	userID, err := s.verifier.UserIDFromAccessToken(accessToken)
	if err != nil {
		http.Error(w, "invalid access_token", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("ws upgrade failed", "err", err)
		return
	}

	c := newWsConn(conn, userID)

	go s.writeLoop(r.Context(), c)
	s.readLoop(r.Context(), c)

	// transport disconnect implicitly cancels membership
	s.hub.Unbind(c)

	if err := c.Close(); err != nil {
		slog.Debug("ws close failed", "user", userID, "err", err)
	}
}

func (s *Server) readLoop(ctx context.Context, c *wsConn) {
	defer func() { _ = c.Close() }()

	c.conn.SetReadLimit(1 << 20)
	c.conn.SetReadDeadline(time.Now().Add(2 * s.pingEvery))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(2 * s.pingEvery))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}

		switch msg.Type {
		case TypeJoinRoom:
			s.handleJoin(ctx, c, msg.Payload)
		case TypeEditorUpdate:
			s.handleEditorUpdate(c, msg.Payload)
		case TypeCursor:
			s.handleCursor(c, msg.Payload)
		default:
			// ignore
		}
	}
}

// handleJoin binds the connection to a room after checking membership.
// A second join moves the connection out of its previous room.
func (s *Server) handleJoin(ctx context.Context, c *wsConn, payload json.RawMessage) {
	sessionID := joinSessionID(payload)
	if sessionID == "" {
		s.sendError(c, "missing sessionId")
		return
	}

	ok, err := s.registry.Exists(ctx, sessionID)
	if err != nil {
		slog.Error("ws join: registry lookup failed", "session", sessionID, "err", err)
		s.sendError(c, "join failed")
		return
	}
	if !ok {
		s.sendError(c, "session not found")
		return
	}

	member, err := s.registry.IsParticipant(ctx, sessionID, c.userID)
	if err != nil {
		slog.Error("ws join: participant lookup failed", "session", sessionID, "user", c.userID, "err", err)
		s.sendError(c, "join failed")
		return
	}
	if !member {
		s.sendError(c, "not a session participant")
		return
	}

	s.hub.Bind(c, sessionID)
}

func (s *Server) handleEditorUpdate(c *wsConn, payload json.RawMessage) {
	var p EditorUpdatePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return
	}
	room, bound := s.hub.Room(c)
	if !bound || room != p.SessionID {
		return
	}

	// payload goes out verbatim; the originator does not get it back
	s.hub.Broadcast(room, Message{Type: TypeEditorUpdate, Payload: p.Payload}, c)
}

func (s *Server) handleCursor(c *wsConn, payload json.RawMessage) {
	var p CursorPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return
	}
	room, bound := s.hub.Room(c)
	if !bound || room != p.SessionID {
		return
	}

	out, err := json.Marshal(CursorBroadcast{UserID: p.UserID, Position: p.Position})
	if err != nil {
		return
	}
	s.hub.Broadcast(room, Message{Type: TypeCursor, Payload: out}, c)
}

func (s *Server) sendError(c *wsConn, msg string) {
	b, err := json.Marshal(ErrorPayload{Error: msg})
	if err != nil {
		return
	}
	_ = c.Send(Message{Type: TypeError, Payload: b})
}

func (s *Server) writeLoop(ctx context.Context, c *wsConn) {
	ticker := time.NewTicker(s.pingEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_ = c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second))
		case <-ctx.Done():
			return
		case <-c.closed:
			return
		}
	}
}

// joinSessionID accepts both {"sessionId":"..."} and a bare string payload.
func joinSessionID(payload json.RawMessage) string {
	var p JoinRoomPayload
	if err := json.Unmarshal(payload, &p); err == nil && p.SessionID != "" {
		return p.SessionID
	}
	var s string
	if err := json.Unmarshal(payload, &s); err == nil {
		return s
	}
	return ""
}

type wsConn struct {
	conn   *websocket.Conn
	userID string
	sendMu chan struct{}
	closed chan struct{}
}

func newWsConn(c *websocket.Conn, userID string) *wsConn {
	return &wsConn{
		conn:   c,
		userID: userID,
		sendMu: make(chan struct{}, 1),
		closed: make(chan struct{}),
	}
}

func (c *wsConn) Send(msg Message) error {
	c.sendMu <- struct{}{}
	defer func() { <-c.sendMu }()
	c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))

	return c.conn.WriteJSON(msg)
}

func (c *wsConn) Close() error {
	select {
	case <-c.closed:
	default:
		close(c.closed)
	}

	return c.conn.Close()
}

func (c *wsConn) UserID() string { return c.userID }
