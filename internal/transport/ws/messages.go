package ws

import "encoding/json"

// Event types carried over the real-time channel.
const (
	TypeJoinRoom     = "joinRoom"
	TypeEditorUpdate = "editorUpdate"
	TypeCursor       = "cursorPositionUpdate"
	TypeError        = "error"
)

// Message is the wire envelope. Payload stays raw so editor updates are
// relayed byte-for-byte.
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type JoinRoomPayload struct {
	SessionID string `json:"sessionId"`
}

type EditorUpdatePayload struct {
	SessionID string          `json:"sessionId"`
	Payload   json.RawMessage `json:"payload"`
}

type CursorPayload struct {
	SessionID string          `json:"sessionId"`
	UserID    string          `json:"userId"`
	Position  json.RawMessage `json:"position"`
}

// CursorBroadcast is what room peers receive for a cursor move.
type CursorBroadcast struct {
	UserID   string          `json:"userId"`
	Position json.RawMessage `json:"position"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}
