package http

import "time"

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type MeResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type CreateSessionRequest struct {
	Name string `json:"name"`
}

type CreateSessionResponse struct {
	ID string `json:"id"`
}

type SessionItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type RecordingItem struct {
	Key        string    `json:"s3_key"`
	RecordedAt time.Time `json:"recorded_at"`
}

type PlaybackResponse struct {
	Files []string `json:"files"`
}

type WorkflowItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type StartWorkflowResponse struct {
	Workflow string `json:"workflow"`
	Status   string `json:"status"`
}

type SandboxRunResponse struct {
	Output string `json:"output"`
}

type SuggestResponse struct {
	Suggestion string `json:"suggestion"`
}
