package chat

import (
	"time"

	"github.com/campaignchat/campaignchat/internal/chart"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one rendered message in the conversation. Turns are created by the
// UI and echoed back with each request; the server never stores them.
type Turn struct {
	ID        string         `json:"id"`
	Role      Role           `json:"role"`
	Content   string         `json:"content"`
	Timestamp time.Time      `json:"timestamp"`
	Chart     *chart.Payload `json:"chart,omitempty"`
}

// Request is the body of POST /api/chat. History is decoded for contract
// stability but the pipeline does not consult it.
type Request struct {
	Message string `json:"message"`
	History []Turn `json:"history,omitempty"`
}

// Response always serializes both message and error so the contract stays
// stable; exactly one of them is meaningful. Chart is omitted when no
// projection was possible.
type Response struct {
	Message string         `json:"message"`
	Chart   *chart.Payload `json:"chart,omitempty"`
	Error   string         `json:"error"`
}
