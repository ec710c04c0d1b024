package api

import (
	"time"
)

// AssembleRequest is the body of POST /api/v1/session: the assembly
// source to run through the pipeline.
type AssembleRequest struct {
	Source string `json:"source"`
}

// AssembleResponse is the response from creating a session: the job ID
// plus its terminal outcome (assembly is synchronous, so the result is
// already final by the time this is returned).
type AssembleResponse struct {
	SessionID string            `json:"sessionId"`
	CreatedAt time.Time         `json:"createdAt"`
	Succeeded bool              `json:"succeeded"`
	Error     string            `json:"error,omitempty"`
	Symbols   map[string]uint32 `json:"symbols,omitempty"`
	ByteCount int               `json:"byteCount,omitempty"`
}

// SessionStatusResponse represents the current status of a session.
type SessionStatusResponse struct {
	SessionID string            `json:"sessionId"`
	CreatedAt time.Time         `json:"createdAt"`
	Done      bool              `json:"done"`
	Succeeded bool              `json:"succeeded"`
	Error     string            `json:"error,omitempty"`
	Symbols   map[string]uint32 `json:"symbols,omitempty"`
	ByteCount int               `json:"byteCount,omitempty"`
}

// BytesResponse carries the assembled program image, either raw or
// rendered as a hex dump.
type BytesResponse struct {
	SessionID string `json:"sessionId"`
	HexDump   string `json:"hexDump,omitempty"`
	Bytes     []byte `json:"bytes,omitempty"`
}

// ListingResponse carries the formatted source listing for a session.
type ListingResponse struct {
	SessionID string `json:"sessionId"`
	Listing   string `json:"listing"`
}

// LintResponse carries style findings for a session's instruction stream.
type LintResponse struct {
	SessionID string       `json:"sessionId"`
	Issues    []*LintIssueInfo `json:"issues"`
}

// LintIssueInfo mirrors tools.LintIssue for JSON transport.
type LintIssueInfo struct {
	Level   string `json:"level"`
	Line    int    `json:"line"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// EventsResponse replays the full checkpoint trace recorded during a job.
type EventsResponse struct {
	SessionID string       `json:"sessionId"`
	Events    []EventInfo  `json:"events"`
}

// EventInfo mirrors service.StageEvent for JSON transport.
type EventInfo struct {
	Label   string        `json:"label"`
	Payload []interface{} `json:"payload,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse represents a simple success response.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
