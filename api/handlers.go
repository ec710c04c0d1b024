package api

import (
	"net/http"

	"github.com/sj99642/miniasm/assembler"
	"github.com/sj99642/miniasm/config"
	"github.com/sj99642/miniasm/tools"
)

// handleCreateSession handles POST /api/v1/session: assembles the given
// source synchronously and stores the outcome under a new session ID.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req AssembleRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := s.sessions.CreateSession(req.Source)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := AssembleResponse{
		SessionID: session.ID,
		CreatedAt: session.CreatedAt,
		Succeeded: session.Err == nil,
	}
	if session.Err != nil {
		resp.Error = session.Err.Error()
	} else {
		resp.Symbols = session.Result.Symbols
		resp.ByteCount = len(session.Result.Bytes)
	}

	status := http.StatusCreated
	writeJSON(w, status, resp)
}

// handleListSessions handles GET /api/v1/session.
func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sessions": s.sessions.ListSessions(),
	})
}

// handleGetSessionStatus handles GET /api/v1/session/{id}.
func (s *Server) handleGetSessionStatus(w http.ResponseWriter, r *http.Request, sessionID string) {
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	resp := SessionStatusResponse{
		SessionID: session.ID,
		CreatedAt: session.CreatedAt,
		Done:      session.Done,
		Succeeded: session.Err == nil,
	}
	if session.Err != nil {
		resp.Error = session.Err.Error()
	} else if session.Result != nil {
		resp.Symbols = session.Result.Symbols
		resp.ByteCount = len(session.Result.Bytes)
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleDestroySession handles DELETE /api/v1/session/{id}.
func (s *Server) handleDestroySession(w http.ResponseWriter, r *http.Request, sessionID string) {
	if err := s.sessions.DestroySession(sessionID); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// handleGetBytes handles GET /api/v1/session/{id}/bytes.
func (s *Server) handleGetBytes(w http.ResponseWriter, r *http.Request, sessionID string) {
	session, result, failed := s.requireAssembledSession(w, sessionID)
	if failed {
		return
	}

	if r.URL.Query().Get("format") == "hex" {
		writeJSON(w, http.StatusOK, BytesResponse{
			SessionID: session.ID,
			HexDump:   tools.HexDump(result.Bytes, 16, false),
		})
		return
	}

	writeJSON(w, http.StatusOK, BytesResponse{SessionID: session.ID, Bytes: result.Bytes})
}

// handleGetListing handles GET /api/v1/session/{id}/listing.
func (s *Server) handleGetListing(w http.ResponseWriter, r *http.Request, sessionID string) {
	session, result, failed := s.requireAssembledSession(w, sessionID)
	if failed {
		return
	}

	listing := tools.FormatListing(result.Instructions, result.Symbols)
	writeJSON(w, http.StatusOK, ListingResponse{SessionID: session.ID, Listing: listing})
}

// handleGetLint handles GET /api/v1/session/{id}/lint.
func (s *Server) handleGetLint(w http.ResponseWriter, r *http.Request, sessionID string) {
	session, result, failed := s.requireAssembledSession(w, sessionID)
	if failed {
		return
	}

	issues := tools.Lint(result.Instructions, result.Symbols, nil)
	infos := make([]*LintIssueInfo, 0, len(issues))
	for _, issue := range issues {
		infos = append(infos, &LintIssueInfo{
			Level:   issue.Level.String(),
			Line:    issue.Line,
			Message: issue.Message,
			Code:    issue.Code,
		})
	}

	writeJSON(w, http.StatusOK, LintResponse{SessionID: session.ID, Issues: infos})
}

// handleGetEvents handles GET /api/v1/session/{id}/events: replays the
// full checkpoint trace recorded while the job ran.
func (s *Server) handleGetEvents(w http.ResponseWriter, r *http.Request, sessionID string) {
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	events := session.snapshotEvents()
	infos := make([]EventInfo, 0, len(events))
	for _, evt := range events {
		infos = append(infos, EventInfo{Label: evt.Label, Payload: evt.Payload})
	}

	writeJSON(w, http.StatusOK, EventsResponse{SessionID: session.ID, Events: infos})
}

// requireAssembledSession looks up a session and writes an error response
// if it doesn't exist or didn't assemble successfully.
func (s *Server) requireAssembledSession(w http.ResponseWriter, sessionID string) (*Session, *assembler.Result, bool) {
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return nil, nil, true
	}
	if session.Err != nil || session.Result == nil {
		writeError(w, http.StatusUnprocessableEntity, "session did not assemble successfully")
		return nil, nil, true
	}
	return session, session.Result, false
}

// handleGetConfig handles GET /api/v1/config.
func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.toolConfig)
}

// handleUpdateConfig handles PUT /api/v1/config.
func (s *Server) handleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	var cfg config.Config
	if err := readJSON(r, &cfg); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.toolConfig = &cfg
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true, Message: "configuration updated"})
}
