package api

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/sj99642/miniasm/assembler"
	"github.com/sj99642/miniasm/parser"
	"github.com/sj99642/miniasm/service"
)

var (
	// ErrSessionNotFound is returned when a session is not found.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionAlreadyExists is returned when trying to create a session with an existing ID.
	ErrSessionAlreadyExists = errors.New("session already exists")
)

// Session represents one assembly job: the source it was given, the
// events emitted while running the pipeline, and the outcome.
type Session struct {
	ID           string
	Source       string
	CreatedAt    time.Time
	Instructions []parser.Instruction
	Result       *assembler.Result
	Err          error
	Done         bool
	Events       []service.StageEvent
	mu           sync.Mutex
}

func (s *Session) recordEvent(evt service.StageEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Events = append(s.Events, evt)
}

func (s *Session) snapshotEvents() []service.StageEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]service.StageEvent, len(s.Events))
	copy(out, s.Events)
	return out
}

// SessionManager manages one assembly job per session ID.
type SessionManager struct {
	sessions    map[string]*Session
	broadcaster *Broadcaster
	mu          sync.RWMutex
}

// NewSessionManager creates a new session manager.
func NewSessionManager(broadcaster *Broadcaster) *SessionManager {
	return &SessionManager{
		sessions:    make(map[string]*Session),
		broadcaster: broadcaster,
	}
}

// CreateSession assembles source synchronously, broadcasting every pipeline
// checkpoint to WebSocket subscribers as it goes, and stores the outcome
// under a freshly generated session ID.
func (sm *SessionManager) CreateSession(source string) (*Session, error) {
	sessionID, err := generateSessionID()
	if err != nil {
		return nil, err
	}

	session := &Session{
		ID:        sessionID,
		Source:    source,
		CreatedAt: time.Now(),
	}

	sink := service.FuncSink(func(label string, payload ...interface{}) {
		evt := service.StageEvent{Label: label, Payload: payload}
		session.recordEvent(evt)
		if sm.broadcaster != nil {
			sm.broadcaster.BroadcastStage(sessionID, label, payload)
		}
	})

	result, asmErr := assembler.Assemble(source, assembler.Options{
		Filename: sessionID,
		Sink:     sink,
	})
	session.Result = result
	session.Err = asmErr
	session.Done = true

	if sm.broadcaster != nil {
		errMsg := ""
		if asmErr != nil {
			errMsg = asmErr.Error()
		}
		sm.broadcaster.BroadcastDone(sessionID, asmErr == nil, errMsg)
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.sessions[sessionID]; exists {
		return nil, ErrSessionAlreadyExists
	}
	sm.sessions[sessionID] = session
	return session, nil
}

// GetSession retrieves a session by ID.
func (sm *SessionManager) GetSession(sessionID string) (*Session, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.sessions[sessionID]
	if !exists {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// DestroySession removes a session by ID.
func (sm *SessionManager) DestroySession(sessionID string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.sessions[sessionID]; !exists {
		return ErrSessionNotFound
	}
	delete(sm.sessions, sessionID)
	return nil
}

// ListSessions returns every session ID currently held.
func (sm *SessionManager) ListSessions() []string {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	ids := make([]string, 0, len(sm.sessions))
	for id := range sm.sessions {
		ids = append(ids, id)
	}
	return ids
}

// Count returns the number of sessions currently held.
func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

func generateSessionID() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
