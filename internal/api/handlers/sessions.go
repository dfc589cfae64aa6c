package handlers

import (
	"fmt"
	"net/http"
	"sync"

	"pricing-simulator/internal/api/models"
	"pricing-simulator/internal/pricing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SessionRegistry hands out independent pricing sessions. Every request may
// name a session; the empty id maps to a shared default session so simple
// clients never have to create one.
type SessionRegistry struct {
	mu       sync.RWMutex
	params   pricing.Params
	sessions map[string]*pricing.Session
	def      *pricing.Session
}

func NewSessionRegistry(params pricing.Params) (*SessionRegistry, error) {
	def, err := pricing.NewSession(params)
	if err != nil {
		return nil, err
	}
	return &SessionRegistry{
		params:   params,
		sessions: make(map[string]*pricing.Session),
		def:      def,
	}, nil
}

// Create registers a new isolated session and returns its id.
func (r *SessionRegistry) Create() (string, *pricing.Session, error) {
	sess, err := pricing.NewSession(r.params)
	if err != nil {
		return "", nil, err
	}
	id := uuid.New().String()
	r.mu.Lock()
	r.sessions[id] = sess
	r.mu.Unlock()
	return id, sess, nil
}

// Get resolves a session id; the empty id is the default session.
func (r *SessionRegistry) Get(id string) (*pricing.Session, error) {
	if id == "" {
		return r.def, nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	sess, ok := r.sessions[id]
	if !ok {
		return nil, &SessionNotFoundError{ID: id}
	}
	return sess, nil
}

// SessionNotFoundError reports a request naming a session id that was never
// created (or belongs to another server instance).
type SessionNotFoundError struct {
	ID string
}

func (e *SessionNotFoundError) Error() string {
	return fmt.Sprintf("unknown session %q", e.ID)
}

// SessionHandler handles session lifecycle requests
type SessionHandler struct {
	registry *SessionRegistry
}

func NewSessionHandler(registry *SessionRegistry) *SessionHandler {
	return &SessionHandler{registry: registry}
}

// CreateSession handles POST /api/v1/sessions
func (h *SessionHandler) CreateSession(c *gin.Context) {
	id, _, err := h.registry.Create()
	if err != nil {
		respondError(c, err)
		return
	}
	logrus.WithField("session_id", id).Info("session created")
	c.JSON(http.StatusCreated, models.SessionResponse{SessionID: id})
}
