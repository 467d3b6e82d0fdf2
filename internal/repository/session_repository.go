package repository

import (
	"sync"

	"adaptive-quiz-service/internal/models"
)

type sessionEntry struct {
	mu      sync.Mutex
	session *models.QuizSession
}

// SessionRepository is the in-memory session store. It owns a lock per
// session id, so at most one mutation runs per session while distinct
// sessions proceed in parallel.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[string]*sessionEntry)}
}

func (r *SessionRepository) Create(session *models.QuizSession) {
	r.mu.Lock()
	r.sessions[session.ID] = &sessionEntry{session: session}
	r.mu.Unlock()
}

func (r *SessionRepository) lookup(id string) (*sessionEntry, error) {
	r.mu.RLock()
	entry, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return entry, nil
}

// Update runs fn with the session's lock held. All session mutation goes
// through here.
func (r *SessionRepository) Update(id string, fn func(*models.QuizSession) error) error {
	entry, err := r.lookup(id)
	if err != nil {
		return err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return fn(entry.session)
}

// View runs fn with the session's lock held; fn must not mutate the session.
func (r *SessionRepository) View(id string, fn func(*models.QuizSession)) error {
	entry, err := r.lookup(id)
	if err != nil {
		return err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	fn(entry.session)
	return nil
}
