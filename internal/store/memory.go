package store

import (
	"context"
	"sync"

	"github.com/vark-assess/backend/internal/models"
)

// MemoryStore is the default backend: a mutex-guarded map. Sessions are
// deep-copied on both Get and Save so callers never alias stored state.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*models.Session)}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copySession(session), nil
}

func (s *MemoryStore) Save(ctx context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = copySession(session)
	return nil
}

func copySession(session *models.Session) *models.Session {
	out := *session

	out.History = make([]models.HistoryEntry, len(session.History))
	for i, entry := range session.History {
		out.History[i] = entry
		if entry.AnsweredAt != nil {
			ts := *entry.AnsweredAt
			out.History[i].AnsweredAt = &ts
		}
	}

	if session.CurrentQuestion != nil {
		q := *session.CurrentQuestion
		q.Options = make([]models.Option, len(session.CurrentQuestion.Options))
		copy(q.Options, session.CurrentQuestion.Options)
		out.CurrentQuestion = &q
	}

	return &out
}
