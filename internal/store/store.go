package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/vark-assess/backend/internal/models"
)

// ErrNotFound is returned by Get when no session exists for the id.
var ErrNotFound = errors.New("session not found in store")

// SessionStore is a keyed session store. The assessment core treats a
// Get/mutate/Save cycle as logically atomic per session id; backends are
// expected to provide at least single-writer-per-key discipline.
type SessionStore interface {
	Get(ctx context.Context, id string) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
}

// Open resolves the store backend once at process start from
// SESSION_STORE (memory | redis | postgres) and returns it for
// injection into the assessment service.
func Open(ctx context.Context) (SessionStore, error) {
	backend := os.Getenv("SESSION_STORE")
	if backend == "" {
		backend = "memory"
	}

	switch backend {
	case "memory":
		log.Println("Session store: in-memory")
		return NewMemoryStore(), nil
	case "redis":
		log.Println("Session store: redis")
		return NewRedisStore(ctx)
	case "postgres":
		log.Println("Session store: postgres")
		return NewPostgresStore()
	default:
		return nil, fmt.Errorf("unknown SESSION_STORE backend: %q", backend)
	}
}
