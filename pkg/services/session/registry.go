package session

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Registry keeps the live sessions of a server process.
type Registry interface {
	// Create starts a new session with an empty form
	Create(ctx context.Context) (*Session, error)
	// Get returns a live session by id
	Get(id string) (*Session, error)
	// Delete drops a session; an in-flight export still completes
	Delete(id string) error
	// List returns every live session, most recently edited first
	List() []Info
}

type registry struct {
	mu       sync.RWMutex
	deps     Dependencies
	sessions map[string]*Session
}

func NewRegistry(deps Dependencies) Registry {
	return &registry{
		deps:     deps,
		sessions: make(map[string]*Session),
	}
}

func (r *registry) Create(ctx context.Context) (*Session, error) {
	s, err := New(uuid.NewString(), r.deps)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.sessions[s.ID()] = s
	r.mu.Unlock()

	zerolog.Ctx(ctx).Info().Str("session", s.ID()).Msg("session created")
	return s, nil
}

func (r *registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	s, exists := r.sessions[id]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrSessionNotFound, id)
	}
	return s, nil
}

func (r *registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[id]; !exists {
		return fmt.Errorf("%w: %q", ErrSessionNotFound, id)
	}
	delete(r.sessions, id)
	return nil
}

func (r *registry) List() []Info {
	r.mu.RLock()
	sessions := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	r.mu.RUnlock()

	infos := make([]Info, 0, len(sessions))
	for _, s := range sessions {
		infos = append(infos, s.Info())
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].UpdatedAt.Equal(infos[j].UpdatedAt) {
			return infos[i].ID < infos[j].ID
		}
		return infos[i].UpdatedAt.After(infos[j].UpdatedAt)
	})
	return infos
}
