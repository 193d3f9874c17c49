package database

import (
	"catalogserver/models"
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps the catalog in a map. Records are deep copied on the way in and
// on the way out, so callers can relabel or merge what they get back freely.
type MemoryStore struct {
	mu     sync.RWMutex
	events map[int64]models.Event
	lastID int64
}

func NewMemoryStore(events ...models.Event) *MemoryStore {
	store := &MemoryStore{events: make(map[int64]models.Event)}
	for i := range events {
		_, _ = store.SaveEvent(context.Background(), &events[i])
	}
	return store
}

func (s *MemoryStore) ListEvents(ctx context.Context) ([]models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]models.Event, 0, len(s.events))
	for _, event := range s.events {
		events = append(events, event.Clone())
	}

	// same order mongo hands them back in
	sort.Slice(events, func(i, j int) bool {
		return events[i].ID < events[j].ID
	})

	return events, nil
}

func (s *MemoryStore) EventExists(ctx context.Context, id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.events[id]
	return ok, nil
}

func (s *MemoryStore) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	event, ok := s.events[id]
	if !ok {
		return nil, ErrEventNotFound
	}
	clone := event.Clone()
	return &clone, nil
}

func (s *MemoryStore) SaveEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := event.Clone()
	if saved.ID == 0 {
		s.lastID++
		saved.ID = s.lastID
	} else if saved.ID > s.lastID {
		s.lastID = saved.ID
	}

	s.events[saved.ID] = saved

	out := saved.Clone()
	return &out, nil
}

func (s *MemoryStore) DeleteEvent(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[id]; !ok {
		return ErrEventNotFound
	}
	delete(s.events, id)
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}
