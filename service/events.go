// Package service ties the catalog operations to an event store: existence checks
// before deletes and updates, and a private snapshot for every search.
package service

import (
	"catalogserver/catalog"
	"catalogserver/database"
	"catalogserver/models"
	"context"
	"errors"
	"fmt"
	"log"
)

const (
	OperationDelete = "Delete"
	OperationUpdate = "Update"
	OperationGet    = "Get"
)

type EventService struct {
	store database.EventStore
}

func NewEventService(store database.EventStore) *EventService {
	return &EventService{store: store}
}

func (s *EventService) GetEvents(ctx context.Context) ([]models.Event, error) {
	return s.store.ListEvents(ctx)
}

// Searches members by name and returns the pruned, relabeled view of the catalog.
// The store already hands out a fresh snapshot per call, the filter copies it once more
// so the result never shares memory with anything the store might cache.
func (s *EventService) GetFilteredEvents(ctx context.Context, query string) ([]models.Event, error) {
	events, err := s.store.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	filtered := catalog.Filter(events, query)
	if filtered == nil {
		filtered = []models.Event{}
	}
	return filtered, nil
}

func (s *EventService) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	event, err := s.store.GetEvent(ctx, id)
	if errors.Is(err, database.ErrEventNotFound) {
		return nil, &NotFoundError{ID: id, Operation: OperationGet}
	}
	return event, err
}

func (s *EventService) Delete(ctx context.Context, id int64) error {
	exists, err := s.store.EventExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return &NotFoundError{ID: id, Operation: OperationDelete}
	}

	if err := s.store.DeleteEvent(ctx, id); err != nil {
		// deleted by someone else between the check and the delete
		if errors.Is(err, database.ErrEventNotFound) {
			return &NotFoundError{ID: id, Operation: OperationDelete}
		}
		return err
	}

	log.Printf("Deleted event %d", id)
	return nil
}

// Merges the rating and comment of incoming into the stored event and saves it.
func (s *EventService) UpdateEvent(ctx context.Context, id int64, incoming models.Event) (*models.Event, error) {
	exists, err := s.store.EventExists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &NotFoundError{ID: id, Operation: OperationUpdate}
	}

	existing, err := s.store.GetEvent(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrEventNotFound) {
			return nil, &NotFoundError{ID: id, Operation: OperationUpdate}
		}
		return nil, err
	}

	// checked after the lookup so a missing event is reported as such whatever the payload
	if incoming.NbStars != nil && (*incoming.NbStars < 0 || *incoming.NbStars > models.MaxStars) {
		return nil, ErrInvalidRating
	}

	saved, err := s.store.SaveEvent(ctx, catalog.ApplyUpdate(existing, incoming))
	if err != nil {
		return nil, fmt.Errorf("could not save event %d: %w", id, err)
	}

	return saved, nil
}

// Stores a new event. Any ID on the payload is ignored, the store assigns one.
func (s *EventService) CreateEvent(ctx context.Context, event models.Event) (*models.Event, error) {
	event.ID = 0
	saved, err := s.store.SaveEvent(ctx, &event)
	if err != nil {
		return nil, err
	}

	log.Printf("Created event %d titled '%s'", saved.ID, saved.Title)
	return saved, nil
}

func (s *EventService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
