package service

import (
	"catalogserver/models"
	"errors"
	"fmt"
)

// ErrInvalidRating is returned by UpdateEvent for a rating outside 0..models.MaxStars.
var ErrInvalidRating = fmt.Errorf("nbStars must be between 0 and %d", models.MaxStars)

// ErrNotFound matches every *NotFoundError through errors.Is.
var ErrNotFound = errors.New("event not found")

// NotFoundError is returned when a delete or update targets an event that isn't stored.
// It is a client input error: never retried, surfaced as is.
type NotFoundError struct {
	ID        int64
	Operation string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("The event with id %d doesn't exist - %s failed", e.ID, e.Operation)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
