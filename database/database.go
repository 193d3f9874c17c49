package database

import (
	"catalogserver/models"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// EventStore is the persistence side of the catalog. Every call returns records the
// caller owns outright: implementations never hand out something they keep a reference to.
type EventStore interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
	EventExists(ctx context.Context, id int64) (bool, error)
	// returns ErrEventNotFound when nothing is stored under id
	GetEvent(ctx context.Context, id int64) (*models.Event, error)
	// inserts or replaces the event, assigning an ID first when it has none
	SaveEvent(ctx context.Context, event *models.Event) (*models.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}

var ErrEventNotFound = errors.New("event not found")

// Connects to mongo and pings the primary before handing back the database, so a bad
// connection string fails at startup instead of on the first request.
func Connect(ctx context.Context, uri string, name string) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to mongo: %w", err)
	}

	// Ping the primary
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("could not ping mongo: %w", err)
	}

	log.Printf("Successfully connected and pinged %s", name)

	return client, client.Database(name), nil
}
