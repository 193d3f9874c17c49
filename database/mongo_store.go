package database

import (
	"catalogserver/models"
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const eventsCollection = "events"

// Events live one document per event, bands and members embedded.
type MongoStore struct {
	db     *mongo.Database
	events *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		db:     db,
		events: db.Collection(eventsCollection),
	}
}

// index the member names so a search can be pushed down to mongo later without a collection scan
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.events.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "bands.members.name", Value: 1}},
		Options: options.Index().SetName("member_name"),
	})
	if err != nil {
		return fmt.Errorf("could not create member name index: %w", err)
	}
	return nil
}

func (s *MongoStore) ListEvents(ctx context.Context) ([]models.Event, error) {
	cursor, err := s.events.Find(ctx, bson.D{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("could not query events: %w", err)
	}
	defer cursor.Close(ctx)

	events := []models.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("could not decode events: %w", err)
	}

	return events, nil
}

func (s *MongoStore) EventExists(ctx context.Context, id int64) (bool, error) {
	count, err := s.events.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("could not count event %d: %w", id, err)
	}
	return count > 0, nil
}

func (s *MongoStore) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	var event models.Event
	err := s.events.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("could not find event %d: %w", id, err)
	}
	return &event, nil
}

func (s *MongoStore) SaveEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	saved := event.Clone()

	if saved.ID == 0 {
		id, err := NextEventID(ctx, s.db)
		if err != nil {
			return nil, err
		}
		saved.ID = id
	} else if err := BumpEventCounter(ctx, s.db, saved.ID); err != nil {
		return nil, err
	}

	_, err := s.events.ReplaceOne(ctx, bson.M{"_id": saved.ID}, saved, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("could not save event %d: %w", saved.ID, err)
	}

	return &saved, nil
}

func (s *MongoStore) DeleteEvent(ctx context.Context, id int64) error {
	res, err := s.events.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("could not delete event %d: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrEventNotFound
	}
	return nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, readpref.Primary())
}
