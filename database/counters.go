package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// atomic $inc on a single counter document so concurrent creates never get the same ID
func NextEventID(ctx context.Context, db *mongo.Database) (int64, error) {
	counters := db.Collection("counters")

	var counter struct {
		Seq int64 `bson:"seq"`
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	err := counters.FindOneAndUpdate(ctx, bson.M{"_id": eventsCollection}, bson.M{"$inc": bson.M{"seq": 1}}, opts).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("could not get next event id: %w", err)
	}

	return counter.Seq, nil
}

// moves the counter forward so IDs handed out later never collide with seeded ones
func BumpEventCounter(ctx context.Context, db *mongo.Database, atLeast int64) error {
	counters := db.Collection("counters")

	_, err := counters.UpdateOne(ctx, bson.M{"_id": eventsCollection}, bson.M{"$max": bson.M{"seq": atLeast}}, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("could not bump event counter: %w", err)
	}
	return nil
}
