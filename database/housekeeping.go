package database

import (
	"catalogserver/models"
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Ratings outside 0..MaxStars (or stored as an explicit null) can only come from someone writing to the collection by hand.
// They are cleared rather than clamped, the same as sending an update without a rating.
func CleanupInvalidRatings(db *mongo.Database) int {
	events := db.Collection(eventsCollection)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"nb_stars": bson.M{"$lt": 0}},
		bson.M{"nb_stars": bson.M{"$gt": models.MaxStars}},
		bson.M{"nb_stars": bson.M{"$type": "null"}},
	}}

	res, err := events.UpdateMany(ctx, filter, bson.M{"$unset": bson.M{"nb_stars": ""}})
	if err != nil {
		log.Println("Could not clear invalid ratings:", err)
		return 0
	}

	if res.ModifiedCount != 0 {
		log.Printf("Cleared %d invalid ratings.\n", res.ModifiedCount)
	}
	return int(res.ModifiedCount)
}

// An empty comment means "no comment" everywhere else, so store it that way.
func CleanupEmptyComments(db *mongo.Database) int {
	events := db.Collection(eventsCollection)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cleared := 0

	// safe unset function
	unsetComment := func(filter bson.M) {
		res, err := events.UpdateMany(ctx, filter, bson.M{"$unset": bson.M{"comment": ""}})
		if err != nil {
			log.Println("Could not clear empty comments:", err)
			return
		}
		if res != nil {
			cleared += int(res.ModifiedCount)
		}
	}

	unsetComment(bson.M{"comment": ""})                      // empty string
	unsetComment(bson.M{"comment": bson.M{"$type": "null"}}) // explicit null

	if cleared != 0 {
		log.Printf("Cleared %d empty comments.\n", cleared)
	}
	return cleared
}

func RunHousekeeping(db *mongo.Database) {
	CleanupInvalidRatings(db)
	CleanupEmptyComments(db)
}

// runs the housekeeping tasks once immediately and then on every tick until ctx is done
func StartHousekeeping(ctx context.Context, db *mongo.Database, interval time.Duration) {
	RunHousekeeping(db)

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				RunHousekeeping(db)
			}
		}
	}()
}
