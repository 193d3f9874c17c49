package database

import (
	"catalogserver/models"
	"context"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Events []models.Event `yaml:"events"`
}

// Loads the events of a YAML fixture file into the store. Nothing is written when the
// store already holds events, so restarting with the same SEED_FILE is harmless.
// Returns how many events were written.
func SeedEvents(ctx context.Context, store EventStore, path string) (int, error) {
	existing, err := store.ListEvents(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		log.Printf("Store already holds %d events, skipping seed file %s", len(existing), path)
		return 0, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("could not read seed file: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return 0, fmt.Errorf("could not parse seed file %s: %w", path, err)
	}

	for i := range seed.Events {
		if _, err := store.SaveEvent(ctx, &seed.Events[i]); err != nil {
			return i, fmt.Errorf("could not seed event %q: %w", seed.Events[i].Title, err)
		}
	}

	log.Printf("Seeded %d events from %s", len(seed.Events), path)
	return len(seed.Events), nil
}
