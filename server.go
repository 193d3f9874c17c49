package main

import (
	"catalogserver/config"
	"catalogserver/database"
	"catalogserver/restapi"
	"catalogserver/service"
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/natefinch/lumberjack"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal(err)
	}

	setupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	if cfg.SeedFile != "" {
		if _, err := database.SeedEvents(ctx, store, cfg.SeedFile); err != nil {
			log.Fatal(err)
		}
	}

	api := restapi.NewAPI(service.NewEventService(store))
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           restapi.NewRouter(api),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Signal received, stopping")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("ERROR: could not shut down cleanly: %v", err)
	}
}

// stdout always, plus a rotated file when LOG_FILE is set
func setupLogging(cfg *config.Config) {
	if cfg.LogFile == "" {
		log.SetOutput(os.Stdout)
		return
	}

	log.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    50, // megabytes
		MaxBackups: 5,
		MaxAge:     28, // days
		Compress:   true,
	}))
}

func openStore(ctx context.Context, cfg *config.Config) (database.EventStore, func(), error) {
	if cfg.StoreBackend == config.BackendMemory {
		log.Println("Using in-memory event store, nothing will be persisted")
		return database.NewMemoryStore(), func() {}, nil
	}

	client, db, err := database.Connect(ctx, cfg.MongoURI, cfg.DatabaseName)
	if err != nil {
		return nil, nil, err
	}

	store := database.NewMongoStore(db)
	if err := store.EnsureIndexes(ctx); err != nil {
		log.Printf("WARN: %v", err)
	}

	database.StartHousekeeping(ctx, db, cfg.HousekeepingInterval)

	cleanup := func() {
		disconnect(client)
	}
	return store, cleanup, nil
}

func disconnect(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("ERROR: could not disconnect from mongo: %v", err)
	}
}
