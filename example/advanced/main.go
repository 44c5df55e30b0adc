package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/siherrmann/nluparsers"
	"github.com/siherrmann/nluparsers/database"
	"github.com/siherrmann/nluparsers/helper"
	"github.com/siherrmann/nluparsers/model"
	"github.com/siherrmann/nluparsers/ontology"
)

func main() {
	// The database settings are read from DB_* variables, optionally from .env
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	logger := slog.New(helper.NewPrettyHandler(os.Stdout, helper.PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{Level: slog.LevelDebug},
	}))

	ctx := context.Background()

	var db *helper.Database
	if os.Getenv("DB_HOST") == "" {
		// Start a test PostgreSQL container
		teardown, dbPort, err := helper.MustStartPostgresContainer()
		if err != nil {
			log.Fatalf("Failed to start PostgreSQL container: %v", err)
		}
		defer teardown(ctx)

		db = helper.NewDatabase("example", &helper.DatabaseConfiguration{
			Host:     "localhost",
			Port:     dbPort,
			Database: "database",
			Username: "user",
			Password: "password",
			Schema:   "public",
			SSLMode:  "disable",
		}, logger)
	} else {
		dbConfig, err := helper.NewDatabaseConfiguration()
		if err != nil {
			log.Fatalf("Failed to read database configuration: %v", err)
		}
		db = helper.NewDatabase("example", dbConfig, logger)
	}
	defer db.Close()

	store, err := database.NewGazetteerExtensionsDBHandler(db, false)
	if err != nil {
		log.Fatalf("Failed to create gazetteer extension store: %v", err)
	}

	parser, err := nluparsers.FromPath(filepath.Join("testdata", "builtin_entity_parser"), nluparsers.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to load parser: %v", err)
	}

	sentence := "Je veux écouter my favourite band demain"
	fmt.Printf("Before extension: %+v\n", parser.Extract(sentence, nil))

	err = parser.ExtendAndStoreGazetteerEntity(ctx, store, ontology.GazetteerMusicArtist, []model.EntityValue{
		{RawValue: "my favourite band", ResolvedValue: "The Rolling Stones"},
	})
	if err != nil {
		log.Fatalf("Failed to extend parser: %v", err)
	}
	fmt.Printf("After extension: %+v\n", parser.Extract(sentence, nil))

	// A freshly loaded parser only knows the extensions after a replay
	reloaded, err := nluparsers.FromPath(filepath.Join("testdata", "builtin_entity_parser"), nluparsers.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to reload parser: %v", err)
	}
	applied, err := reloaded.ReplayGazetteerExtensions(ctx, store)
	if err != nil {
		log.Fatalf("Failed to replay extensions: %v", err)
	}
	fmt.Printf("Replayed %d values: %+v\n", applied, reloaded.Extract(sentence, nil))

	// Persisted parsers keep the extended vocabularies
	dir, err := os.MkdirTemp("", "nluparsers")
	if err != nil {
		log.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(dir)

	if err := reloaded.Persist(filepath.Join(dir, "parser")); err != nil {
		log.Fatalf("Failed to persist parser: %v", err)
	}
	fmt.Printf("Persisted parser to %s\n", filepath.Join(dir, "parser"))

	if _, err := store.DeleteGazetteerExtensions(ctx, ontology.FR.String(), nil); err != nil {
		log.Fatalf("Failed to clean up extensions: %v", err)
	}

	fmt.Println("\nAdvanced example completed successfully!")
}
