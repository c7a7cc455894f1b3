package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sybil/internal/config"
	"sybil/internal/model"
	"sybil/internal/repository"
)

// Seeds the scenario catalog with the built-in Freeze Friday scenario
// and its v1.0 rubric so a fresh database can serve /v1/submit with
// persisted data instead of the in-code fallback.
func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB)

	scenarioRepo := repository.NewScenarioRepo(db)
	rubricRepo := repository.NewRubricRepo(db)

	scenario := model.DefaultScenario()
	if err := scenarioRepo.Upsert(ctx, scenario); err != nil {
		log.Fatalf("Failed to seed scenario: %v", err)
	}
	log.Printf("Seeded scenario %s (%s)", scenario.ID, scenario.Title)

	rubric := model.DefaultRubric()
	if err := rubricRepo.Upsert(ctx, rubric); err != nil {
		log.Fatalf("Failed to seed rubric: %v", err)
	}
	log.Printf("Seeded rubric %s (%s)", rubric.ID, rubric.Version)

	log.Println("Seed complete")
}
