package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sybil/internal/cache"
	"sybil/internal/config"
	"sybil/internal/model"
	"sybil/internal/repository"
	"sybil/internal/service"
	"sybil/internal/transport/rest"
	"sybil/internal/transport/ws"
)

func main() {
	log.Println("S.Y.B.I.L. backend starting")
	ctx := context.Background()

	cfg := config.Load()
	aiConfig := config.DefaultAIConfig()
	log.Printf("AI Config:")
	log.Printf("  Host:    %s", aiConfig.Host)
	log.Printf("  Model:   %s", aiConfig.Model)
	log.Printf("  Timeout: %s", aiConfig.Timeout)

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// WebSocket feed hub
	wsHub := ws.NewHub()
	log.Println("Verdict feed hub started")

	// Repositories
	scenarioRepo := repository.NewScenarioRepo(db)
	rubricRepo := repository.NewRubricRepo(db)
	submissionRepo := repository.NewSubmissionRepo(db)

	// Caches
	scenarioCache := cache.NewScenarioCache(rdb)
	submissionCache := cache.NewSubmissionCache(rdb)

	// Core pipeline
	precedents := service.NewPrecedentIndex(model.DefaultIncidents())
	policyStore := service.NewPolicyStore()
	ollama := service.NewOllamaClient(aiConfig)
	tribunal := service.NewTribunalService(precedents, policyStore, ollama)

	// Services
	authSvc := service.NewAuthService()
	scenarioSvc := service.NewScenarioService(scenarioRepo, rubricRepo, scenarioCache)
	submissionSvc := service.NewSubmissionService(submissionRepo, submissionCache, scenarioSvc, tribunal)
	policyIngestor := service.NewPolicyIngestor(policyStore)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	submissionSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:       authSvc,
		ScenarioService:   scenarioSvc,
		SubmissionService: submissionSvc,
		PolicyIngestor:    policyIngestor,
		WSHub:             wsHub,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST /v1/submit")
		log.Println("  POST /v1/upload-policy")
		log.Println("  GET  /v1/scenarios")
		log.Println("  GET  /v1/scenarios/{id}")
		log.Println("  GET  /v1/scenarios/{id}/submissions")
		log.Println("  GET  /v1/submissions/{id}")
		log.Println("  WS   /v1/ws/feed")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
