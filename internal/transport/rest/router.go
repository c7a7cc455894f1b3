package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"sybil/internal/service"
	"sybil/internal/transport/rest/handler"
	"sybil/internal/transport/rest/middleware"
	"sybil/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	ScenarioService   *service.ScenarioService
	SubmissionService *service.SubmissionService
	PolicyIngestor    *service.PolicyIngestor
	WSHub             *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	tribunalHandler := handler.NewTribunalHandler(c.SubmissionService)
	scenarioHandler := handler.NewScenarioHandler(c.ScenarioService)
	policyHandler := handler.NewPolicyHandler(c.PolicyIngestor, c.WSHub)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/submit", tribunalHandler.Submit).Methods("POST", "OPTIONS")
	v1.HandleFunc("/scenarios", scenarioHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/scenarios/{id}", scenarioHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/submissions/{id}", tribunalHandler.GetSubmission).Methods("GET", "OPTIONS")

	// WebSocket feed (host token in query param)
	v1.HandleFunc("/ws/feed", wsHandler.FeedWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Host routes (require host auth)
	hostRoutes := v1.NewRoute().Subrouter()
	hostRoutes.Use(authMW.RequireHost)

	hostRoutes.HandleFunc("/upload-policy", policyHandler.Upload).Methods("POST", "OPTIONS")
	hostRoutes.HandleFunc("/scenarios/{id}/submissions", tribunalHandler.ListSubmissions).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
