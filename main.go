package main

import (
	"log"
	"net/http"

	"treasurehunt_server/config"
	"treasurehunt_server/controllers"
	"treasurehunt_server/routes"
	"treasurehunt_server/services"
	"treasurehunt_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize the hunt store
	var repo services.HuntRepository
	switch cfg.StorageBackend {
	case "memory":
		log.Println("Using in-memory hunt store")
		repo = services.NewInMemoryHuntRepository()
	default:
		log.Println("Initializing DynamoDB client...")
		dynamoClient := services.InitializeDynamoDBClient(cfg.AWSRegion)
		repo = &services.DynamoHuntRepository{
			Dynamo:    &services.DynamoService{Client: dynamoClient},
			TableName: cfg.PlayerHuntsTable,
		}
		log.Println("DynamoDB client initialized.")
	}

	// Initialize Services
	huntService := &services.HuntService{Repo: repo}
	stateService := &services.HuntStateService{Repo: repo}
	proximityService := &services.ProximityService{Repo: repo, State: stateService}
	queryService := &services.HuntQueryService{Repo: repo}

	// Initialize the router
	r := mux.NewRouter()
	r.HandleFunc("/", controllers.WelcomeHandler).Methods("GET")
	r.HandleFunc("/health", controllers.HealthCheckHandler).Methods("GET")

	// Register routes
	routes.RegisterHuntRoutes(r, huntService, stateService, proximityService, queryService)

	// Live location relay
	socketServer := socket.NewSocketServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()
	r.Handle("/socket.io/", socketServer)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Player-Id", "X-Player-Email", "X-Player-Groups"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsHandler))
}
