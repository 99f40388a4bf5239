package routes

import (
	"treasurehunt_server/controllers"
	"treasurehunt_server/middleware"
	"treasurehunt_server/services"

	"github.com/gorilla/mux"
)

// RegisterHuntRoutes sets up the hunt API routes.
// Admin routes manage and list hunts; player routes serve a player's own
// hunt views, transitions, and live location updates.
func RegisterHuntRoutes(
	r *mux.Router,
	huntService *services.HuntService,
	stateService *services.HuntStateService,
	proximityService *services.ProximityService,
	queryService *services.HuntQueryService,
) {
	huntController := controllers.NewHuntController(huntService, stateService, proximityService)
	queryController := controllers.NewHuntQueryController(queryService)

	adminRouter := r.PathPrefix("/api/hunts").Subrouter()
	adminRouter.Use(middleware.RequireIdentity, middleware.RequireGroup(middleware.GroupAdmins))
	adminRouter.HandleFunc("", huntController.HandleCreateHunt).Methods("POST")
	adminRouter.HandleFunc("", queryController.HandleGetHunts).Methods("GET")

	playerRouter := r.PathPrefix("/api/players/{player}/hunts").Subrouter()
	playerRouter.Use(middleware.RequireIdentity, middleware.RequireGroup(middleware.GroupPlayers))
	playerRouter.HandleFunc("", queryController.HandleGetPlayerHunts).Methods("GET")
	playerRouter.HandleFunc("/{hunt}", huntController.HandleGetPlayerHunt).Methods("GET")
	playerRouter.HandleFunc("/{hunt}", huntController.HandleUpdatePlayerHunt).Methods("PATCH")
}
