package controllers

import (
	"encoding/json"
	"net/http"

	"treasurehunt_server/middleware"
	"treasurehunt_server/models"
	"treasurehunt_server/services"

	"github.com/gorilla/mux"
)

// HuntController handles HTTP requests that mutate or read a single hunt
type HuntController struct {
	HuntService      *services.HuntService
	StateService     *services.HuntStateService
	ProximityService *services.ProximityService
}

// NewHuntController creates a new HuntController instance
func NewHuntController(huntService *services.HuntService, stateService *services.HuntStateService, proximityService *services.ProximityService) *HuntController {
	return &HuntController{
		HuntService:      huntService,
		StateService:     stateService,
		ProximityService: proximityService,
	}
}

// HandleCreateHunt sets up a new hunt for a player (admin only)
func (hc *HuntController) HandleCreateHunt(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	var body services.CreateHuntInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "Invalid request payload")
		return
	}

	hunt, err := hc.HuntService.CreateHunt(r.Context(), identity.Email, body)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Treasure Hunt Created",
		"huntID":  hunt.HuntID,
	})
}

// HandleGetPlayerHunt returns a single hunt record
func (hc *HuntController) HandleGetPlayerHunt(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	playerID, huntID := vars["player"], vars["hunt"]

	hunt, err := hc.HuntService.GetPlayerHunt(r.Context(), playerID, huntID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"item": hunt})
}

// HandleUpdatePlayerHunt routes an update body to either a type transition
// (body carries "type") or a location evaluation (body carries "location").
// The two are alternative request shapes over the same hunt record; a pure
// type change never evaluates proximity.
func (hc *HuntController) HandleUpdatePlayerHunt(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	playerID, huntID := vars["player"], vars["hunt"]

	var body struct {
		Type     string           `json:"type"`
		Location *models.Location `json:"location"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "Invalid request payload")
		return
	}

	if body.Type != "" {
		huntType, err := models.ParseHuntType(body.Type)
		if err != nil {
			writeError(w, services.ErrInvalidTransition)
			return
		}
		if err := hc.StateService.Transition(r.Context(), playerID, huntID, huntType); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Player hunt type updated"})
		return
	}

	if body.Location != nil {
		result, err := hc.ProximityService.RecordLocationAndEvaluate(r.Context(), playerID, huntID, *body.Location)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
		return
	}

	writeBadRequest(w, "Must provide hunt type or location in request body")
}
