package services

import (
	"context"
	"errors"
	"log"

	"treasurehunt_server/geo"
	"treasurehunt_server/models"
	"treasurehunt_server/utils"
)

// ProximityService records a player's live position against a hunt and
// decides whether the treasure has been found
type ProximityService struct {
	Repo  HuntRepository
	State *HuntStateService
}

// ProximityResult is returned for every location update: whether the player
// won, plus the distance and bearing steering them toward the treasure.
type ProximityResult struct {
	IsWinner            bool   `json:"isWinner"`
	TreasureImage       string `json:"treasureImage"`
	TreasureDescription string `json:"treasureDescription"`
	TreasureBearing     int    `json:"treasureBearing"`
	TreasureDistance    int    `json:"treasureDistance"`
}

// RecordLocationAndEvaluate appends the player's coordinate to the hunt's
// location history, then compares the coordinate against the treasure. A win
// requires the distance to be strictly below the trigger distance; landing
// exactly on the boundary does not win. On a win the hunt transitions to
// COMPLETED; if another location update already completed it, the report is
// still a win for the caller.
func (s *ProximityService) RecordLocationAndEvaluate(ctx context.Context, playerID, huntID string, location models.Location) (*ProximityResult, error) {
	if !location.IsValid() {
		return nil, ErrInvalidLocation
	}

	if err := s.Repo.AppendPlayerLocation(ctx, playerID, huntID, location); err != nil {
		return nil, err
	}

	item, err := s.Repo.GetHunt(ctx, playerID, huntID, []string{
		models.AttrTreasureLocation,
		models.AttrTreasureImage,
		models.AttrTreasureDescription,
		models.AttrTriggerDistance,
	})
	if err != nil {
		return nil, err
	}

	treasureLocation := utils.ExtractLocation(item, models.AttrTreasureLocation)
	triggerDistance, hasTrigger := utils.ExtractFloat(item, models.AttrTriggerDistance)
	if treasureLocation == nil || !hasTrigger {
		log.Printf("Hunt %s for player %s is missing treasure data", huntID, playerID)
		return nil, ErrMissingTreasureData
	}

	distance := geo.DistanceMeters(location, *treasureLocation)
	result := &ProximityResult{
		IsWinner:            float64(distance) < triggerDistance,
		TreasureImage:       utils.ExtractString(item, models.AttrTreasureImage),
		TreasureDescription: utils.ExtractString(item, models.AttrTreasureDescription),
		TreasureBearing:     geo.FinalBearingDegrees(location, *treasureLocation),
		TreasureDistance:    distance,
	}

	if result.IsWinner {
		err := s.State.Transition(ctx, playerID, huntID, models.HuntTypeCompleted)
		if err != nil && !errors.Is(err, ErrConcurrentTransition) {
			return nil, err
		}
	}
	return result, nil
}
