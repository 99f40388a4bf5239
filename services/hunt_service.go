package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"treasurehunt_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/google/uuid"
)

// HuntService handles hunt creation and point reads
type HuntService struct {
	Repo HuntRepository
}

// CreateHuntInput is the admin request to set up a hunt for a player
type CreateHuntInput struct {
	PlayerID            string          `json:"playerID"`
	PlayerEmail         string          `json:"playerEmail"`
	TreasureImage       string          `json:"treasureImage"`
	TreasureDescription string          `json:"treasureDescription"`
	TreasureLocation    models.Location `json:"treasureLocation"`
	TriggerDistance     float64         `json:"triggerDistance"`
}

// ErrMissingHuntFields is returned when a create request omits a required property
var ErrMissingHuntFields = errors.New("must provide all required properties in body")

// Validate checks that every required field is present and well-formed
func (in CreateHuntInput) Validate() error {
	if in.PlayerID == "" || in.PlayerEmail == "" || in.TreasureImage == "" ||
		in.TreasureDescription == "" || in.TriggerDistance == 0 {
		return ErrMissingHuntFields
	}
	if in.TriggerDistance < 0 {
		return fmt.Errorf("%w: trigger distance must be positive", ErrMissingHuntFields)
	}
	if !in.TreasureLocation.IsValid() {
		return ErrInvalidLocation
	}
	return nil
}

// CreateHunt stores a new hunt in the CREATED state, assigned to the player
// named in the input. The treasure location and trigger distance are fixed
// for the life of the hunt.
func (s *HuntService) CreateHunt(ctx context.Context, createdBy string, in CreateHuntInput) (*models.Hunt, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	timestamp := now.Format(time.RFC3339)
	treasureLocation := in.TreasureLocation

	hunt := models.Hunt{
		PlayerID:            in.PlayerID,
		HuntID:              uuid.NewString(),
		PlayerEmail:         in.PlayerEmail,
		PlayerLocations:     []models.Location{},
		TreasureImage:       in.TreasureImage,
		TreasureDescription: in.TreasureDescription,
		TreasureLocation:    &treasureLocation,
		TriggerDistance:     in.TriggerDistance,
		CreatedBy:           createdBy,
		CreatedAt:           timestamp,
		CreatedYear:         now.Year(),
		HuntType:            models.HuntTypeCreated,
		HuntTypeTime:        models.HuntTypeCreated.TypeTime(timestamp),
	}

	if err := s.Repo.PutHunt(ctx, hunt); err != nil {
		return nil, err
	}
	return &hunt, nil
}

// GetPlayerHunt retrieves a single hunt record
func (s *HuntService) GetPlayerHunt(ctx context.Context, playerID, huntID string) (*models.Hunt, error) {
	item, err := s.Repo.GetHunt(ctx, playerID, huntID, nil)
	if err != nil {
		return nil, err
	}

	var hunt models.Hunt
	if err := attributevalue.UnmarshalMap(item, &hunt); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hunt: %w", err)
	}
	return &hunt, nil
}
