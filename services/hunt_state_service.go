package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"treasurehunt_server/models"
)

// HuntStateService validates and executes hunt type transitions
type HuntStateService struct {
	Repo HuntRepository
}

// transitionPrereqs maps each reachable target type to the single state the
// hunt must currently be in:
//
//	CREATED -> ACCEPTED | DENIED
//	ACCEPTED -> STARTED
//	STARTED -> STOPPED | COMPLETED
//
// DENIED, STOPPED and COMPLETED are terminal. CREATED is only ever set at
// hunt creation, so it has no entry.
var transitionPrereqs = map[models.HuntType]models.HuntType{
	models.HuntTypeAccepted:  models.HuntTypeCreated,
	models.HuntTypeDenied:    models.HuntTypeCreated,
	models.HuntTypeStarted:   models.HuntTypeAccepted,
	models.HuntTypeStopped:   models.HuntTypeStarted,
	models.HuntTypeCompleted: models.HuntTypeStarted,
}

// Transition advances the hunt to targetType via a single conditional write.
// The write is conditioned on the stored type still being the required prior
// state, so two racing requests for the same edge produce exactly one success
// and one ErrConcurrentTransition. Losers are never retried here.
func (s *HuntStateService) Transition(ctx context.Context, playerID, huntID string, targetType models.HuntType) error {
	currentType, ok := transitionPrereqs[targetType]
	if !ok {
		return fmt.Errorf("%w: no transition to %q", ErrInvalidTransition, targetType)
	}

	timestamp := time.Now().UTC().Format(time.RFC3339)
	if err := s.Repo.UpdateHuntType(ctx, playerID, huntID, targetType, currentType, timestamp); err != nil {
		if errors.Is(err, ErrConditionFailed) {
			return fmt.Errorf("%w: hunt for player %s is not %s", ErrConcurrentTransition, playerID, currentType)
		}
		return err
	}
	return nil
}
