package services

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"treasurehunt_server/models"
	"treasurehunt_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// InMemoryHuntRepository is a map-backed HuntRepository with the same
// conditional-write and paging semantics as the DynamoDB implementation.
// Used for local development and tests.
type InMemoryHuntRepository struct {
	mu    sync.Mutex
	hunts map[string]*models.Hunt
}

func NewInMemoryHuntRepository() *InMemoryHuntRepository {
	return &InMemoryHuntRepository{hunts: make(map[string]*models.Hunt)}
}

func huntKey(playerID, huntID string) string {
	return playerID + "|" + huntID
}

func (r *InMemoryHuntRepository) PutHunt(_ context.Context, hunt models.Hunt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hunts[huntKey(hunt.PlayerID, hunt.HuntID)] = &hunt
	return nil
}

func (r *InMemoryHuntRepository) GetHunt(_ context.Context, playerID, huntID string, projection []string) (map[string]types.AttributeValue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	hunt, ok := r.hunts[huntKey(playerID, huntID)]
	if !ok {
		return nil, ErrHuntNotFound
	}

	item, err := attributevalue.MarshalMap(*hunt)
	if err != nil {
		return nil, err
	}
	if len(projection) == 0 {
		return item, nil
	}

	projected := make(map[string]types.AttributeValue, len(projection))
	for _, field := range projection {
		if attr, ok := item[field]; ok {
			projected[field] = attr
		}
	}
	return projected, nil
}

func (r *InMemoryHuntRepository) UpdateHuntType(_ context.Context, playerID, huntID string, newType, currentType models.HuntType, timestamp string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	hunt, ok := r.hunts[huntKey(playerID, huntID)]
	if !ok || hunt.HuntType != currentType {
		return ErrConditionFailed
	}

	hunt.HuntType = newType
	hunt.HuntTypeTime = newType.TypeTime(timestamp)
	switch newType {
	case models.HuntTypeAccepted:
		hunt.AcceptedAt = timestamp
	case models.HuntTypeDenied:
		hunt.DeniedAt = timestamp
	case models.HuntTypeStarted:
		hunt.StartedAt = timestamp
	case models.HuntTypeStopped:
		hunt.StoppedAt = timestamp
	case models.HuntTypeCompleted:
		hunt.CompletedAt = timestamp
	}
	return nil
}

func (r *InMemoryHuntRepository) AppendPlayerLocation(_ context.Context, playerID, huntID string, location models.Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	hunt, ok := r.hunts[huntKey(playerID, huntID)]
	if !ok {
		return ErrHuntNotFound
	}
	hunt.PlayerLocations = append(hunt.PlayerLocations, location)
	return nil
}

func (r *InMemoryHuntRepository) QueryHuntsByYear(_ context.Context, year int, ascending bool, limit int32, startKey map[string]types.AttributeValue) (HuntPage, error) {
	matches := r.filter(func(h models.Hunt) bool { return h.CreatedYear == year })
	sortHunts(matches, ascending, func(h models.Hunt) string { return h.CreatedAt })
	return paginate(matches, limit, startKey, func(h models.Hunt) map[string]types.AttributeValue {
		return map[string]types.AttributeValue{
			models.AttrPlayerID:    &types.AttributeValueMemberS{Value: h.PlayerID},
			models.AttrHuntID:      &types.AttributeValueMemberS{Value: h.HuntID},
			models.AttrCreatedYear: &types.AttributeValueMemberN{Value: strconv.Itoa(h.CreatedYear)},
			models.AttrCreatedAt:   &types.AttributeValueMemberS{Value: h.CreatedAt},
		}
	}), nil
}

func (r *InMemoryHuntRepository) QueryHuntsByType(_ context.Context, huntType models.HuntType, year int, ascending bool, limit int32, startKey map[string]types.AttributeValue) (HuntPage, error) {
	prefix := huntType.TypeTime(strconv.Itoa(year))
	matches := r.filter(func(h models.Hunt) bool {
		return h.HuntType == huntType && strings.HasPrefix(h.HuntTypeTime, prefix)
	})
	sortHunts(matches, ascending, func(h models.Hunt) string { return h.HuntTypeTime })
	return paginate(matches, limit, startKey, func(h models.Hunt) map[string]types.AttributeValue {
		return map[string]types.AttributeValue{
			models.AttrPlayerID:     &types.AttributeValueMemberS{Value: h.PlayerID},
			models.AttrHuntID:       &types.AttributeValueMemberS{Value: h.HuntID},
			models.AttrHuntType:     &types.AttributeValueMemberS{Value: string(h.HuntType)},
			models.AttrHuntTypeTime: &types.AttributeValueMemberS{Value: h.HuntTypeTime},
		}
	}), nil
}

func (r *InMemoryHuntRepository) QueryPlayerHuntsByType(_ context.Context, playerID string, huntType models.HuntType, ascending bool, limit int32, startKey map[string]types.AttributeValue) (HuntPage, error) {
	matches := r.filter(func(h models.Hunt) bool {
		return h.PlayerID == playerID && strings.HasPrefix(h.HuntTypeTime, string(huntType))
	})
	sortHunts(matches, ascending, func(h models.Hunt) string { return h.HuntTypeTime })
	return paginate(matches, limit, startKey, func(h models.Hunt) map[string]types.AttributeValue {
		return map[string]types.AttributeValue{
			models.AttrPlayerID:     &types.AttributeValueMemberS{Value: h.PlayerID},
			models.AttrHuntID:       &types.AttributeValueMemberS{Value: h.HuntID},
			models.AttrHuntTypeTime: &types.AttributeValueMemberS{Value: h.HuntTypeTime},
		}
	}), nil
}

func (r *InMemoryHuntRepository) filter(match func(models.Hunt) bool) []models.Hunt {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matches []models.Hunt
	for _, hunt := range r.hunts {
		if match(*hunt) {
			matches = append(matches, *hunt)
		}
	}
	return matches
}

func sortHunts(hunts []models.Hunt, ascending bool, sortValue func(models.Hunt) string) {
	sort.Slice(hunts, func(i, j int) bool {
		a, b := sortValue(hunts[i]), sortValue(hunts[j])
		if a == b {
			// stable tie-break so paging never skips or repeats items
			a, b = hunts[i].HuntID, hunts[j].HuntID
		}
		if ascending {
			return a < b
		}
		return a > b
	})
}

func paginate(hunts []models.Hunt, limit int32, startKey map[string]types.AttributeValue, lastKey func(models.Hunt) map[string]types.AttributeValue) HuntPage {
	start := 0
	if len(startKey) > 0 {
		resumeID := utils.ExtractString(startKey, models.AttrHuntID)
		for i, hunt := range hunts {
			if hunt.HuntID == resumeID {
				start = i + 1
				break
			}
		}
	}

	end := start + int(limit)
	if limit <= 0 || end > len(hunts) {
		end = len(hunts)
	}

	page := HuntPage{Items: hunts[start:end]}
	if end < len(hunts) && end > start {
		page.LastEvaluatedKey = lastKey(hunts[end-1])
	}
	return page
}
