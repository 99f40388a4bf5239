package services

import (
	"context"

	"treasurehunt_server/models"
)

// HuntQueryService serves the three paged hunt listings over the secondary
// indexes, translating opaque cursors to and from native start keys.
type HuntQueryService struct {
	Repo HuntRepository
}

// HuntListPage is the client-facing page shape. NextCursor is present only
// when the store reported a continuation point.
type HuntListPage struct {
	Items      []models.Hunt `json:"items"`
	NextCursor string        `json:"nextCursor,omitempty"`
}

// ListAllHunts returns hunts created in the given year, ordered by creation
// time
func (s *HuntQueryService) ListAllHunts(ctx context.Context, year int, ascending bool, limit int32, cursor string) (*HuntListPage, error) {
	startKey, err := DecodeCursor(cursor, IndexByYear)
	if err != nil {
		return nil, err
	}
	page, err := s.Repo.QueryHuntsByYear(ctx, year, ascending, limit, startKey)
	if err != nil {
		return nil, err
	}
	return buildListPage(page, IndexByYear)
}

// ListHuntsByType returns hunts of the given type, ordered by the time of
// their latest transition into that type. The year filter matches the year
// of that transition, not the creation year: a hunt created in 2023 but
// accepted in 2024 lists under type=ACCEPTED, year=2024.
func (s *HuntQueryService) ListHuntsByType(ctx context.Context, huntType models.HuntType, year int, ascending bool, limit int32, cursor string) (*HuntListPage, error) {
	startKey, err := DecodeCursor(cursor, IndexByType)
	if err != nil {
		return nil, err
	}
	page, err := s.Repo.QueryHuntsByType(ctx, huntType, year, ascending, limit, startKey)
	if err != nil {
		return nil, err
	}
	return buildListPage(page, IndexByType)
}

// ListPlayerHuntsByType returns a single player's hunts of the given type,
// ordered by the time of their latest transition into that type
func (s *HuntQueryService) ListPlayerHuntsByType(ctx context.Context, playerID string, huntType models.HuntType, ascending bool, limit int32, cursor string) (*HuntListPage, error) {
	startKey, err := DecodeCursor(cursor, IndexByPlayerType)
	if err != nil {
		return nil, err
	}
	page, err := s.Repo.QueryPlayerHuntsByType(ctx, playerID, huntType, ascending, limit, startKey)
	if err != nil {
		return nil, err
	}
	return buildListPage(page, IndexByPlayerType)
}

func buildListPage(page HuntPage, kind IndexKind) (*HuntListPage, error) {
	cursor, err := EncodeCursor(page.LastEvaluatedKey, kind)
	if err != nil {
		return nil, err
	}
	items := page.Items
	if items == nil {
		items = []models.Hunt{}
	}
	return &HuntListPage{Items: items, NextCursor: cursor}, nil
}
