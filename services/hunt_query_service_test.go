package services_test

import (
	"context"
	"fmt"
	"testing"

	"treasurehunt_server/models"
	"treasurehunt_server/services"

	"github.com/stretchr/testify/require"
)

func newQueryFixture(t *testing.T) (*services.HuntQueryService, *services.InMemoryHuntRepository) {
	t.Helper()
	repo := services.NewInMemoryHuntRepository()
	return &services.HuntQueryService{Repo: repo}, repo
}

// seedYearHunts stores n CREATED hunts in the given year with increasing
// creation timestamps.
func seedYearHunts(t *testing.T, repo *services.InMemoryHuntRepository, year, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		createdAt := fmt.Sprintf("%d-01-%02dT00:00:00Z", year, i+1)
		id := fmt.Sprintf("hunt-%d-%d", year, i)
		seedHunt(t, repo, models.Hunt{
			PlayerID:     fmt.Sprintf("player-%d", i%3),
			HuntID:       id,
			HuntType:     models.HuntTypeCreated,
			HuntTypeTime: models.HuntTypeCreated.TypeTime(createdAt),
			CreatedAt:    createdAt,
			CreatedYear:  year,
		})
		ids = append(ids, id)
	}
	return ids
}

// collectAllHunts pages through a listing until no cursor is returned
func collectAllHunts(t *testing.T, list func(cursor string) (*services.HuntListPage, error)) []models.Hunt {
	t.Helper()
	var all []models.Hunt
	cursor := ""
	for {
		page, err := list(cursor)
		require.NoError(t, err)
		all = append(all, page.Items...)
		if page.NextCursor == "" {
			return all
		}
		cursor = page.NextCursor
	}
}

// TestListAllHunts_exhaustion verifies that paging through with the returned
// cursors yields the full, non-overlapping, correctly ordered set.
func TestListAllHunts_exhaustion(t *testing.T) {
	query, repo := newQueryFixture(t)
	seedYearHunts(t, repo, 2024, 7)
	seedYearHunts(t, repo, 2023, 3) // other year, must not appear
	ctx := context.Background()

	all := collectAllHunts(t, func(cursor string) (*services.HuntListPage, error) {
		return query.ListAllHunts(ctx, 2024, false, 2, cursor)
	})

	require.Len(t, all, 7)
	seen := map[string]bool{}
	for i, hunt := range all {
		require.Equal(t, 2024, hunt.CreatedYear)
		require.False(t, seen[hunt.HuntID], "hunt %s repeated across pages", hunt.HuntID)
		seen[hunt.HuntID] = true
		if i > 0 {
			require.GreaterOrEqual(t, all[i-1].CreatedAt, hunt.CreatedAt, "descending by default")
		}
	}
}

func TestListAllHunts_ascending(t *testing.T) {
	query, repo := newQueryFixture(t)
	seedYearHunts(t, repo, 2024, 4)

	page, err := query.ListAllHunts(context.Background(), 2024, true, 10, "")
	require.NoError(t, err)
	require.Len(t, page.Items, 4)
	require.Empty(t, page.NextCursor, "a page that exhausts the results carries no cursor")
	for i := 1; i < len(page.Items); i++ {
		require.LessOrEqual(t, page.Items[i-1].CreatedAt, page.Items[i].CreatedAt)
	}
}

// TestListHuntsByType_yearOfTransition pins down the composite-key behavior:
// the year filter matches the latest transition into the type, not the
// creation year. A hunt created in 2023 but accepted in 2024 lists under
// type=ACCEPTED, year=2024 and not under 2023.
func TestListHuntsByType_yearOfTransition(t *testing.T) {
	query, repo := newQueryFixture(t)
	ctx := context.Background()

	seedHunt(t, repo, models.Hunt{
		PlayerID:     "player-1",
		HuntID:       "hunt-1",
		HuntType:     models.HuntTypeAccepted,
		HuntTypeTime: "ACCEPTED#2024-02-01T00:00:00Z",
		AcceptedAt:   "2024-02-01T00:00:00Z",
		CreatedAt:    "2023-11-01T00:00:00Z",
		CreatedYear:  2023,
	})

	page, err := query.ListHuntsByType(ctx, models.HuntTypeAccepted, 2024, false, 10, "")
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, "hunt-1", page.Items[0].HuntID)

	page, err = query.ListHuntsByType(ctx, models.HuntTypeAccepted, 2023, false, 10, "")
	require.NoError(t, err)
	require.Empty(t, page.Items, "the creation year does not match the type listing")
}

func TestListHuntsByType_exhaustion(t *testing.T) {
	query, repo := newQueryFixture(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		timestamp := fmt.Sprintf("2024-03-%02dT00:00:00Z", i+1)
		seedHunt(t, repo, models.Hunt{
			PlayerID:     "player-1",
			HuntID:       fmt.Sprintf("hunt-%d", i),
			HuntType:     models.HuntTypeStarted,
			HuntTypeTime: models.HuntTypeStarted.TypeTime(timestamp),
			CreatedAt:    timestamp,
			CreatedYear:  2024,
		})
	}
	// different type, must not appear
	seedHunt(t, repo, models.Hunt{
		PlayerID:     "player-1",
		HuntID:       "hunt-denied",
		HuntType:     models.HuntTypeDenied,
		HuntTypeTime: "DENIED#2024-03-01T00:00:00Z",
		CreatedYear:  2024,
	})

	all := collectAllHunts(t, func(cursor string) (*services.HuntListPage, error) {
		return query.ListHuntsByType(ctx, models.HuntTypeStarted, 2024, false, 2, cursor)
	})

	require.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		require.GreaterOrEqual(t, all[i-1].HuntTypeTime, all[i].HuntTypeTime)
	}
}

func TestListPlayerHuntsByType(t *testing.T) {
	query, repo := newQueryFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		timestamp := fmt.Sprintf("2024-04-%02dT00:00:00Z", i+1)
		seedHunt(t, repo, models.Hunt{
			PlayerID:     "player-1",
			HuntID:       fmt.Sprintf("hunt-%d", i),
			HuntType:     models.HuntTypeCompleted,
			HuntTypeTime: models.HuntTypeCompleted.TypeTime(timestamp),
			CompletedAt:  timestamp,
		})
	}
	// same type, different player
	seedHunt(t, repo, models.Hunt{
		PlayerID:     "player-2",
		HuntID:       "other-hunt",
		HuntType:     models.HuntTypeCompleted,
		HuntTypeTime: "COMPLETED#2024-04-01T00:00:00Z",
	})

	all := collectAllHunts(t, func(cursor string) (*services.HuntListPage, error) {
		return query.ListPlayerHuntsByType(ctx, "player-1", models.HuntTypeCompleted, false, 2, cursor)
	})

	require.Len(t, all, 3)
	for _, hunt := range all {
		require.Equal(t, "player-1", hunt.PlayerID)
	}
}

func TestListings_malformedCursor(t *testing.T) {
	query, _ := newQueryFixture(t)
	ctx := context.Background()

	_, err := query.ListAllHunts(ctx, 2024, false, 10, "not-a-cursor")
	require.ErrorIs(t, err, services.ErrMalformedCursor)

	_, err = query.ListHuntsByType(ctx, models.HuntTypeAccepted, 2024, false, 10, "not-a-cursor")
	require.ErrorIs(t, err, services.ErrMalformedCursor)

	_, err = query.ListPlayerHuntsByType(ctx, "player-1", models.HuntTypeAccepted, false, 10, "not-a-cursor")
	require.ErrorIs(t, err, services.ErrMalformedCursor)
}

func TestListAllHunts_emptyYear(t *testing.T) {
	query, _ := newQueryFixture(t)

	page, err := query.ListAllHunts(context.Background(), 1999, false, 10, "")
	require.NoError(t, err)
	require.NotNil(t, page.Items)
	require.Empty(t, page.Items)
	require.Empty(t, page.NextCursor)
}
