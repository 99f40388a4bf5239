package controllers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestListingOptions_defaults verifies the documented defaults: current UTC
// year, descending order, 20 items, no cursor.
func TestListingOptions_defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/hunts", nil)

	opts := listingOptionsFromRequest(r)

	require.Equal(t, time.Now().UTC().Year(), opts.Year)
	require.False(t, opts.Ascending)
	require.Equal(t, int32(20), opts.Limit)
	require.Empty(t, opts.Cursor)
}

func TestListingOptions_overrides(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/hunts?year=2023&sortOrder=ASC&limit=5&cursor=abc", nil)

	opts := listingOptionsFromRequest(r)

	require.Equal(t, 2023, opts.Year)
	require.True(t, opts.Ascending)
	require.Equal(t, int32(5), opts.Limit)
	require.Equal(t, "abc", opts.Cursor)
}

// TestListingOptions_invalidValues verifies malformed parameters fall back to
// the defaults rather than failing the request.
func TestListingOptions_invalidValues(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/hunts?year=24&sortOrder=descending&limit=-3", nil)

	opts := listingOptionsFromRequest(r)

	require.Equal(t, time.Now().UTC().Year(), opts.Year, "a non-four-digit year is ignored")
	require.False(t, opts.Ascending)
	require.Equal(t, int32(20), opts.Limit)
}
