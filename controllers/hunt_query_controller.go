package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"treasurehunt_server/models"
	"treasurehunt_server/services"

	"github.com/gorilla/mux"
)

const defaultListingLimit = 20

// HuntQueryController serves the paged hunt listings
type HuntQueryController struct {
	QueryService *services.HuntQueryService
}

// NewHuntQueryController creates a new HuntQueryController instance
func NewHuntQueryController(queryService *services.HuntQueryService) *HuntQueryController {
	return &HuntQueryController{QueryService: queryService}
}

// listingOptions holds the resolved query parameters shared by every listing.
// Defaults: current UTC year, descending order, 20 items per page.
type listingOptions struct {
	Year      int
	Ascending bool
	Limit     int32
	Cursor    string
}

func listingOptionsFromRequest(r *http.Request) listingOptions {
	query := r.URL.Query()
	opts := listingOptions{
		Year:      time.Now().UTC().Year(),
		Ascending: strings.EqualFold(query.Get("sortOrder"), "asc"),
		Limit:     defaultListingLimit,
		Cursor:    query.Get("cursor"),
	}

	// a year is only honored when it looks like one, matching the original
	// four-digit check
	if yearStr := query.Get("year"); len(yearStr) == 4 {
		if year, err := strconv.Atoi(yearStr); err == nil {
			opts.Year = year
		}
	}
	if limitStr := query.Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			opts.Limit = int32(limit)
		}
	}
	return opts
}

// HandleGetHunts lists hunts for a year, optionally filtered by type (admin
// view). With a type filter, the year matches the latest transition into
// that type rather than the creation year.
func (hc *HuntQueryController) HandleGetHunts(w http.ResponseWriter, r *http.Request) {
	opts := listingOptionsFromRequest(r)

	var (
		page *services.HuntListPage
		err  error
	)
	if typeStr := r.URL.Query().Get("type"); typeStr != "" {
		huntType, parseErr := models.ParseHuntType(typeStr)
		if parseErr != nil {
			writeBadRequest(w, parseErr.Error())
			return
		}
		page, err = hc.QueryService.ListHuntsByType(r.Context(), huntType, opts.Year, opts.Ascending, opts.Limit, opts.Cursor)
	} else {
		page, err = hc.QueryService.ListAllHunts(r.Context(), opts.Year, opts.Ascending, opts.Limit, opts.Cursor)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// HandleGetPlayerHunts lists one player's hunts of a required type
func (hc *HuntQueryController) HandleGetPlayerHunts(w http.ResponseWriter, r *http.Request) {
	playerID := mux.Vars(r)["player"]
	typeStr := r.URL.Query().Get("type")
	if playerID == "" || typeStr == "" {
		writeBadRequest(w, "Must provide player ID and hunt type")
		return
	}

	huntType, err := models.ParseHuntType(typeStr)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	opts := listingOptionsFromRequest(r)
	page, err := hc.QueryService.ListPlayerHuntsByType(r.Context(), playerID, huntType, opts.Ascending, opts.Limit, opts.Cursor)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}
