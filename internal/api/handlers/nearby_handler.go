package handlers

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/zatekoja/nearbycare/internal/domain/entities"
	apperrors "github.com/zatekoja/nearbycare/pkg/errors"
)

// NearbyCareService is the search pipeline the handler delegates to
type NearbyCareService interface {
	FindNearby(ctx context.Context, query entities.NearbyQuery) (*entities.NearbyResponse, error)
}

// NearbyHandler handles nearby medical facility searches
type NearbyHandler struct {
	service       NearbyCareService
	apiKey        string
	credentialEnv string
	now           func() time.Time
}

// NewNearbyHandler creates a new nearby handler. apiKey is the places
// provider credential; credentialEnv names where it is configured.
func NewNearbyHandler(service NearbyCareService, apiKey, credentialEnv string) *NearbyHandler {
	return &NearbyHandler{
		service:       service,
		apiKey:        apiKey,
		credentialEnv: credentialEnv,
		now:           time.Now,
	}
}

// WithClock overrides the clock used to resolve the target day (used for tests).
func (h *NearbyHandler) WithClock(now func() time.Time) *NearbyHandler {
	h.now = now
	return h
}

// FindNearby handles GET /api/nearby?lat=...&lng=...&day=today|tomorrow
func (h *NearbyHandler) FindNearby(w http.ResponseWriter, r *http.Request) {
	query, err := h.parseQuery(r)
	if err != nil {
		RespondWithAppError(w, r, err)
		return
	}

	resp, err := h.service.FindNearby(r.Context(), *query)
	if err != nil {
		RespondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, resp)
}

func (h *NearbyHandler) parseQuery(r *http.Request) (*entities.NearbyQuery, error) {
	params := r.URL.Query()
	latStr := strings.TrimSpace(params.Get("lat"))
	lngStr := strings.TrimSpace(params.Get("lng"))
	if latStr == "" || lngStr == "" {
		return nil, apperrors.NewValidationError("lat,lng required")
	}

	if h.apiKey == "" {
		return nil, apperrors.NewConfigurationError(h.credentialEnv)
	}

	lat, err := parseCoordinate(latStr)
	if err != nil {
		return nil, err
	}
	lng, err := parseCoordinate(lngStr)
	if err != nil {
		return nil, err
	}

	day := params.Get("day")
	if day == "" {
		day = entities.DayToday
	}

	return &entities.NearbyQuery{
		Origin:  entities.Coordinates{Latitude: lat, Longitude: lng},
		Day:     day,
		Weekday: entities.ResolveWeekday(day, h.now()),
	}, nil
}

// parseCoordinate accepts finite decimal degrees only; ParseFloat alone lets
// NaN and Inf through.
func parseCoordinate(value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, apperrors.NewValidationError("lat,lng must be numeric")
	}
	return f, nil
}
