package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/nearbycare/internal/api/handlers"
	"github.com/zatekoja/nearbycare/internal/domain/entities"
	apperrors "github.com/zatekoja/nearbycare/pkg/errors"
)

type MockNearbyCareService struct {
	mock.Mock
}

func (m *MockNearbyCareService) FindNearby(ctx context.Context, query entities.NearbyQuery) (*entities.NearbyResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.NearbyResponse), args.Error(1)
}

// Saturday 2026-10-17, local time
var fixedNow = time.Date(2026, 10, 17, 10, 0, 0, 0, time.Local)

func newHandler(service *MockNearbyCareService, apiKey string) *handlers.NearbyHandler {
	return handlers.NewNearbyHandler(service, apiKey, "GOOGLE_MAPS_API_KEY").
		WithClock(func() time.Time { return fixedNow })
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestNearbyHandler_MissingCoordinates(t *testing.T) {
	for _, target := range []string{
		"/api/nearby",
		"/api/nearby?lat=35.0",
		"/api/nearby?lng=139.0",
		"/api/nearby?lat=&lng=139.0",
	} {
		service := new(MockNearbyCareService)
		w := httptest.NewRecorder()

		newHandler(service, "test-key").FindNearby(w, httptest.NewRequest("GET", target, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Equal(t, "lat,lng required", decodeBody(t, w)["error"], target)
		service.AssertNotCalled(t, "FindNearby", mock.Anything, mock.Anything)
	}
}

func TestNearbyHandler_MissingCredential(t *testing.T) {
	service := new(MockNearbyCareService)
	w := httptest.NewRecorder()

	newHandler(service, "").FindNearby(w, httptest.NewRequest("GET", "/api/nearby?lat=35&lng=139", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "missing_env_GOOGLE_MAPS_API_KEY", decodeBody(t, w)["error"])
	service.AssertNotCalled(t, "FindNearby", mock.Anything, mock.Anything)
}

func TestNearbyHandler_NonNumericCoordinates(t *testing.T) {
	service := new(MockNearbyCareService)
	w := httptest.NewRecorder()

	newHandler(service, "test-key").FindNearby(w, httptest.NewRequest("GET", "/api/nearby?lat=north&lng=139", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "lat,lng must be numeric", decodeBody(t, w)["error"])
	service.AssertNotCalled(t, "FindNearby", mock.Anything, mock.Anything)
}

func TestNearbyHandler_NonFiniteCoordinates(t *testing.T) {
	for _, target := range []string{
		"/api/nearby?lat=NaN&lng=1",
		"/api/nearby?lat=35&lng=nan",
		"/api/nearby?lat=Inf&lng=139",
		"/api/nearby?lat=35&lng=-Inf",
		"/api/nearby?lat=1e400&lng=139",
	} {
		service := new(MockNearbyCareService)
		w := httptest.NewRecorder()

		newHandler(service, "test-key").FindNearby(w, httptest.NewRequest("GET", target, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Equal(t, "lat,lng must be numeric", decodeBody(t, w)["error"], target)
		service.AssertNotCalled(t, "FindNearby", mock.Anything, mock.Anything)
	}
}

func TestRespondWithAppError_RateLimited(t *testing.T) {
	w := httptest.NewRecorder()

	handlers.RespondWithAppError(w, httptest.NewRequest("GET", "/api/nearby", nil), apperrors.NewRateLimitedError("rate_limited"))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "rate_limited", decodeBody(t, w)["error"])
}

func TestNearbyHandler_ReturnsContract(t *testing.T) {
	service := new(MockNearbyCareService)
	walk := 4
	mapsURL := "https://www.google.com/maps/dir/?api=1&origin=35,139&destination=35.003,139&travelmode=walking"
	address := "1 Main St"

	service.On("FindNearby", mock.Anything, entities.NearbyQuery{
		Origin:  entities.Coordinates{Latitude: 35, Longitude: 139},
		Day:     "today",
		Weekday: time.Saturday,
	}).Return(&entities.NearbyResponse{
		Day:   "today",
		Count: 2,
		Items: []entities.ResultItem{
			{Name: "Clinic", Address: &address, OpeningHours: []string{"Saturday: 9:00 AM – 1:00 PM"}, WalkMinutes: &walk, MapsURL: &mapsURL},
			{Name: "Unknown location"},
		},
	}, nil).Once()

	w := httptest.NewRecorder()
	newHandler(service, "test-key").FindNearby(w, httptest.NewRequest("GET", "/api/nearby?lat=35&lng=139", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	body := decodeBody(t, w)
	assert.Equal(t, "today", body["day"])
	assert.Equal(t, float64(2), body["count"])

	items := body["items"].([]interface{})
	require.Len(t, items, 2)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "Clinic", first["name"])
	assert.Equal(t, "1 Main St", first["address"])
	assert.Equal(t, float64(4), first["walk_minutes"])
	assert.Equal(t, mapsURL, first["maps_url"])

	second := items[1].(map[string]interface{})
	for _, key := range []string{"address", "phone", "website", "opening_hours", "walk_minutes", "maps_url"} {
		value, present := second[key]
		assert.True(t, present, key)
		assert.Nil(t, value, key)
	}
	service.AssertExpectations(t)
}

func TestNearbyHandler_TomorrowResolvesNextWeekday(t *testing.T) {
	service := new(MockNearbyCareService)
	service.On("FindNearby", mock.Anything, mock.MatchedBy(func(q entities.NearbyQuery) bool {
		return q.Day == "tomorrow" && q.Weekday == time.Sunday
	})).Return(&entities.NearbyResponse{Day: "tomorrow", Items: []entities.ResultItem{}}, nil).Once()

	w := httptest.NewRecorder()
	newHandler(service, "test-key").FindNearby(w, httptest.NewRequest("GET", "/api/nearby?lat=35&lng=139&day=tomorrow", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	service.AssertExpectations(t)
}

func TestNearbyHandler_UpstreamFailure(t *testing.T) {
	service := new(MockNearbyCareService)
	service.On("FindNearby", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewExternalError("nearby search failed for category hospital", errors.New("dial tcp: i/o timeout"))).Once()

	w := httptest.NewRecorder()
	newHandler(service, "test-key").FindNearby(w, httptest.NewRequest("GET", "/api/nearby?lat=35&lng=139", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "server_error", body["error"])
	assert.Equal(t, "nearby search failed for category hospital", body["detail"])
	assert.NotContains(t, body["detail"], "dial tcp")
}

func TestNearbyHandler_UnexpectedFailure(t *testing.T) {
	service := new(MockNearbyCareService)
	service.On("FindNearby", mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

	w := httptest.NewRecorder()
	newHandler(service, "test-key").FindNearby(w, httptest.NewRequest("GET", "/api/nearby?lat=35&lng=139", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "server_error", body["error"])
	assert.Equal(t, "internal error", body["detail"])
}
