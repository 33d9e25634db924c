package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/zatekoja/nearbycare/internal/domain/entities"
	"github.com/zatekoja/nearbycare/internal/domain/providers"
)

const (
	googlePlacesBaseURL = "https://maps.googleapis.com/maps/api/place"
	defaultHTTPTimeout  = 8 * time.Second

	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
	statusNotFound    = "NOT_FOUND"
	statusInvalid     = "INVALID_REQUEST"
)

// GooglePlacesProvider implements the PlacesProvider using the Google Places web service.
type GooglePlacesProvider struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

// NewGooglePlacesProviderWithOptions allows overriding base URL and HTTP client (used for tests).
func NewGooglePlacesProviderWithOptions(apiKey, baseURL string, httpClient *http.Client) providers.PlacesProvider {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = googlePlacesBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &GooglePlacesProvider{
		apiKey:     apiKey,
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// NearbySearch returns the candidates of one category within the radius.
func (g *GooglePlacesProvider) NearbySearch(ctx context.Context, req providers.NearbySearchRequest) ([]entities.RawPlace, error) {
	params := url.Values{}
	params.Set("location", formatLatLng(req.Center))
	params.Set("radius", strconv.Itoa(req.RadiusMeters))
	params.Set("type", req.Category)
	if req.Language != "" {
		params.Set("language", req.Language)
	}

	var payload googleNearbySearchResponse
	if err := g.get(ctx, "/nearbysearch/json", params, &payload); err != nil {
		return nil, fmt.Errorf("nearby search (%s): %w", req.Category, err)
	}

	switch payload.Status {
	case statusOK:
	case statusZeroResults:
		return []entities.RawPlace{}, nil
	default:
		return nil, fmt.Errorf("nearby search (%s): %s", req.Category, statusError(payload.Status, payload.ErrorMessage))
	}

	places := make([]entities.RawPlace, 0, len(payload.Results))
	for _, result := range payload.Results {
		if result.PlaceID == "" {
			continue
		}
		places = append(places, entities.RawPlace{
			PlaceID:  result.PlaceID,
			Name:     result.Name,
			Category: req.Category,
		})
	}
	return places, nil
}

// PlaceDetails looks up one place. Unknown ids yield a nil detail.
func (g *GooglePlacesProvider) PlaceDetails(ctx context.Context, req providers.PlaceDetailsRequest) (*entities.PlaceDetail, error) {
	placeID := req.PlaceID
	params := url.Values{}
	params.Set("place_id", placeID)
	if len(req.Fields) > 0 {
		params.Set("fields", strings.Join(req.Fields, ","))
	}
	if req.Language != "" {
		params.Set("language", req.Language)
	}

	var payload googleDetailsResponse
	if err := g.get(ctx, "/details/json", params, &payload); err != nil {
		return nil, fmt.Errorf("place details (%s): %w", placeID, err)
	}

	switch payload.Status {
	case statusOK:
	case statusZeroResults, statusNotFound, statusInvalid:
		return nil, nil
	default:
		return nil, fmt.Errorf("place details (%s): %s", placeID, statusError(payload.Status, payload.ErrorMessage))
	}

	if payload.Result == nil {
		return nil, nil
	}
	return payload.Result.toEntity(placeID), nil
}

func (g *GooglePlacesProvider) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	if g.apiKey == "" {
		return fmt.Errorf("google maps api key is required")
	}

	params.Set("key", g.apiKey)
	reqURL := fmt.Sprintf("%s%s?%s", g.baseURL, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("request returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func statusError(status, message string) string {
	if message != "" {
		return fmt.Sprintf("provider returned %s - %s", status, message)
	}
	if status == "" {
		return "provider returned no status"
	}
	return "provider returned " + status
}

func formatLatLng(c entities.Coordinates) string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}

type googleNearbySearchResponse struct {
	Status       string                     `json:"status"`
	ErrorMessage string                     `json:"error_message,omitempty"`
	Results      []googleNearbySearchResult `json:"results"`
}

type googleNearbySearchResult struct {
	PlaceID string `json:"place_id"`
	Name    string `json:"name"`
}

type googleDetailsResponse struct {
	Status       string               `json:"status"`
	ErrorMessage string               `json:"error_message,omitempty"`
	Result       *googlePlaceDetailed `json:"result"`
}

type googlePlaceDetailed struct {
	Name                 string              `json:"name"`
	FormattedAddress     *string             `json:"formatted_address"`
	FormattedPhoneNumber *string             `json:"formatted_phone_number"`
	Website              *string             `json:"website"`
	Geometry             *googleGeometry     `json:"geometry"`
	OpeningHours         *googleOpeningHours `json:"opening_hours"`
}

type googleGeometry struct {
	Location *googleLocation `json:"location"`
}

type googleLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type googleOpeningHours struct {
	WeekdayText []string `json:"weekday_text"`
}

func (d *googlePlaceDetailed) toEntity(placeID string) *entities.PlaceDetail {
	detail := &entities.PlaceDetail{
		PlaceID: placeID,
		Name:    d.Name,
		Address: d.FormattedAddress,
		Phone:   d.FormattedPhoneNumber,
		Website: d.Website,
	}
	if d.Geometry != nil && d.Geometry.Location != nil {
		detail.Location = &entities.Coordinates{
			Latitude:  d.Geometry.Location.Lat,
			Longitude: d.Geometry.Location.Lng,
		}
	}
	if d.OpeningHours != nil && d.OpeningHours.WeekdayText != nil {
		detail.OpeningHoursLines = d.OpeningHours.WeekdayText
	}
	return detail
}
