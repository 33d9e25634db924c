package services

import (
	"context"
	"time"

	"github.com/zatekoja/nearbycare/internal/domain/entities"
	"github.com/zatekoja/nearbycare/internal/domain/providers"
	"github.com/zatekoja/nearbycare/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/nearbycare/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

// PlaceAggregator runs one nearby search per category and merges the results
type PlaceAggregator struct {
	provider     providers.PlacesProvider
	radiusMeters int
	language     string
	metrics      *observability.Metrics
}

// NewPlaceAggregator creates a new place aggregator
func NewPlaceAggregator(provider providers.PlacesProvider, radiusMeters int, language string, metrics *observability.Metrics) *PlaceAggregator {
	return &PlaceAggregator{
		provider:     provider,
		radiusMeters: radiusMeters,
		language:     language,
		metrics:      metrics,
	}
}

// Aggregate searches every category around origin and returns the places
// deduplicated by place id. Searches run concurrently; any failure fails the
// whole aggregation.
func (a *PlaceAggregator) Aggregate(ctx context.Context, origin entities.Coordinates, categories []string) ([]entities.RawPlace, error) {
	ctx, span := observability.StartSpan(ctx, "places.aggregate")
	defer span.End()

	batches := make([][]entities.RawPlace, len(categories))
	g, gctx := errgroup.WithContext(ctx)
	for i, category := range categories {
		g.Go(func() error {
			start := time.Now()
			places, err := a.provider.NearbySearch(gctx, providers.NearbySearchRequest{
				Center:       origin,
				RadiusMeters: a.radiusMeters,
				Category:     category,
				Language:     a.language,
			})
			observability.RecordProviderMetric(gctx, a.metrics, "nearby_search", err, time.Since(start))
			if err != nil {
				return apperrors.NewExternalError("nearby search failed for category "+category, err)
			}
			batches[i] = places
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		observability.RecordError(span, err)
		return nil, err
	}

	merged := DedupePlaces(batches...)
	observability.SetSpanAttributes(span,
		attribute.Int("places.categories", len(categories)),
		attribute.Int("places.unique", len(merged)),
	)
	return merged, nil
}

// DedupePlaces merges batches keyed by place id. A place keeps the position
// where its id was first seen and the value of its last occurrence.
func DedupePlaces(batches ...[]entities.RawPlace) []entities.RawPlace {
	index := make(map[string]int)
	var merged []entities.RawPlace
	for _, batch := range batches {
		for _, place := range batch {
			if i, ok := index[place.PlaceID]; ok {
				merged[i] = place
				continue
			}
			index[place.PlaceID] = len(merged)
			merged = append(merged, place)
		}
	}
	return merged
}
