package services

import (
	"context"

	"github.com/zatekoja/nearbycare/internal/domain/entities"
	"github.com/zatekoja/nearbycare/internal/domain/providers"
	"github.com/zatekoja/nearbycare/internal/infrastructure/observability"
	"go.opentelemetry.io/otel/attribute"
)

// NearbyCareOptions tunes the search pipeline
type NearbyCareOptions struct {
	Categories     []string
	RadiusMeters   int
	Language       string
	DetailCap      int
	MaxConcurrency int
}

// NearbyCareService finds open medical facilities within walking distance
type NearbyCareService struct {
	aggregator *PlaceAggregator
	enricher   *DetailEnricher
	ranker     *ResultRanker
	categories []string
}

// NewNearbyCareService creates a new nearby care service
func NewNearbyCareService(provider providers.PlacesProvider, opts NearbyCareOptions, metrics *observability.Metrics) *NearbyCareService {
	return &NearbyCareService{
		aggregator: NewPlaceAggregator(provider, opts.RadiusMeters, opts.Language, metrics),
		enricher:   NewDetailEnricher(provider, opts.DetailCap, opts.MaxConcurrency, opts.Language, metrics),
		ranker:     NewResultRanker(),
		categories: opts.Categories,
	}
}

// FindNearby runs search, enrichment and ranking for one query. Enrichment
// only starts once every category search has completed.
func (s *NearbyCareService) FindNearby(ctx context.Context, query entities.NearbyQuery) (*entities.NearbyResponse, error) {
	ctx, span := observability.StartSpan(ctx, "nearby_care.find")
	defer span.End()

	places, err := s.aggregator.Aggregate(ctx, query.Origin, s.categories)
	if err != nil {
		return nil, err
	}

	details, err := s.enricher.Enrich(ctx, places)
	if err != nil {
		return nil, err
	}

	items := s.ranker.Rank(query.Origin, details, query.Weekday)

	observability.SetSpanAttributes(span,
		attribute.String("nearby.day", query.Day),
		attribute.String("nearby.weekday", query.Weekday.String()),
		attribute.Int("nearby.results", len(items)),
	)
	observability.LoggerFromContext(ctx).Debug().
		Int("candidates", len(places)).
		Int("detailed", len(details)).
		Int("results", len(items)).
		Msg("nearby search completed")

	return &entities.NearbyResponse{
		Day:   query.Day,
		Count: len(items),
		Items: items,
	}, nil
}
