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

// DefaultDetailCap bounds the detail lookups issued per request
const DefaultDetailCap = 20

// DetailFields is the field selector sent with every details lookup
var DetailFields = []string{
	"name",
	"formatted_address",
	"formatted_phone_number",
	"website",
	"geometry",
	"opening_hours",
}

// DetailEnricher fetches place details for a capped subset of aggregated places
type DetailEnricher struct {
	provider       providers.PlacesProvider
	cap            int
	maxConcurrency int
	language       string
	metrics        *observability.Metrics
}

// NewDetailEnricher creates a new detail enricher
func NewDetailEnricher(provider providers.PlacesProvider, detailCap, maxConcurrency int, language string, metrics *observability.Metrics) *DetailEnricher {
	if detailCap <= 0 {
		detailCap = DefaultDetailCap
	}
	if maxConcurrency <= 0 {
		maxConcurrency = 1
	}
	return &DetailEnricher{
		provider:       provider,
		cap:            detailCap,
		maxConcurrency: maxConcurrency,
		language:       language,
		metrics:        metrics,
	}
}

// Enrich looks up the first cap places. Places the provider has no detail
// for are dropped; output keeps the input order.
func (e *DetailEnricher) Enrich(ctx context.Context, places []entities.RawPlace) ([]entities.PlaceDetail, error) {
	ctx, span := observability.StartSpan(ctx, "places.enrich")
	defer span.End()

	if len(places) > e.cap {
		places = places[:e.cap]
	}

	results := make([]*entities.PlaceDetail, len(places))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.maxConcurrency)
	for i, place := range places {
		g.Go(func() error {
			start := time.Now()
			detail, err := e.provider.PlaceDetails(gctx, providers.PlaceDetailsRequest{
				PlaceID:  place.PlaceID,
				Fields:   DetailFields,
				Language: e.language,
			})
			observability.RecordProviderMetric(gctx, e.metrics, "place_details", err, time.Since(start))
			if err != nil {
				return apperrors.NewExternalError("place details lookup failed", err)
			}
			results[i] = detail
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		observability.RecordError(span, err)
		return nil, err
	}

	details := make([]entities.PlaceDetail, 0, len(results))
	for _, detail := range results {
		if detail == nil {
			continue
		}
		details = append(details, *detail)
	}

	observability.SetSpanAttributes(span,
		attribute.Int("places.requested", len(places)),
		attribute.Int("places.detailed", len(details)),
	)
	return details, nil
}
