package application

import (
	"context"
	"fmt"
	"time"

	"currency-services/internal/domain"

	"go.uber.org/zap"
)

// FallbackPrice is used for the synthetic point of pairs without history.
const FallbackPrice = 1.0

type HistoryService struct {
	series   HistoricalSeries
	upstream QuoteSource
	clock    Clock
	timeout  time.Duration
	log      *zap.Logger
}

func NewHistoryService(series HistoricalSeries, upstream QuoteSource, opts ...Option) *HistoryService {
	o := buildOptions(opts)
	return &HistoryService{
		series:   series,
		upstream: upstream,
		clock:    o.clock,
		timeout:  o.timeout,
		log:      o.log,
	}
}

// GetHistory returns the historical series for pair, extended with the live
// quote when the upstream answers. Upstream failures only drop the live point.
func (s *HistoryService) GetHistory(ctx context.Context, pair domain.Pair) domain.History {
	historical := s.historical(pair)

	live, err := s.fetchLive(ctx, pair)
	if err != nil {
		s.log.Warn("history.upstream_unavailable",
			zap.String("pair", pair.String()),
			zap.Error(err),
		)
		return domain.History{Pair: pair, Values: historical}
	}

	values := make([]domain.PricePoint, 0, len(historical)+1)
	values = append(values, historical...)
	values = append(values, live)
	return domain.History{Pair: pair, Values: values}
}

func (s *HistoryService) historical(pair domain.Pair) []domain.PricePoint {
	if s.series != nil {
		if points, ok := s.series.Series(pair); ok && len(points) > 0 {
			out := make([]domain.PricePoint, len(points))
			copy(out, points)
			return out
		}
	}
	return []domain.PricePoint{{
		Timestamp: s.clock.Now().UTC().Add(-24 * time.Hour),
		Price:     FallbackPrice,
	}}
}

// fetchLive makes one bounded attempt and maps any failure onto
// ErrUpstreamUnavailable.
func (s *HistoryService) fetchLive(ctx context.Context, pair domain.Pair) (domain.PricePoint, error) {
	if s.upstream == nil {
		return domain.PricePoint{}, ErrUpstreamUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	q, err := s.upstream.Get(ctx, pair)
	if err != nil {
		return domain.PricePoint{}, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	return q.Point(), nil
}
