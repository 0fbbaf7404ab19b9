package application

import (
	"context"

	"currency-services/internal/domain"
)

// RateTable resolves the static exchange rate configured for a pair.
type RateTable interface {
	Rate(pair domain.Pair) (float64, bool)
}

// HistoricalSeries resolves the known price points for a pair, oldest first.
type HistoricalSeries interface {
	Series(pair domain.Pair) ([]domain.PricePoint, bool)
}

// QuoteSource fetches one live quote, typically over the network.
type QuoteSource interface {
	Get(ctx context.Context, pair domain.Pair) (domain.Quote, error)
}
