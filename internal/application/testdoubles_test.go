package application

import (
	"context"
	"time"

	"currency-services/internal/domain"

	"github.com/stretchr/testify/mock"
)

var _ RateTable = fakeRates(nil)
var _ HistoricalSeries = fakeSeries(nil)
var _ QuoteSource = (*mockQuoteSource)(nil)

type fakeRates map[domain.Pair]float64

func (f fakeRates) Rate(p domain.Pair) (float64, bool) {
	r, ok := f[p]
	return r, ok
}

type fakeSeries map[domain.Pair][]domain.PricePoint

func (f fakeSeries) Series(p domain.Pair) ([]domain.PricePoint, bool) {
	s, ok := f[p]
	return s, ok
}

type fakeClock struct{ t time.Time }

func (f fakeClock) Now() time.Time { return f.t }

type mockQuoteSource struct{ mock.Mock }

func (m *mockQuoteSource) Get(ctx context.Context, pair domain.Pair) (domain.Quote, error) {
	args := m.Called(ctx, pair)
	q, _ := args.Get(0).(domain.Quote)
	return q, args.Error(1)
}

// blockingSource waits for the context to end, like an upstream that never answers.
type blockingSource struct{}

func (blockingSource) Get(ctx context.Context, _ domain.Pair) (domain.Quote, error) {
	<-ctx.Done()
	return domain.Quote{}, ctx.Err()
}

var (
	usdBRL = domain.NewPair("USD", "BRL")
	t0     = time.Date(2025, 11, 19, 10, 30, 0, 0, time.UTC)
)

func threeDays(now time.Time, prices ...float64) []domain.PricePoint {
	out := make([]domain.PricePoint, 0, len(prices))
	for i, p := range prices {
		out = append(out, domain.PricePoint{
			Timestamp: now.AddDate(0, 0, i-len(prices)),
			Price:     p,
		})
	}
	return out
}
