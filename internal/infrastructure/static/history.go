package static

import (
	"slices"
	"time"

	"currency-services/internal/domain"
)

// DefaultHistory returns three daily points per pair ending one day before now.
func DefaultHistory(now time.Time) map[domain.Pair][]domain.PricePoint {
	now = now.UTC()
	days := func(prices ...float64) []domain.PricePoint {
		out := make([]domain.PricePoint, len(prices))
		for i, p := range prices {
			out[i] = domain.PricePoint{
				Timestamp: now.Add(-time.Duration(len(prices)-i) * 24 * time.Hour),
				Price:     p,
			}
		}
		return out
	}
	return map[domain.Pair][]domain.PricePoint{
		domain.NewPair("USD", "BRL"): days(5.38, 5.40, 5.41),
		domain.NewPair("EUR", "BRL"): days(5.85, 5.87, 5.88),
	}
}

type HistoricalSeries struct {
	series map[domain.Pair][]domain.PricePoint
}

// NewHistoricalSeries deep-copies series. Empty sequences are dropped so a
// lookup hit always has at least one point.
func NewHistoricalSeries(series map[domain.Pair][]domain.PricePoint) *HistoricalSeries {
	m := make(map[domain.Pair][]domain.PricePoint, len(series))
	for p, points := range series {
		if len(points) == 0 {
			continue
		}
		m[p] = slices.Clone(points)
	}
	return &HistoricalSeries{series: m}
}

// Series returns a copy of the points for pair, oldest first.
func (h *HistoricalSeries) Series(pair domain.Pair) ([]domain.PricePoint, bool) {
	points, ok := h.series[pair]
	if !ok {
		return nil, false
	}
	return slices.Clone(points), true
}

func (h *HistoricalSeries) Len() int { return len(h.series) }
