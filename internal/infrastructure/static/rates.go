// Package static holds the immutable lookup tables shared by request handlers.
// Tables are built once at start and never written afterwards.
package static

import "currency-services/internal/domain"

// DefaultRates is the rate table the quote service starts with.
func DefaultRates() map[domain.Pair]float64 {
	return map[domain.Pair]float64{
		domain.NewPair("USD", "BRL"): 5.42,
		domain.NewPair("EUR", "BRL"): 5.89,
		domain.NewPair("USD", "EUR"): 0.92,
		domain.NewPair("BRL", "USD"): 0.18,
	}
}

type RateTable struct {
	rates map[domain.Pair]float64
}

// NewRateTable copies rates so later changes to the argument are not seen.
func NewRateTable(rates map[domain.Pair]float64) *RateTable {
	m := make(map[domain.Pair]float64, len(rates))
	for p, r := range rates {
		m[p] = r
	}
	return &RateTable{rates: m}
}

func (t *RateTable) Rate(pair domain.Pair) (float64, bool) {
	r, ok := t.rates[pair]
	return r, ok
}

func (t *RateTable) Len() int { return len(t.rates) }
