package application

import "currency-services/internal/domain"

// DefaultRate is reported for pairs missing from the rate table.
const DefaultRate = 1.0

type QuoteService struct {
	rates RateTable
	clock Clock
}

func NewQuoteService(rates RateTable, opts ...Option) *QuoteService {
	o := buildOptions(opts)
	return &QuoteService{rates: rates, clock: o.clock}
}

// GetQuote is total: unknown pairs get DefaultRate. Every call is stamped
// with the current UTC time.
func (s *QuoteService) GetQuote(pair domain.Pair) domain.Quote {
	rate, ok := s.rates.Rate(pair)
	if !ok {
		rate = DefaultRate
	}
	return domain.Quote{
		Pair:      pair,
		Price:     rate,
		Timestamp: s.clock.Now().UTC(),
	}
}
