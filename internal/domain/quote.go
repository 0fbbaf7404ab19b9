package domain

import "time"

type Quote struct {
	Pair      Pair
	Price     float64
	Timestamp time.Time
}

// Point drops the pair, keeping the observation.
func (q Quote) Point() PricePoint {
	return PricePoint{Timestamp: q.Timestamp, Price: q.Price}
}
