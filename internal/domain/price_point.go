package domain

import "time"

type PricePoint struct {
	Timestamp time.Time
	Price     float64
}
