package domain

// History is the per-request aggregate of historical points, optionally
// extended with one live point. Values is never empty.
type History struct {
	Pair   Pair
	Values []PricePoint
}
