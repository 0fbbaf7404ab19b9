package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"currency-services/internal/domain"

	"github.com/redis/go-redis/v9"
)

// Seed reads the rate table and historical series from Redis hashes keyed
// by BASE/QUOTE. It is read once at start; nothing is written back.
type Seed struct {
	Client     *redis.Client
	RatesKey   string
	HistoryKey string
}

func New(client *redis.Client, ratesKey, historyKey string) *Seed {
	return &Seed{Client: client, RatesKey: ratesKey, HistoryKey: historyKey}
}

type seedPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Price     float64   `json:"price"`
}

// LoadRates reads RatesKey; each value is a decimal rate.
func (s *Seed) LoadRates(ctx context.Context) (map[domain.Pair]float64, error) {
	fields, err := s.Client.HGetAll(ctx, s.RatesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("redis seed: read %s: %w", s.RatesKey, err)
	}
	out := make(map[domain.Pair]float64, len(fields))
	for field, raw := range fields {
		pair, ok := domain.ParsePair(field)
		if !ok {
			return nil, fmt.Errorf("redis seed: invalid pair %q in %s", field, s.RatesKey)
		}
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("redis seed: rate for %s: %w", field, err)
		}
		out[pair] = rate
	}
	return out, nil
}

// LoadHistory reads HistoryKey; each value is a JSON array of
// {"timestamp","price"} objects. Points are returned oldest first.
func (s *Seed) LoadHistory(ctx context.Context) (map[domain.Pair][]domain.PricePoint, error) {
	fields, err := s.Client.HGetAll(ctx, s.HistoryKey).Result()
	if err != nil {
		return nil, fmt.Errorf("redis seed: read %s: %w", s.HistoryKey, err)
	}
	out := make(map[domain.Pair][]domain.PricePoint, len(fields))
	for field, raw := range fields {
		pair, ok := domain.ParsePair(field)
		if !ok {
			return nil, fmt.Errorf("redis seed: invalid pair %q in %s", field, s.HistoryKey)
		}
		var pts []seedPoint
		if err := json.Unmarshal([]byte(raw), &pts); err != nil {
			return nil, fmt.Errorf("redis seed: history for %s: %w", field, err)
		}
		points := make([]domain.PricePoint, 0, len(pts))
		for _, p := range pts {
			points = append(points, domain.PricePoint{Timestamp: p.Timestamp.UTC(), Price: p.Price})
		}
		sort.SliceStable(points, func(i, j int) bool { return points[i].Timestamp.Before(points[j].Timestamp) })
		out[pair] = points
	}
	return out, nil
}
