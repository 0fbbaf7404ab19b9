package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"currency-services/internal/application"
	"currency-services/internal/domain"
	"currency-services/internal/infrastructure/httpx"
	"currency-services/internal/infrastructure/logx"
)

const (
	currencyReportQuotePath = "/quote"
	requestIDHeader         = "X-Request-ID"
)

// CurrencyReportProvider fetches live quotes from the currency-report service.
type CurrencyReportProvider struct {
	BaseURL string
	Client  *httpx.Client
}

var _ application.QuoteSource = (*CurrencyReportProvider)(nil)

type crQuoteResp struct {
	From      string   `json:"from"`
	To        string   `json:"to"`
	Price     *float64 `json:"price"`
	Timestamp *string  `json:"timestamp"`
}

func (p *CurrencyReportProvider) Get(ctx context.Context, pair domain.Pair) (domain.Quote, error) {
	if p.BaseURL == "" {
		return domain.Quote{}, errors.New("currencyreport: missing base url")
	}

	u, err := url.Parse(p.BaseURL)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("currencyreport: invalid base url: %w", err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + currencyReportQuotePath
	q := u.Query()
	q.Set("from", pair.Base)
	q.Set("to", pair.Quote)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("currencyreport: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if rid := logx.RequestID(ctx); rid != "" {
		req.Header.Set(requestIDHeader, rid)
	}

	client := p.Client
	if client == nil {
		client = &httpx.Client{}
	}
	var body crQuoteResp
	if err := client.DoJSON(ctx, req, &body); err != nil {
		return domain.Quote{}, fmt.Errorf("currencyreport: %w", err)
	}
	if body.Price == nil {
		return domain.Quote{}, errors.New("currencyreport: response missing price")
	}
	if body.Timestamp == nil {
		return domain.Quote{}, errors.New("currencyreport: response missing timestamp")
	}
	ts, err := time.Parse(time.RFC3339, *body.Timestamp)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("currencyreport: invalid timestamp: %w", err)
	}

	return domain.Quote{
		Pair:      pair,
		Price:     *body.Price,
		Timestamp: ts,
	}, nil
}
