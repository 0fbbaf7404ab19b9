package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"currency-services/internal/application"
	"currency-services/internal/domain"

	"github.com/oapi-codegen/runtime"
)

type QuoteServer struct {
	svc *application.QuoteService
}

func NewQuoteServer(svc *application.QuoteService) *QuoteServer { return &QuoteServer{svc: svc} }

type HistoryServer struct {
	svc *application.HistoryService
}

func NewHistoryServer(svc *application.HistoryService) *HistoryServer {
	return &HistoryServer{svc: svc}
}

type healthResponse struct {
	Status string `json:"status"`
}

type quoteResponse struct {
	From      string  `json:"from"`
	To        string  `json:"to"`
	Price     float64 `json:"price"`
	Timestamp string  `json:"timestamp"`
}

type pricePoint struct {
	Timestamp string  `json:"timestamp"`
	Price     float64 `json:"price"`
}

type historyResponse struct {
	From   string       `json:"from"`
	To     string       `json:"to"`
	Values []pricePoint `json:"values"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (s *QuoteServer) GetQuote(w http.ResponseWriter, r *http.Request) {
	pair, err := bindPair(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	q := s.svc.GetQuote(pair)
	writeJSON(w, http.StatusOK, quoteResponse{
		From:      pair.Base,
		To:        pair.Quote,
		Price:     q.Price,
		Timestamp: formatTime(q.Timestamp),
	})
}

func (s *HistoryServer) GetHistory(w http.ResponseWriter, r *http.Request) {
	pair, err := bindPair(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h := s.svc.GetHistory(r.Context(), pair)
	values := make([]pricePoint, 0, len(h.Values))
	for _, p := range h.Values {
		values = append(values, pricePoint{Timestamp: formatTime(p.Timestamp), Price: p.Price})
	}
	writeJSON(w, http.StatusOK, historyResponse{
		From:   pair.Base,
		To:     pair.Quote,
		Values: values,
	})
}

func health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "UP"})
}

// bindPair reads the required from/to query parameters. Values are not
// validated beyond being present.
func bindPair(r *http.Request) (domain.Pair, error) {
	params := r.URL.Query()
	var from, to string
	if err := runtime.BindQueryParameter("form", true, true, "from", params, &from); err != nil {
		return domain.Pair{}, fmt.Errorf("%w: %v", application.ErrBadRequest, err)
	}
	if err := runtime.BindQueryParameter("form", true, true, "to", params, &to); err != nil {
		return domain.Pair{}, fmt.Errorf("%w: %v", application.ErrBadRequest, err)
	}
	return domain.NewPair(from, to), nil
}

func formatTime(t time.Time) string { return t.Format(time.RFC3339Nano) }

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Code: status, Message: msg})
}
