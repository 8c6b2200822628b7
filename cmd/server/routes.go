package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"stockquotes/internal/app"
	"stockquotes/internal/dates"
	"stockquotes/internal/provider"
)

type handler struct {
	services *app.Services
	logger   *zap.Logger
}

type errorResponse struct {
	Error string `json:"error"`
}

func newRouter(services *app.Services, logger *zap.Logger, timeout time.Duration) http.Handler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	h := &handler{services: services, logger: logger}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))
	r.Use(middleware.Compress(5, "application/json"))
	r.Use(withJSONHeaders)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Route("/stocks", func(r chi.Router) {
		r.Get("/search", h.search)
		r.Route("/{stockName}", func(r chi.Router) {
			r.Get("/quote", h.quote)
			r.Get("/compare", h.compare)
			r.Get("/history", h.history)
			r.Get("/price", h.price)
			r.Get("/gains", h.gains)
		})
	})
	return r
}

func (h *handler) quote(w http.ResponseWriter, r *http.Request) {
	q, err := h.services.LastQuote.LastQuote(r.Context(), chi.URLParam(r, "stockName"))
	h.respond(w, r, q, err)
}

func (h *handler) compare(w http.ResponseWriter, r *http.Request) {
	symbols := splitCSV(r.URL.Query().Get("stocksToCompare"))
	if len(symbols) == 0 {
		h.respond(w, r, nil, fmt.Errorf("%w: stocksToCompare is required", provider.ErrInvalidArgument))
		return
	}
	res, err := h.services.Compare.Compare(r.Context(), chi.URLParam(r, "stockName"), symbols)
	h.respond(w, r, res, err)
}

func (h *handler) history(w http.ResponseWriter, r *http.Request) {
	from, err := dateParam(r, "from")
	if err != nil {
		h.respond(w, r, nil, err)
		return
	}
	to, err := dateParam(r, "to")
	if err != nil {
		h.respond(w, r, nil, err)
		return
	}
	res, err := h.services.History.History(r.Context(), chi.URLParam(r, "stockName"), from, to)
	h.respond(w, r, res, err)
}

func (h *handler) price(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam(r, "date")
	if err != nil {
		h.respond(w, r, nil, err)
		return
	}
	res, err := h.services.QuoteOnDate.QuoteOnDate(r.Context(), chi.URLParam(r, "stockName"), date)
	h.respond(w, r, res, err)
}

func (h *handler) gains(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("purchasedAmount"))
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		h.respond(w, r, nil, fmt.Errorf("%w: purchasedAmount %q is not a number", provider.ErrInvalidPurchase, raw))
		return
	}
	purchasedAt, err := dateParam(r, "purchasedAt")
	if err != nil {
		h.respond(w, r, nil, err)
		return
	}
	res, err := h.services.Gains.Gains(r.Context(), chi.URLParam(r, "stockName"), amount, purchasedAt)
	h.respond(w, r, res, err)
}

func (h *handler) search(w http.ResponseWriter, r *http.Request) {
	res, err := h.services.Search.Search(r.Context(), r.URL.Query().Get("search"))
	h.respond(w, r, res, err)
}

func (h *handler) respond(w http.ResponseWriter, r *http.Request, body any, err error) {
	if err == nil {
		writeJSON(w, http.StatusOK, body)
		return
	}
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Warn("request failed",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Int("status", status),
			zap.Error(err))
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, provider.ErrInvalidArgument),
		errors.Is(err, provider.ErrInvalidPurchase),
		errors.Is(err, dates.ErrInvalidDateFormat):
		return http.StatusBadRequest
	case errors.Is(err, provider.ErrNoQuoteForDate):
		return http.StatusNotFound
	case errors.Is(err, provider.ErrProviderThrottled):
		return http.StatusTooManyRequests
	case errors.Is(err, provider.ErrProviderUnreachable),
		errors.Is(err, provider.ErrProviderDataMissing):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(body)
}

// dateParam reads a required YYYY-MM-DD or RFC 3339 query parameter.
func dateParam(r *http.Request, name string) (time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", provider.ErrInvalidArgument, name)
	}
	return dates.ParseInput(raw)
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
