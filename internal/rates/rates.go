// Package rates maps destination countries to their currency and serves
// reference exchange rates into the agency's home currency (INR). Rates
// are served from Redis when available so every node shares one view;
// the static seed table is the fallback and the cache filler.
package rates

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	rateCachePrefix = "currency_rate:"
	rateCacheTTL    = 12 * time.Hour
)

// ErrUnknownCurrency means no reference rate exists for the code.
var ErrUnknownCurrency = errors.New("unknown currency code")

// HomeCurrency is the currency commissions settle into.
const HomeCurrency = "INR"

var countryCurrency = map[string]string{
	"united kingdom": "GBP",
	"uk":             "GBP",
	"australia":      "AUD",
	"canada":         "CAD",
	"usa":            "USD",
	"united states":  "USD",
	"germany":        "EUR",
	"france":         "EUR",
	"ireland":        "EUR",
	"new zealand":    "NZD",
	"singapore":      "SGD",
	"uae":            "AED",
}

// Reference rates into INR. These seed the cache and back the dashboard;
// settlement uses the rate an operator supplies with the batch.
var referenceRates = map[string]float64{
	"GBP": 105.20,
	"AUD": 55.40,
	"CAD": 61.10,
	"USD": 83.20,
	"EUR": 90.50,
	"NZD": 51.30,
	"SGD": 61.90,
	"AED": 22.70,
	"INR": 1,
}

type Service struct {
	rdb *redis.Client
}

// NewService connects to Redis when addr is non-empty; with no address
// the service runs off the in-process seed table only.
func NewService(addr string) *Service {
	if addr == "" {
		return &Service{}
	}
	return &Service{rdb: redis.NewClient(&redis.Options{Addr: addr})}
}

// CurrencyForCountry derives the destination currency for a country name.
// Unknown destinations fall back to USD.
func (s *Service) CurrencyForCountry(country string) string {
	if code, ok := countryCurrency[strings.ToLower(strings.TrimSpace(country))]; ok {
		return code
	}
	return "USD"
}

// Rate returns the reference rate from the given currency into INR.
func (s *Service) Rate(ctx context.Context, currency string) (float64, error) {
	code := strings.ToUpper(strings.TrimSpace(currency))

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, rateCachePrefix+code).Result()
		if err == nil {
			if rate, perr := strconv.ParseFloat(cached, 64); perr == nil {
				return rate, nil
			}
		}
	}

	rate, ok := referenceRates[code]
	if !ok {
		return 0, ErrUnknownCurrency
	}

	if s.rdb != nil {
		s.rdb.Set(ctx, rateCachePrefix+code, strconv.FormatFloat(rate, 'f', -1, 64), rateCacheTTL)
	}
	return rate, nil
}

// AllRates resolves every known currency through Rate, so the dashboard's
// rate table is served from the shared cache, not the local seed.
func (s *Service) AllRates(ctx context.Context) map[string]float64 {
	out := make(map[string]float64, len(referenceRates))
	for code := range referenceRates {
		rate, err := s.Rate(ctx, code)
		if err != nil {
			continue
		}
		out[code] = rate
	}
	return out
}
