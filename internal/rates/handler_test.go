package rates

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListServesEveryRateThroughLookup(t *testing.T) {
	h := NewHandler(NewService(""))

	req := httptest.NewRequest(http.MethodGet, "/currency_rates", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var env struct {
		Data map[string]float64 `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if len(env.Data) != len(referenceRates) {
		t.Errorf("served %d rates, want %d", len(env.Data), len(referenceRates))
	}
	if env.Data["GBP"] != 105.20 {
		t.Errorf("GBP = %v, want 105.20", env.Data["GBP"])
	}
	if env.Data[HomeCurrency] != 1 {
		t.Errorf("%s = %v, want 1", HomeCurrency, env.Data[HomeCurrency])
	}
}

func TestAllRatesMatchesRate(t *testing.T) {
	s := NewService("")
	ctx := context.Background()
	all := s.AllRates(ctx)
	for code, got := range all {
		want, err := s.Rate(ctx, code)
		if err != nil {
			t.Fatalf("Rate(%s): %v", code, err)
		}
		if got != want {
			t.Errorf("AllRates[%s] = %v, Rate = %v", code, got, want)
		}
	}
}
