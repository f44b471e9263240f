package commission

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDiscountedFee(t *testing.T) {
	cases := []struct {
		name        string
		yearlyFee   string
		scholarship string
		want        string
	}{
		{"half scholarship", "10000", "50", "5000"},
		{"no scholarship", "10000", "0", "10000"},
		{"empty scholarship", "10000", "", "10000"},
		{"fractional discount rounds to whole", "9999", "33.5", "6649"},
		{"full scholarship", "12000", "100", "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DiscountedFee(tc.yearlyFee, tc.scholarship)
			if err != nil {
				t.Fatalf("DiscountedFee: %v", err)
			}
			if got.String() != tc.want {
				t.Errorf("got %s, want %s", got.String(), tc.want)
			}
		})
	}
}

func TestDiscountedFeeBadInput(t *testing.T) {
	if _, err := DiscountedFee("not-a-number", "0"); err == nil {
		t.Error("expected error for malformed fee")
	}
	if _, err := DiscountedFee("10000", "abc"); err == nil {
		t.Error("expected error for malformed scholarship")
	}
}

func TestAgencyNet(t *testing.T) {
	discounted, err := DiscountedFee("10000", "50")
	if err != nil {
		t.Fatal(err)
	}
	if got := AgencyNet(discounted, 10).InexactFloat64(); !almostEqual(got, 4500) {
		t.Errorf("got %v, want 4500", got)
	}
	if got := AgencyNet(discounted, 0).InexactFloat64(); !almostEqual(got, 5000) {
		t.Errorf("got %v, want 5000", got)
	}
	if got := AgencyNet(discounted, 100).InexactFloat64(); !almostEqual(got, 0) {
		t.Errorf("got %v, want 0", got)
	}
}

func TestAgencyNetNeverNegative(t *testing.T) {
	discounted, err := DiscountedFee("25000", "0")
	if err != nil {
		t.Fatal(err)
	}
	for rate := 0.0; rate <= 100; rate += 12.5 {
		if got := AgencyNet(discounted, rate).InexactFloat64(); got < 0 {
			t.Errorf("rate %v produced negative net %v", rate, got)
		}
	}
}

func TestSettlementAmount(t *testing.T) {
	cases := []struct {
		name       string
		payableFee string
		commission float64
		charges    float64
		rate       float64
		tds        float64
		gst        float64
		want       float64
	}{
		// 500 commission, (500-100)*80 = 32000, withheld 1600,
		// 1600-288 = 1312, 32000-1600-1312 = 29088
		{"full pipeline", "5000", 10, 100, 80, 5, 18, 29088},
		{"no deductions", "5000", 10, 0, 80, 0, 0, 40000},
		{"tds only", "5000", 10, 0, 80, 5, 0, 38000},
		// zero TDS collapses afterTax onto afterCharges, so the final
		// amount degenerates to the GST figure: 40000 - 32800 = 7200
		{"gst only", "5000", 10, 0, 80, 0, 18, 7200},
		{"unset exchange rate", "5000", 10, 0, 0, 0, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SettlementAmount(tc.payableFee, tc.commission, tc.charges, tc.rate, tc.tds, tc.gst)
			if err != nil {
				t.Fatalf("SettlementAmount: %v", err)
			}
			if !almostEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSettlementAmountBadPayable(t *testing.T) {
	if _, err := SettlementAmount("??", 10, 0, 80, 0, 0); err == nil {
		t.Error("expected error for malformed payable fee")
	}
}
