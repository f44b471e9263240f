package commission

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	// ErrInvalidInput rejects a settlement batch carrying negative figures.
	ErrInvalidInput = errors.New("invalid settlement input")
	// ErrAlreadyPaid guards the one-way pending→paid transition.
	ErrAlreadyPaid = errors.New("commission already marked paid")
	// ErrWrongSecret means the payment-confirmation secret did not match.
	ErrWrongSecret = errors.New("wrong payment confirmation secret")
)

var (
	validate = validator.New()
	hundred  = decimal.NewFromInt(100)
)

// Edit carries one record's updated settlement inputs. Percentages are
// whole-number points (18 means 18%); Rate is the destination→home
// exchange rate.
type Edit struct {
	ID         uint    `json:"id"`
	GST        float64 `json:"gst" validate:"gte=0"`
	TDS        float64 `json:"tds" validate:"gte=0"`
	Commission float64 `json:"commission" validate:"gte=0"`
	Charges    float64 `json:"charges" validate:"gte=0"`
	Rate       float64 `json:"rate"`
}

// Totals aggregates a settlement pass, each figure rounded to 3 decimals.
type Totals struct {
	Total    float64 `json:"total"`
	Profit   float64 `json:"profit"`
	Pending  float64 `json:"pending"`
	Received float64 `json:"received"`
}

// DiscountedFee applies the scholarship discount to the yearly fee. The
// result is rounded to whole units when a discount applies, matching how
// the payable fee has always been stored.
func DiscountedFee(yearlyFee, scholarshipPercent string) (decimal.Decimal, error) {
	fee, err := decimal.NewFromString(strings.TrimSpace(yearlyFee))
	if err != nil {
		return decimal.Zero, fmt.Errorf("bad yearly fee %q: %w", yearlyFee, err)
	}

	sch := strings.TrimSpace(scholarshipPercent)
	if sch == "" {
		sch = "0"
	}
	scholarship, err := decimal.NewFromString(sch)
	if err != nil {
		return decimal.Zero, fmt.Errorf("bad scholarship percent %q: %w", scholarshipPercent, err)
	}

	if scholarship.IsPositive() {
		return fee.Mul(hundred.Sub(scholarship)).Div(hundred).Round(0), nil
	}
	return fee, nil
}

// AgencyNet is the payable fee minus the agent's cut, the value a fresh
// commission starts with before currency conversion.
func AgencyNet(discounted decimal.Decimal, ratePercent float64) decimal.Decimal {
	rate := decimal.NewFromFloat(ratePercent)
	return discounted.Sub(discounted.Mul(rate).Div(hundred))
}

// SettlementAmount converts a pending commission into the final payable
// amount in home currency. The tax step intentionally yields the withheld
// amount (not the post-withholding balance) and is subtracted again at
// the end; the afterTax == afterCharges comparison keeps the zero-TDS
// branch from being deducted twice. This mirrors the production ledger
// figure for figure and must not be "corrected" without a data migration.
func SettlementAmount(payableFee string, commissionRate, charges, exchangeRate, tdsPercent, gstPercent float64) (float64, error) {
	payable, err := decimal.NewFromString(strings.TrimSpace(payableFee))
	if err != nil {
		return 0, fmt.Errorf("bad payable fee %q: %w", payableFee, err)
	}

	rate := decimal.NewFromFloat(commissionRate)
	chargesD := decimal.NewFromFloat(charges)
	fx := decimal.NewFromFloat(exchangeRate)
	tds := decimal.NewFromFloat(tdsPercent)
	gst := decimal.NewFromFloat(gstPercent)

	commissionAmount := payable.Mul(rate).Div(hundred)

	afterCharges := commissionAmount
	if chargesD.IsPositive() {
		afterCharges = commissionAmount.Sub(chargesD)
	}
	afterCharges = afterCharges.Mul(fx)

	afterTax := afterCharges
	if tds.IsPositive() {
		afterTax = tds.Div(hundred).Mul(afterCharges)
	}

	afterGst := decimal.Zero
	if gst.IsPositive() {
		afterGst = afterTax.Sub(gst.Div(hundred).Mul(afterTax))
	}

	var final decimal.Decimal
	if !afterTax.Equal(afterCharges) {
		final = afterCharges.Sub(afterTax).Sub(afterGst)
	} else {
		final = afterCharges.Sub(afterGst)
	}

	return final.Round(3).InexactFloat64(), nil
}

// Calculator runs settlement batches and the payment-confirmation gate.
type Calculator struct {
	DB            *gorm.DB
	Repository    Repository
	PaymentSecret string
}

func NewCalculator(db *gorm.DB, secret string) *Calculator {
	return &Calculator{DB: db, Repository: NewRepository(), PaymentSecret: secret}
}

// Settle recomputes the referenced commissions and aggregates totals.
// With no referenced records it degrades to a plain listing (nil totals).
// Paid records are immutable: they only contribute to received/profit.
// Writes happen only when applyEdits is true, and negative figures abort
// the whole batch before any record is touched.
func (c *Calculator) Settle(edits []Edit, applyEdits bool) (*Totals, []Commission, error) {
	if len(edits) == 0 {
		rows, err := c.Repository.ListAll(c.DB)
		if err != nil {
			return nil, nil, err
		}
		return nil, rows, nil
	}

	if applyEdits {
		for i := range edits {
			if err := validate.Struct(&edits[i]); err != nil {
				return nil, nil, ErrInvalidInput
			}
		}
	}

	var total, profit, pending, received decimal.Decimal

	for _, edit := range edits {
		rec, err := c.Repository.FindByID(c.DB, edit.ID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, nil, err
		}

		if rec.Paid == StatusPaid {
			final := decimal.NewFromFloat(rec.FinalAmount)
			received = received.Add(final)
			profit = profit.Add(final.Mul(decimal.NewFromFloat(rec.CommissionRate)).Div(hundred))
			total = total.Add(final)
			continue
		}

		if applyEdits {
			rec.Charges = edit.Charges
			rec.CommissionRate = edit.Commission
			rec.TDSPercent = edit.TDS
			rec.GSTPercent = edit.GST
			rec.ExchangeRate = edit.Rate
		}

		final, err := SettlementAmount(rec.PayableFee, rec.CommissionRate, rec.Charges, rec.ExchangeRate, rec.TDSPercent, rec.GSTPercent)
		if err != nil {
			return nil, nil, err
		}
		rec.FinalAmount = final

		if applyEdits {
			if err := c.Repository.UpdateChecked(c.DB, rec); err != nil {
				return nil, nil, err
			}
		}

		finalD := decimal.NewFromFloat(final)
		total = total.Add(finalD)
		pending = pending.Add(finalD)
	}

	return &Totals{
		Total:    total.Round(3).InexactFloat64(),
		Profit:   profit.Round(3).InexactFloat64(),
		Pending:  pending.Round(3).InexactFloat64(),
		Received: received.Round(3).InexactFloat64(),
	}, nil, nil
}

// MarkPaid flips a pending commission to paid. One-way: a second call is
// a conflict, and a wrong secret never reaches the record.
func (c *Calculator) MarkPaid(id uint, suppliedSecret string) error {
	rec, err := c.Repository.FindByID(c.DB, id)
	if err != nil {
		return err
	}
	if rec.Paid == StatusPaid {
		return ErrAlreadyPaid
	}
	if c.PaymentSecret == "" || suppliedSecret != c.PaymentSecret {
		return ErrWrongSecret
	}

	rec.Paid = StatusPaid
	return c.Repository.UpdateChecked(c.DB, rec)
}
