// Package billing derives the bill preview for a cart. All arithmetic is done
// in integer cents; decimals only appear when a percentage is applied.
package billing

import (
	"waiterman/pos-svc/internal/cart"
	"waiterman/pos-svc/internal/domain"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type Bill struct {
	Subtotal   domain.Money `json:"subtotal"`
	Tax        domain.Money `json:"tax"`
	Discount   domain.Money `json:"discount"`
	GrandTotal domain.Money `json:"grand_total"`
	// Overdiscounted is set when the discount exceeds subtotal plus tax,
	// whether or not the grand total was clamped.
	Overdiscounted bool `json:"overdiscounted"`
}

// Calculator computes bills. ClampAtZero floors the grand total at zero
// instead of letting it go negative, capping the discount at subtotal plus
// tax.
type Calculator struct {
	ClampAtZero bool
}

func (c Calculator) Bill(ct *cart.Cart) Bill {
	if ct == nil {
		return Bill{}
	}
	return c.Lines(ct.Lines, ct.Discount)
}

func (c Calculator) Lines(lines []cart.Line, spec *domain.DiscountSpec) Bill {
	b := Bill{
		Subtotal: Subtotal(lines),
		Tax:      TaxTotal(lines),
	}
	b.Discount = DiscountAmount(lines, b.Subtotal, spec)
	b.GrandTotal = b.Subtotal + b.Tax - b.Discount

	if b.GrandTotal < 0 {
		b.Overdiscounted = true
		if c.ClampAtZero {
			// subtotal + tax - discount must still equal the grand total
			b.Discount = b.Subtotal + b.Tax
			b.GrandTotal = 0
		}
	}
	return b
}

func Subtotal(lines []cart.Line) domain.Money {
	var total domain.Money
	for _, l := range lines {
		total += l.UnitPrice.Times(l.Quantity)
	}
	return total
}

// TaxTotal sums the flat per-unit tax captured on each line.
func TaxTotal(lines []cart.Line) domain.Money {
	var total domain.Money
	for _, l := range lines {
		total += l.Tax.Times(l.Quantity)
	}
	return total
}

func DiscountAmount(lines []cart.Line, subtotal domain.Money, spec *domain.DiscountSpec) domain.Money {
	if spec == nil {
		return 0
	}

	switch spec.Kind {
	case domain.DiscountPercentage:
		pct := ClampPercent(spec.Value)
		return domain.MoneyFromDecimal(subtotal.Decimal().Mul(pct).Div(hundred))
	case domain.DiscountFixed:
		amount := domain.MoneyFromDecimal(spec.Value)
		if amount < 0 {
			return 0
		}
		return amount
	case domain.DiscountBOGO:
		var free domain.Money
		for _, l := range lines {
			free += l.UnitPrice.Times(l.Quantity / 2)
		}
		return free
	}
	return 0
}

func ClampPercent(v decimal.Decimal) decimal.Decimal {
	if v.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if v.GreaterThan(hundred) {
		return hundred
	}
	return v
}

// Normalize clamps an inline discount to its legal range, the way the POS
// input fields do.
func Normalize(spec domain.DiscountSpec) domain.DiscountSpec {
	switch spec.Kind {
	case domain.DiscountPercentage:
		spec.Value = ClampPercent(spec.Value)
	case domain.DiscountFixed:
		if spec.Value.LessThan(decimal.Zero) {
			spec.Value = decimal.Zero
		}
	case domain.DiscountBOGO:
		spec.Value = decimal.Zero
	}
	return spec
}
