// Package pricing turns estimate line items and modifiers into priced totals.
//
// The engine never rejects input: missing or non-numeric values are treated as zero, and a
// discount larger than subtotal plus tax yields a negative grand total.
package pricing

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"construction_console/internal/domain/entities"
)

var hundred = decimal.NewFromInt(100)

// leadingNumber matches the numeric prefix of a dimension string, so "10ft" reads as 10.
var leadingNumber = regexp.MustCompile(`^\s*[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// Modifiers are the estimate-level inputs applied on top of the line items.
type Modifiers struct {
	TaxMode       entities.TaxMode
	ManualTax     float64
	DiscountValue float64
	DiscountType  entities.DiscountType
}

// TaxBucket is the tax collected at one rate.
type TaxBucket struct {
	Rate   float64 `json:"rate"`
	Amount float64 `json:"amount"`
}

// Result holds the priced lines and every derived total.
type Result struct {
	Items        []entities.EstimateLineItem `json:"items"`
	SubTotal     float64                     `json:"subTotal"`
	AutoTax      float64                     `json:"autoTax"`
	TaxBreakdown []TaxBucket                 `json:"taxBreakdown"`
	EffectiveTax float64                     `json:"effectiveTax"`
	Discount     float64                     `json:"discount"`
	GrandTotal   float64                     `json:"grandTotal"`
}

// IsNegative reports whether the discount pushed the grand total below zero.
func (r Result) IsNegative() bool {
	return r.GrandTotal < 0
}

// ParseDimension returns the leading number of s, if any.
func ParseDimension(s string) (float64, bool) {
	m := leadingNumber.FindString(s)
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(m), 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// PriceLine recomputes the derived fields of one line.
// When both dimensions parse, the multiplier becomes their product rounded to two decimals;
// otherwise the existing multiplier is kept.
func PriceLine(li entities.EstimateLineItem) entities.EstimateLineItem {
	l, okL := ParseDimension(li.LH)
	w, okW := ParseDimension(li.WD)
	if okL && okW {
		li.Volume = toDecimal(l).Mul(toDecimal(w)).Round(2).InexactFloat64()
	}
	total := lineTotal(li)
	li.Total = total.InexactFloat64()
	li.GSTAmount = lineTax(total, li.GSTRate).InexactFloat64()
	return li
}

// Compute prices every line and resolves the estimate totals. items is not modified.
func Compute(items []entities.EstimateLineItem, mods Modifiers) Result {
	priced := make([]entities.EstimateLineItem, len(items))
	subTotal := decimal.Zero
	autoTax := decimal.Zero
	buckets := make(map[float64]decimal.Decimal)

	for i, li := range items {
		li = PriceLine(li)
		priced[i] = li

		total := lineTotal(li)
		tax := lineTax(total, li.GSTRate)
		subTotal = subTotal.Add(total)
		autoTax = autoTax.Add(tax)

		rate := finite(li.GSTRate)
		buckets[rate] = buckets[rate].Add(tax)
	}

	effective := autoTax
	if mods.TaxMode == entities.TaxModeManual {
		effective = toDecimal(mods.ManualTax)
	}

	discount := ResolveDiscount(subTotal, mods.DiscountValue, mods.DiscountType)
	grand := subTotal.Add(effective).Sub(discount)

	return Result{
		Items:        priced,
		SubTotal:     subTotal.InexactFloat64(),
		AutoTax:      autoTax.InexactFloat64(),
		TaxBreakdown: breakdown(buckets),
		EffectiveTax: effective.InexactFloat64(),
		Discount:     discount.InexactFloat64(),
		GrandTotal:   grand.InexactFloat64(),
	}
}

// ResolveDiscount converts a (value, type) discount into an absolute amount.
func ResolveDiscount(subTotal decimal.Decimal, value float64, kind entities.DiscountType) decimal.Decimal {
	v := toDecimal(value)
	if kind == entities.DiscountTypePercent {
		return subTotal.Mul(v).Div(hundred)
	}
	return v
}

// Apply prices e and writes every derived field back onto a copy of it.
func Apply(e entities.Estimate) (entities.Estimate, Result) {
	e = e.Clone()
	if e.GSTCalculationMode == "" {
		e.GSTCalculationMode = entities.TaxModeAuto
	}
	if e.DiscountType == "" {
		e.DiscountType = entities.DiscountTypeAmount
	}

	res := Compute(e.Items, ModifiersOf(e))
	e.Items = res.Items
	e.SubTotal = res.SubTotal
	e.GSTExtra = res.EffectiveTax
	e.Discount = res.Discount
	e.TotalAmount = res.GrandTotal
	return e, res
}

// ModifiersOf extracts the pricing modifiers stored on e.
func ModifiersOf(e entities.Estimate) Modifiers {
	return Modifiers{
		TaxMode:       e.GSTCalculationMode,
		ManualTax:     e.ManualGST,
		DiscountValue: e.DiscountValue,
		DiscountType:  e.DiscountType,
	}
}

func lineTotal(li entities.EstimateLineItem) decimal.Decimal {
	return toDecimal(li.Volume).Mul(toDecimal(li.Rate)).Mul(toDecimal(li.Qty))
}

func lineTax(total decimal.Decimal, rate float64) decimal.Decimal {
	return total.Mul(toDecimal(rate)).Div(hundred)
}

func breakdown(buckets map[float64]decimal.Decimal) []TaxBucket {
	out := make([]TaxBucket, 0, len(buckets))
	for rate, amount := range buckets {
		out = append(out, TaxBucket{Rate: rate, Amount: amount.InexactFloat64()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rate < out[j].Rate })
	return out
}

func toDecimal(f float64) decimal.Decimal {
	return decimal.NewFromFloat(finite(f))
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
