package engine

import (
	"github.com/shopspring/decimal"
)

// FeeSchedule carries the flat and percentage fees applied on top of the
// nightly subtotal.
type FeeSchedule struct {
	CleaningFee       decimal.Decimal
	ServiceFeePercent decimal.Decimal
}

// Quote is the itemized outcome of a price computation.
type Quote struct {
	Nights      int
	Subtotal    decimal.Decimal
	CleaningFee decimal.Decimal
	ServiceFee  decimal.Decimal
	Total       decimal.Decimal
}

// ComputeQuote prices a candidate range: nights * nightlyPrice, plus the flat
// cleaning fee and the percentage service fee on the subtotal. Monetary
// rounding happens exactly once, on the final total, to two decimal places
// (round half away from zero); line items are kept unrounded to avoid
// compounding error.
func ComputeQuote(nightlyPrice decimal.Decimal, candidate DateRange, fees FeeSchedule) (Quote, error) {
	if err := candidate.Validate(); err != nil {
		return Quote{}, err
	}

	if nightlyPrice.IsNegative() {
		return Quote{}, ErrInvalidPrice
	}

	nights := candidate.Nights()
	subtotal := nightlyPrice.Mul(decimal.NewFromInt(int64(nights)))
	serviceFee := subtotal.Mul(fees.ServiceFeePercent)
	total := subtotal.Add(fees.CleaningFee).Add(serviceFee).Round(2)

	return Quote{
		Nights:      nights,
		Subtotal:    subtotal,
		CleaningFee: fees.CleaningFee,
		ServiceFee:  serviceFee,
		Total:       total,
	}, nil
}

// ComputeTotal prices a candidate range and returns only the rounded total.
func ComputeTotal(nightlyPrice decimal.Decimal, candidate DateRange, fees FeeSchedule) (decimal.Decimal, error) {
	quote, err := ComputeQuote(nightlyPrice, candidate, fees)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return quote.Total, nil
}
