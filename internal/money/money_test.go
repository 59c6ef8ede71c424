package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.234))
	assert.Equal(t, 0.13, Round2(0.125)) // pola naviše na granici centa
	assert.Equal(t, 0.38, Round2(0.375))
	assert.Equal(t, 1.24, Round2(1.236))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, 100.0, Round2(100.000001))
}

func TestComputeLineDiscountBeforeTax(t *testing.T) {
	// 2 x 100, 10% rabata, 25% PDV
	lt := ComputeLine(2, 100, 10, 25)
	assert.Equal(t, 200.0, lt.Subtotal)
	assert.Equal(t, 20.0, lt.DiscountAmount)
	assert.Equal(t, 45.0, lt.TaxAmount) // (200-20) * 0.25
	assert.Equal(t, 225.0, lt.Total)
}

func TestComputeLineNoDiscount(t *testing.T) {
	lt := ComputeLine(1, 50, 0, 25)
	assert.Equal(t, 50.0, lt.Subtotal)
	assert.Equal(t, 0.0, lt.DiscountAmount)
	assert.Equal(t, 12.5, lt.TaxAmount)
	assert.Equal(t, 62.5, lt.Total)
}

func TestComputeLineRoundingDrift(t *testing.T) {
	// Međuiznosi koji padaju između centi moraju biti zaokruženi prije daljnjeg računa
	lt := ComputeLine(3, 33.33, 0, 25)
	assert.Equal(t, 99.99, lt.Subtotal)
	assert.Equal(t, 25.0, lt.TaxAmount) // Round2(24.9975)
	assert.Equal(t, 124.99, lt.Total)
}

func TestComputeLineNonNegative(t *testing.T) {
	cases := []struct {
		qty, price, discount, tax float64
	}{
		{0, 0, 0, 0},
		{1, 0.01, 100, 25},
		{1000, 999.99, 50, 25},
		{0.5, 19.99, 15, 13},
	}
	for _, tc := range cases {
		lt := ComputeLine(tc.qty, tc.price, tc.discount, tc.tax)
		assert.GreaterOrEqual(t, lt.Total, 0.0)
		assert.GreaterOrEqual(t, lt.TaxAmount, 0.0)
	}
}

func TestAggregateSumsRoundedLines(t *testing.T) {
	// Scenarij iz ponude: dvije stavke, ukupni iznos je zbroj zaokruženih stavki
	lines := []Line{
		{Quantity: 2, UnitPrice: 100, DiscountPercent: 10, TaxPercent: 25},
		{Quantity: 1, UnitPrice: 50, DiscountPercent: 0, TaxPercent: 25},
	}
	totals := Aggregate(lines)
	assert.Equal(t, 250.0, totals.Subtotal)
	assert.Equal(t, 20.0, totals.Discount)
	assert.Equal(t, 57.5, totals.Tax)
	assert.Equal(t, 287.5, totals.GrandTotal) // 225.00 + 62.50
}

func TestAggregateEmpty(t *testing.T) {
	totals := Aggregate(nil)
	assert.Equal(t, 0.0, totals.GrandTotal)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1.234,50", Format(1234.5))
	assert.Equal(t, "0,00", Format(0))
	assert.Equal(t, "287,50", Format(287.5))
	assert.Equal(t, "1.000.000,00", Format(1000000))
	assert.Equal(t, "-12,30", Format(-12.3))
	assert.Equal(t, "287,50 EUR", FormatEUR(287.5))
}
