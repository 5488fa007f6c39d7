package gst

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaxMode(t *testing.T) {
	mode, ok := ParseTaxMode("Inclusive GST")
	assert.True(t, ok)
	assert.Equal(t, ModeInclusive, mode)

	mode, ok = ParseTaxMode("Exclusive GST")
	assert.True(t, ok)
	assert.Equal(t, ModeExclusive, mode)

	_, ok = ParseTaxMode("inclusive gst")
	assert.False(t, ok)
	_, ok = ParseTaxMode("")
	assert.False(t, ok)
}

func TestUseIGST(t *testing.T) {
	assert.False(t, UseIGST("Karnataka", "Karnataka"))
	assert.True(t, UseIGST("Karnataka", "Maharashtra"))

	// missing state data on either side defaults to intra-state
	assert.False(t, UseIGST("", "Maharashtra"))
	assert.False(t, UseIGST("Karnataka", ""))
	assert.False(t, UseIGST("", ""))

	// comparison is case-sensitive
	assert.True(t, UseIGST("Karnataka", "karnataka"))
}

func TestComputeLine_Exclusive(t *testing.T) {
	item := LineItem{Quantity: 2, UnitPrice: 100, GSTRatePercent: 18}

	t.Run("interstate", func(t *testing.T) {
		lc := ComputeLine(item, ModeExclusive, true)
		assert.Equal(t, 200.00, lc.TaxableValue)
		assert.Equal(t, 36.00, lc.GSTAmount)
		assert.Equal(t, 236.00, lc.LineTotal)
		assert.Equal(t, 36.00, lc.IGSTAmount)
		assert.Zero(t, lc.CGSTAmount)
		assert.Zero(t, lc.SGSTAmount)
	})

	t.Run("intrastate", func(t *testing.T) {
		lc := ComputeLine(item, ModeExclusive, false)
		assert.Equal(t, 18.00, lc.CGSTAmount)
		assert.Equal(t, 18.00, lc.SGSTAmount)
		assert.Zero(t, lc.IGSTAmount)
	})

	t.Run("round_trip", func(t *testing.T) {
		lc := ComputeLine(item, ModeExclusive, false)
		assert.Equal(t, item.Quantity*item.UnitPrice, lc.TaxableValue)
		assert.InDelta(t, lc.TaxableValue+lc.GSTAmount, lc.LineTotal, 0.001)
	})
}

func TestComputeLine_Inclusive(t *testing.T) {
	// qty=1, price=56.00, rate=5% — the gross is GST-bearing
	item := LineItem{Quantity: 1, UnitPrice: 56.00, GSTRatePercent: 5}
	lc := ComputeLine(item, ModeInclusive, false)

	assert.Equal(t, 53.33, lc.TaxableValue)
	assert.Equal(t, 2.67, lc.GSTAmount)
	assert.Equal(t, 56.00, lc.LineTotal)
	assert.Zero(t, lc.IGSTAmount)

	// 2.67/2 = 1.335; the split rounds but must sum back exactly
	assert.InDelta(t, lc.GSTAmount, lc.CGSTAmount+lc.SGSTAmount, 0.01)
	assert.InDelta(t, lc.GSTAmount/2, lc.CGSTAmount, 0.01)
	assert.InDelta(t, lc.GSTAmount/2, lc.SGSTAmount, 0.01)
}

func TestComputeLine_InclusiveZeroRate(t *testing.T) {
	item := LineItem{Quantity: 3, UnitPrice: 40, GSTRatePercent: 0}
	lc := ComputeLine(item, ModeInclusive, false)

	assert.Equal(t, 120.00, lc.TaxableValue)
	assert.Zero(t, lc.GSTAmount)
	assert.Equal(t, 120.00, lc.LineTotal)
	assert.Zero(t, lc.CGSTAmount)
	assert.Zero(t, lc.SGSTAmount)
	assert.Zero(t, lc.IGSTAmount)
}

func TestComputeLine_SplitExhaustive(t *testing.T) {
	items := []LineItem{
		{Quantity: 1, UnitPrice: 56, GSTRatePercent: 5},
		{Quantity: 7, UnitPrice: 99.99, GSTRatePercent: 12},
		{Quantity: 2.5, UnitPrice: 18.4, GSTRatePercent: 18},
		{Quantity: 100, UnitPrice: 0.99, GSTRatePercent: 28},
		{Quantity: 4, UnitPrice: 250, GSTRatePercent: 0},
	}
	for _, mode := range []TaxMode{ModeInclusive, ModeExclusive} {
		for _, useIGST := range []bool{true, false} {
			for _, item := range items {
				lc := ComputeLine(item, mode, useIGST)

				assert.InDelta(t, lc.GSTAmount, lc.CGSTAmount+lc.SGSTAmount+lc.IGSTAmount, 0.01)
				assert.InDelta(t, lc.LineTotal, lc.TaxableValue+lc.GSTAmount, 0.01)
				if useIGST {
					assert.Zero(t, lc.CGSTAmount)
					assert.Zero(t, lc.SGSTAmount)
				} else {
					assert.Zero(t, lc.IGSTAmount)
				}
			}
		}
	}
}

func TestComputeLine_CoercesMalformedInput(t *testing.T) {
	item := LineItem{Quantity: math.NaN(), UnitPrice: math.Inf(1), GSTRatePercent: 18}
	lc := ComputeLine(item, ModeExclusive, false)
	assert.Zero(t, lc.TaxableValue)
	assert.Zero(t, lc.GSTAmount)
	assert.Zero(t, lc.LineTotal)
}

func TestComputeDocument_Aggregation(t *testing.T) {
	items := []LineItem{
		{ProductID: "p1", Quantity: 10, UnitPrice: 100, GSTRatePercent: 18},
		{ProductID: "p2", Quantity: 3, UnitPrice: 56, GSTRatePercent: 5},
		{ProductID: "p3", Quantity: 1, UnitPrice: 499, GSTRatePercent: 12},
	}
	doc := ComputeDocument(items, ModeExclusive, "Karnataka", "Karnataka")
	require.Len(t, doc.Lines, 3)

	var subtotal, gst, cgst, sgst, igst float64
	for _, lc := range doc.Lines {
		subtotal += lc.TaxableValue
		gst += lc.GSTAmount
		cgst += lc.CGSTAmount
		sgst += lc.SGSTAmount
		igst += lc.IGSTAmount
	}
	assert.InDelta(t, subtotal, doc.Totals.Subtotal, 0.001)
	assert.InDelta(t, gst, doc.Totals.TotalGST, 0.001)
	assert.InDelta(t, cgst, doc.Totals.TotalCGST, 0.001)
	assert.InDelta(t, sgst, doc.Totals.TotalSGST, 0.001)
	assert.InDelta(t, igst, doc.Totals.TotalIGST, 0.001)

	assert.Equal(t, math.Round(doc.Totals.Subtotal+doc.Totals.TotalGST), doc.Totals.GrandTotal)
	assert.InDelta(t, doc.Totals.GrandTotal-(doc.Totals.Subtotal+doc.Totals.TotalGST), doc.Totals.RoundOff, 0.001)
	assert.LessOrEqual(t, math.Abs(doc.Totals.RoundOff), 0.50)
}

func TestComputeDocument_JurisdictionSwitch(t *testing.T) {
	items := []LineItem{{Quantity: 2, UnitPrice: 100, GSTRatePercent: 18}}

	intra := ComputeDocument(items, ModeExclusive, "Karnataka", "Karnataka")
	assert.Zero(t, intra.Totals.TotalIGST)
	assert.Equal(t, 18.00, intra.Totals.TotalCGST)
	assert.Equal(t, 18.00, intra.Totals.TotalSGST)
	assert.False(t, UseIGST("Karnataka", "Karnataka"))

	inter := ComputeDocument(items, ModeExclusive, "Karnataka", "Maharashtra")
	assert.Equal(t, 36.00, inter.Totals.TotalIGST)
	assert.Zero(t, inter.Totals.TotalCGST)
	assert.Zero(t, inter.Totals.TotalSGST)
}

func TestComputeDocument_Empty(t *testing.T) {
	doc := ComputeDocument(nil, ModeInclusive, "Karnataka", "Karnataka")
	assert.Empty(t, doc.Lines)
	assert.Equal(t, DocumentTotals{}, doc.Totals)
}

func TestComputeDocument_Deterministic(t *testing.T) {
	items := []LineItem{
		{Quantity: 7, UnitPrice: 99.99, GSTRatePercent: 12},
		{Quantity: 1, UnitPrice: 56, GSTRatePercent: 5},
	}
	a := ComputeDocument(items, ModeInclusive, "Karnataka", "Tamil Nadu")
	b := ComputeDocument(items, ModeInclusive, "Karnataka", "Tamil Nadu")
	assert.Equal(t, a, b)
}

func TestComputeDocument_GrandTotalRoundOff(t *testing.T) {
	// 1 x 56 inclusive @5%: taxable 53.33 + gst 2.67 = 56.00, no round-off
	exact := ComputeDocument([]LineItem{{Quantity: 1, UnitPrice: 56, GSTRatePercent: 5}},
		ModeInclusive, "Karnataka", "Karnataka")
	assert.Equal(t, 56.00, exact.Totals.GrandTotal)
	assert.Zero(t, exact.Totals.RoundOff)

	// 1 x 99.49 exclusive @0%: rounds up to 99
	frac := ComputeDocument([]LineItem{{Quantity: 1, UnitPrice: 99.49, GSTRatePercent: 0}},
		ModeExclusive, "Karnataka", "Karnataka")
	assert.Equal(t, 99.00, frac.Totals.GrandTotal)
	assert.InDelta(t, -0.49, frac.Totals.RoundOff, 0.001)
}

func TestSimpleTotals(t *testing.T) {
	items := []LineItem{
		{Quantity: 2, UnitPrice: 100, GSTRatePercent: 18},
		{Quantity: 1, UnitPrice: 56, GSTRatePercent: 5},
	}
	totals := SimpleTotals(items)
	assert.Equal(t, 256.00, totals.Subtotal)
	assert.Equal(t, 256.00, totals.GrandTotal)
	assert.Zero(t, totals.TotalGST)
	assert.Zero(t, totals.TotalCGST)
	assert.Zero(t, totals.TotalSGST)
	assert.Zero(t, totals.TotalIGST)
	assert.Zero(t, totals.RoundOff)

	assert.Equal(t, DocumentTotals{}, SimpleTotals(nil))
}
