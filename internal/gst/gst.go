// Package gst computes per-line and document-level GST breakdowns for
// orders and invoices. All functions are pure: inputs are coerced to safe
// numeric values up front, so no call can fail or panic.
package gst

import "math"

// TaxMode selects how GST relates to the unit price.
type TaxMode string

const (
	// ModeInclusive means unit prices already contain GST.
	ModeInclusive TaxMode = "Inclusive GST"
	// ModeExclusive means GST is added on top of unit prices.
	ModeExclusive TaxMode = "Exclusive GST"
)

// ParseTaxMode maps the client configuration's gst_method string to a
// TaxMode. ok is false for anything other than the two known literals;
// callers should then fall back to the degraded SimpleTotals path.
func ParseTaxMode(s string) (TaxMode, bool) {
	switch TaxMode(s) {
	case ModeInclusive:
		return ModeInclusive, true
	case ModeExclusive:
		return ModeExclusive, true
	}
	return "", false
}

// TaxConfig carries the seller-side tax parameters for a computation.
// It replaces ad-hoc reads of the client configuration record.
type TaxConfig struct {
	Mode        TaxMode
	SellerState string
}

// LineItem is one product line in an order or invoice.
type LineItem struct {
	ProductID      string  `json:"product_id"`
	Name           string  `json:"name"`
	Quantity       float64 `json:"quantity"`
	UnitPrice      float64 `json:"unit_price"`
	GSTRatePercent float64 `json:"gst_rate_percent"`
}

// LineComputation is the tax breakdown for a single line. All amounts are
// rounded to two decimals. Exactly one of the CGST+SGST pair or IGST is
// populated; the unused side is zero.
type LineComputation struct {
	TaxableValue float64 `json:"taxable_value"`
	GSTAmount    float64 `json:"gst_amount"`
	CGSTAmount   float64 `json:"cgst_amount"`
	SGSTAmount   float64 `json:"sgst_amount"`
	IGSTAmount   float64 `json:"igst_amount"`
	LineTotal    float64 `json:"line_total"`
}

// DocumentTotals aggregates line computations for a whole document.
// GrandTotal is rounded to the whole rupee; RoundOff records the signed
// delta so payment reconciliation matches exactly.
type DocumentTotals struct {
	Subtotal   float64 `json:"subtotal"`
	TotalGST   float64 `json:"total_gst"`
	TotalCGST  float64 `json:"total_cgst"`
	TotalSGST  float64 `json:"total_sgst"`
	TotalIGST  float64 `json:"total_igst"`
	RoundOff   float64 `json:"round_off"`
	GrandTotal float64 `json:"grand_total"`
}

// Document bundles per-line computations with document totals.
type Document struct {
	Lines  []LineComputation `json:"lines"`
	Totals DocumentTotals    `json:"totals"`
}

// round2 rounds to two decimal places at output boundaries only.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// coerce maps NaN and infinities to zero, mirroring the call-boundary
// coercion the API layer applies to malformed numeric input.
func coerce(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// UseIGST reports whether the seller/buyer jurisdiction pair is
// inter-state. Comparison is case-sensitive, and missing state data on
// either side defaults to intra-state.
func UseIGST(sellerState, buyerState string) bool {
	return sellerState != "" && buyerState != "" && sellerState != buyerState
}

// ComputeLine computes the tax breakdown for one line item.
//
// Inclusive mode back-calculates the taxable value out of the GST-bearing
// gross; exclusive mode adds GST on top. The CGST half is rounded first and
// SGST takes the remainder, so the split always sums to the GST amount.
func ComputeLine(item LineItem, mode TaxMode, useIGST bool) LineComputation {
	qty := coerce(item.Quantity)
	price := coerce(item.UnitPrice)
	rate := coerce(item.GSTRatePercent)

	var taxable, gst, total float64
	if mode == ModeInclusive {
		gross := qty * price
		taxable = gross
		if rate > 0 {
			taxable = gross / (1 + rate/100)
		}
		taxable = round2(taxable)
		gst = round2(gross - taxable)
		total = round2(gross)
	} else {
		taxable = round2(qty * price)
		gst = round2(taxable * rate / 100)
		total = round2(taxable + gst)
	}

	lc := LineComputation{
		TaxableValue: taxable,
		GSTAmount:    gst,
		LineTotal:    total,
	}
	if useIGST {
		lc.IGSTAmount = gst
	} else {
		lc.CGSTAmount = round2(gst / 2)
		lc.SGSTAmount = round2(gst - lc.CGSTAmount)
	}
	return lc
}

// ComputeDocument runs ComputeLine over every item and aggregates the
// totals. An empty item list yields all-zero totals. The call is
// deterministic and side-effect free.
func ComputeDocument(items []LineItem, mode TaxMode, sellerState, buyerState string) Document {
	useIGST := UseIGST(sellerState, buyerState)

	doc := Document{Lines: make([]LineComputation, 0, len(items))}
	for _, item := range items {
		lc := ComputeLine(item, mode, useIGST)
		doc.Lines = append(doc.Lines, lc)
		doc.Totals.Subtotal += lc.TaxableValue
		doc.Totals.TotalGST += lc.GSTAmount
		doc.Totals.TotalCGST += lc.CGSTAmount
		doc.Totals.TotalSGST += lc.SGSTAmount
		doc.Totals.TotalIGST += lc.IGSTAmount
	}
	doc.Totals.Subtotal = round2(doc.Totals.Subtotal)
	doc.Totals.TotalGST = round2(doc.Totals.TotalGST)
	doc.Totals.TotalCGST = round2(doc.Totals.TotalCGST)
	doc.Totals.TotalSGST = round2(doc.Totals.TotalSGST)
	doc.Totals.TotalIGST = round2(doc.Totals.TotalIGST)

	unrounded := doc.Totals.Subtotal + doc.Totals.TotalGST
	doc.Totals.GrandTotal = math.Round(unrounded)
	doc.Totals.RoundOff = round2(doc.Totals.GrandTotal - unrounded)
	return doc
}

// SimpleTotals is the degraded mode used when tax configuration is absent
// or unrecognized: a plain sum of quantity times unit price with every GST
// field zeroed and no round-off.
func SimpleTotals(items []LineItem) DocumentTotals {
	var subtotal float64
	for _, item := range items {
		subtotal += coerce(item.Quantity) * coerce(item.UnitPrice)
	}
	subtotal = round2(subtotal)
	return DocumentTotals{Subtotal: subtotal, GrandTotal: subtotal}
}
