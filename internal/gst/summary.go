package gst

// ItemDetail is a line item enriched with the product metadata carried
// into the persisted invoice summary and handed to the PDF renderer.
type ItemDetail struct {
	ProductID      string  `json:"product_id"`
	Name           string  `json:"name"`
	Brand          string  `json:"brand"`
	Category       string  `json:"category"`
	HSNCode        string  `json:"hsn_code"`
	ProductCode    string  `json:"product_code"`
	UOM            string  `json:"uom"`
	Quantity       float64 `json:"quantity"`
	UnitPrice      float64 `json:"unit_price"`
	GSTRatePercent float64 `json:"gst_rate_percent"`
}

// SummaryItem merges an ItemDetail with its computed tax breakdown.
type SummaryItem struct {
	ItemDetail
	LineComputation
}

// SummaryTotals is the totals block persisted inside an invoice summary.
type SummaryTotals struct {
	Subtotal   float64 `json:"subtotal"`
	TotalGST   float64 `json:"total_gst"`
	TotalCGST  float64 `json:"total_cgst"`
	TotalSGST  float64 `json:"total_sgst"`
	TotalIGST  float64 `json:"total_igst"`
	RoundOff   float64 `json:"round_off"`
	GrandTotal float64 `json:"grand_total"`
	UseIGST    bool    `json:"use_igst"`
	GSTMethod  string  `json:"gst_method"`
}

// Summary is the itemized invoice body stored as JSON on the invoice
// record and consumed by the PDF renderer and the admin UI.
type Summary struct {
	Items  []SummaryItem `json:"items"`
	Totals SummaryTotals `json:"totals"`
}

// lineItems strips ItemDetails down to the engine's input shape.
func lineItems(items []ItemDetail) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, LineItem{
			ProductID:      it.ProductID,
			Name:           it.Name,
			Quantity:       it.Quantity,
			UnitPrice:      it.UnitPrice,
			GSTRatePercent: it.GSTRatePercent,
		})
	}
	return out
}

// BuildSummary computes the document for the given tax configuration and
// buyer state and merges the result with the product metadata.
func BuildSummary(items []ItemDetail, cfg TaxConfig, buyerState string) Summary {
	doc := ComputeDocument(lineItems(items), cfg.Mode, cfg.SellerState, buyerState)

	out := Summary{Items: make([]SummaryItem, 0, len(items))}
	for i, it := range items {
		out.Items = append(out.Items, SummaryItem{ItemDetail: it, LineComputation: doc.Lines[i]})
	}
	out.Totals = SummaryTotals{
		Subtotal:   doc.Totals.Subtotal,
		TotalGST:   doc.Totals.TotalGST,
		TotalCGST:  doc.Totals.TotalCGST,
		TotalSGST:  doc.Totals.TotalSGST,
		TotalIGST:  doc.Totals.TotalIGST,
		RoundOff:   doc.Totals.RoundOff,
		GrandTotal: doc.Totals.GrandTotal,
		UseIGST:    UseIGST(cfg.SellerState, buyerState),
		GSTMethod:  string(cfg.Mode),
	}
	return out
}

// SimpleSummary is the degraded summary used when the seller's tax
// configuration is missing or unrecognized: per-line totals are plain
// quantity times price and every GST field stays zero.
func SimpleSummary(items []ItemDetail) Summary {
	out := Summary{Items: make([]SummaryItem, 0, len(items))}
	for _, it := range items {
		total := round2(coerce(it.Quantity) * coerce(it.UnitPrice))
		out.Items = append(out.Items, SummaryItem{
			ItemDetail:      it,
			LineComputation: LineComputation{TaxableValue: total, LineTotal: total},
		})
	}
	totals := SimpleTotals(lineItems(items))
	out.Totals = SummaryTotals{
		Subtotal:   totals.Subtotal,
		GrandTotal: totals.GrandTotal,
	}
	return out
}
