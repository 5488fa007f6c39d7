package gst

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() []ItemDetail {
	return []ItemDetail{
		{
			ProductID: "prod-11", Name: "Masala Dosa Mix", Brand: "Appu Foods",
			Category: "Instant Mix", HSNCode: "2106", ProductCode: "AF-1021",
			UOM: "pkt", Quantity: 2, UnitPrice: 100, GSTRatePercent: 18,
		},
		{
			ProductID: "prod-12", Name: "Filter Coffee Powder", Brand: "Appu Foods",
			Category: "Beverages", HSNCode: "0901", ProductCode: "AF-2040",
			UOM: "kg", Quantity: 1, UnitPrice: 56, GSTRatePercent: 5,
		},
	}
}

func TestBuildSummary(t *testing.T) {
	cfg := TaxConfig{Mode: ModeExclusive, SellerState: "Karnataka"}
	s := BuildSummary(sampleItems(), cfg, "Maharashtra")
	require.Len(t, s.Items, 2)

	// product metadata rides along with the computation
	assert.Equal(t, "2106", s.Items[0].HSNCode)
	assert.Equal(t, "AF-1021", s.Items[0].ProductCode)
	assert.Equal(t, "Appu Foods", s.Items[0].Brand)

	assert.Equal(t, 200.00, s.Items[0].TaxableValue)
	assert.Equal(t, 36.00, s.Items[0].IGSTAmount)
	assert.Zero(t, s.Items[0].CGSTAmount)

	assert.True(t, s.Totals.UseIGST)
	assert.Equal(t, "Exclusive GST", s.Totals.GSTMethod)
	assert.Equal(t, 256.00, s.Totals.Subtotal)
	assert.Equal(t, 38.80, s.Totals.TotalGST)
	assert.Equal(t, 38.80, s.Totals.TotalIGST)
	assert.Equal(t, 295.00, s.Totals.GrandTotal)
	assert.InDelta(t, 0.20, s.Totals.RoundOff, 0.001)
}

func TestBuildSummary_Intrastate(t *testing.T) {
	cfg := TaxConfig{Mode: ModeInclusive, SellerState: "Karnataka"}
	s := BuildSummary(sampleItems(), cfg, "Karnataka")

	assert.False(t, s.Totals.UseIGST)
	assert.Zero(t, s.Totals.TotalIGST)
	assert.InDelta(t, s.Totals.TotalGST, s.Totals.TotalCGST+s.Totals.TotalSGST, 0.01)
	// inclusive: grand total equals the rupee-rounded sum of the gross lines
	assert.Equal(t, 256.00, s.Totals.GrandTotal)
}

func TestBuildSummary_JSONShape(t *testing.T) {
	cfg := TaxConfig{Mode: ModeInclusive, SellerState: "Karnataka"}
	raw, err := json.Marshal(BuildSummary(sampleItems()[:1], cfg, "Karnataka"))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	totals, ok := decoded["totals"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{"subtotal", "total_gst", "total_cgst", "total_sgst",
		"total_igst", "round_off", "grand_total", "use_igst", "gst_method"} {
		assert.Contains(t, totals, key)
	}

	items, ok := decoded["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	first := items[0].(map[string]any)
	for _, key := range []string{"product_id", "name", "brand", "category", "hsn_code",
		"product_code", "quantity", "unit_price", "taxable_value", "gst_amount", "line_total"} {
		assert.Contains(t, first, key)
	}
}

func TestSimpleSummary(t *testing.T) {
	s := SimpleSummary(sampleItems())
	require.Len(t, s.Items, 2)

	assert.Equal(t, 200.00, s.Items[0].LineTotal)
	assert.Zero(t, s.Items[0].GSTAmount)
	assert.Equal(t, 256.00, s.Totals.Subtotal)
	assert.Equal(t, 256.00, s.Totals.GrandTotal)
	assert.Zero(t, s.Totals.TotalGST)
	assert.Empty(t, s.Totals.GSTMethod)
}
