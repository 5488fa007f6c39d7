package csvexport

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/nicitum/orderappu-sub000/internal/domain"
	"github.com/nicitum/orderappu-sub000/internal/gst"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row for the invoice register.
var columns = []string{
	"Invoice Number",
	"Invoice Date",
	"Order ID",
	"Customer ID",
	"GST Method",
	"Taxable Amount",
	"CGST",
	"SGST",
	"IGST",
	"Total GST",
	"Round Off",
	"Grand Total",
	"Amount In Words",
	"Line Item Count",
	"Degraded",
	"Created At",
}

// Writer wraps csv.Writer for exporting the invoice register as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the register header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteInvoices converts a batch of invoices to CSV rows and writes them.
func (w *Writer) WriteInvoices(invoices []domain.Invoice) error {
	for i := range invoices {
		row := invoiceToRow(&invoices[i])
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// invoiceToRow converts a single invoice to a row. If the stored summary
// fails to decode, the tax breakdown columns are left empty and only the
// invoice-level columns are filled.
func invoiceToRow(inv *domain.Invoice) []string {
	row := make([]string, len(columns))

	row[0] = inv.InvoiceNumber
	row[1] = inv.InvoiceDate.Format("2006-01-02")
	if inv.OrderID != nil {
		row[2] = inv.OrderID.String()
	}
	row[3] = inv.CustomerID.String()
	row[11] = formatMoney(inv.GrandTotal)
	row[12] = inv.AmountWords
	row[14] = formatBool(inv.Degraded)
	row[15] = inv.CreatedAt.Format(time.RFC3339)

	if len(inv.Summary) == 0 {
		return row
	}
	var summary gst.Summary
	if err := json.Unmarshal(inv.Summary, &summary); err != nil {
		return row
	}

	row[4] = summary.Totals.GSTMethod
	row[5] = formatMoney(summary.Totals.Subtotal)
	row[6] = formatMoney(summary.Totals.TotalCGST)
	row[7] = formatMoney(summary.Totals.TotalSGST)
	row[8] = formatMoney(summary.Totals.TotalIGST)
	row[9] = formatMoney(summary.Totals.TotalGST)
	row[10] = formatMoney(summary.Totals.RoundOff)
	row[13] = strconv.Itoa(len(summary.Items))

	return row
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses
// consecutive underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition.
// Format: {sanitized_name}_{YYYY-MM-DD}.csv
func BuildFilename(name string) string {
	sanitized := SanitizeFilename(name)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.csv", sanitized, date)
}
