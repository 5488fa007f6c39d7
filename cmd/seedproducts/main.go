// Command seedproducts converts a supplier price-list Excel file into a
// SQL seed file for the products table.
// Expected columns: A=Name, B=Brand, C=Category, D=HSN Code, E=Product Code,
// F=UOM, G=Price, H=Discount Price, I=GST Rate ("5%" or "5"). Data starts
// at row index 1 (header row skipped).
// Usage: go run ./cmd/seedproducts <price-list.xlsx>
// Output: db/seeds/products.sql
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const batchSize = 500

type productEntry struct {
	name          string
	brand         string
	category      string
	hsnCode       string
	productCode   string
	uom           string
	price         float64
	discountPrice float64
	gstRate       float64
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: seedproducts <price-list.xlsx>")
	}
	xlsxPath := os.Args[1]
	outPath := "db/seeds/products.sql"

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	entries, err := parsePriceList(f)
	if err != nil {
		return fmt.Errorf("parse price list: %w", err)
	}
	log.Printf("price list: %d products", len(entries))

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	w := func(s string) error { _, werr := fmt.Fprintln(out, s); return werr }

	for _, line := range []string{
		"-- Product seed data generated from the supplier price list.",
		fmt.Sprintf("-- %d products in batches of %d.", len(entries), batchSize),
		"BEGIN;",
		"",
	} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write header: %w", werr)
		}
	}

	for i := 0; i < len(entries); i += batchSize {
		end := i + batchSize
		if end > len(entries) {
			end = len(entries)
		}
		if err := writeBatch(out, entries[i:end]); err != nil {
			return fmt.Errorf("write batch at offset %d: %w", i, err)
		}
	}

	for _, line := range []string{"", "COMMIT;"} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write footer: %w", werr)
		}
	}

	log.Printf("Generated %d products (%d batches) in %s",
		len(entries), (len(entries)+batchSize-1)/batchSize, outPath)
	return nil
}

// parsePriceList reads the first sheet of the price list workbook.
func parsePriceList(f *excelize.File) ([]productEntry, error) {
	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var entries []productEntry
	for i := 1; i < len(rows); i++ {
		row := rows[i]

		name := strings.TrimSpace(cellVal(row, 0))
		code := strings.TrimSpace(cellVal(row, 4))
		if name == "" || code == "" {
			continue
		}
		if seen[code] {
			continue
		}

		price, err := parseNumber(cellVal(row, 6))
		if err != nil || price <= 0 {
			continue
		}
		discount, _ := parseNumber(cellVal(row, 7))
		rate, err := parseRate(cellVal(row, 8))
		if err != nil {
			continue
		}

		seen[code] = true
		entries = append(entries, productEntry{
			name:          name,
			brand:         strings.TrimSpace(cellVal(row, 1)),
			category:      strings.TrimSpace(cellVal(row, 2)),
			hsnCode:       strings.TrimSpace(cellVal(row, 3)),
			productCode:   code,
			uom:           strings.TrimSpace(cellVal(row, 5)),
			price:         price,
			discountPrice: discount,
			gstRate:       rate,
		})
	}
	return entries, nil
}

// cellVal returns the cell at idx or "" when the row is short.
func cellVal(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

func parseNumber(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// parseRate accepts "5", "5%", and "5.00 %".
func parseRate(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// writeBatch writes one multi-row INSERT for up to batchSize entries.
func writeBatch(out *os.File, entries []productEntry) error {
	if len(entries) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(out, "INSERT INTO products (name, brand, category, hsn_code, product_code, uom, price, discount_price, gst_rate) VALUES"); err != nil {
		return err
	}
	for i, e := range entries {
		sep := ","
		if i == len(entries)-1 {
			sep = ""
		}
		row := fmt.Sprintf("  (%s, %s, %s, %s, %s, %s, %.2f, %.2f, %.2f)%s",
			sqlString(e.name), sqlString(e.brand), sqlString(e.category),
			sqlString(e.hsnCode), sqlString(e.productCode), sqlString(e.uom),
			e.price, e.discountPrice, e.gstRate, sep)
		if _, err := fmt.Fprintln(out, row); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(out, "ON CONFLICT (product_code) DO NOTHING;")
	return err
}

// sqlString escapes single quotes for a SQL string literal.
func sqlString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
