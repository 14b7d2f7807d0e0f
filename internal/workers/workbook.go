// internal/workers/workbook.go
package workers

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx/v3"

	"github.com/ammerola/shoplist-be/internal/core/domain"
)

// ContentTypeXLSX is the MIME type of exported workbooks
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const sheetName = "Lista zakupów"

// Column order shared by export and import, so exports can be re-imported
var workbookHeaders = []string{"Nazwa", "Ilość", "Waga (kg)", "Kategoria", "Kod kreskowy", "Kupione"}

const (
	colName = iota
	colQuantity
	colWeight
	colCategory
	colBarcode
	colCompleted
)

// WriteWorkbook writes the items of list as an xlsx workbook
func WriteWorkbook(w io.Writer, list *domain.ShoppingList, items []*domain.ShoppingItem) error {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to add worksheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, header := range workbookHeaders {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}

	for _, item := range items {
		row := sheet.AddRow()
		row.AddCell().SetString(item.Name)
		if item.IsWeighed() {
			row.AddCell().SetString("")
			row.AddCell().SetFloat(item.Weight.InexactFloat64())
		} else {
			row.AddCell().SetInt(item.Quantity)
			row.AddCell().SetString("")
		}
		row.AddCell().SetString(item.Category)
		row.AddCell().SetString(item.Barcode)
		if item.IsCompleted {
			row.AddCell().SetString("tak")
		} else {
			row.AddCell().SetString("")
		}
	}

	sheet.SetColWidth(colName+1, colName+1, 30)
	sheet.SetColWidth(colQuantity+1, colCompleted+1, 15)

	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook for list %d: %w", list.ID, err)
	}
	return nil
}

// ReadWorkbook reads items from the first sheet of an xlsx file, skipping
// the header row. Rows that cannot be turned into an item are counted as
// skipped; blank rows are ignored.
func ReadWorkbook(data []byte) ([]*domain.ShoppingItem, int, error) {
	file, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, 0, domain.NewValidationError("not a valid xlsx file: %v", err)
	}
	if len(file.Sheets) == 0 {
		return nil, 0, nil
	}

	var items []*domain.ShoppingItem
	skipped := 0
	rowIdx := 0

	err = file.Sheets[0].ForEachRow(func(r *xlsx.Row) error {
		if rowIdx == 0 {
			rowIdx++
			return nil
		}
		rowIdx++

		item, blank, ok := parseRow(r)
		switch {
		case blank:
		case !ok:
			skipped++
		default:
			items = append(items, item)
		}
		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to process workbook rows: %w", err)
	}

	return items, skipped, nil
}

func parseRow(r *xlsx.Row) (item *domain.ShoppingItem, blank, ok bool) {
	get := func(i int) string {
		c := r.GetCell(i)
		if c == nil {
			return ""
		}
		return strings.TrimSpace(c.String())
	}

	name := get(colName)
	quantity := get(colQuantity)
	weight := get(colWeight)
	category := get(colCategory)
	barcode := get(colBarcode)

	if name == "" {
		return nil, quantity == "" && weight == "" && category == "" && barcode == "", false
	}

	item = &domain.ShoppingItem{
		Name:     name,
		Quantity: 1,
		Category: category,
		Barcode:  barcode,
	}

	if weight != "" {
		w, err := decimal.NewFromString(strings.ReplaceAll(weight, ",", "."))
		if err != nil || !w.IsPositive() {
			return nil, false, false
		}
		item.Weight = &w
	} else if quantity != "" {
		q, err := parseQuantity(quantity)
		if err != nil {
			return nil, false, false
		}
		item.Quantity = q
	}

	if barcode != "" && !domain.IsNumericCode(barcode) {
		return nil, false, false
	}

	return item, false, true
}

// parseQuantity accepts "3" as well as the "3.0" some spreadsheets produce
func parseQuantity(s string) (int, error) {
	if q, err := strconv.Atoi(s); err == nil {
		return q, nil
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	if err != nil || !d.IsInteger() {
		return 0, fmt.Errorf("invalid quantity %q", s)
	}
	return int(d.IntPart()), nil
}
