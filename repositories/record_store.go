package repositories

import "strings"

// Canonical field names as they appear in a well-formed workbook.
const (
	FieldBooth        = "Booth #"
	FieldSection      = "Section"
	FieldExhibitor    = "Exhibitor Name"
	FieldItem         = "Item"
	FieldColor        = "Color"
	FieldQuantity     = "Quantity"
	FieldDate         = "Date"
	FieldHour         = "Hour"
	FieldStatus       = "Status"
	FieldType         = "Type"
	FieldSecondaryQty = "Secondary Quantity"
	FieldComments     = "Comments"
	FieldUser         = "User"
	FieldShowName     = "Show Name"
	FieldItems        = "Items"
)

// headerField describes how to locate one logical column when the header
// text in the wild has drifted (trailing spaces, synonyms, renames).
type headerField struct {
	aliases  []string // lowercase substrings accepted as a match
	fallback int      // position in the documented sample layout, -1 if none
}

var headerFields = map[string]headerField{
	FieldBooth:        {aliases: []string{"booth"}, fallback: 0},
	FieldSection:      {aliases: []string{"section"}, fallback: 1},
	FieldExhibitor:    {aliases: []string{"exhibitor"}, fallback: 2},
	FieldItem:         {aliases: []string{"item"}, fallback: 3},
	FieldColor:        {aliases: []string{"color"}, fallback: 4},
	FieldQuantity:     {aliases: []string{"quantity", "qty"}, fallback: 5},
	FieldDate:         {aliases: []string{"date"}, fallback: 6},
	FieldHour:         {aliases: []string{"hour", "time"}, fallback: 7},
	FieldStatus:       {aliases: []string{"status"}, fallback: 8},
	FieldType:         {aliases: []string{"type"}, fallback: 9},
	FieldSecondaryQty: {aliases: []string{"secondary", "boomers"}, fallback: 10},
	FieldComments:     {aliases: []string{"comment"}, fallback: 11},
	FieldUser:         {aliases: []string{"user"}, fallback: 12},
	FieldShowName:     {aliases: []string{"show"}, fallback: 0},
	FieldItems:        {aliases: []string{"items"}, fallback: 0},
}

// ColumnIndex finds the 0-based column for a canonical field name: exact
// match on the trimmed header first, then a case-insensitive alias
// substring, then the documented sample position. Returns -1 when the field
// cannot be placed at all.
func ColumnIndex(header []string, field string) int {
	for i, h := range header {
		if strings.TrimSpace(h) == field {
			return i
		}
	}

	spec, ok := headerFields[field]
	if !ok {
		return -1
	}

	for i, h := range header {
		lower := strings.ToLower(h)
		for _, alias := range spec.aliases {
			if strings.Contains(lower, alias) {
				return i
			}
		}
	}

	if spec.fallback >= 0 && spec.fallback < len(header) {
		return spec.fallback
	}
	return -1
}

// LoadRecords interprets raw rows as records keyed by the trimmed header
// row. Fully-empty rows are dropped; short rows read as empty trailing
// fields. Column counts are not validated.
func LoadRecords(rows [][]string) []map[string]string {
	if len(rows) == 0 {
		return nil
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}

	records := []map[string]string{}
	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		rec := make(map[string]string, len(header))
		for i, name := range header {
			if name == "" {
				continue
			}
			if i < len(row) {
				rec[name] = row[i]
			} else {
				rec[name] = ""
			}
		}
		records = append(records, rec)
	}
	return records
}

// FindRowIndex locates the first row matching the (booth, item, color)
// natural key and returns its 1-based sheet row number, 0 when absent.
// First match wins; duplicate keys are a known limitation of the data
// model, not something resolved here.
func FindRowIndex(rows [][]string, booth, item, color string) int {
	if len(rows) < 2 {
		return 0
	}

	boothIdx := ColumnIndex(rows[0], FieldBooth)
	itemIdx := ColumnIndex(rows[0], FieldItem)
	colorIdx := ColumnIndex(rows[0], FieldColor)
	if boothIdx < 0 || itemIdx < 0 || colorIdx < 0 {
		return 0
	}

	for i, row := range rows[1:] {
		if cellAt(row, boothIdx) == strings.TrimSpace(booth) &&
			cellAt(row, itemIdx) == strings.TrimSpace(item) &&
			cellAt(row, colorIdx) == strings.TrimSpace(color) {
			return i + 2 // +2: past the header, 1-based
		}
	}
	return 0
}

// ColumnValues returns the non-empty values of one column, header excluded.
func ColumnValues(rows [][]string, field string) []string {
	if len(rows) < 2 {
		return nil
	}

	idx := ColumnIndex(rows[0], field)
	if idx < 0 {
		return nil
	}

	values := []string{}
	for _, row := range rows[1:] {
		if v := cellAt(row, idx); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
