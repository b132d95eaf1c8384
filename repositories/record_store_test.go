package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var sampleHeader = []string{
	"Booth #", "Section", "Exhibitor Name", "Item", "Color", "Quantity",
	"Date", "Hour", "Status", "Type", "Secondary Quantity", "Comments", "User",
}

func TestColumnIndexExactMatch(t *testing.T) {
	assert.Equal(t, 0, ColumnIndex(sampleHeader, FieldBooth))
	assert.Equal(t, 3, ColumnIndex(sampleHeader, FieldItem))
	assert.Equal(t, 4, ColumnIndex(sampleHeader, FieldColor))
	assert.Equal(t, 8, ColumnIndex(sampleHeader, FieldStatus))
}

func TestColumnIndexTrimsHeaderCells(t *testing.T) {
	header := []string{"Booth # ", " Item", "Color  "}
	assert.Equal(t, 0, ColumnIndex(header, FieldBooth))
	assert.Equal(t, 1, ColumnIndex(header, FieldItem))
	assert.Equal(t, 2, ColumnIndex(header, FieldColor))
}

func TestColumnIndexAliasFallback(t *testing.T) {
	// Headers in the wild: synonyms and decorations instead of canon.
	header := []string{"Stand/Booth No.", "Team Section", "Company", "Ordered Item", "Color choice"}
	assert.Equal(t, 0, ColumnIndex(header, FieldBooth))
	assert.Equal(t, 3, ColumnIndex(header, FieldItem))
	assert.Equal(t, 4, ColumnIndex(header, FieldColor))
}

func TestColumnIndexPositionalFallback(t *testing.T) {
	// Nothing matches by name, so the documented sample layout decides.
	header := []string{"A", "B", "C", "D", "E"}
	assert.Equal(t, 0, ColumnIndex(header, FieldBooth))
	assert.Equal(t, 3, ColumnIndex(header, FieldItem))
	assert.Equal(t, 4, ColumnIndex(header, FieldColor))

	// Fallback past the header width cannot be used.
	assert.Equal(t, -1, ColumnIndex([]string{"A", "B"}, FieldColor))
}

func TestColumnIndexUnknownField(t *testing.T) {
	assert.Equal(t, -1, ColumnIndex(sampleHeader, "No Such Field"))
}

func TestLoadRecords(t *testing.T) {
	rows := [][]string{
		{"Booth #", "Section", "Exhibitor Name "},
		{"108", "Main Floor", "Acme Corp"},
		{"", "", ""},
		{"220", "West Hall"},
	}

	records := LoadRecords(rows)
	assert.Len(t, records, 2)
	assert.Equal(t, "108", records[0]["Booth #"])
	assert.Equal(t, "Acme Corp", records[0]["Exhibitor Name"])

	// Short row: missing trailing field reads as empty, not a panic.
	assert.Equal(t, "220", records[1]["Booth #"])
	assert.Equal(t, "", records[1]["Exhibitor Name"])
}

func TestLoadRecordsEmptySheet(t *testing.T) {
	assert.Nil(t, LoadRecords(nil))
	assert.Empty(t, LoadRecords([][]string{{"Booth #", "Item"}}))
}

func TestFindRowIndexDocumentedLayout(t *testing.T) {
	rows := [][]string{
		sampleHeader,
		{"101", "Main Floor", "Alpha", "Table", "White"},
		{"102", "Main Floor", "Beta", "Chair", "Black"},
		{"103", "West Hall", "Gamma", "Counter", "Gray"},
		{"104", "West Hall", "Delta", "Lighting", ""},
		{"105", "Main Floor", "Epsilon", "Chair", "Blue"},
		{"108", "Main Floor", "Zeta", "Chair", "Black"}, // sheet row 7
	}

	assert.Equal(t, 7, FindRowIndex(rows, "108", "Chair", "Black"))
	assert.Equal(t, 0, FindRowIndex(rows, "999", "Chair", "Black"))
	assert.Equal(t, 0, FindRowIndex(rows, "108", "Chair", "Red"))
}

func TestFindRowIndexFirstMatchWins(t *testing.T) {
	// Duplicate natural keys are unresolved by the data model; the earliest
	// inserted row is the one every mutation lands on.
	rows := [][]string{
		sampleHeader,
		{"108", "Main Floor", "Zeta", "Chair", "Black"},
		{"108", "West Hall", "Zeta", "Chair", "Black"},
	}

	assert.Equal(t, 2, FindRowIndex(rows, "108", "Chair", "Black"))
}

func TestFindRowIndexTrimsKeyValues(t *testing.T) {
	rows := [][]string{
		sampleHeader,
		{" 108 ", "Main Floor", "Zeta", "Chair ", " Black"},
	}

	assert.Equal(t, 2, FindRowIndex(rows, "108", "Chair", "Black"))
}

func TestColumnValues(t *testing.T) {
	rows := [][]string{
		{"Show Name", "Start Date"},
		{"Miami Home Design and Remodeling Show", "01/05/2026"},
		{"", ""},
		{"Florida International Boat Show", "02/12/2026"},
	}

	assert.Equal(t, []string{
		"Miami Home Design and Remodeling Show",
		"Florida International Boat Show",
	}, ColumnValues(rows, FieldShowName))
}
