package repositories

import (
	"context"
	"fmt"
	"log"
	"strings"
)

const (
	ShowsWorksheet     = "Shows"
	InventoryWorksheet = "Show Inventory"
)

// Fallbacks when the catalog sheets are unreadable, so the landing page
// still renders something.
var (
	sampleShows = []string{
		"Miami Home Design and Remodeling Show",
		"Florida International Boat Show",
		"South Florida Business Expo",
	}
	sampleItems = []string{
		"Chair", "Table", "Booth Carpet", "Lighting", "Display Shelf", "Counter",
	}
)

type ShowRepository struct {
	client SpreadsheetClient
}

func NewShowRepository(client SpreadsheetClient) *ShowRepository {
	return &ShowRepository{client: client}
}

// ListShows reads the show names off the Shows sheet. Read failures fall
// back to the sample list rather than blocking the landing page.
func (r *ShowRepository) ListShows(ctx context.Context, sheetID string) []string {
	rows, err := r.client.GetAllRows(ctx, sheetID, ShowsWorksheet)
	if err != nil {
		log.Printf("Failed to load shows: %v", err)
		return sampleShows
	}

	shows := ColumnValues(rows, FieldShowName)
	if len(shows) == 0 {
		return sampleShows
	}
	return shows
}

// ListInventoryItems reads the orderable items off the Show Inventory
// sheet, with the same fallback policy as ListShows.
func (r *ShowRepository) ListInventoryItems(ctx context.Context, sheetID string) []string {
	rows, err := r.client.GetAllRows(ctx, sheetID, InventoryWorksheet)
	if err != nil {
		log.Printf("Failed to load inventory: %v", err)
		return sampleItems
	}

	items := ColumnValues(rows, FieldItems)
	if len(items) == 0 {
		return sampleItems
	}
	return items
}

// ExhibitorName resolves a booth number to its exhibitor name from the
// master sheet. The header row is found by content, not position, because
// some workbooks carry preamble rows above it. Falls back to a generic
// label when nothing matches.
func (r *ShowRepository) ExhibitorName(ctx context.Context, sheetID, booth string) string {
	fallback := fmt.Sprintf("Exhibitor %s", strings.TrimSpace(booth))

	rows, err := r.client.GetAllRows(ctx, sheetID, MasterWorksheet)
	if err != nil {
		return fallback
	}

	headerRow := -1
	for i, row := range rows {
		for _, cell := range row {
			if strings.Contains(cell, FieldExhibitor) {
				headerRow = i
				break
			}
		}
		if headerRow >= 0 {
			break
		}
	}
	if headerRow < 0 {
		return fallback
	}

	booth = strings.TrimSpace(booth)
	for _, row := range rows[headerRow+1:] {
		if cellAt(row, 0) == booth && cellAt(row, 2) != "" {
			return cellAt(row, 2)
		}
	}
	return fallback
}

// ListWorksheets returns every tab title in the workbook.
func (r *ShowRepository) ListWorksheets(ctx context.Context, sheetID string) ([]string, error) {
	return r.client.ListWorksheets(ctx, sheetID)
}
