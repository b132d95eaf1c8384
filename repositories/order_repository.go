package repositories

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"exhibitor-portal/models"
)

// MasterWorksheet is the tab every order lands in. Orders also get a copy
// in the tab named after their section when that tab exists.
const MasterWorksheet = "Orders"

var orderFields = []string{
	FieldBooth, FieldSection, FieldExhibitor, FieldItem, FieldColor,
	FieldQuantity, FieldDate, FieldHour, FieldStatus, FieldType,
	FieldSecondaryQty, FieldComments, FieldUser,
}

// AddOrderResult reports both halves of the dual write. The primary append
// alone decides success; the section copy is best effort but its outcome is
// carried back instead of being discarded.
type AddOrderResult struct {
	SectionAppended bool   `json:"section_appended"`
	SectionSkipped  bool   `json:"section_skipped,omitempty"`
	SectionError    string `json:"section_error,omitempty"`
}

type OrderRepository struct {
	client SpreadsheetClient
}

func NewOrderRepository(client SpreadsheetClient) *OrderRepository {
	return &OrderRepository{client: client}
}

// AddOrder stamps the current date and hour, appends the order to the
// master sheet, then tries the section-named sheet. A missing section tab
// is skipped, any other section failure is reported in the result.
func (r *OrderRepository) AddOrder(ctx context.Context, sheetID string, order *models.Order) (*AddOrderResult, error) {
	now := time.Now()
	order.Date = now.Format(models.DateLayout)
	order.Hour = now.Format(models.HourLayout)
	if order.Status == "" {
		order.Status = models.StatusNew
	}
	if order.Type == "" {
		order.Type = models.TypeNewOrder
	}

	row := order.ToRow()
	if err := r.client.AppendRow(ctx, sheetID, MasterWorksheet, row); err != nil {
		return nil, err
	}

	result := &AddOrderResult{}
	if order.Section != "" {
		switch err := r.client.AppendRow(ctx, sheetID, order.Section, row); {
		case err == nil:
			result.SectionAppended = true
		case errors.Is(err, ErrWorksheetNotFound):
			result.SectionSkipped = true
		default:
			result.SectionError = err.Error()
			log.Printf("Section append failed for %q: %v", order.Section, err)
		}
	}
	return result, nil
}

// FindOrder locates an order by its (booth, item, color) natural key.
// Returns nil without error when no row matches.
func (r *OrderRepository) FindOrder(ctx context.Context, sheetID, worksheet, booth, item, color string) (*models.Order, error) {
	rows, err := r.client.GetAllRows(ctx, sheetID, worksheet)
	if err != nil {
		return nil, err
	}

	idx := FindRowIndex(rows, booth, item, color)
	if idx == 0 {
		return nil, nil
	}

	order := models.OrderFromRecord(recordAt(rows, idx))
	return &order, nil
}

// ListOrdersForBooth returns every master-sheet order for one booth, in
// sheet order.
func (r *OrderRepository) ListOrdersForBooth(ctx context.Context, sheetID, booth string) ([]models.Order, error) {
	rows, err := r.client.GetAllRows(ctx, sheetID, MasterWorksheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return []models.Order{}, nil
	}

	boothIdx := ColumnIndex(rows[0], FieldBooth)
	if boothIdx < 0 {
		return []models.Order{}, nil
	}

	orders := []models.Order{}
	for i, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		if cellAt(row, boothIdx) == strings.TrimSpace(booth) {
			orders = append(orders, models.OrderFromRecord(recordAt(rows, i+2)))
		}
	}
	return orders, nil
}

// ListOrders returns every order row of one worksheet, in sheet order.
func (r *OrderRepository) ListOrders(ctx context.Context, sheetID, worksheet string) ([]models.Order, error) {
	rows, err := r.client.GetAllRows(ctx, sheetID, worksheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return []models.Order{}, nil
	}

	orders := []models.Order{}
	for i, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		orders = append(orders, models.OrderFromRecord(recordAt(rows, i+2)))
	}
	return orders, nil
}

// UpdateStatus rewrites the Status, User, Date and Hour cells of the first
// row matching the natural key. Returns false when no row matches.
func (r *OrderRepository) UpdateStatus(ctx context.Context, sheetID, worksheet, booth, item, color, status, user string) (bool, error) {
	rows, err := r.client.GetAllRows(ctx, sheetID, worksheet)
	if err != nil {
		return false, err
	}

	idx := FindRowIndex(rows, booth, item, color)
	if idx == 0 {
		return false, nil
	}

	now := time.Now()
	updates := []struct {
		field string
		value string
	}{
		{FieldStatus, status},
		{FieldUser, user},
		{FieldDate, now.Format(models.DateLayout)},
		{FieldHour, now.Format(models.HourLayout)},
	}

	for _, u := range updates {
		col := ColumnIndex(rows[0], u.field)
		if col < 0 {
			continue
		}
		if err := r.client.UpdateCell(ctx, sheetID, worksheet, idx, col+1, u.value); err != nil {
			return false, err
		}
	}
	return true, nil
}

// DeleteOrder removes the order row. The section sheet is tried first, the
// master sheet only when the section attempt reports no match: section
// sheets are the authoritative per-team view, the master a fallback. A
// missing section tab counts as no match.
func (r *OrderRepository) DeleteOrder(ctx context.Context, sheetID, booth, item, color, section string) (bool, error) {
	if section != "" {
		deleted, err := r.deleteFrom(ctx, sheetID, section, booth, item, color)
		if err != nil && !errors.Is(err, ErrWorksheetNotFound) {
			return false, err
		}
		if deleted {
			return true, nil
		}
	}
	return r.deleteFrom(ctx, sheetID, MasterWorksheet, booth, item, color)
}

func (r *OrderRepository) deleteFrom(ctx context.Context, sheetID, worksheet, booth, item, color string) (bool, error) {
	rows, err := r.client.GetAllRows(ctx, sheetID, worksheet)
	if err != nil {
		return false, err
	}

	idx := FindRowIndex(rows, booth, item, color)
	if idx == 0 {
		return false, nil
	}

	if err := r.client.DeleteRow(ctx, sheetID, worksheet, idx); err != nil {
		return false, err
	}
	return true, nil
}

// recordAt builds a canonical-keyed record for a 1-based sheet row, using
// the header alias resolution so drifted headers still land on the right
// fields.
func recordAt(rows [][]string, sheetRow int) map[string]string {
	row := rows[sheetRow-1]
	rec := make(map[string]string, len(orderFields))
	for _, field := range orderFields {
		if idx := ColumnIndex(rows[0], field); idx >= 0 {
			rec[field] = cellAt(row, idx)
		}
	}
	return rec
}
