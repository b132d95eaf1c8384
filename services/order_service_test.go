package services

import (
	"context"
	"fmt"
	"testing"

	"exhibitor-portal/config"
	"exhibitor-portal/models"
	"exhibitor-portal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memClient is an in-memory workbook implementing the spreadsheet client.
type memClient struct {
	sheets map[string][][]string
}

func newMemClient(worksheets ...string) *memClient {
	header := []string{
		"Booth #", "Section", "Exhibitor Name", "Item", "Color", "Quantity",
		"Date", "Hour", "Status", "Type", "Secondary Quantity", "Comments", "User",
	}
	c := &memClient{sheets: map[string][][]string{}}
	for _, name := range worksheets {
		c.sheets[name] = [][]string{append([]string(nil), header...)}
	}
	return c
}

func (c *memClient) ListWorksheets(_ context.Context, _ string) ([]string, error) {
	titles := make([]string, 0, len(c.sheets))
	for title := range c.sheets {
		titles = append(titles, title)
	}
	return titles, nil
}

func (c *memClient) GetAllRows(_ context.Context, _, worksheet string) ([][]string, error) {
	rows, ok := c.sheets[worksheet]
	if !ok {
		return nil, fmt.Errorf("%w: %q", repositories.ErrWorksheetNotFound, worksheet)
	}
	return rows, nil
}

func (c *memClient) AppendRow(_ context.Context, _, worksheet string, values []string) error {
	rows, ok := c.sheets[worksheet]
	if !ok {
		return fmt.Errorf("%w: %q", repositories.ErrWorksheetNotFound, worksheet)
	}
	c.sheets[worksheet] = append(rows, append([]string(nil), values...))
	return nil
}

func (c *memClient) UpdateCell(_ context.Context, _, worksheet string, row, col int, value string) error {
	rows, ok := c.sheets[worksheet]
	if !ok {
		return fmt.Errorf("%w: %q", repositories.ErrWorksheetNotFound, worksheet)
	}
	for len(rows[row-1]) < col {
		rows[row-1] = append(rows[row-1], "")
	}
	rows[row-1][col-1] = value
	return nil
}

func (c *memClient) DeleteRow(_ context.Context, _, worksheet string, row int) error {
	rows, ok := c.sheets[worksheet]
	if !ok {
		return fmt.Errorf("%w: %q", repositories.ErrWorksheetNotFound, worksheet)
	}
	c.sheets[worksheet] = append(rows[:row-1], rows[row:]...)
	return nil
}

func testSession() models.Session {
	return models.Session{
		BoothNumber:   "108",
		Show:          "Miami Home Design and Remodeling Show",
		ExhibitorName: "Zeta Exhibits",
		User:          "Exhibitor-108",
		Role:          models.RoleExhibitor,
	}
}

func setupConfig() {
	config.AppConfig = &config.Config{SheetID: "test-workbook"}
}

func TestPlaceOrderDefaultsAndStamping(t *testing.T) {
	setupConfig()
	client := newMemClient(repositories.MasterWorksheet, DefaultSection)
	svc := NewOrderService(client, nil)

	order, result, err := svc.PlaceOrder(context.Background(), testSession(), models.PlaceOrderRequest{
		Item:     " Chair ",
		Quantity: 2,
		Color:    "Black",
	})
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, "108", order.BoothNumber)
	assert.Equal(t, DefaultSection, order.Section)
	assert.Equal(t, "Zeta Exhibits", order.ExhibitorName)
	assert.Equal(t, "Chair", order.Item)
	assert.Equal(t, models.StatusInProcess, order.Status)
	assert.Equal(t, models.TypeNewOrder, order.Type)
	assert.Equal(t, "Exhibitor-108", order.User)
	assert.NotEmpty(t, order.Date)
	assert.NotEmpty(t, order.Hour)

	assert.True(t, result.SectionAppended)
	assert.Len(t, client.sheets[repositories.MasterWorksheet], 2)
	assert.Len(t, client.sheets[DefaultSection], 2)
}

func TestPlaceOrderValidation(t *testing.T) {
	setupConfig()
	svc := NewOrderService(newMemClient(repositories.MasterWorksheet), nil)

	_, _, err := svc.PlaceOrder(context.Background(), testSession(), models.PlaceOrderRequest{
		Item: "  ", Quantity: 1,
	})
	assert.EqualError(t, err, "item is required")

	_, _, err = svc.PlaceOrder(context.Background(), testSession(), models.PlaceOrderRequest{
		Item: "Chair", Quantity: 0,
	})
	assert.EqualError(t, err, "quantity must be at least 1")
}

func TestListBoothOrdersScopedToSession(t *testing.T) {
	setupConfig()
	client := newMemClient(repositories.MasterWorksheet)
	svc := NewOrderService(client, nil)

	other := testSession()
	other.BoothNumber = "220"
	other.User = "Exhibitor-220"

	_, _, err := svc.PlaceOrder(context.Background(), testSession(), models.PlaceOrderRequest{Item: "Chair", Quantity: 2})
	require.NoError(t, err)
	_, _, err = svc.PlaceOrder(context.Background(), other, models.PlaceOrderRequest{Item: "Table", Quantity: 1})
	require.NoError(t, err)

	orders, err := svc.ListBoothOrders(context.Background(), testSession())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Chair", orders[0].Item)
}

func TestUpdateStatusRecordsActor(t *testing.T) {
	setupConfig()
	client := newMemClient(repositories.MasterWorksheet)
	svc := NewOrderService(client, nil)

	_, _, err := svc.PlaceOrder(context.Background(), testSession(), models.PlaceOrderRequest{Item: "Chair", Quantity: 2, Color: "Black"})
	require.NoError(t, err)

	staff := models.Session{User: "staff", Role: models.RoleStaff}
	updated, err := svc.UpdateStatus(context.Background(), staff, models.UpdateStatusRequest{
		Worksheet:   repositories.MasterWorksheet,
		BoothNumber: "108",
		Item:        "Chair",
		Color:       "Black",
		Status:      models.StatusDelivered,
	})
	require.NoError(t, err)
	assert.True(t, updated)

	row := client.sheets[repositories.MasterWorksheet][1]
	assert.Equal(t, models.StatusDelivered, row[8])
	assert.Equal(t, "staff", row[12])
}

func TestDeleteOrderUsesSessionBooth(t *testing.T) {
	setupConfig()
	client := newMemClient(repositories.MasterWorksheet)
	svc := NewOrderService(client, nil)

	_, _, err := svc.PlaceOrder(context.Background(), testSession(), models.PlaceOrderRequest{Item: "Chair", Quantity: 2, Color: "Black"})
	require.NoError(t, err)

	deleted, err := svc.DeleteOrder(context.Background(), testSession(), models.DeleteOrderRequest{
		Item: "Chair", Color: "Black",
	})
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Len(t, client.sheets[repositories.MasterWorksheet], 1)
}

func TestListWorksheetOrdersDefaultsToMaster(t *testing.T) {
	setupConfig()
	client := newMemClient(repositories.MasterWorksheet)
	svc := NewOrderService(client, nil)

	_, _, err := svc.PlaceOrder(context.Background(), testSession(), models.PlaceOrderRequest{Item: "Chair", Quantity: 2})
	require.NoError(t, err)

	orders, err := svc.ListWorksheetOrders(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}
