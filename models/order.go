package models

import "strconv"

// Known status values. The sheet accepts any string; these are the ones the
// UI renders with their own styling.
const (
	StatusNew            = "New"
	StatusInProcess      = "In Process"
	StatusOutForDelivery = "Out for delivery"
	StatusInRoute        = "In route from warehouse"
	StatusDelivered      = "Delivered"
	StatusReceived       = "Received"
	StatusCancelled      = "cancelled"
	StatusNotStarted     = "Not started"
)

const (
	TypeNewOrder = "New Order"

	DateLayout = "01/02/2006"
	HourLayout = "03:04:05 PM"
)

type Order struct {
	BoothNumber   string `json:"booth_number"`
	Section       string `json:"section,omitempty"`
	ExhibitorName string `json:"exhibitor_name"`
	Item          string `json:"item"`
	Color         string `json:"color,omitempty"`
	Quantity      int    `json:"quantity"`
	Date          string `json:"date"`
	Hour          string `json:"hour"`
	Status        string `json:"status"`
	Type          string `json:"type"`
	SecondaryQty  string `json:"secondary_quantity,omitempty"`
	Comments      string `json:"comments,omitempty"`
	User          string `json:"user"`
}

// ToRow lays the order out in the workbook's 13-column append order.
func (o Order) ToRow() []string {
	qty := ""
	if o.Quantity > 0 {
		qty = strconv.Itoa(o.Quantity)
	}
	return []string{
		o.BoothNumber,
		o.Section,
		o.ExhibitorName,
		o.Item,
		o.Color,
		qty,
		o.Date,
		o.Hour,
		o.Status,
		o.Type,
		o.SecondaryQty,
		o.Comments,
		o.User,
	}
}

// OrderFromRecord rebuilds an order from a header-keyed sheet record.
func OrderFromRecord(rec map[string]string) Order {
	qty, _ := strconv.Atoi(rec["Quantity"])
	return Order{
		BoothNumber:   rec["Booth #"],
		Section:       rec["Section"],
		ExhibitorName: rec["Exhibitor Name"],
		Item:          rec["Item"],
		Color:         rec["Color"],
		Quantity:      qty,
		Date:          rec["Date"],
		Hour:          rec["Hour"],
		Status:        rec["Status"],
		Type:          rec["Type"],
		SecondaryQty:  rec["Secondary Quantity"],
		Comments:      rec["Comments"],
		User:          rec["User"],
	}
}
