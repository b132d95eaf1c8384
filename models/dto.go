package models

type LoginRequest struct {
	Show        string `json:"show" form:"show" binding:"required"`
	BoothNumber string `json:"booth_number" form:"booth_number" binding:"required"`
}

type StaffLoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type PlaceOrderRequest struct {
	Item     string `json:"item" form:"item" binding:"required"`
	Color    string `json:"color" form:"color"`
	Quantity int    `json:"quantity" form:"quantity" binding:"required,min=1,max=100"`
	Section  string `json:"section" form:"section"`
	Comments string `json:"comments" form:"comments" binding:"max=500"`
}

type UpdateStatusRequest struct {
	Worksheet   string `json:"worksheet" form:"worksheet" binding:"required"`
	BoothNumber string `json:"booth_number" form:"booth_number" binding:"required"`
	Item        string `json:"item" form:"item" binding:"required"`
	Color       string `json:"color" form:"color"`
	Status      string `json:"status" form:"status" binding:"required"`
}

type DeleteOrderRequest struct {
	Item    string `json:"item" form:"item" binding:"required"`
	Color   string `json:"color" form:"color"`
	Section string `json:"section" form:"section"`
}
