package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type LoginResponse struct {
	Token         string `json:"token"`
	BoothNumber   string `json:"booth_number,omitempty"`
	Show          string `json:"show,omitempty"`
	ExhibitorName string `json:"exhibitor_name,omitempty"`
	Role          string `json:"role"`
}
