package models

const (
	RoleExhibitor = "exhibitor"
	RoleStaff     = "staff"
)

// Session is the per-request context rebuilt from the JWT claims. It
// replaces any ambient "current booth" state: every operation receives the
// session it acts for.
type Session struct {
	BoothNumber   string `json:"booth_number,omitempty"`
	Show          string `json:"show,omitempty"`
	ExhibitorName string `json:"exhibitor_name,omitempty"`
	User          string `json:"user"`
	Role          string `json:"role"`
}
