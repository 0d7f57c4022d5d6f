package request

// EmployeeRequest represents an employee create or update request
type EmployeeRequest struct {
	Name     string `json:"name" binding:"omitempty,min=1,max=255"`
	Role     string `json:"role" binding:"omitempty,oneof=admin manager cashier"`
	Passcode string `json:"passcode" binding:"omitempty,min=4,max=12"`
	IsActive *bool  `json:"is_active"`
}
