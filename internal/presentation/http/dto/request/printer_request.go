package request

// PrinterConfigRequest represents a printer create or update request
type PrinterConfigRequest struct {
	Name        string `json:"name" binding:"omitempty,min=1,max=255"`
	PrinterType string `json:"printer_type" binding:"omitempty,oneof=network usb bluetooth"`
	IPAddress   string `json:"ip_address" binding:"omitempty,max=100"`
	Port        *int   `json:"port" binding:"omitempty,min=1,max=65535"`
	Copies      *int   `json:"copies" binding:"omitempty,min=1,max=10"`
	MacAddress  string `json:"mac_address" binding:"omitempty,max=50"`
	IsActive    *bool  `json:"is_active"`
	IsEmployee  *bool  `json:"is_employee"`
	IsKitchen   *bool  `json:"is_kitchen"`
	Floor       *int   `json:"floor" binding:"omitempty,min=0"`
}
