package request

// TableRequest represents a dining table create or update request
type TableRequest struct {
	Name     string `json:"name" binding:"omitempty,min=1,max=100"`
	Floor    int    `json:"floor" binding:"min=0"`
	Seats    int    `json:"seats" binding:"min=0"`
	IsActive *bool  `json:"is_active"`
}
