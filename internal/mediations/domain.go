package mediations

import "time"

// Mediation represents a mediation case record.
type Mediation struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Update carries optional field changes for UpdateByID. Nil fields keep
// their stored value.
type Update struct {
	Name        *string
	Description *string
	Date        *time.Time
	Status      *string
}
