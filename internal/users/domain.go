package users

import "time"

// User represents a stored account. PasswordHash is the only persisted form
// of the credential and never appears in outward representations.
type User struct {
	ID             string
	Name           string
	Email          string
	PasswordHash   string
	RegisteredDate time.Time
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Public is the outward representation of a user.
type Public struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	RegisteredDate time.Time `json:"registeredDate"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Public returns the outward shape of u.
func (u User) Public() Public {
	return Public{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		RegisteredDate: u.RegisteredDate,
		Status:         u.Status,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

// Update carries optional field changes for UpdateByID. Nil fields keep their
// stored value.
type Update struct {
	Name           *string
	Email          *string
	PasswordHash   *string
	RegisteredDate *time.Time
	Status         *string
}
