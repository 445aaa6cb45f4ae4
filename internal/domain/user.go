package domain

import "time"

type User struct {
	ID           int       `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     string    `json:"full_name" db:"full_name"`
	Phone        *string   `json:"phone" db:"phone"`
	City         *string   `json:"city" db:"city"`
	Latitude     *float64  `json:"latitude" db:"latitude"`
	Longitude    *float64  `json:"longitude" db:"longitude"`
	Plan         PlanTier  `json:"plan" db:"plan"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// HasLocation reports whether both coordinates are set.
func (u *User) HasLocation() bool {
	return u != nil && u.Latitude != nil && u.Longitude != nil
}
