package domain

import "time"

const (
	RoleClient   = "client"
	RoleProvider = "provider"
)

// User models a registered account. The password is stored only as a
// bcrypt hash and is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
