package profile

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Profile is the storefront view of a user.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Update carries the mutable profile fields; nil means unchanged.
type Update struct {
	Username  *string `json:"username"`
	AvatarURL *string `json:"avatar_url"`
}
