package model

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a user's social identity, distinct from the authentication
// identity in the user domain. Exactly one profile exists per user.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	FirstName *string   `json:"first_name"`
	LastName  *string   `json:"last_name"`
	Bio       *string   `json:"bio"`
	ImagePath string    `json:"image_path"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultUsername builds the placeholder username assigned at registration.
func DefaultUsername() string {
	return "user-" + uuid.New().String()
}
