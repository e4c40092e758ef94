package model

import (
	"time"

	"github.com/google/uuid"
)

// User is the authentication identity. The social identity lives in the
// profile domain, created together with the user at registration.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
