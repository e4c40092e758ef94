package repository

import (
	"context"

	"github.com/google/uuid"

	profilemodel "social-backend/internal/domains/profile/model"
	"social-backend/internal/domains/user/model"
)

// UserRepository persists authentication identities. Registration
// writes the user and its profile in one transaction so neither can
// exist without the other.
type UserRepository interface {
	CreateWithProfile(ctx context.Context, user *model.User, profile *profilemodel.Profile) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// Delete removes the user; profiles, posts, follows, likes and
	// comments go with it via cascading foreign keys.
	Delete(ctx context.Context, id uuid.UUID) error
}
