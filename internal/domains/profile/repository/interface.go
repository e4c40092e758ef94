package repository

import (
	"context"

	"github.com/google/uuid"

	"social-backend/internal/domains/profile/model"
)

// ProfileRepository is the data access contract for profiles and follow
// edges. All listing methods compute counters and relationship flags in a
// single aggregated query; callers never loop over items issuing queries.
type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error)

	// List returns annotated rows filtered by exact case-insensitive
	// username/first/last name matches. viewerProfileID drives
	// is_followed_by_me; uuid.Nil means no authenticated viewer.
	List(ctx context.Context, filter model.ListProfilesFilter, viewerProfileID uuid.UUID) ([]model.ProfileListItem, error)

	// GetDetail returns the full annotated view including nested posts.
	GetDetail(ctx context.Context, id, viewerProfileID uuid.UUID) (*model.ProfileDetail, error)

	// GetMine returns the /me view for the owning user.
	GetMine(ctx context.Context, userID uuid.UUID) (*model.MyProfile, error)

	Update(ctx context.Context, p *model.Profile) error
	UpdateImagePath(ctx context.Context, id uuid.UUID, imagePath string) error

	// Follow inserts a follow edge; the unique constraint is the backstop
	// for concurrent inserts and maps to ErrAlreadyFollowing.
	Follow(ctx context.Context, followerID, followingID uuid.UUID) error
	Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error

	Followers(ctx context.Context, profileID uuid.UUID) ([]model.FollowRow, error)
	Following(ctx context.Context, profileID uuid.UUID) ([]model.FollowRow, error)
}
