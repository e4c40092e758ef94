package service

import (
	"context"

	"github.com/google/uuid"

	"social-backend/internal/domains/profile/model"
)

// ProfileService exposes profile reads, self-service updates and the
// follow graph. Callers identify themselves by user ID taken from the
// access token; the service resolves it to a profile where needed.
type ProfileService interface {
	List(ctx context.Context, viewerUserID uuid.UUID, filter model.ListProfilesFilter) ([]model.ProfileListItem, error)
	GetDetail(ctx context.Context, viewerUserID, profileID uuid.UUID) (*model.ProfileDetail, error)

	GetMine(ctx context.Context, userID uuid.UUID) (*model.MyProfile, error)
	UpdateMine(ctx context.Context, userID uuid.UUID, req *model.UpdateProfileRequest) (*model.MyProfile, error)
	DeleteMine(ctx context.Context, userID uuid.UUID) error
	SetImage(ctx context.Context, userID uuid.UUID, filename string, data []byte, contentType string) (string, error)

	Follow(ctx context.Context, followerUserID, followingProfileID uuid.UUID) error
	Unfollow(ctx context.Context, followerUserID, followingProfileID uuid.UUID) error
	Followers(ctx context.Context, userID uuid.UUID) ([]model.FollowRow, error)
	Following(ctx context.Context, userID uuid.UUID) ([]model.FollowRow, error)
}

// IdentityRemover deletes the account that owns a profile. The user
// domain provides the implementation; the profile domain only needs
// the capability, not the user repository.
type IdentityRemover interface {
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}
