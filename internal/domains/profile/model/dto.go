package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// UpdateProfileRequest updates the caller's own profile. All fields
// optional; only provided ones change.
type UpdateProfileRequest struct {
	Username  *string `json:"username"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Bio       *string `json:"bio"`
}

func (r *UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.FirstName, validation.Length(0, 100)),
		validation.Field(&r.LastName, validation.Length(0, 100)),
		validation.Field(&r.Bio, validation.Length(0, 200)),
	)
}

// ListProfilesFilter holds the exact case-insensitive filters for profile
// listing. Empty fields are not applied; set fields are AND-combined.
type ListProfilesFilter struct {
	Username  string `form:"username"`
	FirstName string `form:"first_name"`
	LastName  string `form:"last_name"`
}

// =====================================================
// RESPONSE VIEWS
// =====================================================
// One named view per endpoint shape; the handler picks the view by route.

// ProfileListItem is the listing row with relationship annotations and
// follow counters.
type ProfileListItem struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	FullName       string    `json:"full_name"`
	ImagePath      string    `json:"image_path"`
	IsFollowedByMe bool      `json:"is_followed_by_me"`
	FollowersCount int       `json:"followers_count"`
	FollowingCount int       `json:"following_count"`
}

// ProfilePost is the compact post row nested in a profile detail.
type ProfilePost struct {
	ID            uuid.UUID `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	Text          string    `json:"text"`
	ImagePath     *string   `json:"image_path"`
	LikesCount    int       `json:"likes_count"`
	CommentsCount int       `json:"comments_count"`
}

// ProfileDetail is the full profile view with counters and nested posts.
type ProfileDetail struct {
	ID             uuid.UUID     `json:"id"`
	Username       string        `json:"username"`
	FirstName      *string       `json:"first_name"`
	LastName       *string       `json:"last_name"`
	Bio            *string       `json:"bio"`
	ImagePath      string        `json:"image_path"`
	IsFollowedByMe bool          `json:"is_followed_by_me"`
	FollowersCount int           `json:"followers_count"`
	FollowingCount int           `json:"following_count"`
	Posts          []ProfilePost `json:"posts"`
}

// MyProfile is the /me view; includes the account email.
type MyProfile struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	UserEmail      string    `json:"user_email"`
	FirstName      *string   `json:"first_name"`
	LastName       *string   `json:"last_name"`
	Bio            *string   `json:"bio"`
	ImagePath      string    `json:"image_path"`
	FollowersCount int       `json:"followers_count"`
	FollowingCount int       `json:"following_count"`
}

// FollowRow is a single follower/following listing entry.
type FollowRow struct {
	ProfileID uuid.UUID `json:"profile_id"`
	Username  string    `json:"username"`
}
