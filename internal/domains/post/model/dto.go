package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// CreatePostRequest creates a post. A future ScheduledAt defers
// publishing until that time; a past or absent one publishes now.
type CreatePostRequest struct {
	Text        string     `json:"text"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
}

func (r *CreatePostRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Text, validation.Required, validation.Length(1, MaxPostTextLength)),
	)
}

// UpdatePostRequest replaces the post text. Hashtags are re-derived
// from the new text.
type UpdatePostRequest struct {
	Text string `json:"text"`
}

func (r *UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Text, validation.Required, validation.Length(1, MaxPostTextLength)),
	)
}

// ListPostsFilter narrows post listings. Scope selects a relationship
// cut of the timeline; Hashtags keeps posts carrying at least one of
// the given titles.
type ListPostsFilter struct {
	Scope    ListScope
	Hashtags []string
}

// ListScope enumerates the relationship cuts of the post listing.
type ListScope int

const (
	ScopeAll ListScope = iota
	ScopeMine
	ScopeFeed
	ScopeLiked
)

// =====================================================
// RESPONSE VIEWS
// =====================================================

// PostListItem is the timeline row with author fields and counters
// aggregated in the listing query.
type PostListItem struct {
	ID             uuid.UUID `json:"id"`
	AuthorID       uuid.UUID `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	AuthorImage    string    `json:"author_image"`
	Text           string    `json:"text"`
	ImagePath      *string   `json:"image_path"`
	Hashtags       []string  `json:"hashtags"`
	LikesCount     int       `json:"likes_count"`
	CommentsCount  int       `json:"comments_count"`
	LikedByUser    bool      `json:"liked_by_user"`
	CreatedAt      time.Time `json:"created_at"`
}

// PostDetail is the single-post view: the listing row plus the post's
// comments and likes in full.
type PostDetail struct {
	PostListItem
	Comments []PostComment `json:"comments"`
	Likes    []PostLike    `json:"likes"`
}

// PostComment is a comment row embedded in the detail view.
type PostComment struct {
	ID             uuid.UUID `json:"id"`
	AuthorID       uuid.UUID `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	Text           string    `json:"text"`
	CommentedAt    time.Time `json:"commented_at"`
}

// PostLike identifies a profile that liked the post.
type PostLike struct {
	ProfileID uuid.UUID `json:"profile_id"`
	Username  string    `json:"username"`
}

// ScheduledPostPayload is the queue payload for a deferred post. The
// schedule time itself lives in the task's process-at option, not here.
type ScheduledPostPayload struct {
	AuthorID string `json:"author_id"`
	Text     string `json:"text"`
}
