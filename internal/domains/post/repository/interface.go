package repository

import (
	"context"

	"github.com/google/uuid"

	"social-backend/internal/domains/post/model"
)

// PostRepository persists posts, their hashtag attachments and likes.
// Listing methods aggregate counters and flags in a single query each.
type PostRepository interface {
	// CreateWithHashtags inserts the post and attaches the given hashtag
	// titles (get-or-create) in one transaction.
	CreateWithHashtags(ctx context.Context, post *model.Post, titles []string) error

	// UpdateTextWithHashtags replaces the text and the full hashtag
	// attachment set in one transaction.
	UpdateTextWithHashtags(ctx context.Context, postID uuid.UUID, text string, titles []string) error

	GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	GetDetail(ctx context.Context, id, viewerProfileID uuid.UUID) (*model.PostDetail, error)
	List(ctx context.Context, filter model.ListPostsFilter, viewerProfileID uuid.UUID) ([]model.PostListItem, error)

	UpdateImagePath(ctx context.Context, id uuid.UUID, imagePath string) error
	Delete(ctx context.Context, id uuid.UUID) error

	Like(ctx context.Context, postID, profileID uuid.UUID) error
	Unlike(ctx context.Context, postID, profileID uuid.UUID) error
}
