package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"social-backend/internal/domains/post/model"
)

// CreatePostResult reports what happened to a create request: either the
// post was published now, or it was accepted for later publishing.
type CreatePostResult struct {
	Post        *model.PostDetail `json:"post,omitempty"`
	ScheduledAt *time.Time        `json:"scheduled_at,omitempty"`
}

// Scheduled reports whether the post was deferred instead of published.
func (r *CreatePostResult) Scheduled() bool {
	return r.ScheduledAt != nil
}

// PostService covers the post lifecycle, timeline listings and likes.
type PostService interface {
	Create(ctx context.Context, userID uuid.UUID, req *model.CreatePostRequest) (*CreatePostResult, error)
	CreateForAuthor(ctx context.Context, authorProfileID uuid.UUID, text string) (*model.Post, error)

	GetDetail(ctx context.Context, userID, postID uuid.UUID) (*model.PostDetail, error)
	List(ctx context.Context, userID uuid.UUID, filter model.ListPostsFilter) ([]model.PostListItem, error)

	Update(ctx context.Context, userID, postID uuid.UUID, req *model.UpdatePostRequest) (*model.PostDetail, error)
	Delete(ctx context.Context, userID, postID uuid.UUID) error
	SetImage(ctx context.Context, userID, postID uuid.UUID, filename string, data []byte, contentType string) (string, error)

	Like(ctx context.Context, userID, postID uuid.UUID) error
	Unlike(ctx context.Context, userID, postID uuid.UUID) error
}

// ScheduledPostEnqueuer hands a deferred post to the task queue for
// publishing at the given time.
type ScheduledPostEnqueuer interface {
	EnqueueScheduledPost(ctx context.Context, payload model.ScheduledPostPayload, at time.Time) error
}
