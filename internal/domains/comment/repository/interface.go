package repository

import (
	"context"

	"github.com/google/uuid"

	"social-backend/internal/domains/comment/model"
)

// CommentRepository persists comments. Listing joins author fields in
// a single query, newest first.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]model.CommentView, error)
	UpdateText(ctx context.Context, id uuid.UUID, text string) error
	Delete(ctx context.Context, id uuid.UUID) error

	// PostExists reports whether the post a comment targets exists.
	PostExists(ctx context.Context, postID uuid.UUID) (bool, error)
}
