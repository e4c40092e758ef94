package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateCommentRequest adds a comment to a post.
type CreateCommentRequest struct {
	Text string `json:"text"`
}

func (r *CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Text, validation.Required, validation.Length(1, MaxCommentTextLength)),
	)
}

// UpdateCommentRequest replaces the comment text.
type UpdateCommentRequest struct {
	Text string `json:"text"`
}

func (r *UpdateCommentRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Text, validation.Required, validation.Length(1, MaxCommentTextLength)),
	)
}

// CommentView is the comment row with author fields joined in.
type CommentView struct {
	ID             uuid.UUID `json:"id"`
	PostID         uuid.UUID `json:"post_id"`
	AuthorID       uuid.UUID `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	AuthorImage    string    `json:"author_image"`
	Text           string    `json:"text"`
	CommentedAt    time.Time `json:"commented_at"`
}
