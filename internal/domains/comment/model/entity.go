package model

import (
	"time"

	"github.com/google/uuid"
)

// MaxCommentTextLength caps the body of a comment.
const MaxCommentTextLength = 500

// Comment belongs to exactly one post. AuthorID references a profile.
type Comment struct {
	ID          uuid.UUID `json:"id"`
	PostID      uuid.UUID `json:"post_id"`
	AuthorID    uuid.UUID `json:"author_id"`
	Text        string    `json:"text"`
	CommentedAt time.Time `json:"commented_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
