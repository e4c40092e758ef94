package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeCommentNotFound = "CMT001"
	ErrCodeNotAuthor       = "CMT002"
)

// Errors
var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotAuthor       = errors.New("only the author can modify this comment")
)

// CommentError custom error type
type CommentError struct {
	Code    string
	Message string
	Err     error
}

func (e *CommentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CommentError) Unwrap() error {
	return e.Err
}

func NewCommentNotFoundError() *CommentError {
	return &CommentError{
		Code:    ErrCodeCommentNotFound,
		Message: "Comment not found",
		Err:     ErrCommentNotFound,
	}
}

func NewNotAuthorError() *CommentError {
	return &CommentError{
		Code:    ErrCodeNotAuthor,
		Message: "Only the author can modify this comment",
		Err:     ErrNotAuthor,
	}
}
