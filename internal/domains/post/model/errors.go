package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodePostNotFound = "PST001"
	ErrCodeNotAuthor    = "PST002"
	ErrCodeAlreadyLiked = "PST003"
	ErrCodeNotLiked     = "PST004"
	ErrCodeTextTooLong  = "PST005"
)

// Errors
var (
	ErrPostNotFound = errors.New("post not found")
	ErrNotAuthor    = errors.New("only the author can modify this post")
	ErrAlreadyLiked = errors.New("post already liked")
	ErrNotLiked     = errors.New("post not liked")
	ErrTextTooLong  = errors.New("post text too long")
)

// PostError custom error type
type PostError struct {
	Code    string
	Message string
	Err     error
}

func (e *PostError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *PostError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewPostNotFoundError() *PostError {
	return &PostError{
		Code:    ErrCodePostNotFound,
		Message: "Post not found",
		Err:     ErrPostNotFound,
	}
}

func NewNotAuthorError() *PostError {
	return &PostError{
		Code:    ErrCodeNotAuthor,
		Message: "Only the author can modify this post",
		Err:     ErrNotAuthor,
	}
}

func NewAlreadyLikedError() *PostError {
	return &PostError{
		Code:    ErrCodeAlreadyLiked,
		Message: "You already liked this post",
		Err:     ErrAlreadyLiked,
	}
}

func NewNotLikedError() *PostError {
	return &PostError{
		Code:    ErrCodeNotLiked,
		Message: "You have not liked this post",
		Err:     ErrNotLiked,
	}
}

func NewTextTooLongError() *PostError {
	return &PostError{
		Code:    ErrCodeTextTooLong,
		Message: "Post text exceeds the allowed length",
		Err:     ErrTextTooLong,
	}
}
