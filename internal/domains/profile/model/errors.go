package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeProfileNotFound  = "PRF001"
	ErrCodeSelfFollow       = "PRF002"
	ErrCodeAlreadyFollowing = "PRF003"
	ErrCodeNotFollowing     = "PRF004"
	ErrCodeUsernameTaken    = "PRF005"
)

// Errors
var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrSelfFollow       = errors.New("cannot follow yourself")
	ErrAlreadyFollowing = errors.New("already following this profile")
	ErrNotFollowing     = errors.New("not following this profile")
	ErrUsernameTaken    = errors.New("username already taken")
)

// ProfileError custom error type
type ProfileError struct {
	Code    string
	Message string
	Err     error
}

func (e *ProfileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ProfileError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewProfileNotFoundError() *ProfileError {
	return &ProfileError{
		Code:    ErrCodeProfileNotFound,
		Message: "Profile not found",
		Err:     ErrProfileNotFound,
	}
}

func NewSelfFollowError() *ProfileError {
	return &ProfileError{
		Code:    ErrCodeSelfFollow,
		Message: "You cannot follow yourself",
		Err:     ErrSelfFollow,
	}
}

func NewAlreadyFollowingError() *ProfileError {
	return &ProfileError{
		Code:    ErrCodeAlreadyFollowing,
		Message: "You are already following this user",
		Err:     ErrAlreadyFollowing,
	}
}

func NewNotFollowingError() *ProfileError {
	return &ProfileError{
		Code:    ErrCodeNotFollowing,
		Message: "You are not following this user",
		Err:     ErrNotFollowing,
	}
}

func NewUsernameTakenError() *ProfileError {
	return &ProfileError{
		Code:    ErrCodeUsernameTaken,
		Message: "Username already taken",
		Err:     ErrUsernameTaken,
	}
}
