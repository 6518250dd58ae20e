package apperrors

import (
	"errors"
)

var (
	ErrCredentialsRequired = errors.New("username and password required")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	ErrTokenMissing = errors.New("token required")
	ErrTokenInvalid = errors.New("token is invalid")

	ErrContentRequired     = errors.New("content is required")
	ErrPostAlreadyExists   = errors.New("post with this id already exists")
	ErrPostNotFound        = errors.New("post not found")
	ErrPostAlreadyLiked    = errors.New("post already liked")
	ErrPostDeleteForbidden = errors.New("only author may delete the post")
)
