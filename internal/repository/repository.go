package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/nkiryanov/postboard/internal/models"
)

type Storage interface {
	User() UserRepo
	Post() PostRepo
}

// User repository interface
type UserRepo interface {
	// Create user
	// If user with username exists already has to return error apperrors.ErrUserAlreadyExists
	CreateUser(ctx context.Context, username string, password string) (models.User, error)

	// Return user only if both username and password match
	// Otherwise must return apperrors.ErrInvalidCredentials
	VerifyCredentials(ctx context.Context, username string, password string) (models.User, error)
}

// Post repository interface
// Returned posts are copies: changing them never affects stored data
type PostRepo interface {
	// Append post to the end of the store
	// If post with the same ID is stored already must return apperrors.ErrPostAlreadyExists
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)

	// Add username to post likes and return new likes count
	// If post not found must return apperrors.ErrPostNotFound
	// If username already liked the post must return apperrors.ErrPostAlreadyLiked
	LikePost(ctx context.Context, postID uuid.UUID, username string) (likes int, err error)

	// Remove post permanently
	// If post not found must return apperrors.ErrPostNotFound
	// If username is not the post author must return apperrors.ErrPostDeleteForbidden
	DeletePost(ctx context.Context, postID uuid.UUID, username string) error

	// Return all posts, oldest first
	ListPosts(ctx context.Context) ([]models.Post, error)
}
