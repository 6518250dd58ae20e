package post

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nkiryanov/postboard/internal/apperrors"
	"github.com/nkiryanov/postboard/internal/models"
	"github.com/nkiryanov/postboard/internal/repository"
)

type Option func(*PostService)

// Use custom post ID generator
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(s *PostService) { s.newID = newID }
}

// Use custom clock to set post creation time
func WithClock(now func() time.Time) Option {
	return func(s *PostService) { s.now = now }
}

type PostService struct {
	// Repository to access posts
	postRepo repository.PostRepo

	newID func() uuid.UUID
	now   func() time.Time
}

func NewService(postRepo repository.PostRepo, opts ...Option) *PostService {
	s := &PostService{
		postRepo: postRepo,
		newID:    uuid.New,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Create post authored by the user
// Return apperrors.ErrContentRequired if content is empty
func (s *PostService) CreatePost(ctx context.Context, author string, content string) (models.Post, error) {
	if content == "" {
		return models.Post{}, apperrors.ErrContentRequired
	}

	post, err := s.postRepo.CreatePost(ctx, models.Post{
		ID:        s.newID(),
		Author:    author,
		Content:   content,
		Likes:     []string{},
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return post, fmt.Errorf("can't create post. Err: %w", err)
	}

	return post, nil
}

// Like post once per user, return likes count
// Second like by the same user returns apperrors.ErrPostAlreadyLiked and leaves count unchanged
func (s *PostService) LikePost(ctx context.Context, postID uuid.UUID, username string) (int, error) {
	return s.postRepo.LikePost(ctx, postID, username)
}

// Delete post, allowed for author only
func (s *PostService) DeletePost(ctx context.Context, postID uuid.UUID, username string) error {
	return s.postRepo.DeletePost(ctx, postID, username)
}

func (s *PostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.ListPosts(ctx)
}
