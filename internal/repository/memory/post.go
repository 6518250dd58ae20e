package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/nkiryanov/postboard/internal/apperrors"
	"github.com/nkiryanov/postboard/internal/models"
)

// Stored post: likes kept twice, as ordered list for rendering and as set for membership check
type postRecord struct {
	post    models.Post
	likedBy map[string]struct{}
}

// Copy of the post detached from the record
func (rec *postRecord) snapshot() models.Post {
	p := rec.post
	p.Likes = slices.Clone(rec.post.Likes)
	return p
}

// PostRepo keeps posts in insertion order
// One mutex guards the list, the index and every post's likes
type PostRepo struct {
	mu    sync.RWMutex
	posts []*postRecord
	index map[uuid.UUID]*postRecord
}

func NewPostRepo() *PostRepo {
	return &PostRepo{index: make(map[uuid.UUID]*postRecord)}
}

func (r *PostRepo) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	rec := &postRecord{
		post:    post,
		likedBy: make(map[string]struct{}, len(post.Likes)),
	}
	rec.post.Likes = make([]string, 0, len(post.Likes))
	for _, username := range post.Likes {
		if _, ok := rec.likedBy[username]; ok {
			continue
		}
		rec.likedBy[username] = struct{}{}
		rec.post.Likes = append(rec.post.Likes, username)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[post.ID]; exists {
		return models.Post{}, apperrors.ErrPostAlreadyExists
	}

	r.posts = append(r.posts, rec)
	r.index[post.ID] = rec

	return rec.snapshot(), nil
}

func (r *PostRepo) LikePost(ctx context.Context, postID uuid.UUID, username string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.index[postID]
	if !ok {
		return 0, apperrors.ErrPostNotFound
	}

	if _, liked := rec.likedBy[username]; liked {
		return len(rec.post.Likes), apperrors.ErrPostAlreadyLiked
	}

	rec.likedBy[username] = struct{}{}
	rec.post.Likes = append(rec.post.Likes, username)

	return len(rec.post.Likes), nil
}

func (r *PostRepo) DeletePost(ctx context.Context, postID uuid.UUID, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.index[postID]
	if !ok {
		return apperrors.ErrPostNotFound
	}

	if rec.post.Author != username {
		return apperrors.ErrPostDeleteForbidden
	}

	delete(r.index, postID)
	r.posts = slices.DeleteFunc(r.posts, func(p *postRecord) bool { return p == rec })

	return nil
}

func (r *PostRepo) ListPosts(ctx context.Context) ([]models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := make([]models.Post, 0, len(r.posts))
	for _, rec := range r.posts {
		posts = append(posts, rec.snapshot())
	}

	return posts, nil
}
