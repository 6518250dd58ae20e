package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/nkiryanov/postboard/internal/apperrors"
	"github.com/nkiryanov/postboard/internal/handlers/render"
	"github.com/nkiryanov/postboard/internal/handlers/userctx"
	"github.com/nkiryanov/postboard/internal/logger"
	"github.com/nkiryanov/postboard/internal/models"
)

type PostResponse struct {
	ID        uuid.UUID `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}

func newPostResponse(p models.Post) PostResponse {
	likes := p.Likes
	if likes == nil {
		likes = []string{}
	}

	return PostResponse{
		ID:        p.ID,
		Author:    p.Author,
		Content:   p.Content,
		Likes:     likes,
		CreatedAt: p.CreatedAt,
	}
}

// Path id that is not a uuid can't match any post
func postIDFromPath(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	return id, err == nil
}

func handleCreatePost(s postService, l logger.Logger) http.Handler {
	type request struct {
		Content string `json:"content" validate:"required"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, ok := userctx.FromContext(r.Context())
		if !ok {
			l.Error("No user in context for authenticated route", "uri", r.RequestURI)
			render.InternalError(w)
			return
		}

		data, err := render.BindAndValidate[request](w, r)
		if err != nil {
			l.Warn("Post rejected", "username", username, "error", err)
			return
		}

		post, err := s.CreatePost(r.Context(), username, data.Content)
		switch {
		case err == nil:
		case errors.Is(err, apperrors.ErrContentRequired):
			l.Warn("Post rejected", "username", username, "error", err)
			render.ServiceError(w, "Content is required", http.StatusBadRequest)
			return
		default:
			l.Error("Failed to create post", "username", username, "error", err)
			render.InternalError(w)
			return
		}

		l.Info("Post created", "username", username, "post_id", post.ID)
		render.JSONWithStatus(w, newPostResponse(post), http.StatusCreated)
	})
}

func handleLikePost(s postService, l logger.Logger) http.Handler {
	type response struct {
		Message string `json:"message"`
		Likes   int    `json:"likes"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, ok := userctx.FromContext(r.Context())
		if !ok {
			l.Error("No user in context for authenticated route", "uri", r.RequestURI)
			render.InternalError(w)
			return
		}

		postID, ok := postIDFromPath(r)
		if !ok {
			l.Warn("Post not found", "username", username, "post_id", r.PathValue("id"))
			render.ServiceError(w, "Post not found", http.StatusNotFound)
			return
		}

		likes, err := s.LikePost(r.Context(), postID, username)
		switch {
		case err == nil:
		case errors.Is(err, apperrors.ErrPostNotFound):
			l.Warn("Post not found", "username", username, "post_id", postID)
			render.ServiceError(w, "Post not found", http.StatusNotFound)
			return
		case errors.Is(err, apperrors.ErrPostAlreadyLiked):
			l.Warn("Post already liked", "username", username, "post_id", postID)
			render.ServiceError(w, "Post already liked", http.StatusBadRequest)
			return
		default:
			l.Error("Failed to like post", "username", username, "post_id", postID, "error", err)
			render.InternalError(w)
			return
		}

		l.Info("Post liked", "username", username, "post_id", postID, "likes", likes)
		render.JSON(w, response{Message: "Post liked", Likes: likes})
	})
}

func handleDeletePost(s postService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, ok := userctx.FromContext(r.Context())
		if !ok {
			l.Error("No user in context for authenticated route", "uri", r.RequestURI)
			render.InternalError(w)
			return
		}

		postID, ok := postIDFromPath(r)
		if !ok {
			l.Warn("Post not found", "username", username, "post_id", r.PathValue("id"))
			render.ServiceError(w, "Post not found", http.StatusNotFound)
			return
		}

		err := s.DeletePost(r.Context(), postID, username)
		switch {
		case err == nil:
		case errors.Is(err, apperrors.ErrPostNotFound):
			l.Warn("Post not found", "username", username, "post_id", postID)
			render.ServiceError(w, "Post not found", http.StatusNotFound)
			return
		case errors.Is(err, apperrors.ErrPostDeleteForbidden):
			l.Warn("Not the author of the post", "username", username, "post_id", postID)
			render.ServiceError(w, "Unauthorized to delete this post", http.StatusForbidden)
			return
		default:
			l.Error("Failed to delete post", "username", username, "post_id", postID, "error", err)
			render.InternalError(w)
			return
		}

		l.Info("Post deleted", "username", username, "post_id", postID)
		render.JSON(w, render.MessageResponse{Message: "Post deleted successfully"})
	})
}

func handleListPosts(s postService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		posts, err := s.ListPosts(r.Context())
		if err != nil {
			l.Error("Failed to fetch posts", "error", err)
			render.InternalError(w)
			return
		}

		res := make([]PostResponse, 0, len(posts))
		for _, p := range posts {
			res = append(res, newPostResponse(p))
		}

		l.Info("Posts fetched", "count", len(res))
		render.JSON(w, res)
	})
}
