package handlers

import (
	"context"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/nkiryanov/postboard/internal/handlers/middleware"
	"github.com/nkiryanov/postboard/internal/logger"
	"github.com/nkiryanov/postboard/internal/models"
)

// chain applies middlewares in the given order: m1(m2(...(h)))
func chain(h http.Handler, mds ...func(next http.Handler) http.Handler) http.Handler {
	for i := len(mds) - 1; i >= 0; i-- {
		h = mds[i](h)
	}
	return h
}

func NewRouter(
	authService authService,
	postService postService,
	logger logger.Logger,
	allowedOrigins []string,
) http.Handler {
	withAuth := middleware.AuthMiddleware(authService, logger)

	mux := http.NewServeMux()

	mux.Handle("POST /register", handleRegister(authService, logger))
	mux.Handle("POST /login", handleLogin(authService, logger))

	mux.Handle("GET /posts", handleListPosts(postService, logger))
	mux.Handle("POST /posts", withAuth(handleCreatePost(postService, logger)))
	mux.Handle("POST /posts/{id}", withAuth(handleLikePost(postService, logger)))
	mux.Handle("DELETE /posts/{id}", withAuth(handleDeletePost(postService, logger)))

	handler := chain(mux,
		chimw.RequestID,
		middleware.LoggerMiddleware(logger),
		middleware.Recoverer(logger),
		middleware.CORS(allowedOrigins),
	)

	return handler
}

type authService interface {
	// Register user with username and password
	// Has to return apperrors.ErrUserAlreadyExists if user already exists
	Register(ctx context.Context, username string, password string) (models.User, error)

	// Login user with username and password
	// Has to return apperrors.ErrInvalidCredentials if user not found or password mismatch
	Login(ctx context.Context, username string, password string) (models.IssuedToken, error)

	// Set access token to response
	SetTokenToResponse(w http.ResponseWriter, token models.IssuedToken)

	// Get request and return username it authenticated for or error
	Auth(ctx context.Context, r *http.Request) (string, error)
}

type postService interface {
	CreatePost(ctx context.Context, author string, content string) (models.Post, error)

	// Has to return apperrors.ErrPostNotFound or apperrors.ErrPostAlreadyLiked
	LikePost(ctx context.Context, postID uuid.UUID, username string) (int, error)

	// Has to return apperrors.ErrPostNotFound or apperrors.ErrPostDeleteForbidden
	DeletePost(ctx context.Context, postID uuid.UUID, username string) error

	ListPosts(ctx context.Context) ([]models.Post, error)
}
