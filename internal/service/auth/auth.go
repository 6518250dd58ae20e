package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/nkiryanov/postboard/internal/apperrors"
	"github.com/nkiryanov/postboard/internal/models"
	"github.com/nkiryanov/postboard/internal/repository"
)

const (
	defaultAccessHeaderName = "Authorization"
	defaultAccessAuthScheme = "Bearer"
)

type TokenManager interface {
	Issue(username string) (models.IssuedToken, error)

	// Has to return apperrors.ErrTokenMissing for empty token
	// and apperrors.ErrTokenInvalid for any token that can't be trusted
	Parse(access string) (username string, err error)
}

type Config struct {
	// Header to read access token from and write it to
	AccessHeaderName string

	// Auth scheme that prefixes the token in header
	AccessAuthScheme string
}

// Auth service
type AuthService struct {
	accessHeaderName string
	accessAuthScheme string

	tokenManager TokenManager
	userRepo     repository.UserRepo
}

func NewService(cfg Config, tokenManager TokenManager, userRepo repository.UserRepo) (*AuthService, error) {
	if cfg.AccessHeaderName == "" {
		cfg.AccessHeaderName = defaultAccessHeaderName
	}
	if cfg.AccessAuthScheme == "" {
		cfg.AccessAuthScheme = defaultAccessAuthScheme
	}
	if strings.ContainsAny(cfg.AccessAuthScheme, " \t") {
		return nil, errors.New("auth scheme must be a single word")
	}

	return &AuthService{
		accessHeaderName: cfg.AccessHeaderName,
		accessAuthScheme: cfg.AccessAuthScheme,
		tokenManager:     tokenManager,
		userRepo:         userRepo,
	}, nil
}

// Register new user
// Return apperrors.ErrCredentialsRequired if username or password is empty
// Return apperrors.ErrUserAlreadyExists if username is taken
func (s *AuthService) Register(ctx context.Context, username string, password string) (models.User, error) {
	if username == "" || password == "" {
		return models.User{}, apperrors.ErrCredentialsRequired
	}

	user, err := s.userRepo.CreateUser(ctx, username, password)
	if err != nil {
		return user, fmt.Errorf("can't create user. Err: %w", err)
	}

	return user, nil
}

// Login existing user and issue access token
// Return apperrors.ErrInvalidCredentials if user not found or password not match
func (s *AuthService) Login(ctx context.Context, username string, password string) (models.IssuedToken, error) {
	if username == "" || password == "" {
		return models.IssuedToken{}, apperrors.ErrCredentialsRequired
	}

	user, err := s.userRepo.VerifyCredentials(ctx, username, password)
	if err != nil {
		return models.IssuedToken{}, err
	}

	token, err := s.tokenManager.Issue(user.Username)
	if err != nil {
		return token, fmt.Errorf("token could not generated, sorry. %w", err)
	}

	return token, nil
}

// Write access token to response header
func (s *AuthService) SetTokenToResponse(w http.ResponseWriter, token models.IssuedToken) {
	w.Header().Set(s.accessHeaderName, s.accessAuthScheme+" "+token.Value)
}

// Write access token to request header, the way clients do
func (s *AuthService) SetTokenToRequest(r *http.Request, token models.IssuedToken) {
	r.Header.Set(s.accessHeaderName, s.accessAuthScheme+" "+token.Value)
}

// Read access token from request and return the username it was issued for
// Header without token or with other scheme is treated as missing token
func (s *AuthService) Auth(ctx context.Context, r *http.Request) (string, error) {
	access := s.readAccess(r)

	username, err := s.tokenManager.Parse(access)
	if err != nil {
		return "", err
	}

	return username, nil
}

func (s *AuthService) readAccess(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get(s.accessHeaderName))

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, s.accessAuthScheme) {
		return ""
	}

	return strings.TrimSpace(token)
}
