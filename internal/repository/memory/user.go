package memory

import (
	"context"
	"crypto/subtle"
	"sync"

	"github.com/nkiryanov/postboard/internal/apperrors"
	"github.com/nkiryanov/postboard/internal/models"
)

type UserRepo struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{users: make(map[string]models.User)}
}

func (r *UserRepo) CreateUser(ctx context.Context, username string, password string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[username]; ok {
		return models.User{}, apperrors.ErrUserAlreadyExists
	}

	user := models.User{Username: username, Password: password}
	r.users[username] = user

	return user, nil
}

func (r *UserRepo) VerifyCredentials(ctx context.Context, username string, password string) (models.User, error) {
	r.mu.RLock()
	user, ok := r.users[username]
	r.mu.RUnlock()

	if !ok || subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		return models.User{}, apperrors.ErrInvalidCredentials
	}

	return user, nil
}
