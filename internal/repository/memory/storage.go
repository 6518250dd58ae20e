package memory

import (
	"github.com/nkiryanov/postboard/internal/repository"
)

var _ repository.Storage = (*Storage)(nil)

// Storage keeps all data in process memory
// Data lives as long as the Storage value does
type Storage struct {
	users *UserRepo
	posts *PostRepo
}

func NewStorage() *Storage {
	return &Storage{
		users: NewUserRepo(),
		posts: NewPostRepo(),
	}
}

func (s *Storage) User() repository.UserRepo {
	return s.users
}

func (s *Storage) Post() repository.PostRepo {
	return s.posts
}
