package models

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID        uuid.UUID
	Author    string
	Content   string
	Likes     []string // usernames in like order, each at most once
	CreatedAt time.Time
}
