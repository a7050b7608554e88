// Package repository is the persistence gateway over the MongoDB collections.
// It exposes narrow interfaces so the service layer receives an injected
// handle instead of touching a process-wide client.
package repository

import (
	"context"
	"errors"

	"blogapi/models"
)

// Collection names used by the gateway and by the index bootstrap.
const (
	UsersCollection = "users"
	PostsCollection = "posts"
)

// ErrDuplicateKey reports a write rejected by a unique index. The service
// layer maps it to its conflict error kinds.
var ErrDuplicateKey = errors.New("duplicate key")

// UserRepository accesses the users collection. Find methods return
// (nil, nil) when no document matches, so callers can tell absence apart
// from a store failure.
type UserRepository interface {
	Insert(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Replace(ctx context.Context, id string, user *models.User) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// PostRepository accesses the posts collection with the same conventions.
type PostRepository interface {
	Insert(ctx context.Context, post *models.Post) error
	FindByID(ctx context.Context, id string) (*models.Post, error)
	FindByTitle(ctx context.Context, title string) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	Replace(ctx context.Context, id string, post *models.Post) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
