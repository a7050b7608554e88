package services

import (
	"context"
	"fmt"

	"blogapi/models"
	"blogapi/repository"
)

// In-memory gateways used by the service tests. They mimic the store's
// unique indexes so duplicate writes surface repository.ErrDuplicateKey the
// same way the MongoDB implementation does. failWith forces every call to
// fail, for exercising the internal-error paths.
type fakeUserRepo struct {
	users    []models.User
	failWith error
}

func (f *fakeUserRepo) Insert(_ context.Context, user *models.User) error {
	if f.failWith != nil {
		return f.failWith
	}
	for _, u := range f.users {
		if u.Email == user.Email {
			return fmt.Errorf("insert user: %w", repository.ErrDuplicateKey)
		}
	}
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for i := range f.users {
		if f.users[i].UserID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]models.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := []models.User{}
	return append(out, f.users...), nil
}

func (f *fakeUserRepo) Replace(_ context.Context, id string, user *models.User) error {
	if f.failWith != nil {
		return f.failWith
	}
	for _, u := range f.users {
		if u.UserID != id && u.Email == user.Email {
			return fmt.Errorf("replace user: %w", repository.ErrDuplicateKey)
		}
	}
	for i := range f.users {
		if f.users[i].UserID == id {
			f.users[i] = *user
			return nil
		}
	}
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	if f.failWith != nil {
		return f.failWith
	}
	for i := range f.users {
		if f.users[i].UserID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	return int64(len(f.users)), nil
}

type fakePostRepo struct {
	posts    []models.Post
	failWith error
}

func (f *fakePostRepo) Insert(_ context.Context, post *models.Post) error {
	if f.failWith != nil {
		return f.failWith
	}
	for _, p := range f.posts {
		if p.Title == post.Title {
			return fmt.Errorf("insert post: %w", repository.ErrDuplicateKey)
		}
	}
	f.posts = append(f.posts, *post)
	return nil
}

func (f *fakePostRepo) FindByID(_ context.Context, id string) (*models.Post, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for i := range f.posts {
		if f.posts[i].PostID == id {
			p := f.posts[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakePostRepo) FindByTitle(_ context.Context, title string) (*models.Post, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for i := range f.posts {
		if f.posts[i].Title == title {
			p := f.posts[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakePostRepo) List(_ context.Context) ([]models.Post, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := []models.Post{}
	return append(out, f.posts...), nil
}

func (f *fakePostRepo) Replace(_ context.Context, id string, post *models.Post) error {
	if f.failWith != nil {
		return f.failWith
	}
	for _, p := range f.posts {
		if p.PostID != id && p.Title == post.Title {
			return fmt.Errorf("replace post: %w", repository.ErrDuplicateKey)
		}
	}
	for i := range f.posts {
		if f.posts[i].PostID == id {
			f.posts[i] = *post
			return nil
		}
	}
	return nil
}

func (f *fakePostRepo) Delete(_ context.Context, id string) error {
	if f.failWith != nil {
		return f.failWith
	}
	for i := range f.posts {
		if f.posts[i].PostID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakePostRepo) Count(_ context.Context) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	return int64(len(f.posts)), nil
}
