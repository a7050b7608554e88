package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"blogapi/models"
	"blogapi/repository"
)

// PostService implements post CRUD with referential checks against users.
type PostService struct {
	posts repository.PostRepository
	users repository.UserRepository
}

// NewPostService creates a post service over the given gateways.
func NewPostService(posts repository.PostRepository, users repository.UserRepository) *PostService {
	return &PostService{posts: posts, users: users}
}

// Create stores a new post after verifying the author exists and the title
// is free. The author check holds at write time only; a later user delete
// does not invalidate the post.
func (s *PostService) Create(ctx context.Context, payload *models.PostPayload) (*models.Post, error) {
	author, err := s.users.FindByID(ctx, payload.UserID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrAuthorMissing
	}

	existing, err := s.posts.FindByTitle(ctx, payload.Title)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrTitleTaken
	}

	id, err := uuid.NewUUID()
	if err != nil {
		return nil, fmt.Errorf("generate post id: %w", err)
	}

	post := &models.Post{
		PostID:  id.String(),
		Title:   payload.Title,
		Content: payload.Content,
		UserID:  payload.UserID,
	}
	if err := s.posts.Insert(ctx, post); err != nil {
		if isDuplicate(err) {
			return nil, ErrTitleTaken
		}
		return nil, err
	}
	return post, nil
}

// List returns all posts. An empty collection yields an empty slice.
func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	return s.posts.List(ctx)
}

// GetByID returns the post or ErrPostNotFound.
func (s *PostService) GetByID(ctx context.Context, id string) (*models.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// Update replaces title, content and author of an existing post. The
// (possibly new) author must exist; a title colliding with another post is
// rejected by the unique index.
func (s *PostService) Update(ctx context.Context, id string, payload *models.PostPayload) (*models.Post, error) {
	existing, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrPostNotFound
	}

	author, err := s.users.FindByID(ctx, payload.UserID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrAuthorMissing
	}

	post := &models.Post{
		PostID:  id,
		Title:   payload.Title,
		Content: payload.Content,
		UserID:  payload.UserID,
	}
	if err := s.posts.Replace(ctx, id, post); err != nil {
		if isDuplicate(err) {
			return nil, ErrTitleTaken
		}
		return nil, err
	}
	return post, nil
}

// Delete removes the post permanently.
func (s *PostService) Delete(ctx context.Context, id string) error {
	existing, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPostNotFound
	}
	return s.posts.Delete(ctx, id)
}
