package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"blogapi/models"
	"blogapi/repository"
)

// UserService implements user registration and maintenance.
type UserService struct {
	users repository.UserRepository
}

// NewUserService creates a user service over the given gateway.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Create registers a new user. The email pre-check keeps the error message
// deterministic; the unique index on email is the actual guarantee, so a
// concurrent duplicate that slips past the check still fails on insert.
func (s *UserService) Create(ctx context.Context, payload *models.UserPayload) (*models.User, error) {
	existing, err := s.users.FindByEmail(ctx, payload.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	id, err := uuid.NewUUID()
	if err != nil {
		return nil, fmt.Errorf("generate user id: %w", err)
	}

	user := &models.User{
		UserID:   id.String(),
		FullName: payload.FullName,
		Email:    payload.Email,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		if isDuplicate(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// List returns all users. An empty collection yields an empty slice.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// GetByID returns the user or ErrUserNotFound.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Update replaces fullName and email of an existing user, preserving the id.
// A new email colliding with another user is rejected by the unique index.
func (s *UserService) Update(ctx context.Context, id string, payload *models.UserPayload) (*models.User, error) {
	existing, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrUserNotFound
	}

	user := &models.User{
		UserID:   id,
		FullName: payload.FullName,
		Email:    payload.Email,
	}
	if err := s.users.Replace(ctx, id, user); err != nil {
		if isDuplicate(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Delete removes the user permanently. Posts referencing the user are left
// untouched; there is no cascade.
func (s *UserService) Delete(ctx context.Context, id string) error {
	existing, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrUserNotFound
	}
	return s.users.Delete(ctx, id)
}
