package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapi/models"
)

func TestUserServiceCreateRoundTrip(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.UserPayload{FullName: "Jane Doe", Email: "jane@x.com"})
	require.NoError(t, err)
	require.NotEmpty(t, created.UserID)
	assert.Equal(t, "Jane Doe", created.FullName)
	assert.Equal(t, "jane@x.com", created.Email)

	got, err := svc.GetByID(ctx, created.UserID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestUserServiceCreateDuplicateEmail(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.UserPayload{FullName: "Jane Doe", Email: "dup@x.com"})
	require.NoError(t, err)

	// Same email, different name: still a conflict.
	_, err = svc.Create(ctx, &models.UserPayload{FullName: "Someone Else", Email: "dup@x.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserServiceGetByIDMissing(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})

	_, err := svc.GetByID(context.Background(), "nonexistentid")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserServiceList(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)
	ctx := context.Background()

	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	_, err = svc.Create(ctx, &models.UserPayload{FullName: "Jane Doe", Email: "jane@x.com"})
	require.NoError(t, err)

	users, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "jane@x.com", users[0].Email)
}

func TestUserServiceUpdate(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.UserPayload{FullName: "Jane Doe", Email: "jane@x.com"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.UserID, &models.UserPayload{FullName: "Janet Doe", Email: "janet@x.com"})
	require.NoError(t, err)
	assert.Equal(t, created.UserID, updated.UserID)
	assert.Equal(t, "Janet Doe", updated.FullName)
	assert.Equal(t, "janet@x.com", updated.Email)

	got, err := svc.GetByID(ctx, created.UserID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUserServiceUpdateMissing(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})

	_, err := svc.Update(context.Background(), "nonexistentid", &models.UserPayload{FullName: "Jane Doe", Email: "jane@x.com"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserServiceUpdateDuplicateEmail(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.UserPayload{FullName: "Jane Doe", Email: "jane@x.com"})
	require.NoError(t, err)
	other, err := svc.Create(ctx, &models.UserPayload{FullName: "John Doe", Email: "john@x.com"})
	require.NoError(t, err)

	// The unique index rejects stealing another user's email on update.
	_, err = svc.Update(ctx, other.UserID, &models.UserPayload{FullName: "John Doe", Email: "jane@x.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserServiceDelete(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.UserPayload{FullName: "Jane Doe", Email: "jane@x.com"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.UserID))

	_, err = svc.GetByID(ctx, created.UserID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	// Deleting again reports the absence instead of succeeding silently.
	assert.ErrorIs(t, svc.Delete(ctx, created.UserID), ErrUserNotFound)
}

func TestUserServicePersistenceFailure(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{failWith: assert.AnError})
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.UserPayload{FullName: "Jane Doe", Email: "jane@x.com"})
	assert.ErrorIs(t, err, assert.AnError)

	_, err = svc.List(ctx)
	assert.ErrorIs(t, err, assert.AnError)
}
