// Package services implements the user and post operations on top of the
// persistence gateway. Operations return sentinel error kinds; controllers
// translate them to HTTP status codes at the boundary.
package services

import (
	"errors"

	"blogapi/repository"
)

var (
	// ErrUserNotFound reports a lookup for an absent user.
	ErrUserNotFound = errors.New("user not found")
	// ErrPostNotFound reports a lookup for an absent post.
	ErrPostNotFound = errors.New("post not found")
	// ErrEmailTaken reports a user create or update that would duplicate an email.
	ErrEmailTaken = errors.New("user already exists")
	// ErrTitleTaken reports a post create or update that would duplicate a title.
	ErrTitleTaken = errors.New("post already exists")
	// ErrAuthorMissing reports a post whose user_id does not resolve to an
	// existing user. Distinct from ErrPostNotFound: the post resource may be
	// fine while its reference is not.
	ErrAuthorMissing = errors.New("referenced user does not exist")
)

func isDuplicate(err error) bool {
	return errors.Is(err, repository.ErrDuplicateKey)
}
