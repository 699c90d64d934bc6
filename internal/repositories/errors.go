package repositories

import "errors"

var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrSelfFollow is returned when the actor and target of a follow
	// operation are the same user.
	ErrSelfFollow = errors.New("cannot follow yourself")
)
