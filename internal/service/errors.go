package service

import "errors"

// Domain errors mapped onto wire codes by the handler layer.
var (
	// ErrBoardNotFound is returned when a board id does not exist
	ErrBoardNotFound = errors.New("board not found")

	// ErrUserNotFound is returned when a user name does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrNameConflict is returned when an update would collide with a
	// different board already owned by the target user under that name
	ErrNameConflict = errors.New("unique constraint failed")
)
