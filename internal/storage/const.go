package storage

import (
	"errors"
)

const (
	// DefaultRecentActionsLimit is the number of actions returned by the admin listing.
	DefaultRecentActionsLimit = 100
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
)
