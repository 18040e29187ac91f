package domain

import "errors"

// Sentinel errors returned by repositories and services. Lookup misses on
// (chat, handle) pairs are not errors at all; repositories return a nil
// result for those so stale callbacks can be acknowledged silently.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrInvalidHour    = errors.New("hour must be between 0 and 23")
	ErrRankOutOfRange = errors.New("rank must be between 0 and 5")
)
