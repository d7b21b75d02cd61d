package types

import "errors"

// Sentinel errors shared by the repository and service layers. Callers match
// them with errors.Is; lower layers wrap them with fmt.Errorf("...: %w", err)
// so the underlying storage error is never lost.
var (
	// ErrInvalidInput signals malformed or missing required input. Never retried.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound signals a referenced id that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateID signals an insert with an id that already exists.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrUploadFailed signals a blob store failure. A recipe write that depends
	// on the upload must fail as a whole rather than commit a stale image URL.
	ErrUploadFailed = errors.New("image upload failed")

	// ErrAlreadyReviewed signals a second review by the same user for the same
	// recipe.
	ErrAlreadyReviewed = errors.New("recipe already reviewed by user")
)
