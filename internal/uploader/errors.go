package uploader

import "errors"

var (
	// ErrNoProfile upload was triggered with no active storage profile;
	// surfaced before any network call.
	ErrNoProfile = errors.New("no storage profile configured")

	// ErrEmptyClipboard the clipboard held neither an image nor a usable
	// file reference.
	ErrEmptyClipboard = errors.New("clipboard empty or not an image")

	// ErrKeyspaceExhausted the collision counter hit its cap without
	// finding a free key.
	ErrKeyspaceExhausted = errors.New("no available key after maximum attempts")
)
