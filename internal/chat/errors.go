package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrEmptyMessage          = errors.New("message text is empty")
	ErrCredentialAcquisition = errors.New("failed to acquire credential")
)
