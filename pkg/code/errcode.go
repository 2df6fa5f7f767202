package code

// Numeric error codes carried on the API response envelope. 0 means
// success; 1xxxx are protocol-level failures, 2xxxx are upload pipeline
// failures.
const (
	Success = 0

	ErrInvalidParams  = 10001
	ErrServerInternal = 10002
	ErrNotFoundAPI    = 10003

	ErrNoProfile            = 20001
	ErrClipboardEmpty       = 20002
	ErrClipboardUnavailable = 20003
	ErrUploadFailed         = 20004
)
