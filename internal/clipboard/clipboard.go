// Package clipboard isolates the platform clipboard behind a small
// capability interface, so the upload pipeline stays platform-agnostic.
// Content is a tagged variant: raster image bytes, a local file
// reference, or empty.
package clipboard

import "errors"

// ErrUnavailable is returned when no system clipboard can be reached
// (headless session, missing display server).
var ErrUnavailable = errors.New("clipboard is not available")

// ContentKind discriminates the Content variant.
type ContentKind int

const (
	// KindEmpty no usable clipboard content
	KindEmpty ContentKind = iota
	// KindImage raster image data, PNG encoded
	KindImage
	// KindFileRef a reference to a local file
	KindFileRef
)

// Content is what a single clipboard probe produced.
type Content struct {
	Kind ContentKind
	// Image holds the PNG-encoded bytes when Kind is KindImage.
	Image []byte
	// Path holds the referenced local path when Kind is KindFileRef.
	Path string
}

// Reader probes the system clipboard, trying the representations in the
// priority order of the upload pipeline: raster image first, then a file
// reference.
type Reader interface {
	Read() (Content, error)
}

// Writer puts plain text onto the system clipboard.
type Writer interface {
	WriteText(text string) error
}
