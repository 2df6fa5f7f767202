package uploader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/picup-app/picup/internal/clipboard"
)

type fakeReader struct {
	content clipboard.Content
	err     error
}

func (f *fakeReader) Read() (clipboard.Content, error) {
	return f.content, f.err
}

func TestFromClipboardImage(t *testing.T) {
	tempDir := t.TempDir()
	reader := &fakeReader{content: clipboard.Content{Kind: clipboard.KindImage, Image: []byte{0x89, 0x50, 0x4e, 0x47}}}
	ex := NewExtractor(reader, tempDir, nil)

	src, err := ex.FromClipboard()
	if err != nil {
		t.Fatalf("FromClipboard failed: %v", err)
	}

	if !src.Ephemeral {
		t.Errorf("materialized snapshot must be ephemeral")
	}
	if !strings.HasPrefix(src.Name, "picup_clip_") || !strings.HasSuffix(src.Name, ".png") {
		t.Errorf("snapshot name pattern mismatch: %q", src.Name)
	}

	data, err := os.ReadFile(src.Path)
	if err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}
	if len(data) != 4 {
		t.Errorf("snapshot bytes mismatch: %d", len(data))
	}
}

func TestFromClipboardFileRef(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "photo.JPG")
	if err := os.WriteFile(imgPath, []byte("jpeg bytes"), 0600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	reader := &fakeReader{content: clipboard.Content{Kind: clipboard.KindFileRef, Path: imgPath}}
	ex := NewExtractor(reader, t.TempDir(), nil)

	src, err := ex.FromClipboard()
	if err != nil {
		t.Fatalf("FromClipboard failed: %v", err)
	}
	if src.Ephemeral {
		t.Errorf("referenced user file must not be ephemeral")
	}
	if src.Path != imgPath || src.Name != "photo.JPG" {
		t.Errorf("source mismatch: %+v", src)
	}
}

func TestFromClipboardImageWinsOverFileRef(t *testing.T) {
	// a reader that reports an image also carrying a path would still
	// materialize the image; KindImage is checked first
	reader := &fakeReader{content: clipboard.Content{Kind: clipboard.KindImage, Image: []byte{1}, Path: "/tmp/ignored.png"}}
	ex := NewExtractor(reader, t.TempDir(), nil)

	src, err := ex.FromClipboard()
	if err != nil {
		t.Fatalf("FromClipboard failed: %v", err)
	}
	if !src.Ephemeral {
		t.Errorf("image content must be materialized, not referenced")
	}
}

func TestFromClipboardRejections(t *testing.T) {
	dir := t.TempDir()
	textPath := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(textPath, []byte("text"), 0600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	tests := []struct {
		name    string
		content clipboard.Content
	}{
		{name: "empty clipboard", content: clipboard.Content{Kind: clipboard.KindEmpty}},
		{name: "non-image extension", content: clipboard.Content{Kind: clipboard.KindFileRef, Path: textPath}},
		{name: "missing file", content: clipboard.Content{Kind: clipboard.KindFileRef, Path: filepath.Join(dir, "gone.png")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := NewExtractor(&fakeReader{content: tt.content}, t.TempDir(), nil)
			_, err := ex.FromClipboard()
			if !errors.Is(err, ErrEmptyClipboard) {
				t.Fatalf("expected ErrEmptyClipboard, got %v", err)
			}
		})
	}
}

func TestFromClipboardReaderError(t *testing.T) {
	reader := &fakeReader{err: clipboard.ErrUnavailable}
	ex := NewExtractor(reader, t.TempDir(), nil)

	_, err := ex.FromClipboard()
	if !errors.Is(err, clipboard.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
