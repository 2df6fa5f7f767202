package task

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestTempFileCleanup(t *testing.T) {
	dir := t.TempDir()

	old := filepath.Join(dir, "picup_clip_1000.png")
	fresh := filepath.Join(dir, "picup_clip_2000.png")
	foreign := filepath.Join(dir, "keep.txt")

	for _, p := range []string{old, fresh, foreign} {
		if err := os.WriteFile(p, []byte("x"), 0600); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
	}

	stale := time.Now().Add(-48 * time.Hour)
	if err := os.Chtimes(old, stale, stale); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	if err := os.Chtimes(foreign, stale, stale); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	sweeper := NewTempFileCleanupTask(dir, 24*time.Hour, "@hourly", zap.NewNop())
	if err := sweeper.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Errorf("stale snapshot should be removed")
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Errorf("fresh snapshot should survive: %v", err)
	}
	if _, err := os.Stat(foreign); err != nil {
		t.Errorf("non-snapshot file should survive: %v", err)
	}
}

func TestTempFileCleanupMissingDir(t *testing.T) {
	sweeper := NewTempFileCleanupTask(filepath.Join(t.TempDir(), "absent"), time.Hour, "@hourly", zap.NewNop())
	if err := sweeper.Run(context.Background()); err != nil {
		t.Fatalf("missing dir must not be an error: %v", err)
	}
}
