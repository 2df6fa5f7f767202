package task

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// TempFileCleanupTask removes orphaned clipboard snapshots. Snapshots
// are deleted right after an upload attempt; files that survive belong
// to attempts cut short by a crash or kill.
type TempFileCleanupTask struct {
	tempDir   string
	retention time.Duration
	spec      string
	logger    *zap.Logger
}

// NewTempFileCleanupTask creates the sweeper for a temp directory.
func NewTempFileCleanupTask(tempDir string, retention time.Duration, spec string, logger *zap.Logger) *TempFileCleanupTask {
	return &TempFileCleanupTask{
		tempDir:   tempDir,
		retention: retention,
		spec:      spec,
		logger:    logger,
	}
}

func (t *TempFileCleanupTask) Name() string { return "TempFileCleanupTask" }

func (t *TempFileCleanupTask) Spec() string { return t.spec }

func (t *TempFileCleanupTask) IsStartupRun() bool { return true }

// Run deletes clipboard snapshots older than the retention window. Only
// files matching the snapshot naming pattern are touched; anything else
// in the directory is left alone.
func (t *TempFileCleanupTask) Run(ctx context.Context) error {
	entries, err := os.ReadDir(t.tempDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	cutoff := time.Now().Add(-t.retention)
	removed := 0

	for _, entry := range entries {
		if entry.IsDir() || !isSnapshotName(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		full := filepath.Join(t.tempDir, entry.Name())
		if err := os.Remove(full); err != nil {
			t.logger.Warn("orphaned snapshot remove failed",
				zap.String("path", full),
				zap.Error(err))
			continue
		}
		removed++
	}

	if removed > 0 {
		t.logger.Info("orphaned snapshots removed",
			zap.String("path", t.tempDir),
			zap.Int("count", removed))
	}
	return nil
}

func isSnapshotName(name string) bool {
	return strings.HasPrefix(name, "picup_clip_") && strings.HasSuffix(name, ".png")
}
