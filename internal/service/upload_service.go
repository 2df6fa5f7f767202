package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/picup-app/picup/internal/clipboard"
	"github.com/picup-app/picup/internal/settings"
	"github.com/picup-app/picup/internal/uploader"
	"github.com/picup-app/picup/pkg/code"
	"github.com/picup-app/picup/pkg/logger"
)

// UploadFromClipboard grabs whatever image the clipboard holds and runs the
// full upload pipeline on it. The returned record is nil when nothing was
// uploaded; in that case a notification has already been pushed to shells.
func (s *Service) UploadFromClipboard(ctx context.Context) (*settings.UploadRecord, error) {
	src, err := s.extractor.FromClipboard()
	if err != nil {
		switch {
		case errors.Is(err, uploader.ErrEmptyClipboard):
			s.notify(uploader.NotifyError, code.ClipboardEmpty, "", "")
		case errors.Is(err, clipboard.ErrUnavailable):
			s.notify(uploader.NotifyError, code.ClipboardUnavailable, "", "")
		default:
			s.notify(uploader.NotifyError, code.UploadFailed, "", err.Error())
		}
		return nil, err
	}
	s.logger.Debug("upload triggered",
		zap.String(logger.FieldSource, "clipboard"),
		zap.String(logger.FieldFileName, src.Name))
	return s.run(ctx, src)
}

// PathFailure describes one path of a batch that could not be uploaded.
type PathFailure struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// UploadFromPaths uploads local files one at a time, keeping the order the
// caller gave them in. A failing path does not stop the ones after it;
// every failure is reported per path, and the first error once all paths
// have been attempted.
func (s *Service) UploadFromPaths(ctx context.Context, paths []string) ([]*settings.UploadRecord, []PathFailure, error) {
	var records []*settings.UploadRecord
	var failures []PathFailure
	var firstErr error
	for _, p := range paths {
		s.logger.Debug("upload triggered",
			zap.String(logger.FieldSource, "file"),
			zap.String(logger.FieldPath, p))
		rec, err := s.run(ctx, uploader.FromPath(p))
		if err != nil {
			s.logger.Error("file upload failed",
				zap.String(logger.FieldPath, p),
				zap.Error(err))
			failures = append(failures, PathFailure{Path: p, Reason: err.Error()})
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		records = append(records, rec)
	}
	return records, failures, firstErr
}

// run pushes an upload through the worker pool so that concurrent triggers
// share the transfer budget, then executes the side effects the attempt
// produced regardless of its result.
func (s *Service) run(ctx context.Context, src *uploader.Source) (*settings.UploadRecord, error) {
	var outcome *uploader.Outcome
	var upErr error

	task := func(taskCtx context.Context) error {
		outcome, upErr = s.uploader.Upload(taskCtx, src)
		return nil
	}
	if s.pool != nil {
		if err := s.pool.Submit(ctx, task); err != nil {
			s.notify(uploader.NotifyError, code.UploadFailed, "", err.Error())
			return nil, err
		}
	} else {
		_ = task(ctx)
	}

	if outcome != nil {
		s.applyEffects(outcome.Effects)
	}
	if upErr != nil {
		return nil, upErr
	}

	return outcome.Record, nil
}
