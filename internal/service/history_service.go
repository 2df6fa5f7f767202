package service

import (
	"context"

	"github.com/picup-app/picup/internal/settings"
	"github.com/picup-app/picup/internal/uploader"
	"github.com/picup-app/picup/pkg/code"
)

// History returns the upload log, newest first.
func (s *Service) History() []settings.UploadRecord {
	return s.repo.History()
}

// ClearHistory empties the upload log and tells shells to refresh.
func (s *Service) ClearHistory(ctx context.Context) error {
	if err := s.repo.ClearHistory(ctx); err != nil {
		return err
	}
	s.broadcast(EventHistoryUpdated, nil)
	s.notify(uploader.NotifyInfo, code.HistoryCleared, "", "")
	return nil
}
