package service

import (
	"context"

	"github.com/picup-app/picup/internal/settings"
	"github.com/picup-app/picup/internal/uploader"
	"github.com/picup-app/picup/pkg/code"
)

// GetSettings returns a snapshot of the settings document.
func (s *Service) GetSettings() *settings.Settings {
	return s.repo.Get()
}

// SaveSettings replaces the stored document with the caller's copy. History
// is owned by the upload pipeline and survives the swap untouched. Shells
// are told to re-read their copy afterwards.
func (s *Service) SaveSettings(ctx context.Context, in *settings.Settings) (*settings.Settings, error) {
	if err := s.repo.Replace(ctx, in); err != nil {
		return nil, err
	}
	saved := s.repo.Get()
	code.SetGlobalDefaultLang(saved.Language)
	s.broadcast(EventSettingsUpdated, nil)
	s.notify(uploader.NotifySuccess, code.SettingsSaved, "", "")
	return saved, nil
}

// DeleteProfile removes a storage profile. When the active profile is the
// one removed, the first remaining profile becomes active.
func (s *Service) DeleteProfile(ctx context.Context, id string) (*settings.Settings, error) {
	if err := s.repo.DeleteProfile(ctx, id); err != nil {
		return nil, err
	}
	s.broadcast(EventSettingsUpdated, nil)
	return s.repo.Get(), nil
}
