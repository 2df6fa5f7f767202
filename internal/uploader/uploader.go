// Package uploader contains the upload core: source extraction, key
// collision resolution, and the transfer orchestration that turns a
// trigger into a history record plus side effects.
package uploader

import (
	"context"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/picup-app/picup/internal/settings"
	"github.com/picup-app/picup/pkg/code"
	"github.com/picup-app/picup/pkg/fileurl"
	"github.com/picup-app/picup/pkg/logger"
	"github.com/picup-app/picup/pkg/storage"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// StoreFactory builds the store client for a profile. Swappable in
// tests.
type StoreFactory func(p *settings.StoreProfile, lg *zap.Logger) (storage.Storager, error)

// DefaultStoreFactory dispatches through the storage package.
func DefaultStoreFactory(p *settings.StoreProfile, lg *zap.Logger) (storage.Storager, error) {
	return storage.NewClient(p.StorageConfig(), lg)
}

// Uploader sequences one upload attempt: resolve a free key, transfer
// the bytes, record the outcome, and describe the side effects. A
// single attempt either succeeds or surfaces its failure; there is no
// internal retry.
type Uploader struct {
	repo     *settings.Repository
	newStore StoreFactory
	logger   *zap.Logger
}

func New(repo *settings.Repository, newStore StoreFactory, lg *zap.Logger) *Uploader {
	if newStore == nil {
		newStore = DefaultStoreFactory
	}
	if lg == nil {
		lg = zap.NewNop()
	}
	return &Uploader{
		repo:     repo,
		newStore: newStore,
		logger:   lg,
	}
}

// Upload runs one attempt for src. The returned Outcome always carries
// the effect list to perform, including the failure notification when
// err is non-nil. Ephemeral sources are cleaned up on every path.
func (u *Uploader) Upload(ctx context.Context, src *Source) (*Outcome, error) {
	defer src.Cleanup(u.logger)

	profile, ok := u.repo.CurrentProfile()
	if !ok {
		return &Outcome{Effects: []Effect{
			NotifyEffect{Kind: NotifyError, MessageKey: code.ConfigureStoreFirst},
		}}, ErrNoProfile
	}

	started := time.Now()

	store, err := u.newStore(profile, u.logger)
	if err != nil {
		return u.failure(profile, src, err)
	}

	desiredKey := joinKey(profile.Path, src.Name)

	finalKey, err := NewResolver(store).Resolve(ctx, desiredKey)
	if err != nil {
		return u.failure(profile, src, err)
	}

	f, err := os.Open(src.Path)
	if err != nil {
		return u.failure(profile, src, errors.Wrap(err, "open source"))
	}
	defer f.Close()

	if err := store.PutFile(ctx, finalKey, f, src.ContentType()); err != nil {
		return u.failure(profile, src, err)
	}

	url := store.URL(finalKey)

	rec := settings.UploadRecord{
		ID:        uuid.New().String(),
		URL:       url,
		FileName:  path.Base(finalKey),
		Timestamp: time.Now().UnixMilli(),
		Status:    settings.StatusSuccess,
	}

	// The transfer is already done; a failed history persist must not
	// turn the attempt into a failure.
	if err := u.repo.AppendHistory(ctx, rec); err != nil {
		u.logger.Error("history append failed",
			zap.String(logger.FieldFileKey, finalKey),
			zap.Error(err))
	}

	u.logger.Info("upload finished",
		zap.String(logger.FieldProfile, profile.Name),
		zap.String(logger.FieldBucket, profile.Bucket),
		zap.String(logger.FieldFileKey, finalKey),
		zap.String(logger.FieldURL, url),
		zap.Duration(logger.FieldDuration, time.Since(started)))

	effects := []Effect{HistoryUpdatedEffect{}}

	snap := u.repo.Get()
	if snap.AutoCopy {
		text := url
		if snap.CopyFormat == settings.CopyFormatMarkdown {
			text = fmt.Sprintf("![%s](%s)", rec.FileName, url)
		}
		effects = append(effects, ClipboardCopyEffect{Text: text})
	}
	effects = append(effects, NotifyEffect{
		Kind:       NotifySuccess,
		MessageKey: code.UploadSuccess,
		URL:        url,
	})

	return &Outcome{Record: &rec, Effects: effects}, nil
}

// failure builds the aborted-attempt outcome: no history record, a
// failure notification carrying the error detail.
func (u *Uploader) failure(profile *settings.StoreProfile, src *Source, err error) (*Outcome, error) {
	u.logger.Error("upload failed",
		zap.String(logger.FieldProfile, profile.Name),
		zap.String(logger.FieldFileName, src.Name),
		zap.Error(err))

	return &Outcome{Effects: []Effect{
		NotifyEffect{
			Kind:       NotifyError,
			MessageKey: code.UploadFailed,
			Detail:     err.Error(),
		},
	}}, err
}

// joinKey joins the profile's prefix and the file name into a
// forward-slash remote key.
func joinKey(prefix, name string) string {
	return fileurl.JoinKey(prefix, name)
}
