package settings

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/picup-app/picup/pkg/fileurl"
	"github.com/picup-app/picup/pkg/writequeue"

	"github.com/bytedance/sonic"
	"github.com/creasty/defaults"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DefaultPath returns the platform-standard location of the settings
// document.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "settings")
	}
	return filepath.Join(dir, "picup", "settings.json"), nil
}

// Repository is the single owner of the settings document. Reads return
// deep-copied snapshots; every mutation runs through the write queue, so
// the document's read-modify-write cycle is serialized even when two
// uploads complete at the same moment.
type Repository struct {
	path   string
	logger *zap.Logger
	queue  *writequeue.Queue

	mu      sync.RWMutex
	current *Settings
}

// NewRepository loads the document from path, creating it with defaults
// on first run.
func NewRepository(path string, queue *writequeue.Queue, logger *zap.Logger) (*Repository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Repository{
		path:   path,
		logger: logger,
		queue:  queue,
	}

	s, err := r.load()
	if err != nil {
		return nil, err
	}
	r.current = s

	return r, nil
}

func (r *Repository) load() (*Settings, error) {
	s := &Settings{}
	if err := defaults.Set(s); err != nil {
		return nil, errors.Wrap(err, "settings")
	}

	if !fileurl.IsExist(r.path) {
		r.logger.Info("settings file not found, creating defaults",
			zap.String("path", r.path))
		if err := r.persist(s); err != nil {
			return nil, err
		}
		return s, nil
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, errors.Wrap(err, "settings")
	}
	if err := sonic.Unmarshal(data, s); err != nil {
		return nil, errors.Wrap(err, "settings")
	}
	s.Normalize()
	return s, nil
}

// persist rewrites the whole document. The temp-file plus rename swap
// keeps a crashed write from truncating the previous document.
func (r *Repository) persist(s *Settings) error {
	data, err := sonic.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Wrap(err, "settings")
	}

	if err := fileurl.CreatePath(r.path, os.ModePerm); err != nil {
		return errors.Wrap(err, "settings")
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return errors.Wrap(err, "settings")
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return errors.Wrap(err, "settings")
	}
	return nil
}

// Get returns a snapshot of the current settings. Two calls without an
// intervening mutation return equal snapshots.
func (r *Repository) Get() *Settings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current.Clone()
}

// CurrentProfile resolves the active storage profile.
func (r *Repository) CurrentProfile() (*StoreProfile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.current.CurrentProfile()
	if !ok {
		return nil, false
	}
	c := *p
	return &c, true
}

// mutate serializes a read-modify-write of the document through the
// write queue and persists the result before publishing it.
func (r *Repository) mutate(ctx context.Context, fn func(s *Settings)) error {
	return r.queue.Execute(ctx, func() error {
		r.mu.RLock()
		next := r.current.Clone()
		r.mu.RUnlock()

		fn(next)
		next.Normalize()

		if err := r.persist(next); err != nil {
			return err
		}

		r.mu.Lock()
		r.current = next
		r.mu.Unlock()
		return nil
	})
}

// Replace swaps in a whole new document, as the settings form submits
// it. History is not part of the form and survives the replace.
func (r *Repository) Replace(ctx context.Context, s *Settings) error {
	in := s.Clone()
	return r.mutate(ctx, func(cur *Settings) {
		in.History = cur.History
		*cur = *in
	})
}

// DeleteProfile removes a profile. When the active profile is deleted,
// currentConfigId moves to a remaining profile, or empties with the last
// one. It is never left dangling.
func (r *Repository) DeleteProfile(ctx context.Context, id string) error {
	return r.mutate(ctx, func(cur *Settings) {
		kept := cur.Profiles[:0]
		for _, p := range cur.Profiles {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		cur.Profiles = kept
	})
}

// AppendHistory prepends a finished upload record and persists.
func (r *Repository) AppendHistory(ctx context.Context, rec UploadRecord) error {
	return r.mutate(ctx, func(cur *Settings) {
		cur.History = prependBounded(cur.History, rec, HistoryCap)
	})
}

// ClearHistory resets the history to the empty sequence and persists.
func (r *Repository) ClearHistory(ctx context.Context) error {
	return r.mutate(ctx, func(cur *Settings) {
		cur.History = []UploadRecord{}
	})
}

// History returns the full ordered history, newest first.
func (r *Repository) History() []UploadRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]UploadRecord, len(r.current.History))
	copy(out, r.current.History)
	return out
}
