// Package settings owns the persisted user state of the agent: storage
// profiles, the upload history, and the behavior flags. The persisted
// form is a single JSON document, rewritten wholesale on every mutation;
// the in-memory copy is only a cache of it.
package settings

import (
	"github.com/google/uuid"

	"github.com/picup-app/picup/pkg/storage"
)

// Copy format values for the auto-copy side effect.
const (
	CopyFormatMarkdown = "markdown"
	CopyFormatURL      = "url"
)

// Record status values.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
)

// StoreProfile describes one upload destination. SecretID and SecretKey
// are sensitive and must never reach a log line.
type StoreProfile struct {
	ID           string       `json:"id"`
	Name         string       `json:"name" binding:"required"`
	Type         storage.Type `json:"type"`
	SecretID     string       `json:"secretId"`
	SecretKey    string       `json:"secretKey"`
	Bucket       string       `json:"bucket"`
	Region       string       `json:"region"`
	Endpoint     string       `json:"endpoint,omitempty"`
	AccountID    string       `json:"accountId,omitempty"`
	Path         string       `json:"path"`
	CustomDomain string       `json:"customDomain,omitempty"`
}

// StorageConfig translates the profile into the storage factory config.
func (p *StoreProfile) StorageConfig() *storage.Config {
	t := p.Type
	if t == "" {
		t = storage.COS
	}
	return &storage.Config{
		Type:            t,
		Region:          p.Region,
		Endpoint:        p.Endpoint,
		BucketName:      p.Bucket,
		AccessKeyID:     p.SecretID,
		AccessKeySecret: p.SecretKey,
		AccountID:       p.AccountID,
		CustomDomain:    p.CustomDomain,
	}
}

// UploadRecord is one immutable history entry. Timestamp is unix
// milliseconds.
type UploadRecord struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	FileName  string `json:"fileName"`
	Timestamp int64  `json:"timestamp"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}

// Shortcuts holds the shell key bindings. Registration happens in the
// UI shell; the agent only stores and republishes them.
type Shortcuts struct {
	UploadClipboard string `json:"uploadClipboard"`
}

// Settings is the whole persisted document.
type Settings struct {
	Profiles        []StoreProfile `json:"profiles"`
	CurrentConfigID string         `json:"currentConfigId"`
	History         []UploadRecord `json:"history"`
	Shortcuts       Shortcuts      `json:"shortcuts"`
	AutoCopy        bool           `json:"autoCopy" default:"true"`
	CopyFormat      string         `json:"copyFormat" default:"markdown"`
	Language        string         `json:"language" default:"en"`
}

// Clone returns a deep copy. Snapshots handed out by the repository must
// not share slices with the live document.
func (s *Settings) Clone() *Settings {
	c := *s
	c.Profiles = make([]StoreProfile, len(s.Profiles))
	copy(c.Profiles, s.Profiles)
	c.History = make([]UploadRecord, len(s.History))
	copy(c.History, s.History)
	return &c
}

// Normalize repairs the document invariants after a wholesale replace:
// currentConfigId must reference an existing profile, or be empty when
// no profiles remain, and the history stays within its bound.
func (s *Settings) Normalize() {
	if s.CopyFormat != CopyFormatMarkdown && s.CopyFormat != CopyFormatURL {
		s.CopyFormat = CopyFormatMarkdown
	}

	for i := range s.Profiles {
		if s.Profiles[i].ID == "" {
			s.Profiles[i].ID = uuid.New().String()
		}
	}

	found := false
	for _, p := range s.Profiles {
		if p.ID == s.CurrentConfigID {
			found = true
			break
		}
	}
	if !found {
		if len(s.Profiles) > 0 {
			s.CurrentConfigID = s.Profiles[0].ID
		} else {
			s.CurrentConfigID = ""
		}
	}

	if len(s.History) > HistoryCap {
		s.History = s.History[:HistoryCap]
	}
}

// CurrentProfile resolves currentConfigId against the profile set.
func (s *Settings) CurrentProfile() (*StoreProfile, bool) {
	for i := range s.Profiles {
		if s.Profiles[i].ID == s.CurrentConfigID {
			return &s.Profiles[i], true
		}
	}
	return nil, false
}
