// Package service implements the business logic layer.
package service

import (
	"go.uber.org/zap"

	"github.com/picup-app/picup/internal/clipboard"
	"github.com/picup-app/picup/internal/settings"
	"github.com/picup-app/picup/internal/uploader"
	"github.com/picup-app/picup/pkg/app"
	"github.com/picup-app/picup/pkg/code"
	"github.com/picup-app/picup/pkg/workerpool"
)

// Event types pushed to connected shells.
const (
	EventNotification    = "notification"
	EventHistoryUpdated  = "history-updated"
	EventSettingsUpdated = "settings-updated"
)

// NotificationTTL is how long a shell should keep a toast visible, in seconds.
const NotificationTTL = 5

// Notification is the payload carried by a "notification" event.
type Notification struct {
	Kind       string `json:"kind"`
	MessageKey string `json:"messageKey"`
	Message    string `json:"message"`
	URL        string `json:"url,omitempty"`
	Detail     string `json:"detail,omitempty"`
	TTLSeconds int    `json:"ttlSeconds"`
}

// EventPublisher pushes events to whatever shells are attached. The HTTP
// server plugs in its websocket hub; one-shot commands use NopPublisher.
type EventPublisher interface {
	Broadcast(event app.Event)
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Broadcast(event app.Event) {}

// Service wires the upload pipeline to the outside world.
type Service struct {
	repo      *settings.Repository
	uploader  *uploader.Uploader
	extractor *uploader.Extractor
	clip      clipboard.Writer
	publisher EventPublisher
	pool      *workerpool.Pool
	logger    *zap.Logger
}

// New builds a Service. publisher may be nil, in which case events are dropped.
func New(repo *settings.Repository, up *uploader.Uploader, ex *uploader.Extractor, clip clipboard.Writer, publisher EventPublisher, pool *workerpool.Pool, lg *zap.Logger) *Service {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &Service{
		repo:      repo,
		uploader:  up,
		extractor: ex,
		clip:      clip,
		publisher: publisher,
		pool:      pool,
		logger:    lg,
	}
}

// applyEffects executes the side effects an upload attempt produced.
func (s *Service) applyEffects(effects []uploader.Effect) {
	for _, e := range effects {
		switch eff := e.(type) {
		case uploader.NotifyEffect:
			s.notify(eff.Kind, eff.MessageKey, eff.URL, eff.Detail)
		case uploader.ClipboardCopyEffect:
			if s.clip == nil {
				continue
			}
			if err := s.clip.WriteText(eff.Text); err != nil {
				s.logger.Warn("clipboard write failed", zap.Error(err))
			}
		case uploader.HistoryUpdatedEffect:
			s.broadcast(EventHistoryUpdated, nil)
		}
	}
}

func (s *Service) notify(kind string, key code.Key, url, detail string) {
	s.broadcast(EventNotification, Notification{
		Kind:       kind,
		MessageKey: string(key),
		Message:    key.Message(),
		URL:        url,
		Detail:     detail,
		TTLSeconds: NotificationTTL,
	})
}

func (s *Service) broadcast(eventType string, payload any) {
	s.publisher.Broadcast(app.Event{Type: eventType, Payload: payload})
}
