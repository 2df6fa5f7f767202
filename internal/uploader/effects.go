package uploader

import (
	"github.com/picup-app/picup/internal/settings"
	"github.com/picup-app/picup/pkg/code"
)

// Notification severity values, as the UI shell's transient pop-up
// understands them.
const (
	NotifySuccess = "success"
	NotifyError   = "error"
	NotifyInfo    = "info"
)

// Effect is one side effect the caller must perform after an upload
// attempt. The orchestrator never touches the clipboard, the event hub,
// or the notification channel itself; it returns the ordered list of
// effects instead, which keeps the core sequencing independently
// testable.
type Effect interface {
	isEffect()
}

// NotifyEffect shows a transient notification.
type NotifyEffect struct {
	Kind       string
	MessageKey code.Key
	URL        string
	Detail     string
}

// ClipboardCopyEffect writes text back onto the system clipboard.
type ClipboardCopyEffect struct {
	Text string
}

// HistoryUpdatedEffect tells observers to re-read the history.
type HistoryUpdatedEffect struct{}

func (NotifyEffect) isEffect()         {}
func (ClipboardCopyEffect) isEffect()  {}
func (HistoryUpdatedEffect) isEffect() {}

// Outcome is everything one upload attempt produced.
type Outcome struct {
	// Record is the history entry, nil when the attempt failed before a
	// transfer completed.
	Record *settings.UploadRecord
	// Effects is the ordered side-effect list for the caller.
	Effects []Effect
}
