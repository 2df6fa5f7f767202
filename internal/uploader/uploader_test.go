package uploader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/picup-app/picup/internal/settings"
	"github.com/picup-app/picup/pkg/code"
	"github.com/picup-app/picup/pkg/storage"
	"github.com/picup-app/picup/pkg/writequeue"
)

func newTestRepo(t *testing.T, withProfile bool) *settings.Repository {
	t.Helper()

	queue := writequeue.New(nil, nil)
	t.Cleanup(func() {
		_ = queue.Shutdown(context.Background())
	})

	path := filepath.Join(t.TempDir(), "settings.json")
	repo, err := settings.NewRepository(path, queue, nil)
	if err != nil {
		t.Fatalf("NewRepository failed: %v", err)
	}

	if withProfile {
		s := repo.Get()
		s.Profiles = []settings.StoreProfile{{ID: "p1", Name: "primary", Bucket: "bucket-a", Path: ""}}
		s.CurrentConfigID = "p1"
		if err := repo.Replace(context.Background(), s); err != nil {
			t.Fatalf("Replace failed: %v", err)
		}
	}
	return repo
}

func writeSourceFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("not really a png"), 0600); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return path
}

func fixedFactory(store *fakeStore) StoreFactory {
	return func(p *settings.StoreProfile, lg *zap.Logger) (storage.Storager, error) {
		return store, nil
	}
}

func TestUploadSuccess(t *testing.T) {
	repo := newTestRepo(t, true)
	store := newFakeStore()
	up := New(repo, fixedFactory(store), nil)

	src := &Source{Path: writeSourceFile(t, "cat.png"), Name: "cat.png"}
	outcome, err := up.Upload(context.Background(), src)
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	rec := outcome.Record
	if rec == nil {
		t.Fatalf("success must produce a record")
	}
	if rec.FileName != "cat.png" {
		t.Errorf("record file name mismatch: got %q", rec.FileName)
	}
	if rec.URL != "https://cdn.example.com/cat.png" {
		t.Errorf("record url mismatch: got %q", rec.URL)
	}
	if rec.Status != settings.StatusSuccess {
		t.Errorf("record status mismatch: got %q", rec.Status)
	}
	if rec.ID == "" || rec.Timestamp == 0 {
		t.Errorf("record identity fields not filled: %+v", rec)
	}

	if store.putCalls != 1 {
		t.Errorf("expected one transfer, got %d", store.putCalls)
	}

	history := repo.History()
	if len(history) != 1 || history[0].ID != rec.ID {
		t.Fatalf("record not appended to history: %+v", history)
	}

	// effects: history refresh, markdown clipboard copy, success toast
	var sawHistory, sawCopy, sawNotify bool
	for _, e := range outcome.Effects {
		switch eff := e.(type) {
		case HistoryUpdatedEffect:
			sawHistory = true
		case ClipboardCopyEffect:
			sawCopy = true
			want := "![cat.png](https://cdn.example.com/cat.png)"
			if eff.Text != want {
				t.Errorf("clipboard text mismatch: got %q, want %q", eff.Text, want)
			}
		case NotifyEffect:
			sawNotify = true
			if eff.Kind != NotifySuccess || eff.MessageKey != code.UploadSuccess {
				t.Errorf("unexpected notify effect: %+v", eff)
			}
		}
	}
	if !sawHistory || !sawCopy || !sawNotify {
		t.Errorf("missing effects: history=%v copy=%v notify=%v", sawHistory, sawCopy, sawNotify)
	}
}

func TestUploadNoProfile(t *testing.T) {
	repo := newTestRepo(t, false)
	store := newFakeStore()
	up := New(repo, fixedFactory(store), nil)

	src := &Source{Path: writeSourceFile(t, "cat.png"), Name: "cat.png"}
	outcome, err := up.Upload(context.Background(), src)
	if !errors.Is(err, ErrNoProfile) {
		t.Fatalf("expected ErrNoProfile, got %v", err)
	}

	// no network call without a profile
	if store.existsCalls != 0 || store.putCalls != 0 {
		t.Errorf("store must not be touched without a profile")
	}
	if outcome.Record != nil {
		t.Errorf("no record without a profile")
	}
	if len(outcome.Effects) != 1 {
		t.Fatalf("expected a single notify effect, got %d", len(outcome.Effects))
	}
	notify, ok := outcome.Effects[0].(NotifyEffect)
	if !ok || notify.MessageKey != code.ConfigureStoreFirst {
		t.Errorf("unexpected effect: %+v", outcome.Effects[0])
	}
}

func TestUploadCollisionRename(t *testing.T) {
	repo := newTestRepo(t, true)
	store := newFakeStore("cat.png", "cat(2).png")
	up := New(repo, fixedFactory(store), nil)

	src := &Source{Path: writeSourceFile(t, "cat.png"), Name: "cat.png"}
	outcome, err := up.Upload(context.Background(), src)
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	if len(store.putKeys) != 1 || store.putKeys[0] != "cat(3).png" {
		t.Fatalf("transfer key mismatch: %v", store.putKeys)
	}
	if outcome.Record.FileName != "cat(3).png" {
		t.Errorf("record must carry the final name, got %q", outcome.Record.FileName)
	}
	if !strings.HasSuffix(outcome.Record.URL, "/cat(3).png") {
		t.Errorf("url must carry the final key, got %q", outcome.Record.URL)
	}
}

func TestUploadTransferFailure(t *testing.T) {
	repo := newTestRepo(t, true)
	store := newFakeStore()
	store.putErr = errors.New("403 forbidden")
	up := New(repo, fixedFactory(store), nil)

	src := &Source{Path: writeSourceFile(t, "cat.png"), Name: "cat.png"}
	outcome, err := up.Upload(context.Background(), src)
	if err == nil {
		t.Fatalf("expected transfer error")
	}

	if outcome.Record != nil {
		t.Errorf("failed attempt must not produce a record")
	}
	if got := repo.History(); len(got) != 0 {
		t.Errorf("failed attempt must not reach history: %+v", got)
	}

	notify, ok := outcome.Effects[0].(NotifyEffect)
	if !ok || notify.Kind != NotifyError || notify.MessageKey != code.UploadFailed {
		t.Fatalf("unexpected failure effect: %+v", outcome.Effects[0])
	}
	if !strings.Contains(notify.Detail, "403") {
		t.Errorf("failure detail lost: %q", notify.Detail)
	}
}

func TestUploadProfilePathPrefix(t *testing.T) {
	repo := newTestRepo(t, false)
	s := repo.Get()
	s.Profiles = []settings.StoreProfile{{ID: "p1", Name: "primary", Path: "blog/img"}}
	s.CurrentConfigID = "p1"
	if err := repo.Replace(context.Background(), s); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	store := newFakeStore()
	up := New(repo, fixedFactory(store), nil)

	src := &Source{Path: writeSourceFile(t, "cat.png"), Name: "cat.png"}
	outcome, err := up.Upload(context.Background(), src)
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if store.putKeys[0] != "blog/img/cat.png" {
		t.Errorf("prefix not applied: %q", store.putKeys[0])
	}
	if outcome.Record.FileName != "cat.png" {
		t.Errorf("record name must stay the base name, got %q", outcome.Record.FileName)
	}
}

func TestUploadCopyFormatAndAutoCopy(t *testing.T) {
	repo := newTestRepo(t, true)

	s := repo.Get()
	s.CopyFormat = settings.CopyFormatURL
	if err := repo.Replace(context.Background(), s); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	store := newFakeStore()
	up := New(repo, fixedFactory(store), nil)

	src := &Source{Path: writeSourceFile(t, "cat.png"), Name: "cat.png"}
	outcome, err := up.Upload(context.Background(), src)
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	for _, e := range outcome.Effects {
		if eff, ok := e.(ClipboardCopyEffect); ok {
			if eff.Text != "https://cdn.example.com/cat.png" {
				t.Errorf("url format expected, got %q", eff.Text)
			}
		}
	}

	// autoCopy off suppresses the clipboard effect entirely
	s = repo.Get()
	s.AutoCopy = false
	if err := repo.Replace(context.Background(), s); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	src = &Source{Path: writeSourceFile(t, "dog.png"), Name: "dog.png"}
	outcome, err = up.Upload(context.Background(), src)
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	for _, e := range outcome.Effects {
		if _, ok := e.(ClipboardCopyEffect); ok {
			t.Errorf("clipboard effect present with autoCopy off")
		}
	}
}

func TestUploadCleansEphemeralSource(t *testing.T) {
	repo := newTestRepo(t, true)
	store := newFakeStore()
	up := New(repo, fixedFactory(store), nil)

	path := writeSourceFile(t, "clip.png")
	src := &Source{Path: path, Name: "clip.png", Ephemeral: true}
	if _, err := up.Upload(context.Background(), src); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("ephemeral source not removed")
	}

	// a failed attempt cleans up too
	store.putErr = errors.New("boom")
	path = writeSourceFile(t, "clip2.png")
	src = &Source{Path: path, Name: "clip2.png", Ephemeral: true}
	if _, err := up.Upload(context.Background(), src); err == nil {
		t.Fatalf("expected transfer error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("ephemeral source not removed on failure")
	}

	// a user's own file is never deleted
	path = writeSourceFile(t, "mine.png")
	store.putErr = nil
	src = &Source{Path: path, Name: "mine.png", Ephemeral: false}
	if _, err := up.Upload(context.Background(), src); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("non-ephemeral source must survive: %v", err)
	}
}
