package settings

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/picup-app/picup/pkg/writequeue"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	queue := writequeue.New(nil, nil)
	t.Cleanup(func() {
		_ = queue.Shutdown(context.Background())
	})

	path := filepath.Join(t.TempDir(), "settings.json")
	repo, err := NewRepository(path, queue, nil)
	if err != nil {
		t.Fatalf("NewRepository failed: %v", err)
	}
	return repo
}

func TestRepositoryDefaults(t *testing.T) {
	repo := newTestRepository(t)

	s := repo.Get()
	if !s.AutoCopy {
		t.Errorf("autoCopy default should be true")
	}
	if s.CopyFormat != CopyFormatMarkdown {
		t.Errorf("copyFormat default mismatch: got %q", s.CopyFormat)
	}
	if s.Language != "en" {
		t.Errorf("language default mismatch: got %q", s.Language)
	}
	if len(s.Profiles) != 0 || len(s.History) != 0 {
		t.Errorf("fresh document should be empty")
	}
	if _, ok := repo.CurrentProfile(); ok {
		t.Errorf("fresh document should have no active profile")
	}
}

func TestRepositoryRoundtrip(t *testing.T) {
	queue := writequeue.New(nil, nil)
	defer queue.Shutdown(context.Background())

	path := filepath.Join(t.TempDir(), "settings.json")
	repo, err := NewRepository(path, queue, nil)
	if err != nil {
		t.Fatalf("NewRepository failed: %v", err)
	}

	in := repo.Get()
	in.Profiles = []StoreProfile{{ID: "p1", Name: "primary", Bucket: "bucket-a", Region: "ap-guangzhou"}}
	in.CurrentConfigID = "p1"
	in.CopyFormat = CopyFormatURL
	if err := repo.Replace(context.Background(), in); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	// a second repository over the same file must see the same document
	reopened, err := NewRepository(path, queue, nil)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	s := reopened.Get()
	if len(s.Profiles) != 1 || s.Profiles[0].Name != "primary" {
		t.Fatalf("profiles not persisted: %+v", s.Profiles)
	}
	if s.CurrentConfigID != "p1" {
		t.Errorf("currentConfigId not persisted: got %q", s.CurrentConfigID)
	}
	if s.CopyFormat != CopyFormatURL {
		t.Errorf("copyFormat not persisted: got %q", s.CopyFormat)
	}
}

func TestReplacePreservesHistory(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	if err := repo.AppendHistory(ctx, UploadRecord{ID: "rec-1", URL: "https://example.com/a.png", Status: StatusSuccess}); err != nil {
		t.Fatalf("AppendHistory failed: %v", err)
	}

	in := repo.Get()
	in.History = nil // the settings form never carries history
	in.Profiles = []StoreProfile{{ID: "p1", Name: "primary"}}
	if err := repo.Replace(ctx, in); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	got := repo.History()
	if len(got) != 1 || got[0].ID != "rec-1" {
		t.Fatalf("history lost across replace: %+v", got)
	}
}

func TestReplaceAssignsProfileIDs(t *testing.T) {
	repo := newTestRepository(t)

	in := repo.Get()
	in.Profiles = []StoreProfile{{Name: "fresh"}}
	if err := repo.Replace(context.Background(), in); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	s := repo.Get()
	if s.Profiles[0].ID == "" {
		t.Fatalf("profile ID was not assigned")
	}
	if s.CurrentConfigID != s.Profiles[0].ID {
		t.Errorf("currentConfigId should point at the only profile")
	}
}

func TestDeleteProfileReassignsCurrent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	in := repo.Get()
	in.Profiles = []StoreProfile{
		{ID: "p1", Name: "one"},
		{ID: "p2", Name: "two"},
	}
	in.CurrentConfigID = "p2"
	if err := repo.Replace(ctx, in); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	if err := repo.DeleteProfile(ctx, "p2"); err != nil {
		t.Fatalf("DeleteProfile failed: %v", err)
	}
	s := repo.Get()
	if len(s.Profiles) != 1 || s.Profiles[0].ID != "p1" {
		t.Fatalf("unexpected profiles after delete: %+v", s.Profiles)
	}
	if s.CurrentConfigID != "p1" {
		t.Errorf("currentConfigId not reassigned: got %q", s.CurrentConfigID)
	}

	if err := repo.DeleteProfile(ctx, "p1"); err != nil {
		t.Fatalf("DeleteProfile failed: %v", err)
	}
	s = repo.Get()
	if s.CurrentConfigID != "" {
		t.Errorf("currentConfigId should empty with the last profile, got %q", s.CurrentConfigID)
	}
}

func TestAppendHistoryBounded(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for i := 0; i < HistoryCap+5; i++ {
		rec := UploadRecord{ID: fmt.Sprintf("rec-%d", i), Status: StatusSuccess}
		if err := repo.AppendHistory(ctx, rec); err != nil {
			t.Fatalf("AppendHistory failed at %d: %v", i, err)
		}
	}

	got := repo.History()
	if len(got) != HistoryCap {
		t.Fatalf("history not bounded: got %d entries", len(got))
	}
	if got[0].ID != fmt.Sprintf("rec-%d", HistoryCap+4) {
		t.Errorf("newest entry not first: got %q", got[0].ID)
	}
}

func TestClearHistory(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	if err := repo.AppendHistory(ctx, UploadRecord{ID: "rec-1"}); err != nil {
		t.Fatalf("AppendHistory failed: %v", err)
	}
	if err := repo.ClearHistory(ctx); err != nil {
		t.Fatalf("ClearHistory failed: %v", err)
	}
	if got := repo.History(); len(got) != 0 {
		t.Fatalf("history not cleared: %+v", got)
	}
}

func TestGetReturnsIsolatedSnapshots(t *testing.T) {
	repo := newTestRepository(t)

	in := repo.Get()
	in.Profiles = []StoreProfile{{ID: "p1", Name: "one"}}
	if err := repo.Replace(context.Background(), in); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	a := repo.Get()
	a.Profiles[0].Name = "mutated"

	b := repo.Get()
	if b.Profiles[0].Name != "one" {
		t.Fatalf("snapshot mutation leaked into the repository")
	}
}
