package settings

import (
	"fmt"
	"testing"
)

func TestPrependBounded(t *testing.T) {
	tests := []struct {
		name      string
		existing  int
		wantLen   int
		wantFirst string
	}{
		{name: "empty list", existing: 0, wantLen: 1, wantFirst: "new"},
		{name: "partial list", existing: 10, wantLen: 11, wantFirst: "new"},
		{name: "full list evicts oldest", existing: HistoryCap, wantLen: HistoryCap, wantFirst: "new"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := make([]UploadRecord, 0, tt.existing)
			for i := 0; i < tt.existing; i++ {
				list = append(list, UploadRecord{ID: fmt.Sprintf("rec-%d", i)})
			}

			out := prependBounded(list, UploadRecord{ID: "new"}, HistoryCap)

			if len(out) != tt.wantLen {
				t.Fatalf("length mismatch: got %d, want %d", len(out), tt.wantLen)
			}
			if out[0].ID != tt.wantFirst {
				t.Errorf("newest entry not first: got %q", out[0].ID)
			}
		})
	}
}

func TestPrependBoundedEvictsTail(t *testing.T) {
	list := make([]UploadRecord, HistoryCap)
	for i := range list {
		list[i] = UploadRecord{ID: fmt.Sprintf("rec-%d", i)}
	}

	out := prependBounded(list, UploadRecord{ID: "new"}, HistoryCap)

	if len(out) != HistoryCap {
		t.Fatalf("length mismatch: got %d, want %d", len(out), HistoryCap)
	}
	// the oldest entry is the one that fell off
	last := out[len(out)-1]
	if last.ID != fmt.Sprintf("rec-%d", HistoryCap-2) {
		t.Errorf("unexpected tail entry: %q", last.ID)
	}
	for _, rec := range out {
		if rec.ID == fmt.Sprintf("rec-%d", HistoryCap-1) {
			t.Errorf("oldest entry not evicted")
		}
	}
}
