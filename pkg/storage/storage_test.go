package storage

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClientInvalidType(t *testing.T) {
	_, err := NewClient(&Config{Type: "ftp"}, nil)
	assert.ErrorIs(t, err, ErrInvalidStorageType)

	_, err = NewClient(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidStorageType)
}

func TestStorageTypeMap(t *testing.T) {
	for _, typ := range []Type{COS, OSS, R2, S3, MinIO, WebDAV, LOCAL} {
		assert.True(t, StorageTypeMap[typ], "type %q should be registered", typ)
	}
	assert.False(t, StorageTypeMap["ftp"])
}

func cosConfig(customDomain string) *Config {
	return &Config{
		Type:            COS,
		Region:          "ap-guangzhou",
		BucketName:      "shots",
		AccessKeyID:     "ak",
		AccessKeySecret: "sk",
		CustomDomain:    customDomain,
	}
}

func TestNewClientPicksUpProfileEdits(t *testing.T) {
	before, err := NewClient(cosConfig("https://old.example.com"), nil)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	assert.Equal(t, "https://old.example.com/shots/cat.png", before.URL("shots/cat.png"))

	after, err := NewClient(cosConfig("https://new.example.com"), nil)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	assert.Equal(t, "https://new.example.com/shots/cat.png", after.URL("shots/cat.png"))
	assert.Equal(t, "https://old.example.com/shots/cat.png", before.URL("shots/cat.png"))
}

func TestNewClientConcurrent(t *testing.T) {
	const n = 8

	urls := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store, err := NewClient(cosConfig(fmt.Sprintf("https://cdn%d.example.com", i)), nil)
			if err != nil {
				t.Errorf("NewClient failed: %v", err)
				return
			}
			urls[i] = store.URL("cat.png")
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		assert.Equal(t, fmt.Sprintf("https://cdn%d.example.com/cat.png", i), urls[i])
	}
}

func TestLocalFSRoundtrip(t *testing.T) {
	dir := t.TempDir()

	store, err := NewClient(&Config{Type: LOCAL, SavePath: dir}, nil)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	ctx := context.Background()

	exists, err := store.Exists(ctx, "shots/cat.png")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	assert.False(t, exists)

	err = store.PutFile(ctx, "shots/cat.png", bytes.NewReader([]byte("png bytes")), "image/png")
	if err != nil {
		t.Fatalf("PutFile failed: %v", err)
	}

	exists, err = store.Exists(ctx, "shots/cat.png")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	assert.True(t, exists)

	data, err := os.ReadFile(filepath.Join(dir, "shots", "cat.png"))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	assert.Equal(t, "png bytes", string(data))

	url := store.URL("shots/cat.png")
	assert.Contains(t, url, "file://")
	assert.Contains(t, url, "shots/cat.png")
}

func TestLocalFSCustomDomainURL(t *testing.T) {
	store, err := NewClient(&Config{Type: LOCAL, SavePath: t.TempDir(), CustomDomain: "https://img.example.com"}, nil)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	assert.Equal(t, "https://img.example.com/shots/cat.png", store.URL("shots/cat.png"))
}
