package uploader

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/picup-app/picup/pkg/storage"

	"github.com/pkg/errors"
)

// maxKeyAttempts caps the collision probe loop. The reference behavior
// is unbounded; the cap is a hardening guard against a store whose
// existence probe misbehaves, and exhaustion fails the upload like any
// other store error.
const maxKeyAttempts = 10000

// Resolver finds the first free destination key by suffixing a counter
// onto the base name: key, then base(2).ext, base(3).ext, and so on.
// Keys are forward-slash remote identifiers, never local paths.
type Resolver struct {
	store storage.Storager
}

func NewResolver(store storage.Storager) *Resolver {
	return &Resolver{store: store}
}

// Resolve probes desiredKey and returns it unchanged when free. On a
// collision the counter starts at 2 and increases by exactly 1 per
// further collision; the loop stops at the first free slot.
func (r *Resolver) Resolve(ctx context.Context, desiredKey string) (string, error) {
	desiredKey = strings.ReplaceAll(desiredKey, "\\", "/")

	dir := path.Dir(desiredKey)
	ext := path.Ext(desiredKey)
	base := strings.TrimSuffix(path.Base(desiredKey), ext)

	key := desiredKey
	for counter := 2; ; counter++ {
		exists, err := r.store.Exists(ctx, key)
		if err != nil {
			return "", errors.Wrap(err, "resolve key")
		}
		if !exists {
			return key, nil
		}
		if counter-2 >= maxKeyAttempts {
			return "", ErrKeyspaceExhausted
		}

		name := fmt.Sprintf("%s(%d)%s", base, counter, ext)
		if dir == "." || dir == "/" {
			key = name
		} else {
			key = dir + "/" + name
		}
	}
}
