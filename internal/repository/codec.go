package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// loadJSON decodes the blob under key into dst. A missing blob leaves dst
// untouched and reports found=false.
func loadJSON(ctx context.Context, store BlobStore, key string, dst any) (bool, error) {
	raw, err := store.Load(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if len(raw) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decoding %s: %w", key, err)
	}
	return true, nil
}

func saveJSON(ctx context.Context, store BlobStore, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return store.Save(ctx, key, raw)
}
