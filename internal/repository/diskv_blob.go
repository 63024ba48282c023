package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvBlobStore implements BlobStore with one file per key under a base
// directory.
type DiskvBlobStore struct {
	d *diskv.Diskv
}

// NewDiskvBlobStore opens a file-backed store rooted at dir.
func NewDiskvBlobStore(dir string) *DiskvBlobStore {
	return &DiskvBlobStore{d: diskv.New(diskv.Options{
		BasePath:          dir,
		AdvancedTransform: flatTransform,
		InverseTransform:  func(pk *diskv.PathKey) string { return pk.FileName },
		CacheSizeMax:      1024 * 1024,
	})}
}

func flatTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{FileName: key}
}

func (s *DiskvBlobStore) Load(_ context.Context, key string) ([]byte, error) {
	val, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("blob %s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("reading blob %s: %w", key, err)
	}
	return val, nil
}

func (s *DiskvBlobStore) Save(_ context.Context, key string, value []byte) error {
	if err := s.d.Write(key, value); err != nil {
		return fmt.Errorf("writing blob %s: %w", key, err)
	}
	return nil
}

func (s *DiskvBlobStore) Delete(_ context.Context, key string) error {
	if !s.d.Has(key) {
		return nil
	}
	if err := s.d.Erase(key); err != nil {
		return fmt.Errorf("erasing blob %s: %w", key, err)
	}
	return nil
}
