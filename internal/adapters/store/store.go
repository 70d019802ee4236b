// Package store implements freeze info persistence for incremental freezes.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.frostpack.dev/frost/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.FreezeInfoStore using a file-per-bundle strategy
// under <root>/.frost/store.
type Store struct{}

// NewStore creates a new FreezeInfoStore.
func NewStore() (*Store, error) {
	return &Store{}, nil
}

// Get retrieves the freeze info for a given bundle name.
func (s *Store) Get(root, bundleName string) (*domain.FreezeInfo, error) {
	filename := s.getFilename(root, bundleName)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var info domain.FreezeInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}

	return &info, nil
}

// Put stores the freeze info.
func (s *Store) Put(root string, info domain.FreezeInfo) error {
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	filename := s.getFilename(root, info.BundleName)
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	return nil
}

func (s *Store) getFilename(root, bundleName string) string {
	hash := sha256.Sum256([]byte(bundleName))
	hexHash := hex.EncodeToString(hash[:])
	storeDir := filepath.Join(root, domain.DefaultStorePath())
	return filepath.Join(storeDir, hexHash+".json")
}
