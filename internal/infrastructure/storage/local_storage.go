package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kartavyango/sahaaya/internal/domain/contract"
)

// LocalStorage stores uploads on the local filesystem. Each file is
// stored under an opaque generated name; the original file name survives
// only in the owning document.
type LocalStorage struct {
	dir     string
	baseURL string
	uuidGen contract.IUUIDGenerator
}

// NewLocalStorage creates a LocalStorage rooted at dir. Stored files are
// served under baseURL/uploads/.
func NewLocalStorage(dir, baseURL string, uuidGen contract.IUUIDGenerator) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &LocalStorage{dir: dir, baseURL: baseURL, uuidGen: uuidGen}, nil
}

var _ contract.IFileStorage = (*LocalStorage)(nil)

func (s *LocalStorage) Save(ctx context.Context, fileName string, r io.Reader) (*contract.StoredFile, error) {
	storageID := s.uuidGen.NewUUID() + filepath.Ext(fileName)
	path := filepath.Join(s.dir, storageID)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer f.Close()

	size, err := io.Copy(f, r)
	if err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return &contract.StoredFile{
		StorageID: storageID,
		URL:       s.baseURL + "/uploads/" + storageID,
		Size:      size,
	}, nil
}

func (s *LocalStorage) Delete(ctx context.Context, storageID string) error {
	path := filepath.Join(s.dir, filepath.Base(storageID))
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete file %s: %w", path, err)
	}
	return nil
}
