package certificates

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

var (
	ErrCertificateNotFound = errors.New("certificate not found")
	ErrCertificateTooLarge = errors.New("certificate exceeds upload limit")
	ErrEmptyUpload         = errors.New("uploaded certificate is empty")
)

//go:generate mockgen -source=store.go -destination=../mocks/certificates.go -package=mocks

type CertificateProvider interface {
	Read() ([]byte, error)
	Exists() bool
	Save(r io.Reader) (int64, error)
}

// FileStore keeps the single canonical certificate at a fixed path. Uploads replace it.
type FileStore struct {
	path     string
	maxBytes int64
}

func NewFileStore(path string, maxBytes int64) *FileStore {
	return &FileStore{path: path, maxBytes: maxBytes}
}

func (s *FileStore) Path() string {
	return s.path
}

// Read returns the certificate bytes, or ErrCertificateNotFound when none has been uploaded.
func (s *FileStore) Read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrCertificateNotFound
		}
		return nil, fmt.Errorf("failed to read certificate: %w", err)
	}

	return data, nil
}

func (s *FileStore) Exists() bool {
	info, err := os.Stat(s.path)
	return err == nil && info.Mode().IsRegular()
}

// Save copies r into a staging file next to the certificate and renames it into place, so
// readers only ever see the previous or the new certificate.
func (s *FileStore) Save(r io.Reader) (int64, error) {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create certificate directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return 0, fmt.Errorf("failed to create staging file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	src := r
	if s.maxBytes > 0 {
		src = io.LimitReader(r, s.maxBytes+1)
	}

	n, err := io.Copy(tmp, src)
	if err != nil {
		_ = tmp.Close()
		return 0, fmt.Errorf("failed to write certificate: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("failed to write certificate: %w", err)
	}

	if s.maxBytes > 0 && n > s.maxBytes {
		return 0, ErrCertificateTooLarge
	}

	if n == 0 {
		return 0, ErrEmptyUpload
	}

	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return 0, fmt.Errorf("failed to set certificate permissions: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return 0, fmt.Errorf("failed to replace certificate: %w", err)
	}

	return n, nil
}
