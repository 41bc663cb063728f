package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage stores profile photos on the local filesystem.
type LocalStorage struct {
	uploadsDir string
}

// NewLocalStorage creates the upload directory if it does not exist.
func NewLocalStorage(uploadsDir string) (*LocalStorage, error) {
	if err := os.MkdirAll(uploadsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &LocalStorage{uploadsDir: uploadsDir}, nil
}

func (s *LocalStorage) path(name string) (string, error) {
	// Reject anything that could escape the uploads directory.
	clean := filepath.Base(name)
	if clean != name || strings.HasPrefix(clean, ".") {
		return "", fmt.Errorf("invalid file name: %q", name)
	}
	return filepath.Join(s.uploadsDir, clean), nil
}

func (s *LocalStorage) SaveFile(name string, reader io.Reader) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}
	f, err := os.Create(p)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (s *LocalStorage) ReadFile(name string) (io.ReadCloser, error) {
	p, err := s.path(name)
	if err != nil {
		return nil, err
	}
	return os.Open(p)
}

func (s *LocalStorage) DeleteFile(name string) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
