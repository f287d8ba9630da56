package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"campshop/pkg/logger"
	"campshop/pkg/s3"
)

// Store keeps uploaded files under a directory and a file name.
type Store interface {
	Save(ctx context.Context, dir, name string, body io.ReadSeeker, contentType string) error
	// Delete removes a stored file. A missing file is not an error.
	Delete(ctx context.Context, dir, name string) error
}

type LocalStore struct {
	root string
}

func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

func (s *LocalStore) Save(ctx context.Context, dir, name string, body io.ReadSeeker, contentType string) error {
	target := filepath.Join(s.root, dir)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("failed to create upload dir: %w", err)
	}

	f, err := os.Create(filepath.Join(target, filepath.Base(name)))
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return f.Close()
}

func (s *LocalStore) Delete(ctx context.Context, dir, name string) error {
	err := os.Remove(filepath.Join(s.root, dir, filepath.Base(name)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

type S3Store struct {
	client *s3.Client
	log    *logger.Logger
}

func NewS3Store(client *s3.Client, log *logger.Logger) *S3Store {
	return &S3Store{client: client, log: log}
}

func (s *S3Store) Save(ctx context.Context, dir, name string, body io.ReadSeeker, contentType string) error {
	url, err := s.client.UploadFile(ctx, path.Join(dir, name), body, contentType)
	if err != nil {
		return err
	}
	s.log.Debug("Stored %s", url)
	return nil
}

func (s *S3Store) Delete(ctx context.Context, dir, name string) error {
	return s.client.DeleteFile(ctx, path.Join(dir, name))
}
