// Package media stores the image files referenced by catalog entities.
package media

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

var (
	ErrUnsupportedImageType = errors.New("unsupported image type")
	ErrImageNotFound        = errors.New("image not found")
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type Store interface {
	// Save persists the image and returns the generated file name.
	Save(file io.Reader, contentType string) (string, error)

	// Delete removes a previously stored image. The argument may be a full
	// URL; only its final path element is used. Missing files are ignored.
	Delete(imageURL string) error

	// Resolve maps a stored file name to a servable filesystem path.
	Resolve(name string) (string, error)
}

// DiskStore keeps images in a flat directory with random file names.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return nil, err
	}

	return &DiskStore{dir: dir}, nil
}

func (s *DiskStore) Save(file io.Reader, contentType string) (string, error) {
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return "", ErrUnsupportedImageType
	}

	name := uuid.NewString() + ext

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}

	_, err = io.Copy(dst, file)
	if err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", err
	}

	err = dst.Close()
	if err != nil {
		return "", err
	}

	return name, nil
}

func (s *DiskStore) Delete(imageURL string) error {
	if imageURL == "" {
		return nil
	}

	path := filepath.Join(s.dir, filepath.Base(imageURL))

	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}

func (s *DiskStore) Resolve(name string) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(name))

	_, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrImageNotFound
		}

		return "", err
	}

	return path, nil
}
