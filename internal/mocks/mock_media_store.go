package mocks

import (
	"io"

	"github.com/evently/event-booking-api/internal/media"
)

type MockMediaStore struct {
	media.Store
	SaveFunc    func(file io.Reader, contentType string) (string, error)
	DeleteFunc  func(imageURL string) error
	ResolveFunc func(name string) (string, error)
}

func (m *MockMediaStore) Save(file io.Reader, contentType string) (string, error) {
	return m.SaveFunc(file, contentType)
}

func (m *MockMediaStore) Delete(imageURL string) error {
	return m.DeleteFunc(imageURL)
}

func (m *MockMediaStore) Resolve(name string) (string, error) {
	return m.ResolveFunc(name)
}
