package report

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/spotreport/service/internal/storage"
)

// imageFolder is the fixed namespace all report images live under in the
// object store.
const imageFolder = "reports"

// Image is an uploaded image payload.
type Image struct {
	Reader      io.Reader
	Size        int64
	ContentType string
	Ext         string // including the leading dot, may be empty
}

// Service contains the report lifecycle logic: upload-then-insert on create,
// blob-then-record on delete.
type Service struct {
	store   Store
	objects storage.Storage
}

// NewService creates a new report Service.
func NewService(store Store, objects storage.Storage) *Service {
	return &Service{store: store, objects: objects}
}

// Create uploads the image and then persists the report record. The record is
// only written after the upload has succeeded; a failed upload leaves the
// metadata store untouched.
func (s *Service) Create(ctx context.Context, img Image, lat, lng float64, description string) (*Report, error) {
	key := imageFolder + "/" + uuid.NewString() + img.Ext

	if err := s.objects.Upload(ctx, key, img.Reader, img.Size, img.ContentType); err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	rep, err := s.store.Create(ctx, s.objects.PublicURL(key), lat, lng, description)
	if err != nil {
		return nil, fmt.Errorf("save report: %w", err)
	}
	return rep, nil
}

// List returns all reports, newest first.
func (s *Service) List(ctx context.Context) ([]Report, error) {
	return s.store.List(ctx)
}

// Delete removes the report's image from the object store and then the record
// itself, in that order. There is no compensation between the two deletes: a
// record delete failing after a successful blob delete surfaces as an error
// and leaves the record pointing at a missing blob.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	rep, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// An unmappable image URL degrades to skipping the blob delete rather
	// than failing the request.
	if key := s.objects.KeyFromURL(rep.ImageURL); key != "" {
		if err := s.objects.Delete(ctx, key); err != nil {
			return fmt.Errorf("delete image: %w", err)
		}
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	return nil
}

// IsNotFound returns true when the error indicates a report was not found.
func (s *Service) IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
