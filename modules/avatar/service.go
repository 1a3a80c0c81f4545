package avatar

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrUnsupportedType is returned for file extensions outside the
	// image whitelist.
	ErrUnsupportedType = errors.New("unsupported avatar type")
	// ErrEmptyFile is returned when the upload carries no data.
	ErrEmptyFile = errors.New("avatar file is empty")
)

// MaxAvatarSize caps uploads at 2 MiB.
const MaxAvatarSize = 2 << 20

// contentTypes maps allowed extensions to their Content-Type.
var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// Service stores and serves profile avatars.
type Service struct {
	store ObjectStore
}

// NewService creates a new avatar service.
func NewService(store ObjectStore) *Service {
	return &Service{store: store}
}

// Upload validates and stores an avatar image, returning the generated
// object name callers persist as the user's avatar reference.
func (s *Service) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyFile
	}
	if len(data) > MaxAvatarSize {
		return "", fmt.Errorf("avatar exceeds %d bytes", MaxAvatarSize)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := contentTypes[ext]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, ext)
	}

	name := uuid.New().String() + ext
	if _, err := s.store.Put(ctx, name, data, contentType); err != nil {
		return "", fmt.Errorf("failed to store avatar: %w", err)
	}
	return name, nil
}

// Fetch retrieves an avatar by object name.
func (s *Service) Fetch(ctx context.Context, name string) ([]byte, string, error) {
	data, info, err := s.store.Get(ctx, name)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch avatar: %w", err)
	}
	return data, info.ContentType, nil
}

// Remove deletes an avatar by object name. Removing an avatar that no
// longer exists is not an error.
func (s *Service) Remove(ctx context.Context, name string) error {
	if err := s.store.Delete(ctx, name); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return nil
		}
		return err
	}
	return nil
}
