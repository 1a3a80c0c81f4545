package avatar

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

// memoryObjectStore is an in-memory ObjectStore for testing.
type memoryObjectStore struct {
	objects map[string]memoryObject
}

type memoryObject struct {
	data        []byte
	contentType string
}

func newMemoryObjectStore() *memoryObjectStore {
	return &memoryObjectStore{objects: make(map[string]memoryObject)}
}

func (s *memoryObjectStore) Put(_ context.Context, name string, data []byte, contentType string) (*ObjectInfo, error) {
	s.objects[name] = memoryObject{data: data, contentType: contentType}
	return &ObjectInfo{
		Name:        name,
		Size:        uint64(len(data)),
		ContentType: contentType,
		ModTime:     time.Now(),
	}, nil
}

func (s *memoryObjectStore) Get(_ context.Context, name string) ([]byte, *ObjectInfo, error) {
	obj, ok := s.objects[name]
	if !ok {
		return nil, nil, fmt.Errorf("object not found: %s", name)
	}
	return obj.data, &ObjectInfo{
		Name:        name,
		Size:        uint64(len(obj.data)),
		ContentType: obj.contentType,
		ModTime:     time.Now(),
	}, nil
}

func (s *memoryObjectStore) Delete(_ context.Context, name string) error {
	if _, ok := s.objects[name]; !ok {
		return fmt.Errorf("object not found: %s", name)
	}
	delete(s.objects, name)
	return nil
}

func TestService_Upload(t *testing.T) {
	store := newMemoryObjectStore()
	svc := NewService(store)
	ctx := context.Background()

	t.Run("png upload", func(t *testing.T) {
		name, err := svc.Upload(ctx, "me.png", []byte("png-bytes"))
		if err != nil {
			t.Fatalf("Upload() error = %v", err)
		}
		if !strings.HasSuffix(name, ".png") {
			t.Errorf("expected .png object name, got %q", name)
		}
		if _, ok := store.objects[name]; !ok {
			t.Error("object not stored")
		}
		if store.objects[name].contentType != "image/png" {
			t.Errorf("expected image/png, got %q", store.objects[name].contentType)
		}
	})

	t.Run("jpeg extension normalized", func(t *testing.T) {
		name, err := svc.Upload(ctx, "PHOTO.JPEG", []byte("jpeg-bytes"))
		if err != nil {
			t.Fatalf("Upload() error = %v", err)
		}
		if !strings.HasSuffix(name, ".jpeg") {
			t.Errorf("expected lowercase .jpeg object name, got %q", name)
		}
		if store.objects[name].contentType != "image/jpeg" {
			t.Errorf("expected image/jpeg, got %q", store.objects[name].contentType)
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := svc.Upload(ctx, "script.svg", []byte("<svg/>"))
		if !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("expected ErrUnsupportedType, got %v", err)
		}
	})

	t.Run("no extension", func(t *testing.T) {
		_, err := svc.Upload(ctx, "avatar", []byte("bytes"))
		if !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("expected ErrUnsupportedType, got %v", err)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := svc.Upload(ctx, "me.png", nil)
		if !errors.Is(err, ErrEmptyFile) {
			t.Errorf("expected ErrEmptyFile, got %v", err)
		}
	})

	t.Run("oversized file", func(t *testing.T) {
		_, err := svc.Upload(ctx, "big.png", make([]byte, MaxAvatarSize+1))
		if err == nil {
			t.Error("expected error for oversized upload")
		}
	})

	t.Run("unique names for identical uploads", func(t *testing.T) {
		name1, err := svc.Upload(ctx, "same.png", []byte("data"))
		if err != nil {
			t.Fatalf("Upload() error = %v", err)
		}
		name2, err := svc.Upload(ctx, "same.png", []byte("data"))
		if err != nil {
			t.Fatalf("Upload() error = %v", err)
		}
		if name1 == name2 {
			t.Error("expected unique object names for repeat uploads")
		}
	})
}

func TestService_Fetch(t *testing.T) {
	store := newMemoryObjectStore()
	svc := NewService(store)
	ctx := context.Background()

	name, err := svc.Upload(ctx, "me.jpg", []byte("jpg-bytes"))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	data, contentType, err := svc.Fetch(ctx, name)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if string(data) != "jpg-bytes" {
		t.Errorf("unexpected data %q", data)
	}
	if contentType != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %q", contentType)
	}

	t.Run("unknown object", func(t *testing.T) {
		_, _, err := svc.Fetch(ctx, "missing.png")
		if err == nil {
			t.Error("expected error for unknown object")
		}
	})
}

func TestService_Remove(t *testing.T) {
	store := newMemoryObjectStore()
	svc := NewService(store)
	ctx := context.Background()

	name, err := svc.Upload(ctx, "me.jpg", []byte("jpg-bytes"))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	if err := svc.Remove(ctx, name); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, ok := store.objects[name]; ok {
		t.Error("object should be removed")
	}

	t.Run("remove is idempotent", func(t *testing.T) {
		if err := svc.Remove(ctx, name); err != nil {
			t.Errorf("Remove() second call error = %v", err)
		}
	})
}
