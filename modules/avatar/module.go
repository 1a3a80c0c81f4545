package avatar

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// AvatarModule provides profile image storage backed by NATS JetStream
// Object Store.
type AvatarModule struct {
	store   *JetStreamObjectStore
	service *Service
	natsURL string
	bucket  string
}

// Compile-time interface checks.
var _ mono.Module = (*AvatarModule)(nil)
var _ mono.ServiceProviderModule = (*AvatarModule)(nil)
var _ mono.HealthCheckableModule = (*AvatarModule)(nil)

// NewModule creates a new AvatarModule.
func NewModule() *AvatarModule {
	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		natsURL = "nats://localhost:4222"
	}
	bucket := os.Getenv("NATS_BUCKET")
	if bucket == "" {
		bucket = "avatars"
	}
	return &AvatarModule{
		natsURL: natsURL,
		bucket:  bucket,
	}
}

// Name returns the module name.
func (m *AvatarModule) Name() string {
	return "avatar"
}

// Start initializes the module and connects to NATS JetStream.
func (m *AvatarModule) Start(ctx context.Context) error {
	var err error
	m.store, err = NewJetStreamObjectStore(m.natsURL, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to create object store: %w", err)
	}

	if err := m.store.Init(ctx); err != nil {
		m.store.Close()
		return fmt.Errorf("failed to initialize object store: %w", err)
	}

	m.service = NewService(m.store)

	log.Printf("[avatar] Module started (NATS: %s, bucket: %s)", m.natsURL, m.bucket)
	return nil
}

// Stop shuts down the module.
func (m *AvatarModule) Stop(_ context.Context) error {
	if m.store != nil {
		m.store.Close()
	}
	log.Println("[avatar] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *AvatarModule) Health(_ context.Context) mono.HealthStatus {
	healthy := m.store != nil && m.store.IsConnected()
	message := "connected"
	if !healthy {
		message = "disconnected"
	}
	return mono.HealthStatus{
		Healthy: healthy,
		Message: message,
		Details: map[string]any{
			"nats_url": m.natsURL,
			"bucket":   m.bucket,
		},
	}
}

// RegisterServices registers request-reply services in the service container.
func (m *AvatarModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "upload-avatar", json.Unmarshal, json.Marshal, m.uploadAvatar,
	); err != nil {
		return fmt.Errorf("failed to register upload-avatar service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "fetch-avatar", json.Unmarshal, json.Marshal, m.fetchAvatar,
	); err != nil {
		return fmt.Errorf("failed to register fetch-avatar service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "remove-avatar", json.Unmarshal, json.Marshal, m.removeAvatar,
	); err != nil {
		return fmt.Errorf("failed to register remove-avatar service: %w", err)
	}

	log.Printf("[avatar] Registered services: upload-avatar, fetch-avatar, remove-avatar")
	return nil
}

// uploadAvatar handles the upload-avatar service request.
func (m *AvatarModule) uploadAvatar(ctx context.Context, req UploadRequest, _ *mono.Msg) (UploadResponse, error) {
	name, err := m.service.Upload(ctx, req.Filename, req.Data)
	if err != nil {
		return UploadResponse{}, err
	}
	return UploadResponse{Name: name}, nil
}

// fetchAvatar handles the fetch-avatar service request.
func (m *AvatarModule) fetchAvatar(ctx context.Context, req FetchRequest, _ *mono.Msg) (FetchResponse, error) {
	data, contentType, err := m.service.Fetch(ctx, req.Name)
	if err != nil {
		return FetchResponse{}, err
	}
	return FetchResponse{Data: data, ContentType: contentType}, nil
}

// removeAvatar handles the remove-avatar service request.
func (m *AvatarModule) removeAvatar(ctx context.Context, req RemoveRequest, _ *mono.Msg) (RemoveResponse, error) {
	if err := m.service.Remove(ctx, req.Name); err != nil {
		return RemoveResponse{Removed: false}, err
	}
	return RemoveResponse{Removed: true}, nil
}
