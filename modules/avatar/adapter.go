package avatar

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// AvatarPort is the interface other modules use to reach avatar services.
type AvatarPort interface {
	Upload(ctx context.Context, filename string, data []byte) (string, error)
	Fetch(ctx context.Context, name string) ([]byte, string, error)
	Remove(ctx context.Context, name string) error
}

// avatarAdapter wraps ServiceContainer for type-safe cross-module communication.
type avatarAdapter struct {
	container mono.ServiceContainer
}

// NewAvatarAdapter creates a new adapter for avatar services.
func NewAvatarAdapter(container mono.ServiceContainer) AvatarPort {
	if container == nil {
		panic("avatar adapter requires non-nil ServiceContainer")
	}
	return &avatarAdapter{container: container}
}

// Upload stores an avatar via the upload-avatar service.
func (a *avatarAdapter) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	req := UploadRequest{Filename: filename, Data: data}
	var resp UploadResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "upload-avatar", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return "", fmt.Errorf("upload-avatar service call failed: %w", err)
	}
	return resp.Name, nil
}

// Fetch retrieves avatar bytes via the fetch-avatar service.
func (a *avatarAdapter) Fetch(ctx context.Context, name string) ([]byte, string, error) {
	req := FetchRequest{Name: name}
	var resp FetchResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "fetch-avatar", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, "", fmt.Errorf("fetch-avatar service call failed: %w", err)
	}
	return resp.Data, resp.ContentType, nil
}

// Remove deletes an avatar via the remove-avatar service.
func (a *avatarAdapter) Remove(ctx context.Context, name string) error {
	req := RemoveRequest{Name: name}
	var resp RemoveResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "remove-avatar", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return fmt.Errorf("remove-avatar service call failed: %w", err)
	}
	return nil
}
