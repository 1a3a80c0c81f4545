package social

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// SocialPort is the interface other modules use to reach the follow
// graph and notification inbox.
type SocialPort interface {
	FollowingIDs(ctx context.Context, userID string) ([]string, error)
	Notify(ctx context.Context, recipientID, actorID, body string) error
}

// socialAdapter implements SocialPort using the service container.
type socialAdapter struct {
	container mono.ServiceContainer
}

// NewSocialAdapter creates a new adapter for social services.
func NewSocialAdapter(container mono.ServiceContainer) SocialPort {
	if container == nil {
		panic("social adapter requires non-nil ServiceContainer")
	}
	return &socialAdapter{container: container}
}

// FollowingIDs returns the IDs of all users the given user follows.
func (a *socialAdapter) FollowingIDs(ctx context.Context, userID string) ([]string, error) {
	req := FollowingIDsRequest{UserID: userID}
	var resp FollowingIDsResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"following-ids",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("following-ids request failed: %w", err)
	}

	return resp.UserIDs, nil
}

// Notify appends a notification for recipient attributed to actor.
func (a *socialAdapter) Notify(ctx context.Context, recipientID, actorID, body string) error {
	req := NotifyRequest{RecipientID: recipientID, ActorID: actorID, Body: body}
	var resp NotifyResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"notify",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return fmt.Errorf("notify request failed: %w", err)
	}

	return nil
}
