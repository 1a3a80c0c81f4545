package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// UserFollowedEvent is emitted when a new follow edge is created.
// Idempotent re-follows do not emit.
type UserFollowedEvent struct {
	FollowerID string    `json:"follower_id"`
	FollowedID string    `json:"followed_id"`
	FollowedAt time.Time `json:"followed_at"`
}

// UserFollowedV1 is the typed event definition for follows.
// Subject: events.social.v1.user-followed
var UserFollowedV1 = helper.EventDefinition[UserFollowedEvent](
	"social", "UserFollowed", "v1",
)
