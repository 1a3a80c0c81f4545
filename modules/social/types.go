package social

import "time"

// FollowRequest is the request for creating a follow edge.
type FollowRequest struct {
	FollowerID string `json:"follower_id"`
	TargetID   string `json:"target_id"`
}

// FollowResponse is the response after a follow attempt.
// Created is false when the edge already existed.
type FollowResponse struct {
	Following bool `json:"following"`
	Created   bool `json:"created"`
}

// UnfollowRequest is the request for removing a follow edge.
type UnfollowRequest struct {
	FollowerID string `json:"follower_id"`
	TargetID   string `json:"target_id"`
}

// UnfollowResponse is the response after an unfollow.
type UnfollowResponse struct {
	Following bool `json:"following"`
}

// IsFollowingRequest is the request for a follow-edge existence check.
type IsFollowingRequest struct {
	FollowerID string `json:"follower_id"`
	TargetID   string `json:"target_id"`
}

// IsFollowingResponse is the response to an existence check.
type IsFollowingResponse struct {
	Following bool `json:"following"`
}

// FollowingIDsRequest is the request for a user's followed IDs.
type FollowingIDsRequest struct {
	UserID string `json:"user_id"`
}

// FollowingIDsResponse carries the followed user IDs.
type FollowingIDsResponse struct {
	UserIDs []string `json:"user_ids"`
}

// FollowStatsRequest is the request for follower/following counts.
type FollowStatsRequest struct {
	UserID string `json:"user_id"`
}

// FollowStatsResponse carries follower/following counts.
type FollowStatsResponse struct {
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
}

// NotifyRequest is the request for appending a notification.
type NotifyRequest struct {
	RecipientID string `json:"recipient_id"`
	ActorID     string `json:"actor_id"`
	Body        string `json:"body"`
}

// NotifyResponse is the response after appending a notification.
type NotifyResponse struct {
	Notified bool `json:"notified"`
}

// NotificationView is a notification with its body resolved against the
// actor's current profile.
type NotificationView struct {
	ID            string    `json:"id"`
	ActorID       string    `json:"actor_id"`
	ActorUsername string    `json:"actor_username,omitempty"`
	Body          string    `json:"body"`
	CreatedAt     time.Time `json:"created_at"`
}

// NotificationsRequest is the request for recent notifications.
type NotificationsRequest struct {
	RecipientID string `json:"recipient_id"`
	Limit       int    `json:"limit,omitempty"`
}

// NotificationsResponse carries recent notifications, newest first.
type NotificationsResponse struct {
	Notifications []NotificationView `json:"notifications"`
	Total         int                `json:"total"`
}

// UnreadCountRequest is the request for the unread notification count.
type UnreadCountRequest struct {
	UserID string `json:"user_id"`
}

// UnreadCountResponse carries the unread notification count.
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

// TimelineRequest is the request for recent timeline entries.
type TimelineRequest struct {
	UserID string `json:"user_id"`
	Limit  int    `json:"limit,omitempty"`
}

// TimelineEntryView is a single timeline entry in responses.
type TimelineEntryView struct {
	ID        string    `json:"id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// TimelineResponse carries recent timeline entries, newest first.
type TimelineResponse struct {
	Entries []TimelineEntryView `json:"entries"`
	Total   int                 `json:"total"`
}
