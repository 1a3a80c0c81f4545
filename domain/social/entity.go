package social

import (
	"time"
)

// Follow is a directed edge in the follow graph: follower sees the
// followed user's completed tasks in their feed. Edges are created and
// deleted, never updated.
type Follow struct {
	ID         string    `gorm:"primaryKey;type:text"`
	FollowerID string    `gorm:"index;uniqueIndex:idx_follower_followed;not null;type:text"`
	FollowedID string    `gorm:"index;uniqueIndex:idx_follower_followed;not null;type:text"`
	CreatedAt  time.Time
}

// TableName returns the table name for the Follow entity.
func (Follow) TableName() string {
	return "follows"
}

// TimelineEntry is an append-only log line of a user's own actions.
// The body is pre-formatted by the caller; no placeholder resolution.
type TimelineEntry struct {
	ID        string    `gorm:"primaryKey;type:text"`
	UserID    string    `gorm:"index;not null;type:text"`
	Body      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName returns the table name for the TimelineEntry entity.
func (TimelineEntry) TableName() string {
	return "timeline_entries"
}

// Notification is an inbox entry caused by another user's action.
// Body may contain actor placeholders ({actor_username}, {actor_name},
// {actor_full_name}) that are stored verbatim and resolved at read time
// against the actor's current profile.
type Notification struct {
	ID          string    `gorm:"primaryKey;type:text"`
	RecipientID string    `gorm:"index;not null;type:text"`
	ActorID     string    `gorm:"index;not null;type:text"`
	Body        string    `gorm:"not null"`
	CreatedAt   time.Time `gorm:"index"`
}

// TableName returns the table name for the Notification entity.
func (Notification) TableName() string {
	return "notifications"
}
