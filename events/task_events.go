package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// TaskCompletedEvent is emitted when a task transitions to completed.
type TaskCompletedEvent struct {
	TaskID      string    `json:"task_id"`
	Title       string    `json:"title"`
	UserID      string    `json:"user_id"`
	CompletedAt time.Time `json:"completed_at"`
}

// TaskCompletedV1 is the typed event definition for task completion.
// Subject: events.task.v1.task-completed
var TaskCompletedV1 = helper.EventDefinition[TaskCompletedEvent](
	"task", "TaskCompleted", "v1",
)

// TaskLikedEvent is emitted when a user likes a completed task.
type TaskLikedEvent struct {
	TaskID  string    `json:"task_id"`
	OwnerID string    `json:"owner_id"`
	LikerID string    `json:"liker_id"`
	LikedAt time.Time `json:"liked_at"`
}

// TaskLikedV1 is the typed event definition for task likes.
// Subject: events.task.v1.task-liked
var TaskLikedV1 = helper.EventDefinition[TaskLikedEvent](
	"task", "TaskLiked", "v1",
)
