package task

import "time"

// CreateTaskRequest is the request for creating a task.
type CreateTaskRequest struct {
	OwnerID     string `json:"owner_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// GetTaskRequest is the request for fetching a task.
type GetTaskRequest struct {
	TaskID string `json:"task_id"`
}

// TaskResponse represents a task in responses.
type TaskResponse struct {
	ID          string     `json:"id"`
	OwnerID     string     `json:"owner_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// UpdateTaskRequest is the request for editing a task.
type UpdateTaskRequest struct {
	ActorID     string  `json:"actor_id"`
	TaskID      string  `json:"task_id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CompleteTaskRequest is the request for completing a task.
type CompleteTaskRequest struct {
	ActorID string `json:"actor_id"`
	TaskID  string `json:"task_id"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	ActorID string `json:"actor_id"`
	TaskID  string `json:"task_id"`
}

// DeleteTaskResponse is the response after deleting a task.
type DeleteTaskResponse struct {
	Deleted bool   `json:"deleted"`
	TaskID  string `json:"task_id"`
}

// PendingTasksRequest is the request for a user's pending tasks.
type PendingTasksRequest struct {
	OwnerID string `json:"owner_id"`
}

// PendingTasksResponse carries pending tasks in creation order.
type PendingTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// FeedRequest is the request for a viewer's feed.
type FeedRequest struct {
	ViewerID string `json:"viewer_id"`
}

// FeedEntry is a single feed item: a completed task annotated with like
// data for the viewer.
type FeedEntry struct {
	TaskID        string    `json:"task_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	OwnerID       string    `json:"owner_id"`
	OwnerUsername string    `json:"owner_username"`
	CompletedAt   time.Time `json:"completed_at"`
	Likes         int64     `json:"likes"`
	Liked         bool      `json:"liked"`
}

// FeedResponse carries feed entries, most recently completed first.
type FeedResponse struct {
	Entries []FeedEntry `json:"entries"`
	Total   int         `json:"total"`
}

// LikeRequest is the request for liking a task.
type LikeRequest struct {
	ActorID string `json:"actor_id"`
	TaskID  string `json:"task_id"`
}

// LikeResponse is the response after a like.
type LikeResponse struct {
	Liked bool `json:"liked"`
}

// UnlikeRequest is the request for removing a like.
type UnlikeRequest struct {
	ActorID string `json:"actor_id"`
	TaskID  string `json:"task_id"`
}

// UnlikeResponse is the response after an unlike.
type UnlikeResponse struct {
	Liked bool `json:"liked"`
}

// HasLikedRequest is the request for a reaction existence check.
type HasLikedRequest struct {
	ActorID string `json:"actor_id"`
	TaskID  string `json:"task_id"`
}

// HasLikedResponse is the response to a reaction existence check.
type HasLikedResponse struct {
	Liked bool `json:"liked"`
}
