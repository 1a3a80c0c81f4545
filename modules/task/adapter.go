package task

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// TaskPort is the interface the HTTP layer uses to reach task services.
type TaskPort interface {
	CreateTask(ctx context.Context, req *CreateTaskRequest) (*TaskResponse, error)
	UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*TaskResponse, error)
	CompleteTask(ctx context.Context, actorID, taskID string) (*TaskResponse, error)
	DeleteTask(ctx context.Context, actorID, taskID string) error
	PendingTasks(ctx context.Context, ownerID string) (*PendingTasksResponse, error)
	Feed(ctx context.Context, viewerID string) (*FeedResponse, error)
	Like(ctx context.Context, actorID, taskID string) error
	Unlike(ctx context.Context, actorID, taskID string) error
}

// taskAdapter wraps ServiceContainer for type-safe cross-module communication.
type taskAdapter struct {
	container mono.ServiceContainer
}

// NewTaskAdapter creates a new adapter for task services.
func NewTaskAdapter(container mono.ServiceContainer) TaskPort {
	if container == nil {
		panic("task adapter requires non-nil ServiceContainer")
	}
	return &taskAdapter{container: container}
}

// CreateTask creates a new task via the create-task service.
func (a *taskAdapter) CreateTask(ctx context.Context, req *CreateTaskRequest) (*TaskResponse, error) {
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "create-task", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, fmt.Errorf("create-task service call failed: %w", err)
	}
	return &resp, nil
}

// UpdateTask edits a task via the update-task service.
func (a *taskAdapter) UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*TaskResponse, error) {
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "update-task", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, fmt.Errorf("update-task service call failed: %w", err)
	}
	return &resp, nil
}

// CompleteTask marks a task completed via the complete-task service.
func (a *taskAdapter) CompleteTask(ctx context.Context, actorID, taskID string) (*TaskResponse, error) {
	req := CompleteTaskRequest{ActorID: actorID, TaskID: taskID}
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "complete-task", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("complete-task service call failed: %w", err)
	}
	return &resp, nil
}

// DeleteTask deletes a task via the delete-task service.
func (a *taskAdapter) DeleteTask(ctx context.Context, actorID, taskID string) error {
	req := DeleteTaskRequest{ActorID: actorID, TaskID: taskID}
	var resp DeleteTaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "delete-task", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return fmt.Errorf("delete-task service call failed: %w", err)
	}
	return nil
}

// PendingTasks lists the owner's pending tasks via the pending-tasks service.
func (a *taskAdapter) PendingTasks(ctx context.Context, ownerID string) (*PendingTasksResponse, error) {
	req := PendingTasksRequest{OwnerID: ownerID}
	var resp PendingTasksResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "pending-tasks", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("pending-tasks service call failed: %w", err)
	}
	return &resp, nil
}

// Feed composes the viewer's feed via the feed service.
func (a *taskAdapter) Feed(ctx context.Context, viewerID string) (*FeedResponse, error) {
	req := FeedRequest{ViewerID: viewerID}
	var resp FeedResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "feed", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("feed service call failed: %w", err)
	}
	return &resp, nil
}

// Like records a like via the like-task service.
func (a *taskAdapter) Like(ctx context.Context, actorID, taskID string) error {
	req := LikeRequest{ActorID: actorID, TaskID: taskID}
	var resp LikeResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "like-task", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return fmt.Errorf("like-task service call failed: %w", err)
	}
	return nil
}

// Unlike removes a like via the unlike-task service.
func (a *taskAdapter) Unlike(ctx context.Context, actorID, taskID string) error {
	req := UnlikeRequest{ActorID: actorID, TaskID: taskID}
	var resp UnlikeResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "unlike-task", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return fmt.Errorf("unlike-task service call failed: %w", err)
	}
	return nil
}
