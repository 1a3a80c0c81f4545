package task

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	domain "github.com/ElijahAA/HackiethonBackend/domain/task"
	"github.com/ElijahAA/HackiethonBackend/events"
	"github.com/ElijahAA/HackiethonBackend/modules/social"
	"github.com/ElijahAA/HackiethonBackend/modules/user"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/gorm"
)

// TaskModule provides the task store, reaction engine and feed composer.
type TaskModule struct {
	db         *gorm.DB
	service    *TaskService
	socialPort social.SocialPort
	userPort   user.UserPort
	eventBus   mono.EventBus
	dbPath     string
}

// Compile-time interface checks.
var _ mono.Module = (*TaskModule)(nil)
var _ mono.ServiceProviderModule = (*TaskModule)(nil)
var _ mono.DependentModule = (*TaskModule)(nil)
var _ mono.HealthCheckableModule = (*TaskModule)(nil)
var _ mono.EventEmitterModule = (*TaskModule)(nil)

// NewModule creates a new TaskModule.
func NewModule() *TaskModule {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "hackiethon.db"
	}
	return &TaskModule{
		dbPath: dbPath,
	}
}

// Name returns the module name.
func (m *TaskModule) Name() string {
	return "task"
}

// Dependencies returns the list of module dependencies.
func (m *TaskModule) Dependencies() []string {
	return []string{"user", "social"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *TaskModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "user":
		m.userPort = user.NewUserAdapter(container)
	case "social":
		m.socialPort = social.NewSocialAdapter(container)
	}
}

// SetEventBus receives the application event bus.
func (m *TaskModule) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

// EmitEvents declares the events this module publishes.
func (m *TaskModule) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.TaskCompletedV1.ToBase(),
		events.TaskLikedV1.ToBase(),
	}
}

// Start initializes the database connection and runs migrations.
func (m *TaskModule) Start(_ context.Context) error {
	if m.userPort == nil {
		return fmt.Errorf("user dependency not set")
	}
	if m.socialPort == nil {
		return fmt.Errorf("social dependency not set")
	}

	db, err := user.OpenDatabase(m.dbPath)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	m.db = db

	if err := db.AutoMigrate(&domain.Task{}, &domain.Reaction{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	m.service = NewTaskService(
		NewTaskRepository(db),
		NewReactionRepository(db),
		m.socialPort,
		m.userPort,
	)

	log.Printf("[task] Module started (database: %s)", m.dbPath)
	return nil
}

// Stop shuts down the module.
func (m *TaskModule) Stop(_ context.Context) error {
	if m.db != nil {
		sqlDB, err := m.db.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
	log.Println("[task] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *TaskModule) Health(_ context.Context) mono.HealthStatus {
	if m.db == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "database not initialized",
		}
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("failed to get database connection: %v", err),
		}
	}

	if err := sqlDB.Ping(); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("database ping failed: %v", err),
		}
	}

	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"database": m.dbPath,
		},
	}
}

// RegisterServices registers request-reply services in the service container.
func (m *TaskModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "create-task", json.Unmarshal, json.Marshal, m.createTask,
	); err != nil {
		return fmt.Errorf("failed to register create-task service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get-task", json.Unmarshal, json.Marshal, m.getTask,
	); err != nil {
		return fmt.Errorf("failed to register get-task service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "update-task", json.Unmarshal, json.Marshal, m.updateTask,
	); err != nil {
		return fmt.Errorf("failed to register update-task service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "complete-task", json.Unmarshal, json.Marshal, m.completeTask,
	); err != nil {
		return fmt.Errorf("failed to register complete-task service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "delete-task", json.Unmarshal, json.Marshal, m.deleteTask,
	); err != nil {
		return fmt.Errorf("failed to register delete-task service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "pending-tasks", json.Unmarshal, json.Marshal, m.pendingTasks,
	); err != nil {
		return fmt.Errorf("failed to register pending-tasks service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "feed", json.Unmarshal, json.Marshal, m.feed,
	); err != nil {
		return fmt.Errorf("failed to register feed service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "like-task", json.Unmarshal, json.Marshal, m.likeTask,
	); err != nil {
		return fmt.Errorf("failed to register like-task service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "unlike-task", json.Unmarshal, json.Marshal, m.unlikeTask,
	); err != nil {
		return fmt.Errorf("failed to register unlike-task service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "has-liked", json.Unmarshal, json.Marshal, m.hasLiked,
	); err != nil {
		return fmt.Errorf("failed to register has-liked service: %w", err)
	}

	log.Printf("[task] Registered services: create-task, get-task, update-task, complete-task, delete-task, pending-tasks, feed, like-task, unlike-task, has-liked")
	return nil
}

// createTask handles the create-task service request.
func (m *TaskModule) createTask(ctx context.Context, req CreateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	task, err := m.service.CreateTask(ctx, req.OwnerID, req.Title, req.Description)
	if err != nil {
		return TaskResponse{}, err
	}
	return toTaskResponse(task), nil
}

// getTask handles the get-task service request.
func (m *TaskModule) getTask(ctx context.Context, req GetTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	task, err := m.service.GetTask(ctx, req.TaskID)
	if err != nil {
		return TaskResponse{}, err
	}
	return toTaskResponse(task), nil
}

// updateTask handles the update-task service request.
func (m *TaskModule) updateTask(ctx context.Context, req UpdateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	task, err := m.service.EditTask(ctx, req.ActorID, req.TaskID, req.Title, req.Description)
	if err != nil {
		return TaskResponse{}, err
	}
	return toTaskResponse(task), nil
}

// completeTask handles the complete-task service request.
func (m *TaskModule) completeTask(ctx context.Context, req CompleteTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	task, completedNow, err := m.service.CompleteTask(ctx, req.ActorID, req.TaskID)
	if err != nil {
		return TaskResponse{}, err
	}

	if completedNow && m.eventBus != nil {
		event := events.TaskCompletedEvent{
			TaskID:      task.ID,
			Title:       task.Title,
			UserID:      task.UserID,
			CompletedAt: *task.CompletedAt,
		}
		if err := events.TaskCompletedV1.Publish(m.eventBus, event, nil); err != nil {
			// Event publishing is best-effort; log but don't fail the operation
			log.Printf("[task] Warning: failed to publish TaskCompleted event for task %s: %v", task.ID, err)
		}
	}

	return toTaskResponse(task), nil
}

// deleteTask handles the delete-task service request.
func (m *TaskModule) deleteTask(ctx context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskResponse, error) {
	if err := m.service.DeleteTask(ctx, req.ActorID, req.TaskID); err != nil {
		return DeleteTaskResponse{Deleted: false, TaskID: req.TaskID}, err
	}
	return DeleteTaskResponse{Deleted: true, TaskID: req.TaskID}, nil
}

// pendingTasks handles the pending-tasks service request.
func (m *TaskModule) pendingTasks(ctx context.Context, req PendingTasksRequest, _ *mono.Msg) (PendingTasksResponse, error) {
	tasks, err := m.service.PendingTasks(ctx, req.OwnerID)
	if err != nil {
		return PendingTasksResponse{}, err
	}

	response := PendingTasksResponse{
		Tasks: make([]TaskResponse, 0, len(tasks)),
		Total: len(tasks),
	}
	for _, task := range tasks {
		response.Tasks = append(response.Tasks, toTaskResponse(task))
	}
	return response, nil
}

// feed handles the feed service request.
func (m *TaskModule) feed(ctx context.Context, req FeedRequest, _ *mono.Msg) (FeedResponse, error) {
	entries, err := m.service.Feed(ctx, req.ViewerID)
	if err != nil {
		return FeedResponse{}, err
	}
	return FeedResponse{Entries: entries, Total: len(entries)}, nil
}

// likeTask handles the like-task service request.
func (m *TaskModule) likeTask(ctx context.Context, req LikeRequest, _ *mono.Msg) (LikeResponse, error) {
	if err := m.service.Like(ctx, req.ActorID, req.TaskID); err != nil {
		return LikeResponse{}, err
	}

	if m.eventBus != nil {
		task, err := m.service.GetTask(ctx, req.TaskID)
		if err == nil {
			event := events.TaskLikedEvent{
				TaskID:  task.ID,
				OwnerID: task.UserID,
				LikerID: req.ActorID,
				LikedAt: time.Now(),
			}
			if err := events.TaskLikedV1.Publish(m.eventBus, event, nil); err != nil {
				log.Printf("[task] Warning: failed to publish TaskLiked event for task %s: %v", task.ID, err)
			}
		}
	}

	return LikeResponse{Liked: true}, nil
}

// unlikeTask handles the unlike-task service request.
func (m *TaskModule) unlikeTask(ctx context.Context, req UnlikeRequest, _ *mono.Msg) (UnlikeResponse, error) {
	if err := m.service.Unlike(ctx, req.ActorID, req.TaskID); err != nil {
		return UnlikeResponse{}, err
	}
	return UnlikeResponse{Liked: false}, nil
}

// hasLiked handles the has-liked service request.
func (m *TaskModule) hasLiked(ctx context.Context, req HasLikedRequest, _ *mono.Msg) (HasLikedResponse, error) {
	liked, err := m.service.HasLiked(ctx, req.ActorID, req.TaskID)
	if err != nil {
		return HasLikedResponse{}, err
	}
	return HasLikedResponse{Liked: liked}, nil
}

// toTaskResponse converts a Task entity to a TaskResponse.
func toTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		OwnerID:     task.UserID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		CompletedAt: task.CompletedAt,
		CreatedAt:   task.CreatedAt,
	}
}
