package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/ElijahAA/HackiethonBackend/domain/task"
	"github.com/ElijahAA/HackiethonBackend/modules/social"
	"github.com/ElijahAA/HackiethonBackend/modules/user"
	"github.com/google/uuid"
)

var (
	// ErrForbidden is returned when a non-owner attempts to modify a task.
	// The operation is rejected with no state change.
	ErrForbidden = errors.New("not the task owner")
	// ErrMissingField is returned when a required task field is empty.
	ErrMissingField = errors.New("missing required field")
	// ErrTitleTooLong is returned when the title exceeds 50 characters.
	ErrTitleTooLong = errors.New("title must be at most 50 characters")
	// ErrDescriptionTooLong is returned when the description exceeds 140 characters.
	ErrDescriptionTooLong = errors.New("description must be at most 140 characters")
	// ErrTaskNotCompleted is returned when liking a task that is still pending.
	ErrTaskNotCompleted = errors.New("task is not completed")
)

// likedYourTaskTemplate builds the stored notification body for a like.
// The actor placeholder resolves lazily at read time; the task title is
// baked in at write time.
func likedYourTaskTemplate(title string) string {
	return fmt.Sprintf("%s liked your task %q", social.PlaceholderFullName, title)
}

// TaskService handles the task lifecycle, reactions and the feed.
type TaskService struct {
	tasks      *TaskRepository
	reactions  *ReactionRepository
	socialPort social.SocialPort
	userPort   user.UserPort
}

// NewTaskService creates a new TaskService.
func NewTaskService(
	tasks *TaskRepository,
	reactions *ReactionRepository,
	socialPort social.SocialPort,
	userPort user.UserPort,
) *TaskService {
	return &TaskService{
		tasks:      tasks,
		reactions:  reactions,
		socialPort: socialPort,
		userPort:   userPort,
	}
}

// CreateTask inserts a pending task owned by the caller.
func (s *TaskService) CreateTask(_ context.Context, ownerID, title, description string) (*domain.Task, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title", ErrMissingField)
	}
	if description == "" {
		return nil, fmt.Errorf("%w: description", ErrMissingField)
	}
	if len(title) > 50 {
		return nil, ErrTitleTooLong
	}
	if len(description) > 140 {
		return nil, ErrDescriptionTooLong
	}

	now := time.Now()
	task := &domain.Task{
		ID:          uuid.New().String(),
		UserID:      ownerID,
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.tasks.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

// GetTask retrieves a task by ID.
func (s *TaskService) GetTask(_ context.Context, taskID string) (*domain.Task, error) {
	return s.tasks.FindByID(taskID)
}

// EditTask mutates title and/or description. Allowed in any state;
// completion state never changes here. Owner only.
func (s *TaskService) EditTask(_ context.Context, actorID, taskID string, title, description *string) (*domain.Task, error) {
	task, err := s.tasks.FindByID(taskID)
	if err != nil {
		return nil, err
	}
	if task.UserID != actorID {
		return nil, ErrForbidden
	}

	if title != nil {
		if *title == "" {
			return nil, fmt.Errorf("%w: title", ErrMissingField)
		}
		if len(*title) > 50 {
			return nil, ErrTitleTooLong
		}
		task.Title = *title
	}
	if description != nil {
		if *description == "" {
			return nil, fmt.Errorf("%w: description", ErrMissingField)
		}
		if len(*description) > 140 {
			return nil, ErrDescriptionTooLong
		}
		task.Description = *description
	}
	task.UpdatedAt = time.Now()

	if err := s.tasks.Save(task); err != nil {
		return nil, err
	}
	return task, nil
}

// CompleteTask marks a task completed, stamping the completion
// timestamp exactly once. Completing an already-completed task is an
// idempotent no-op that leaves the timestamp untouched. Owner only.
// The second return value reports whether this call performed the
// transition.
func (s *TaskService) CompleteTask(_ context.Context, actorID, taskID string) (*domain.Task, bool, error) {
	task, err := s.tasks.FindByID(taskID)
	if err != nil {
		return nil, false, err
	}
	if task.UserID != actorID {
		return nil, false, ErrForbidden
	}

	if task.Completed {
		return task, false, nil
	}

	now := time.Now()
	task.Completed = true
	task.CompletedAt = &now
	task.UpdatedAt = now

	if err := s.tasks.Save(task); err != nil {
		return nil, false, err
	}
	return task, true, nil
}

// DeleteTask removes a task and its reactions. Owner only.
func (s *TaskService) DeleteTask(_ context.Context, actorID, taskID string) error {
	task, err := s.tasks.FindByID(taskID)
	if err != nil {
		return err
	}
	if task.UserID != actorID {
		return ErrForbidden
	}

	return s.tasks.DeleteWithReactions(taskID)
}

// PendingTasks returns the user's own incomplete tasks in creation order.
func (s *TaskService) PendingTasks(_ context.Context, ownerID string) ([]*domain.Task, error) {
	return s.tasks.FindPendingByUser(ownerID)
}

// Feed returns the union of the viewer's own completed tasks and those
// of users the viewer follows, most recently completed first. Entries
// are de-duplicated by task ID and annotated with like data for the
// viewer.
func (s *TaskService) Feed(ctx context.Context, viewerID string) ([]FeedEntry, error) {
	followedIDs, err := s.socialPort.FollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load follow graph: %w", err)
	}

	ownerIDs := append(followedIDs, viewerID)
	tasks, err := s.tasks.FindCompletedByUsers(ownerIDs)
	if err != nil {
		return nil, err
	}

	// Ownership is exclusive, so a task can only arrive once; keep the
	// de-duplication anyway so the union stays a set whatever the query
	// strategy.
	seen := make(map[string]bool, len(tasks))
	deduped := tasks[:0]
	taskIDs := make([]string, 0, len(tasks))
	for _, t := range tasks {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		deduped = append(deduped, t)
		taskIDs = append(taskIDs, t.ID)
	}

	counts, err := s.reactions.CountsForTasks(taskIDs)
	if err != nil {
		return nil, err
	}
	liked, err := s.reactions.LikedSet(viewerID, taskIDs)
	if err != nil {
		return nil, err
	}

	// Owners repeat across feed entries; resolve each username once.
	usernames := make(map[string]string)
	entries := make([]FeedEntry, 0, len(deduped))
	for _, t := range deduped {
		username, cached := usernames[t.UserID]
		if !cached {
			owner, err := s.userPort.GetUser(ctx, t.UserID)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve task owner: %w", err)
			}
			username = owner.Username
			usernames[t.UserID] = username
		}

		entries = append(entries, FeedEntry{
			TaskID:        t.ID,
			Title:         t.Title,
			Description:   t.Description,
			OwnerID:       t.UserID,
			OwnerUsername: username,
			CompletedAt:   *t.CompletedAt,
			Likes:         counts[t.ID],
			Liked:         liked[t.ID],
		})
	}
	return entries, nil
}

// Like records the actor's like on a completed task and notifies the
// task's owner. Liking your own task is allowed but produces no
// self-notification.
func (s *TaskService) Like(ctx context.Context, actorID, taskID string) error {
	task, err := s.tasks.FindByID(taskID)
	if err != nil {
		return err
	}
	if !task.Completed {
		return ErrTaskNotCompleted
	}

	exists, err := s.reactions.Exists(taskID, actorID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyReacted
	}

	if err := s.reactions.Create(&domain.Reaction{
		ID:        uuid.New().String(),
		TaskID:    taskID,
		UserID:    actorID,
		CreatedAt: time.Now(),
	}); err != nil {
		return err
	}

	if task.UserID != actorID {
		if err := s.socialPort.Notify(ctx, task.UserID, actorID, likedYourTaskTemplate(task.Title)); err != nil {
			return fmt.Errorf("failed to notify task owner: %w", err)
		}
	}
	return nil
}

// Unlike removes the actor's like. No notification side effect.
func (s *TaskService) Unlike(_ context.Context, actorID, taskID string) error {
	return s.reactions.Delete(taskID, actorID)
}

// HasLiked checks whether the actor has liked the task.
func (s *TaskService) HasLiked(_ context.Context, actorID, taskID string) (bool, error) {
	return s.reactions.Exists(taskID, actorID)
}
