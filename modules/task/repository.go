package task

import (
	"errors"
	"fmt"

	domain "github.com/ElijahAA/HackiethonBackend/domain/task"
	"gorm.io/gorm"
)

// ErrTaskNotFound is returned when a task is not found.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository provides access to task storage.
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository.
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create saves a new task to the database.
func (r *TaskRepository) Create(task *domain.Task) error {
	if err := r.db.Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// FindByID retrieves a task by its ID.
func (r *TaskRepository) FindByID(id string) (*domain.Task, error) {
	var task domain.Task
	if err := r.db.First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &task, nil
}

// Save persists changes to an existing task.
func (r *TaskRepository) Save(task *domain.Task) error {
	if err := r.db.Save(task).Error; err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}
	return nil
}

// DeleteWithReactions removes a task and all reactions on it in one
// transaction, so no orphaned reactions survive the task.
func (r *TaskRepository) DeleteWithReactions(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&domain.Reaction{}).Error; err != nil {
			return fmt.Errorf("failed to delete reactions: %w", err)
		}

		result := tx.Delete(&domain.Task{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete task: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrTaskNotFound
		}
		return nil
	})
}

// FindPendingByUser retrieves a user's incomplete tasks in creation order.
func (r *TaskRepository) FindPendingByUser(userID string) ([]*domain.Task, error) {
	var tasks []*domain.Task
	result := r.db.Where("user_id = ? AND completed = ?", userID, false).
		Order("created_at ASC").
		Find(&tasks)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find pending tasks: %w", result.Error)
	}
	return tasks, nil
}

// FindCompletedByUsers retrieves completed tasks owned by any of the
// given users, most recently completed first. Rows with a null
// completion timestamp are filtered out even if the flag is set;
// the timestamp is stamped atomically with the flag, so such rows
// would be corrupt.
func (r *TaskRepository) FindCompletedByUsers(userIDs []string) ([]*domain.Task, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var tasks []*domain.Task
	result := r.db.Where("user_id IN ? AND completed = ? AND completed_at IS NOT NULL", userIDs, true).
		Order("completed_at DESC").
		Find(&tasks)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find completed tasks: %w", result.Error)
	}
	return tasks, nil
}
