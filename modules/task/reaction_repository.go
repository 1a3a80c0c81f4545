package task

import (
	"errors"
	"fmt"

	domain "github.com/ElijahAA/HackiethonBackend/domain/task"
	"gorm.io/gorm"
)

var (
	// ErrAlreadyReacted is returned when the user already liked the task.
	ErrAlreadyReacted = errors.New("already reacted to this task")
	// ErrNotReacted is returned when no matching reaction exists.
	ErrNotReacted = errors.New("no reaction to remove")
)

// ReactionRepository provides access to like storage.
type ReactionRepository struct {
	db *gorm.DB
}

// NewReactionRepository creates a new reaction repository.
func NewReactionRepository(db *gorm.DB) *ReactionRepository {
	return &ReactionRepository{db: db}
}

// Create inserts a reaction. The composite unique index on
// (task_id, user_id) turns racing duplicate likes into
// ErrAlreadyReacted instead of a second row.
func (r *ReactionRepository) Create(reaction *domain.Reaction) error {
	if err := r.db.Create(reaction).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyReacted
		}
		return fmt.Errorf("failed to create reaction: %w", err)
	}
	return nil
}

// Delete removes the reaction by user on task.
func (r *ReactionRepository) Delete(taskID, userID string) error {
	result := r.db.Where("task_id = ? AND user_id = ?", taskID, userID).
		Delete(&domain.Reaction{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete reaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotReacted
	}
	return nil
}

// Exists checks whether user has reacted to task.
func (r *ReactionRepository) Exists(taskID, userID string) (bool, error) {
	var count int64
	result := r.db.Model(&domain.Reaction{}).
		Where("task_id = ? AND user_id = ?", taskID, userID).
		Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("failed to check reaction: %w", result.Error)
	}
	return count > 0, nil
}

// CountsForTasks returns the like count per task for the given tasks.
func (r *ReactionRepository) CountsForTasks(taskIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(taskIDs))
	if len(taskIDs) == 0 {
		return counts, nil
	}

	type row struct {
		TaskID string
		Count  int64
	}
	var rows []row
	result := r.db.Model(&domain.Reaction{}).
		Select("task_id, COUNT(*) AS count").
		Where("task_id IN ?", taskIDs).
		Group("task_id").
		Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to count reactions: %w", result.Error)
	}

	for _, r := range rows {
		counts[r.TaskID] = r.Count
	}
	return counts, nil
}

// LikedSet returns, for the given tasks, which ones the user has liked.
func (r *ReactionRepository) LikedSet(userID string, taskIDs []string) (map[string]bool, error) {
	liked := make(map[string]bool, len(taskIDs))
	if len(taskIDs) == 0 {
		return liked, nil
	}

	var ids []string
	result := r.db.Model(&domain.Reaction{}).
		Where("user_id = ? AND task_id IN ?", userID, taskIDs).
		Pluck("task_id", &ids)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to load liked tasks: %w", result.Error)
	}

	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}
