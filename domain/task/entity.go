package task

import (
	"time"
)

// Task is a todo item owned by a single user.
// Lifecycle: pending -> completed. There is no reopen transition;
// CompletedAt is stamped exactly once when the task completes.
type Task struct {
	ID          string `gorm:"primaryKey;type:text"`
	UserID      string `gorm:"index;not null;type:text"`
	Title       string `gorm:"size:50;not null"`
	Description string `gorm:"size:140;not null"`
	Completed   bool   `gorm:"index;default:false"`
	CompletedAt *time.Time `gorm:"index"`
	CreatedAt   time.Time  `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName returns the table name for the Task entity.
func (Task) TableName() string {
	return "tasks"
}

// Reaction is a "like" by a user on a completed task.
// The composite unique index makes duplicate likes a storage-level
// conflict rather than relying on a check-then-insert race.
type Reaction struct {
	ID        string    `gorm:"primaryKey;type:text"`
	TaskID    string    `gorm:"index;uniqueIndex:idx_task_user;not null;type:text"`
	UserID    string    `gorm:"index;uniqueIndex:idx_task_user;not null;type:text"`
	CreatedAt time.Time
}

// TableName returns the table name for the Reaction entity.
func (Reaction) TableName() string {
	return "reactions"
}
