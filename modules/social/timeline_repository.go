package social

import (
	"fmt"

	domain "github.com/ElijahAA/HackiethonBackend/domain/social"
	"gorm.io/gorm"
)

// TimelineRepository provides access to per-user activity logs.
// Entries are append-only; there is no update or delete path.
type TimelineRepository struct {
	db *gorm.DB
}

// NewTimelineRepository creates a new TimelineRepository.
func NewTimelineRepository(db *gorm.DB) *TimelineRepository {
	return &TimelineRepository{db: db}
}

// Append inserts a timeline entry.
func (r *TimelineRepository) Append(entry *domain.TimelineEntry) error {
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to append timeline entry: %w", err)
	}
	return nil
}

// Recent returns the most recent entries for a user, newest first.
func (r *TimelineRepository) Recent(userID string, limit int) ([]*domain.TimelineEntry, error) {
	var entries []*domain.TimelineEntry
	result := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to load timeline: %w", result.Error)
	}
	return entries, nil
}
