package social

import (
	"fmt"
	"time"

	domain "github.com/ElijahAA/HackiethonBackend/domain/social"
	"gorm.io/gorm"
)

// NotificationRepository provides access to per-user notification inboxes.
// Entries are append-only.
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new NotificationRepository.
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Append inserts a notification. The body is stored verbatim, including
// any actor placeholders.
func (r *NotificationRepository) Append(notification *domain.Notification) error {
	if err := r.db.Create(notification).Error; err != nil {
		return fmt.Errorf("failed to append notification: %w", err)
	}
	return nil
}

// Recent returns the most recent notifications for a recipient, newest first.
func (r *NotificationRepository) Recent(recipientID string, limit int) ([]*domain.Notification, error) {
	var notifications []*domain.Notification
	result := r.db.Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to load notifications: %w", result.Error)
	}
	return notifications, nil
}

// CountSince counts notifications created strictly after the given marker.
func (r *NotificationRepository) CountSince(recipientID string, marker time.Time) (int64, error) {
	var count int64
	result := r.db.Model(&domain.Notification{}).
		Where("recipient_id = ? AND created_at > ?", recipientID, marker).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", result.Error)
	}
	return count, nil
}
