package social

import (
	"errors"
	"fmt"

	domain "github.com/ElijahAA/HackiethonBackend/domain/social"
	"gorm.io/gorm"
)

// ErrAlreadyFollowing is returned when the follow edge already exists.
var ErrAlreadyFollowing = errors.New("already following")

// FollowRepository provides access to the follow graph.
type FollowRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new FollowRepository.
func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

// Create inserts a follow edge. The composite unique index on
// (follower_id, followed_id) turns a racing duplicate insert into
// ErrAlreadyFollowing.
func (r *FollowRepository) Create(follow *domain.Follow) error {
	if err := r.db.Create(follow).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyFollowing
		}
		return fmt.Errorf("failed to create follow edge: %w", err)
	}
	return nil
}

// Delete removes a follow edge and reports whether one existed.
func (r *FollowRepository) Delete(followerID, followedID string) (bool, error) {
	result := r.db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&domain.Follow{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete follow edge: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Exists checks whether follower follows followed.
func (r *FollowRepository) Exists(followerID, followedID string) (bool, error) {
	var count int64
	result := r.db.Model(&domain.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("failed to check follow edge: %w", result.Error)
	}
	return count > 0, nil
}

// FollowingIDs returns the IDs of all users the given user follows.
func (r *FollowRepository) FollowingIDs(followerID string) ([]string, error) {
	var ids []string
	result := r.db.Model(&domain.Follow{}).
		Where("follower_id = ?", followerID).
		Pluck("followed_id", &ids)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list followed users: %w", result.Error)
	}
	return ids, nil
}

// CountFollowers counts users following the given user.
func (r *FollowRepository) CountFollowers(userID string) (int64, error) {
	var count int64
	result := r.db.Model(&domain.Follow{}).Where("followed_id = ?", userID).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count followers: %w", result.Error)
	}
	return count, nil
}

// CountFollowing counts users the given user follows.
func (r *FollowRepository) CountFollowing(userID string) (int64, error) {
	var count int64
	result := r.db.Model(&domain.Follow{}).Where("follower_id = ?", userID).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count following: %w", result.Error)
	}
	return count, nil
}
