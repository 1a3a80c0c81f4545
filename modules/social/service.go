package social

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	domain "github.com/ElijahAA/HackiethonBackend/domain/social"
	"github.com/ElijahAA/HackiethonBackend/modules/user"
	"github.com/google/uuid"
)

// DefaultRecentLimit caps recent timeline/notification queries when the
// caller does not specify a limit.
const DefaultRecentLimit = 10

// ErrSelfFollow is returned when a user attempts to follow themselves.
// The storage layer does not hard-block self loops; callers must check.
var ErrSelfFollow = errors.New("cannot follow yourself")

// followedYouTemplate is the stored notification body for new followers.
// Actor placeholders resolve lazily at read time.
const followedYouTemplate = PlaceholderFullName + " (@" + PlaceholderUsername + ") started following you"

// SocialService handles the follow graph, timelines and notifications.
type SocialService struct {
	follows       *FollowRepository
	timeline      *TimelineRepository
	notifications *NotificationRepository
	userPort      user.UserPort
}

// NewSocialService creates a new SocialService.
func NewSocialService(
	follows *FollowRepository,
	timeline *TimelineRepository,
	notifications *NotificationRepository,
	userPort user.UserPort,
) *SocialService {
	return &SocialService{
		follows:       follows,
		timeline:      timeline,
		notifications: notifications,
		userPort:      userPort,
	}
}

// Follow creates a follow edge from follower to target. It is
// idempotent: following an already-followed user is a no-op and produces
// no second notification. On first creation it appends a timeline entry
// for the follower and a notification for the target. Returns whether a
// new edge was created.
func (s *SocialService) Follow(ctx context.Context, followerID, targetID string) (bool, error) {
	if followerID == targetID {
		return false, ErrSelfFollow
	}

	exists, err := s.follows.Exists(followerID, targetID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	// Resolve the target up front so a follow of a missing user fails
	// before any write.
	target, err := s.userPort.GetUser(ctx, targetID)
	if err != nil {
		return false, fmt.Errorf("failed to resolve followed user: %w", err)
	}

	edge := &domain.Follow{
		ID:         uuid.New().String(),
		FollowerID: followerID,
		FollowedID: targetID,
		CreatedAt:  time.Now(),
	}
	if err := s.follows.Create(edge); err != nil {
		if errors.Is(err, ErrAlreadyFollowing) {
			// Lost a race with a concurrent identical follow; the edge
			// exists, so treat this call as the idempotent no-op.
			return false, nil
		}
		return false, err
	}

	if err := s.AppendTimeline(ctx, followerID, fmt.Sprintf("You started following @%s", target.Username)); err != nil {
		return true, err
	}
	if err := s.Notify(ctx, targetID, followerID, followedYouTemplate); err != nil {
		return true, err
	}
	return true, nil
}

// Unfollow removes the follow edge if present. Idempotent, no side effects.
func (s *SocialService) Unfollow(_ context.Context, followerID, targetID string) error {
	_, err := s.follows.Delete(followerID, targetID)
	return err
}

// IsFollowing checks whether follower follows target.
func (s *SocialService) IsFollowing(_ context.Context, followerID, targetID string) (bool, error) {
	return s.follows.Exists(followerID, targetID)
}

// FollowingIDs returns the IDs of all users the given user follows.
func (s *SocialService) FollowingIDs(_ context.Context, userID string) ([]string, error) {
	return s.follows.FollowingIDs(userID)
}

// FollowStats returns follower and following counts for a user.
func (s *SocialService) FollowStats(_ context.Context, userID string) (followers, following int64, err error) {
	followers, err = s.follows.CountFollowers(userID)
	if err != nil {
		return 0, 0, err
	}
	following, err = s.follows.CountFollowing(userID)
	if err != nil {
		return 0, 0, err
	}
	return followers, following, nil
}

// Notify appends a notification for recipient attributed to actor.
// The body is stored verbatim; placeholders resolve at read time.
func (s *SocialService) Notify(_ context.Context, recipientID, actorID, body string) error {
	return s.notifications.Append(&domain.Notification{
		ID:          uuid.New().String(),
		RecipientID: recipientID,
		ActorID:     actorID,
		Body:        body,
		CreatedAt:   time.Now(),
	})
}

// RecentNotifications returns the recipient's most recent notifications,
// newest first, with actor placeholders resolved against the actor's
// current profile.
func (s *SocialService) RecentNotifications(ctx context.Context, recipientID string, limit int) ([]NotificationView, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	notifications, err := s.notifications.Recent(recipientID, limit)
	if err != nil {
		return nil, err
	}

	// Actors repeat across notifications; resolve each once.
	actors := make(map[string]*user.UserResponse)
	views := make([]NotificationView, 0, len(notifications))
	for _, n := range notifications {
		actor, cached := actors[n.ActorID]
		if !cached {
			actor, err = s.userPort.GetUser(ctx, n.ActorID)
			if err != nil {
				// Keep the stored body verbatim when the actor cannot
				// be resolved rather than dropping the notification.
				log.Printf("[social] failed to resolve actor %s: %v", n.ActorID, err)
				actor = nil
			}
			actors[n.ActorID] = actor
		}

		body := n.Body
		actorUsername := ""
		if actor != nil {
			body = ResolveBody(n.Body, actor.Username, actor.FirstName, actor.FirstName+" "+actor.LastName)
			actorUsername = actor.Username
		}

		views = append(views, NotificationView{
			ID:            n.ID,
			ActorID:       n.ActorID,
			ActorUsername: actorUsername,
			Body:          body,
			CreatedAt:     n.CreatedAt,
		})
	}
	return views, nil
}

// UnreadCount counts notifications created strictly after the
// recipient's last-read marker. An unset marker (zero time) counts
// everything as unread.
func (s *SocialService) UnreadCount(ctx context.Context, recipientID string) (int64, error) {
	recipient, err := s.userPort.GetUser(ctx, recipientID)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve recipient: %w", err)
	}
	return s.notifications.CountSince(recipientID, recipient.LastReadAt)
}

// AppendTimeline appends a pre-formatted entry to the user's own log.
func (s *SocialService) AppendTimeline(_ context.Context, userID, body string) error {
	return s.timeline.Append(&domain.TimelineEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		Body:      body,
		CreatedAt: time.Now(),
	})
}

// RecentTimeline returns the user's most recent timeline entries, newest first.
func (s *SocialService) RecentTimeline(_ context.Context, userID string, limit int) ([]*domain.TimelineEntry, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return s.timeline.Recent(userID, limit)
}
