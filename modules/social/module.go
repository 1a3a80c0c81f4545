package social

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	domain "github.com/ElijahAA/HackiethonBackend/domain/social"
	"github.com/ElijahAA/HackiethonBackend/events"
	"github.com/ElijahAA/HackiethonBackend/modules/user"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/gorm"
)

// SocialModule provides the follow graph, timeline and notification stores.
type SocialModule struct {
	db       *gorm.DB
	service  *SocialService
	userPort user.UserPort
	eventBus mono.EventBus
	dbPath   string
}

// Compile-time interface checks.
var _ mono.Module = (*SocialModule)(nil)
var _ mono.ServiceProviderModule = (*SocialModule)(nil)
var _ mono.DependentModule = (*SocialModule)(nil)
var _ mono.HealthCheckableModule = (*SocialModule)(nil)
var _ mono.EventEmitterModule = (*SocialModule)(nil)
var _ mono.EventConsumerModule = (*SocialModule)(nil)

// NewModule creates a new SocialModule.
func NewModule() *SocialModule {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "hackiethon.db"
	}
	return &SocialModule{
		dbPath: dbPath,
	}
}

// Name returns the module name.
func (m *SocialModule) Name() string {
	return "social"
}

// Dependencies returns the list of module dependencies.
func (m *SocialModule) Dependencies() []string {
	return []string{"user"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *SocialModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	if dependency == "user" {
		m.userPort = user.NewUserAdapter(container)
	}
}

// SetEventBus receives the application event bus.
func (m *SocialModule) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

// EmitEvents declares the events this module publishes.
func (m *SocialModule) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.UserFollowedV1.ToBase(),
	}
}

// RegisterEventConsumers subscribes to task events so completions show up
// on the owner's timeline.
func (m *SocialModule) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskCompletedV1, m.handleTaskCompleted, m); err != nil {
		return fmt.Errorf("failed to register TaskCompleted consumer: %w", err)
	}

	log.Printf("[social] Registered event consumers: TaskCompleted")
	return nil
}

// Start initializes the database connection and runs migrations.
func (m *SocialModule) Start(_ context.Context) error {
	if m.userPort == nil {
		return fmt.Errorf("user dependency not set")
	}

	db, err := user.OpenDatabase(m.dbPath)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	m.db = db

	if err := db.AutoMigrate(&domain.Follow{}, &domain.TimelineEntry{}, &domain.Notification{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	m.service = NewSocialService(
		NewFollowRepository(db),
		NewTimelineRepository(db),
		NewNotificationRepository(db),
		m.userPort,
	)

	log.Printf("[social] Module started (database: %s)", m.dbPath)
	return nil
}

// Stop shuts down the module.
func (m *SocialModule) Stop(_ context.Context) error {
	if m.db != nil {
		sqlDB, err := m.db.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
	log.Println("[social] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *SocialModule) Health(_ context.Context) mono.HealthStatus {
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
func (m *SocialModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "follow", json.Unmarshal, json.Marshal, m.handleFollow,
	); err != nil {
		return fmt.Errorf("failed to register follow service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "unfollow", json.Unmarshal, json.Marshal, m.handleUnfollow,
	); err != nil {
		return fmt.Errorf("failed to register unfollow service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "is-following", json.Unmarshal, json.Marshal, m.handleIsFollowing,
	); err != nil {
		return fmt.Errorf("failed to register is-following service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "following-ids", json.Unmarshal, json.Marshal, m.handleFollowingIDs,
	); err != nil {
		return fmt.Errorf("failed to register following-ids service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "follow-stats", json.Unmarshal, json.Marshal, m.handleFollowStats,
	); err != nil {
		return fmt.Errorf("failed to register follow-stats service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "notify", json.Unmarshal, json.Marshal, m.handleNotify,
	); err != nil {
		return fmt.Errorf("failed to register notify service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "recent-notifications", json.Unmarshal, json.Marshal, m.handleRecentNotifications,
	); err != nil {
		return fmt.Errorf("failed to register recent-notifications service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "unread-count", json.Unmarshal, json.Marshal, m.handleUnreadCount,
	); err != nil {
		return fmt.Errorf("failed to register unread-count service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "recent-timeline", json.Unmarshal, json.Marshal, m.handleRecentTimeline,
	); err != nil {
		return fmt.Errorf("failed to register recent-timeline service: %w", err)
	}

	log.Printf("[social] Registered services: follow, unfollow, is-following, following-ids, follow-stats, notify, recent-notifications, unread-count, recent-timeline")
	return nil
}

// handleFollow handles the follow service request.
func (m *SocialModule) handleFollow(ctx context.Context, req FollowRequest, _ *mono.Msg) (FollowResponse, error) {
	created, err := m.service.Follow(ctx, req.FollowerID, req.TargetID)
	if err != nil {
		return FollowResponse{}, err
	}

	if created && m.eventBus != nil {
		event := events.UserFollowedEvent{
			FollowerID: req.FollowerID,
			FollowedID: req.TargetID,
		}
		if err := events.UserFollowedV1.Publish(m.eventBus, event, nil); err != nil {
			// Event publishing is best-effort; log but don't fail the operation
			log.Printf("[social] Warning: failed to publish UserFollowed event: %v", err)
		}
	}

	return FollowResponse{Following: true, Created: created}, nil
}

// handleUnfollow handles the unfollow service request.
func (m *SocialModule) handleUnfollow(ctx context.Context, req UnfollowRequest, _ *mono.Msg) (UnfollowResponse, error) {
	if err := m.service.Unfollow(ctx, req.FollowerID, req.TargetID); err != nil {
		return UnfollowResponse{}, err
	}
	return UnfollowResponse{Following: false}, nil
}

// handleIsFollowing handles the is-following service request.
func (m *SocialModule) handleIsFollowing(ctx context.Context, req IsFollowingRequest, _ *mono.Msg) (IsFollowingResponse, error) {
	following, err := m.service.IsFollowing(ctx, req.FollowerID, req.TargetID)
	if err != nil {
		return IsFollowingResponse{}, err
	}
	return IsFollowingResponse{Following: following}, nil
}

// handleFollowingIDs handles the following-ids service request.
func (m *SocialModule) handleFollowingIDs(ctx context.Context, req FollowingIDsRequest, _ *mono.Msg) (FollowingIDsResponse, error) {
	ids, err := m.service.FollowingIDs(ctx, req.UserID)
	if err != nil {
		return FollowingIDsResponse{}, err
	}
	return FollowingIDsResponse{UserIDs: ids}, nil
}

// handleFollowStats handles the follow-stats service request.
func (m *SocialModule) handleFollowStats(ctx context.Context, req FollowStatsRequest, _ *mono.Msg) (FollowStatsResponse, error) {
	followers, following, err := m.service.FollowStats(ctx, req.UserID)
	if err != nil {
		return FollowStatsResponse{}, err
	}
	return FollowStatsResponse{Followers: followers, Following: following}, nil
}

// handleNotify handles the notify service request.
func (m *SocialModule) handleNotify(ctx context.Context, req NotifyRequest, _ *mono.Msg) (NotifyResponse, error) {
	if err := m.service.Notify(ctx, req.RecipientID, req.ActorID, req.Body); err != nil {
		return NotifyResponse{}, err
	}
	return NotifyResponse{Notified: true}, nil
}

// handleRecentNotifications handles the recent-notifications service request.
func (m *SocialModule) handleRecentNotifications(ctx context.Context, req NotificationsRequest, _ *mono.Msg) (NotificationsResponse, error) {
	views, err := m.service.RecentNotifications(ctx, req.RecipientID, req.Limit)
	if err != nil {
		return NotificationsResponse{}, err
	}
	return NotificationsResponse{Notifications: views, Total: len(views)}, nil
}

// handleUnreadCount handles the unread-count service request.
func (m *SocialModule) handleUnreadCount(ctx context.Context, req UnreadCountRequest, _ *mono.Msg) (UnreadCountResponse, error) {
	count, err := m.service.UnreadCount(ctx, req.UserID)
	if err != nil {
		return UnreadCountResponse{}, err
	}
	return UnreadCountResponse{Count: count}, nil
}

// handleRecentTimeline handles the recent-timeline service request.
func (m *SocialModule) handleRecentTimeline(ctx context.Context, req TimelineRequest, _ *mono.Msg) (TimelineResponse, error) {
	entries, err := m.service.RecentTimeline(ctx, req.UserID, req.Limit)
	if err != nil {
		return TimelineResponse{}, err
	}

	response := TimelineResponse{
		Entries: make([]TimelineEntryView, 0, len(entries)),
		Total:   len(entries),
	}
	for _, entry := range entries {
		response.Entries = append(response.Entries, TimelineEntryView{
			ID:        entry.ID,
			Body:      entry.Body,
			CreatedAt: entry.CreatedAt,
		})
	}
	return response, nil
}

// handleTaskCompleted appends a timeline entry when the owner completes a task.
func (m *SocialModule) handleTaskCompleted(ctx context.Context, event events.TaskCompletedEvent, _ *mono.Msg) error {
	body := fmt.Sprintf("You completed %q", event.Title)
	if err := m.service.AppendTimeline(ctx, event.UserID, body); err != nil {
		return fmt.Errorf("failed to log task completion: %w", err)
	}
	return nil
}
