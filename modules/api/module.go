package api

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ElijahAA/HackiethonBackend/modules/avatar"
	"github.com/ElijahAA/HackiethonBackend/modules/task"
	"github.com/ElijahAA/HackiethonBackend/modules/user"
	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
)

// APIModule is the HTTP API module.
type APIModule struct {
	app             *fiber.App
	port            string
	userContainer   mono.ServiceContainer
	socialContainer mono.ServiceContainer
	userAdapter     user.UserPort
	taskAdapter     task.TaskPort
	avatarAdapter   avatar.AvatarPort
	redisClient     *redis.Client
	limiter         *Limiter
}

// Compile-time interface checks.
var _ mono.Module = (*APIModule)(nil)
var _ mono.DependentModule = (*APIModule)(nil)
var _ mono.HealthCheckableModule = (*APIModule)(nil)

// NewModule creates a new APIModule.
func NewModule() *APIModule {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	return &APIModule{port: port}
}

// Name returns the module name.
func (m *APIModule) Name() string {
	return "api"
}

// Dependencies returns the list of module dependencies.
func (m *APIModule) Dependencies() []string {
	return []string{"user", "social", "task", "avatar"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *APIModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "user":
		m.userContainer = container
		m.userAdapter = user.NewUserAdapter(container)
	case "social":
		m.socialContainer = container
	case "task":
		m.taskAdapter = task.NewTaskAdapter(container)
	case "avatar":
		m.avatarAdapter = avatar.NewAvatarAdapter(container)
	}
}

// Start initializes the Fiber HTTP server.
func (m *APIModule) Start(ctx context.Context) error {
	if m.userContainer == nil {
		return fmt.Errorf("user dependency not set")
	}
	if m.socialContainer == nil {
		return fmt.Errorf("social dependency not set")
	}
	if m.taskAdapter == nil {
		return fmt.Errorf("task dependency not set")
	}
	if m.avatarAdapter == nil {
		return fmt.Errorf("avatar dependency not set")
	}

	// Rate limiting kicks in only when Redis is configured.
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		m.redisClient = redis.NewClient(&redis.Options{
			Addr:         addr,
			Password:     os.Getenv("REDIS_PASSWORD"),
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		})
		if err := m.redisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
		}
		m.limiter = NewLimiter(m.redisClient, "ratelimit:")
		log.Printf("[api] Rate limiting enabled (Redis: %s)", addr)
	}

	m.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          customErrorHandler,
		BodyLimit:             4 << 20,
	})

	m.app.Use(recover.New())
	m.app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	m.app.Use(cors.New())

	m.setupRoutes()

	go func() {
		if err := m.app.Listen(":" + m.port); err != nil {
			log.Printf("[api] HTTP server error: %v", err)
		}
	}()

	log.Printf("[api] HTTP server started on :%s", m.port)
	return nil
}

// Stop shuts down the Fiber HTTP server.
func (m *APIModule) Stop(_ context.Context) error {
	if m.redisClient != nil {
		m.redisClient.Close()
	}
	if m.app == nil {
		return nil
	}
	log.Println("[api] Shutting down HTTP server...")
	return m.app.Shutdown()
}

// Health returns the health status of the module.
func (m *APIModule) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.app != nil,
		Message: "operational",
		Details: map[string]any{
			"port":         m.port,
			"rate_limited": m.limiter != nil,
		},
	}
}

// setupRoutes configures all API routes.
func (m *APIModule) setupRoutes() {
	handlers := NewHandlers(
		m.userContainer,
		m.socialContainer,
		m.userAdapter,
		m.taskAdapter,
		m.avatarAdapter,
	)

	// Health check endpoint
	m.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"module": "api",
		})
	})

	v1 := m.app.Group("/api/v1")

	// Public auth routes, rate limited when Redis is configured
	authRoutes := v1.Group("/auth")
	authRoutes.Use(RateLimitMiddleware(m.limiter, 10, time.Minute))
	authRoutes.Post("/register", handlers.Register)
	authRoutes.Post("/login", handlers.Login)
	authRoutes.Post("/refresh", handlers.Refresh)
	authRoutes.Post("/request-password-reset", handlers.RequestPasswordReset)
	authRoutes.Post("/reset-password", handlers.ResetPassword)

	// Avatars are publicly servable by object name
	v1.Get("/avatars/:name", handlers.Avatar)

	// Protected routes (require authentication)
	protected := v1.Group("")
	protected.Use(AuthMiddleware(m.userAdapter))

	protected.Get("/me", handlers.Me)
	protected.Put("/me", handlers.UpdateMe)
	protected.Post("/me/avatar", handlers.UploadAvatar)
	protected.Get("/me/notifications", handlers.Notifications)
	protected.Get("/me/notifications/unread", handlers.UnreadCount)
	protected.Post("/me/notifications/read", handlers.MarkNotificationsRead)
	protected.Get("/me/timeline", handlers.Timeline)

	protected.Get("/users/:username", handlers.PublicProfile)
	protected.Post("/users/:username/follow", handlers.Follow)
	protected.Delete("/users/:username/follow", handlers.Unfollow)

	protected.Post("/tasks", handlers.CreateTask)
	protected.Get("/tasks", handlers.PendingTasks)
	protected.Patch("/tasks/:id", handlers.UpdateTask)
	protected.Post("/tasks/:id/complete", handlers.CompleteTask)
	protected.Delete("/tasks/:id", handlers.DeleteTask)
	protected.Post("/tasks/:id/like", handlers.LikeTask)
	protected.Delete("/tasks/:id/like", handlers.UnlikeTask)

	protected.Get("/feed", handlers.Feed)
}

// customErrorHandler handles Fiber errors.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(ErrorResponse{
		Error:   "server_error",
		Message: message,
	})
}
