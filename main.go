package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/ElijahAA/HackiethonBackend/modules/api"
	"github.com/ElijahAA/HackiethonBackend/modules/avatar"
	"github.com/ElijahAA/HackiethonBackend/modules/social"
	"github.com/ElijahAA/HackiethonBackend/modules/task"
	"github.com/ElijahAA/HackiethonBackend/modules/user"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Hackiethon Backend - Social Todo ===")

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Register modules with the framework.
	// Order: independent modules first, then modules with dependencies
	app.Register(user.NewModule())   // Accounts, tokens, profiles (no dependencies)
	app.Register(social.NewModule()) // Follow graph, notifications, timeline (depends on user)
	app.Register(task.NewModule())   // Task lifecycle, likes, feed (depends on user, social)
	app.Register(avatar.NewModule()) // Profile image storage (no dependencies)
	app.Register(api.NewModule())    // HTTP layer (depends on everything above)

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo() {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Println("REST API Endpoints (http://localhost:3000):")
	log.Println("  POST   /api/v1/auth/register          - Create an account")
	log.Println("  POST   /api/v1/auth/login             - Log in")
	log.Println("  POST   /api/v1/auth/refresh           - Refresh tokens")
	log.Println("  POST   /api/v1/auth/request-password-reset - Request a reset token")
	log.Println("  POST   /api/v1/auth/reset-password    - Reset password")
	log.Println("  GET    /api/v1/me                     - Own profile")
	log.Println("  PUT    /api/v1/me                     - Edit profile")
	log.Println("  POST   /api/v1/me/avatar              - Upload avatar")
	log.Println("  GET    /api/v1/me/notifications       - Recent notifications")
	log.Println("  GET    /api/v1/me/notifications/unread - Unread count")
	log.Println("  POST   /api/v1/me/notifications/read  - Mark notifications read")
	log.Println("  GET    /api/v1/me/timeline            - Personal timeline")
	log.Println("  GET    /api/v1/users/:username        - Public profile")
	log.Println("  POST   /api/v1/users/:username/follow - Follow a user")
	log.Println("  DELETE /api/v1/users/:username/follow - Unfollow a user")
	log.Println("  POST   /api/v1/tasks                  - Create a task")
	log.Println("  GET    /api/v1/tasks                  - Pending tasks")
	log.Println("  PATCH  /api/v1/tasks/:id              - Edit a task")
	log.Println("  POST   /api/v1/tasks/:id/complete     - Complete a task")
	log.Println("  DELETE /api/v1/tasks/:id              - Delete a task")
	log.Println("  POST   /api/v1/tasks/:id/like         - Like a completed task")
	log.Println("  DELETE /api/v1/tasks/:id/like         - Remove a like")
	log.Println("  GET    /api/v1/feed                   - Completed-task feed")
	log.Println("  GET    /api/v1/avatars/:name          - Serve an avatar")
	log.Println("  GET    /health                        - Health check")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
