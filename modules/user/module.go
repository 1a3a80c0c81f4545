package user

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	domain "github.com/ElijahAA/HackiethonBackend/domain/user"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// UserModule provides identity, credential and profile services.
type UserModule struct {
	db      *gorm.DB
	service *UserService
	dbPath  string
}

// Compile-time interface checks.
var _ mono.Module = (*UserModule)(nil)
var _ mono.ServiceProviderModule = (*UserModule)(nil)
var _ mono.HealthCheckableModule = (*UserModule)(nil)

// NewModule creates a new UserModule.
func NewModule() *UserModule {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "hackiethon.db"
	}
	return &UserModule{
		dbPath: dbPath,
	}
}

// Name returns the module name.
func (m *UserModule) Name() string {
	return "user"
}

// Start initializes the database connection and runs migrations.
func (m *UserModule) Start(_ context.Context) error {
	db, err := OpenDatabase(m.dbPath)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	m.db = db

	if err := db.AutoMigrate(&domain.User{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	repo := NewUserRepository(db)
	hasher := NewPasswordHasher()
	jwtManager := NewJWTManager(loadJWTConfig())

	m.service = NewUserService(repo, hasher, jwtManager)

	log.Printf("[user] Module started (database: %s)", m.dbPath)
	return nil
}

// Stop shuts down the module.
func (m *UserModule) Stop(_ context.Context) error {
	if m.db != nil {
		sqlDB, err := m.db.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
	log.Println("[user] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *UserModule) Health(_ context.Context) mono.HealthStatus {
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
func (m *UserModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "register", json.Unmarshal, json.Marshal, m.handleRegister,
	); err != nil {
		return fmt.Errorf("failed to register register service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "login", json.Unmarshal, json.Marshal, m.handleLogin,
	); err != nil {
		return fmt.Errorf("failed to register login service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "refresh-token", json.Unmarshal, json.Marshal, m.handleRefresh,
	); err != nil {
		return fmt.Errorf("failed to register refresh-token service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "validate-token", json.Unmarshal, json.Marshal, m.handleValidateToken,
	); err != nil {
		return fmt.Errorf("failed to register validate-token service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get-user", json.Unmarshal, json.Marshal, m.handleGetUser,
	); err != nil {
		return fmt.Errorf("failed to register get-user service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get-user-by-username", json.Unmarshal, json.Marshal, m.handleGetUserByUsername,
	); err != nil {
		return fmt.Errorf("failed to register get-user-by-username service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "update-profile", json.Unmarshal, json.Marshal, m.handleUpdateProfile,
	); err != nil {
		return fmt.Errorf("failed to register update-profile service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "set-avatar", json.Unmarshal, json.Marshal, m.handleSetAvatar,
	); err != nil {
		return fmt.Errorf("failed to register set-avatar service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "request-password-reset", json.Unmarshal, json.Marshal, m.handleRequestPasswordReset,
	); err != nil {
		return fmt.Errorf("failed to register request-password-reset service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "reset-password", json.Unmarshal, json.Marshal, m.handleResetPassword,
	); err != nil {
		return fmt.Errorf("failed to register reset-password service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "mark-notifications-read", json.Unmarshal, json.Marshal, m.handleMarkRead,
	); err != nil {
		return fmt.Errorf("failed to register mark-notifications-read service: %w", err)
	}

	log.Printf("[user] Registered services: register, login, refresh-token, validate-token, get-user, get-user-by-username, update-profile, set-avatar, request-password-reset, reset-password, mark-notifications-read")
	return nil
}

// handleRegister handles user registration.
func (m *UserModule) handleRegister(ctx context.Context, req RegisterRequest, _ *mono.Msg) (UserResponse, error) {
	user, err := m.service.Register(ctx, req.Username, req.Email, req.FirstName, req.LastName, req.Password)
	if err != nil {
		return UserResponse{}, err
	}
	return toUserResponse(user), nil
}

// handleLogin handles user login.
func (m *UserModule) handleLogin(ctx context.Context, req LoginRequest, _ *mono.Msg) (TokenResponse, error) {
	tokens, err := m.service.Login(ctx, req.Username, req.Password)
	if err != nil {
		return TokenResponse{}, err
	}
	return TokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
		TokenType:    tokens.TokenType,
	}, nil
}

// handleRefresh handles token refresh.
func (m *UserModule) handleRefresh(ctx context.Context, req RefreshRequest, _ *mono.Msg) (TokenResponse, error) {
	tokens, err := m.service.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		return TokenResponse{}, err
	}
	return TokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
		TokenType:    tokens.TokenType,
	}, nil
}

// handleValidateToken handles token validation.
func (m *UserModule) handleValidateToken(ctx context.Context, req ValidateTokenRequest, _ *mono.Msg) (ValidateTokenResponse, error) {
	claims, err := m.service.ValidateToken(ctx, req.Token)
	if err != nil {
		errMsg := "invalid token"
		if err == ErrExpiredToken {
			errMsg = "token expired"
		}
		// Return response, not error, for validation failures
		return ValidateTokenResponse{
			Valid: false,
			Error: errMsg,
		}, nil
	}

	return ValidateTokenResponse{
		Valid:    true,
		UserID:   claims.UserID,
		Username: claims.Username,
	}, nil
}

// handleGetUser handles fetching a user by ID.
func (m *UserModule) handleGetUser(ctx context.Context, req GetUserRequest, _ *mono.Msg) (UserResponse, error) {
	user, err := m.service.GetUser(ctx, req.UserID)
	if err != nil {
		return UserResponse{}, err
	}
	return toUserResponse(user), nil
}

// handleGetUserByUsername handles fetching a user by username.
func (m *UserModule) handleGetUserByUsername(ctx context.Context, req GetUserByUsernameRequest, _ *mono.Msg) (UserResponse, error) {
	user, err := m.service.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return UserResponse{}, err
	}
	return toUserResponse(user), nil
}

// handleUpdateProfile handles profile edits.
func (m *UserModule) handleUpdateProfile(ctx context.Context, req UpdateProfileRequest, _ *mono.Msg) (UserResponse, error) {
	user, err := m.service.UpdateProfile(ctx, req.UserID, req.Bio, req.FirstName, req.LastName)
	if err != nil {
		return UserResponse{}, err
	}
	return toUserResponse(user), nil
}

// handleSetAvatar handles storing an avatar reference.
func (m *UserModule) handleSetAvatar(ctx context.Context, req SetAvatarRequest, _ *mono.Msg) (UserResponse, error) {
	user, err := m.service.SetAvatar(ctx, req.UserID, req.AvatarRef)
	if err != nil {
		return UserResponse{}, err
	}
	return toUserResponse(user), nil
}

// handleRequestPasswordReset handles issuing a reset token.
func (m *UserModule) handleRequestPasswordReset(ctx context.Context, req PasswordResetRequest, _ *mono.Msg) (PasswordResetResponse, error) {
	token, err := m.service.RequestPasswordReset(ctx, req.Email)
	if err != nil {
		return PasswordResetResponse{}, err
	}
	return PasswordResetResponse{Token: token}, nil
}

// handleResetPassword handles consuming a reset token.
func (m *UserModule) handleResetPassword(ctx context.Context, req ResetPasswordRequest, _ *mono.Msg) (ResetPasswordResponse, error) {
	if err := m.service.ResetPassword(ctx, req.Token, req.NewPassword); err != nil {
		return ResetPasswordResponse{Reset: false}, err
	}
	return ResetPasswordResponse{Reset: true}, nil
}

// handleMarkRead handles moving the notification read marker.
func (m *UserModule) handleMarkRead(ctx context.Context, req MarkReadRequest, _ *mono.Msg) (MarkReadResponse, error) {
	if err := m.service.MarkNotificationsRead(ctx, req.UserID); err != nil {
		return MarkReadResponse{Marked: false}, err
	}
	return MarkReadResponse{Marked: true}, nil
}

// toUserResponse converts a User entity to a UserResponse.
func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Bio:        user.Bio,
		Avatar:     user.Avatar,
		LastReadAt: user.LastReadAt,
		CreatedAt:  user.CreatedAt,
	}
}

// OpenDatabase opens the shared SQLite database with the module defaults.
// TranslateError lets unique-index violations surface as
// gorm.ErrDuplicatedKey instead of driver-specific errors.
func OpenDatabase(path string) (*gorm.DB, error) {
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "true" {
		logLevel = logger.Info
	}

	return gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
}

// loadJWTConfig loads JWT configuration from the environment,
// falling back to defaults.
func loadJWTConfig() JWTConfig {
	config := DefaultJWTConfig()
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		config.SecretKey = secret
	}
	if issuer := os.Getenv("JWT_ISSUER"); issuer != "" {
		config.Issuer = issuer
	}
	if d := os.Getenv("JWT_ACCESS_TTL"); d != "" {
		if parsed, err := time.ParseDuration(d); err == nil {
			config.AccessTokenDuration = parsed
		}
	}
	return config
}
