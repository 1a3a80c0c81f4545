package user

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	domain "github.com/ElijahAA/HackiethonBackend/domain/user"
	"github.com/google/uuid"
)

var (
	// ErrInvalidCredentials is returned when login credentials are invalid.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidEmail is returned when email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")
	// ErrWeakPassword is returned when password is too weak.
	ErrWeakPassword = errors.New("password must be at least 8 characters")
	// ErrPasswordTooLong is returned when password exceeds bcrypt's 72-byte limit.
	ErrPasswordTooLong = errors.New("password must be at most 72 characters")
	// ErrMissingField is returned when a required profile field is empty.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidResetToken is returned when a password reset token is unknown.
	ErrInvalidResetToken = errors.New("invalid password reset token")
)

// UserService handles account and profile business logic.
type UserService struct {
	repo   *UserRepository
	hasher *PasswordHasher
	jwt    *JWTManager
}

// NewUserService creates a new UserService.
func NewUserService(repo *UserRepository, hasher *PasswordHasher, jwt *JWTManager) *UserService {
	return &UserService{
		repo:   repo,
		hasher: hasher,
		jwt:    jwt,
	}
}

// Register creates a new user account.
func (s *UserService) Register(_ context.Context, username, email, firstName, lastName, password string) (*domain.User, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username", ErrMissingField)
	}
	if firstName == "" {
		return nil, fmt.Errorf("%w: first_name", ErrMissingField)
	}
	if lastName == "" {
		return nil, fmt.Errorf("%w: last_name", ErrMissingField)
	}

	// Validate email using standard library
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}

	// Validate password length (bcrypt has 72-byte limit)
	if len(password) < 8 {
		return nil, ErrWeakPassword
	}
	if len(password) > 72 {
		return nil, ErrPasswordTooLong
	}

	// Check-then-insert; the unique indexes on username and email back
	// this up when two signups race.
	taken, err := s.repo.UsernameExists(username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username existence: %w", err)
	}
	if taken {
		return nil, ErrUserExists
	}
	taken, err = s.repo.EmailExists(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if taken {
		return nil, ErrUserExists
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login authenticates a user by username and returns tokens.
func (s *UserService) Login(_ context.Context, username, password string) (*domain.TokenPair, error) {
	user, err := s.repo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.generateTokenPair(user.ID, user.Username)
}

// RefreshTokens generates new access and refresh tokens.
func (s *UserService) RefreshTokens(_ context.Context, refreshToken string) (*domain.TokenPair, error) {
	claims, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	// Verify user still exists
	user, err := s.repo.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return s.generateTokenPair(user.ID, user.Username)
}

// ValidateToken validates an access token and returns the acting identity.
func (s *UserService) ValidateToken(_ context.Context, token string) (*domain.Claims, error) {
	claims, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return nil, err
	}

	return &domain.Claims{
		UserID:   claims.UserID,
		Username: claims.Username,
	}, nil
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(_ context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(userID)
}

// GetUserByUsername retrieves a user by username.
func (s *UserService) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	return s.repo.FindByUsername(username)
}

// UpdateProfile mutates bio and name fields. Username and email are
// immutable after signup.
func (s *UserService) UpdateProfile(_ context.Context, userID string, bio, firstName, lastName *string) (*domain.User, error) {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if bio != nil {
		user.Bio = *bio
	}
	if firstName != nil {
		if *firstName == "" {
			return nil, fmt.Errorf("%w: first_name", ErrMissingField)
		}
		user.FirstName = *firstName
	}
	if lastName != nil {
		if *lastName == "" {
			return nil, fmt.Errorf("%w: last_name", ErrMissingField)
		}
		user.LastName = *lastName
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.Save(user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

// SetAvatar stores the avatar object reference on the user record.
func (s *UserService) SetAvatar(_ context.Context, userID, avatarRef string) (*domain.User, error) {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	user.Avatar = avatarRef
	user.UpdatedAt = time.Now()

	if err := s.repo.Save(user); err != nil {
		return nil, fmt.Errorf("failed to set avatar: %w", err)
	}
	return user, nil
}

// RequestPasswordReset issues an opaque reset token for the account with
// the given email. Delivery (email) is out of scope; the token is
// returned to the caller.
func (s *UserService) RequestPasswordReset(_ context.Context, email string) (string, error) {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return "", err
	}

	token := uuid.New().String()
	user.PasswordReset = token
	user.UpdatedAt = time.Now()

	if err := s.repo.Save(user); err != nil {
		return "", fmt.Errorf("failed to store reset token: %w", err)
	}
	return token, nil
}

// ResetPassword consumes a reset token and replaces the password hash.
func (s *UserService) ResetPassword(_ context.Context, token, newPassword string) error {
	if token == "" {
		return ErrInvalidResetToken
	}
	if len(newPassword) < 8 {
		return ErrWeakPassword
	}
	if len(newPassword) > 72 {
		return ErrPasswordTooLong
	}

	user, err := s.repo.FindByResetToken(token)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrInvalidResetToken
		}
		return fmt.Errorf("failed to find reset token: %w", err)
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = hash
	user.PasswordReset = ""
	user.UpdatedAt = time.Now()

	if err := s.repo.Save(user); err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}
	return nil
}

// MarkNotificationsRead moves the user's read marker to now. Entries
// created after this instant count as unread again.
func (s *UserService) MarkNotificationsRead(_ context.Context, userID string) error {
	return s.repo.SetLastReadAt(userID, time.Now())
}

// generateTokenPair generates both access and refresh tokens.
func (s *UserService) generateTokenPair(userID, username string) (*domain.TokenPair, error) {
	accessToken, err := s.jwt.GenerateAccessToken(userID, username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwt.GenerateRefreshToken(userID, username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    s.jwt.AccessTokenDuration(),
		TokenType:    "Bearer",
	}, nil
}
