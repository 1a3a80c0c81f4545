package api

import "time"

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// RegisterRequest represents an HTTP registration request.
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

// LoginRequest represents an HTTP login request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest represents an HTTP token refresh request.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// TokenResponse carries a token pair.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

// PasswordResetRequest represents a reset token request.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// PasswordResetResponse carries the issued reset token.
// A real deployment would deliver this out of band instead.
type PasswordResetResponse struct {
	Token string `json:"token"`
}

// ResetPasswordRequest represents a password reset submission.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// ProfileResponse is the authenticated user's own profile.
type ProfileResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Bio       string    `json:"bio,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateProfileRequest represents a profile edit.
type UpdateProfileRequest struct {
	Bio       *string `json:"bio,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

// PublicProfileResponse is another user's profile with follow data
// relative to the viewer.
type PublicProfileResponse struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Bio        string    `json:"bio,omitempty"`
	AvatarURL  string    `json:"avatar_url,omitempty"`
	Followers  int64     `json:"followers"`
	Following  int64     `json:"following"`
	IsFollowed bool      `json:"is_followed"`
	CreatedAt  time.Time `json:"created_at"`
}

// FollowResponse is the response after a follow or unfollow.
type FollowResponse struct {
	Following bool `json:"following"`
}

// CreateTaskRequest represents an HTTP task creation request.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateTaskRequest represents an HTTP task edit request.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// UnreadResponse carries the unread notification count.
type UnreadResponse struct {
	Unread int64 `json:"unread"`
}

// MarkReadResponse is the response after marking notifications read.
type MarkReadResponse struct {
	Marked bool `json:"marked"`
}
