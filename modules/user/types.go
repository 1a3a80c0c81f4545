package user

import "time"

// RegisterRequest is the request for creating an account.
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

// LoginRequest is the request for logging in.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest is the request for refreshing tokens.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// TokenResponse is the response carrying a token pair.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

// ValidateTokenRequest is the request for validating an access token.
type ValidateTokenRequest struct {
	Token string `json:"token"`
}

// ValidateTokenResponse is the response after validating a token.
type ValidateTokenResponse struct {
	Valid    bool   `json:"valid"`
	UserID   string `json:"user_id,omitempty"`
	Username string `json:"username,omitempty"`
	Error    string `json:"error,omitempty"`
}

// GetUserRequest is the request for fetching a user by ID.
type GetUserRequest struct {
	UserID string `json:"user_id"`
}

// GetUserByUsernameRequest is the request for fetching a user by username.
type GetUserByUsernameRequest struct {
	Username string `json:"username"`
}

// UserResponse represents a user profile in responses.
type UserResponse struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Bio        string    `json:"bio,omitempty"`
	Avatar     string    `json:"avatar,omitempty"`
	LastReadAt time.Time `json:"last_read_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// UpdateProfileRequest is the request for editing profile fields.
type UpdateProfileRequest struct {
	UserID    string  `json:"user_id"`
	Bio       *string `json:"bio,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

// SetAvatarRequest is the request for storing an avatar reference.
type SetAvatarRequest struct {
	UserID    string `json:"user_id"`
	AvatarRef string `json:"avatar_ref"`
}

// PasswordResetRequest is the request for issuing a reset token.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// PasswordResetResponse carries the issued reset token.
type PasswordResetResponse struct {
	Token string `json:"token"`
}

// ResetPasswordRequest is the request for consuming a reset token.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// ResetPasswordResponse is the response after a password reset.
type ResetPasswordResponse struct {
	Reset bool `json:"reset"`
}

// MarkReadRequest is the request for moving the notification read marker.
type MarkReadRequest struct {
	UserID string `json:"user_id"`
}

// MarkReadResponse is the response after moving the read marker.
type MarkReadResponse struct {
	Marked bool `json:"marked"`
}
