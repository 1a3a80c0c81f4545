package user

import (
	"time"
)

// User represents a registered account.
type User struct {
	ID            string `gorm:"primaryKey;type:text"`
	Username      string `gorm:"uniqueIndex;not null;type:text"`
	Email         string `gorm:"uniqueIndex;not null;type:text"`
	FirstName     string `gorm:"not null;type:text"`
	LastName      string `gorm:"not null;type:text"`
	Bio           string `gorm:"type:text"`
	Avatar        string `gorm:"type:text"`
	PasswordHash  string `gorm:"not null;type:text"`
	PasswordReset string `gorm:"index;type:text"`
	// LastReadAt marks the newest notification the user has seen.
	// The zero value counts as "never read".
	LastReadAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName returns the table name for the User entity.
func (User) TableName() string {
	return "users"
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// TokenPair represents access and refresh tokens.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

// Claims represents the authenticated identity attached to a request.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}
