package domain

import "time"

// User represents a registered blog author.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Nickname     string
	Email        string
	AvatarURL    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the {userId, username} pair embedded in a session token and
// bound to each authenticated request.
type Identity struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
}
