package domain

import "time"

// Category groups articles of a single owner.
type Category struct {
	ID        int64
	Name      string
	Alias     string
	OwnerID   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
