package domain

import "time"

type ArticleState string

const (
	ArticleStatePublished ArticleState = "已发布"
	ArticleStateDraft     ArticleState = "草稿"
)

// Valid reports whether s is one of the known article states.
func (s ArticleState) Valid() bool {
	return s == ArticleStatePublished || s == ArticleStateDraft
}

// Article is a blog post owned by a single user.
type Article struct {
	ID         int64
	Title      string
	Content    string
	CoverImg   string
	State      ArticleState
	CategoryID int64
	OwnerID    int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ArticleFilter narrows an owner's article listing.
type ArticleFilter struct {
	CategoryID *int64
	State      *ArticleState
}

// Page is one page of a listing plus the total number of matching rows.
type Page[T any] struct {
	Total int64
	Items []T
}
