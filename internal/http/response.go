package http

import (
	"time"

	"blog-server/internal/domain"
)

const timeLayout = "2006-01-02 15:04:05"

type UserResponse struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Nickname   string `json:"nickname"`
	Email      string `json:"email"`
	UserPic    string `json:"userPic"`
	CreateTime string `json:"createTime"`
	UpdateTime string `json:"updateTime"`
}

type CategoryResponse struct {
	ID            int64  `json:"id"`
	CategoryName  string `json:"categoryName"`
	CategoryAlias string `json:"categoryAlias"`
	CreateUser    int64  `json:"createUser"`
	CreateTime    string `json:"createTime"`
	UpdateTime    string `json:"updateTime"`
}

type ArticleResponse struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	CoverImg   string `json:"coverImg"`
	State      string `json:"state"`
	CategoryID int64  `json:"categoryId"`
	CreateUser int64  `json:"createUser"`
	CreateTime string `json:"createTime"`
	UpdateTime string `json:"updateTime"`
}

type PageResponse struct {
	Total int64             `json:"total"`
	Items []ArticleResponse `json:"items"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(timeLayout)
}

func userToResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Nickname:   u.Nickname,
		Email:      u.Email,
		UserPic:    u.AvatarURL,
		CreateTime: formatTime(u.CreatedAt),
		UpdateTime: formatTime(u.UpdatedAt),
	}
}

func categoryToResponse(c domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:            c.ID,
		CategoryName:  c.Name,
		CategoryAlias: c.Alias,
		CreateUser:    c.OwnerID,
		CreateTime:    formatTime(c.CreatedAt),
		UpdateTime:    formatTime(c.UpdatedAt),
	}
}

func articleToResponse(a domain.Article) ArticleResponse {
	return ArticleResponse{
		ID:         a.ID,
		Title:      a.Title,
		Content:    a.Content,
		CoverImg:   a.CoverImg,
		State:      string(a.State),
		CategoryID: a.CategoryID,
		CreateUser: a.OwnerID,
		CreateTime: formatTime(a.CreatedAt),
		UpdateTime: formatTime(a.UpdatedAt),
	}
}

func pageToResponse(p domain.Page[domain.Article]) PageResponse {
	resp := PageResponse{
		Total: p.Total,
		Items: make([]ArticleResponse, len(p.Items)),
	}
	for i := range p.Items {
		resp.Items[i] = articleToResponse(p.Items[i])
	}
	return resp
}
