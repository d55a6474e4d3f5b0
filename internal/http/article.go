package http

import (
	"github.com/gin-gonic/gin"

	"blog-server/internal/domain"
	"blog-server/internal/service"
)

type articleRequest struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	CoverImg   string `json:"coverImg"`
	State      string `json:"state"`
	CategoryID int64  `json:"categoryId"`
}

func (r articleRequest) input() service.ArticleInput {
	return service.ArticleInput{
		Title:      r.Title,
		Content:    r.Content,
		CoverImg:   r.CoverImg,
		State:      domain.ArticleState(r.State),
		CategoryID: r.CategoryID,
	}
}

func (h *Handler) addArticle(c *gin.Context) {
	var req articleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, errMalformedBody)
		return
	}
	if err := validateArticle(req, false); err != nil {
		h.writeError(c, err)
		return
	}

	if _, err := h.articles.Add(c.Request.Context(), identity(c), req.input()); err != nil {
		h.writeError(c, err)
		return
	}
	respondOK(c, nil)
}

func (h *Handler) listArticles(c *gin.Context) {
	pageNum, err := optionalInt(c, "pageNum")
	if err != nil {
		h.writeError(c, err)
		return
	}
	pageSize, err := optionalInt(c, "pageSize")
	if err != nil {
		h.writeError(c, err)
		return
	}
	categoryID, err := optionalInt(c, "categoryId")
	if err != nil {
		h.writeError(c, err)
		return
	}
	state := c.Query("state")
	if err := validateArticleState(state); err != nil {
		h.writeError(c, err)
		return
	}

	q := service.ListQuery{PageNum: int(pageNum), PageSize: int(pageSize)}
	if categoryID > 0 {
		q.Filter.CategoryID = &categoryID
	}
	if state != "" {
		s := domain.ArticleState(state)
		q.Filter.State = &s
	}

	page, err := h.articles.List(c.Request.Context(), identity(c), q)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respondOK(c, pageToResponse(page))
}

func (h *Handler) articleDetail(c *gin.Context) {
	id, err := queryID(c, "id")
	if err != nil {
		h.writeError(c, err)
		return
	}

	article, err := h.articles.Get(c.Request.Context(), identity(c), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respondOK(c, articleToResponse(*article))
}

func (h *Handler) updateArticle(c *gin.Context) {
	var req articleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, errMalformedBody)
		return
	}
	if err := validateArticle(req, true); err != nil {
		h.writeError(c, err)
		return
	}

	if _, err := h.articles.Update(c.Request.Context(), identity(c), req.ID, req.input()); err != nil {
		h.writeError(c, err)
		return
	}
	respondOK(c, nil)
}

func (h *Handler) deleteArticle(c *gin.Context) {
	id, err := queryID(c, "id")
	if err != nil {
		h.writeError(c, err)
		return
	}

	if err := h.articles.Delete(c.Request.Context(), identity(c), id); err != nil {
		h.writeError(c, err)
		return
	}
	respondOK(c, nil)
}
