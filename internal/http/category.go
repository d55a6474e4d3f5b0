package http

import (
	"github.com/gin-gonic/gin"
)

type categoryRequest struct {
	ID    int64  `json:"id"`
	Name  string `json:"categoryName"`
	Alias string `json:"categoryAlias"`
}

func (h *Handler) addCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, errMalformedBody)
		return
	}
	if err := validateCategory(req, false); err != nil {
		h.writeError(c, err)
		return
	}

	if _, err := h.categories.Add(c.Request.Context(), identity(c), req.Name, req.Alias); err != nil {
		h.writeError(c, err)
		return
	}
	respondOK(c, nil)
}

func (h *Handler) listCategories(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context(), identity(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := make([]CategoryResponse, len(categories))
	for i := range categories {
		resp[i] = categoryToResponse(categories[i])
	}
	respondOK(c, resp)
}

func (h *Handler) categoryDetail(c *gin.Context) {
	id, err := queryID(c, "id")
	if err != nil {
		h.writeError(c, err)
		return
	}

	category, err := h.categories.Get(c.Request.Context(), identity(c), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respondOK(c, categoryToResponse(*category))
}

func (h *Handler) updateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, errMalformedBody)
		return
	}
	if err := validateCategory(req, true); err != nil {
		h.writeError(c, err)
		return
	}

	if _, err := h.categories.Update(c.Request.Context(), identity(c), req.ID, req.Name, req.Alias); err != nil {
		h.writeError(c, err)
		return
	}
	respondOK(c, nil)
}

func (h *Handler) deleteCategory(c *gin.Context) {
	id, err := queryID(c, "id")
	if err != nil {
		h.writeError(c, err)
		return
	}

	if err := h.categories.Delete(c.Request.Context(), identity(c), id); err != nil {
		h.writeError(c, err)
		return
	}
	respondOK(c, nil)
}
