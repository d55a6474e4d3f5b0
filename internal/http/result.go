package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"blog-server/internal/auth"
	"blog-server/internal/service"
)

// Result is the uniform response envelope. Code is 0 on success and 1 on
// failure.
type Result struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

const messageUnauthenticated = "未登录"

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Result{Code: 0, Message: "操作成功", Data: data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, Result{Code: 1, Message: message})
}

// writeError maps domain errors onto an HTTP status and envelope message.
// Anything unrecognised is logged and reported as a 500.
func (h *Handler) writeError(c *gin.Context, err error) {
	var verrs ValidationErrors
	switch {
	case errors.As(err, &verrs):
		respondError(c, http.StatusBadRequest, verrs.Error())
	case errors.Is(err, service.ErrUserNotFound):
		respondError(c, http.StatusUnauthorized, "用户名错误")
	case errors.Is(err, service.ErrCredentialMismatch):
		respondError(c, http.StatusUnauthorized, "密码错误")
	case errors.Is(err, service.ErrUserAlreadyExists):
		respondError(c, http.StatusConflict, "用户已被占用")
	case errors.Is(err, service.ErrPasswordIncomplete):
		respondError(c, http.StatusBadRequest, "密码不全")
	case errors.Is(err, service.ErrOldPasswordMismatch):
		respondError(c, http.StatusBadRequest, "原密码错误")
	case errors.Is(err, service.ErrPasswordConfirmMismatch):
		respondError(c, http.StatusBadRequest, "新密码不一致")
	case errors.Is(err, service.ErrCategoryNotFound):
		respondError(c, http.StatusNotFound, "分类不存在")
	case errors.Is(err, service.ErrCategoryInUse):
		respondError(c, http.StatusConflict, "分类下仍有文章")
	case errors.Is(err, service.ErrArticleNotFound):
		respondError(c, http.StatusNotFound, "文章不存在")
	case errors.Is(err, auth.ErrTokenInvalid),
		errors.Is(err, auth.ErrTokenExpired),
		errors.Is(err, auth.ErrTokenRevoked):
		respondError(c, http.StatusUnauthorized, messageUnauthenticated)
	default:
		h.logger.WithFields(logrus.Fields{
			"path":   c.FullPath(),
			"method": c.Request.Method,
		}).WithError(err).Error("request failed")
		respondError(c, http.StatusInternalServerError, "服务器内部错误")
	}
}
