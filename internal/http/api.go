package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"blog-server/internal/service"
	"blog-server/internal/storage"
)

// UploadConfig bounds and places uploaded files.
type UploadConfig struct {
	KeyPrefix string
	MaxBytes  int64
}

// Handler wires HTTP routes to domain services.
type Handler struct {
	users      service.UserService
	categories service.CategoryService
	articles   service.ArticleService
	tokens     Authenticator
	storage    storage.Service
	upload     UploadConfig
	logger     *logrus.Logger
}

// NewHandler builds a Handler. store may be nil, in which case uploads are
// answered with 503.
func NewHandler(
	users service.UserService,
	categories service.CategoryService,
	articles service.ArticleService,
	tokens Authenticator,
	store storage.Service,
	upload UploadConfig,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		users:      users,
		categories: categories,
		articles:   articles,
		tokens:     tokens,
		storage:    store,
		upload:     upload,
		logger:     logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware(), requestLogger(h.logger), BindIdentity(h.tokens, h.logger))

	router.GET("/health", func(c *gin.Context) {
		respondOK(c, gin.H{"ok": "ok"})
	})

	user := router.Group("/user")
	{
		user.POST("/register", h.register)
		user.POST("/login", h.login)

		authed := user.Group("", RequireIdentity())
		authed.GET("/userInfo", h.userInfo)
		authed.PUT("/update", h.updateProfile)
		authed.PATCH("/updateAvatar", h.updateAvatar)
		authed.PATCH("/updatePwd", h.updatePassword)
		authed.POST("/logout", h.logout)
	}

	category := router.Group("/category", RequireIdentity())
	{
		category.POST("", h.addCategory)
		category.GET("", h.listCategories)
		category.GET("/detail", h.categoryDetail)
		category.PUT("", h.updateCategory)
		category.DELETE("", h.deleteCategory)
	}

	article := router.Group("/article", RequireIdentity())
	{
		article.POST("", h.addArticle)
		article.GET("", h.listArticles)
		article.GET("/detail", h.articleDetail)
		article.PUT("", h.updateArticle)
		article.DELETE("", h.deleteArticle)
	}

	router.POST("/upload", RequireIdentity(), h.uploadFile)

	router.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "not found")
	})
}
