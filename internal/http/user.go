package http

import (
	"github.com/gin-gonic/gin"

	"blog-server/internal/auth"
	"blog-server/internal/service"
)

type credentialsRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

type updateProfileRequest struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
}

type passwordChangeRequest struct {
	OldPassword string `json:"old_pwd"`
	NewPassword string `json:"new_pwd"`
	RePassword  string `json:"re_pwd"`
}

var errMalformedBody = ValidationErrors{{Field: "body", Reason: "malformed request"}}

func (h *Handler) register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		h.writeError(c, errMalformedBody)
		return
	}
	if err := validateCredentials(req.Username, req.Password); err != nil {
		h.writeError(c, err)
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.logger.WithField("user_id", user.ID).Info("user registered")
	respondOK(c, nil)
}

func (h *Handler) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		h.writeError(c, errMalformedBody)
		return
	}
	if err := validateCredentials(req.Username, req.Password); err != nil {
		h.writeError(c, err)
		return
	}

	token, err := h.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respondOK(c, token)
}

func (h *Handler) userInfo(c *gin.Context) {
	user, err := h.users.Profile(c.Request.Context(), identity(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	respondOK(c, userToResponse(*user))
}

func (h *Handler) updateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, errMalformedBody)
		return
	}

	current := identity(c)
	if req.ID != 0 && req.ID != current.UserID {
		h.writeError(c, ValidationErrors{{Field: "id", Reason: "must be the signed-in user"}})
		return
	}
	if err := validateProfile(req); err != nil {
		h.writeError(c, err)
		return
	}

	if err := h.users.UpdateProfile(c.Request.Context(), current, req.Nickname, req.Email); err != nil {
		h.writeError(c, err)
		return
	}
	respondOK(c, nil)
}

func (h *Handler) updateAvatar(c *gin.Context) {
	avatarURL := c.Query("avatarUrl")
	if err := validateAvatarURL(avatarURL); err != nil {
		h.writeError(c, err)
		return
	}

	if err := h.users.UpdateAvatar(c.Request.Context(), identity(c), avatarURL); err != nil {
		h.writeError(c, err)
		return
	}
	respondOK(c, nil)
}

func (h *Handler) updatePassword(c *gin.Context) {
	var req passwordChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, errMalformedBody)
		return
	}

	ctx := c.Request.Context()
	token, _ := auth.TokenFrom(ctx)
	err := h.users.ChangePassword(ctx, identity(c), token, service.PasswordChange{
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
		RePassword:  req.RePassword,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.logger.WithField("user_id", identity(c).UserID).Info("password changed, session revoked")
	respondOK(c, nil)
}

func (h *Handler) logout(c *gin.Context) {
	ctx := c.Request.Context()
	token, _ := auth.TokenFrom(ctx)
	if err := h.users.Logout(ctx, token); err != nil {
		h.writeError(c, err)
		return
	}
	respondOK(c, nil)
}
