package http

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"eisenhower-matrix/internal/auth"
	pkgErrors "eisenhower-matrix/pkg/errors"
	"eisenhower-matrix/pkg/response"
)

type credentialsReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
}

type sessionResp struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
}

func newSessionResp(s auth.Session) sessionResp {
	return sessionResp{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		UserID:       s.User.UserID,
		Email:        s.User.Email,
	}
}

func mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return pkgErrors.NewHTTPError(401, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		return pkgErrors.NewHTTPError(401, err.Error())
	default:
		return pkgErrors.NewHTTPError(500, "auth service failed")
	}
}

func bearerToken(c *gin.Context) string {
	token, _ := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	return token
}

// SignIn godoc
// @Summary     Sign in
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body credentialsReq true "Email and password"
// @Success     200 {object} sessionResp
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Router      /api/v1/auth/signin [POST]
func (h *handler) SignIn(c *gin.Context) {
	ctx := c.Request.Context()

	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	session, err := h.svc.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		h.l.Warnf(ctx, "sign-in failed for %s: %v", req.Email, err)
		response.Error(c, mapError(err))
		return
	}
	response.OK(c, newSessionResp(session))
}

// SignUp godoc
// @Summary     Sign up
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body credentialsReq true "Email, password and name"
// @Success     200 {object} sessionResp
// @Failure     401 {object} response.Resp "Rejected"
// @Router      /api/v1/auth/signup [POST]
func (h *handler) SignUp(c *gin.Context) {
	ctx := c.Request.Context()

	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	session, err := h.svc.SignUp(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		h.l.Warnf(ctx, "sign-up failed for %s: %v", req.Email, err)
		response.Error(c, mapError(err))
		return
	}
	response.OK(c, newSessionResp(session))
}

// SignOut godoc
// @Summary     Sign out
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/auth/signout [POST]
func (h *handler) SignOut(c *gin.Context) {
	ctx := c.Request.Context()

	token := bearerToken(c)
	if token == "" {
		response.Unauthorized(c)
		return
	}
	if err := h.svc.SignOut(ctx, token); err != nil {
		h.l.Warnf(ctx, "sign-out failed: %v", err)
		response.Error(c, mapError(err))
		return
	}
	response.OK(c, nil)
}

// Me godoc
// @Summary     Current user
// @Tags        Auth
// @Produce     json
// @Success     200 {object} map[string]string
// @Failure     401 {object} response.Resp "Invalid token"
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	token := bearerToken(c)
	if token == "" {
		response.Unauthorized(c)
		return
	}
	scope, err := h.svc.GetCurrentUser(ctx, token)
	if err != nil {
		response.Error(c, mapError(err))
		return
	}
	response.OK(c, gin.H{"user_id": scope.UserID, "email": scope.Email})
}
