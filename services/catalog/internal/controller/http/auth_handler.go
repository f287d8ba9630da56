package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"campshop/pkg/logger"
	"campshop/pkg/middleware"
	"campshop/services/catalog/internal/entity"
	"campshop/services/catalog/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase  usecase.AuthUseCase
	cookieExpiry time.Duration
	secureCookie bool
	appURL       string
	logger       *logger.Logger
}

// NewAuthHandler builds the auth routes. appURL is the public base of emailed
// reset links; when empty the request host is used.
func NewAuthHandler(authUseCase usecase.AuthUseCase, cookieExpireDays int, secureCookie bool, appURL string, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase:  authUseCase,
		cookieExpiry: time.Duration(cookieExpireDays) * 24 * time.Hour,
		secureCookie: secureCookie,
		appURL:       strings.TrimRight(appURL, "/"),
		logger:       logger,
	}
}

type LoginRequest struct {
	Email    string `json:"email" example:"john@gmail.com"`
	Password string `json:"password" example:"123456"`
}

type UpdateDetailsRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// TokenResponse is returned by every endpoint that issues a credential.
type TokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Create an account with role user, publisher or seller and receive a token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body entity.UserInput true "Registration data"
// @Success      200  {object}  TokenResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req entity.UserInput
	if !bindJSON(c, &req) {
		return
	}

	_, token, err := h.authUseCase.Register(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	h.sendToken(c, token)
}

// Login godoc
// @Summary      Login
// @Description  Authenticate with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200  {object}  TokenResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	_, token, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	h.sendToken(c, token)
}

// Logout godoc
// @Summary      Logout
// @Description  Replace the token cookie with one that expires in ten seconds
// @Tags         auth
// @Produce      json
// @Success      200  {object}  Response
// @Router       /auth/logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, "none", 10, "/", "", h.secureCookie, true)
	respond(c, http.StatusOK, gin.H{})
}

// GetMe godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Response{data=entity.User}
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) GetMe(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	user, err := h.authUseCase.Me(c.Request.Context(), p.ID)
	if err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusOK, user)
}

// UpdateDetails godoc
// @Summary      Update name and email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UpdateDetailsRequest true "New details"
// @Success      200  {object}  Response{data=entity.User}
// @Failure      400  {object}  ErrorResponse
// @Router       /auth/updatedetails [put]
func (h *AuthHandler) UpdateDetails(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req UpdateDetailsRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.authUseCase.UpdateDetails(c.Request.Context(), p.ID, req.Name, req.Email)
	if err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusOK, user)
}

// UpdatePassword godoc
// @Summary      Change password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UpdatePasswordRequest true "Current and new password"
// @Success      200  {object}  TokenResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/updatepassword [put]
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req UpdatePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	_, token, err := h.authUseCase.UpdatePassword(c.Request.Context(), p.ID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		c.Error(err)
		return
	}

	h.sendToken(c, token)
}

// ForgotPassword godoc
// @Summary      Request a password reset email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body ForgotPasswordRequest true "Account email"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/forgotpassword [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.authUseCase.ForgotPassword(c.Request.Context(), req.Email, h.resetURLPrefix(c)); err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusOK, "Email sent")
}

// ResetPassword godoc
// @Summary      Reset password with an emailed token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        resettoken path string true "Reset token"
// @Param        request body ResetPasswordRequest true "New password"
// @Success      200  {object}  TokenResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /auth/resetpassword/{resettoken} [put]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	_, token, err := h.authUseCase.ResetPassword(c.Request.Context(), c.Param("resettoken"), req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	h.sendToken(c, token)
}

func (h *AuthHandler) sendToken(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, token, int(h.cookieExpiry.Seconds()), "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, TokenResponse{Success: true, Token: token})
}

func (h *AuthHandler) resetURLPrefix(c *gin.Context) string {
	base := h.appURL
	if base == "" {
		scheme := "http"
		if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s", scheme, c.Request.Host)
	}
	return base + "/api/v1/auth/resetpassword/"
}
