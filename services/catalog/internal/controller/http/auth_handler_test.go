package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"campshop/pkg/access"
	"campshop/pkg/errs"
	"campshop/pkg/logger"
	"campshop/pkg/middleware"
	"campshop/services/catalog/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler(logger.NewWithWriter(io.Discard)))
	return router
}

func asPrincipal(p *access.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.PrincipalKey, p)
		c.Next()
	}
}

func jsonBody(t *testing.T, v interface{}) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func newAuthRouter(uc *MockAuthUseCase) *gin.Engine {
	return newAuthRouterWithURL(uc, "")
}

func newAuthRouterWithURL(uc *MockAuthUseCase, appURL string) *gin.Engine {
	handler := NewAuthHandler(uc, 30, false, appURL, logger.NewWithWriter(io.Discard))
	router := setupTestRouter()
	router.POST("/auth/register", handler.Register)
	router.POST("/auth/login", handler.Login)
	router.GET("/auth/logout", handler.Logout)
	router.GET("/auth/me", handler.GetMe)
	router.POST("/auth/forgotpassword", handler.ForgotPassword)
	router.PUT("/auth/resetpassword/:resettoken", handler.ResetPassword)
	return router
}

func TestLogin_SetsTokenCookie(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	router := newAuthRouter(mockUseCase)

	mockUseCase.On("Login", mock.Anything, "john@gmail.com", "123456").
		Return(&entity.User{ID: "user-1"}, "signed-token", nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", jsonBody(t, LoginRequest{Email: "john@gmail.com", Password: "123456"}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "signed-token", body["token"])

	cookie := findCookie(w, middleware.TokenCookie)
	require.NotNil(t, cookie)
	assert.Equal(t, "signed-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, 30*24*60*60, cookie.MaxAge)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	router := newAuthRouter(mockUseCase)

	mockUseCase.On("Login", mock.Anything, "john@gmail.com", "bad").
		Return(nil, "", errs.Unauthorized("Invalid credentials"))

	req := httptest.NewRequest(http.MethodPost, "/auth/login", jsonBody(t, LoginRequest{Email: "john@gmail.com", Password: "bad"}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, map[string]interface{}{"success": false, "error": "Invalid credentials"}, decode(t, w))
	assert.Nil(t, findCookie(w, middleware.TokenCookie))
}

func TestRegister_MalformedBody(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	router := newAuthRouter(mockUseCase)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestLogout_ExpiresCookie(t *testing.T) {
	router := newAuthRouter(new(MockAuthUseCase))

	req := httptest.NewRequest(http.MethodGet, "/auth/logout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	cookie := findCookie(w, middleware.TokenCookie)
	require.NotNil(t, cookie)
	assert.Equal(t, "none", cookie.Value)
	assert.Equal(t, 10, cookie.MaxAge)
}

func TestGetMe_RequiresPrincipal(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	router := newAuthRouter(mockUseCase)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockUseCase.AssertNotCalled(t, "Me", mock.Anything, mock.Anything)
}

func TestForgotPassword(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   map[string]interface{}
	}{
		{
			name:       "sent",
			wantStatus: http.StatusOK,
			wantBody:   map[string]interface{}{"success": true, "data": "Email sent"},
		},
		{
			name:       "mail failure",
			err:        errs.ServerError("Email could not be sent"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   map[string]interface{}{"success": false, "error": "Email could not be sent"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUseCase := new(MockAuthUseCase)
			router := newAuthRouter(mockUseCase)

			mockUseCase.On("ForgotPassword", mock.Anything, "john@gmail.com", "http://example.com/api/v1/auth/resetpassword/").
				Return(tt.err)

			req := httptest.NewRequest(http.MethodPost, "/auth/forgotpassword", jsonBody(t, ForgotPasswordRequest{Email: "john@gmail.com"}))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantBody, decode(t, w))
			mockUseCase.AssertExpectations(t)
		})
	}
}

func TestForgotPassword_ConfiguredURLIgnoresHostHeader(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	router := newAuthRouterWithURL(mockUseCase, "https://campshop.io/")

	mockUseCase.On("ForgotPassword", mock.Anything, "john@gmail.com", "https://campshop.io/api/v1/auth/resetpassword/").
		Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/forgotpassword", jsonBody(t, ForgotPasswordRequest{Email: "john@gmail.com"}))
	req.Host = "evil.example"
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-Proto", "http")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestResetPassword_UsesPathToken(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	router := newAuthRouter(mockUseCase)

	mockUseCase.On("ResetPassword", mock.Anything, "abc123", "newpass").
		Return(&entity.User{ID: "user-1"}, "fresh-token", nil)

	req := httptest.NewRequest(http.MethodPut, "/auth/resetpassword/abc123", jsonBody(t, ResetPasswordRequest{Password: "newpass"}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fresh-token", decode(t, w)["token"])
}
