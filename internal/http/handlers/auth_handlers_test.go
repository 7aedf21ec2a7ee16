package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vorobeiDev/goit-pythonweb-hw-12/domain"
	"github.com/vorobeiDev/goit-pythonweb-hw-12/internal/mocks"
)

func setupAuthRouter(authSvc domain.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewAuthHandlers(authSvc, "http://localhost:8000")

	router := gin.New()
	api := router.Group("/api")
	auth := api.Group("/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
	auth.GET("/confirmed_email/:token", h.ConfirmedEmail)
	auth.POST("/request_email", h.RequestEmail)
	auth.POST("/reset-password", h.ResetPassword)
	auth.POST("/reset-password/confirm", h.ResetPasswordConfirm)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAuthHandlers_Register(t *testing.T) {
	tests := []struct {
		name           string
		payload        map[string]any
		setupMocks     func(*mocks.MockAuthService)
		expectedStatus int
	}{
		{
			name: "successful registration",
			payload: map[string]any{
				"username": "alice",
				"email":    "alice@example.com",
				"password": "password123",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "email already registered",
			payload: map[string]any{
				"username": "alice",
				"email":    "taken@example.com",
				"password": "password123",
			},
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.RegisterFunc = func(ctx context.Context, username, email, password, baseURL string) (*domain.User, error) {
					return nil, domain.ErrEmailTaken
				}
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "username already registered",
			payload: map[string]any{
				"username": "taken",
				"email":    "alice@example.com",
				"password": "password123",
			},
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.RegisterFunc = func(ctx context.Context, username, email, password, baseURL string) (*domain.User, error) {
					return nil, domain.ErrUsernameTaken
				}
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "username too short",
			payload: map[string]any{
				"username": "al",
				"email":    "alice@example.com",
				"password": "password123",
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "invalid email",
			payload: map[string]any{
				"username": "alice",
				"email":    "not-an-email",
				"password": "password123",
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "password too short",
			payload: map[string]any{
				"username": "alice",
				"email":    "alice@example.com",
				"password": "short",
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			if tt.setupMocks != nil {
				tt.setupMocks(authSvc)
			}

			router := setupAuthRouter(authSvc)
			w := postJSON(t, router, "/api/auth/register", tt.payload)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				body := decodeBody(t, w)
				assert.Equal(t, "alice", body["username"])
				assert.Equal(t, false, body["confirmed"])
				assert.NotContains(t, w.Body.String(), "password", "the password must never appear in a response")
			}
		})
	}
}

func TestAuthHandlers_Login(t *testing.T) {
	t.Run("successful login", func(t *testing.T) {
		router := setupAuthRouter(mocks.NewMockAuthService())
		w := postJSON(t, router, "/api/auth/login", map[string]any{
			"email":    "alice@example.com",
			"password": "password123",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "access_token_alice@example.com", body["access_token"])
		assert.Equal(t, "bearer", body["token_type"])
		assert.Equal(t, float64(3600), body["expires_in"])
	})

	t.Run("accepts form encoded credentials", func(t *testing.T) {
		router := setupAuthRouter(mocks.NewMockAuthService())

		form := url.Values{}
		form.Set("email", "alice@example.com")
		form.Set("password", "password123")
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad credentials", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.LoginFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		}

		router := setupAuthRouter(authSvc)
		w := postJSON(t, router, "/api/auth/login", map[string]any{
			"email":    "alice@example.com",
			"password": "wrongpassword",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "incorrect login or password", decodeBody(t, w)["detail"])
	})

	t.Run("unconfirmed email", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.LoginFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
			return nil, domain.ErrEmailNotConfirmed
		}

		router := setupAuthRouter(authSvc)
		w := postJSON(t, router, "/api/auth/login", map[string]any{
			"email":    "alice@example.com",
			"password": "password123",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "email confirmation failed", decodeBody(t, w)["detail"])
	})

	t.Run("missing fields", func(t *testing.T) {
		router := setupAuthRouter(mocks.NewMockAuthService())
		w := postJSON(t, router, "/api/auth/login", map[string]any{"email": "alice@example.com"})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestAuthHandlers_ConfirmedEmail(t *testing.T) {
	tests := []struct {
		name            string
		setupMocks      func(*mocks.MockAuthService)
		expectedStatus  int
		expectedMessage string
		expectedDetail  string
	}{
		{
			name:            "first confirmation",
			expectedStatus:  http.StatusOK,
			expectedMessage: "Email confirmed",
		},
		{
			name: "already confirmed",
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.ConfirmEmailFunc = func(ctx context.Context, token string) (bool, error) {
					return true, nil
				}
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Your email has been confirmed",
		},
		{
			name: "invalid token",
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.ConfirmEmailFunc = func(ctx context.Context, token string) (bool, error) {
					return false, domain.ErrTokenInvalid
				}
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedDetail: "incorrect token",
		},
		{
			name: "expired token",
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.ConfirmEmailFunc = func(ctx context.Context, token string) (bool, error) {
					return false, domain.ErrTokenExpired
				}
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedDetail: "incorrect token",
		},
		{
			name: "subject no longer exists",
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.ConfirmEmailFunc = func(ctx context.Context, token string) (bool, error) {
					return false, domain.ErrUserNotFound
				}
			},
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "verification error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			if tt.setupMocks != nil {
				tt.setupMocks(authSvc)
			}

			router := setupAuthRouter(authSvc)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/confirmed_email/some-token", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			body := decodeBody(t, w)
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, body["message"])
			}
			if tt.expectedDetail != "" {
				assert.Equal(t, tt.expectedDetail, body["detail"])
			}
		})
	}
}

func TestAuthHandlers_RequestEmail(t *testing.T) {
	t.Run("unknown email still reports success", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.RequestConfirmationFunc = func(ctx context.Context, email, baseURL string) (bool, error) {
			return false, nil
		}

		router := setupAuthRouter(authSvc)
		w := postJSON(t, router, "/api/auth/request_email", map[string]any{"email": "nobody@example.com"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Check your email for confirmation", decodeBody(t, w)["message"])
	})

	t.Run("already confirmed", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.RequestConfirmationFunc = func(ctx context.Context, email, baseURL string) (bool, error) {
			return true, nil
		}

		router := setupAuthRouter(authSvc)
		w := postJSON(t, router, "/api/auth/request_email", map[string]any{"email": "alice@example.com"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Your email has been confirmed", decodeBody(t, w)["message"])
	})
}

func TestAuthHandlers_ResetPassword(t *testing.T) {
	t.Run("known email", func(t *testing.T) {
		router := setupAuthRouter(mocks.NewMockAuthService())
		w := postJSON(t, router, "/api/auth/reset-password", map[string]any{"email": "alice@example.com"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Check your email for password reset instructions", decodeBody(t, w)["message"])
	})

	t.Run("unknown email is reported", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.RequestPasswordResetFunc = func(ctx context.Context, email, baseURL string) error {
			return domain.ErrUserNotFound
		}

		router := setupAuthRouter(authSvc)
		w := postJSON(t, router, "/api/auth/reset-password", map[string]any{"email": "nobody@example.com"})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "user not found", decodeBody(t, w)["detail"])
	})
}

func TestAuthHandlers_ResetPasswordConfirm(t *testing.T) {
	t.Run("successful reset", func(t *testing.T) {
		router := setupAuthRouter(mocks.NewMockAuthService())
		w := postJSON(t, router, "/api/auth/reset-password/confirm", map[string]any{
			"token":        "reset-token",
			"new_password": "newpassword123",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Password successfully reset", decodeBody(t, w)["message"])
	})

	t.Run("bad token", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.ResetPasswordFunc = func(ctx context.Context, token, newPassword string) error {
			return domain.ErrTokenExpired
		}

		router := setupAuthRouter(authSvc)
		w := postJSON(t, router, "/api/auth/reset-password/confirm", map[string]any{
			"token":        "expired-token",
			"new_password": "newpassword123",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "incorrect token", decodeBody(t, w)["detail"])
	})

	t.Run("new password too short", func(t *testing.T) {
		router := setupAuthRouter(mocks.NewMockAuthService())
		w := postJSON(t, router, "/api/auth/reset-password/confirm", map[string]any{
			"token":        "reset-token",
			"new_password": "short",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
