package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"smartdine/internal/domain/service"
	"smartdine/internal/errors"
	mockService "smartdine/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuth(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	err := mw(func(echo.Context) error {
		called = true

		return nil
	})(c)
	require.NoError(t, err)

	return rec, c, called
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(*mockService.MockTokenService)
		wantCalled bool
		wantCode   string
	}{
		{name: "missing header", wantCode: "UNAUTHORIZED"},
		{name: "not a bearer token", header: "Basic abc", wantCode: "INVALID_TOKEN_FORMAT"},
		{name: "empty bearer token", header: "Bearer ", wantCode: "INVALID_TOKEN_FORMAT"},
		{
			name:   "rejected token",
			header: "Bearer expired",
			setup: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))
			},
			wantCode: "INVALID_TOKEN",
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: 9, Roles: []string{"diner"}}, nil)
			},
			wantCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockService.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokens)
			}

			rec, c, called := runAuth(t, NewAuthMiddleware(tokens).Authenticate, tt.header)

			assert.Equal(t, tt.wantCalled, called)
			if !tt.wantCalled {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Equal(t, tt.wantCode, errorCode(t, rec))

				return
			}

			userID, ok := GetUserID(c)
			assert.True(t, ok)
			assert.EqualValues(t, 9, userID)
			assert.Equal(t, []string{"diner"}, GetRoles(c))
		})
	}
}

func TestAuthenticateRole(t *testing.T) {
	tests := []struct {
		name       string
		roles      []string
		wantCalled bool
		wantStatus int
	}{
		{name: "diner token", roles: []string{"diner"}, wantCalled: true, wantStatus: http.StatusOK},
		{name: "token without roles", roles: nil, wantStatus: http.StatusForbidden},
		{name: "token with other role", roles: []string{"admin"}, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockService.NewMockTokenService(t)
			tokens.EXPECT().ValidateToken("tok").Return(&service.Claims{UserID: 3, Roles: tt.roles}, nil)

			rec, _, called := runAuth(t, NewAuthMiddleware(tokens).AuthenticateRole("diner"), "Bearer tok")

			assert.Equal(t, tt.wantCalled, called)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if !tt.wantCalled {
				assert.Equal(t, "FORBIDDEN", errorCode(t, rec))
			}
		})
	}

	t.Run("missing token is unauthorized, not forbidden", func(t *testing.T) {
		rec, _, called := runAuth(t, NewAuthMiddleware(mockService.NewMockTokenService(t)).AuthenticateRole("diner"), "")

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestOptionalAuthenticate(t *testing.T) {
	t.Run("anonymous passes through", func(t *testing.T) {
		_, c, called := runAuth(t, NewAuthMiddleware(mockService.NewMockTokenService(t)).OptionalAuthenticate, "")

		assert.True(t, called)
		_, ok := GetUserID(c)
		assert.False(t, ok)
	})

	t.Run("bad token is still rejected", func(t *testing.T) {
		tokens := mockService.NewMockTokenService(t)
		tokens.EXPECT().ValidateToken("forged").Return(nil, errors.New("signature is invalid"))

		rec, _, called := runAuth(t, NewAuthMiddleware(tokens).OptionalAuthenticate, "Bearer forged")

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
