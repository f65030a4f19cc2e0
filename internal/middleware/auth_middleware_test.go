package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rakha/simaset/internal/app/models"
	"github.com/rakha/simaset/internal/app/models/dto"
	"github.com/rakha/simaset/internal/pkg/auth"
)

const testJWTSecret = "unit-test-secret-key-32-bytes!!!"

func testRouterWithAuth(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      testJWTSecret,
		AccessTokenExp: time.Hour,
		TokenIssuer:    "simaset-test",
	})
	authMiddleware := NewAuthMiddleware(jwtService)

	router := gin.New()
	protected := router.Group("", authMiddleware.JWTAuth())
	protected.GET("/read", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": c.GetString(ContextUsername)})
	})
	protected.POST("/write", authMiddleware.RoleRequired(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router, jwtService
}

func signedToken(t *testing.T, jwtService *auth.JWTService, role models.RoleType) string {
	t.Helper()
	token, _, err := jwtService.GenerateToken(&models.User{ID: 1, Username: "budi", Role: role})
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	return token
}

func decodeErrorCode(t *testing.T, body []byte) dto.ErrorCode {
	t.Helper()
	var resp dto.ErrorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if resp.Error == nil {
		t.Fatal("response carries no error detail")
	}
	return resp.Error.Code
}

func TestJWTAuth(t *testing.T) {
	router, jwtService := testRouterWithAuth(t)

	expiredService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      testJWTSecret,
		AccessTokenExp: -time.Minute,
		TokenIssuer:    "simaset-test",
	})

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{
			name:       "valid token",
			authHeader: "Bearer " + signedToken(t, jwtService, models.RoleStaff),
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
			wantCode:   dto.ErrorCodeInvalidToken,
		},
		{
			name:       "malformed header",
			authHeader: "Token abc",
			wantStatus: http.StatusUnauthorized,
			wantCode:   dto.ErrorCodeInvalidToken,
		},
		{
			name:       "garbage token",
			authHeader: "Bearer not.a.jwt",
			wantStatus: http.StatusUnauthorized,
			wantCode:   dto.ErrorCodeInvalidToken,
		},
		{
			name:       "expired token",
			authHeader: "Bearer " + signedToken(t, expiredService, models.RoleStaff),
			wantStatus: http.StatusUnauthorized,
			wantCode:   dto.ErrorCodeExpiredToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/read", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantCode != "" {
				if code := decodeErrorCode(t, w.Body.Bytes()); code != tt.wantCode {
					t.Errorf("error code = %q, want %q", code, tt.wantCode)
				}
			}
		})
	}
}

func TestRoleRequired(t *testing.T) {
	router, jwtService := testRouterWithAuth(t)

	tests := []struct {
		name       string
		role       models.RoleType
		wantStatus int
	}{
		{name: "admin allowed", role: models.RoleAdmin, wantStatus: http.StatusOK},
		{name: "staff forbidden", role: models.RoleStaff, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/write", nil)
			req.Header.Set("Authorization", "Bearer "+signedToken(t, jwtService, tt.role))
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusForbidden {
				if code := decodeErrorCode(t, w.Body.Bytes()); code != dto.ErrorCodeForbidden {
					t.Errorf("error code = %q, want %q", code, dto.ErrorCodeForbidden)
				}
			}
		})
	}
}
