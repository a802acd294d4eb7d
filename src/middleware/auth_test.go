package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/khabaroff/thesis-management/src/services"
)

const testSecret = "middleware-test-secret-at-least-32-chars"

// newProtectedRouter mounts RequireAdmin in front of a handler that records
// whether it ran and echoes the claims it saw.
func newProtectedRouter(tokens *services.TokenService, reached *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", RequireAdmin(tokens), func(c *gin.Context) {
		*reached = true
		fromGin, okGin := GetAdmin(c)
		fromCtx, okCtx := AdminFromContext(c.Request.Context())
		if !okGin || !okCtx || fromGin != fromCtx {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "claims missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": fromGin.ID, "username": fromGin.Username})
	})
	return router
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body %q: %v", w.Body.String(), err)
	}
	return body["error"]
}

func TestRequireAdmin_States(t *testing.T) {
	tokens := services.NewTokenService(testSecret)
	valid, err := tokens.Issue(3, "admin")
	if err != nil {
		t.Fatal(err)
	}
	expired, _ := services.NewTokenService(testSecret).
		WithClock(func() time.Time { return time.Now().Add(-25 * time.Hour) }).
		Issue(3, "admin")

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantError  string
	}{
		{"no header", "", http.StatusUnauthorized, "Access denied. No token provided."},
		{"basic scheme", "Basic YWRtaW46YWRtaW4xMjM=", http.StatusUnauthorized, "Access denied. No token provided."},
		{"lowercase bearer", "bearer " + valid, http.StatusUnauthorized, "Access denied. No token provided."},
		{"no space", "Bearer" + valid, http.StatusUnauthorized, "Access denied. No token provided."},
		{"empty token", "Bearer ", http.StatusUnauthorized, "Invalid token"},
		{"two spaces", "Bearer  " + valid, http.StatusUnauthorized, "Invalid token"},
		{"garbage", "Bearer abc.def.ghi", http.StatusUnauthorized, "Invalid token"},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, "Invalid token"},
		{"valid", "Bearer " + valid, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached := false
			router := newProtectedRouter(tokens, &reached)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				if reached {
					t.Error("downstream handler ran for rejected request")
				}
				if got := errorBody(t, w); got != tt.wantError {
					t.Errorf("error = %q, want %q", got, tt.wantError)
				}
				return
			}
			if !reached {
				t.Error("downstream handler did not run")
			}
			var body struct {
				ID       int64  `json:"id"`
				Username string `json:"username"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &body)
			if body.ID != 3 || body.Username != "admin" {
				t.Errorf("claims = %+v", body)
			}
		})
	}
}

func TestAdminFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := AdminFromContext(req.Context()); ok {
		t.Error("expected no claims on a fresh context")
	}
}
