package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, sub, role string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func newRouter(secret string) *gin.Engine {
	r := gin.New()
	r.Use(JWTAuth(secret))
	r.GET("/v1/employers/:employer_id/fees", SameEmployer("employer_id"), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/v1/fees/:fee_id/cash-verification", RequireRole(RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func do(r *gin.Engine, method, path, token string) int {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestJWTAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newRouter(testSecret)
	future := time.Now().Add(time.Hour)

	cases := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{name: "missing token", method: http.MethodGet, path: "/v1/employers/emp-1/fees", want: http.StatusUnauthorized},
		{name: "wrong secret", method: http.MethodGet, path: "/v1/employers/emp-1/fees", token: signToken(t, "other", "emp-1", RoleEmployer, future), want: http.StatusUnauthorized},
		{name: "expired", method: http.MethodGet, path: "/v1/employers/emp-1/fees", token: signToken(t, testSecret, "emp-1", RoleEmployer, time.Now().Add(-time.Minute)), want: http.StatusUnauthorized},
		{name: "own fees", method: http.MethodGet, path: "/v1/employers/emp-1/fees", token: signToken(t, testSecret, "emp-1", RoleEmployer, future), want: http.StatusOK},
		{name: "other employer", method: http.MethodGet, path: "/v1/employers/emp-2/fees", token: signToken(t, testSecret, "emp-1", RoleEmployer, future), want: http.StatusForbidden},
		{name: "admin reads any employer", method: http.MethodGet, path: "/v1/employers/emp-2/fees", token: signToken(t, testSecret, "ops-1", RoleAdmin, future), want: http.StatusOK},
		{name: "employer cannot verify cash", method: http.MethodPost, path: "/v1/fees/fee-1/cash-verification", token: signToken(t, testSecret, "emp-1", RoleEmployer, future), want: http.StatusForbidden},
		{name: "admin verifies cash", method: http.MethodPost, path: "/v1/fees/fee-1/cash-verification", token: signToken(t, testSecret, "ops-1", RoleAdmin, future), want: http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := do(r, tc.method, tc.path, tc.token); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestJWTAuth_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newRouter("")

	if got := do(r, http.MethodGet, "/v1/employers/emp-2/fees", ""); got != http.StatusOK {
		t.Fatalf("expected 200, got %d", got)
	}
	if got := do(r, http.MethodPost, "/v1/fees/fee-1/cash-verification", ""); got != http.StatusOK {
		t.Fatalf("expected 200, got %d", got)
	}
}
