package middleware

import (
	"log"
	"net/http"
	"strings"

	"jobmarket_billing/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleEmployer = "employer"
	RoleAdmin    = "admin"

	claimsKey = "auth_claims"
)

// Claims carried by the mobile app's bearer token. Subject is the employer id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or malformed bearer token", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Not allowed for this account", http.StatusForbidden)
)

// JWTAuth validates HS256 bearer tokens. With an empty secret every request
// passes unauthenticated (local development).
func JWTAuth(secret string) gin.HandlerFunc {
	if secret == "" {
		log.Printf("[auth][middleware] JWT_SECRET not set; authentication disabled")
		return func(c *gin.Context) { c.Next() }
	}
	key := []byte(secret)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), claims, func(*jwt.Token) (interface{}, error) {
			return key, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid || claims.Subject == "" {
			log.Printf("[auth][middleware] token rejected path=%s err=%v", c.FullPath(), err)
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// ClaimsFrom returns the verified claims, or nil when authentication is disabled.
func ClaimsFrom(c *gin.Context) *Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*Claims)
	return claims
}

// RequireRole lets through only tokens with the given role. It must run after
// JWTAuth; with authentication disabled there are no claims and it passes.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ClaimsFrom(c)
		if claims == nil {
			c.Next()
			return
		}
		if claims.Role != role {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

// SameEmployer restricts employer tokens to their own :param; admins pass.
func SameEmployer(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ActsFor(c, c.Param(param)) {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

// ActsFor reports whether the caller may act for employerID. It aborts
// nothing; handlers that read the employer from the body call it directly.
func ActsFor(c *gin.Context, employerID string) bool {
	claims := ClaimsFrom(c)
	if claims == nil || claims.Role == RoleAdmin || claims.Subject == employerID {
		return true
	}
	log.Printf("[auth][middleware] employer mismatch sub=%s employer_id=%s", claims.Subject, employerID)
	return false
}

// EmployerScoped is true for employer tokens, whose access to a resource
// loaded by id must be checked against its owner with ActsFor.
func EmployerScoped(c *gin.Context) bool {
	claims := ClaimsFrom(c)
	return claims != nil && claims.Role != RoleAdmin
}

// Forbidden writes the standard 403 body.
func Forbidden(c *gin.Context) {
	c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
}
