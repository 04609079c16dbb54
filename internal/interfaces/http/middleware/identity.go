package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/siteledger/backend/internal/infrastructure/auth"
	"github.com/siteledger/backend/internal/interfaces/http/dto"
)

// Identity context keys
const (
	IdentityKey   = "identity"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// IdentityConfig holds configuration for the identity middleware
type IdentityConfig struct {
	JWTService *auth.JWTService
	// SkipPaths are paths that don't require authentication
	SkipPaths []string
}

// DefaultIdentityConfig returns default identity middleware configuration
func DefaultIdentityConfig(jwtService *auth.JWTService) IdentityConfig {
	return IdentityConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/health",
			"/api/v1/health",
		},
	}
}

// Identity creates the authentication middleware. It resolves the caller
// identity from the bearer token and aborts with 401 when the token is
// missing or unusable. Authorization decisions stay in the service layer.
func Identity(jwtService *auth.JWTService) gin.HandlerFunc {
	return IdentityWithConfig(DefaultIdentityConfig(jwtService))
}

// IdentityWithConfig creates the authentication middleware with custom config
func IdentityWithConfig(cfg IdentityConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skip := range cfg.SkipPaths {
			if path == skip {
				c.Next()
				return
			}
		}

		header := c.GetHeader(AuthHeaderKey)
		if header == "" || !strings.HasPrefix(header, BearerPrefix) {
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "missing bearer token")
			return
		}

		identity, err := cfg.JWTService.ValidateToken(strings.TrimPrefix(header, BearerPrefix))
		if err != nil {
			code := dto.ErrCodeTokenInvalid
			if errors.Is(err, auth.ErrExpiredToken) {
				code = dto.ErrCodeTokenExpired
			}
			abortUnauthorized(c, code, err.Error())
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// GetIdentity retrieves the resolved caller identity from the gin context
func GetIdentity(c *gin.Context) (*auth.Identity, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return nil, false
	}
	identity, ok := v.(*auth.Identity)
	return identity, ok
}

func abortUnauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(code, message))
}
