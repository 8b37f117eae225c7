package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/recyclezone/marketplace/internal/infrastructure/auth"
	"github.com/recyclezone/marketplace/internal/infrastructure/logger"
	"github.com/recyclezone/marketplace/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// Auth context keys
const (
	ClaimsKey      = "auth_claims"
	CallerEmailKey = "caller_email"
	AuthHeaderKey  = "Authorization"
)

// TokenValidator verifies an access token and returns its claims
type TokenValidator interface {
	ValidateToken(token string) (*auth.Claims, error)
}

// AuthConfig holds configuration for the authentication guard
type AuthConfig struct {
	// Validator is required for token validation
	Validator TokenValidator
	// TokenBlacklist is optional for checking revoked tokens
	TokenBlacklist auth.TokenBlacklist
	// Logger for middleware logging
	Logger *zap.Logger
}

// RequireAuthenticated returns a guard that admits only requests carrying a
// valid bearer token. A missing or malformed header is 401; a token that
// fails verification, has expired or was revoked is 403.
func RequireAuthenticated(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authenticate(c, cfg) {
			c.Next()
		}
	}
}

// authenticate verifies the caller and stores the identity in c. It aborts
// the request and returns false on failure.
func authenticate(c *gin.Context, cfg AuthConfig) bool {
	token, err := auth.ExtractBearerToken(c.GetHeader(AuthHeaderKey))
	if err != nil {
		denyAuth(c, cfg, err, dto.ErrCodeUnauthorized, "Authentication required")
		return false
	}

	claims, err := cfg.Validator.ValidateToken(token)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			denyAuth(c, cfg, err, dto.ErrCodeTokenExpired, "Token has expired")
		} else {
			denyAuth(c, cfg, err, dto.ErrCodeTokenInvalid, "Invalid token")
		}
		return false
	}

	if cfg.TokenBlacklist != nil {
		ctx := c.Request.Context()
		revoked, err := cfg.TokenBlacklist.IsUserTokenInvalidated(ctx, claims.Email, claims.IssuedAtTime())
		if err != nil {
			// Fail open when the blacklist is unreachable.
			if cfg.Logger != nil {
				cfg.Logger.Error("Failed to check token revocation",
					zap.String("user_email", claims.Email),
					zap.Error(err))
			}
		} else if revoked {
			denyAuth(c, cfg, auth.ErrTokenRevoked, dto.ErrCodeTokenRevoked, "Token has been revoked")
			return false
		}
	}

	c.Set(ClaimsKey, claims)
	c.Set(CallerEmailKey, claims.Email)
	c.Request = c.Request.WithContext(logger.WithUserEmail(c.Request.Context(), claims.Email))
	return true
}

func denyAuth(c *gin.Context, cfg AuthConfig, err error, code, message string) {
	if cfg.Logger != nil {
		cfg.Logger.Warn("Authentication failed",
			zap.Error(err),
			zap.String("code", code),
			zap.String("path", c.Request.URL.Path),
		)
	}
	abortWithError(c, code, message)
}

// abortWithError stops the chain with the standard error envelope
func abortWithError(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(dto.GetHTTPStatus(code),
		dto.NewErrorResponseWithRequestID(code, message, c.GetString(RequestIDKey)))
}

// GetClaims retrieves the verified claims from gin.Context
func GetClaims(c *gin.Context) *auth.Claims {
	if claims, exists := c.Get(ClaimsKey); exists {
		if authClaims, ok := claims.(*auth.Claims); ok {
			return authClaims
		}
	}
	return nil
}

// GetCallerEmail returns the verified caller email, empty when unauthenticated
func GetCallerEmail(c *gin.Context) string {
	return c.GetString(CallerEmailKey)
}
