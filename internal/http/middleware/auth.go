package middleware

import (
	"net/http"
	"strings"
	"time"

	"shraddhayatra/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	userIDKey   = "userID"
	userRoleKey = "userRole"

	tokenTTL = 24 * time.Hour
)

var jwtSecret = []byte("super-secret-key-change-me")

// InitAuth must be called once at startup with the configured secret.
func InitAuth(secret string) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
}

// Claims carried in session tokens.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// NewToken signs a 24h session token for the given profile.
func NewToken(userID, role string) (string, error) {
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
}

// ValidateJWT parses a raw bearer token string.
func ValidateJWT(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenMalformed
	}
	return claims, nil
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

// Authenticate requires a valid session token and stores the identity in
// the gin context.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}
		claims, err := ValidateJWT(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set(userIDKey, claims.UserID)
		c.Set(userRoleKey, claims.Role)
		c.Next()
	}
}

// OptionalAuth attaches the identity when a valid token is present and
// passes through otherwise.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if claims, err := ValidateJWT(token); err == nil {
				c.Set(userIDKey, claims.UserID)
				c.Set(userRoleKey, claims.Role)
			}
		}
		c.Next()
	}
}

// RequestContext assembles the domain request context from whatever auth
// middleware stored.
func RequestContext(c *gin.Context) domain.RequestContext {
	return domain.RequestContext{
		UserID: c.GetString(userIDKey),
		Role:   c.GetString(userRoleKey),
	}
}
