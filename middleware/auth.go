package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"rex-dinner-api/access"
	"rex-dinner-api/config"
	"rex-dinner-api/models"
)

// Token scopes. A password-change token is only good for completing the
// forced password change; it never opens the staff panel.
const (
	ScopeSession        = "session"
	ScopePasswordChange = "password_change"
)

type Claims struct {
	UserID   int              `json:"user_id"`
	Username string           `json:"username"`
	Role     string           `json:"role"`
	Group    models.UserGroup `json:"group"`
	Scope    string           `json:"scope"`
	jwt.RegisteredClaims
}

// GenerateSessionToken creates a signed 24h session JWT for a user
func GenerateSessionToken(user *models.User) (string, error) {
	return generateToken(user, ScopeSession, 24*time.Hour)
}

// GeneratePasswordChangeToken creates the short-lived token handed out
// when a login is parked in the forced-password-change state.
func GeneratePasswordChangeToken(user *models.User) (string, error) {
	return generateToken(user, ScopePasswordChange, 15*time.Minute)
}

func generateToken(user *models.User, scope string, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		Group:    user.Group,
		Scope:    scope,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret())
}

// ParseToken validates a raw token string and returns its claims.
func ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return config.JWTSecret(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(authHeader, "Bearer "), true
}

// AuthRequired validates the session JWT and injects claims into context.
// Password-change tokens are rejected here: a user parked in the forced
// password change never reaches the panel.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := BearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		claims, err := ParseToken(tokenStr)
		if err != nil || claims.Scope != ScopeSession {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		c.Set("claims", claims)
		c.Next()
	}
}

// SectionRequired enforces that the caller's group may see the given
// staff panel section. Visibility is re-evaluated from the claims on every
// request.
func SectionRequired(section access.Section) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil || !access.Allowed(claims.Group, section) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied for section '" + string(section) + "'"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetClaims extracts the caller's claims from context, or nil.
func GetClaims(c *gin.Context) *Claims {
	val, _ := c.Get("claims")
	claims, _ := val.(*Claims)
	return claims
}
