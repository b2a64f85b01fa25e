package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	apperrors "bizdesk/internal/errors"
	"bizdesk/internal/models"
)

const (
	issuer = "bizdesk-api"

	accountIDKey = "accountID"
	usernameKey  = "username"
	roleKey      = "role"
)

// JWTClaims represents the claims in the JWT
type JWTClaims struct {
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies bearer tokens.
type TokenIssuer struct {
	key    []byte
	expiry time.Duration
	now    func() time.Time
}

// NewTokenIssuer returns an issuer signing HS256 tokens with secret that
// expire after expiry.
func NewTokenIssuer(secret string, expiry time.Duration) *TokenIssuer {
	return &TokenIssuer{key: []byte(secret), expiry: expiry, now: time.Now}
}

// Issue generates a token for the account.
func (t *TokenIssuer) Issue(account *models.Account) (string, error) {
	now := t.now()
	claims := &JWTClaims{
		Username: account.Username,
		Role:     account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(t.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   strconv.FormatInt(account.ID, 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.key)
}

// Parse validates tokenString and returns its claims.
func (t *TokenIssuer) Parse(tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.key, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(t.now))
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if _, err := strconv.ParseInt(claims.Subject, 10, 64); err != nil {
		return nil, fmt.Errorf("invalid token subject %q", claims.Subject)
	}
	return claims, nil
}

// AuthMiddleware verifies the bearer token and sets the account in the context
func AuthMiddleware(tokens *TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, apperrors.WithMessage(apperrors.ErrUnauthenticated, "Authorization header is required"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abort(c, apperrors.WithMessage(apperrors.ErrUnauthenticated, "Invalid authorization header format"))
			return
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			abort(c, apperrors.WithMessage(apperrors.ErrUnauthenticated, "Invalid or expired token"))
			return
		}

		id, _ := strconv.ParseInt(claims.Subject, 10, 64)
		c.Set(accountIDKey, id)
		c.Set(usernameKey, claims.Username)
		c.Set(roleKey, claims.Role)
		c.Next()
	}
}

// RequireRole rejects requests whose token does not carry role.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if Role(c) != role {
			abort(c, apperrors.ErrForbidden)
			return
		}
		c.Next()
	}
}

// AccountID returns the authenticated account's ID.
func AccountID(c *gin.Context) int64 {
	return c.GetInt64(accountIDKey)
}

// Role returns the authenticated account's role.
func Role(c *gin.Context) models.Role {
	r, _ := c.Get(roleKey)
	role, _ := r.(models.Role)
	return role
}

func abort(c *gin.Context, appErr *apperrors.AppError) {
	c.AbortWithStatusJSON(appErr.StatusCode, Body(appErr))
}

// CORS allows browser clients on any origin to call the API.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Request-ID")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
