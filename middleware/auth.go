package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"api/config"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by RequireAuth
const (
	ContextUserID       = "userId"
	ContextGithubHandle = "githubUsername"
	ContextAvatarURL    = "avatarUrl"
)

// sessionClaims is the shape of the identity provider's access tokens. The
// external handle lives in the user metadata, mirroring the OAuth provider's
// GitHub integration.
type sessionClaims struct {
	UserMetadata struct {
		UserName          string `json:"user_name"`
		PreferredUsername string `json:"preferred_username"`
		AvatarURL         string `json:"avatar_url"`
	} `json:"user_metadata"`
	jwt.RegisteredClaims
}

// RequireAuth validates the bearer token and stores the session identity in
// the request context. Requests without a valid token are rejected with 401;
// a token whose claims carry no external handle is rejected the same way.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.AuthJwtSecret == "" {
			response.Error(c, http.StatusInternalServerError, "Server configuration error")
			c.Abort()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims := &sessionClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(config.AuthJwtSecret), nil
		})
		if err != nil || !token.Valid {
			response.Error(c, http.StatusUnauthorized, "Authentication failed")
			c.Abort()
			return
		}

		handle := claims.UserMetadata.UserName
		if handle == "" {
			handle = claims.UserMetadata.PreferredUsername
		}
		if handle == "" {
			response.Error(c, http.StatusUnauthorized, "GitHub username not found in session")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.Subject)
		c.Set(ContextGithubHandle, handle)
		c.Set(ContextAvatarURL, claims.UserMetadata.AvatarURL)
		c.Next()
	}
}
