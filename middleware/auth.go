package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	userRepo "pulsecrm/database/repository/user"
	"pulsecrm/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// JWTAuthUserMiddleware verifies the caller's session token. The token hash
// is checked against the Redis auth cache first and falls back to the user
// record on a miss. On success the user's ID and role are set in the context.
func JWTAuthUserMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		// Try the auth cache first.
		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			cachedHash, err := authCache.Get(ctx, utils.AuthCachePrefix+userID).Result()
			if err == nil {
				if cachedHash != computedHash {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
					return
				}
				_ = authCache.Expire(ctx, utils.AuthCachePrefix+userID, utils.AuthCacheTTL).Err()

				// The role still comes from the record; keep the DB roundtrip
				// only for role resolution on cached hits.
				usr, err := users.GetByID(userID)
				if err != nil || usr == nil {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
					return
				}
				c.Set("userID", userID)
				c.Set("userEmail", usr.Email)
				c.Set("userRole", usr.Role)
				c.Next()
				return
			} else if err != redis.Nil {
				utils.GetLogger().Warn("auth cache read failed, falling back to DB", zap.Error(err))
			}
		}

		// Cache miss: check the stored token hash on the user record.
		usr, err := users.GetByID(userID)
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
			return
		}
		if usr.TokenHash == "" || usr.TokenHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
			return
		}

		if authCache != nil {
			_ = authCache.Set(ctx, utils.AuthCachePrefix+userID, computedHash, utils.AuthCacheTTL).Err()
		}

		c.Set("userID", userID)
		c.Set("userEmail", usr.Email)
		c.Set("userRole", usr.Role)
		c.Next()
	}
}
