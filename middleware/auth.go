package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	accountRepo "rosterly/database/repository/account"
	"rosterly/utils"
)

// Context keys set by the auth middleware.
const (
	ContextAccountID = "accountID"
	ContextIsAdmin   = "isAdmin"
)

// AuthMiddleware validates the bearer token and resolves the signed-in
// account. The token hash and account flags are checked against the auth
// cache first; on a miss the account is loaded from the database and its
// flags cached. Login seeds the same cache through utils.StoreAuthEntry, so
// a cache hit carries the admin and suspension state recorded then.
func AuthMiddleware(accounts accountRepo.AccountRepository) gin.HandlerFunc {
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
		accountID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		tokenHash := utils.HashToken(tokenString)
		entry, hit := utils.FetchAuthEntry(utils.AuthCacheClient, accountID)
		if hit && entry.TokenHash != tokenHash {
			hit = false
		}
		if hit {
			if entry.Suspended {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Account is suspended"})
				return
			}
		} else {
			acct, err := accounts.GetByID(accountID)
			if err != nil || acct == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account not found"})
				return
			}
			if acct.Suspended {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Account is suspended"})
				return
			}
			entry = utils.AuthEntry{TokenHash: tokenHash, IsAdmin: acct.IsAdmin}
			utils.StoreAuthEntry(utils.AuthCacheClient, accountID, entry)
		}

		c.Set(ContextAccountID, accountID)
		c.Set(ContextIsAdmin, entry.IsAdmin)
		c.Next()
	}
}
