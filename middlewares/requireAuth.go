package middlewares

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Principal is the authenticated user extracted from a session token. It is
// passed explicitly to handlers and services instead of reading ambient
// request state.
type Principal struct {
	UserID string
	Name   string
	Email  string
	Role   string
}

const principalKey = "principal"

// SetPrincipal attaches the authenticated principal to the request context.
func SetPrincipal(ctx *gin.Context, principal Principal) {
	ctx.Set(principalKey, principal)
}

// GetPrincipal returns the authenticated principal, if any.
func GetPrincipal(ctx *gin.Context) (Principal, bool) {
	value, exists := ctx.Get(principalKey)
	if !exists {
		return Principal{}, false
	}
	principal, ok := value.(Principal)
	return principal, ok
}

// RequireAuth verifies the provider-issued session token from the
// Authorization header and sets the principal for downstream handlers.
func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization token required"})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			secret := os.Getenv("SESSION_JWT_SECRET")
			if secret == "" {
				return nil, fmt.Errorf("SESSION_JWT_SECRET is not set")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired session token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid session token claims"})
			return
		}

		userID, _ := claims["sub"].(string)
		if userID == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Session token has no subject"})
			return
		}

		name, _ := claims["name"].(string)
		email, _ := claims["email"].(string)
		role, _ := claims["role"].(string)

		SetPrincipal(ctx, Principal{
			UserID: userID,
			Name:   name,
			Email:  email,
			Role:   role,
		})
		ctx.Next()
	}
}
