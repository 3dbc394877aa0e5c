package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/odontoforense/api-go/internal/pkg/response"
	"github.com/odontoforense/api-go/internal/pkg/token"
)

const identityKey = "identity"

// Identity is the resolved caller attached to an authenticated request.
// The password hash never travels with it.
type Identity struct {
	ID     string
	Nome   string
	Email  string
	Perfil string
}

// IdentityStore resolves a token subject to its current identity and role
type IdentityStore interface {
	FindIdentity(ctx context.Context, id string) (*Identity, error)
}

// Authenticate parses the bearer token, verifies it and resolves the subject.
// Missing or malformed header and failed verification both end the request
// with 401; downstream handlers can rely on the identity being present.
func Authenticate(secret string, store IdentityStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Token não fornecido")
			c.Abort()
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c, "Token não fornecido")
			c.Abort()
			return
		}

		claims, err := token.Validate(parts[1], secret)
		if err != nil {
			response.Unauthorized(c, "Token inválido")
			c.Abort()
			return
		}

		identity, err := store.FindIdentity(c.Request.Context(), claims.UserID)
		if err != nil || identity == nil {
			// expired subject: the user behind the token no longer exists
			response.Unauthorized(c, "Token inválido")
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireRoles denies the request unless the caller's role is in the set.
// Evaluated after Authenticate; pure check, no side effects.
func RequireRoles(perfis ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			response.Unauthorized(c, "Token não fornecido")
			c.Abort()
			return
		}

		for _, perfil := range perfis {
			if identity.Perfil == perfil {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "Acesso negado: permissão insuficiente")
		c.Abort()
	}
}

// IdentityFrom returns the authenticated identity attached to the request
func IdentityFrom(c *gin.Context) (*Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*Identity)
	return identity, ok
}
