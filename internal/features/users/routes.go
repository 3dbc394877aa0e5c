package users

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/odontoforense/api-go/internal/config"
	"github.com/odontoforense/api-go/internal/middleware"
	"github.com/odontoforense/api-go/internal/pkg/ratelimit"
)

func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config, repo *Repository, identities middleware.IdentityStore) {
	handler := NewHandler(repo, cfg)
	auth := middleware.Authenticate(cfg.JWTSecret, identities)

	// Brute-force guard on the only unauthenticated endpoint
	loginLimiter := ratelimit.New(10, time.Minute)

	user := router.Group("/user")
	{
		user.POST("/login", ratelimit.Middleware(loginLimiter), handler.Login)
		user.POST("/logout", auth, middleware.RequireRoles(PerfilAdmin, PerfilPerito, PerfilAssistente), handler.Logout)

		user.POST("", auth, middleware.RequireRoles(PerfilAdmin), handler.Create)
		user.GET("", auth, middleware.RequireRoles(PerfilAdmin), handler.List)
		user.GET("/:id", auth, middleware.RequireRoles(PerfilAdmin, PerfilPerito, PerfilAssistente), handler.Get)
		user.PUT("/:id", auth, middleware.RequireRoles(PerfilAdmin), handler.Update)
		user.DELETE("/:id", auth, middleware.RequireRoles(PerfilAdmin), handler.Delete)
		user.DELETE("", auth, middleware.RequireRoles(PerfilAdmin), handler.DeleteAll)
	}
}
