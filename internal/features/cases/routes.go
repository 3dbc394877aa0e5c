package cases

import (
	"github.com/gin-gonic/gin"

	"github.com/odontoforense/api-go/internal/config"
	"github.com/odontoforense/api-go/internal/middleware"
	"github.com/odontoforense/api-go/internal/features/users"
)

func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config, repo *Repository, identities middleware.IdentityStore) {
	handler := NewHandler(repo)
	auth := middleware.Authenticate(cfg.JWTSecret, identities)

	caso := router.Group("/caso", auth)
	{
		caso.POST("", middleware.RequireRoles(users.PerfilAdmin, users.PerfilPerito), handler.Create)
		caso.GET("", middleware.RequireRoles(users.PerfilAdmin, users.PerfilPerito, users.PerfilAssistente), handler.List)
		caso.GET("/:id", middleware.RequireRoles(users.PerfilAdmin, users.PerfilPerito, users.PerfilAssistente), handler.Get)
		caso.PUT("/:id", middleware.RequireRoles(users.PerfilAdmin, users.PerfilPerito), handler.Update)
		caso.DELETE("/:id", middleware.RequireRoles(users.PerfilAdmin), handler.Delete)
		caso.DELETE("", middleware.RequireRoles(users.PerfilAdmin), handler.DeleteAll)
	}
}
