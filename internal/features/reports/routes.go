package reports

import (
	"github.com/gin-gonic/gin"

	"github.com/odontoforense/api-go/internal/config"
	"github.com/odontoforense/api-go/internal/features/users"
	"github.com/odontoforense/api-go/internal/middleware"
	"github.com/odontoforense/api-go/internal/pkg/signature"
)

func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config, repo *Repository, identities middleware.IdentityStore) {
	renderer := NewRenderer(signature.NewSigner(cfg.SignatureKey))
	handler := NewHandler(repo, renderer)
	auth := middleware.Authenticate(cfg.JWTSecret, identities)

	laudo := router.Group("/laudo", auth)
	{
		laudo.POST("", middleware.RequireRoles(users.PerfilAdmin, users.PerfilPerito), handler.Create)
		laudo.GET("", middleware.RequireRoles(users.PerfilAdmin, users.PerfilPerito, users.PerfilAssistente), handler.List)
		laudo.GET("/:id", middleware.RequireRoles(users.PerfilAdmin, users.PerfilPerito, users.PerfilAssistente), handler.Get)
		laudo.GET("/:id/pdf", middleware.RequireRoles(users.PerfilAdmin, users.PerfilPerito, users.PerfilAssistente), handler.GeneratePDF)
		laudo.PUT("/:id", middleware.RequireRoles(users.PerfilAdmin, users.PerfilPerito), handler.Update)
		laudo.DELETE("/:id", middleware.RequireRoles(users.PerfilAdmin), handler.Delete)
		laudo.DELETE("", middleware.RequireRoles(users.PerfilAdmin), handler.DeleteAll)
	}
}
