package dentalrecords

import (
	"github.com/gin-gonic/gin"

	"github.com/odontoforense/api-go/internal/config"
	"github.com/odontoforense/api-go/internal/features/users"
	"github.com/odontoforense/api-go/internal/middleware"
	"github.com/odontoforense/api-go/internal/pkg/cloudinary"
)

func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config, repo *Repository, uploads *cloudinary.Service, identities middleware.IdentityStore) {
	var uploadSvc UploadService
	if uploads != nil {
		uploadSvc = uploads
	}
	handler := NewHandler(repo, uploadSvc)
	auth := middleware.Authenticate(cfg.JWTSecret, identities)

	banco := router.Group("/banco-odonto", auth)
	{
		banco.POST("", middleware.RequireRoles(users.PerfilAdmin, users.PerfilPerito), handler.Create)
		banco.GET("", middleware.RequireRoles(users.PerfilAdmin, users.PerfilPerito, users.PerfilAssistente), handler.List)
		banco.GET("/:id", middleware.RequireRoles(users.PerfilAdmin, users.PerfilPerito, users.PerfilAssistente), handler.Get)
		banco.PUT("/:id", middleware.RequireRoles(users.PerfilAdmin, users.PerfilPerito), handler.Update)
		banco.DELETE("/:id", middleware.RequireRoles(users.PerfilAdmin, users.PerfilPerito), handler.Delete)
		banco.DELETE("", middleware.RequireRoles(users.PerfilAdmin), handler.DeleteAll)
	}
}
