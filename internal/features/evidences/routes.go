package evidences

import (
	"github.com/gin-gonic/gin"

	"github.com/odontoforense/api-go/internal/config"
	"github.com/odontoforense/api-go/internal/features/users"
	"github.com/odontoforense/api-go/internal/middleware"
	"github.com/odontoforense/api-go/internal/pkg/cloudinary"
)

func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config, repo *Repository, uploads *cloudinary.Service, casos, coletores ReferenceChecker, identities middleware.IdentityStore) {
	var uploadSvc UploadService
	if uploads != nil {
		uploadSvc = uploads
	}
	handler := NewHandler(repo, uploadSvc, casos, coletores)
	auth := middleware.Authenticate(cfg.JWTSecret, identities)

	evidencia := router.Group("/evidencia", auth)
	{
		evidencia.POST("", middleware.RequireRoles(users.PerfilAdmin, users.PerfilPerito, users.PerfilAssistente), handler.Create)
		evidencia.GET("", middleware.RequireRoles(users.PerfilAdmin, users.PerfilPerito, users.PerfilAssistente), handler.List)
		evidencia.GET("/:id", middleware.RequireRoles(users.PerfilAdmin, users.PerfilPerito, users.PerfilAssistente), handler.Get)
		evidencia.PUT("/:id", middleware.RequireRoles(users.PerfilAdmin, users.PerfilPerito, users.PerfilAssistente), handler.Update)
		evidencia.DELETE("/:id", middleware.RequireRoles(users.PerfilAdmin), handler.Delete)
		evidencia.DELETE("", middleware.RequireRoles(users.PerfilAdmin), handler.DeleteAll)
	}
}
