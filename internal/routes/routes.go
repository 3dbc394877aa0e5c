package routes

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/odontoforense/api-go/internal/config"
	"github.com/odontoforense/api-go/internal/features/cases"
	"github.com/odontoforense/api-go/internal/features/dentalrecords"
	"github.com/odontoforense/api-go/internal/features/evidences"
	"github.com/odontoforense/api-go/internal/features/reports"
	"github.com/odontoforense/api-go/internal/features/users"
	"github.com/odontoforense/api-go/internal/middleware"
	"github.com/odontoforense/api-go/internal/pkg/cloudinary"
)

// identityStoreAdapter adapts users.Repository to middleware.IdentityStore
type identityStoreAdapter struct {
	repo *users.Repository
}

func (s *identityStoreAdapter) FindIdentity(ctx context.Context, id string) (*middleware.Identity, error) {
	usuario, err := s.repo.GetByID(ctx, id)
	if err != nil || usuario == nil {
		return nil, err
	}
	return &middleware.Identity{
		ID:     usuario.ID.Hex(),
		Nome:   usuario.Nome,
		Email:  usuario.Email,
		Perfil: usuario.Perfil,
	}, nil
}

func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config) {
	api := router.Group("/api")

	usersRepo := users.NewRepository(db)
	casesRepo := cases.NewRepository(db)
	evidencesRepo := evidences.NewRepository(db)
	recordsRepo := dentalrecords.NewRepository(db)
	reportsRepo := reports.NewRepository(db)

	identities := &identityStoreAdapter{repo: usersRepo}

	// The API degrades to URL-only attachments when Cloudinary is not configured
	uploads, err := cloudinary.NewService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.UploadFolder)
	if err != nil {
		log.Printf("cloudinary indisponível: %v", err)
		uploads = nil
	}

	users.RegisterRoutes(api, cfg, usersRepo, identities)
	cases.RegisterRoutes(api, cfg, casesRepo, identities)
	evidences.RegisterRoutes(api, cfg, evidencesRepo, uploads, casesRepo, usersRepo, identities)
	dentalrecords.RegisterRoutes(api, cfg, recordsRepo, uploads, identities)
	reports.RegisterRoutes(api, cfg, reportsRepo, identities)
}
