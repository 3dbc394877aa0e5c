package cloudinary

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Service handles attachment uploads to Cloudinary
type Service struct {
	cld          *cloudinary.Cloudinary
	uploadFolder string
}

// UploadResult contains the result of a successful upload
type UploadResult struct {
	URL          string
	PublicID     string
	ResourceType string
	FileSize     int64
	Format       string
}

// Upload validation rules: images, one video container, and PDF
var (
	AllowedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".mp4", ".pdf"}
	AllowedMimeTypes  = []string{
		"image/jpeg", "image/jpg", "image/png", "image/gif",
		"video/mp4", "application/pdf",
	}

	MaxUploadSize = int64(50 * 1024 * 1024) // 50MiB
)

// NewService creates a new Cloudinary service instance
func NewService(cloudName, apiKey, apiSecret, uploadFolder string) (*Service, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, errors.New("cloudinary credentials are required")
	}

	cloudinaryURL := fmt.Sprintf("cloudinary://%s:%s@%s", apiKey, apiSecret, cloudName)

	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary client: %w", err)
	}

	if uploadFolder == "" {
		uploadFolder = "odontoforense"
	}

	return &Service{
		cld:          cld,
		uploadFolder: uploadFolder,
	}, nil
}

// Upload sends the file to Cloudinary under the configured folder, selecting
// the resource type from the declared media type, and returns the durable URL
func (s *Service) Upload(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*UploadResult, error) {
	resourceType := ResourceTypeFor(header.Header.Get("Content-Type"))

	uploadParams := uploader.UploadParams{
		Folder:       s.uploadFolder,
		ResourceType: resourceType,
	}

	result, err := s.cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	return &UploadResult{
		URL:          result.SecureURL,
		PublicID:     result.PublicID,
		ResourceType: resourceType,
		FileSize:     int64(result.Bytes),
		Format:       result.Format,
	}, nil
}

// Delete removes an asset from Cloudinary
func (s *Service) Delete(ctx context.Context, publicID, resourceType string) error {
	if publicID == "" {
		return errors.New("publicID is required")
	}
	if resourceType == "" {
		resourceType = "image"
	}

	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: resourceType,
	})
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	return nil
}

// ResourceTypeFor maps a declared media type onto a Cloudinary resource type.
// PDFs are stored as raw assets so their delivery URL carries the raw marker.
func ResourceTypeFor(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "video/"):
		return "video"
	case contentType == "application/pdf":
		return "raw"
	default:
		return "image"
	}
}

// ValidateUpload enforces the attachment allow-list and the size ceiling:
// the extension and the declared media type must both match, before any
// bytes reach the object store.
func ValidateUpload(header *multipart.FileHeader) error {
	if header.Size > MaxUploadSize {
		return fmt.Errorf("arquivo excede o tamanho máximo de %d MB", MaxUploadSize/(1024*1024))
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !contains(AllowedExtensions, ext) {
		return fmt.Errorf("arquivo inválido: %s. Apenas imagens, vídeos e PDFs são permitidos", ext)
	}

	contentType := header.Header.Get("Content-Type")
	if !contains(AllowedMimeTypes, contentType) {
		return fmt.Errorf("tipo de conteúdo inválido: %s. Apenas imagens, vídeos e PDFs são permitidos", contentType)
	}

	return nil
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
