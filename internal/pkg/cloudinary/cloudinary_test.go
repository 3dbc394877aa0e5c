package cloudinary

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/require"
)

func fileHeader(filename, contentType string, size int64) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	h.Set("Content-Type", contentType)
	return &multipart.FileHeader{
		Filename: filename,
		Header:   h,
		Size:     size,
	}
}

func TestValidateUploadAcceptsAllowedFiles(t *testing.T) {
	cases := []*multipart.FileHeader{
		fileHeader("radiografia.jpg", "image/jpeg", 1024),
		fileHeader("foto.PNG", "image/png", 2048),
		fileHeader("video.mp4", "video/mp4", 10 * 1024 * 1024),
		fileHeader("ficha.pdf", "application/pdf", 4096),
	}
	for _, header := range cases {
		require.NoError(t, ValidateUpload(header), header.Filename)
	}
}

func TestValidateUploadRejectsDisallowedExtension(t *testing.T) {
	err := ValidateUpload(fileHeader("malware.exe", "application/octet-stream", 1024))
	require.Error(t, err)

	err = ValidateUpload(fileHeader("planilha.xlsx", "application/vnd.ms-excel", 1024))
	require.Error(t, err)
}

func TestValidateUploadRejectsMimeMismatch(t *testing.T) {
	// Extension allowed but declared media type is not
	err := ValidateUpload(fileHeader("foto.jpg", "application/octet-stream", 1024))
	require.Error(t, err)
}

func TestValidateUploadRejectsOversizedFile(t *testing.T) {
	err := ValidateUpload(fileHeader("video.mp4", "video/mp4", MaxUploadSize+1))
	require.Error(t, err)
}

func TestResourceTypeFor(t *testing.T) {
	require.Equal(t, "image", ResourceTypeFor("image/jpeg"))
	require.Equal(t, "image", ResourceTypeFor("image/png"))
	require.Equal(t, "video", ResourceTypeFor("video/mp4"))
	require.Equal(t, "raw", ResourceTypeFor("application/pdf"))
}

func TestNewServiceRequiresCredentials(t *testing.T) {
	_, err := NewService("", "key", "secret", "odontoforense")
	require.Error(t, err)
}
