package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidAttachmentURL(t *testing.T) {
	valid := []string{
		"https://res.cloudinary.com/demo/image/upload/v1/odontoforense/foto.jpg",
		"http://example.com/arquivo.PDF",
		"https://example.com/video.mp4",
		"https://res.cloudinary.com/demo/raw/upload/v1/odontoforense/ficha",
		"https://example.com/clip.webm",
	}
	for _, url := range valid {
		require.True(t, IsValidAttachmentURL(url), url)
	}

	invalid := []string{
		"",
		"   ",
		"ftp://example.com/foto.jpg",
		"res.cloudinary.com/demo/image/upload/foto.jpg",
		"https://example.com/malware.exe",
		"https://example.com/documento.docx",
	}
	for _, url := range invalid {
		require.False(t, IsValidAttachmentURL(url), url)
	}
}

func TestIsValidEmail(t *testing.T) {
	require.True(t, IsValidEmail("perito@pericia.gov.br"))
	require.False(t, IsValidEmail(""))
	require.False(t, IsValidEmail("sem-arroba"))
	require.False(t, IsValidEmail("a@b"))
}

func TestIsBlank(t *testing.T) {
	require.True(t, IsBlank(""))
	require.True(t, IsBlank("  \t "))
	require.False(t, IsBlank("x"))
}

func TestInEnum(t *testing.T) {
	allowed := []string{"em andamento", "finalizado", "arquivado"}
	require.True(t, InEnum("finalizado", allowed))
	require.False(t, InEnum("cancelado", allowed))
}
