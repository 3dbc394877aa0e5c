package evidences

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDataColeta(t *testing.T) {
	_, err := ParseDataColeta("2025-03-14")
	require.NoError(t, err)

	_, err = ParseDataColeta("2025-03-14T10:30:00Z")
	require.NoError(t, err)

	_, err = ParseDataColeta("14/03/2025")
	require.Error(t, err)

	_, err = ParseDataColeta("")
	require.Error(t, err)
}

func TestValidateCreate(t *testing.T) {
	form := &CreateEvidenciaForm{
		NomeEvidencia: "Radiografia panorâmica",
		DataColeta:    "2025-03-14",
		ColetadoPor:   "507f1f77bcf86cd799439011",
		Caso:          "507f1f77bcf86cd799439012",
	}
	require.NoError(t, ValidateCreate(form))

	form.Categoria = "balística"
	require.Error(t, ValidateCreate(form))

	form.Categoria = CategoriaFotografias
	form.LocalRetirada = "necrotério"
	require.Error(t, ValidateCreate(form))

	form.LocalRetirada = LocalLaboratorio
	require.NoError(t, ValidateCreate(form))
}

func TestValidateUpdateRejectsBadFileURL(t *testing.T) {
	require.Error(t, ValidateUpdate(&UpdateEvidenciaRequest{FileURL: "https://example.com/malware.exe"}))
	require.Error(t, ValidateUpdate(&UpdateEvidenciaRequest{FileURL: "relative/path.jpg"}))

	require.NoError(t, ValidateUpdate(&UpdateEvidenciaRequest{FileURL: "https://res.cloudinary.com/demo/image/upload/foto.jpg"}))
	require.NoError(t, ValidateUpdate(&UpdateEvidenciaRequest{FileURL: "https://res.cloudinary.com/demo/raw/upload/ficha"}))
}
