package dentalrecords

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createRouter(handler *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/banco-odonto", handler.Create)
	return router
}

func postForm(t *testing.T, router *gin.Engine, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/banco-odonto", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateRejectsMissingAttachment(t *testing.T) {
	router := createRouter(NewHandler(nil, nil))

	w := postForm(t, router, map[string]string{
		"tipodoregistro": TipoAnteMortem,
		"caracteristica": "Arcada superior completa",
		"dataRegistro":   "2024-03-10",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "fileURL")
}

func TestCreateRejectsInvalidFileURL(t *testing.T) {
	router := createRouter(NewHandler(nil, nil))

	w := postForm(t, router, map[string]string{
		"tipodoregistro": TipoAnteMortem,
		"caracteristica": "Arcada superior completa",
		"dataRegistro":   "2024-03-10",
		"fileUrl":        "https://example.com/registro.exe",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRejectsMalformedConteudoLaudo(t *testing.T) {
	router := createRouter(NewHandler(nil, nil))

	w := postForm(t, router, map[string]string{
		"tipodoregistro": TipoAnteMortem,
		"caracteristica": "Arcada superior completa",
		"dataRegistro":   "2024-03-10",
		"conteudoLaudo":  "{tipoDenticao:",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "conteudoLaudo")
}
