package response

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMessageResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		fn   func(c *gin.Context, msg string)
		code int
	}{
		{"bad request", BadRequest, 400},
		{"unauthorized", Unauthorized, 401},
		{"forbidden", Forbidden, 403},
		{"not found", NotFound, 404},
		{"too many requests", TooManyRequests, 429},
		{"ok", OK, 200},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			tc.fn(c, "mensagem")
			require.Equal(t, tc.code, w.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.Equal(t, "mensagem", body["message"])
		})
	}
}

func TestInternalIncludesDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Internal(c, "Erro ao cadastrar usuário.", errors.New("write conflict"))
	require.Equal(t, 500, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Erro ao cadastrar usuário.", body["error"])
	require.Equal(t, "write conflict", body["details"])
}

func TestInternalWithoutErrOmitsDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Internal(c, "Erro ao gerar PDF.", nil)
	require.Equal(t, 500, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotContains(t, body, "details")
}
