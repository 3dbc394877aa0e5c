package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestDocDescribesEveryRoute(t *testing.T) {
	rendered, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		BasePath    string                     `json:"basePath"`
		Paths       map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(rendered), &doc))

	assert.Equal(t, "/api", doc.BasePath)
	assert.NotEmpty(t, doc.Definitions)

	for _, path := range []string{
		"/user", "/user/login", "/user/logout", "/user/{id}",
		"/caso", "/caso/{id}",
		"/evidencia", "/evidencia/{id}",
		"/banco-odonto", "/banco-odonto/{id}",
		"/laudo", "/laudo/{id}", "/laudo/{id}/pdf",
	} {
		assert.Contains(t, doc.Paths, path)
	}
}
