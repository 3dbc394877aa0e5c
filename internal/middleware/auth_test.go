package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/odontoforense/api-go/internal/pkg/token"
)

type fakeIdentityStore struct {
	identities map[string]*Identity
}

func (s *fakeIdentityStore) FindIdentity(_ context.Context, id string) (*Identity, error) {
	identity, ok := s.identities[id]
	if !ok {
		return nil, errors.New("usuário não encontrado")
	}
	return identity, nil
}

const testSecret = "test-secret"

func testRouter(store IdentityStore, perfis ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/", Authenticate(testSecret, store))
	if len(perfis) > 0 {
		group.Use(RequireRoles(perfis...))
	}
	group.GET("/protected", func(c *gin.Context) {
		identity, _ := IdentityFrom(c)
		c.JSON(200, gin.H{"perfil": identity.Perfil})
	})
	return r
}

func signedToken(t *testing.T, userID, perfil string, expiry time.Duration) string {
	t.Helper()
	signed, err := token.Generate(userID, perfil, &token.Config{
		Secret: testSecret,
		Expiry: expiry,
		Issuer: "test",
	})
	require.NoError(t, err)
	return signed
}

func TestAuthenticateMissingHeader(t *testing.T) {
	r := testRouter(&fakeIdentityStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Token não fornecido", body["message"])
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	r := testRouter(&fakeIdentityStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
}

func TestAuthenticateExpiredToken(t *testing.T) {
	store := &fakeIdentityStore{identities: map[string]*Identity{
		"u1": {ID: "u1", Perfil: "perito"},
	}}
	r := testRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "u1", "perito", -time.Minute))
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Token inválido", body["message"])
}

func TestAuthenticateUnknownSubject(t *testing.T) {
	r := testRouter(&fakeIdentityStore{identities: map[string]*Identity{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "ghost", "perito", time.Hour))
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
}

func TestRequireRolesDeniesOutsiders(t *testing.T) {
	store := &fakeIdentityStore{identities: map[string]*Identity{
		"u1": {ID: "u1", Perfil: "assistente"},
	}}
	r := testRouter(store, "admin", "perito")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "u1", "assistente", time.Hour))
	r.ServeHTTP(w, req)

	require.Equal(t, 403, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Acesso negado: permissão insuficiente", body["message"])
}

func TestRequireRolesAllowsMember(t *testing.T) {
	store := &fakeIdentityStore{identities: map[string]*Identity{
		"u1": {ID: "u1", Perfil: "assistente"},
	}}
	r := testRouter(store, "admin", "perito", "assistente")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "u1", "assistente", time.Hour))
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "assistente", body["perfil"])
}
