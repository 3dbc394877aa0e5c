package users

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateCreate(t *testing.T) {
	valid := &CreateUsuarioRequest{
		Nome:   "Maria Silva",
		Email:  "maria@pericia.gov.br",
		Senha:  "S3nhaForte",
		Perfil: "perito",
	}
	require.NoError(t, ValidateCreate(valid))

	badEmail := *valid
	badEmail.Email = "sem-arroba"
	require.Error(t, ValidateCreate(&badEmail))

	badPerfil := *valid
	badPerfil.Perfil = "investigador"
	require.Error(t, ValidateCreate(&badPerfil))

	// Perfil omitted is fine, the handler defaults it
	semPerfil := *valid
	semPerfil.Perfil = ""
	require.NoError(t, ValidateCreate(&semPerfil))
}

func TestValidateUpdate(t *testing.T) {
	require.NoError(t, ValidateUpdate(&UpdateUsuarioRequest{Nome: "Novo Nome"}))
	require.NoError(t, ValidateUpdate(&UpdateUsuarioRequest{Senha: "novasenha"}))
	require.NoError(t, ValidateUpdate(&UpdateUsuarioRequest{Senha: "   "}))

	require.Error(t, ValidateUpdate(&UpdateUsuarioRequest{Email: "inválido"}))
	require.Error(t, ValidateUpdate(&UpdateUsuarioRequest{Perfil: "dono"}))
	require.Error(t, ValidateUpdate(&UpdateUsuarioRequest{Senha: "curta"}))
}

func TestBuildUpdateDropsBlankSenha(t *testing.T) {
	update := buildUpdate(&UpdateUsuarioRequest{Nome: "Maria", Senha: ""})
	require.Contains(t, update, "nome")
	require.NotContains(t, update, "senha")

	update = buildUpdate(&UpdateUsuarioRequest{Senha: "   "})
	require.Empty(t, update)

	update = buildUpdate(&UpdateUsuarioRequest{Senha: "nova-senha"})
	require.Equal(t, "nova-senha", update["senha"])
}
