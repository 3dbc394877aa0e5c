package cases

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func validCreate() *CreateCasoRequest {
	return &CreateCasoRequest{
		NumeroDoCaso:  "CASE-0001",
		Local:         "Recife - PE",
		SolicitadoPor: "Delegacia de Polícia Civil",
		Descricao:     "Identificação de vítima por arcada dentária",
	}
}

func TestValidateCreateAcceptsValidCase(t *testing.T) {
	require.NoError(t, ValidateCreate(validCreate()))

	withStatus := validCreate()
	withStatus.Status = StatusFinalizado
	require.NoError(t, ValidateCreate(withStatus))
}

func TestValidateCreateBounds(t *testing.T) {
	shortNumero := validCreate()
	shortNumero.NumeroDoCaso = "C1"
	require.Error(t, ValidateCreate(shortNumero))

	longNumero := validCreate()
	longNumero.NumeroDoCaso = strings.Repeat("X", 21)
	require.Error(t, ValidateCreate(longNumero))

	shortLocal := validCreate()
	shortLocal.Local = "PE"
	require.Error(t, ValidateCreate(shortLocal))

	shortDescricao := validCreate()
	shortDescricao.Descricao = "curta"
	require.Error(t, ValidateCreate(shortDescricao))

	longDetalhes := validCreate()
	longDetalhes.Detalhes = strings.Repeat("d", 3001)
	require.Error(t, ValidateCreate(longDetalhes))
}

func TestValidateCreateRejectsUnknownStatus(t *testing.T) {
	req := validCreate()
	req.Status = "cancelado"
	require.Error(t, ValidateCreate(req))
}

func TestValidateUpdate(t *testing.T) {
	require.NoError(t, ValidateUpdate(&UpdateCasoRequest{Status: StatusArquivado}))
	require.NoError(t, ValidateUpdate(&UpdateCasoRequest{}))

	require.Error(t, ValidateUpdate(&UpdateCasoRequest{Status: "suspenso"}))
	require.Error(t, ValidateUpdate(&UpdateCasoRequest{Local: "PE"}))
	require.Error(t, ValidateUpdate(&UpdateCasoRequest{Detalhes: strings.Repeat("d", 3001)}))
}
