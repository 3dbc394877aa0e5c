package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validCreate() *CreateLaudoRequest {
	return &CreateLaudoRequest{
		TituloLaudo: "Identificação por arcada dentária",
		NumeroLaudo: "LAU-2024-0042",
		DataEmissao: "2024-05-20",
		TipoLaudo:   TipoFinal,
		ConteudoLaudo: ConteudoLaudo{
			Introducao:         "Exame solicitado pela delegacia.",
			Metodologia:        "Comparação ante-mortem e post-mortem.",
			AnaliseEResultados: "Coincidência em doze pontos.",
			Conclusao:          "Identificação positiva.",
		},
	}
}

func TestValidateCreate(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, ValidateCreate(validCreate()))
	})

	t.Run("rejects unknown tipoLaudo", func(t *testing.T) {
		req := validCreate()
		req.TipoLaudo = "parcial"
		assert.Error(t, ValidateCreate(req))
	})

	t.Run("accepts every tipoLaudo value", func(t *testing.T) {
		for _, tipo := range TiposLaudo {
			req := validCreate()
			req.TipoLaudo = tipo
			assert.NoError(t, ValidateCreate(req))
		}
	})

	t.Run("requires all four content sections", func(t *testing.T) {
		req := validCreate()
		req.ConteudoLaudo.Metodologia = ""
		assert.Error(t, ValidateCreate(req))

		req = validCreate()
		req.ConteudoLaudo.AnaliseEResultados = "   "
		assert.Error(t, ValidateCreate(req))
	})

	t.Run("requires numeroLaudo", func(t *testing.T) {
		req := validCreate()
		req.NumeroLaudo = ""
		assert.Error(t, ValidateCreate(req))
	})
}

func TestValidateUpdate(t *testing.T) {
	t.Run("empty update passes validation", func(t *testing.T) {
		assert.NoError(t, ValidateUpdate(&UpdateLaudoRequest{}))
	})

	t.Run("rejects unknown tipoLaudo", func(t *testing.T) {
		assert.Error(t, ValidateUpdate(&UpdateLaudoRequest{TipoLaudo: "parcial"}))
	})

	t.Run("content sections stay all-or-nothing", func(t *testing.T) {
		assert.Error(t, ValidateUpdate(&UpdateLaudoRequest{
			ConteudoLaudo: &ConteudoLaudo{Introducao: "apenas introdução"},
		}))
	})
}

func TestParseDataEmissao(t *testing.T) {
	_, err := ParseDataEmissao("2024-05-20")
	assert.NoError(t, err)

	_, err = ParseDataEmissao("2024-05-20T12:00:00Z")
	assert.NoError(t, err)

	_, err = ParseDataEmissao("20/05/2024")
	assert.Error(t, err)
}
