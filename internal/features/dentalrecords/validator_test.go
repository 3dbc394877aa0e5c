package dentalrecords

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() *CreateRegistroForm {
	return &CreateRegistroForm{
		TipoDoRegistro: TipoAnteMortem,
		Caracteristica: "Arcada superior completa",
		DataRegistro:   "2024-03-10",
	}
}

func TestValidateCreate(t *testing.T) {
	t.Run("valid form passes", func(t *testing.T) {
		assert.NoError(t, ValidateCreate(validForm(), nil))
	})

	t.Run("rejects unknown tipodoregistro", func(t *testing.T) {
		form := validForm()
		form.TipoDoRegistro = "peri-mortem"
		assert.Error(t, ValidateCreate(form, nil))
	})

	t.Run("rejects blank caracteristica", func(t *testing.T) {
		form := validForm()
		form.Caracteristica = "   "
		assert.Error(t, ValidateCreate(form, nil))
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		form := validForm()
		form.Status = "pendente"
		assert.Error(t, ValidateCreate(form, nil))
	})

	t.Run("accepts both status values", func(t *testing.T) {
		for _, s := range StatusValues {
			form := validForm()
			form.Status = s
			assert.NoError(t, ValidateCreate(form, nil))
		}
	})

	t.Run("rejects fileURL without allowed extension", func(t *testing.T) {
		form := validForm()
		form.FileURL = "https://example.com/registro.exe"
		assert.Error(t, ValidateCreate(form, nil))
	})

	t.Run("accepts raw upload fileURL", func(t *testing.T) {
		form := validForm()
		form.FileURL = "https://res.cloudinary.com/demo/raw/upload/v1/odonto/laudo"
		assert.NoError(t, ValidateCreate(form, nil))
	})
}

func TestValidateConteudo(t *testing.T) {
	t.Run("nil content is fine", func(t *testing.T) {
		assert.NoError(t, ValidateConteudo(nil))
	})

	t.Run("valid content passes", func(t *testing.T) {
		assert.NoError(t, ValidateConteudo(&ConteudoLaudo{
			TipoDenticao:               "mista",
			CaracteristicasEspecificas: "restaurações",
			Regiao:                     []string{"maxila", "anterior"},
		}))
	})

	t.Run("rejects unknown tipoDenticao", func(t *testing.T) {
		assert.Error(t, ValidateConteudo(&ConteudoLaudo{TipoDenticao: "adulta"}))
	})

	t.Run("rejects regiao outside the enumeration", func(t *testing.T) {
		assert.Error(t, ValidateConteudo(&ConteudoLaudo{Regiao: []string{"maxila", "lingual"}}))
	})
}

func TestValidateUpdate(t *testing.T) {
	t.Run("empty update passes validation", func(t *testing.T) {
		assert.NoError(t, ValidateUpdate(&UpdateRegistroRequest{}))
	})

	t.Run("rejects unknown tipodoregistro", func(t *testing.T) {
		assert.Error(t, ValidateUpdate(&UpdateRegistroRequest{TipoDoRegistro: "x"}))
	})

	t.Run("validates nested conteudoLaudo", func(t *testing.T) {
		assert.Error(t, ValidateUpdate(&UpdateRegistroRequest{
			ConteudoLaudo: &ConteudoLaudo{CaracteristicasEspecificas: "aparelho"},
		}))
	})
}

func TestParseDataRegistro(t *testing.T) {
	t.Run("accepts plain date", func(t *testing.T) {
		parsed, err := ParseDataRegistro("2024-03-10")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("accepts RFC3339", func(t *testing.T) {
		_, err := ParseDataRegistro("2024-03-10T15:04:05Z")
		assert.NoError(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := ParseDataRegistro("10/03/2024")
		assert.Error(t, err)
	})
}
