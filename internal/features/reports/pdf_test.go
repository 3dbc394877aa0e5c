package reports

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odontoforense/api-go/internal/pkg/signature"
)

func sampleLaudo() *Laudo {
	return &Laudo{
		TituloLaudo: "Identificação por arcada dentária",
		NumeroLaudo: "LAU-2024-0042",
		DataEmissao: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
		TipoLaudo:   TipoFinal,
		ConteudoLaudo: ConteudoLaudo{
			Introducao:         "Exame solicitado pela delegacia.",
			Metodologia:        "Comparação ante-mortem e post-mortem.",
			AnaliseEResultados: "Coincidência em doze pontos.",
			Conclusao:          "Identificação positiva.",
		},
	}
}

func TestCanonicalText(t *testing.T) {
	canonical := CanonicalText(sampleLaudo())

	assert.Equal(t,
		"Título: Identificação por arcada dentária\n"+
			"Número: LAU-2024-0042\n"+
			"Tipo: final\n"+
			"Data de Emissão: 20/05/2024",
		canonical)
}

func TestSignDeterministic(t *testing.T) {
	renderer := NewRenderer(signature.NewSigner("chave-de-teste"))

	first := renderer.Sign(sampleLaudo())
	second := renderer.Sign(sampleLaudo())
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)

	changed := sampleLaudo()
	changed.NumeroLaudo = "LAU-2024-0043"
	assert.NotEqual(t, first, renderer.Sign(changed))

	retyped := sampleLaudo()
	retyped.TipoLaudo = TipoComplementar
	assert.NotEqual(t, first, renderer.Sign(retyped))
}

func TestRenderProducesPDF(t *testing.T) {
	renderer := NewRenderer(signature.NewSigner("chave-de-teste"))

	var buf bytes.Buffer
	err := renderer.Render(&buf, sampleLaudo(), time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 500)
}

func TestRenderHandlesMissingContent(t *testing.T) {
	renderer := NewRenderer(signature.NewSigner("chave-de-teste"))

	laudo := sampleLaudo()
	laudo.ConteudoLaudo = ConteudoLaudo{}

	var buf bytes.Buffer
	err := renderer.Render(&buf, laudo, time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
