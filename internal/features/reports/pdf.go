package reports

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/odontoforense/api-go/internal/pkg/signature"
)

const naoInformado = "Não informado"

// Renderer assembles the paginated PDF document of a report and appends
// its digital signature block.
type Renderer struct {
	signer *signature.Signer
}

func NewRenderer(signer *signature.Signer) *Renderer {
	return &Renderer{signer: signer}
}

// CanonicalText builds the canonical signing input of a report. Field order
// is fixed so the same report always signs to the same value.
func CanonicalText(laudo *Laudo) string {
	return fmt.Sprintf(
		"Título: %s\nNúmero: %s\nTipo: %s\nData de Emissão: %s",
		laudo.TituloLaudo,
		laudo.NumeroLaudo,
		laudo.TipoLaudo,
		laudo.DataEmissao.Format("02/01/2006"),
	)
}

// Sign derives the deterministic signature of a report
func (r *Renderer) Sign(laudo *Laudo) string {
	return r.signer.Sign(CanonicalText(laudo))
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// Render writes the report document to w: a header block, the four content
// sections under labeled headings, a generation timestamp and the signature.
// Sections stream to w through gofpdf's output call, so the HTTP response
// writer can be handed in directly.
func (r *Renderer) Render(w io.Writer, laudo *Laudo, now time.Time) error {
	assinatura := r.Sign(laudo)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 20, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	write := func(size float64, style, text string) {
		pdf.SetFont("Arial", style, size)
		pdf.MultiCell(0, 6, tr(text), "", "L", false)
	}
	heading := func(text string) {
		pdf.Ln(3)
		pdf.SetFont("Arial", "BU", 14)
		pdf.MultiCell(0, 7, tr(text), "", "L", false)
	}

	write(12, "", "Número do Laudo: "+orDefault(laudo.NumeroLaudo, naoInformado))
	write(12, "", "Título: "+orDefault(laudo.TituloLaudo, naoInformado))
	write(12, "", "Tipo de Laudo: "+orDefault(laudo.TipoLaudo, naoInformado))
	write(12, "", "Data de Emissão: "+laudo.DataEmissao.Format("02/01/2006"))

	heading("Introdução")
	write(12, "", orDefault(laudo.ConteudoLaudo.Introducao, "Não informada"))

	heading("Metodologia")
	write(12, "", orDefault(laudo.ConteudoLaudo.Metodologia, "Não informada"))

	heading("Análise e Resultados")
	write(12, "", orDefault(laudo.ConteudoLaudo.AnaliseEResultados, "Não informados"))

	heading("Conclusão")
	write(12, "", orDefault(laudo.ConteudoLaudo.Conclusao, "Não informada"))

	pdf.Ln(4)
	write(12, "", "---")
	write(12, "", "Gerado em: "+now.Format("02/01/2006 15:04:05"))

	pdf.Ln(2)
	write(10, "U", "Assinatura digital:")
	pdf.SetFont("Courier", "", 8)
	pdf.MultiCell(0, 4, assinatura, "", "L", false)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("gerar pdf: %w", err)
	}
	return nil
}
