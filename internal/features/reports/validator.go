package reports

import (
	"errors"
	"fmt"
	"time"

	"github.com/odontoforense/api-go/internal/pkg/validator"
)

var dataEmissaoLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDataEmissao accepts either a full RFC3339 timestamp or a plain date
func ParseDataEmissao(raw string) (time.Time, error) {
	for _, layout := range dataEmissaoLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("dataEmissao inválida: %q", raw)
}

func validateConteudo(c *ConteudoLaudo) error {
	if validator.IsBlank(c.Introducao) {
		return errors.New("conteudoLaudo.introducao é obrigatória")
	}
	if validator.IsBlank(c.Metodologia) {
		return errors.New("conteudoLaudo.metodologia é obrigatória")
	}
	if validator.IsBlank(c.AnaliseEResultados) {
		return errors.New("conteudoLaudo.analiseeResultados é obrigatória")
	}
	if validator.IsBlank(c.Conclusao) {
		return errors.New("conteudoLaudo.conclusao é obrigatória")
	}
	return nil
}

// ValidateCreate enforces the required fields of a new report. All four
// content sections must be present together.
func ValidateCreate(req *CreateLaudoRequest) error {
	if validator.IsBlank(req.TituloLaudo) {
		return errors.New("tituloLaudo é obrigatório")
	}
	if validator.IsBlank(req.NumeroLaudo) {
		return errors.New("numeroLaudo é obrigatório")
	}
	if validator.IsBlank(req.DataEmissao) {
		return errors.New("dataEmissao é obrigatória")
	}
	if !validator.InEnum(req.TipoLaudo, TiposLaudo) {
		return errors.New("tipoLaudo inválido: use preliminar, final ou complementar")
	}
	return validateConteudo(&req.ConteudoLaudo)
}

// ValidateUpdate enforces the enumerations of the fields present in an update
func ValidateUpdate(req *UpdateLaudoRequest) error {
	if !validator.IsBlank(req.TipoLaudo) && !validator.InEnum(req.TipoLaudo, TiposLaudo) {
		return errors.New("tipoLaudo inválido: use preliminar, final ou complementar")
	}
	if req.ConteudoLaudo != nil {
		return validateConteudo(req.ConteudoLaudo)
	}
	return nil
}
