package cases

import (
	"errors"
	"fmt"

	"github.com/odontoforense/api-go/internal/pkg/validator"
)

// Field length bounds carried over from the schema
const (
	numeroMin        = 4
	numeroMax        = 20
	localMin         = 5
	solicitadoPorMin = 10
	descricaoMin     = 10
	textoMax         = 1000
	detalhesMax      = 3000
)

func ValidateCreate(req *CreateCasoRequest) error {
	if n := len(req.NumeroDoCaso); n < numeroMin || n > numeroMax {
		return fmt.Errorf("numeroDoCaso deve ter entre %d e %d caracteres", numeroMin, numeroMax)
	}
	if n := len(req.Local); n < localMin || n > textoMax {
		return fmt.Errorf("local deve ter entre %d e %d caracteres", localMin, textoMax)
	}
	if n := len(req.SolicitadoPor); n < solicitadoPorMin || n > textoMax {
		return fmt.Errorf("solicitadoPor deve ter entre %d e %d caracteres", solicitadoPorMin, textoMax)
	}
	if n := len(req.Descricao); n < descricaoMin || n > textoMax {
		return fmt.Errorf("descricao deve ter entre %d e %d caracteres", descricaoMin, textoMax)
	}
	if len(req.Detalhes) > detalhesMax {
		return fmt.Errorf("detalhes não pode exceder %d caracteres", detalhesMax)
	}
	if req.Status != "" && !validator.InEnum(req.Status, StatusValues) {
		return errors.New("status deve ser em andamento, finalizado ou arquivado")
	}
	return nil
}

func ValidateUpdate(req *UpdateCasoRequest) error {
	if req.Status != "" && !validator.InEnum(req.Status, StatusValues) {
		return errors.New("status deve ser em andamento, finalizado ou arquivado")
	}
	if req.Local != "" {
		if n := len(req.Local); n < localMin || n > textoMax {
			return fmt.Errorf("local deve ter entre %d e %d caracteres", localMin, textoMax)
		}
	}
	if req.SolicitadoPor != "" {
		if n := len(req.SolicitadoPor); n < solicitadoPorMin || n > textoMax {
			return fmt.Errorf("solicitadoPor deve ter entre %d e %d caracteres", solicitadoPorMin, textoMax)
		}
	}
	if req.Descricao != "" {
		if n := len(req.Descricao); n < descricaoMin || n > textoMax {
			return fmt.Errorf("descricao deve ter entre %d e %d caracteres", descricaoMin, textoMax)
		}
	}
	if len(req.Detalhes) > detalhesMax {
		return fmt.Errorf("detalhes não pode exceder %d caracteres", detalhesMax)
	}
	return nil
}
