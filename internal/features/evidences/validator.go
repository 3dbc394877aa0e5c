package evidences

import (
	"errors"
	"time"

	"github.com/odontoforense/api-go/internal/pkg/validator"
)

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDataColeta accepts either a full timestamp or a plain date
func ParseDataColeta(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("data_coleta deve estar no formato YYYY-MM-DD ou RFC3339")
}

func ValidateCreate(form *CreateEvidenciaForm) error {
	if form.Categoria != "" && !validator.InEnum(form.Categoria, Categorias) {
		return errors.New("categoria inválida")
	}
	if form.LocalRetirada != "" && !validator.InEnum(form.LocalRetirada, LocaisRetirada) {
		return errors.New("local_retirada inválido")
	}
	if _, err := ParseDataColeta(form.DataColeta); err != nil {
		return err
	}
	return nil
}

func ValidateUpdate(req *UpdateEvidenciaRequest) error {
	if req.Categoria != "" && !validator.InEnum(req.Categoria, Categorias) {
		return errors.New("categoria inválida")
	}
	if req.LocalRetirada != "" && !validator.InEnum(req.LocalRetirada, LocaisRetirada) {
		return errors.New("local_retirada inválido")
	}
	if req.DataColeta != "" {
		if _, err := ParseDataColeta(req.DataColeta); err != nil {
			return err
		}
	}
	if req.FileURL != "" && !validator.IsValidAttachmentURL(req.FileURL) {
		return errors.New("fileUrl não é uma URL válida com extensão permitida")
	}
	return nil
}
