package dentalrecords

import (
	"errors"
	"fmt"
	"time"

	"github.com/odontoforense/api-go/internal/pkg/validator"
)

var dataRegistroLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDataRegistro accepts either a full RFC3339 timestamp or a plain date
func ParseDataRegistro(raw string) (time.Time, error) {
	for _, layout := range dataRegistroLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("dataRegistro inválida: %q", raw)
}

// ValidateConteudo checks the dentition enumerations of the nested content
func ValidateConteudo(c *ConteudoLaudo) error {
	if c == nil {
		return nil
	}
	if !validator.IsBlank(c.TipoDenticao) && !validator.InEnum(c.TipoDenticao, TiposDenticao) {
		return errors.New("tipoDenticao inválido: use decídua, permanente ou mista")
	}
	if !validator.IsBlank(c.CaracteristicasEspecificas) && !validator.InEnum(c.CaracteristicasEspecificas, CaracteristicasEspecificas) {
		return errors.New("caracteristicasEspecificas inválida")
	}
	for _, r := range c.Regiao {
		if !validator.InEnum(r, Regioes) {
			return fmt.Errorf("regiao inválida: %q", r)
		}
	}
	return nil
}

// ValidateCreate enforces the required fields and enumerations of a new record
func ValidateCreate(form *CreateRegistroForm, conteudo *ConteudoLaudo) error {
	if validator.IsBlank(form.TipoDoRegistro) {
		return errors.New("tipodoregistro é obrigatório")
	}
	if !validator.InEnum(form.TipoDoRegistro, TiposDeRegistro) {
		return errors.New("tipodoregistro inválido: use ante-mortem ou post-mortem")
	}
	if validator.IsBlank(form.Caracteristica) {
		return errors.New("caracteristica é obrigatória")
	}
	if validator.IsBlank(form.DataRegistro) {
		return errors.New("dataRegistro é obrigatória")
	}
	if !validator.IsBlank(form.Status) && !validator.InEnum(form.Status, StatusValues) {
		return errors.New("status inválido: use identificado ou não identificado")
	}
	if !validator.IsBlank(form.FileURL) && !validator.IsValidAttachmentURL(form.FileURL) {
		return errors.New("fileURL inválida: informe uma URL http(s) de anexo")
	}
	return ValidateConteudo(conteudo)
}

// ValidateUpdate enforces the enumerations of the fields present in an update
func ValidateUpdate(req *UpdateRegistroRequest) error {
	if !validator.IsBlank(req.TipoDoRegistro) && !validator.InEnum(req.TipoDoRegistro, TiposDeRegistro) {
		return errors.New("tipodoregistro inválido: use ante-mortem ou post-mortem")
	}
	if !validator.IsBlank(req.Status) && !validator.InEnum(req.Status, StatusValues) {
		return errors.New("status inválido: use identificado ou não identificado")
	}
	if !validator.IsBlank(req.FileURL) && !validator.IsValidAttachmentURL(req.FileURL) {
		return errors.New("fileURL inválida: informe uma URL http(s) de anexo")
	}
	return ValidateConteudo(req.ConteudoLaudo)
}
