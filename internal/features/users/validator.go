package users

import (
	"errors"

	"github.com/odontoforense/api-go/internal/pkg/validator"
)

// ValidateCreate checks a registration payload beyond the binding tags
func ValidateCreate(req *CreateUsuarioRequest) error {
	if !validator.IsValidEmail(req.Email) {
		return errors.New("email inválido")
	}
	if req.Perfil != "" && !validator.InEnum(req.Perfil, Perfis) {
		return errors.New("perfil deve ser admin, perito ou assistente")
	}
	return nil
}

// ValidateUpdate checks a partial update payload
func ValidateUpdate(req *UpdateUsuarioRequest) error {
	if req.Email != "" && !validator.IsValidEmail(req.Email) {
		return errors.New("email inválido")
	}
	if req.Perfil != "" && !validator.InEnum(req.Perfil, Perfis) {
		return errors.New("perfil deve ser admin, perito ou assistente")
	}
	if !validator.IsBlank(req.Senha) && len(req.Senha) < 6 {
		return errors.New("senha deve ter pelo menos 6 caracteres")
	}
	return nil
}
