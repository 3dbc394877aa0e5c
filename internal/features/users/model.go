package users

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles a user can hold
const (
	PerfilAdmin      = "admin"
	PerfilPerito     = "perito"
	PerfilAssistente = "assistente"
)

// Perfis is the closed set of valid roles
var Perfis = []string{PerfilAdmin, PerfilPerito, PerfilAssistente}

// Usuario represents a system user. The password hash is persisted but
// never serialized into a response.
type Usuario struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id" example:"507f1f77bcf86cd799439011"`
	Nome      string             `bson:"nome" json:"nome" example:"Maria Silva"`
	Email     string             `bson:"email" json:"email" example:"maria@pericia.gov.br"`
	Senha     string             `bson:"senha" json:"-"`
	Perfil    string             `bson:"perfil" json:"perfil" example:"perito" enums:"admin,perito,assistente"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateUsuarioRequest is the payload for registering a user
type CreateUsuarioRequest struct {
	Nome   string `json:"nome" binding:"required" example:"Maria Silva"`
	Email  string `json:"email" binding:"required" example:"maria@pericia.gov.br"`
	Senha  string `json:"senha" binding:"required,min=6" example:"S3nhaForte"`
	Perfil string `json:"perfil" example:"perito" enums:"admin,perito,assistente"`
}

// UpdateUsuarioRequest is the payload for a partial user update.
// A blank or absent senha leaves the stored hash untouched.
type UpdateUsuarioRequest struct {
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	Senha  string `json:"senha"`
	Perfil string `json:"perfil" enums:"admin,perito,assistente"`
}

// LoginRequest is the payload for authentication
type LoginRequest struct {
	Email string `json:"email" binding:"required" example:"maria@pericia.gov.br"`
	Senha string `json:"senha" binding:"required" example:"S3nhaForte"`
}

// LoginResponse is returned on successful authentication
type LoginResponse struct {
	Message string   `json:"message" example:"Login bem-sucedido"`
	Usuario *Usuario `json:"usuario"`
	Token   string   `json:"token"`
}
