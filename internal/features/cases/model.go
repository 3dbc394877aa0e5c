package cases

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status values a case moves through
const (
	StatusEmAndamento = "em andamento"
	StatusFinalizado  = "finalizado"
	StatusArquivado   = "arquivado"
)

var StatusValues = []string{StatusEmAndamento, StatusFinalizado, StatusArquivado}

// Caso represents a forensic investigation unit
type Caso struct {
	ID                primitive.ObjectID  `bson:"_id,omitempty" json:"id" example:"507f1f77bcf86cd799439011"`
	NumeroDoCaso      string              `bson:"numeroDoCaso" json:"numeroDoCaso" example:"CASE-0001"`
	DataDeAbertura    time.Time           `bson:"dataDeAbertura" json:"dataDeAbertura"`
	PeritoResponsavel *primitive.ObjectID `bson:"peritoResponsavel,omitempty" json:"peritoResponsavel,omitempty"`
	Status            string              `bson:"status" json:"status" example:"em andamento" enums:"em andamento,finalizado,arquivado"`
	Local             string              `bson:"local" json:"local" example:"Recife - PE"`
	SolicitadoPor     string              `bson:"solicitadoPor" json:"solicitadoPor" example:"Delegacia de Polícia Civil"`
	Descricao         string              `bson:"descricao" json:"descricao"`
	Detalhes          string              `bson:"detalhes,omitempty" json:"detalhes,omitempty"`
	CreatedAt         time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// CreateCasoRequest is the payload for opening a case
type CreateCasoRequest struct {
	NumeroDoCaso      string     `json:"numeroDoCaso" binding:"required" example:"CASE-0001"`
	DataDeAbertura    *time.Time `json:"dataDeAbertura"`
	PeritoResponsavel string     `json:"peritoResponsavel" example:"507f1f77bcf86cd799439011"`
	Status            string     `json:"status" enums:"em andamento,finalizado,arquivado"`
	Local             string     `json:"local" binding:"required"`
	SolicitadoPor     string     `json:"solicitadoPor" binding:"required"`
	Descricao         string     `json:"descricao" binding:"required"`
	Detalhes          string     `json:"detalhes"`
}

// UpdateCasoRequest is the payload for a partial case update
type UpdateCasoRequest struct {
	PeritoResponsavel string `json:"peritoResponsavel"`
	Status            string `json:"status" enums:"em andamento,finalizado,arquivado"`
	Local             string `json:"local"`
	SolicitadoPor     string `json:"solicitadoPor"`
	Descricao         string `json:"descricao"`
	Detalhes          string `json:"detalhes"`
}
