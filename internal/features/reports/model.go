package reports

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report types
const (
	TipoPreliminar   = "preliminar"
	TipoFinal        = "final"
	TipoComplementar = "complementar"
)

var TiposLaudo = []string{TipoPreliminar, TipoFinal, TipoComplementar}

// ConteudoLaudo holds the four mandatory sections of an expert report
type ConteudoLaudo struct {
	Introducao         string `bson:"introducao" json:"introducao"`
	Metodologia        string `bson:"metodologia" json:"metodologia"`
	AnaliseEResultados string `bson:"analiseeResultados" json:"analiseeResultados"`
	Conclusao          string `bson:"conclusao" json:"conclusao"`
}

// Laudo represents a forensic expert report
type Laudo struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id" example:"507f1f77bcf86cd799439011"`
	TituloLaudo   string             `bson:"tituloLaudo" json:"tituloLaudo"`
	NumeroLaudo   string             `bson:"numeroLaudo" json:"numeroLaudo"`
	DataEmissao   time.Time          `bson:"dataEmissao" json:"dataEmissao"`
	TipoLaudo     string             `bson:"tipoLaudo" json:"tipoLaudo" example:"final" enums:"preliminar,final,complementar"`
	ConteudoLaudo ConteudoLaudo      `bson:"conteudoLaudo" json:"conteudoLaudo"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateLaudoRequest is the payload for registering a new report
type CreateLaudoRequest struct {
	TituloLaudo   string        `json:"tituloLaudo" binding:"required"`
	NumeroLaudo   string        `json:"numeroLaudo" binding:"required"`
	DataEmissao   string        `json:"dataEmissao" binding:"required"`
	TipoLaudo     string        `json:"tipoLaudo" binding:"required"`
	ConteudoLaudo ConteudoLaudo `json:"conteudoLaudo" binding:"required"`
}

// UpdateLaudoRequest is the payload for a partial report update
type UpdateLaudoRequest struct {
	TituloLaudo   string         `json:"tituloLaudo"`
	DataEmissao   string         `json:"dataEmissao"`
	TipoLaudo     string         `json:"tipoLaudo"`
	ConteudoLaudo *ConteudoLaudo `json:"conteudoLaudo"`
}
