package dentalrecords

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Record types
const (
	TipoAnteMortem = "ante-mortem"
	TipoPostMortem = "post-mortem"
)

var TiposDeRegistro = []string{TipoAnteMortem, TipoPostMortem}

// Identification status
const (
	StatusIdentificado    = "identificado"
	StatusNaoIdentificado = "não identificado"
)

var StatusValues = []string{StatusIdentificado, StatusNaoIdentificado}

// Dentition content enumerations
var (
	TiposDenticao = []string{"decídua", "permanente", "mista"}

	CaracteristicasEspecificas = []string{
		"dentes ausentes", "implante", "ponte", "coroa", "restaurações",
	}

	Regioes = []string{"anterior", "posterior", "maxila", "mandíbula"}
)

// ConteudoLaudo groups the dentition findings of a record
type ConteudoLaudo struct {
	TipoDenticao               string   `bson:"tipoDenticao" json:"tipoDenticao" example:"mista" enums:"decídua,permanente,mista"`
	CaracteristicasEspecificas string   `bson:"caracteristicasEspecificas" json:"caracteristicasEspecificas" example:"restaurações"`
	Regiao                     []string `bson:"regiao" json:"regiao"`
}

// Registro represents an ante/post-mortem dental reference record used for
// identification comparison
type Registro struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id" example:"507f1f77bcf86cd799439011"`
	TipoDoRegistro string             `bson:"tipodoregistro" json:"tipodoregistro" example:"ante-mortem" enums:"ante-mortem,post-mortem"`
	Caracteristica string             `bson:"caracteristica" json:"caracteristica"`
	DataRegistro   time.Time          `bson:"dataRegistro" json:"dataRegistro"`
	Status         string             `bson:"status" json:"status" example:"identificado" enums:"identificado,não identificado"`
	ConteudoLaudo  ConteudoLaudo      `bson:"conteudoLaudo" json:"conteudoLaudo"`
	FileURL        string             `bson:"fileURL" json:"fileURL"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateRegistroForm carries the multipart fields of a record upload.
// conteudoLaudo arrives as a JSON string alongside the file part.
type CreateRegistroForm struct {
	TipoDoRegistro string `form:"tipodoregistro" binding:"required"`
	Caracteristica string `form:"caracteristica" binding:"required"`
	DataRegistro   string `form:"dataRegistro" binding:"required"`
	Status         string `form:"status"`
	ConteudoLaudo  string `form:"conteudoLaudo"`
	FileURL        string `form:"fileUrl"`
}

// UpdateRegistroRequest is the payload for a partial record update
type UpdateRegistroRequest struct {
	TipoDoRegistro string         `json:"tipodoregistro"`
	Caracteristica string         `json:"caracteristica"`
	DataRegistro   string         `json:"dataRegistro"`
	Status         string         `json:"status"`
	ConteudoLaudo  *ConteudoLaudo `json:"conteudoLaudo"`
	FileURL        string         `json:"fileURL"`
}
