package evidences

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Categoria values for a piece of evidence
const (
	CategoriaOdontologica = "odontologica"
	CategoriaDocumentos   = "documentos"
	CategoriaFotografias  = "fotografias"
	CategoriaLaboratorial = "laboratorial"
	CategoriaOutros       = "outros"
)

var Categorias = []string{
	CategoriaOdontologica, CategoriaDocumentos, CategoriaFotografias,
	CategoriaLaboratorial, CategoriaOutros,
}

// Collection sites
const (
	LocalAgencia     = "agencia"
	LocalLaboratorio = "laboratório"
	LocalDelegacia   = "delegacia"
)

var LocaisRetirada = []string{LocalAgencia, LocalLaboratorio, LocalDelegacia}

// Evidencia represents a collected item tied to exactly one case
type Evidencia struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id" example:"507f1f77bcf86cd799439011"`
	NomeEvidencia string             `bson:"nome_evidencia" json:"nome_evidencia" example:"Radiografia panorâmica"`
	Categoria     string             `bson:"categoria" json:"categoria" example:"odontologica" enums:"odontologica,documentos,fotografias,laboratorial,outros"`
	DataColeta    time.Time          `bson:"data_coleta" json:"data_coleta"`
	Descricao     string             `bson:"descricao,omitempty" json:"descricao,omitempty"`
	LocalRetirada string             `bson:"local_retirada" json:"local_retirada" example:"delegacia" enums:"agencia,laboratório,delegacia"`
	FileURL       string             `bson:"fileUrl" json:"fileUrl"`
	ColetadoPor   primitive.ObjectID `bson:"coletadoPor" json:"coletadoPor"`
	Caso          primitive.ObjectID `bson:"caso" json:"caso"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateEvidenciaForm carries the multipart fields of an evidence upload.
// Either a file part or a ready fileUrl must accompany it.
type CreateEvidenciaForm struct {
	NomeEvidencia string `form:"nome_evidencia" binding:"required"`
	Categoria     string `form:"categoria"`
	DataColeta    string `form:"data_coleta" binding:"required"`
	Descricao     string `form:"descricao"`
	LocalRetirada string `form:"local_retirada"`
	FileURL       string `form:"fileUrl"`
	ColetadoPor   string `form:"coletadoPor" binding:"required"`
	Caso          string `form:"caso" binding:"required"`
}

// UpdateEvidenciaRequest is the payload for a partial evidence update
type UpdateEvidenciaRequest struct {
	NomeEvidencia string `json:"nome_evidencia"`
	Categoria     string `json:"categoria" enums:"odontologica,documentos,fotografias,laboratorial,outros"`
	DataColeta    string `json:"data_coleta"`
	Descricao     string `json:"descricao"`
	LocalRetirada string `json:"local_retirada" enums:"agencia,laboratório,delegacia"`
	FileURL       string `json:"fileUrl"`
}
