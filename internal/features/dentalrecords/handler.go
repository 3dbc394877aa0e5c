package dentalrecords

import (
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/odontoforense/api-go/internal/pkg/cloudinary"
	"github.com/odontoforense/api-go/internal/pkg/response"
	"github.com/odontoforense/api-go/internal/pkg/validator"
)

var errUploadsUnavailable = errors.New("serviço de upload não configurado")

// UploadService stores attachment files and removes them again when the
// owning write fails after the upload already happened.
type UploadService interface {
	Upload(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*cloudinary.UploadResult, error)
	Delete(ctx context.Context, publicID, resourceType string) error
}

type Handler struct {
	repo    *Repository
	uploads UploadService
}

func NewHandler(repo *Repository, uploads UploadService) *Handler {
	return &Handler{repo: repo, uploads: uploads}
}

// Create godoc
// @Summary Cadastra um registro odontológico
// @Description Recebe os metadados e o arquivo do registro via multipart/form-data. O campo conteudoLaudo é uma string JSON.
// @Tags banco-odonto
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file false "Arquivo do registro"
// @Param tipodoregistro formData string true "ante-mortem ou post-mortem"
// @Param caracteristica formData string true "Característica do registro"
// @Param dataRegistro formData string true "Data do registro (YYYY-MM-DD)"
// @Param status formData string false "identificado ou não identificado"
// @Param conteudoLaudo formData string false "Conteúdo do laudo em JSON"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.MessageResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /banco-odonto [post]
func (h *Handler) Create(c *gin.Context) {
	var form CreateRegistroForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, "Dados inválidos: "+err.Error())
		return
	}

	// conteudoLaudo travels as a JSON string next to the file part
	var conteudo ConteudoLaudo
	if !validator.IsBlank(form.ConteudoLaudo) {
		if err := json.Unmarshal([]byte(form.ConteudoLaudo), &conteudo); err != nil {
			response.BadRequest(c, "conteudoLaudo inválido: JSON malformado")
			return
		}
	}

	if err := ValidateCreate(&form, &conteudo); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dataRegistro, err := ParseDataRegistro(form.DataRegistro)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	fileURL := form.FileURL
	var uploaded *cloudinary.UploadResult
	if file, header, err := c.Request.FormFile("file"); err == nil {
		defer file.Close()

		if err := cloudinary.ValidateUpload(header); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		if h.uploads == nil {
			response.Internal(c, "Erro ao cadastrar registro.", errUploadsUnavailable)
			return
		}

		uploaded, err = h.uploads.Upload(c.Request.Context(), file, header)
		if err != nil {
			response.Internal(c, "Erro ao enviar arquivo.", err)
			return
		}
		fileURL = uploaded.URL
	}

	if !validator.IsValidAttachmentURL(fileURL) {
		response.BadRequest(c, "fileURL não é uma URL válida com extensão permitida")
		return
	}

	registro := &Registro{
		TipoDoRegistro: form.TipoDoRegistro,
		Caracteristica: form.Caracteristica,
		DataRegistro:   dataRegistro,
		Status:         form.Status,
		ConteudoLaudo:  conteudo,
		FileURL:        fileURL,
	}

	if err := h.repo.Create(c.Request.Context(), registro); err != nil {
		// Best effort: do not leave an orphaned asset in the object store
		if uploaded != nil {
			_ = h.uploads.Delete(c.Request.Context(), uploaded.PublicID, uploaded.ResourceType)
		}
		response.Internal(c, "Erro ao cadastrar registro.", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Registro cadastrado com sucesso!", "registro": registro})
}

// List godoc
// @Summary Lista todos os registros odontológicos
// @Tags banco-odonto
// @Produce json
// @Security BearerAuth
// @Success 200 {array} Registro
// @Failure 500 {object} response.ErrorResponse
// @Router /banco-odonto [get]
func (h *Handler) List(c *gin.Context) {
	registros, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Internal(c, "Erro ao listar os registros.", err)
		return
	}

	c.JSON(http.StatusOK, registros)
}

// Get godoc
// @Summary Busca um registro odontológico pelo ID
// @Tags banco-odonto
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do registro"
// @Success 200 {object} Registro
// @Failure 400 {object} response.MessageResponse
// @Failure 404 {object} response.MessageResponse
// @Router /banco-odonto/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if validator.IsBlank(id) {
		response.BadRequest(c, "ID não fornecido na URL da requisição.")
		return
	}

	registro, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == ErrInvalidID {
			response.NotFound(c, "Não foi encontrado nenhum registro com essa id="+id+".")
			return
		}
		response.Internal(c, "Erro ao buscar registro.", err)
		return
	}
	if registro == nil {
		response.NotFound(c, "Não foi encontrado nenhum registro com essa id="+id+".")
		return
	}

	c.JSON(http.StatusOK, registro)
}

// Update godoc
// @Summary Atualiza um registro odontológico
// @Tags banco-odonto
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do registro"
// @Param request body UpdateRegistroRequest true "Campos a atualizar"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.MessageResponse
// @Failure 404 {object} response.MessageResponse
// @Router /banco-odonto/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if validator.IsBlank(id) {
		response.BadRequest(c, "ID não fornecido na URL da requisição.")
		return
	}

	var req UpdateRegistroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dados inválidos: "+err.Error())
		return
	}

	if err := ValidateUpdate(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	update := bson.M{}
	if req.TipoDoRegistro != "" {
		update["tipodoregistro"] = req.TipoDoRegistro
	}
	if req.Caracteristica != "" {
		update["caracteristica"] = req.Caracteristica
	}
	if req.DataRegistro != "" {
		dataRegistro, err := ParseDataRegistro(req.DataRegistro)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		update["dataRegistro"] = dataRegistro
	}
	if req.Status != "" {
		update["status"] = req.Status
	}
	if req.ConteudoLaudo != nil {
		update["conteudoLaudo"] = req.ConteudoLaudo
	}
	if req.FileURL != "" {
		update["fileURL"] = req.FileURL
	}

	if len(update) == 0 {
		response.BadRequest(c, "Nenhum campo para atualizar")
		return
	}

	registro, err := h.repo.Update(c.Request.Context(), id, update)
	if err != nil {
		switch err {
		case ErrInvalidID, ErrNotFound:
			response.NotFound(c, "Não foi encontrado nenhum registro com essa id="+id+".")
		default:
			response.Internal(c, "Erro ao atualizar registro.", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registro atualizado com sucesso!", "registro": registro})
}

// Delete godoc
// @Summary Remove um registro odontológico pelo ID
// @Tags banco-odonto
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do registro"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.MessageResponse
// @Router /banco-odonto/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if validator.IsBlank(id) {
		response.BadRequest(c, "ID não fornecido na URL da requisição.")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		switch err {
		case ErrInvalidID, ErrNotFound:
			response.NotFound(c, "Nenhum registro encontrado com essa id="+id+".")
		default:
			response.Internal(c, "Erro ao deletar registro.", err)
		}
		return
	}

	response.OK(c, "Registro com ID="+id+" foi deletado com sucesso!")
}

// DeleteAll godoc
// @Summary Remove todos os registros odontológicos
// @Tags banco-odonto
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} response.ErrorResponse
// @Router /banco-odonto [delete]
func (h *Handler) DeleteAll(c *gin.Context) {
	count, err := h.repo.DeleteAll(c.Request.Context())
	if err != nil {
		response.Internal(c, "Erro ao deletar todos os registros.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Todos os registros foram deletados com sucesso!",
		"deletedCount": count,
	})
}
