package evidences

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/odontoforense/api-go/internal/pkg/cloudinary"
	"github.com/odontoforense/api-go/internal/pkg/response"
	"github.com/odontoforense/api-go/internal/pkg/validator"
)

var errUploadsUnavailable = errors.New("serviço de upload não configurado")

// ReferenceChecker verifies that a referenced document exists.
// Evidence cannot be written without a resolvable case and collecting user.
type ReferenceChecker interface {
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// UploadService stores attachment files and removes them again when the
// owning write fails after the upload already happened.
type UploadService interface {
	Upload(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*cloudinary.UploadResult, error)
	Delete(ctx context.Context, publicID, resourceType string) error
}

type Handler struct {
	repo    *Repository
	uploads UploadService
	casos   ReferenceChecker
	users   ReferenceChecker
}

func NewHandler(repo *Repository, uploads UploadService, casos, users ReferenceChecker) *Handler {
	return &Handler{repo: repo, uploads: uploads, casos: casos, users: users}
}

// Create godoc
// @Summary Adiciona uma evidência a um caso
// @Description Recebe os metadados e o arquivo da evidência via multipart/form-data
// @Tags evidencias
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file false "Arquivo da evidência"
// @Param nome_evidencia formData string true "Nome da evidência"
// @Param data_coleta formData string true "Data da coleta (YYYY-MM-DD)"
// @Param coletadoPor formData string true "ID do usuário que coletou"
// @Param caso formData string true "ID do caso"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.MessageResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /evidencia [post]
func (h *Handler) Create(c *gin.Context) {
	var form CreateEvidenciaForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, "Dados inválidos: "+err.Error())
		return
	}

	if err := ValidateCreate(&form); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	coletadoPor, err := primitive.ObjectIDFromHex(form.ColetadoPor)
	if err != nil {
		response.BadRequest(c, "coletadoPor inválido")
		return
	}
	casoID, err := primitive.ObjectIDFromHex(form.Caso)
	if err != nil {
		response.BadRequest(c, "caso inválido")
		return
	}

	// Referential integrity is enforced here, not by the store
	if ok, err := h.casos.Exists(c.Request.Context(), casoID); err != nil {
		response.Internal(c, "Erro ao adicionar evidência.", err)
		return
	} else if !ok {
		response.BadRequest(c, "caso não encontrado")
		return
	}
	if ok, err := h.users.Exists(c.Request.Context(), coletadoPor); err != nil {
		response.Internal(c, "Erro ao adicionar evidência.", err)
		return
	} else if !ok {
		response.BadRequest(c, "coletadoPor não encontrado")
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
			response.Internal(c, "Erro ao adicionar evidência.", errUploadsUnavailable)
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
		response.BadRequest(c, "fileUrl não é uma URL válida com extensão permitida")
		return
	}

	dataColeta, _ := ParseDataColeta(form.DataColeta)
	evidencia := &Evidencia{
		NomeEvidencia: form.NomeEvidencia,
		Categoria:     form.Categoria,
		DataColeta:    dataColeta,
		Descricao:     form.Descricao,
		LocalRetirada: form.LocalRetirada,
		FileURL:       fileURL,
		ColetadoPor:   coletadoPor,
		Caso:          casoID,
	}

	if err := h.repo.Create(c.Request.Context(), evidencia); err != nil {
		// Best effort: do not leave an orphaned asset in the object store
		if uploaded != nil {
			_ = h.uploads.Delete(c.Request.Context(), uploaded.PublicID, uploaded.ResourceType)
		}
		response.Internal(c, "Erro ao adicionar evidência.", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Evidência adicionada com sucesso!", "evidencia": evidencia})
}

// List godoc
// @Summary Lista todas as evidências
// @Tags evidencias
// @Produce json
// @Security BearerAuth
// @Success 200 {array} Evidencia
// @Failure 500 {object} response.ErrorResponse
// @Router /evidencia [get]
func (h *Handler) List(c *gin.Context) {
	evidencias, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Internal(c, "Erro ao listar as evidências.", err)
		return
	}

	c.JSON(http.StatusOK, evidencias)
}

// Get godoc
// @Summary Busca uma evidência pelo ID
// @Tags evidencias
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da evidência"
// @Success 200 {object} Evidencia
// @Failure 400 {object} response.MessageResponse
// @Failure 404 {object} response.MessageResponse
// @Router /evidencia/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if validator.IsBlank(id) {
		response.BadRequest(c, "ID não fornecido na URL da requisição.")
		return
	}

	evidencia, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == ErrInvalidID {
			response.NotFound(c, "Não foi encontrada nenhuma evidência com essa id="+id+".")
			return
		}
		response.Internal(c, "Erro ao buscar evidência.", err)
		return
	}
	if evidencia == nil {
		response.NotFound(c, "Não foi encontrada nenhuma evidência com essa id="+id+".")
		return
	}

	c.JSON(http.StatusOK, evidencia)
}

// Update godoc
// @Summary Atualiza uma evidência
// @Tags evidencias
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da evidência"
// @Param request body UpdateEvidenciaRequest true "Campos a atualizar"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.MessageResponse
// @Failure 404 {object} response.MessageResponse
// @Router /evidencia/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if validator.IsBlank(id) {
		response.BadRequest(c, "ID não fornecido na URL da requisição.")
		return
	}

	var req UpdateEvidenciaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dados inválidos: "+err.Error())
		return
	}

	if err := ValidateUpdate(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	update := bson.M{}
	if req.NomeEvidencia != "" {
		update["nome_evidencia"] = req.NomeEvidencia
	}
	if req.Categoria != "" {
		update["categoria"] = req.Categoria
	}
	if req.DataColeta != "" {
		dataColeta, _ := ParseDataColeta(req.DataColeta)
		update["data_coleta"] = dataColeta
	}
	if req.Descricao != "" {
		update["descricao"] = req.Descricao
	}
	if req.LocalRetirada != "" {
		update["local_retirada"] = req.LocalRetirada
	}
	if req.FileURL != "" {
		update["fileUrl"] = req.FileURL
	}

	if len(update) == 0 {
		response.BadRequest(c, "Nenhum campo para atualizar")
		return
	}

	evidencia, err := h.repo.Update(c.Request.Context(), id, update)
	if err != nil {
		switch err {
		case ErrInvalidID, ErrNotFound:
			response.NotFound(c, "Não foi encontrada nenhuma evidência com essa id="+id+".")
		default:
			response.Internal(c, "Erro ao atualizar evidência.", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Evidência atualizada com sucesso!", "evidencia": evidencia})
}

// Delete godoc
// @Summary Remove uma evidência pelo ID
// @Tags evidencias
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da evidência"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.MessageResponse
// @Router /evidencia/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if validator.IsBlank(id) {
		response.BadRequest(c, "ID não fornecido na URL da requisição.")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		switch err {
		case ErrInvalidID, ErrNotFound:
			response.NotFound(c, "Nenhuma evidência encontrada com essa id="+id+".")
		default:
			response.Internal(c, "Erro ao deletar evidência.", err)
		}
		return
	}

	response.OK(c, "Evidência com ID="+id+" foi deletada com sucesso!")
}

// DeleteAll godoc
// @Summary Remove todas as evidências
// @Tags evidencias
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} response.ErrorResponse
// @Router /evidencia [delete]
func (h *Handler) DeleteAll(c *gin.Context) {
	count, err := h.repo.DeleteAll(c.Request.Context())
	if err != nil {
		response.Internal(c, "Erro ao deletar todas as evidências.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Todas as evidências foram deletadas com sucesso!",
		"deletedCount": count,
	})
}
