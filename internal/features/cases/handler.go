package cases

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/odontoforense/api-go/internal/pkg/response"
	"github.com/odontoforense/api-go/internal/pkg/validator"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Create godoc
// @Summary Cria um novo caso pericial
// @Tags casos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCasoRequest true "Dados do caso"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.MessageResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /caso [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateCasoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dados inválidos: "+err.Error())
		return
	}

	if err := ValidateCreate(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	caso := &Caso{
		NumeroDoCaso:  req.NumeroDoCaso,
		Status:        req.Status,
		Local:         req.Local,
		SolicitadoPor: req.SolicitadoPor,
		Descricao:     req.Descricao,
		Detalhes:      req.Detalhes,
	}
	if req.DataDeAbertura != nil {
		caso.DataDeAbertura = *req.DataDeAbertura
	}
	if req.PeritoResponsavel != "" {
		peritoID, err := primitive.ObjectIDFromHex(req.PeritoResponsavel)
		if err != nil {
			response.BadRequest(c, "peritoResponsavel inválido")
			return
		}
		caso.PeritoResponsavel = &peritoID
	}

	if err := h.repo.Create(c.Request.Context(), caso); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			response.BadRequest(c, "Já existe um caso com esse numeroDoCaso")
			return
		}
		response.Internal(c, "Erro ao adicionar caso.", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Caso adicionado com sucesso!", "caso": caso})
}

// List godoc
// @Summary Lista todos os casos
// @Tags casos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} Caso
// @Failure 500 {object} response.ErrorResponse
// @Router /caso [get]
func (h *Handler) List(c *gin.Context) {
	casos, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Internal(c, "Erro ao listar os casos.", err)
		return
	}

	c.JSON(http.StatusOK, casos)
}

// Get godoc
// @Summary Busca um caso pelo ID
// @Tags casos
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do caso"
// @Success 200 {object} Caso
// @Failure 400 {object} response.MessageResponse
// @Failure 404 {object} response.MessageResponse
// @Router /caso/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if validator.IsBlank(id) {
		response.BadRequest(c, "ID não fornecido na URL da requisição.")
		return
	}

	caso, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == ErrInvalidID {
			response.NotFound(c, "Não foi encontrado nenhum caso com essa id="+id+".")
			return
		}
		response.Internal(c, "Erro ao buscar caso.", err)
		return
	}
	if caso == nil {
		response.NotFound(c, "Não foi encontrado nenhum caso com essa id="+id+".")
		return
	}

	c.JSON(http.StatusOK, caso)
}

// Update godoc
// @Summary Atualiza um caso existente
// @Tags casos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do caso"
// @Param request body UpdateCasoRequest true "Campos a atualizar"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.MessageResponse
// @Failure 404 {object} response.MessageResponse
// @Router /caso/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if validator.IsBlank(id) {
		response.BadRequest(c, "ID não fornecido na URL da requisição.")
		return
	}

	var req UpdateCasoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dados inválidos: "+err.Error())
		return
	}

	if err := ValidateUpdate(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	update := bson.M{}
	if req.Status != "" {
		update["status"] = req.Status
	}
	if req.Local != "" {
		update["local"] = req.Local
	}
	if req.SolicitadoPor != "" {
		update["solicitadoPor"] = req.SolicitadoPor
	}
	if req.Descricao != "" {
		update["descricao"] = req.Descricao
	}
	if req.Detalhes != "" {
		update["detalhes"] = req.Detalhes
	}
	if req.PeritoResponsavel != "" {
		peritoID, err := primitive.ObjectIDFromHex(req.PeritoResponsavel)
		if err != nil {
			response.BadRequest(c, "peritoResponsavel inválido")
			return
		}
		update["peritoResponsavel"] = peritoID
	}

	if len(update) == 0 {
		response.BadRequest(c, "Nenhum campo para atualizar")
		return
	}

	caso, err := h.repo.Update(c.Request.Context(), id, update)
	if err != nil {
		switch err {
		case ErrInvalidID, ErrNotFound:
			response.NotFound(c, "Não foi encontrado nenhum caso com essa id="+id+".")
		default:
			response.Internal(c, "Erro ao atualizar caso.", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Caso atualizado com sucesso!", "caso": caso})
}

// Delete godoc
// @Summary Remove um caso pelo ID
// @Tags casos
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do caso"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.MessageResponse
// @Router /caso/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if validator.IsBlank(id) {
		response.BadRequest(c, "ID não fornecido na URL da requisição.")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		switch err {
		case ErrInvalidID, ErrNotFound:
			response.NotFound(c, "Nenhum caso encontrado com essa id="+id+".")
		default:
			response.Internal(c, "Erro ao deletar caso.", err)
		}
		return
	}

	response.OK(c, "Caso com ID="+id+" foi deletado com sucesso!")
}

// DeleteAll godoc
// @Summary Remove todos os casos
// @Tags casos
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} response.ErrorResponse
// @Router /caso [delete]
func (h *Handler) DeleteAll(c *gin.Context) {
	count, err := h.repo.DeleteAll(c.Request.Context())
	if err != nil {
		response.Internal(c, "Erro ao deletar todos os casos.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Todos os casos foram deletados com sucesso!",
		"deletedCount": count,
	})
}
