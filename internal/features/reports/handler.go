package reports

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/odontoforense/api-go/internal/pkg/response"
	"github.com/odontoforense/api-go/internal/pkg/validator"
)

type Handler struct {
	repo     *Repository
	renderer *Renderer
}

func NewHandler(repo *Repository, renderer *Renderer) *Handler {
	return &Handler{repo: repo, renderer: renderer}
}

// Create godoc
// @Summary Registra um novo laudo pericial
// @Tags laudos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateLaudoRequest true "Dados do laudo"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.MessageResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /laudo [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateLaudoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dados inválidos: "+err.Error())
		return
	}

	if err := ValidateCreate(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dataEmissao, err := ParseDataEmissao(req.DataEmissao)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	laudo := &Laudo{
		TituloLaudo:   req.TituloLaudo,
		NumeroLaudo:   req.NumeroLaudo,
		DataEmissao:   dataEmissao,
		TipoLaudo:     req.TipoLaudo,
		ConteudoLaudo: req.ConteudoLaudo,
	}

	if err := h.repo.Create(c.Request.Context(), laudo); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			response.BadRequest(c, "Já existe um laudo com esse numeroLaudo")
			return
		}
		response.Internal(c, "Erro ao adicionar laudo.", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Laudo adicionado com sucesso!", "laudo": laudo})
}

// List godoc
// @Summary Lista todos os laudos
// @Tags laudos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} Laudo
// @Failure 500 {object} response.ErrorResponse
// @Router /laudo [get]
func (h *Handler) List(c *gin.Context) {
	laudos, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Internal(c, "Erro ao listar os laudos.", err)
		return
	}

	c.JSON(http.StatusOK, laudos)
}

// Get godoc
// @Summary Busca um laudo pelo ID
// @Tags laudos
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do laudo"
// @Success 200 {object} Laudo
// @Failure 400 {object} response.MessageResponse
// @Failure 404 {object} response.MessageResponse
// @Router /laudo/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if validator.IsBlank(id) {
		response.BadRequest(c, "ID não fornecido na URL da requisição.")
		return
	}

	laudo, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == ErrInvalidID {
			response.NotFound(c, "Não foi encontrado nenhum laudo com essa id="+id+".")
			return
		}
		response.Internal(c, "Erro ao buscar laudo.", err)
		return
	}
	if laudo == nil {
		response.NotFound(c, "Não foi encontrado nenhum laudo com essa id="+id+".")
		return
	}

	c.JSON(http.StatusOK, laudo)
}

// Update godoc
// @Summary Atualiza um laudo
// @Description numeroLaudo é imutável e não pode ser alterado por esta rota
// @Tags laudos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do laudo"
// @Param request body UpdateLaudoRequest true "Campos a atualizar"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.MessageResponse
// @Failure 404 {object} response.MessageResponse
// @Router /laudo/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if validator.IsBlank(id) {
		response.BadRequest(c, "ID não fornecido na URL da requisição.")
		return
	}

	var req UpdateLaudoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dados inválidos: "+err.Error())
		return
	}

	if err := ValidateUpdate(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	update := bson.M{}
	if req.TituloLaudo != "" {
		update["tituloLaudo"] = req.TituloLaudo
	}
	if req.DataEmissao != "" {
		dataEmissao, err := ParseDataEmissao(req.DataEmissao)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		update["dataEmissao"] = dataEmissao
	}
	if req.TipoLaudo != "" {
		update["tipoLaudo"] = req.TipoLaudo
	}
	if req.ConteudoLaudo != nil {
		update["conteudoLaudo"] = req.ConteudoLaudo
	}

	if len(update) == 0 {
		response.BadRequest(c, "Nenhum campo para atualizar")
		return
	}

	laudo, err := h.repo.Update(c.Request.Context(), id, update)
	if err != nil {
		switch err {
		case ErrInvalidID, ErrNotFound:
			response.NotFound(c, "Não foi encontrado nenhum laudo com essa id="+id+".")
		default:
			response.Internal(c, "Erro ao atualizar laudo.", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Laudo atualizado com sucesso!", "laudo": laudo})
}

// Delete godoc
// @Summary Remove um laudo pelo ID
// @Tags laudos
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do laudo"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.MessageResponse
// @Router /laudo/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if validator.IsBlank(id) {
		response.BadRequest(c, "ID não fornecido na URL da requisição.")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		switch err {
		case ErrInvalidID, ErrNotFound:
			response.NotFound(c, "Nenhum laudo encontrado com essa id="+id+".")
		default:
			response.Internal(c, "Erro ao deletar laudo.", err)
		}
		return
	}

	response.OK(c, "Laudo com ID="+id+" foi deletado com sucesso!")
}

// DeleteAll godoc
// @Summary Remove todos os laudos
// @Tags laudos
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} response.ErrorResponse
// @Router /laudo [delete]
func (h *Handler) DeleteAll(c *gin.Context) {
	count, err := h.repo.DeleteAll(c.Request.Context())
	if err != nil {
		response.Internal(c, "Erro ao deletar todos os laudos.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Todos os laudos foram deletados com sucesso!",
		"deletedCount": count,
	})
}

// GeneratePDF godoc
// @Summary Gera o PDF de um laudo com assinatura digital
// @Tags laudos
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "ID do laudo"
// @Success 200 {file} binary
// @Failure 404 {object} response.MessageResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /laudo/{id}/pdf [get]
func (h *Handler) GeneratePDF(c *gin.Context) {
	id := c.Param("id")
	if validator.IsBlank(id) {
		response.BadRequest(c, "ID não fornecido na URL da requisição.")
		return
	}

	laudo, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == ErrInvalidID {
			response.NotFound(c, "Laudo não encontrado.")
			return
		}
		response.Internal(c, "Erro ao gerar PDF.", err)
		return
	}
	if laudo == nil {
		response.NotFound(c, "Laudo não encontrado.")
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="laudo_`+id+`.pdf"`)

	if err := h.renderer.Render(c.Writer, laudo, time.Now()); err != nil {
		response.Internal(c, "Erro ao gerar PDF.", err)
		return
	}
}
