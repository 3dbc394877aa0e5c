package users

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/odontoforense/api-go/internal/config"
	"github.com/odontoforense/api-go/internal/pkg/password"
	"github.com/odontoforense/api-go/internal/pkg/response"
	"github.com/odontoforense/api-go/internal/pkg/token"
	"github.com/odontoforense/api-go/internal/pkg/validator"
)

type Handler struct {
	repo *Repository
	cfg  *config.Config
}

func NewHandler(repo *Repository, cfg *config.Config) *Handler {
	return &Handler{repo: repo, cfg: cfg}
}

// Create godoc
// @Summary Cadastra um novo usuário
// @Description Cria um usuário com perfil admin, perito ou assistente
// @Tags usuarios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateUsuarioRequest true "Dados do usuário"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.MessageResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /user [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dados inválidos: "+err.Error())
		return
	}

	if err := ValidateCreate(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	usuario := &Usuario{
		Nome:   req.Nome,
		Email:  req.Email,
		Senha:  req.Senha,
		Perfil: req.Perfil,
	}
	if usuario.Perfil == "" {
		usuario.Perfil = PerfilAssistente
	}

	if err := h.repo.Create(c.Request.Context(), usuario); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			response.BadRequest(c, "Email já cadastrado")
			return
		}
		response.Internal(c, "Erro ao cadastrar usuário.", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Usuário cadastrado com sucesso!", "usuario": usuario})
}

// Login godoc
// @Summary Autentica um usuário
// @Description Valida email e senha e emite um token de acesso
// @Tags usuarios
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credenciais"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} response.MessageResponse
// @Failure 404 {object} response.MessageResponse
// @Router /user/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dados inválidos: "+err.Error())
		return
	}

	usuario, err := h.repo.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.Internal(c, "Erro ao realizar login", err)
		return
	}
	if usuario == nil {
		response.NotFound(c, "Usuário não encontrado")
		return
	}

	if !password.Compare(usuario.Senha, req.Senha) {
		response.Unauthorized(c, "Senha incorreta")
		return
	}

	signed, err := token.Generate(usuario.ID.Hex(), usuario.Perfil, &token.Config{
		Secret: h.cfg.JWTSecret,
		Expiry: time.Duration(h.cfg.JWTExpireHours) * time.Hour,
		Issuer: "odontoforense-api",
	})
	if err != nil {
		response.Internal(c, "Erro ao realizar login", err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Message: "Login bem-sucedido",
		Usuario: usuario,
		Token:   signed,
	})
}

// Logout godoc
// @Summary Encerra a sessão
// @Description Tokens são autocontidos; o logout é um reconhecimento sem estado
// @Tags usuarios
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.MessageResponse
// @Router /user/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	response.OK(c, "Logout bem-sucedido")
}

// List godoc
// @Summary Lista todos os usuários
// @Tags usuarios
// @Produce json
// @Security BearerAuth
// @Success 200 {array} Usuario
// @Failure 500 {object} response.ErrorResponse
// @Router /user [get]
func (h *Handler) List(c *gin.Context) {
	usuarios, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Internal(c, "Erro ao listar usuários.", err)
		return
	}

	c.JSON(http.StatusOK, usuarios)
}

// Get godoc
// @Summary Busca um usuário pelo ID
// @Tags usuarios
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do usuário"
// @Success 200 {object} Usuario
// @Failure 400 {object} response.MessageResponse
// @Failure 404 {object} response.MessageResponse
// @Router /user/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if validator.IsBlank(id) {
		response.BadRequest(c, "ID não fornecido na URL da requisição.")
		return
	}

	usuario, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == ErrInvalidID {
			response.NotFound(c, "Usuário não encontrado com essa id="+id+".")
			return
		}
		response.Internal(c, "Erro ao encontrar usuário.", err)
		return
	}
	if usuario == nil {
		response.NotFound(c, "Usuário não encontrado com essa id="+id+".")
		return
	}

	c.JSON(http.StatusOK, usuario)
}

// Update godoc
// @Summary Atualiza um usuário
// @Description Mescla os campos enviados; senha em branco mantém o hash armazenado
// @Tags usuarios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do usuário"
// @Param request body UpdateUsuarioRequest true "Campos a atualizar"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.MessageResponse
// @Failure 404 {object} response.MessageResponse
// @Router /user/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if validator.IsBlank(id) {
		response.BadRequest(c, "ID não fornecido na URL da requisição.")
		return
	}

	var req UpdateUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dados inválidos: "+err.Error())
		return
	}

	if err := ValidateUpdate(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	update := buildUpdate(&req)
	if len(update) == 0 {
		response.BadRequest(c, "Nenhum campo para atualizar")
		return
	}

	usuario, err := h.repo.Update(c.Request.Context(), id, update)
	if err != nil {
		switch err {
		case ErrInvalidID, ErrNotFound:
			response.NotFound(c, "Usuário não encontrado com essa id="+id+".")
		default:
			if mongo.IsDuplicateKeyError(err) {
				response.BadRequest(c, "Email já cadastrado")
				return
			}
			response.Internal(c, "Erro ao atualizar usuário.", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Usuário atualizado com sucesso!", "usuario": usuario})
}

// Delete godoc
// @Summary Remove um usuário pelo ID
// @Tags usuarios
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do usuário"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.MessageResponse
// @Router /user/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if validator.IsBlank(id) {
		response.BadRequest(c, "ID não fornecido na URL da requisição.")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		switch err {
		case ErrInvalidID, ErrNotFound:
			response.NotFound(c, "Nenhum usuário encontrado com essa id="+id+".")
		default:
			response.Internal(c, "Erro ao deletar usuário.", err)
		}
		return
	}

	response.OK(c, "Usuário com ID="+id+" foi deletado com sucesso!")
}

// DeleteAll godoc
// @Summary Remove todos os usuários
// @Tags usuarios
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} response.ErrorResponse
// @Router /user [delete]
func (h *Handler) DeleteAll(c *gin.Context) {
	count, err := h.repo.DeleteAll(c.Request.Context())
	if err != nil {
		response.Internal(c, "Erro ao deletar todos os usuários.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Todos os usuários foram deletados com sucesso!",
		"deletedCount": count,
	})
}

// buildUpdate turns a partial request into a $set document. A blank or
// absent senha is left out entirely so the stored hash survives the merge.
func buildUpdate(req *UpdateUsuarioRequest) bson.M {
	update := bson.M{}
	if req.Nome != "" {
		update["nome"] = req.Nome
	}
	if req.Email != "" {
		update["email"] = req.Email
	}
	if req.Perfil != "" {
		update["perfil"] = req.Perfil
	}
	if !validator.IsBlank(req.Senha) {
		update["senha"] = req.Senha
	}
	return update
}
