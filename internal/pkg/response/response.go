package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageResponse is the payload for client-facing failures and plain acknowledgments
type MessageResponse struct {
	Message string `json:"message" example:"Caso não encontrado"`
}

// ErrorResponse is the payload for unexpected server-side failures
type ErrorResponse struct {
	Error   string `json:"error" example:"Erro ao cadastrar usuário."`
	Details string `json:"details,omitempty"`
}

// Message sends a {message} body with the given status code
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageResponse{Message: message})
}

// OK sends a 200 {message} acknowledgment
func OK(c *gin.Context, message string) {
	Message(c, http.StatusOK, message)
}

// BadRequest sends a 400 with a validation or malformed-input message
func BadRequest(c *gin.Context, message string) {
	Message(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 for missing or invalid credentials
func Unauthorized(c *gin.Context, message string) {
	Message(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 for a role that is not permitted
func Forbidden(c *gin.Context, message string) {
	Message(c, http.StatusForbidden, message)
}

// NotFound sends a 404
func NotFound(c *gin.Context, message string) {
	Message(c, http.StatusNotFound, message)
}

// TooManyRequests sends a 429
func TooManyRequests(c *gin.Context, message string) {
	Message(c, http.StatusTooManyRequests, message)
}

// Internal sends a 500 with an {error, details} pair
func Internal(c *gin.Context, message string, err error) {
	details := ""
	if err != nil {
		details = err.Error()
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: message, Details: details})
}
