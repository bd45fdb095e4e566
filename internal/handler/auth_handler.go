package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quiz-api/internal/hypermedia"
	"github.com/yourusername/quiz-api/internal/service"
)

// AuthHandler обрабатывает запросы аутентификации
type AuthHandler struct {
	authService *service.AuthService
	assembler   *hypermedia.Assembler
}

// NewAuthHandler создает новый обработчик аутентификации
func NewAuthHandler(authService *service.AuthService, assembler *hypermedia.Assembler) *AuthHandler {
	return &AuthHandler{authService: authService, assembler: assembler}
}

// LoginRequest представляет запрос на вход
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse представляет успешный ответ на вход
type LoginResponse struct {
	AccessToken string           `json:"access_token"`
	Links       hypermedia.Links `json:"_links"`
}

// Login проверяет учетные данные и выдает токен доступа
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: token,
		Links:       h.assembler.LoginLinks(),
	})
}
