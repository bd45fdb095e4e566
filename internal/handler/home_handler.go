package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quiz-api/internal/hypermedia"
)

// HomeHandler обрабатывает точку входа API
type HomeHandler struct {
	assembler *hypermedia.Assembler
}

// NewHomeHandler создает новый обработчик точки входа
func NewHomeHandler(assembler *hypermedia.Assembler) *HomeHandler {
	return &HomeHandler{assembler: assembler}
}

// EntryPoint возвращает корневой документ со ссылками на коллекции
func (h *HomeHandler) EntryPoint(c *gin.Context) {
	c.JSON(http.StatusOK, h.assembler.EntryPoint())
}
