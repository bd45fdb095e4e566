package handler

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/hypermedia"
	"github.com/yourusername/quiz-api/internal/resolver"
	"github.com/yourusername/quiz-api/internal/service"
)

// QuizHandler обрабатывает запросы, связанные с викторинами
type QuizHandler struct {
	quizService     *service.QuizService
	questionService *service.QuestionService
	resolver        *resolver.Resolver
	assembler       *hypermedia.Assembler
	viewCache       *ViewCache
}

// NewQuizHandler создает новый обработчик викторин
func NewQuizHandler(
	quizService *service.QuizService,
	questionService *service.QuestionService,
	res *resolver.Resolver,
	assembler *hypermedia.Assembler,
	viewCache *ViewCache,
) *QuizHandler {
	return &QuizHandler{
		quizService:     quizService,
		questionService: questionService,
		resolver:        res,
		assembler:       assembler,
		viewCache:       viewCache,
	}
}

// CreateQuizRequest представляет запрос на создание викторины
type CreateQuizRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	CategoryName string `json:"category_name" binding:"required"`
}

// UpdateQuizRequest представляет запрос на обновление викторины.
// Отсутствующие поля не меняются.
type UpdateQuizRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	CategoryName *string `json:"category_name"`
}

// List возвращает все викторины. Тело ответа кешируется до первой мутации.
func (h *QuizHandler) List(c *gin.Context) {
	var cached hypermedia.QuizList
	if h.viewCache.Get(QuizListCacheKey, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	quizzes, err := h.quizService.List()
	if err != nil {
		respondError(c, err)
		return
	}

	body := h.assembler.QuizList(quizzes)
	h.viewCache.Put(QuizListCacheKey, body)
	c.JSON(http.StatusOK, body)
}

// Get возвращает детали викторины
func (h *QuizHandler) Get(c *gin.Context) {
	quiz, err := h.resolver.Quiz(c.Param("quiz"))
	if err != nil {
		respondError(c, err)
		return
	}

	body, err := h.assembler.QuizDetail(quiz)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

// Create создает викторину в указанной категории
func (h *QuizHandler) Create(c *gin.Context) {
	var req CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	quiz, category, err := h.quizService.Create(req.Name, req.Description, req.CategoryName)
	if err != nil {
		respondError(c, err)
		return
	}

	links, err := h.assembler.QuizResourceLinks(quiz)
	if err != nil {
		respondError(c, err)
		return
	}

	h.viewCache.Invalidate(QuizListCacheKey)
	c.JSON(http.StatusCreated, gin.H{
		"msg":       "Quiz created",
		"unique_id": quiz.UniqueID,
		"category":  category.Name,
		"_links":    links,
	})
}

// Update обновляет поля викторины и, при необходимости, её категорию
func (h *QuizHandler) Update(c *gin.Context) {
	quiz, err := h.resolver.Quiz(c.Param("quiz"))
	if err != nil {
		respondError(c, err)
		return
	}

	var req UpdateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	quiz, err = h.quizService.Update(quiz, req.Name, req.Description, req.CategoryName)
	if err != nil {
		respondError(c, err)
		return
	}

	links, err := h.assembler.QuizResourceLinks(quiz)
	if err != nil {
		respondError(c, err)
		return
	}

	h.viewCache.Invalidate(QuizListCacheKey)
	c.JSON(http.StatusOK, gin.H{
		"msg":    "Quiz updated",
		"_links": links,
	})
}

// Delete удаляет викторину вместе с осиротевшими вопросами
func (h *QuizHandler) Delete(c *gin.Context) {
	quiz, err := h.resolver.Quiz(c.Param("quiz"))
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.quizService.Delete(quiz); err != nil {
		respondError(c, err)
		return
	}

	h.viewCache.Invalidate(QuizListCacheKey)
	c.JSON(http.StatusOK, gin.H{
		"msg":    "Quiz deleted",
		"_links": h.assembler.QuizCollectionLinks(),
	})
}

// Questions возвращает вопросы викторины
func (h *QuizHandler) Questions(c *gin.Context) {
	quiz, err := h.resolver.Quiz(c.Param("quiz"))
	if err != nil {
		respondError(c, err)
		return
	}

	questions, err := h.questionService.ListByQuiz(quiz)
	if err != nil {
		respondError(c, err)
		return
	}

	body, err := h.assembler.QuestionsByQuiz(quiz, questions)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

// ExportQuestions выгружает вопросы викторины файлом (CSV или XLSX)
func (h *QuizHandler) ExportQuestions(c *gin.Context) {
	quiz, err := h.resolver.Quiz(c.Param("quiz"))
	if err != nil {
		respondError(c, err)
		return
	}

	questions, err := h.questionService.ListByQuiz(quiz)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("quiz_%s_questions_%s", quiz.UniqueID, time.Now().Format("2006-01-02"))

	switch c.DefaultQuery("format", "csv") {
	case "xlsx":
		h.exportXLSX(c, questions, filename)
	default:
		h.exportCSV(c, questions, filename)
	}
}

// exportCSV выгружает вопросы в CSV с корректным экранированием спецсимволов
func (h *QuizHandler) exportCSV(c *gin.Context, questions []entity.Question, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))

	// BOM для корректного отображения UTF-8 в Excel
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"Question", "Complexity", "Options", "Correct options"})
	for i := range questions {
		q := &questions[i]
		writer.Write([]string{
			sanitizeForExcel(q.Statement),
			q.Complexity,
			sanitizeForExcel(joinOptions(q.Options, false)),
			sanitizeForExcel(joinOptions(q.Options, true)),
		})
	}
}

// exportXLSX выгружает вопросы в Excel через StreamWriter
func (h *QuizHandler) exportXLSX(c *gin.Context, questions []entity.Question, filename string) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Questions"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[QuizHandler] Ошибка создания StreamWriter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to create Excel file"})
		return
	}

	headers := []interface{}{"Question", "Complexity", "Options", "Correct options"}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[QuizHandler] Ошибка записи заголовков: %v", err)
	}

	for i := range questions {
		q := &questions[i]
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{
			sanitizeForExcel(q.Statement),
			q.Complexity,
			sanitizeForExcel(joinOptions(q.Options, false)),
			sanitizeForExcel(joinOptions(q.Options, true)),
		}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[QuizHandler] Ошибка записи строки %d: %v", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[QuizHandler] Ошибка при Flush: %v", err)
	}
	if err := f.Write(c.Writer); err != nil {
		log.Printf("[QuizHandler] Ошибка записи Excel в response: %v", err)
	}
}

// joinOptions соединяет формулировки вариантов; onlyCorrect оставляет
// только правильные
func joinOptions(options []entity.Option, onlyCorrect bool) string {
	parts := make([]string, 0, len(options))
	for _, opt := range options {
		if onlyCorrect && !opt.IsCorrect {
			continue
		}
		parts = append(parts, opt.Statement)
	}
	return strings.Join(parts, "; ")
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}
