package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/hypermedia"
	"github.com/yourusername/quiz-api/internal/resolver"
	"github.com/yourusername/quiz-api/internal/service"
)

// QuestionHandler обрабатывает запросы, связанные с вопросами
type QuestionHandler struct {
	questionService *service.QuestionService
	quizService     *service.QuizService
	resolver        *resolver.Resolver
	assembler       *hypermedia.Assembler
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(
	questionService *service.QuestionService,
	quizService *service.QuizService,
	res *resolver.Resolver,
	assembler *hypermedia.Assembler,
) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		quizService:     quizService,
		resolver:        res,
		assembler:       assembler,
	}
}

// OptionRequest представляет один вариант ответа в теле запроса
type OptionRequest struct {
	Statement string `json:"option_statement" binding:"required"`
	IsCorrect *bool  `json:"is_correct" binding:"required"`
}

// CreateQuestionRequest представляет запрос на создание вопроса
type CreateQuestionRequest struct {
	Statement    string          `json:"question_statement" binding:"required"`
	Complexity   string          `json:"complex_level" binding:"required"`
	QuizUniqueID string          `json:"quiz_unique_id" binding:"required"`
	Options      []OptionRequest `json:"options"`
}

// UpdateQuestionRequest представляет запрос на обновление вопроса.
// Отсутствующие поля не меняются; options заменяет весь набор вариантов.
type UpdateQuestionRequest struct {
	Statement    *string         `json:"question_statement"`
	Complexity   *string         `json:"complex_level"`
	QuizUniqueID *string         `json:"quiz_unique_id"`
	Options      []OptionRequest `json:"options"`
}

// ScopedQuestionRequest представляет запрос на создание вопроса в викторине,
// адресованной именами категории и викторины
type ScopedQuestionRequest struct {
	Statement  string          `json:"question_statement" binding:"required"`
	Complexity string          `json:"complex_level" binding:"required"`
	Options    []OptionRequest `json:"options"`
}

func toOptionInputs(options []OptionRequest) []service.OptionInput {
	if options == nil {
		return nil
	}
	inputs := make([]service.OptionInput, 0, len(options))
	for _, opt := range options {
		isCorrect := opt.IsCorrect != nil && *opt.IsCorrect
		inputs = append(inputs, service.OptionInput{Statement: opt.Statement, IsCorrect: isCorrect})
	}
	return inputs
}

// List возвращает все вопросы с вариантами ответов
func (h *QuestionHandler) List(c *gin.Context) {
	questions, err := h.questionService.List()
	if err != nil {
		respondError(c, err)
		return
	}

	body, err := h.assembler.QuestionList(questions)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

// Get возвращает детали вопроса
func (h *QuestionHandler) Get(c *gin.Context) {
	question, err := h.resolver.Question(c.Param("question"))
	if err != nil {
		respondError(c, err)
		return
	}

	body, err := h.assembler.QuestionDetail(question)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

// Create создает вопрос и привязывает его к викторине по unique_id
func (h *QuestionHandler) Create(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	quiz, err := h.resolver.QuizRef(req.QuizUniqueID)
	if err != nil {
		respondError(c, err)
		return
	}

	question, err := h.questionService.Create(req.Statement, req.Complexity, toOptionInputs(req.Options), quiz)
	if err != nil {
		respondError(c, err)
		return
	}

	links, err := h.assembler.QuestionResourceLinks(question)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg":       "Question created",
		"unique_id": question.UniqueID,
		"_links":    links,
	})
}

// Update обновляет вопрос, его варианты и, при необходимости, привязку
// к викторине
func (h *QuestionHandler) Update(c *gin.Context) {
	question, err := h.resolver.Question(c.Param("question"))
	if err != nil {
		respondError(c, err)
		return
	}

	var req UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	var newQuiz *entity.Quiz
	if req.QuizUniqueID != nil {
		newQuiz, err = h.resolver.QuizRef(*req.QuizUniqueID)
		if err != nil {
			respondError(c, err)
			return
		}
	}

	question, err = h.questionService.Update(question, req.Statement, req.Complexity, toOptionInputs(req.Options), newQuiz)
	if err != nil {
		respondError(c, err)
		return
	}

	links, err := h.assembler.QuestionResourceLinks(question)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":    "Question updated",
		"_links": links,
	})
}

// Delete удаляет вопрос вместе с вариантами и строками связей
func (h *QuestionHandler) Delete(c *gin.Context) {
	question, err := h.resolver.Question(c.Param("question"))
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.questionService.Delete(question); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":    "Question and related records deleted",
		"_links": h.assembler.QuestionCollectionLinks(),
	})
}

// resolveScopedQuiz разбирает пару имен категория/викторина из пути
// и проверяет их связь
func (h *QuestionHandler) resolveScopedQuiz(c *gin.Context) (*entity.Category, *entity.Quiz, bool) {
	category, err := h.resolver.CategoryInScope(c.Param("category"))
	if err != nil {
		respondError(c, err)
		return nil, nil, false
	}

	quiz, err := h.resolver.QuizByName(c.Param("quiz"))
	if err != nil {
		respondError(c, err)
		return nil, nil, false
	}

	if err := h.quizService.EnsureInCategory(quiz, category); err != nil {
		respondError(c, err)
		return nil, nil, false
	}
	return category, quiz, true
}

// AllInCategoryQuiz возвращает все вопросы викторины, адресованной
// именами категории и викторины
func (h *QuestionHandler) AllInCategoryQuiz(c *gin.Context) {
	category, quiz, ok := h.resolveScopedQuiz(c)
	if !ok {
		return
	}

	questions, err := h.questionService.ListByQuiz(quiz)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.assembler.CategoryQuizAll(category, quiz, questions))
}

// Filtered возвращает случайную выборку вопросов викторины по сложности.
// Параметры запроса: question_count (по умолчанию 5) и complex_level
// (по умолчанию medium).
func (h *QuestionHandler) Filtered(c *gin.Context) {
	complexity := c.DefaultQuery("complex_level", service.DefaultQuestionComplexity)
	if _, err := h.resolver.Complexity(complexity); err != nil {
		respondError(c, err)
		return
	}

	category, quiz, ok := h.resolveScopedQuiz(c)
	if !ok {
		return
	}

	count, err := strconv.Atoi(c.DefaultQuery("question_count", strconv.Itoa(service.DefaultQuestionCount)))
	if err != nil {
		count = service.DefaultQuestionCount
	}

	complexity, questions, err := h.questionService.ListFiltered(quiz, complexity, count)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.assembler.FilteredQuestions(category, quiz, complexity, questions))
}

// CreateForCategoryQuiz создает вопрос в викторине, адресованной именами
// категории и викторины
func (h *QuestionHandler) CreateForCategoryQuiz(c *gin.Context) {
	category, quiz, ok := h.resolveScopedQuiz(c)
	if !ok {
		return
	}

	var req ScopedQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	question, err := h.questionService.Create(req.Statement, req.Complexity, toOptionInputs(req.Options), quiz)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg":         "Question created for quiz",
		"category":    category.Name,
		"quiz_name":   quiz.Name,
		"question_id": question.UniqueID,
		"_links":      h.assembler.ScopedCreateLinks(category.Name, quiz.Name),
	})
}
