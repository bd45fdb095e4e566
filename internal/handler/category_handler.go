package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quiz-api/internal/hypermedia"
	"github.com/yourusername/quiz-api/internal/resolver"
	"github.com/yourusername/quiz-api/internal/service"
)

// CategoryHandler обрабатывает запросы, связанные с категориями
type CategoryHandler struct {
	categoryService *service.CategoryService
	quizService     *service.QuizService
	questionService *service.QuestionService
	resolver        *resolver.Resolver
	assembler       *hypermedia.Assembler
	viewCache       *ViewCache
}

// NewCategoryHandler создает новый обработчик категорий
func NewCategoryHandler(
	categoryService *service.CategoryService,
	quizService *service.QuizService,
	questionService *service.QuestionService,
	res *resolver.Resolver,
	assembler *hypermedia.Assembler,
	viewCache *ViewCache,
) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		quizService:     quizService,
		questionService: questionService,
		resolver:        res,
		assembler:       assembler,
		viewCache:       viewCache,
	}
}

// CategoryRequest представляет тело создания и переименования категории
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// List возвращает все категории. Тело ответа кешируется до первой мутации.
func (h *CategoryHandler) List(c *gin.Context) {
	var cached hypermedia.CategoryList
	if h.viewCache.Get(CategoryListCacheKey, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	categories, err := h.categoryService.List()
	if err != nil {
		respondError(c, err)
		return
	}

	body := h.assembler.CategoryList(categories)
	h.viewCache.Put(CategoryListCacheKey, body)
	c.JSON(http.StatusOK, body)
}

// Get возвращает детали категории
func (h *CategoryHandler) Get(c *gin.Context) {
	category, err := h.resolver.Category(c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.assembler.CategoryDetail(category))
}

// Create создает новую категорию
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	category, err := h.categoryService.Create(req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	h.viewCache.Invalidate(CategoryListCacheKey)
	c.JSON(http.StatusCreated, gin.H{
		"msg":    "Category created",
		"name":   category.Name,
		"_links": h.assembler.CategoryResourceLinks(category.Name),
	})
}

// Update переименовывает категорию
func (h *CategoryHandler) Update(c *gin.Context) {
	category, err := h.resolver.Category(c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	oldName := category.Name
	category, err = h.categoryService.Rename(category, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	h.viewCache.Invalidate(CategoryListCacheKey)
	c.JSON(http.StatusOK, gin.H{
		"msg":      "Category updated",
		"old_name": oldName,
		"new_name": category.Name,
		"_links":   h.assembler.CategoryResourceLinks(category.Name),
	})
}

// Delete удаляет категорию, если на неё не ссылаются викторины
func (h *CategoryHandler) Delete(c *gin.Context) {
	category, err := h.resolver.Category(c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}

	name := category.Name
	if err := h.categoryService.Delete(category); err != nil {
		respondError(c, err)
		return
	}

	h.viewCache.Invalidate(CategoryListCacheKey)
	c.JSON(http.StatusOK, gin.H{
		"msg":    "Category deleted",
		"name":   name,
		"_links": h.assembler.CategoryCollectionLinks(),
	})
}

// Quizzes возвращает викторины категории
func (h *CategoryHandler) Quizzes(c *gin.Context) {
	category, err := h.resolver.Category(c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}

	quizzes, err := h.quizService.ListByCategory(category)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.assembler.QuizzesByCategory(category, quizzes))
}

// Questions возвращает вопросы всех викторин категории
func (h *CategoryHandler) Questions(c *gin.Context) {
	category, err := h.resolver.Category(c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}

	questions, err := h.questionService.ListByCategory(category)
	if err != nil {
		respondError(c, err)
		return
	}

	body, err := h.assembler.QuestionsInCategory(category, questions)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}
