package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/quiz-api/internal/config"
	"github.com/yourusername/quiz-api/internal/handler"
	"github.com/yourusername/quiz-api/internal/hypermedia"
	"github.com/yourusername/quiz-api/internal/middleware"
	pgRepo "github.com/yourusername/quiz-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/quiz-api/internal/repository/redis"
	"github.com/yourusername/quiz-api/internal/resolver"
	"github.com/yourusername/quiz-api/internal/service"
	"github.com/yourusername/quiz-api/pkg/auth"
	"github.com/yourusername/quiz-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db, "migrations"); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к Redis
	redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	log.Println("Successfully connected to Redis")

	// Инициализируем репозитории
	categoryRepo := pgRepo.NewCategoryRepo(db)
	quizRepo := pgRepo.NewQuizRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)

	cacheRepo, err := redisRepo.NewCacheRepo(redisClient)
	if err != nil {
		log.Printf("Failed to initialize CacheRepo: %v", err)
		os.Exit(1)
	}

	// Инициализируем JWT и сервисы
	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationHrs)
	if err != nil {
		log.Printf("Failed to initialize JWTService: %v", err)
		os.Exit(1)
	}

	authService := service.NewAuthService(service.AdminCredentials{
		Username:     cfg.Auth.AdminUsername,
		Password:     cfg.Auth.AdminPassword,
		PasswordHash: cfg.Auth.AdminPasswordHash,
	}, jwtService)
	categoryService := service.NewCategoryService(categoryRepo)
	quizService := service.NewQuizService(quizRepo, categoryRepo)
	questionService := service.NewQuestionService(questionRepo)

	// Резолвер сегментов пути и сборщик представлений
	res := resolver.New(categoryRepo, quizRepo, questionRepo)
	urls := hypermedia.NewURLBuilder(cfg.Server.BaseURL)
	rels := hypermedia.NewRepoRelationSource(categoryRepo, quizRepo)
	assembler := hypermedia.NewAssembler(urls, rels)

	viewCache := handler.NewViewCache(cacheRepo, cfg.Cache.TTL)

	// Инициализируем обработчики
	homeHandler := handler.NewHomeHandler(assembler)
	authHandler := handler.NewAuthHandler(authService, assembler)
	categoryHandler := handler.NewCategoryHandler(categoryService, quizService, questionService, res, assembler, viewCache)
	quizHandler := handler.NewQuizHandler(quizService, questionService, res, assembler, viewCache)
	questionHandler := handler.NewQuestionHandler(questionService, quizService, res, assembler)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, middleware.SingleAdminPolicy{})

	// Инициализируем роутер Gin
	router := gin.Default()

	isProduction := gin.Mode() == gin.ReleaseMode
	if isProduction {
		// Production: не доверять прокси-заголовкам
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		// Development: доверяем localhost
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Тела мутирующих запросов принимаются только в JSON
	router.Use(middleware.RequireJSON())

	adminOnly := []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.AdminOnly()}

	// Точка входа и аутентификация
	router.GET("/", homeHandler.EntryPoint)
	router.POST("/login", authHandler.Login)

	// Категории
	router.GET("/category", categoryHandler.List)
	router.POST("/category", append(adminOnly, categoryHandler.Create)...)
	router.GET("/category/:category", categoryHandler.Get)
	router.PUT("/category/:category", append(adminOnly, categoryHandler.Update)...)
	router.DELETE("/category/:category", append(adminOnly, categoryHandler.Delete)...)
	router.GET("/category/:category/quizzes", categoryHandler.Quizzes)
	router.GET("/category/:category/questions", categoryHandler.Questions)

	// Викторины
	router.GET("/quiz", quizHandler.List)
	router.POST("/quiz", append(adminOnly, quizHandler.Create)...)
	router.GET("/quiz/:quiz", quizHandler.Get)
	router.PUT("/quiz/:quiz", append(adminOnly, quizHandler.Update)...)
	router.DELETE("/quiz/:quiz", append(adminOnly, quizHandler.Delete)...)
	router.GET("/quiz/:quiz/questions", quizHandler.Questions)
	router.GET("/quiz/:quiz/questions/export", append(adminOnly, quizHandler.ExportQuestions)...)

	// Вопросы
	router.GET("/question", questionHandler.List)
	router.POST("/question", append(adminOnly, questionHandler.Create)...)
	router.GET("/question/:question", questionHandler.Get)
	router.PUT("/question/:question", append(adminOnly, questionHandler.Update)...)
	router.DELETE("/question/:question", append(adminOnly, questionHandler.Delete)...)

	// Выборки по паре категория/викторина (адресация по именам)
	router.GET("/category/:category/quiz/:quiz/all", questionHandler.AllInCategoryQuiz)
	router.GET("/category/:category/quiz/:quiz/questions", questionHandler.Filtered)
	router.POST("/category/:category/quiz/:quiz/questions", append(adminOnly, questionHandler.CreateForCategoryQuiz)...)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	// Ожидаем сигнал остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Server exited properly")
}
