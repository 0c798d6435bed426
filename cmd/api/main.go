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
	"github.com/joho/godotenv"

	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/config"
	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/domain/repository"
	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/handler"
	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/handler/dto"
	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/middleware"
	pgRepo "github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/repository/postgres"
	redisRepo "github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/repository/redis"
	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/service"
	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/pkg/database"
)

func main() {
	// Локальный .env удобен при разработке; в проде его просто нет
	if err := godotenv.Load(); err == nil {
		log.Println("Загружены переменные окружения из .env")
	}

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
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем репозитории
	questionRepo := pgRepo.NewQuestionRepo(db)

	// Справочник категорий читается на каждый запрос списка, поэтому при
	// настроенном Redis оборачиваем репозиторий в сквозной кеш
	var categoryRepo repository.CategoryRepository = pgRepo.NewCategoryRepo(db)
	if cfg.Redis.Addr != "" {
		redisClient, err := database.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Printf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		log.Println("Successfully connected to Redis")
		defer redisClient.Close()

		cacheRepo, err := redisRepo.NewCacheRepo(redisClient)
		if err != nil {
			log.Printf("Failed to initialize CacheRepo: %v", err)
			os.Exit(1)
		}
		categoryRepo = redisRepo.NewCachedCategoryRepo(
			categoryRepo,
			cacheRepo,
			time.Duration(cfg.Redis.CacheTTL)*time.Second,
		)
	}

	// Инициализируем сервисы
	questionService := service.NewQuestionService(questionRepo)
	categoryService := service.NewCategoryService(categoryRepo, questionRepo)
	quizService := service.NewQuizService(questionRepo)

	// Инициализируем обработчики
	questionHandler := handler.NewQuestionHandler(questionService, categoryService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	quizHandler := handler.NewQuizHandler(quizService)

	// Инициализируем роутер Gin
	router := gin.Default()

	// Настройка доверенных прокси для корректной работы c.ClientIP()
	// В production (GIN_MODE=release): не доверяем прокси (защита от IP spoofing)
	// В development: доверяем localhost
	if gin.Mode() == gin.ReleaseMode {
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Идентификатор запроса для корреляции логов
	router.Use(middleware.RequestID())

	// Настройка CORS: API публичный, принимаем запросы с любых источников
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	// Незарегистрированные пути отвечают в том же формате, что и ошибки API
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound))
	})

	// Настраиваем маршруты API
	router.GET("/categories", categoryHandler.ListCategories)

	categoryWithID := router.Group("/categories/:category_id")
	categoryWithID.Use(middleware.ExtractUintParam("category_id", "categoryID"))
	{
		categoryWithID.GET("/questions", categoryHandler.QuestionsByCategory)
	}

	router.GET("/questions", questionHandler.ListQuestions)
	router.POST("/questions", questionHandler.CreateQuestion)
	router.POST("/questions/search", questionHandler.SearchQuestions)

	questionWithID := router.Group("/questions/:id")
	questionWithID.Use(middleware.ExtractUintParam("id", "questionID"))
	{
		questionWithID.DELETE("", questionHandler.DeleteQuestion)
	}

	router.POST("/quizzes", quizHandler.PlayQuiz)

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
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

	// Ждем сигнал остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Контекст с таймаутом для graceful shutdown сервера
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	log.Println("Server exited properly")
}
