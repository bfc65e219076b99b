package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gridboard/internal/config"
	"gridboard/internal/handler"
	"gridboard/internal/middleware"
	"gridboard/internal/repository"
	"gridboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	// Schema first, so the unique constraints exist before any request
	if err := runMigrations(cfg); err != nil {
		return nil, err
	}

	// Setup GORM. TranslateError turns driver unique-violation errors into
	// gorm.ErrDuplicatedKey, which the write paths rely on for race handling.
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	log.Println("✅ Connected to database")

	// Setup Gin
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	// Unsupported verbs on known paths get the envelope, not gin's default
	r.HandleMethodNotAllowed = true
	r.NoMethod(handler.BadMethod)
	r.NoRoute(handler.NotFound)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)

	// Initialize services
	boardService := service.NewBoardService(userRepo, boardRepo)
	boardQueries := service.NewBoardQueries(userRepo, boardRepo)

	// Initialize handlers
	boardHandler := handler.NewBoardHandler(boardService, boardQueries)
	userHandler := handler.NewUserHandler(boardService, boardQueries)

	r.GET("/startup", handler.Startup)

	r.GET("/boards", boardHandler.GetAll)
	r.POST("/boards", boardHandler.Create)
	r.GET("/boards/:id", boardHandler.GetByID)
	r.PUT("/boards/:id", boardHandler.Update)
	r.DELETE("/boards/:id", boardHandler.Delete)

	r.GET("/user/:name", userHandler.GetBoards)
	r.DELETE("/user/:name", userHandler.DeleteBoards)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
	}, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	log.Println("✅ Server exited properly")
}
