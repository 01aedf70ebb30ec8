package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bananahell/kanban-challenge/internal/config"
	"github.com/bananahell/kanban-challenge/internal/database"
	"github.com/bananahell/kanban-challenge/internal/handler"
	"github.com/bananahell/kanban-challenge/internal/middleware"
	"github.com/bananahell/kanban-challenge/internal/repository"
	"github.com/bananahell/kanban-challenge/internal/service"

	"github.com/gin-gonic/gin"
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
	// Setup GORM
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	log.Println("✅ Connected to database")

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("❌ failed to get DB handle: %w", err)
	}
	if err := database.Migrate(sqlDB, cfg.DBName); err != nil {
		return nil, fmt.Errorf("❌ failed to run migrations: %w", err)
	}
	log.Println("✅ Database migrations applied")

	// Setup Gin
	r := gin.Default()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	memberRepo := repository.NewBoardMemberRepository(db)
	statusListRepo := repository.NewStatusListRepository(db)
	cardRepo := repository.NewCardRepository(db)
	checklistRepo := repository.NewChecklistRepository(db)
	checklistItemRepo := repository.NewChecklistItemRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	tagRepo := repository.NewTagRepository(db)
	attachmentRepo := repository.NewAttachmentRepository(db)
	chainRepo := repository.NewChainRepository(db)

	// Initialize services
	authz := service.NewAuthorizer(boardRepo, memberRepo, chainRepo, commentRepo)
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	boardService := service.NewBoardService(authz, boardRepo, memberRepo, cardRepo, userRepo)
	statusListService := service.NewStatusListService(authz, statusListRepo)
	cardService := service.NewCardService(authz, cardRepo, statusListRepo, userRepo)
	checklistService := service.NewChecklistService(authz, checklistRepo)
	checklistItemService := service.NewChecklistItemService(authz, checklistItemRepo)
	commentService := service.NewCommentService(authz, commentRepo)
	tagService := service.NewTagService(tagRepo)
	attachmentService := service.NewAttachmentService(authz, attachmentRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	boardHandler := handler.NewBoardHandler(boardService)
	statusListHandler := handler.NewStatusListHandler(statusListService)
	cardHandler := handler.NewCardHandler(cardService)
	checklistHandler := handler.NewChecklistHandler(checklistService)
	checklistItemHandler := handler.NewChecklistItemHandler(checklistItemService)
	commentHandler := handler.NewCommentHandler(commentService)
	tagHandler := handler.NewTagHandler(tagService)
	attachmentHandler := handler.NewAttachmentHandler(attachmentService)

	// Public routes
	r.POST("/auth/signUp", authHandler.SignUp)
	r.POST("/auth/signIn", authHandler.SignIn)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes - require authentication
	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	{
		// User routes
		authorized.GET("/users", userHandler.GetAll)
		authorized.GET("/users/me", userHandler.Me)
		authorized.PATCH("/users", userHandler.Update)

		// Board routes
		authorized.GET("/boards", boardHandler.GetAll)
		authorized.GET("/boards/:id", boardHandler.GetByID)
		authorized.POST("/boards", boardHandler.Create)
		authorized.PATCH("/boards/:id", boardHandler.Update)
		authorized.DELETE("/boards/:id", boardHandler.Delete)
		authorized.PATCH("/boards/add-admin", boardHandler.AddAdmin)
		authorized.PATCH("/boards/add-member", boardHandler.AddMember)
		authorized.PATCH("/boards/add-visitor", boardHandler.AddVisitor)
		authorized.PATCH("/boards/remove-user", boardHandler.RemoveUser)
		authorized.PATCH("/boards/pass-owner", boardHandler.PassOwner)

		// Status list routes
		authorized.GET("/status-lists/:id", statusListHandler.GetByID)
		authorized.GET("/status-lists/board/:id", statusListHandler.GetByBoard)
		authorized.POST("/status-lists", statusListHandler.Create)
		authorized.PATCH("/status-lists/:id", statusListHandler.Update)
		authorized.DELETE("/status-lists/:id", statusListHandler.Delete)

		// Card routes
		authorized.GET("/cards", cardHandler.GetByUser)
		authorized.GET("/cards/:id", cardHandler.GetByID)
		authorized.GET("/cards/board/:id", cardHandler.GetByBoard)
		authorized.GET("/cards/statusList/:id", cardHandler.GetByStatusList)
		authorized.POST("/cards", cardHandler.Create)
		authorized.PATCH("/cards/:id", cardHandler.Update)
		authorized.DELETE("/cards/:id", cardHandler.Delete)
		authorized.PATCH("/cards/move/:id", cardHandler.Move)
		authorized.PATCH("/cards/add-user", cardHandler.AddUser)
		authorized.PATCH("/cards/remove-user", cardHandler.RemoveUser)

		// Checklist routes
		authorized.GET("/checklists/:id", checklistHandler.GetByID)
		authorized.GET("/checklists/card/:id", checklistHandler.GetByCard)
		authorized.POST("/checklists", checklistHandler.Create)
		authorized.PATCH("/checklists/:id", checklistHandler.Update)
		authorized.DELETE("/checklists/:id", checklistHandler.Delete)

		// Checklist item routes
		authorized.GET("/checklist-items/:id", checklistItemHandler.GetByID)
		authorized.GET("/checklist-items/checklist/:id", checklistItemHandler.GetByChecklist)
		authorized.POST("/checklist-items", checklistItemHandler.Create)
		authorized.PATCH("/checklist-items/:id", checklistItemHandler.Update)
		authorized.DELETE("/checklist-items/:id", checklistItemHandler.Delete)

		// Comment routes
		authorized.GET("/comments", commentHandler.GetByUser)
		authorized.GET("/comments/:id", commentHandler.GetByID)
		authorized.GET("/comments/card/:id", commentHandler.GetByCard)
		authorized.POST("/comments", commentHandler.Create)
		authorized.PATCH("/comments/:id", commentHandler.Update)
		authorized.DELETE("/comments/:id", commentHandler.Delete)

		// Attachment routes
		authorized.GET("/attachments/:id", attachmentHandler.GetByID)
		authorized.GET("/attachments/card/:id", attachmentHandler.GetByCard)
		authorized.POST("/attachments", attachmentHandler.Create)
		authorized.PATCH("/attachments/:id", attachmentHandler.Update)
		authorized.DELETE("/attachments/:id", attachmentHandler.Delete)

		// Tag routes
		authorized.GET("/tags", tagHandler.GetAll)
		authorized.GET("/tags/:id", tagHandler.GetByID)
		authorized.POST("/tags", tagHandler.Create)
		authorized.PATCH("/tags/:id", tagHandler.Update)
		authorized.DELETE("/tags/:id", tagHandler.Delete)
	}
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
