package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "bizdesk/internal/docs" // Import swagger docs
	"bizdesk/internal/middleware"
	"bizdesk/internal/models"
	"bizdesk/internal/services"
	"bizdesk/internal/validator"
)

// NewRouter wires services over db into the collaborator's gin engine.
func NewRouter(db *gorm.DB, tokens *middleware.TokenIssuer) *gin.Engine {
	validator.Register()

	authHandler := NewAuthHandler(services.NewAccountService(db), tokens)
	userHandler := NewUserHandler(services.NewUserService(db))
	expenseHandler := NewExpenseHandler(services.NewExpenseService(db))
	categoryHandler := NewCategoryHandler(services.NewCategoryService(db))

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(tokens))

	protected.GET("/auth/me", authHandler.Me)

	users := protected.Group("/users")
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), userHandler.Delete)

	expenses := protected.Group("/expenses")
	expenses.GET("", expenseHandler.List)
	expenses.GET("/:id", expenseHandler.Get)
	expenses.POST("", expenseHandler.Create)
	expenses.PUT("/:id", expenseHandler.Update)
	expenses.DELETE("/:id", expenseHandler.Delete)

	categories := protected.Group("/expense-categories")
	categories.GET("", categoryHandler.List)
	categories.GET("/:id", categoryHandler.Get)

	return router
}
