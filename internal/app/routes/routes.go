package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rakha/simaset/internal/app/controllers"
	"github.com/rakha/simaset/internal/app/models"
	"github.com/rakha/simaset/internal/app/models/dto"
	"github.com/rakha/simaset/internal/middleware"
)

// facultyParam pins the :faculty route parameter for the legacy route group,
// which addresses the ekonomi dataset without a slug in the path.
func facultyParam(slug string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Params = append(c.Params, gin.Param{Key: "faculty", Value: slug})
		c.Next()
	}
}

// SetupRouter configures all application routes. Reads require an
// authenticated caller; writes additionally require the admin role. The same
// policy applies to the legacy /fk_ekonomi aliases.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	assetController *controllers.AssetController,
	userController *controllers.UserController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.POST("/auth/login", authController.Login)

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	adminOnly := authMiddleware.RoleRequired(models.RoleAdmin)

	// Faculty inventory routes, one set for every dataset in the registry
	fakultas := authenticated.Group("/fakultas")
	{
		fakultas.GET("/search", assetController.Search)

		fakultas.GET("/:faculty", assetController.List)
		fakultas.GET("/:faculty/:id", assetController.GetByID)
		fakultas.GET("/:faculty/no/:no", assetController.GetByNo)

		fakultasAdmin := fakultas.Group("")
		fakultasAdmin.Use(adminOnly)
		{
			fakultasAdmin.POST("/:faculty", assetController.Create)
			fakultasAdmin.PUT("/:faculty/:id", assetController.Update)
			fakultasAdmin.DELETE("/:faculty/:id", assetController.Delete)
		}
	}

	// Legacy aliases for the ekonomi dataset
	ekonomi := authenticated.Group("/fk_ekonomi")
	ekonomi.Use(facultyParam("ekonomi"))
	{
		ekonomi.GET("", assetController.List)
		ekonomi.GET("/:id", assetController.GetByID)
		ekonomi.GET("/no/:no", assetController.GetByNo)

		ekonomiAdmin := ekonomi.Group("")
		ekonomiAdmin.Use(adminOnly)
		{
			ekonomiAdmin.POST("", assetController.Create)
			ekonomiAdmin.PUT("/:id", assetController.Update)
			ekonomiAdmin.DELETE("/:id", assetController.Delete)
		}
	}

	// User management routes
	users := authenticated.Group("/users")
	{
		users.GET("", userController.List)
		users.GET("/:id", userController.GetByID)

		usersAdmin := users.Group("")
		usersAdmin.Use(adminOnly)
		{
			usersAdmin.POST("", userController.Create)
			usersAdmin.PUT("/:id", userController.Update)
			usersAdmin.DELETE("/:id", userController.Delete)
		}
	}
}
