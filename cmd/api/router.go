package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"craftmarket-backend/internal/domains/user/model"
	"craftmarket-backend/internal/shared/middleware"
	"craftmarket-backend/internal/shared/response"
	"craftmarket-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupAdminRoutes(v1, c)
		setupSellerRoutes(v1, c)
		setupProductRoutes(v1, c)
		setupReviewRoutes(v1, c)
	}

	return router
}

// =====================================================
// AUTH ROUTES
// =====================================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.RefreshToken)
	}
}

// =====================================================
// USER ROUTES
// =====================================================
func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	users.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		users.GET("/me", c.UserHandler.GetProfile)
		users.PUT("/me", c.UserHandler.UpdateProfile)
	}
}

// =====================================================
// ADMIN ROUTES
// =====================================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(c.JWTManager), middleware.RequireRole(model.RoleAdmin))
	{
		admin.PUT("/users/:id/role", c.UserHandler.UpdateUserRole)
	}
}

// =====================================================
// SELLER ROUTES
// =====================================================
func setupSellerRoutes(v1 *gin.RouterGroup, c *container.Container) {
	sellers := v1.Group("/sellers")
	{
		// Protected routes first so "me" does not collide with ":id"
		authed := sellers.Group("")
		authed.Use(middleware.AuthMiddleware(c.JWTManager))
		{
			authed.POST("", c.SellerHandler.CreateProfile)
			authed.GET("/me", c.SellerHandler.GetMyProfile)
			authed.PUT("/me", c.SellerHandler.UpdateProfile)
			authed.GET("/me/stats", c.SellerHandler.GetStats)
		}

		sellers.GET("/:id", c.SellerHandler.GetProfile)
	}
}

// =====================================================
// PRODUCT ROUTES
// =====================================================
func setupProductRoutes(v1 *gin.RouterGroup, c *container.Container) {
	products := v1.Group("/products")
	{
		// Public browsing
		products.GET("", c.ProductHandler.ListProducts)
		products.GET("/categories", c.ProductHandler.ListCategories)
		products.GET("/:id", c.ProductHandler.GetProduct)

		// Listing management requires a seller or admin account
		authed := products.Group("")
		authed.Use(
			middleware.AuthMiddleware(c.JWTManager),
			middleware.RequireRole(model.RoleSeller, model.RoleAdmin),
		)
		{
			authed.POST("", c.ProductHandler.CreateProduct)
			authed.PUT("/:id", c.ProductHandler.UpdateProduct)
			authed.DELETE("/:id", c.ProductHandler.DeleteProduct)
		}
	}
}

// =====================================================
// REVIEW ROUTES
// =====================================================
func setupReviewRoutes(v1 *gin.RouterGroup, c *container.Container) {
	// Reviews are nested under the product they belong to
	productReviews := v1.Group("/products/:id/reviews")
	{
		productReviews.GET("", c.ReviewHandler.ListReviews)
		productReviews.GET("/:reviewId", c.ReviewHandler.GetReview)

		authed := productReviews.Group("")
		authed.Use(middleware.AuthMiddleware(c.JWTManager))
		{
			authed.POST("", c.ReviewHandler.CreateReview)
			authed.PUT("/:reviewId", c.ReviewHandler.UpdateReview)
			authed.DELETE("/:reviewId", c.ReviewHandler.DeleteReview)
		}
	}

	// Helpful votes address a review directly
	reviews := v1.Group("/reviews")
	reviews.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		reviews.POST("/:reviewId/helpful", c.ReviewHandler.MarkHelpful)
	}
}

// =====================================================
// HEALTH CHECK
// =====================================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := gin.H{
			"status":  "ok",
			"version": c.Config.App.Version,
		}

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status["status"] = "degraded"
			status["database"] = err.Error()
		} else {
			status["database"] = "ok"
		}

		if err := c.Redis.HealthCheck(ctx.Request.Context()); err != nil {
			status["redis"] = err.Error()
		} else {
			status["redis"] = "ok"
		}

		code := http.StatusOK
		if status["status"] != "ok" {
			code = http.StatusServiceUnavailable
		}

		response.Success(ctx, code, status)
	}
}
