package routes

import (
	"net/http"
	"strings"
	"time"

	"educonnect/config"
	"educonnect/handlers"
	"educonnect/middleware"
	"educonnect/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(api *handlers.API, cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	limiter := middleware.NewIPRateLimiter(cfg.RateLimit, time.Minute)

	apiGroup := router.Group("/api", middleware.RateLimit(limiter))

	apiGroup.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})

	// Public routes (no auth required)
	apiGroup.POST("/signup", api.Signup)
	apiGroup.POST("/login", api.Login)
	apiGroup.GET("/courses", api.ListCourses)
	apiGroup.GET("/courses/:id", api.GetCourse)
	apiGroup.GET("/achievements", api.ListAchievements)

	// Protected routes group
	protected := apiGroup.Group("", middleware.JWTAuth(cfg.JWTSecret))

	// Profile
	protected.GET("/me", api.Me)
	protected.PUT("/me", api.UpdateMe)

	// Feed
	protected.GET("/feed", api.Feed)
	protected.POST("/posts", api.CreatePost)
	protected.POST("/posts/:id/like", api.LikePost)
	protected.POST("/posts/:id/comments", api.AddComment)

	// Course memberships
	protected.POST("/courses/:id/enroll", api.ToggleEnrollment)
	protected.POST("/courses/:id/wishlist", api.ToggleWishlist)
	protected.GET("/enrollments", api.Enrollments)
	protected.GET("/wishlist", api.WishlistItems)

	// Instructor surface
	instructor := protected.Group("", middleware.RequireRole(models.RoleInstructor))
	instructor.GET("/managed", api.ManagedCourses)
	instructor.POST("/courses/:id/managed", api.ToggleManaged)

	// Achievements and resume
	protected.GET("/achievements/mine", api.MyAchievements)
	protected.GET("/resume", api.GetResume)
	protected.PUT("/resume", api.PutResume)

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Endpoint not found",
				"path":  c.Request.URL.Path,
			})
			return
		}
		c.Next()
	})

	return router
}
