package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"blogapi/config"
	"blogapi/controllers"
	"blogapi/middleware"
	"blogapi/models"
	"blogapi/repository"
	"blogapi/services"
	"blogapi/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *mongo.Database) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	models.RegisterValidators()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.Use(middleware.RateLimitMiddleware())

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)

	userController := controllers.NewUserController(services.NewUserService(userRepo))
	postController := controllers.NewPostController(services.NewPostService(postRepo, userRepo))
	statsController := controllers.NewStatsController(userRepo, postRepo)

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/stats", statsController.GetStats)

	users := r.Group("/users")
	users.POST("", userController.CreateUser)
	users.GET("", userController.GetAllUsers)
	users.GET("/:id", userController.GetUserByID)
	users.PUT("/:id", userController.UpdateUser)
	users.DELETE("/:id", userController.DeleteUser)

	posts := r.Group("/posts")
	posts.POST("", postController.CreatePost)
	posts.GET("", postController.GetPosts)
	posts.GET("/:id", postController.GetPostByID)
	posts.PUT("/:id", postController.UpdatePost)
	posts.DELETE("/:id", postController.DeletePost)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Detail(ctx, http.StatusNotFound, "Not Found")
	})

	return r
}
