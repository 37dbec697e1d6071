package handlers

import (
	"net/http"
	"time"

	"courseplatform/pkg/authpb"
	"courseplatform/pkg/logger"
	"courseplatform/services/api-gateway/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth     *AuthHandler
	Course   *CourseHandler
	Progress *ProgressHandler
	Media    *MediaHandler
}

func NewRouter(h Handlers, authClient authpb.AuthServiceClient, limiter *middleware.RateLimiter, origins []string, log *logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))

	config := cors.DefaultConfig()
	config.AllowOrigins = origins
	config.AllowCredentials = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}
	r.Use(cors.New(config))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := middleware.AuthMiddleware(authClient)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", limiter.Limit("register", 10, time.Hour), h.Auth.Register)
			auth.POST("/login", limiter.Limit("login", 5, 1*time.Minute), h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
			auth.POST("/logout", h.Auth.Logout)
		}

		courses := api.Group("/courses")
		{
			courses.GET("", h.Course.List)
			courses.GET("/:id", middleware.OptionalAuth(authClient), h.Course.GetOne)
			courses.POST("/:id/enroll", requireAuth, h.Course.Enroll)
		}

		learn := api.Group("/learn")
		learn.Use(requireAuth)
		{
			learn.POST("/lessons/:lessonId/progress", h.Progress.Update)
			learn.GET("/lessons/:lessonId/progress", h.Progress.Get)
			learn.GET("/courses/:courseId/progress", h.Progress.Course)
			learn.POST("/courses/:courseId/lessons/:lessonId/complete", h.Progress.Complete)
			learn.POST("/courses/:courseId/lessons/:lessonId/video-tick", h.Progress.VideoTick)
		}

		admin := api.Group("/admin")
		admin.Use(requireAuth, middleware.RequireAdmin())
		{
			admin.GET("/courses", h.Course.AdminList)
			admin.POST("/courses", h.Course.Create)
			admin.GET("/courses/:id", h.Course.AdminGet)
			admin.PUT("/courses/:id", h.Course.Update)
			admin.DELETE("/courses/:id", h.Course.Delete)
			admin.GET("/courses/:id/structure", h.Course.GetStructure)
			admin.PUT("/courses/:id/structure", h.Course.SaveStructure)

			admin.GET("/lessons/:lessonId", h.Course.GetLesson)
			admin.PUT("/lessons/:lessonId", h.Course.UpdateLesson)

			admin.POST("/media/upload-url", h.Media.UploadURL)
			admin.DELETE("/media/:key", h.Media.Delete)
		}
	}

	return r
}
