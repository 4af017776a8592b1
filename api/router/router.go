package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/bson"

	"content-planner/api/handlers"
	"content-planner/db"
	_ "content-planner/docs"
	"content-planner/services"
)

func New(postSvc *services.PostService, ctxSvc *services.ContextService) *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if err := db.Database().RunCommand(context.Background(), bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.POST("/posts/:id/generate", handlers.RequestGenerationHandler(postSvc))
		api.GET("/posts/:id/content", handlers.GetPostContentHandler(postSvc))
		api.DELETE("/posts/:id", handlers.DeletePostHandler(postSvc))
		api.POST("/posts/publish", handlers.PublishPostsHandler(postSvc))
		api.POST("/posts/restore", handlers.RestorePostsHandler(postSvc))
		api.POST("/posts/save", handlers.SavePostsHandler(postSvc))
		api.POST("/posts/approve", handlers.ApprovePostsHandler(postSvc))
		api.POST("/posts/trash", handlers.TrashPostsHandler(postSvc))

		api.GET("/projects/:id/posts", handlers.ListPostsHandler(postSvc))
		api.GET("/projects/:id/context", handlers.GetContextHandler(ctxSvc))
		api.PUT("/projects/:id/context", handlers.SaveContextHandler(ctxSvc))
	}

	return r
}

// corsMiddleware adapts rs/cors to gin.
func corsMiddleware() gin.HandlerFunc {
	crs := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})
	return func(c *gin.Context) {
		crs.HandlerFunc(c.Writer, c.Request)
		if c.Request.Method == http.MethodOptions &&
			c.GetHeader("Access-Control-Request-Method") != "" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
