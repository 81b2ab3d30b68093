// Package routesはroutingを行います。
package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"daily-planner/internal/handlers"
	"daily-planner/internal/repositories"
	"daily-planner/internal/services"
)

// SetupRouter はGinルーターをセットアップし、すべてのエンドポイントを登録します。
func SetupRouter(taskRepo repositories.TaskRepository, allowOrigins []string) *gin.Engine {
	r := gin.Default()

	// CORS対策
	config := cors.DefaultConfig()
	if len(allowOrigins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowOrigins
	}
	config.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", RequestIDHeader}
	config.ExposeHeaders = []string{RequestIDHeader}
	r.Use(cors.New(config))
	r.Use(RequestIDMiddleware())

	taskService := services.NewTaskService(taskRepo)
	taskHandler := handlers.NewTaskHandler(taskService)

	r.GET("/health", taskHandler.HealthHandler)

	plan := r.Group("/plan")
	{
		plan.GET("", taskHandler.GetTasksHandler)
		plan.POST("", taskHandler.CreateTaskHandler)
		plan.DELETE("/:id", taskHandler.DeleteTaskHandler)
		plan.PATCH("/:id", taskHandler.UpdateTaskHandler)
	}

	return r
}
