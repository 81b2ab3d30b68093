package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"daily-planner/internal/models"
	"daily-planner/internal/repositories"
	"daily-planner/internal/services"
)

// RequestIDKey はリクエストIDを保持するコンテキストキーです。
const RequestIDKey = "request_id"

// TaskHandler は /plan 関連のハンドラーを管理します。
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler は新しいTaskHandlerを作成します。
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// GetTasksHandler はすべてのタスクを返します。
// クエリパラメータ date は受け付けますが、サーバー側では使用しません。
func (h *TaskHandler) GetTasksHandler(c *gin.Context) {
	log.Printf("[%s] Received GET request at /plan", requestID(c))
	tasks, err := h.taskService.List(c.Request.Context())
	if err != nil {
		log.Printf("[%s] Failed to fetch tasks: %v", requestID(c), err)
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// CreateTaskHandler は新しいタスクを作成します。成功時はボディなしの201。
func (h *TaskHandler) CreateTaskHandler(c *gin.Context) {
	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	if _, err := h.taskService.Create(c.Request.Context(), &req); err != nil {
		log.Printf("[%s] Failed to create task: %v", requestID(c), err)
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.Status(http.StatusCreated)
}

// DeleteTaskHandler は指定IDのタスクを削除します。
func (h *TaskHandler) DeleteTaskHandler(c *gin.Context) {
	id := c.Param("id")

	err := h.taskService.DeleteByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		log.Printf("[%s] Error deleting task: %v", requestID(c), err)
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateTaskHandler は指定IDのタスクの completed を更新します。
// IDが存在しない場合は 200 で null を返します。
func (h *TaskHandler) UpdateTaskHandler(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateCompletedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	updated, err := h.taskService.SetCompleted(c.Request.Context(), id, *req.Completed)
	if err != nil {
		log.Printf("[%s] Failed to update task: %v", requestID(c), err)
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	// updated が nil の場合は null がそのまま返ります
	c.JSON(http.StatusOK, updated)
}

// HealthHandler はストアへの接続の健全性を確認します。
func (h *TaskHandler) HealthHandler(c *gin.Context) {
	if err := h.taskService.Health(c.Request.Context()); err != nil {
		log.Printf("[%s] Store ping failed: %v", requestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Store connection failed",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func requestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
