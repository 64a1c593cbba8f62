package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/model"
	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/repository"
)

type TaskHandler struct {
	taskRepo *repository.TaskRepository
	logger   *zap.Logger
}

func NewTaskHandler(taskRepo *repository.TaskRepository, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{taskRepo: taskRepo, logger: logger}
}

type taskRequest struct {
	Title   string `json:"title" binding:"required"`
	Status  string `json:"status"`
	DueDate string `json:"due_date"` // YYYY-MM-DD, optional
	Notes   string `json:"notes"`
}

func (r *taskRequest) toModel(weddingID int) (*model.Task, string) {
	if r.Status == "" {
		r.Status = model.TaskPending
	}
	if !model.ValidTaskStatus(r.Status) {
		return nil, "invalid status"
	}

	t := &model.Task{
		WeddingID: weddingID,
		Title:     r.Title,
		Status:    r.Status,
		Notes:     r.Notes,
	}

	if r.DueDate != "" {
		due, err := time.Parse("2006-01-02", r.DueDate)
		if err != nil {
			return nil, "invalid due_date, expected YYYY-MM-DD"
		}
		t.DueDate = &due
	}

	return t, ""
}

func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.taskRepo.ListByWedding(c.Request.Context(), weddingID(c))
	if err != nil {
		h.logger.Error("Failed to list tasks", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tasks"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, msg := req.toModel(weddingID(c))
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if err := h.taskRepo.Insert(c.Request.Context(), t); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create task"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"task": t})
}

func (h *TaskHandler) Update(c *gin.Context) {
	taskID, err := strconv.Atoi(c.Param("taskID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}

	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, msg := req.toModel(weddingID(c))
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	t.ID = taskID

	if err := h.taskRepo.Update(c.Request.Context(), t); err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update task"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": t})
}

func (h *TaskHandler) Delete(c *gin.Context) {
	taskID, err := strconv.Atoi(c.Param("taskID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}

	if err := h.taskRepo.Delete(c.Request.Context(), weddingID(c), taskID); err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete task"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
