package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Jacopo-Sassi/codylab-talent-be-2025/internal/dto"
	apierrors "github.com/Jacopo-Sassi/codylab-talent-be-2025/internal/errors"
	"github.com/Jacopo-Sassi/codylab-talent-be-2025/internal/models"
	"github.com/Jacopo-Sassi/codylab-talent-be-2025/internal/repository"
	"github.com/Jacopo-Sassi/codylab-talent-be-2025/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TaskHandler coordinates task-related HTTP handlers.
type TaskHandler struct {
	taskRepo repository.TaskRepository
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskRepo repository.TaskRepository) *TaskHandler {
	return &TaskHandler{
		taskRepo: taskRepo,
	}
}

// ListTasks returns tasks filtered by owner, project or status. Unlike the
// user listing, paging here happens in the store query.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	filter := repository.TaskFilter{Page: params}

	if userIDParam := c.Query("user_id"); userIDParam != "" {
		userID, err := strconv.ParseUint(userIDParam, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid user_id")
			return
		}
		filter.UserID = &userID
	}

	if projectIDParam := c.Query("project_id"); projectIDParam != "" {
		projectID, err := strconv.ParseUint(projectIDParam, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid project_id")
			return
		}
		filter.ProjectID = &projectID
	}

	if statusParam := c.Query("status"); statusParam != "" {
		status := models.TaskStatus(statusParam)
		if status != models.TaskStatusTodo && status != models.TaskStatusDone {
			apierrors.BadRequest(c, "Invalid status")
			return
		}
		filter.Status = &status
	}

	tasks, total, err := h.taskRepo.List(filter)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	items := make([]dto.TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = dto.ToTaskDTO(task)
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": items,
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetTask returns a single task by ID
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task id")
		return
	}

	task, err := h.taskRepo.FindByID(id, "User", "Project")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch task")
		return
	}

	c.JSON(http.StatusOK, task)
}

// CreateTask creates a new task
func (h *TaskHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		Title       string     `json:"title" binding:"required"`
		Description string     `json:"description"`
		DueDate     *time.Time `json:"due_date"`
		UserID      *uint64    `json:"user_id"`
		ProjectID   *uint64    `json:"project_id"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task := &models.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      models.TaskStatusTodo,
		DueDate:     req.DueDate,
		UserID:      req.UserID,
		ProjectID:   req.ProjectID,
	}

	if err := h.taskRepo.Create(task); err != nil {
		apierrors.InternalError(c, "Failed to create task")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}
