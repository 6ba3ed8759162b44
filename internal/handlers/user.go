package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Jacopo-Sassi/codylab-talent-be-2025/internal/dto"
	apierrors "github.com/Jacopo-Sassi/codylab-talent-be-2025/internal/errors"
	"github.com/Jacopo-Sassi/codylab-talent-be-2025/internal/services"
	"github.com/Jacopo-Sassi/codylab-talent-be-2025/internal/utils"
	"github.com/gin-gonic/gin"
)

// UserHandler coordinates user-related HTTP handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers returns a page of users, optionally filtered by an id set
// (`ids`, comma separated) and by an associated task id (`task_id`).
func (h *UserHandler) ListUsers(c *gin.Context) {
	input := services.ListUsersInput{
		Page: utils.GetPageRequest(c),
	}

	if idsParam := c.Query("ids"); idsParam != "" {
		ids, err := parseIDList(idsParam)
		if err != nil {
			apierrors.BadRequest(c, "Invalid ids filter")
			return
		}
		input.IDs = ids
	}

	if taskIDParam := c.Query("task_id"); taskIDParam != "" {
		taskID, err := strconv.ParseUint(taskIDParam, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid task_id filter")
			return
		}
		input.TaskID = &taskID
	}

	users, total, err := h.userService.ListUsers(input)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch users")
		return
	}

	params := utils.GetPaginationParams(c)
	c.JSON(http.StatusOK, dto.ToUserListResponse(users, params.Page, params.Limit, total))
}

// GetUser returns a single user by ID
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(id)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetManagedProjects returns the projects managed by a user
func (h *UserHandler) GetManagedProjects(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserWithManagedProjects(id)
	if err != nil {
		respondUserError(c, err)
		return
	}

	projects := make([]dto.ProjectDTO, len(user.ManagedProjects))
	for i, project := range user.ManagedProjects {
		projects[i] = dto.ToProjectDTO(project)
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// CreateUser creates a new user
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input dto.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if input.Username == nil || strings.TrimSpace(*input.Username) == "" {
		apierrors.BadRequest(c, "Username is required")
		return
	}

	user, err := h.userService.CreateUser(input)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// UpdateUser applies a partial update to an existing user
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	var input dto.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateUser(id, input)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser deletes a user and severs its relations
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(id); err != nil {
		respondUserError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseUserID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user id")
		return 0, false
	}
	return id, true
}

func parseIDList(param string) ([]uint64, error) {
	parts := strings.Split(param, ",")
	ids := make([]uint64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
