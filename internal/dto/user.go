package dto

import (
	"time"

	"github.com/Jacopo-Sassi/codylab-talent-be-2025/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID              uint64       `json:"id"`
	Username        string       `json:"username"`
	FirstName       string       `json:"first_name"`
	LastName        string       `json:"last_name"`
	Email           string       `json:"email"`
	TaskID          *uint64      `json:"task_id,omitempty"`
	Tasks           []TaskDTO    `json:"tasks,omitempty"`
	Projects        []ProjectDTO `json:"projects,omitempty"`
	ManagedProjects []ProjectDTO `json:"managed_projects,omitempty"`
	ProjectManagers []UserDTO    `json:"project_managers,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID        uint64  `json:"id"`
	Name      string  `json:"name"`
	Code      string  `json:"code"`
	ManagerID *uint64 `json:"manager_id,omitempty"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID          uint64            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      models.TaskStatus `json:"status"`
	DueDate     *time.Time        `json:"due_date"`
	UserID      *uint64           `json:"user_id"`
	ProjectID   *uint64           `json:"project_id"`
	CreatedAt   time.Time         `json:"created_at"`
}

// UserInput carries the writable user fields of a create or update request.
// Absent fields are nil and are skipped by ApplyUserInput, giving partial
// merge semantics rather than overwrite-with-zero.
type UserInput struct {
	Username  *string `json:"username"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users      []UserDTO `json:"users"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalCount int64     `json:"total_count"`
	TotalPages int       `json:"total_pages"`
}

// Conversion functions

// ToUserDTO converts a User model to UserDTO.
// ProjectManagers is never copied into the view: list and single-get
// responses must not expose manager relationships, whatever the entity holds.
func ToUserDTO(user models.User) UserDTO {
	dto := UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		TaskID:    user.TaskID,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if len(user.Tasks) > 0 {
		dto.Tasks = make([]TaskDTO, len(user.Tasks))
		for i, task := range user.Tasks {
			dto.Tasks[i] = ToTaskDTO(task)
		}
	}

	if len(user.Projects) > 0 {
		dto.Projects = make([]ProjectDTO, len(user.Projects))
		for i, project := range user.Projects {
			dto.Projects[i] = ToProjectDTO(project)
		}
	}

	if len(user.ManagedProjects) > 0 {
		dto.ManagedProjects = make([]ProjectDTO, len(user.ManagedProjects))
		for i, project := range user.ManagedProjects {
			dto.ManagedProjects[i] = ToProjectDTO(project)
		}
	}

	return dto
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:        project.ID,
		Name:      project.Name,
		Code:      project.Code,
		ManagerID: project.ManagerID,
	}
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		DueDate:     task.DueDate,
		UserID:      task.UserID,
		ProjectID:   task.ProjectID,
		CreatedAt:   task.CreatedAt,
	}
}

// ApplyUserInput merges the present fields of input onto user and returns it.
// Nil fields leave the corresponding user field untouched.
func ApplyUserInput(input UserInput, user *models.User) *models.User {
	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	return user
}

// ToUserListResponse converts a page of user views to UserListResponse.
// A non-positive page size is treated as 1 so the page count stays defined.
func ToUserListResponse(users []UserDTO, page, pageSize int, totalCount int64) UserListResponse {
	if pageSize < 1 {
		pageSize = 1
	}

	totalPages := int(totalCount) / pageSize
	if int(totalCount)%pageSize > 0 {
		totalPages++
	}

	return UserListResponse{
		Users:      users,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}
