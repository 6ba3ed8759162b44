package repository

import (
	"github.com/Jacopo-Sassi/codylab-talent-be-2025/internal/models"
	"github.com/Jacopo-Sassi/codylab-talent-be-2025/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// FindAll retrieves every user with tasks and projects loaded
	FindAll() ([]models.User, error)

	// FindByID finds a user by ID without loading relations
	FindByID(id uint64) (*models.User, error)

	// FindByIDWithRelations finds a user by ID with tasks and projects
	// loaded; managed projects and project managers are never loaded here
	FindByIDWithRelations(id uint64) (*models.User, error)

	// FindByIDWithManagedProjects finds a user by ID with the managed
	// projects relation loaded
	FindByIDWithManagedProjects(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// Create creates a new user
	Create(user *models.User) error

	// Save inserts the user when it has no ID yet, otherwise updates it
	Save(user *models.User) error

	// Delete severs the user's task, managed-project and project
	// relations and removes the user, all in one transaction
	Delete(id uint64) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task; an assigned user without a task
	// reference gets this task as its reference, atomically
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	// List retrieves tasks with filtering and pagination
	List(filter TaskFilter) ([]models.Task, int64, error)
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	UserID    *uint64
	ProjectID *uint64
	Status    *models.TaskStatus
	Page      utils.PaginationParams
}
