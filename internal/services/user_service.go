package services

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Jacopo-Sassi/codylab-talent-be-2025/internal/dto"
	"github.com/Jacopo-Sassi/codylab-talent-be-2025/internal/models"
	"github.com/Jacopo-Sassi/codylab-talent-be-2025/internal/repository"
	"github.com/Jacopo-Sassi/codylab-talent-be-2025/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

// UserService handles user query and lifecycle business logic
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// ListUsersInput represents filters and paging for listing users
type ListUsersInput struct {
	// IDs restricts the result to users whose id is in the set; empty means no filter
	IDs []uint64
	// TaskID restricts the result to users whose derived task id equals it
	TaskID *uint64
	Page   utils.PageRequest
}

// ListUsers returns one page of user views plus the total number of users
// matching the filters. The whole collection is materialized and filtered,
// sorted and sliced in memory; an offset past the end yields an empty page,
// never an error.
func (s *UserService) ListUsers(input ListUsersInput) ([]dto.UserDTO, int64, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	if len(input.IDs) > 0 {
		wanted := make(map[uint64]struct{}, len(input.IDs))
		for _, id := range input.IDs {
			wanted[id] = struct{}{}
		}

		retained := make([]models.User, 0, len(users))
		for _, user := range users {
			if _, ok := wanted[user.ID]; ok {
				retained = append(retained, user)
			}
		}
		users = retained
	}

	if input.TaskID != nil {
		retained := make([]models.User, 0, len(users))
		for _, user := range users {
			if user.TaskID != nil && *user.TaskID == *input.TaskID {
				retained = append(retained, user)
			}
		}
		users = retained
	}

	sortUsers(users, input.Page.SortKey)

	views := make([]dto.UserDTO, len(users))
	for i, user := range users {
		views[i] = dto.ToUserDTO(user)
	}

	total := int64(len(views))

	start := input.Page.Offset
	if start < 0 {
		start = 0
	}
	end := start + input.Page.Size
	if end > len(views) {
		end = len(views)
	}
	if start > end {
		return []dto.UserDTO{}, total, nil
	}

	return views[start:end], total, nil
}

// ListAllUsers lists users with no filters and the default page
func (s *UserService) ListAllUsers() ([]dto.UserDTO, int64, error) {
	return s.ListUsers(ListUsersInput{Page: utils.DefaultPageRequest()})
}

// GetUser returns a single user view with tasks and projects loaded.
// Managed projects and project managers are never exposed on this path.
func (s *UserService) GetUser(id uint64) (dto.UserDTO, error) {
	user, err := s.userRepo.FindByIDWithRelations(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserDTO{}, ErrUserNotFound
		}
		return dto.UserDTO{}, fmt.Errorf("failed to find user: %w", err)
	}

	return dto.ToUserDTO(*user), nil
}

// GetUserWithManagedProjects returns the raw user entity with the managed
// projects relation loaded, for collaborators that need manager data.
func (s *UserService) GetUserWithManagedProjects(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByIDWithManagedProjects(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// CreateUser creates a new user from the given fields. The store assigns the
// identifier; the relation collections always start empty.
func (s *UserService) CreateUser(input dto.UserInput) (dto.UserDTO, error) {
	user := &models.User{}
	dto.ApplyUserInput(input, user)

	// A freshly created user must start with no relations, whatever the
	// merge step may have set.
	user.Tasks = []models.Task{}
	user.Projects = []models.Project{}
	user.ManagedProjects = []models.Project{}

	if err := s.userRepo.Save(user); err != nil {
		return dto.UserDTO{}, fmt.Errorf("failed to create user: %w", err)
	}

	return dto.ToUserDTO(*user), nil
}

// UpdateUser merges the present input fields onto the stored user. Fields
// absent from the input keep their persisted values, and the relation
// collections are left untouched.
func (s *UserService) UpdateUser(id uint64, input dto.UserInput) (dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserDTO{}, ErrUserNotFound
		}
		return dto.UserDTO{}, fmt.Errorf("failed to find user: %w", err)
	}

	dto.ApplyUserInput(input, user)

	if err := s.userRepo.Save(user); err != nil {
		return dto.UserDTO{}, fmt.Errorf("failed to update user: %w", err)
	}

	return dto.ToUserDTO(*user), nil
}

// DeleteUser removes a user after severing its task, managed-project and
// project relations. Deleting an absent user fails with ErrUserNotFound.
func (s *UserService) DeleteUser(id uint64) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.userRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

// sortUsers orders the filtered collection before slicing. Unknown sort keys
// fall back to the identifier.
func sortUsers(users []models.User, sortKey string) {
	switch sortKey {
	case "username":
		sort.SliceStable(users, func(i, j int) bool {
			return users[i].Username < users[j].Username
		})
	default:
		sort.SliceStable(users, func(i, j int) bool {
			return users[i].ID < users[j].ID
		})
	}
}
