package repository

import (
	"github.com/Jacopo-Sassi/codylab-talent-be-2025/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// orderedTasks keeps preloaded task collections in id order so that list
// and detail responses are deterministic.
func orderedTasks(db *gorm.DB) *gorm.DB {
	return db.Order("tasks.id")
}

// FindAll retrieves every user with tasks and projects loaded
func (r *GormUserRepository) FindAll() ([]models.User, error) {
	var users []models.User
	err := r.db.
		Preload("Tasks", orderedTasks).
		Preload("Projects").
		Order("users.id").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIDWithRelations finds a user by ID with tasks and projects loaded
func (r *GormUserRepository) FindByIDWithRelations(id uint64) (*models.User, error) {
	var user models.User
	err := r.db.
		Preload("Tasks", orderedTasks).
		Preload("Projects").
		First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIDWithManagedProjects finds a user by ID with managed projects loaded
func (r *GormUserRepository) FindByIDWithManagedProjects(id uint64) (*models.User, error) {
	var user models.User
	err := r.db.
		Preload("ManagedProjects").
		First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername finds a user by username
func (r *GormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// Save inserts the user when it has no ID yet, otherwise updates it
func (r *GormUserRepository) Save(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete clears the user's owned relations and removes the user row.
// The three clears and the delete run inside a single transaction so a
// concurrent reader never observes a partially severed user.
func (r *GormUserRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		user := models.User{ID: id}

		if err := tx.Model(&user).Association("Tasks").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&user).Association("ManagedProjects").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&user).Association("Projects").Clear(); err != nil {
			return err
		}

		return tx.Delete(&models.User{}, id).Error
	})
}
