package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint64 `gorm:"primarykey" json:"id"`
	Username     string `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"type:varchar(255)" json:"-"`
	FirstName    string `gorm:"type:varchar(100)" json:"first_name"`
	LastName     string `gorm:"type:varchar(100)" json:"last_name"`
	Email        string `gorm:"type:varchar(255)" json:"email"`

	// TaskID references the user's associated task. It is maintained through
	// task assignment and is not writable through user updates.
	TaskID *uint64 `gorm:"index" json:"task_id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Tasks           []Task    `gorm:"foreignKey:UserID" json:"tasks,omitempty"`
	Projects        []Project `gorm:"many2many:project_users" json:"projects,omitempty"`
	ManagedProjects []Project `gorm:"foreignKey:ManagerID" json:"managed_projects,omitempty"`
	ProjectManagers []User    `gorm:"many2many:project_managers;joinForeignKey:UserID;joinReferences:ManagerID" json:"project_managers,omitempty"`
}
