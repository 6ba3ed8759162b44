package dto

import (
	"testing"

	"github.com/Jacopo-Sassi/codylab-talent-be-2025/internal/models"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestToUserDTO_MasksProjectManagers(t *testing.T) {
	user := models.User{
		ID:       1,
		Username: "alice",
		ProjectManagers: []models.User{
			{ID: 2, Username: "boss"},
		},
	}

	view := ToUserDTO(user)

	assert.Empty(t, view.ProjectManagers)
	assert.Equal(t, "alice", view.Username)
}

func TestToUserDTO_CopiesRelations(t *testing.T) {
	taskID := uint64(10)
	user := models.User{
		ID:     1,
		TaskID: &taskID,
		Tasks: []models.Task{
			{ID: 10, Title: "T"},
		},
		Projects: []models.Project{
			{ID: 3, Name: "Apollo"},
		},
		ManagedProjects: []models.Project{
			{ID: 4, Name: "Borealis"},
		},
	}

	view := ToUserDTO(user)

	assert.Equal(t, &taskID, view.TaskID)
	assert.Len(t, view.Tasks, 1)
	assert.Len(t, view.Projects, 1)
	assert.Len(t, view.ManagedProjects, 1)
}

func TestApplyUserInput_MergesPresentFields(t *testing.T) {
	user := &models.User{
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
	}

	ApplyUserInput(UserInput{
		FirstName: strPtr("Alicia"),
		Email:     strPtr("alicia@example.com"),
	}, user)

	assert.Equal(t, "Alicia", user.FirstName)
	assert.Equal(t, "alicia@example.com", user.Email)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "Smith", user.LastName)
}

func TestApplyUserInput_EmptyInputIsNoOp(t *testing.T) {
	user := &models.User{Username: "alice", FirstName: "Alice"}

	ApplyUserInput(UserInput{}, user)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "Alice", user.FirstName)
}

func TestToUserListResponse_ComputesTotalPages(t *testing.T) {
	response := ToUserListResponse([]UserDTO{{ID: 1}}, 1, 10, 25)

	assert.Equal(t, 3, response.TotalPages)
	assert.Equal(t, int64(25), response.TotalCount)
	assert.Len(t, response.Users, 1)
}

func TestToUserListResponse_NonPositivePageSize(t *testing.T) {
	response := ToUserListResponse(nil, 1, 0, 3)

	assert.Equal(t, 1, response.PageSize)
	assert.Equal(t, 3, response.TotalPages)
}
