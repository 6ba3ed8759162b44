package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Jacopo-Sassi/codylab-talent-be-2025/internal/models"
	"github.com/Jacopo-Sassi/codylab-talent-be-2025/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TaskHandlerTestSuite defines the test suite for TaskHandler
type TaskHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *TaskHandler
}

// SetupTest runs before each test
func (suite *TaskHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Task{},
	)
	suite.Require().NoError(err)

	suite.handler = NewTaskHandler(repository.NewTaskRepository(suite.db))

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *TaskHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TaskHandlerTestSuite) createTestTask(title string, userID *uint64) *models.Task {
	task := &models.Task{
		Title:  title,
		Status: models.TaskStatusTodo,
		UserID: userID,
	}
	suite.db.Create(task)
	return task
}

// TestListTasks_Paginated verifies that task listing pages at the store level
func (suite *TaskHandlerTestSuite) TestListTasks_Paginated() {
	for i := 0; i < 5; i++ {
		suite.createTestTask("Task", nil)
	}

	c, w := suite.newContext("GET", "/api/tasks?page=2&limit=2")

	suite.handler.ListTasks(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)

	tasks := response["tasks"].([]interface{})
	assert.Len(suite.T(), tasks, 2)

	pagination := response["pagination"].(map[string]interface{})
	assert.Equal(suite.T(), float64(5), pagination["total"])
	assert.Equal(suite.T(), float64(2), pagination["page"])
}

// TestListTasks_UserFilter verifies owner filtering
func (suite *TaskHandlerTestSuite) TestListTasks_UserFilter() {
	user := models.User{Username: "alice"}
	suite.Require().NoError(suite.db.Create(&user).Error)
	suite.createTestTask("Mine", &user.ID)
	suite.createTestTask("Unassigned", nil)

	c, w := suite.newContext("GET", "/api/tasks?user_id=1")

	suite.handler.ListTasks(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)

	tasks := response["tasks"].([]interface{})
	suite.Require().Len(tasks, 1)
	assert.Equal(suite.T(), "Mine", tasks[0].(map[string]interface{})["title"])
}

// TestGetTask_NotFound verifies the not-found response
func (suite *TaskHandlerTestSuite) TestGetTask_NotFound() {
	c, w := suite.newContext("GET", "/api/tasks/42")
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	suite.handler.GetTask(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *TaskHandlerTestSuite) newContext(method, url string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, url, nil)
	return c, w
}

// TestTaskHandlerTestSuite runs the test suite
func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
