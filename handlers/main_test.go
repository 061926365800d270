package handlers

import (
	"os"
	"testing"

	"campus/database"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB() error {
	// Use in-memory SQLite database for testing
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return err
	}

	database.DB = db

	return db.AutoMigrate(
		&database.Role{},
		&database.User{},
		&database.Department{},
		&database.Major{},
		&database.AcademicYear{},
		&database.Semester{},
		&database.Course{},
		&database.Chapter{},
		&database.CourseContent{},
		&database.Lesson{},
		&database.Quiz{},
		&database.Assignment{},
		&database.QuestionTopic{},
		&database.Question{},
		&database.Answer{},
		&database.SystemConfig{},
		&database.CourseStudent{},
		&database.QuizQuestion{},
		&database.LessonProgress{},
		&database.QuizSubmission{},
		&database.QuizSubmissionAnswer{},
		&database.AssignmentSubmission{},
	)
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	viper.Set("jwt.secret", "test-secret-test-secret-test-secret!")

	// In-process Redis so handlers that reach the config cache work
	redisServer, err := miniredis.Run()
	if err != nil {
		panic("Failed to start test redis: " + err.Error())
	}
	viper.Set("redis.host", redisServer.Host())
	viper.Set("redis.port", redisServer.Port())

	if err := setupTestDB(); err != nil {
		panic("Failed to setup test database: " + err.Error())
	}

	code := m.Run()
	redisServer.Close()
	os.Exit(code)
}
