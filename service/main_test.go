package service

import (
	"fmt"
	"os"
	"testing"

	"campus/consts"
	"campus/database"
	"campus/repository"
	"campus/utils"

	"github.com/alicebob/miniredis/v2"
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

	err = db.AutoMigrate(
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
	if err != nil {
		return err
	}

	return seedRoleRows()
}

func TestMain(m *testing.M) {
	viper.Set("jwt.secret", "test-secret-test-secret-test-secret!")

	// In-process Redis so the token blacklist and config cache work
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

var fixtureSeq int

// nextFixtureTag returns a short unique suffix so fixtures created by
// different tests never collide on unique columns.
func nextFixtureTag() string {
	fixtureSeq++
	return fmt.Sprintf("t%03d", fixtureSeq)
}

func mustCreateUser(t *testing.T, role consts.RoleName) *database.User {
	t.Helper()

	roleRow, err := repository.GetRoleByName(database.DB, role.String())
	if err != nil {
		t.Fatalf("role %s not seeded: %v", role, err)
	}

	hashed, err := utils.HashPassword("testpass123")
	if err != nil {
		t.Fatalf("failed to hash fixture password: %v", err)
	}

	tag := nextFixtureTag()
	user := &database.User{
		Username: string(role) + "_" + tag,
		Email:    string(role) + "_" + tag + "@campus.local",
		Password: hashed,
		FullName: "Fixture " + tag,
		RoleID:   roleRow.ID,
		IsActive: true,
		Role:     roleRow,
	}
	if err := database.DB.Create(user).Error; err != nil {
		t.Fatalf("failed to create fixture user: %v", err)
	}
	return user
}
