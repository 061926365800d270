package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"campus/config"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

func NewDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Host:     config.GetString("database.mysql.host"),
		Port:     config.GetInt("database.mysql.port"),
		User:     config.GetString("database.mysql.user"),
		Password: config.GetString("database.mysql.password"),
		Database: config.GetString("database.mysql.db"),
	}
}

func (d *DatabaseConfig) ToDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User, d.Password, d.Host, d.Port, d.Database)
}

// Global DB object
var DB *gorm.DB

// InitDB connects to MySQL and migrates the schema. TranslateError is on so
// unique-index violations surface as gorm.ErrDuplicatedKey; the store
// constraint, not the application pre-check, is the authoritative uniqueness
// guard.
func InitDB() {
	connectWithRetry(NewDatabaseConfig())

	if err := DB.AutoMigrate(
		// Core entities
		&Role{},
		&User{},
		&Department{},
		&Major{},
		&AcademicYear{},
		&Semester{},
		&Course{},
		&Chapter{},
		&CourseContent{},
		&Lesson{},
		&Quiz{},
		&Assignment{},
		&QuestionTopic{},
		&Question{},
		&Answer{},
		&SystemConfig{},

		// Join and history tables
		&CourseStudent{},
		&QuizQuestion{},
		&LessonProgress{},
		&QuizSubmission{},
		&QuizSubmissionAnswer{},
		&AssignmentSubmission{},
	); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}
}

func connectWithRetry(dbConfig *DatabaseConfig) {
	maxRetries := 3
	retryDelay := 10 * time.Second

	dsn := dbConfig.ToDSN()

	var err error
	for i := 0; i <= maxRetries; i++ {
		DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
			Logger: logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags),
				logger.Config{
					SlowThreshold:             time.Second,
					LogLevel:                  logger.Warn,
					IgnoreRecordNotFoundError: true,
					Colorful:                  true,
				}),
			TranslateError: true,
		})
		if err == nil {
			logrus.Info("Successfully connected to the database")
			return
		}

		logrus.Errorf("Failed to connect to database (attempt %d/%d): %v", i+1, maxRetries+1, err)
		if i < maxRetries {
			logrus.Infof("Retrying in %v...", retryDelay)
			time.Sleep(retryDelay)
		}
	}

	logrus.Fatalf("Failed to connect to database after %d attempts: %v", maxRetries+1, err)
}
