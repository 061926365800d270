package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"campus/config"
	"campus/consts"
	"campus/database"
	"campus/repository"
	"campus/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var seedRoles = []database.Role{
	{Name: consts.RoleAdmin, DisplayName: "Administrator", Description: "Full system access"},
	{Name: consts.RoleLecturer, DisplayName: "Lecturer", Description: "Manages courses, content and grading"},
	{Name: consts.RoleStudent, DisplayName: "Student", Description: "Enrolls in courses and submits work"},
}

// InitializeSystemData seeds the closed role set and makes sure a default
// administrator account exists. Safe to run on every startup.
func InitializeSystemData() error {
	if err := seedRoleRows(); err != nil {
		return fmt.Errorf("failed to seed roles: %v", err)
	}

	if err := seedDefaultAdmin(); err != nil {
		return fmt.Errorf("failed to seed default admin: %v", err)
	}

	logrus.Info("System data initialization complete")
	return nil
}

func seedRoleRows() error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		for _, role := range seedRoles {
			var existing database.Role
			err := tx.Where("name = ?", role.Name).First(&existing).Error
			switch {
			case err == nil:
				continue
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := tx.Create(&role).Error; err != nil {
					return err
				}
				logrus.Infof("Seeded role %s", role.Name)
			default:
				return err
			}
		}
		return nil
	})
}

func seedDefaultAdmin() error {
	username := config.GetString("admin.username")
	if username == "" {
		username = "admin"
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		count, err := repository.CountUsersByUsernameOrEmail(tx, username, "", 0)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		password := config.GetString("admin.password")
		if password == "" {
			var err error
			if password, err = randomAdminPassword(); err != nil {
				return err
			}
			logrus.Warnf("Generated initial admin password: %s (change it immediately)", password)
		}

		hashed, err := utils.HashPassword(password)
		if err != nil {
			return err
		}

		role, err := repository.GetRoleByName(tx, consts.RoleAdmin.String())
		if err != nil {
			return err
		}

		admin := &database.User{
			Username: username,
			Email:    config.GetString("admin.email"),
			Password: hashed,
			FullName: "System Administrator",
			RoleID:   role.ID,
			IsActive: true,
		}
		if admin.Email == "" {
			admin.Email = "admin@campus.local"
		}

		if err := repository.CreateUser(tx, admin); err != nil {
			return err
		}
		logrus.Infof("Seeded default admin account '%s'", username)
		return nil
	})
}

// randomAdminPassword returns a throwaway credential that satisfies the
// password policy.
func randomAdminPassword() (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate password: %v", err)
	}
	return "A1-" + hex.EncodeToString(buf), nil
}
