package repository

import (
	"fmt"

	"campus/database"
	"campus/dto"

	"gorm.io/gorm"
)

// CreateUser creates a user
func CreateUser(db *gorm.DB, user *database.User) error {
	if err := db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByID gets a live user by ID with role and department preloaded
func GetUserByID(db *gorm.DB, id int) (*database.User, error) {
	var user database.User
	if err := db.Scopes(database.NotDeleted).
		Preload("Role").Preload("Department").
		First(&user, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return &user, nil
}

// GetUserByUsername gets a live user by username with role preloaded
func GetUserByUsername(db *gorm.DB, username string) (*database.User, error) {
	var user database.User
	if err := db.Scopes(database.NotDeleted).
		Preload("Role").Preload("Department").
		Where("username = ?", username).
		First(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to get user '%s': %w", username, err)
	}
	return &user, nil
}

// CountUsersByUsernameOrEmail counts live accounts matching either value,
// excluding excludeID when positive. Used as an advisory pre-check; the
// unique indexes remain authoritative.
func CountUsersByUsernameOrEmail(db *gorm.DB, username, email string, excludeID int) (int64, error) {
	query := db.Model(&database.User{}).Scopes(database.NotDeleted).
		Where("username = ? OR email = ?", username, email)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// ListUsers returns a filtered page of live users
func ListUsers(db *gorm.DB, req *dto.ListUserReq) (int64, []database.User, error) {
	builder := func(query *gorm.DB) *gorm.DB {
		query = query.Scopes(
			database.NotDeleted,
			database.KeywordSearch(req.SearchTerm, "username", "email", "full_name"),
		)
		if req.RoleID != nil {
			query = query.Where("role_id = ?", *req.RoleID)
		}
		if req.DepartmentID != nil {
			query = query.Where("department_id = ?", *req.DepartmentID)
		}
		if req.IsActive != nil {
			query = query.Where("is_active = ?", *req.IsActive)
		}
		return query
	}

	return genericQueryWithBuilder[database.User](&genericQueryParams{
		db:       db,
		builder:  builder,
		pageNum:  req.PageNumber,
		pageSize: req.PageSize,
		preloads: []string{"Role", "Department"},
	})
}

// UpdateUser persists changes to a user row
func UpdateUser(db *gorm.DB, user *database.User) error {
	if err := db.Save(user).Error; err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// SoftDeleteUser marks a user deleted while keeping the row for history
func SoftDeleteUser(db *gorm.DB, id int) error {
	result := db.Model(&database.User{}).
		Scopes(database.NotDeleted).
		Where("id = ?", id).
		Update("is_deleted", true)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete user %d: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// CountEnrollmentsByStudent counts a student's course enrollments
func CountEnrollmentsByStudent(db *gorm.DB, studentID int) (int64, error) {
	var count int64
	if err := db.Model(&database.CourseStudent{}).
		Where("student_id = ?", studentID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count enrollments: %w", err)
	}
	return count, nil
}

// CountCoursesByLecturer counts live courses assigned to a lecturer
func CountCoursesByLecturer(db *gorm.DB, lecturerID int) (int64, error) {
	var count int64
	if err := db.Model(&database.Course{}).
		Scopes(database.NotDeleted).
		Where("lecturer_id = ?", lecturerID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count lecturer courses: %w", err)
	}
	return count, nil
}

// GetRoleByName resolves a seeded role row
func GetRoleByName(db *gorm.DB, name string) (*database.Role, error) {
	var role database.Role
	if err := db.Where("name = ?", name).First(&role).Error; err != nil {
		return nil, fmt.Errorf("failed to get role '%s': %w", name, err)
	}
	return &role, nil
}

// GetRoleByID resolves a role row by primary key
func GetRoleByID(db *gorm.DB, id int) (*database.Role, error) {
	var role database.Role
	if err := db.First(&role, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get role %d: %w", id, err)
	}
	return &role, nil
}

// ListRoles returns all seeded roles
func ListRoles(db *gorm.DB) ([]database.Role, error) {
	var roles []database.Role
	if err := db.Order("id").Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	return roles, nil
}
