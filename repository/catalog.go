package repository

import (
	"fmt"

	"campus/database"
	"campus/dto"

	"gorm.io/gorm"
)

// CreateDepartment creates a department
func CreateDepartment(db *gorm.DB, department *database.Department) error {
	if err := db.Create(department).Error; err != nil {
		return fmt.Errorf("failed to create department: %w", err)
	}
	return nil
}

// GetDepartmentByID gets a live department
func GetDepartmentByID(db *gorm.DB, id int) (*database.Department, error) {
	var department database.Department
	if err := db.Scopes(database.NotDeleted).
		First(&department, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get department %d: %w", id, err)
	}
	return &department, nil
}

// ListDepartments returns a page of live departments name-ascending
func ListDepartments(db *gorm.DB, req *dto.PaginationReq) (int64, []database.Department, error) {
	builder := func(query *gorm.DB) *gorm.DB {
		return query.Scopes(
			database.NotDeleted,
			database.KeywordSearch(req.SearchTerm, "code", "name"),
		)
	}

	return genericQueryWithBuilder[database.Department](&genericQueryParams{
		db:        db,
		builder:   builder,
		sortField: "name, id",
		pageNum:   req.PageNumber,
		pageSize:  req.PageSize,
	})
}

// UpdateDepartment persists changes to a department row
func UpdateDepartment(db *gorm.DB, department *database.Department) error {
	if err := db.Save(department).Error; err != nil {
		return fmt.Errorf("failed to update department: %w", err)
	}
	return nil
}

// SoftDeleteDepartment marks a department deleted
func SoftDeleteDepartment(db *gorm.DB, id int) error {
	result := db.Model(&database.Department{}).
		Scopes(database.NotDeleted).
		Where("id = ?", id).
		Update("is_deleted", true)
	if result.Error != nil {
		return fmt.Errorf("failed to delete department %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete department %d: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// CountMajorsByDepartment counts live majors under a department
func CountMajorsByDepartment(db *gorm.DB, departmentID int) (int64, error) {
	var count int64
	if err := db.Model(&database.Major{}).
		Scopes(database.NotDeleted).
		Where("department_id = ?", departmentID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count majors: %w", err)
	}
	return count, nil
}

// CreateMajor creates a major
func CreateMajor(db *gorm.DB, major *database.Major) error {
	if err := db.Create(major).Error; err != nil {
		return fmt.Errorf("failed to create major: %w", err)
	}
	return nil
}

// GetMajorByID gets a live major with its department preloaded
func GetMajorByID(db *gorm.DB, id int) (*database.Major, error) {
	var major database.Major
	if err := db.Scopes(database.NotDeleted).
		Preload("Department").
		First(&major, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get major %d: %w", id, err)
	}
	return &major, nil
}

// ListMajors returns a filtered page of live majors name-ascending
func ListMajors(db *gorm.DB, req *dto.ListMajorReq) (int64, []database.Major, error) {
	builder := func(query *gorm.DB) *gorm.DB {
		query = query.Scopes(
			database.NotDeleted,
			database.KeywordSearch(req.SearchTerm, "code", "name"),
		)
		if req.DepartmentID != nil {
			query = query.Where("department_id = ?", *req.DepartmentID)
		}
		return query
	}

	return genericQueryWithBuilder[database.Major](&genericQueryParams{
		db:        db,
		builder:   builder,
		sortField: "name, id",
		pageNum:   req.PageNumber,
		pageSize:  req.PageSize,
		preloads:  []string{"Department"},
	})
}

// UpdateMajor persists changes to a major row
func UpdateMajor(db *gorm.DB, major *database.Major) error {
	if err := db.Save(major).Error; err != nil {
		return fmt.Errorf("failed to update major: %w", err)
	}
	return nil
}

// SoftDeleteMajor marks a major deleted
func SoftDeleteMajor(db *gorm.DB, id int) error {
	result := db.Model(&database.Major{}).
		Scopes(database.NotDeleted).
		Where("id = ?", id).
		Update("is_deleted", true)
	if result.Error != nil {
		return fmt.Errorf("failed to delete major %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete major %d: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// CreateAcademicYear creates an academic year
func CreateAcademicYear(db *gorm.DB, year *database.AcademicYear) error {
	if err := db.Create(year).Error; err != nil {
		return fmt.Errorf("failed to create academic year: %w", err)
	}
	return nil
}

// GetAcademicYearByID gets a live academic year
func GetAcademicYearByID(db *gorm.DB, id int) (*database.AcademicYear, error) {
	var year database.AcademicYear
	if err := db.Scopes(database.NotDeleted).
		First(&year, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get academic year %d: %w", id, err)
	}
	return &year, nil
}

// ListAcademicYears returns a page of live academic years newest-first
func ListAcademicYears(db *gorm.DB, req *dto.PaginationReq) (int64, []database.AcademicYear, error) {
	builder := func(query *gorm.DB) *gorm.DB {
		return query.Scopes(
			database.NotDeleted,
			database.KeywordSearch(req.SearchTerm, "code"),
		)
	}

	return genericQueryWithBuilder[database.AcademicYear](&genericQueryParams{
		db:        db,
		builder:   builder,
		sortField: "start_date DESC, id DESC",
		pageNum:   req.PageNumber,
		pageSize:  req.PageSize,
	})
}

// UpdateAcademicYear persists changes to an academic year row
func UpdateAcademicYear(db *gorm.DB, year *database.AcademicYear) error {
	if err := db.Save(year).Error; err != nil {
		return fmt.Errorf("failed to update academic year: %w", err)
	}
	return nil
}

// SoftDeleteAcademicYear marks an academic year deleted
func SoftDeleteAcademicYear(db *gorm.DB, id int) error {
	result := db.Model(&database.AcademicYear{}).
		Scopes(database.NotDeleted).
		Where("id = ?", id).
		Update("is_deleted", true)
	if result.Error != nil {
		return fmt.Errorf("failed to delete academic year %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete academic year %d: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// CountSemestersByAcademicYear counts live semesters inside a year
func CountSemestersByAcademicYear(db *gorm.DB, yearID int) (int64, error) {
	var count int64
	if err := db.Model(&database.Semester{}).
		Scopes(database.NotDeleted).
		Where("academic_year_id = ?", yearID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count semesters: %w", err)
	}
	return count, nil
}

// CreateSemester creates a semester. The composite unique index rejects a
// duplicate year/term pair.
func CreateSemester(db *gorm.DB, semester *database.Semester) error {
	if err := db.Create(semester).Error; err != nil {
		return fmt.Errorf("failed to create semester: %w", err)
	}
	return nil
}

// GetSemesterByID gets a live semester with its year preloaded
func GetSemesterByID(db *gorm.DB, id int) (*database.Semester, error) {
	var semester database.Semester
	if err := db.Scopes(database.NotDeleted).
		Preload("AcademicYear").
		First(&semester, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get semester %d: %w", id, err)
	}
	return &semester, nil
}

// UpdateSemester persists changes to a semester row
func UpdateSemester(db *gorm.DB, semester *database.Semester) error {
	if err := db.Save(semester).Error; err != nil {
		return fmt.Errorf("failed to update semester: %w", err)
	}
	return nil
}

// SoftDeleteSemester marks a semester deleted
func SoftDeleteSemester(db *gorm.DB, id int) error {
	result := db.Model(&database.Semester{}).
		Scopes(database.NotDeleted).
		Where("id = ?", id).
		Update("is_deleted", true)
	if result.Error != nil {
		return fmt.Errorf("failed to delete semester %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete semester %d: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// CountCoursesBySemester counts live courses scheduled in a semester
func CountCoursesBySemester(db *gorm.DB, semesterID int) (int64, error) {
	var count int64
	if err := db.Model(&database.Course{}).
		Scopes(database.NotDeleted).
		Where("semester_id = ?", semesterID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count courses: %w", err)
	}
	return count, nil
}

// ListSemesters returns a filtered page of live semesters newest-first
func ListSemesters(db *gorm.DB, req *dto.ListSemesterReq) (int64, []database.Semester, error) {
	builder := func(query *gorm.DB) *gorm.DB {
		query = query.Scopes(database.NotDeleted)
		if req.AcademicYearID != nil {
			query = query.Where("academic_year_id = ?", *req.AcademicYearID)
		}
		return query
	}

	return genericQueryWithBuilder[database.Semester](&genericQueryParams{
		db:        db,
		builder:   builder,
		sortField: "start_date DESC, id DESC",
		pageNum:   req.PageNumber,
		pageSize:  req.PageSize,
		preloads:  []string{"AcademicYear"},
	})
}
