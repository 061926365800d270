package repository

import (
	"fmt"

	"campus/database"
	"campus/dto"

	"gorm.io/gorm"
)

// CreateCourse creates a course
func CreateCourse(db *gorm.DB, course *database.Course) error {
	if err := db.Create(course).Error; err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}

// GetCourseByID gets a live course with its display associations preloaded
func GetCourseByID(db *gorm.DB, id int) (*database.Course, error) {
	var course database.Course
	if err := db.Scopes(database.NotDeleted).
		Preload("Major").
		Preload("Semester.AcademicYear").
		Preload("Lecturer").
		First(&course, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get course %d: %w", id, err)
	}
	return &course, nil
}

// GetCourseWithChapters loads a course plus its live chapters and their
// live contents ordered for display
func GetCourseWithChapters(db *gorm.DB, id int) (*database.Course, error) {
	var course database.Course
	if err := db.Scopes(database.NotDeleted).
		Preload("Major").
		Preload("Semester.AcademicYear").
		Preload("Lecturer").
		Preload("Chapters", func(query *gorm.DB) *gorm.DB {
			return query.Scopes(database.NotDeleted).Order("sort_order, id")
		}).
		Preload("Chapters.Contents", func(query *gorm.DB) *gorm.DB {
			return query.Scopes(database.NotDeleted).Order("sort_order, id")
		}).
		First(&course, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get course %d: %w", id, err)
	}
	return &course, nil
}

// CountCoursesByCode counts live courses with the given code, excluding
// excludeID when positive
func CountCoursesByCode(db *gorm.DB, code string, excludeID int) (int64, error) {
	query := db.Model(&database.Course{}).Scopes(database.NotDeleted).
		Where("code = ?", code)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count courses: %w", err)
	}
	return count, nil
}

// ListCourses returns a filtered page of live courses
func ListCourses(db *gorm.DB, req *dto.ListCourseReq) (int64, []database.Course, error) {
	builder := func(query *gorm.DB) *gorm.DB {
		query = query.Scopes(
			database.NotDeleted,
			database.KeywordSearch(req.SearchTerm, "code", "name"),
		)
		if req.MajorID != nil {
			query = query.Where("major_id = ?", *req.MajorID)
		}
		if req.SemesterID != nil {
			query = query.Where("semester_id = ?", *req.SemesterID)
		}
		if req.LecturerID != nil {
			query = query.Where("lecturer_id = ?", *req.LecturerID)
		}
		if req.AcademicYearID != nil {
			query = query.Where("semester_id IN (?)",
				database.DB.Model(&database.Semester{}).
					Select("id").
					Where("academic_year_id = ?", *req.AcademicYearID))
		}
		if req.IsActive != nil {
			query = query.Where("is_active = ?", *req.IsActive)
		}
		return query
	}

	return genericQueryWithBuilder[database.Course](&genericQueryParams{
		db:       db,
		builder:  builder,
		pageNum:  req.PageNumber,
		pageSize: req.PageSize,
		preloads: []string{"Major", "Semester.AcademicYear", "Lecturer"},
	})
}

// ListCoursesByStudent returns the live courses a student is enrolled in
func ListCoursesByStudent(db *gorm.DB, studentID int, req *dto.PaginationReq) (int64, []database.Course, error) {
	builder := func(query *gorm.DB) *gorm.DB {
		return query.Scopes(
			database.NotDeleted,
			database.KeywordSearch(req.SearchTerm, "code", "name"),
		).Where("id IN (?)",
			database.DB.Model(&database.CourseStudent{}).
				Select("course_id").
				Where("student_id = ?", studentID))
	}

	return genericQueryWithBuilder[database.Course](&genericQueryParams{
		db:       db,
		builder:  builder,
		pageNum:  req.PageNumber,
		pageSize: req.PageSize,
		preloads: []string{"Major", "Semester.AcademicYear", "Lecturer"},
	})
}

// UpdateCourse persists changes to a course row
func UpdateCourse(db *gorm.DB, course *database.Course) error {
	if err := db.Save(course).Error; err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}
	return nil
}

// SoftDeleteCourse marks a course deleted; enrollments stay for history
func SoftDeleteCourse(db *gorm.DB, id int) error {
	result := db.Model(&database.Course{}).
		Scopes(database.NotDeleted).
		Where("id = ?", id).
		Update("is_deleted", true)
	if result.Error != nil {
		return fmt.Errorf("failed to delete course %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete course %d: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// CreateEnrollment enrolls a student in a course. The unique index rejects
// duplicate enrollments.
func CreateEnrollment(db *gorm.DB, enrollment *database.CourseStudent) error {
	if err := db.Create(enrollment).Error; err != nil {
		return fmt.Errorf("failed to enroll student: %w", err)
	}
	return nil
}

// GetEnrollment fetches one enrollment row
func GetEnrollment(db *gorm.DB, courseID, studentID int) (*database.CourseStudent, error) {
	var enrollment database.CourseStudent
	if err := db.Where("course_id = ? AND student_id = ?", courseID, studentID).
		First(&enrollment).Error; err != nil {
		return nil, fmt.Errorf("failed to get enrollment: %w", err)
	}
	return &enrollment, nil
}

// DeleteEnrollment removes a student from a course. Enrollment rows are
// hard-deleted; submission history keeps its own references.
func DeleteEnrollment(db *gorm.DB, courseID, studentID int) error {
	result := db.Where("course_id = ? AND student_id = ?", courseID, studentID).
		Delete(&database.CourseStudent{})
	if result.Error != nil {
		return fmt.Errorf("failed to unenroll student: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to unenroll student: %w", gorm.ErrRecordNotFound)
	}
	return nil
}

// ListEnrollments returns a page of a course's enrollments with students
func ListEnrollments(db *gorm.DB, courseID int, req *dto.PaginationReq) (int64, []database.CourseStudent, error) {
	builder := func(query *gorm.DB) *gorm.DB {
		return query.Where("course_id = ?", courseID)
	}

	return genericQueryWithBuilder[database.CourseStudent](&genericQueryParams{
		db:        db,
		builder:   builder,
		sortField: "enrolled_at DESC, id DESC",
		pageNum:   req.PageNumber,
		pageSize:  req.PageSize,
		preloads:  []string{"Student"},
	})
}

// CountEnrollmentsByCourse counts the students enrolled in a course
func CountEnrollmentsByCourse(db *gorm.DB, courseID int) (int64, error) {
	var count int64
	if err := db.Model(&database.CourseStudent{}).
		Where("course_id = ?", courseID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count enrollments: %w", err)
	}
	return count, nil
}

// CountEnrollmentsByCourses batch-counts enrollments for a course list
func CountEnrollmentsByCourses(db *gorm.DB, courseIDs []int) (map[int]int64, error) {
	counts := make(map[int]int64, len(courseIDs))
	if len(courseIDs) == 0 {
		return counts, nil
	}

	type row struct {
		CourseID int
		Total    int64
	}
	var rows []row
	if err := db.Model(&database.CourseStudent{}).
		Select("course_id, COUNT(*) AS total").
		Where("course_id IN ?", courseIDs).
		Group("course_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count enrollments: %w", err)
	}

	for _, r := range rows {
		counts[r.CourseID] = r.Total
	}
	return counts, nil
}
