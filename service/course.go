package service

import (
	"errors"
	"fmt"

	"campus/consts"
	"campus/database"
	"campus/dto"
	"campus/repository"

	"gorm.io/gorm"
)

// CreateCourse creates a course after resolving its catalog references
func CreateCourse(req *dto.CreateCourseReq) (*dto.CourseResp, error) {
	var course *database.Course
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		count, err := repository.CountCoursesByCode(tx, req.Code, 0)
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: course code '%s' already in use", consts.ErrConflict, req.Code)
		}

		major, err := repository.GetMajorByID(tx, req.MajorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: major not found", consts.ErrValidation)
			}
			return err
		}

		semester, err := repository.GetSemesterByID(tx, req.SemesterID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: semester not found", consts.ErrValidation)
			}
			return err
		}

		course = &database.Course{
			Code:        req.Code,
			Name:        req.Name,
			Description: req.Description,
			Credits:     req.Credits,
			MajorID:     major.ID,
			SemesterID:  semester.ID,
			IsActive:    true,
			Major:       major,
			Semester:    semester,
		}

		if req.LecturerID != nil {
			lecturer, err := requireRole(tx, *req.LecturerID, consts.RoleLecturer)
			if err != nil {
				return err
			}
			course.LecturerID = &lecturer.ID
			course.Lecturer = lecturer
		}

		if err := repository.CreateCourse(tx, course); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: course code '%s' already in use", consts.ErrConflict, req.Code)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return dto.NewCourseResp(course), nil
}

// GetCourse returns a course with its chapter tree and roster size
func GetCourse(id int) (*dto.CourseDetailResp, error) {
	course, err := repository.GetCourseWithChapters(database.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: course not found", consts.ErrNotFound)
		}
		return nil, err
	}

	resp := dto.NewCourseDetailResp(course)
	if resp.EnrolledCount, err = repository.CountEnrollmentsByCourse(database.DB, id); err != nil {
		return nil, err
	}
	return resp, nil
}

// ListCourses returns a filtered page of courses with roster sizes
func ListCourses(req *dto.ListCourseReq) (*dto.PagedResult[dto.CourseResp], error) {
	req.Normalize()

	total, courses, err := repository.ListCourses(database.DB, req)
	if err != nil {
		return nil, err
	}

	return buildCoursePage(courses, total, &req.PaginationReq)
}

// ListMyCourses returns the courses the calling student is enrolled in
func ListMyCourses(studentID int, req *dto.PaginationReq) (*dto.PagedResult[dto.CourseResp], error) {
	req.Normalize()

	total, courses, err := repository.ListCoursesByStudent(database.DB, studentID, req)
	if err != nil {
		return nil, err
	}

	return buildCoursePage(courses, total, req)
}

// UpdateCourse applies a partial course update
func UpdateCourse(id int, req *dto.UpdateCourseReq) (*dto.CourseResp, error) {
	var course *database.Course
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		course, err = repository.GetCourseByID(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: course not found", consts.ErrNotFound)
			}
			return err
		}

		if req.MajorID != nil {
			if _, err := repository.GetMajorByID(tx, *req.MajorID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: major not found", consts.ErrValidation)
				}
				return err
			}
		}

		if req.SemesterID != nil {
			if _, err := repository.GetSemesterByID(tx, *req.SemesterID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: semester not found", consts.ErrValidation)
				}
				return err
			}
		}

		req.Patch(course)
		if err := repository.UpdateCourse(tx, course); err != nil {
			return err
		}

		course, err = repository.GetCourseByID(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return dto.NewCourseResp(course), nil
}

// DeleteCourse soft-deletes a course; enrollments stay for history
func DeleteCourse(id int) error {
	if err := repository.SoftDeleteCourse(database.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: course not found", consts.ErrNotFound)
		}
		return err
	}
	return nil
}

// AssignLecturer sets a course's lecturer after checking the role
func AssignLecturer(courseID int, req *dto.AssignLecturerReq) (*dto.CourseResp, error) {
	var course *database.Course
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		course, err = repository.GetCourseByID(tx, courseID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: course not found", consts.ErrNotFound)
			}
			return err
		}

		lecturer, err := requireRole(tx, req.LecturerID, consts.RoleLecturer)
		if err != nil {
			return err
		}

		course.LecturerID = &lecturer.ID
		course.Lecturer = lecturer
		return repository.UpdateCourse(tx, course)
	})
	if err != nil {
		return nil, err
	}

	return dto.NewCourseResp(course), nil
}

// EnrollStudent adds a student to a course roster
func EnrollStudent(courseID int, req *dto.EnrollStudentReq) (*dto.EnrolledStudentResp, error) {
	var enrollment *database.CourseStudent
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		course, err := repository.GetCourseByID(tx, courseID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: course not found", consts.ErrNotFound)
			}
			return err
		}
		if !course.IsActive {
			return fmt.Errorf("%w: course is not open for enrollment", consts.ErrValidation)
		}

		student, err := requireRole(tx, req.StudentID, consts.RoleStudent)
		if err != nil {
			return err
		}

		enrollment = &database.CourseStudent{
			CourseID:  course.ID,
			StudentID: student.ID,
			Student:   student,
		}
		if err := repository.CreateEnrollment(tx, enrollment); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: student is already enrolled", consts.ErrConflict)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return dto.NewEnrolledStudentResp(enrollment), nil
}

// UnenrollStudent removes a student from a course roster
func UnenrollStudent(courseID, studentID int) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := repository.GetCourseByID(tx, courseID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: course not found", consts.ErrNotFound)
			}
			return err
		}

		if err := repository.DeleteEnrollment(tx, courseID, studentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: enrollment not found", consts.ErrNotFound)
			}
			return err
		}
		return nil
	})
}

// ListEnrolledStudents returns a page of a course's roster
func ListEnrolledStudents(courseID int, req *dto.PaginationReq) (*dto.PagedResult[dto.EnrolledStudentResp], error) {
	req.Normalize()

	if _, err := repository.GetCourseByID(database.DB, courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: course not found", consts.ErrNotFound)
		}
		return nil, err
	}

	total, enrollments, err := repository.ListEnrollments(database.DB, courseID, req)
	if err != nil {
		return nil, err
	}

	items := make([]dto.EnrolledStudentResp, 0, len(enrollments))
	for i := range enrollments {
		items = append(items, *dto.NewEnrolledStudentResp(&enrollments[i]))
	}
	return dto.NewPagedResult(items, total, req), nil
}

func buildCoursePage(courses []database.Course, total int64, page *dto.PaginationReq) (*dto.PagedResult[dto.CourseResp], error) {
	courseIDs := make([]int, 0, len(courses))
	for i := range courses {
		courseIDs = append(courseIDs, courses[i].ID)
	}
	counts, err := repository.CountEnrollmentsByCourses(database.DB, courseIDs)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CourseResp, 0, len(courses))
	for i := range courses {
		resp := dto.NewCourseResp(&courses[i])
		resp.EnrolledCount = counts[courses[i].ID]
		items = append(items, *resp)
	}
	return dto.NewPagedResult(items, total, page), nil
}

// requireRole loads a live user and checks the expected role
func requireRole(tx *gorm.DB, userID int, role consts.RoleName) (*database.User, error) {
	user, err := repository.GetUserByID(tx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d not found", consts.ErrValidation, userID)
		}
		return nil, err
	}
	if user.Role == nil || user.Role.Name != role {
		return nil, fmt.Errorf("%w: user %d is not a %s", consts.ErrValidation, userID, role)
	}
	return user, nil
}
