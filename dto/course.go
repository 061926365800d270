package dto

import (
	"fmt"
	"strings"
	"time"

	"campus/database"
)

// ===================== Course CRUD DTOs =====================

// CreateCourseReq represents course creation
type CreateCourseReq struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"omitempty"`
	Credits     int    `json:"credits" binding:"omitempty,min=1,max=30"`
	MajorID     int    `json:"majorId" binding:"required,min=1"`
	SemesterID  int    `json:"semesterId" binding:"required,min=1"`
	LecturerID  *int   `json:"lecturerId" binding:"omitempty,min=1"`
}

func (req *CreateCourseReq) Validate() error {
	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	req.Name = strings.TrimSpace(req.Name)

	if req.Code == "" {
		return fmt.Errorf("course code cannot be empty")
	}
	if req.Name == "" {
		return fmt.Errorf("course name cannot be empty")
	}
	if req.Credits == 0 {
		req.Credits = 3
	}
	return nil
}

// ListCourseReq represents the course list query parameters
type ListCourseReq struct {
	PaginationReq
	MajorID        *int  `form:"majorId"`
	SemesterID     *int  `form:"semesterId"`
	LecturerID     *int  `form:"lecturerId"`
	AcademicYearID *int  `form:"academicYearId"`
	IsActive       *bool `form:"isActive"`
}

// UpdateCourseReq represents a partial course update
type UpdateCourseReq struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Credits     *int    `json:"credits,omitempty" binding:"omitempty,min=1,max=30"`
	MajorID     *int    `json:"majorId,omitempty" binding:"omitempty,min=1"`
	SemesterID  *int    `json:"semesterId,omitempty" binding:"omitempty,min=1"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// Patch applies only the provided fields onto the loaded entity
func (req *UpdateCourseReq) Patch(target *database.Course) {
	if req.Name != nil {
		target.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		target.Description = *req.Description
	}
	if req.Credits != nil {
		target.Credits = *req.Credits
	}
	if req.MajorID != nil {
		target.MajorID = *req.MajorID
	}
	if req.SemesterID != nil {
		target.SemesterID = *req.SemesterID
	}
	if req.IsActive != nil {
		target.IsActive = *req.IsActive
	}
}

// AssignLecturerReq represents the assign-lecturer action
type AssignLecturerReq struct {
	LecturerID int `json:"lecturerId" binding:"required,min=1"`
}

// EnrollStudentReq represents the enroll-student action
type EnrollStudentReq struct {
	StudentID int `json:"studentId" binding:"required,min=1"`
}

// CourseResp is the flat list-item shape with joined display names
type CourseResp struct {
	ID            int       `json:"id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Credits       int       `json:"credits"`
	MajorID       int       `json:"majorId"`
	MajorName     string    `json:"majorName,omitempty"`
	SemesterID    int       `json:"semesterId"`
	SemesterName  string    `json:"semesterName,omitempty"`
	LecturerID    *int      `json:"lecturerId,omitempty"`
	LecturerName  string    `json:"lecturerName,omitempty"`
	IsActive      bool      `json:"isActive"`
	EnrolledCount int64     `json:"enrolledCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func NewCourseResp(course *database.Course) *CourseResp {
	resp := &CourseResp{
		ID:          course.ID,
		Code:        course.Code,
		Name:        course.Name,
		Description: course.Description,
		Credits:     course.Credits,
		MajorID:     course.MajorID,
		SemesterID:  course.SemesterID,
		LecturerID:  course.LecturerID,
		IsActive:    course.IsActive,
		CreatedAt:   course.CreatedAt,
		UpdatedAt:   course.UpdatedAt,
	}
	if course.Major != nil {
		resp.MajorName = course.Major.Name
	}
	if course.Semester != nil {
		resp.SemesterName = FormatSemesterName(course.Semester)
	}
	if course.Lecturer != nil {
		resp.LecturerName = course.Lecturer.FullName
	}
	return resp
}

// CourseDetailResp is the single-resource shape with nested chapters
type CourseDetailResp struct {
	CourseResp

	Chapters []ChapterResp `json:"chapters"`
}

func NewCourseDetailResp(course *database.Course) *CourseDetailResp {
	resp := &CourseDetailResp{
		CourseResp: *NewCourseResp(course),
		Chapters:   []ChapterResp{},
	}
	for i := range course.Chapters {
		resp.Chapters = append(resp.Chapters, *NewChapterResp(&course.Chapters[i]))
	}
	return resp
}

// EnrolledStudentResp is the list item of a course roster
type EnrolledStudentResp struct {
	StudentID  int       `json:"studentId"`
	Username   string    `json:"username"`
	FullName   string    `json:"fullName"`
	Email      string    `json:"email"`
	EnrolledAt time.Time `json:"enrolledAt"`
}

func NewEnrolledStudentResp(cs *database.CourseStudent) *EnrolledStudentResp {
	resp := &EnrolledStudentResp{
		StudentID:  cs.StudentID,
		EnrolledAt: cs.EnrolledAt,
	}
	if cs.Student != nil {
		resp.Username = cs.Student.Username
		resp.FullName = cs.Student.FullName
		resp.Email = cs.Student.Email
	}
	return resp
}
