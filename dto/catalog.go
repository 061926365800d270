package dto

import (
	"fmt"
	"strings"
	"time"

	"campus/consts"
	"campus/database"
)

// Catalog DTOs cover the course-configuration lookups: departments, majors,
// academic years and semesters. Lists sort name-ascending; everything else
// follows the standard contract.

// ===================== Department =====================

type CreateDepartmentReq struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}

func (req *CreateDepartmentReq) Validate() error {
	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	req.Name = strings.TrimSpace(req.Name)
	if req.Code == "" {
		return fmt.Errorf("department code cannot be empty")
	}
	if req.Name == "" {
		return fmt.Errorf("department name cannot be empty")
	}
	return nil
}

type UpdateDepartmentReq struct {
	Name *string `json:"name,omitempty"`
}

func (req *UpdateDepartmentReq) Patch(target *database.Department) {
	if req.Name != nil {
		target.Name = strings.TrimSpace(*req.Name)
	}
}

type DepartmentResp struct {
	ID        int       `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewDepartmentResp(d *database.Department) *DepartmentResp {
	return &DepartmentResp{
		ID:        d.ID,
		Code:      d.Code,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ===================== Major =====================

type CreateMajorReq struct {
	Code         string `json:"code" binding:"required"`
	Name         string `json:"name" binding:"required"`
	DepartmentID int    `json:"departmentId" binding:"required,min=1"`
}

func (req *CreateMajorReq) Validate() error {
	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	req.Name = strings.TrimSpace(req.Name)
	if req.Code == "" {
		return fmt.Errorf("major code cannot be empty")
	}
	if req.Name == "" {
		return fmt.Errorf("major name cannot be empty")
	}
	return nil
}

type UpdateMajorReq struct {
	Name         *string `json:"name,omitempty"`
	DepartmentID *int    `json:"departmentId,omitempty" binding:"omitempty,min=1"`
}

func (req *UpdateMajorReq) Patch(target *database.Major) {
	if req.Name != nil {
		target.Name = strings.TrimSpace(*req.Name)
	}
	if req.DepartmentID != nil {
		target.DepartmentID = *req.DepartmentID
	}
}

type ListMajorReq struct {
	PaginationReq
	DepartmentID *int `form:"departmentId"`
}

type MajorResp struct {
	ID             int       `json:"id"`
	Code           string    `json:"code"`
	Name           string    `json:"name"`
	DepartmentID   int       `json:"departmentId"`
	DepartmentName string    `json:"departmentName,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func NewMajorResp(m *database.Major) *MajorResp {
	resp := &MajorResp{
		ID:           m.ID,
		Code:         m.Code,
		Name:         m.Name,
		DepartmentID: m.DepartmentID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.Department != nil {
		resp.DepartmentName = m.Department.Name
	}
	return resp
}

// ===================== Academic year =====================

type CreateAcademicYearReq struct {
	Code      string    `json:"code" binding:"required"`
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
}

func (req *CreateAcademicYearReq) Validate() error {
	req.Code = strings.TrimSpace(req.Code)
	if req.Code == "" {
		return fmt.Errorf("academic year code cannot be empty")
	}
	if !req.EndDate.After(req.StartDate) {
		return fmt.Errorf("end date must be after start date")
	}
	return nil
}

type UpdateAcademicYearReq struct {
	Code      *string    `json:"code,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

func (req *UpdateAcademicYearReq) Patch(target *database.AcademicYear) {
	if req.Code != nil {
		target.Code = strings.TrimSpace(*req.Code)
	}
	if req.StartDate != nil {
		target.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		target.EndDate = *req.EndDate
	}
}

type AcademicYearResp struct {
	ID        int       `json:"id"`
	Code      string    `json:"code"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewAcademicYearResp(y *database.AcademicYear) *AcademicYearResp {
	return &AcademicYearResp{
		ID:        y.ID,
		Code:      y.Code,
		StartDate: y.StartDate,
		EndDate:   y.EndDate,
		CreatedAt: y.CreatedAt,
		UpdatedAt: y.UpdatedAt,
	}
}

// ===================== Semester =====================

type CreateSemesterReq struct {
	AcademicYearID int       `json:"academicYearId" binding:"required,min=1"`
	Term           int       `json:"term" binding:"required"`
	StartDate      time.Time `json:"startDate" binding:"required"`
	EndDate        time.Time `json:"endDate" binding:"required"`
}

func (req *CreateSemesterReq) Validate() error {
	if req.Term != consts.TermFirst && req.Term != consts.TermSecond && req.Term != consts.TermSummer {
		return fmt.Errorf("term must be 1, 2 or %d (summer)", consts.TermSummer)
	}
	if !req.EndDate.After(req.StartDate) {
		return fmt.Errorf("end date must be after start date")
	}
	return nil
}

type UpdateSemesterReq struct {
	Term      *int       `json:"term,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

func (req *UpdateSemesterReq) Validate() error {
	if req.Term != nil &&
		*req.Term != consts.TermFirst && *req.Term != consts.TermSecond && *req.Term != consts.TermSummer {
		return fmt.Errorf("term must be 1, 2 or %d (summer)", consts.TermSummer)
	}
	return nil
}

func (req *UpdateSemesterReq) Patch(target *database.Semester) {
	if req.Term != nil {
		target.Term = *req.Term
	}
	if req.StartDate != nil {
		target.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		target.EndDate = *req.EndDate
	}
}

type ListSemesterReq struct {
	PaginationReq
	AcademicYearID *int `form:"academicYearId"`
}

type SemesterResp struct {
	ID               int       `json:"id"`
	AcademicYearID   int       `json:"academicYearId"`
	AcademicYearCode string    `json:"academicYearCode,omitempty"`
	Term             int       `json:"term"`
	Name             string    `json:"name"`
	StartDate        time.Time `json:"startDate"`
	EndDate          time.Time `json:"endDate"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func NewSemesterResp(s *database.Semester) *SemesterResp {
	resp := &SemesterResp{
		ID:             s.ID,
		AcademicYearID: s.AcademicYearID,
		Term:           s.Term,
		Name:           FormatSemesterName(s),
		StartDate:      s.StartDate,
		EndDate:        s.EndDate,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
	if s.AcademicYear != nil {
		resp.AcademicYearCode = s.AcademicYear.Code
	}
	return resp
}

// FormatSemesterName renders the display name shown in course lists,
// e.g. "2025-2026 / Term 1" or "2025-2026 / Summer".
func FormatSemesterName(s *database.Semester) string {
	term := fmt.Sprintf("Term %d", s.Term)
	if s.Term == consts.TermSummer {
		term = "Summer"
	}
	if s.AcademicYear != nil {
		return fmt.Sprintf("%s / %s", s.AcademicYear.Code, term)
	}
	return term
}
