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

// CreateDepartment creates a department
func CreateDepartment(req *dto.CreateDepartmentReq) (*dto.DepartmentResp, error) {
	department := &database.Department{Code: req.Code, Name: req.Name}
	if err := repository.CreateDepartment(database.DB, department); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: department code '%s' already exists", consts.ErrConflict, req.Code)
		}
		return nil, err
	}
	return dto.NewDepartmentResp(department), nil
}

// ListDepartments returns a page of departments
func ListDepartments(req *dto.PaginationReq) (*dto.PagedResult[dto.DepartmentResp], error) {
	req.Normalize()

	total, departments, err := repository.ListDepartments(database.DB, req)
	if err != nil {
		return nil, err
	}

	items := make([]dto.DepartmentResp, 0, len(departments))
	for i := range departments {
		items = append(items, *dto.NewDepartmentResp(&departments[i]))
	}
	return dto.NewPagedResult(items, total, req), nil
}

// UpdateDepartment applies a partial department update
func UpdateDepartment(id int, req *dto.UpdateDepartmentReq) (*dto.DepartmentResp, error) {
	var department *database.Department
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		department, err = repository.GetDepartmentByID(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: department not found", consts.ErrNotFound)
			}
			return err
		}

		req.Patch(department)
		return repository.UpdateDepartment(tx, department)
	})
	if err != nil {
		return nil, err
	}

	return dto.NewDepartmentResp(department), nil
}

// DeleteDepartment soft-deletes a department unless majors still hang off it
func DeleteDepartment(id int) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		count, err := repository.CountMajorsByDepartment(tx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: department still has %d majors", consts.ErrConflict, count)
		}

		if err := repository.SoftDeleteDepartment(tx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: department not found", consts.ErrNotFound)
			}
			return err
		}
		return nil
	})
}

// CreateMajor creates a major under a department
func CreateMajor(req *dto.CreateMajorReq) (*dto.MajorResp, error) {
	var major *database.Major
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		department, err := repository.GetDepartmentByID(tx, req.DepartmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: department not found", consts.ErrValidation)
			}
			return err
		}

		major = &database.Major{
			Code:         req.Code,
			Name:         req.Name,
			DepartmentID: department.ID,
			Department:   department,
		}
		if err := repository.CreateMajor(tx, major); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: major code '%s' already exists", consts.ErrConflict, req.Code)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return dto.NewMajorResp(major), nil
}

// ListMajors returns a filtered page of majors
func ListMajors(req *dto.ListMajorReq) (*dto.PagedResult[dto.MajorResp], error) {
	req.Normalize()

	total, majors, err := repository.ListMajors(database.DB, req)
	if err != nil {
		return nil, err
	}

	items := make([]dto.MajorResp, 0, len(majors))
	for i := range majors {
		items = append(items, *dto.NewMajorResp(&majors[i]))
	}
	return dto.NewPagedResult(items, total, &req.PaginationReq), nil
}

// UpdateMajor applies a partial major update
func UpdateMajor(id int, req *dto.UpdateMajorReq) (*dto.MajorResp, error) {
	var major *database.Major
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		major, err = repository.GetMajorByID(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: major not found", consts.ErrNotFound)
			}
			return err
		}

		if req.DepartmentID != nil {
			if _, err := repository.GetDepartmentByID(tx, *req.DepartmentID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: department not found", consts.ErrValidation)
				}
				return err
			}
		}

		req.Patch(major)
		if err := repository.UpdateMajor(tx, major); err != nil {
			return err
		}

		major, err = repository.GetMajorByID(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return dto.NewMajorResp(major), nil
}

// DeleteMajor soft-deletes a major
func DeleteMajor(id int) error {
	if err := repository.SoftDeleteMajor(database.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: major not found", consts.ErrNotFound)
		}
		return err
	}
	return nil
}

// CreateAcademicYear creates an academic year
func CreateAcademicYear(req *dto.CreateAcademicYearReq) (*dto.AcademicYearResp, error) {
	year := &database.AcademicYear{
		Code:      req.Code,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if err := repository.CreateAcademicYear(database.DB, year); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: academic year '%s' already exists", consts.ErrConflict, req.Code)
		}
		return nil, err
	}
	return dto.NewAcademicYearResp(year), nil
}

// ListAcademicYears returns a page of academic years newest-first
func ListAcademicYears(req *dto.PaginationReq) (*dto.PagedResult[dto.AcademicYearResp], error) {
	req.Normalize()

	total, years, err := repository.ListAcademicYears(database.DB, req)
	if err != nil {
		return nil, err
	}

	items := make([]dto.AcademicYearResp, 0, len(years))
	for i := range years {
		items = append(items, *dto.NewAcademicYearResp(&years[i]))
	}
	return dto.NewPagedResult(items, total, req), nil
}

// UpdateAcademicYear applies a partial academic year update. The patched
// dates must still form a valid range.
func UpdateAcademicYear(id int, req *dto.UpdateAcademicYearReq) (*dto.AcademicYearResp, error) {
	var year *database.AcademicYear
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		year, err = repository.GetAcademicYearByID(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: academic year not found", consts.ErrNotFound)
			}
			return err
		}

		req.Patch(year)
		if year.Code == "" {
			return fmt.Errorf("%w: academic year code cannot be empty", consts.ErrValidation)
		}
		if !year.EndDate.After(year.StartDate) {
			return fmt.Errorf("%w: end date must be after start date", consts.ErrValidation)
		}

		if err := repository.UpdateAcademicYear(tx, year); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: academic year '%s' already exists", consts.ErrConflict, year.Code)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return dto.NewAcademicYearResp(year), nil
}

// DeleteAcademicYear soft-deletes an academic year unless semesters still
// hang off it
func DeleteAcademicYear(id int) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		count, err := repository.CountSemestersByAcademicYear(tx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: academic year still has %d semesters", consts.ErrConflict, count)
		}

		if err := repository.SoftDeleteAcademicYear(tx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: academic year not found", consts.ErrNotFound)
			}
			return err
		}
		return nil
	})
}

// CreateSemester creates a semester inside an academic year. Dates must
// fall inside the year's bounds.
func CreateSemester(req *dto.CreateSemesterReq) (*dto.SemesterResp, error) {
	var semester *database.Semester
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		year, err := repository.GetAcademicYearByID(tx, req.AcademicYearID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: academic year not found", consts.ErrValidation)
			}
			return err
		}

		if req.StartDate.Before(year.StartDate) || req.EndDate.After(year.EndDate) {
			return fmt.Errorf("%w: semester dates fall outside academic year %s",
				consts.ErrValidation, year.Code)
		}

		semester = &database.Semester{
			AcademicYearID: year.ID,
			Term:           req.Term,
			StartDate:      req.StartDate,
			EndDate:        req.EndDate,
			AcademicYear:   year,
		}
		if err := repository.CreateSemester(tx, semester); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: term %d already exists in academic year %s",
					consts.ErrConflict, req.Term, year.Code)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return dto.NewSemesterResp(semester), nil
}

// ListSemesters returns a filtered page of semesters
func ListSemesters(req *dto.ListSemesterReq) (*dto.PagedResult[dto.SemesterResp], error) {
	req.Normalize()

	total, semesters, err := repository.ListSemesters(database.DB, req)
	if err != nil {
		return nil, err
	}

	items := make([]dto.SemesterResp, 0, len(semesters))
	for i := range semesters {
		items = append(items, *dto.NewSemesterResp(&semesters[i]))
	}
	return dto.NewPagedResult(items, total, &req.PaginationReq), nil
}

// UpdateSemester applies a partial semester update. The patched dates must
// stay a valid range inside the owning academic year.
func UpdateSemester(id int, req *dto.UpdateSemesterReq) (*dto.SemesterResp, error) {
	var semester *database.Semester
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		semester, err = repository.GetSemesterByID(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: semester not found", consts.ErrNotFound)
			}
			return err
		}

		req.Patch(semester)
		if !semester.EndDate.After(semester.StartDate) {
			return fmt.Errorf("%w: end date must be after start date", consts.ErrValidation)
		}
		year := semester.AcademicYear
		if semester.StartDate.Before(year.StartDate) || semester.EndDate.After(year.EndDate) {
			return fmt.Errorf("%w: semester dates fall outside academic year %s",
				consts.ErrValidation, year.Code)
		}

		if err := repository.UpdateSemester(tx, semester); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: term %d already exists in academic year %s",
					consts.ErrConflict, semester.Term, year.Code)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return dto.NewSemesterResp(semester), nil
}

// DeleteSemester soft-deletes a semester unless courses are still
// scheduled in it
func DeleteSemester(id int) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		count, err := repository.CountCoursesBySemester(tx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: semester still has %d courses", consts.ErrConflict, count)
		}

		if err := repository.SoftDeleteSemester(tx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: semester not found", consts.ErrNotFound)
			}
			return err
		}
		return nil
	})
}
