package service

import (
	"errors"
	"testing"
	"time"

	"campus/consts"
	"campus/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCreateCatalog(t *testing.T) (majorID, semesterID int) {
	t.Helper()
	tag := nextFixtureTag()

	dept, err := CreateDepartment(&dto.CreateDepartmentReq{Code: "D" + tag, Name: "Department " + tag})
	require.NoError(t, err)

	major, err := CreateMajor(&dto.CreateMajorReq{Code: "M" + tag, Name: "Major " + tag, DepartmentID: dept.ID})
	require.NoError(t, err)

	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	year, err := CreateAcademicYear(&dto.CreateAcademicYearReq{
		Code:      "Y" + tag,
		StartDate: start,
		EndDate:   start.AddDate(1, 0, 0),
	})
	require.NoError(t, err)

	semester, err := CreateSemester(&dto.CreateSemesterReq{
		AcademicYearID: year.ID,
		Term:           consts.TermFirst,
		StartDate:      start,
		EndDate:        start.AddDate(0, 4, 0),
	})
	require.NoError(t, err)

	return major.ID, semester.ID
}

func TestDepartmentLifecycle(t *testing.T) {
	tag := nextFixtureTag()

	dept, err := CreateDepartment(&dto.CreateDepartmentReq{Code: "CS" + tag, Name: "Computer Science"})
	require.NoError(t, err)
	assert.Equal(t, "CS"+tag, dept.Code)

	_, err = CreateDepartment(&dto.CreateDepartmentReq{Code: "CS" + tag, Name: "Copycat"})
	assert.True(t, errors.Is(err, consts.ErrConflict), "duplicate code must conflict")

	newName := "Computing"
	updated, err := UpdateDepartment(dept.ID, &dto.UpdateDepartmentReq{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Computing", updated.Name)

	major, err := CreateMajor(&dto.CreateMajorReq{Code: "SE" + tag, Name: "Software Engineering", DepartmentID: dept.ID})
	require.NoError(t, err)

	err = DeleteDepartment(dept.ID)
	assert.True(t, errors.Is(err, consts.ErrConflict), "department with majors must not delete")

	require.NoError(t, DeleteMajor(major.ID))
	require.NoError(t, DeleteDepartment(dept.ID))

	err = DeleteDepartment(dept.ID)
	assert.True(t, errors.Is(err, consts.ErrNotFound), "second delete must miss")
}

func TestCreateMajorUnknownDepartment(t *testing.T) {
	_, err := CreateMajor(&dto.CreateMajorReq{Code: "X" + nextFixtureTag(), Name: "Nowhere", DepartmentID: 999999})
	assert.True(t, errors.Is(err, consts.ErrValidation))
}

func TestCreateSemesterBounds(t *testing.T) {
	tag := nextFixtureTag()
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	year, err := CreateAcademicYear(&dto.CreateAcademicYearReq{
		Code:      "Y" + tag,
		StartDate: start,
		EndDate:   start.AddDate(1, 0, 0),
	})
	require.NoError(t, err)

	_, err = CreateSemester(&dto.CreateSemesterReq{
		AcademicYearID: year.ID,
		Term:           consts.TermFirst,
		StartDate:      start,
		EndDate:        start.AddDate(0, 4, 0),
	})
	require.NoError(t, err)

	// Same term twice within one year.
	_, err = CreateSemester(&dto.CreateSemesterReq{
		AcademicYearID: year.ID,
		Term:           consts.TermFirst,
		StartDate:      start,
		EndDate:        start.AddDate(0, 4, 0),
	})
	assert.True(t, errors.Is(err, consts.ErrConflict))

	// Dates spilling outside the year.
	_, err = CreateSemester(&dto.CreateSemesterReq{
		AcademicYearID: year.ID,
		Term:           consts.TermSecond,
		StartDate:      start.AddDate(0, 10, 0),
		EndDate:        start.AddDate(1, 2, 0),
	})
	assert.True(t, errors.Is(err, consts.ErrValidation))

	// Unknown year.
	_, err = CreateSemester(&dto.CreateSemesterReq{
		AcademicYearID: 999999,
		Term:           consts.TermFirst,
		StartDate:      start,
		EndDate:        start.AddDate(0, 4, 0),
	})
	assert.True(t, errors.Is(err, consts.ErrValidation))
}

func TestUpdateAcademicYear(t *testing.T) {
	tag := nextFixtureTag()
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	year, err := CreateAcademicYear(&dto.CreateAcademicYearReq{
		Code:      "Y" + tag,
		StartDate: start,
		EndDate:   start.AddDate(1, 0, 0),
	})
	require.NoError(t, err)

	newCode := "Y" + tag + "r"
	newEnd := start.AddDate(1, 1, 0)
	updated, err := UpdateAcademicYear(year.ID, &dto.UpdateAcademicYearReq{Code: &newCode, EndDate: &newEnd})
	require.NoError(t, err)
	assert.Equal(t, newCode, updated.Code)
	assert.True(t, updated.EndDate.Equal(newEnd))
	assert.True(t, updated.StartDate.Equal(start), "start date must survive a partial update")

	// End patched to before the start.
	badEnd := start.AddDate(0, -1, 0)
	_, err = UpdateAcademicYear(year.ID, &dto.UpdateAcademicYearReq{EndDate: &badEnd})
	assert.True(t, errors.Is(err, consts.ErrValidation))

	// Code claimed by another year.
	other, err := CreateAcademicYear(&dto.CreateAcademicYearReq{
		Code:      "Y" + tag + "o",
		StartDate: start.AddDate(1, 0, 0),
		EndDate:   start.AddDate(2, 0, 0),
	})
	require.NoError(t, err)
	_, err = UpdateAcademicYear(other.ID, &dto.UpdateAcademicYearReq{Code: &newCode})
	assert.True(t, errors.Is(err, consts.ErrConflict))

	_, err = UpdateAcademicYear(999999, &dto.UpdateAcademicYearReq{Code: &newCode})
	assert.True(t, errors.Is(err, consts.ErrNotFound))
}

func TestDeleteAcademicYearBlockedBySemesters(t *testing.T) {
	tag := nextFixtureTag()
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	year, err := CreateAcademicYear(&dto.CreateAcademicYearReq{
		Code:      "Y" + tag,
		StartDate: start,
		EndDate:   start.AddDate(1, 0, 0),
	})
	require.NoError(t, err)

	semester, err := CreateSemester(&dto.CreateSemesterReq{
		AcademicYearID: year.ID,
		Term:           consts.TermFirst,
		StartDate:      start,
		EndDate:        start.AddDate(0, 4, 0),
	})
	require.NoError(t, err)

	err = DeleteAcademicYear(year.ID)
	assert.True(t, errors.Is(err, consts.ErrConflict), "year with semesters must not delete")

	require.NoError(t, DeleteSemester(semester.ID))
	require.NoError(t, DeleteAcademicYear(year.ID))

	err = DeleteAcademicYear(year.ID)
	assert.True(t, errors.Is(err, consts.ErrNotFound), "second delete must miss")
}

func TestListAcademicYearsPaged(t *testing.T) {
	tag := nextFixtureTag()
	start := time.Date(2020, 9, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		_, err := CreateAcademicYear(&dto.CreateAcademicYearReq{
			Code:      "PG" + tag + string(rune('a'+i)),
			StartDate: start.AddDate(i, 0, 0),
			EndDate:   start.AddDate(i+1, 0, 0),
		})
		require.NoError(t, err)
	}

	page, err := ListAcademicYears(&dto.PaginationReq{PageNumber: 1, PageSize: 2, SearchTerm: "PG" + tag})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.TotalCount)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "PG"+tag+"c", page.Items[0].Code, "newest year first")

	page, err = ListAcademicYears(&dto.PaginationReq{PageNumber: 2, PageSize: 2, SearchTerm: "PG" + tag})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "PG"+tag+"a", page.Items[0].Code)
}

func TestUpdateSemester(t *testing.T) {
	tag := nextFixtureTag()
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	year, err := CreateAcademicYear(&dto.CreateAcademicYearReq{
		Code:      "Y" + tag,
		StartDate: start,
		EndDate:   start.AddDate(1, 0, 0),
	})
	require.NoError(t, err)

	semester, err := CreateSemester(&dto.CreateSemesterReq{
		AcademicYearID: year.ID,
		Term:           consts.TermFirst,
		StartDate:      start,
		EndDate:        start.AddDate(0, 4, 0),
	})
	require.NoError(t, err)

	newEnd := start.AddDate(0, 5, 0)
	updated, err := UpdateSemester(semester.ID, &dto.UpdateSemesterReq{EndDate: &newEnd})
	require.NoError(t, err)
	assert.True(t, updated.EndDate.Equal(newEnd))
	assert.Equal(t, consts.TermFirst, updated.Term, "term must survive a partial update")

	// Dates spilling outside the year.
	badEnd := start.AddDate(1, 2, 0)
	_, err = UpdateSemester(semester.ID, &dto.UpdateSemesterReq{EndDate: &badEnd})
	assert.True(t, errors.Is(err, consts.ErrValidation))

	// Term claimed by a sibling semester.
	sibling, err := CreateSemester(&dto.CreateSemesterReq{
		AcademicYearID: year.ID,
		Term:           consts.TermSecond,
		StartDate:      start.AddDate(0, 5, 0),
		EndDate:        start.AddDate(0, 9, 0),
	})
	require.NoError(t, err)
	firstTerm := consts.TermFirst
	_, err = UpdateSemester(sibling.ID, &dto.UpdateSemesterReq{Term: &firstTerm})
	assert.True(t, errors.Is(err, consts.ErrConflict))

	_, err = UpdateSemester(999999, &dto.UpdateSemesterReq{EndDate: &newEnd})
	assert.True(t, errors.Is(err, consts.ErrNotFound))
}

func TestDeleteSemesterBlockedByCourses(t *testing.T) {
	majorID, semesterID := mustCreateCatalog(t)

	course, err := CreateCourse(&dto.CreateCourseReq{
		Code:       "C" + nextFixtureTag(),
		Name:       "Scheduled Course",
		Credits:    3,
		MajorID:    majorID,
		SemesterID: semesterID,
	})
	require.NoError(t, err)

	err = DeleteSemester(semesterID)
	assert.True(t, errors.Is(err, consts.ErrConflict), "semester with courses must not delete")

	require.NoError(t, DeleteCourse(course.ID))
	require.NoError(t, DeleteSemester(semesterID))
}
