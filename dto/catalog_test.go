package dto

import (
	"testing"
	"time"

	"campus/consts"
	"campus/database"

	"github.com/stretchr/testify/assert"
)

func TestFormatSemesterName(t *testing.T) {
	year := &database.AcademicYear{Code: "2025-2026"}

	tests := []struct {
		name     string
		semester database.Semester
		want     string
	}{
		{"first term", database.Semester{Term: consts.TermFirst, AcademicYear: year}, "2025-2026 / Term 1"},
		{"second term", database.Semester{Term: consts.TermSecond, AcademicYear: year}, "2025-2026 / Term 2"},
		{"summer term", database.Semester{Term: consts.TermSummer, AcademicYear: year}, "2025-2026 / Summer"},
		{"missing year association", database.Semester{Term: consts.TermFirst}, "Term 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSemesterName(&tt.semester))
		})
	}
}

func TestCreateAcademicYearReqValidate(t *testing.T) {
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	req := CreateAcademicYearReq{Code: "2025-2026", StartDate: start, EndDate: start.AddDate(1, 0, 0)}
	assert.NoError(t, req.Validate())

	req = CreateAcademicYearReq{Code: "2025-2026", StartDate: start, EndDate: start}
	assert.Error(t, req.Validate(), "end date equal to start date")

	req = CreateAcademicYearReq{Code: "  ", StartDate: start, EndDate: start.AddDate(1, 0, 0)}
	assert.Error(t, req.Validate(), "blank code")
}

func TestCreateSemesterReqValidate(t *testing.T) {
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 4, 0)

	for _, term := range []int{consts.TermFirst, consts.TermSecond, consts.TermSummer} {
		req := CreateSemesterReq{AcademicYearID: 1, Term: term, StartDate: start, EndDate: end}
		assert.NoError(t, req.Validate())
	}

	req := CreateSemesterReq{AcademicYearID: 1, Term: 4, StartDate: start, EndDate: end}
	assert.Error(t, req.Validate(), "unknown term")

	req = CreateSemesterReq{AcademicYearID: 1, Term: consts.TermFirst, StartDate: end, EndDate: start}
	assert.Error(t, req.Validate(), "inverted dates")
}
