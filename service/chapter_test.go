package service

import (
	"errors"
	"testing"

	"campus/consts"
	"campus/dto"
	"campus/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCreateChapter(t *testing.T, courseID int, title string) *dto.ChapterResp {
	t.Helper()
	chapter, err := CreateChapter(courseID, &dto.CreateChapterReq{Title: title})
	require.NoError(t, err)
	return chapter
}

func TestCreateChapterSortOrder(t *testing.T) {
	course := mustCreateCourse(t)

	first, err := CreateChapter(course.ID, &dto.CreateChapterReq{Title: "Introduction"})
	require.NoError(t, err)
	assert.Equal(t, 0, first.SortOrder)
	assert.Equal(t, course.ID, first.CourseID)

	second, err := CreateChapter(course.ID, &dto.CreateChapterReq{Title: "Processes"})
	require.NoError(t, err)
	assert.Equal(t, 1, second.SortOrder)

	pinned, err := CreateChapter(course.ID, &dto.CreateChapterReq{
		Title:     "Appendix",
		SortOrder: utils.IntPtr(10),
	})
	require.NoError(t, err)
	assert.Equal(t, 10, pinned.SortOrder)

	_, err = CreateChapter(999999, &dto.CreateChapterReq{Title: "Orphan"})
	assert.True(t, errors.Is(err, consts.ErrNotFound))
}

func TestListChaptersOrdering(t *testing.T) {
	course := mustCreateCourse(t)
	mustCreateChapter(t, course.ID, "One")
	mustCreateChapter(t, course.ID, "Two")
	mustCreateChapter(t, course.ID, "Three")

	chapters, err := ListChapters(course.ID)
	require.NoError(t, err)
	require.Len(t, chapters, 3)
	assert.Equal(t, "One", chapters[0].Title)
	assert.Equal(t, "Two", chapters[1].Title)
	assert.Equal(t, "Three", chapters[2].Title)

	_, err = ListChapters(999999)
	assert.True(t, errors.Is(err, consts.ErrNotFound))
}

func TestUpdateChapter(t *testing.T) {
	course := mustCreateCourse(t)
	chapter := mustCreateChapter(t, course.ID, "Draft")

	updated, err := UpdateChapter(chapter.ID, &dto.UpdateChapterReq{
		Title:       utils.StringPtr("Final"),
		Description: utils.StringPtr("Covers the basics"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Final", updated.Title)
	assert.Equal(t, "Covers the basics", updated.Description)
	assert.Equal(t, chapter.SortOrder, updated.SortOrder)

	_, err = UpdateChapter(999999, &dto.UpdateChapterReq{Title: utils.StringPtr("Ghost")})
	assert.True(t, errors.Is(err, consts.ErrNotFound))
}

func TestReorderChapters(t *testing.T) {
	course := mustCreateCourse(t)
	a := mustCreateChapter(t, course.ID, "A")
	b := mustCreateChapter(t, course.ID, "B")
	c := mustCreateChapter(t, course.ID, "C")

	// incomplete coverage is rejected
	_, err := ReorderChapters(course.ID, &dto.ReorderChaptersReq{ChapterIDs: []int{a.ID, b.ID}})
	assert.True(t, errors.Is(err, consts.ErrValidation))

	// foreign chapter id is rejected
	other := mustCreateCourse(t)
	foreign := mustCreateChapter(t, other.ID, "Foreign")
	_, err = ReorderChapters(course.ID, &dto.ReorderChaptersReq{ChapterIDs: []int{a.ID, b.ID, foreign.ID}})
	assert.True(t, errors.Is(err, consts.ErrValidation))

	reordered, err := ReorderChapters(course.ID, &dto.ReorderChaptersReq{ChapterIDs: []int{c.ID, a.ID, b.ID}})
	require.NoError(t, err)
	require.Len(t, reordered, 3)
	assert.Equal(t, c.ID, reordered[0].ID)
	assert.Equal(t, 0, reordered[0].SortOrder)
	assert.Equal(t, a.ID, reordered[1].ID)
	assert.Equal(t, 1, reordered[1].SortOrder)
	assert.Equal(t, b.ID, reordered[2].ID)
	assert.Equal(t, 2, reordered[2].SortOrder)
}

func TestDeleteChapter(t *testing.T) {
	course := mustCreateCourse(t)
	chapter := mustCreateChapter(t, course.ID, "Doomed")

	require.NoError(t, DeleteChapter(chapter.ID))

	_, err := GetChapter(chapter.ID)
	assert.True(t, errors.Is(err, consts.ErrNotFound))

	err = DeleteChapter(chapter.ID)
	assert.True(t, errors.Is(err, consts.ErrNotFound))

	chapters, err := ListChapters(course.ID)
	require.NoError(t, err)
	assert.Empty(t, chapters)
}
