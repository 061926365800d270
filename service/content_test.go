package service

import (
	"errors"
	"testing"
	"time"

	"campus/consts"
	"campus/dto"
	"campus/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCreateLesson(t *testing.T, chapterID int, title string) *dto.ContentResp {
	t.Helper()
	content, err := CreateContent(chapterID, &dto.CreateContentReq{
		Title:       title,
		ContentType: consts.ContentLesson,
		Lesson:      &dto.LessonPayload{Body: "lesson body", DurationMinutes: 15},
	})
	require.NoError(t, err)
	return content
}

func mustCreateQuizContent(t *testing.T, chapterID int, title string) *dto.ContentResp {
	t.Helper()
	content, err := CreateContent(chapterID, &dto.CreateContentReq{
		Title:       title,
		ContentType: consts.ContentQuiz,
		Quiz:        &dto.QuizPayload{},
	})
	require.NoError(t, err)
	return content
}

func mustCreateAssignmentContent(t *testing.T, chapterID int, title string, dueAt *time.Time) *dto.ContentResp {
	t.Helper()
	content, err := CreateContent(chapterID, &dto.CreateContentReq{
		Title:       title,
		ContentType: consts.ContentAssignment,
		Assignment:  &dto.AssignmentPayload{Instructions: "submit a report", DueAt: dueAt},
	})
	require.NoError(t, err)
	return content
}

func TestCreateContentVariants(t *testing.T) {
	course := mustCreateCourse(t)
	chapter := mustCreateChapter(t, course.ID, "Materials")

	lesson := mustCreateLesson(t, chapter.ID, "Reading")
	require.NotNil(t, lesson.Lesson)
	assert.Nil(t, lesson.Quiz)
	assert.Nil(t, lesson.Assignment)
	assert.Equal(t, "lesson body", lesson.Lesson.Body)
	assert.Equal(t, 15, lesson.Lesson.DurationMinutes)
	assert.Equal(t, 0, lesson.SortOrder)

	quiz := mustCreateQuizContent(t, chapter.ID, "Checkpoint")
	require.NotNil(t, quiz.Quiz)
	assert.Equal(t, 30, quiz.Quiz.DurationMinutes)
	assert.Equal(t, 0, quiz.Quiz.TotalPoints)
	assert.Equal(t, 0, quiz.Quiz.QuestionCount)
	assert.Equal(t, 1, quiz.SortOrder)

	assignment := mustCreateAssignmentContent(t, chapter.ID, "Essay", nil)
	require.NotNil(t, assignment.Assignment)
	assert.Equal(t, 100, assignment.Assignment.MaxPoints)
	assert.Equal(t, 2, assignment.SortOrder)

	_, err := CreateContent(999999, &dto.CreateContentReq{
		Title:       "Orphan",
		ContentType: consts.ContentLesson,
		Lesson:      &dto.LessonPayload{},
	})
	assert.True(t, errors.Is(err, consts.ErrNotFound))
}

func TestUpdateContent(t *testing.T) {
	course := mustCreateCourse(t)
	chapter := mustCreateChapter(t, course.ID, "Materials")
	lesson := mustCreateLesson(t, chapter.ID, "Reading")

	updated, err := UpdateContent(lesson.ID, &dto.UpdateContentReq{
		Title:  utils.StringPtr("Extended Reading"),
		Lesson: &dto.LessonPayload{Body: "revised body", VideoURL: "https://example.com/v1", DurationMinutes: 25},
	})
	require.NoError(t, err)
	assert.Equal(t, "Extended Reading", updated.Title)
	require.NotNil(t, updated.Lesson)
	assert.Equal(t, "revised body", updated.Lesson.Body)
	assert.Equal(t, "https://example.com/v1", updated.Lesson.VideoURL)
	assert.Equal(t, 25, updated.Lesson.DurationMinutes)

	// payload must match the declared content type
	_, err = UpdateContent(lesson.ID, &dto.UpdateContentReq{
		Quiz: &dto.QuizPayload{DurationMinutes: 10},
	})
	assert.True(t, errors.Is(err, consts.ErrValidation))

	quiz := mustCreateQuizContent(t, chapter.ID, "Checkpoint")
	updated, err = UpdateContent(quiz.ID, &dto.UpdateContentReq{
		Quiz: &dto.QuizPayload{DurationMinutes: 45, Shuffle: true},
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Quiz)
	assert.Equal(t, 45, updated.Quiz.DurationMinutes)
	assert.True(t, updated.Quiz.Shuffle)
}

func TestDeleteContent(t *testing.T) {
	course := mustCreateCourse(t)
	chapter := mustCreateChapter(t, course.ID, "Materials")
	lesson := mustCreateLesson(t, chapter.ID, "Reading")

	require.NoError(t, DeleteContent(lesson.ID))

	_, err := GetContent(lesson.ID)
	assert.True(t, errors.Is(err, consts.ErrNotFound))

	err = DeleteContent(lesson.ID)
	assert.True(t, errors.Is(err, consts.ErrNotFound))

	// the chapter listing no longer carries the deleted content
	got, err := GetChapter(chapter.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Contents)
}

func TestListContentsByChapter(t *testing.T) {
	course := mustCreateCourse(t)
	chapter := mustCreateChapter(t, course.ID, "Unit 1")

	lesson := mustCreateLesson(t, chapter.ID, "Reading")
	quiz := mustCreateQuizContent(t, chapter.ID, "Checkpoint")
	assignment := mustCreateAssignmentContent(t, chapter.ID, "Homework", nil)

	contents, err := ListContents(chapter.ID)
	require.NoError(t, err)
	require.Len(t, contents, 3)

	assert.Equal(t, lesson.ID, contents[0].ID)
	assert.Equal(t, quiz.ID, contents[1].ID)
	assert.Equal(t, assignment.ID, contents[2].ID)

	require.NotNil(t, contents[0].Lesson, "each item carries its variant payload")
	require.NotNil(t, contents[1].Quiz)
	require.NotNil(t, contents[2].Assignment)
	assert.Nil(t, contents[0].Quiz)

	require.NoError(t, DeleteContent(quiz.ID))
	contents, err = ListContents(chapter.ID)
	require.NoError(t, err)
	require.Len(t, contents, 2)
	assert.Equal(t, []int{lesson.ID, assignment.ID}, []int{contents[0].ID, contents[1].ID})

	_, err = ListContents(999999)
	assert.True(t, errors.Is(err, consts.ErrNotFound))
}
