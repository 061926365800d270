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

// buildGradedQuiz wires a quiz with two questions worth 5 and 3 points
// and returns the quiz row id plus both questions with answers.
func buildGradedQuiz(t *testing.T) (quizID int, q1, q2 *dto.QuestionResp) {
	t.Helper()
	course := mustCreateCourse(t)
	chapter := mustCreateChapter(t, course.ID, "Assessment")
	content := mustCreateQuizContent(t, chapter.ID, "Final")
	quizID = quizRowID(t, content.ID)

	topic := mustCreateTopic(t)
	q1 = mustCreateQuestion(t, topic.ID)
	q2 = mustCreateQuestion(t, topic.ID)

	_, err := AttachQuestion(quizID, &dto.AttachQuestionReq{QuestionID: q1.ID, Points: 5})
	require.NoError(t, err)
	_, err = AttachQuestion(quizID, &dto.AttachQuestionReq{QuestionID: q2.ID, Points: 3})
	require.NoError(t, err)
	return quizID, q1, q2
}

func answerID(t *testing.T, q *dto.QuestionResp, correct bool) int {
	t.Helper()
	for _, a := range q.Answers {
		if a.IsCorrect == correct {
			return a.ID
		}
	}
	t.Fatalf("question %d has no answer with correct=%v", q.ID, correct)
	return 0
}

func TestSubmitQuizScoring(t *testing.T) {
	quizID, q1, q2 := buildGradedQuiz(t)
	student := mustCreateUser(t, consts.RoleStudent)

	submission, err := SubmitQuiz(quizID, student.ID, &dto.SubmitQuizReq{
		Answers: []dto.SubmitAnswerReq{
			{QuestionID: q1.ID, AnswerID: answerID(t, q1, true)},
			{QuestionID: q2.ID, AnswerID: answerID(t, q2, false)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 5, submission.Score)
	assert.Equal(t, 8, submission.MaxScore)
	assert.NotEmpty(t, submission.Receipt)
	assert.Equal(t, student.ID, submission.StudentID)
	require.Len(t, submission.Answers, 2)
	assert.True(t, submission.Answers[0].IsCorrect)
	assert.Equal(t, 5, submission.Answers[0].PointsEarned)
	assert.False(t, submission.Answers[1].IsCorrect)
	assert.Equal(t, 0, submission.Answers[1].PointsEarned)

	// one attempt per student per quiz
	_, err = SubmitQuiz(quizID, student.ID, &dto.SubmitQuizReq{
		Answers: []dto.SubmitAnswerReq{
			{QuestionID: q1.ID, AnswerID: answerID(t, q1, true)},
		},
	})
	assert.True(t, errors.Is(err, consts.ErrConflict))

	mine, err := GetMyQuizSubmission(quizID, student.ID)
	require.NoError(t, err)
	assert.Equal(t, submission.ID, mine.ID)
	assert.Equal(t, submission.Score, mine.Score)

	byReceipt, err := GetQuizSubmissionByReceipt(submission.Receipt)
	require.NoError(t, err)
	assert.Equal(t, submission.ID, byReceipt.ID)

	_, err = GetQuizSubmissionByReceipt("no-such-receipt")
	assert.True(t, errors.Is(err, consts.ErrNotFound))
}

func TestSubmitQuizRejectsBadAnswers(t *testing.T) {
	quizID, q1, q2 := buildGradedQuiz(t)
	student := mustCreateUser(t, consts.RoleStudent)

	// the question must be on the quiz
	topic := mustCreateTopic(t)
	stranger := mustCreateQuestion(t, topic.ID)
	_, err := SubmitQuiz(quizID, student.ID, &dto.SubmitQuizReq{
		Answers: []dto.SubmitAnswerReq{
			{QuestionID: stranger.ID, AnswerID: stranger.Answers[0].ID},
		},
	})
	assert.True(t, errors.Is(err, consts.ErrValidation))

	// the answer must belong to the question it answers
	_, err = SubmitQuiz(quizID, student.ID, &dto.SubmitQuizReq{
		Answers: []dto.SubmitAnswerReq{
			{QuestionID: q1.ID, AnswerID: answerID(t, q2, true)},
		},
	})
	assert.True(t, errors.Is(err, consts.ErrValidation))

	_, err = SubmitQuiz(999999, student.ID, &dto.SubmitQuizReq{
		Answers: []dto.SubmitAnswerReq{{QuestionID: q1.ID, AnswerID: 1}},
	})
	assert.True(t, errors.Is(err, consts.ErrNotFound))
}

func TestSubmitQuizRequiresQuestions(t *testing.T) {
	course := mustCreateCourse(t)
	chapter := mustCreateChapter(t, course.ID, "Assessment")
	content := mustCreateQuizContent(t, chapter.ID, "Empty")
	student := mustCreateUser(t, consts.RoleStudent)

	_, err := SubmitQuiz(quizRowID(t, content.ID), student.ID, &dto.SubmitQuizReq{
		Answers: []dto.SubmitAnswerReq{{QuestionID: 1, AnswerID: 1}},
	})
	assert.True(t, errors.Is(err, consts.ErrValidation))
}

func TestListQuizSubmissions(t *testing.T) {
	quizID, q1, _ := buildGradedQuiz(t)
	first := mustCreateUser(t, consts.RoleStudent)
	second := mustCreateUser(t, consts.RoleStudent)

	for _, student := range []int{first.ID, second.ID} {
		_, err := SubmitQuiz(quizID, student, &dto.SubmitQuizReq{
			Answers: []dto.SubmitAnswerReq{
				{QuestionID: q1.ID, AnswerID: answerID(t, q1, true)},
			},
		})
		require.NoError(t, err)
	}

	page, err := ListQuizSubmissions(quizID, &dto.PaginationReq{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalCount)
	assert.Len(t, page.Items, 2)
}

func TestCompleteLessonIdempotent(t *testing.T) {
	course := mustCreateCourse(t)
	chapter := mustCreateChapter(t, course.ID, "Basics")
	lesson := mustCreateLesson(t, chapter.ID, "Reading")
	quiz := mustCreateQuizContent(t, chapter.ID, "Checkpoint")
	student := mustCreateUser(t, consts.RoleStudent)

	first, err := CompleteLesson(lesson.ID, student.ID)
	require.NoError(t, err)
	assert.Equal(t, student.ID, first.StudentID)

	// repeating the mark returns the original completion
	second, err := CompleteLesson(lesson.ID, student.ID)
	require.NoError(t, err)
	assert.Equal(t, first.LessonID, second.LessonID)
	assert.WithinDuration(t, first.CompletedAt, second.CompletedAt, time.Second)

	_, err = CompleteLesson(quiz.ID, student.ID)
	assert.True(t, errors.Is(err, consts.ErrValidation))

	_, err = CompleteLesson(999999, student.ID)
	assert.True(t, errors.Is(err, consts.ErrNotFound))
}

func TestGetCourseProgress(t *testing.T) {
	course := mustCreateCourse(t)
	chapter := mustCreateChapter(t, course.ID, "Basics")
	lesson := mustCreateLesson(t, chapter.ID, "Reading")
	quizContent := mustCreateQuizContent(t, chapter.ID, "Checkpoint")
	quizID := quizRowID(t, quizContent.ID)
	student := mustCreateUser(t, consts.RoleStudent)

	topic := mustCreateTopic(t)
	question := mustCreateQuestion(t, topic.ID)
	_, err := AttachQuestion(quizID, &dto.AttachQuestionReq{QuestionID: question.ID, Points: 1})
	require.NoError(t, err)

	progress, err := GetCourseProgress(course.ID, student.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), progress.LessonsTotal)
	assert.Equal(t, int64(0), progress.LessonsCompleted)
	assert.Equal(t, int64(1), progress.QuizzesTotal)
	assert.Equal(t, int64(0), progress.QuizzesSubmitted)
	assert.Equal(t, 0.0, progress.PercentComplete)

	_, err = CompleteLesson(lesson.ID, student.ID)
	require.NoError(t, err)

	progress, err = GetCourseProgress(course.ID, student.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), progress.LessonsCompleted)
	assert.Equal(t, 50.0, progress.PercentComplete)

	_, err = SubmitQuiz(quizID, student.ID, &dto.SubmitQuizReq{
		Answers: []dto.SubmitAnswerReq{
			{QuestionID: question.ID, AnswerID: answerID(t, question, true)},
		},
	})
	require.NoError(t, err)

	progress, err = GetCourseProgress(course.ID, student.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), progress.QuizzesSubmitted)
	assert.Equal(t, 100.0, progress.PercentComplete)
}

func TestAssignmentSubmissionFlow(t *testing.T) {
	course := mustCreateCourse(t)
	chapter := mustCreateChapter(t, course.ID, "Coursework")
	assignment := mustCreateAssignmentContent(t, chapter.ID, "Essay", nil)
	student := mustCreateUser(t, consts.RoleStudent)

	submission, err := SubmitAssignment(assignment.ID, student.ID, &dto.SubmitAssignmentReq{
		FileURL: "https://files.example.com/essay.pdf",
		Note:    "first draft",
	})
	require.NoError(t, err)
	assert.Equal(t, student.ID, submission.StudentID)
	assert.Nil(t, submission.Grade)

	// one hand-in per student per assignment
	_, err = SubmitAssignment(assignment.ID, student.ID, &dto.SubmitAssignmentReq{
		FileURL: "https://files.example.com/essay-v2.pdf",
	})
	assert.True(t, errors.Is(err, consts.ErrConflict))

	mine, err := GetMyAssignmentSubmission(assignment.ID, student.ID)
	require.NoError(t, err)
	assert.Equal(t, submission.ID, mine.ID)

	page, err := ListAssignmentSubmissions(assignment.ID, &dto.PaginationReq{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalCount)

	// grades are capped by the assignment's max points
	_, err = GradeAssignmentSubmission(submission.ID, &dto.GradeAssignmentReq{Grade: 150})
	assert.True(t, errors.Is(err, consts.ErrValidation))

	graded, err := GradeAssignmentSubmission(submission.ID, &dto.GradeAssignmentReq{
		Grade:    80,
		Feedback: "solid work",
	})
	require.NoError(t, err)
	require.NotNil(t, graded.Grade)
	assert.Equal(t, 80, *graded.Grade)
	assert.Equal(t, "solid work", graded.Feedback)
	assert.NotNil(t, graded.GradedAt)

	_, err = GradeAssignmentSubmission(999999, &dto.GradeAssignmentReq{Grade: 1})
	assert.True(t, errors.Is(err, consts.ErrNotFound))
}

func TestSubmitAssignmentPastDue(t *testing.T) {
	course := mustCreateCourse(t)
	chapter := mustCreateChapter(t, course.ID, "Coursework")
	yesterday := time.Now().Add(-24 * time.Hour)
	assignment := mustCreateAssignmentContent(t, chapter.ID, "Late Essay", &yesterday)
	student := mustCreateUser(t, consts.RoleStudent)

	_, err := SubmitAssignment(assignment.ID, student.ID, &dto.SubmitAssignmentReq{
		FileURL: "https://files.example.com/late.pdf",
	})
	assert.True(t, errors.Is(err, consts.ErrValidation))

	// a lesson is not an assignment
	lesson := mustCreateLesson(t, chapter.ID, "Reading")
	_, err = SubmitAssignment(lesson.ID, student.ID, &dto.SubmitAssignmentReq{
		FileURL: "https://files.example.com/x.pdf",
	})
	assert.True(t, errors.Is(err, consts.ErrValidation))
}
