package service

import (
	"errors"
	"testing"

	"campus/consts"
	"campus/database"
	"campus/dto"
	"campus/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCreateTopic(t *testing.T) *dto.TopicResp {
	t.Helper()
	topic, err := CreateTopic(&dto.CreateTopicReq{Name: "Topic " + nextFixtureTag()})
	require.NoError(t, err)
	return topic
}

func mustCreateQuestion(t *testing.T, topicID int) *dto.QuestionResp {
	t.Helper()
	question, err := CreateQuestion(&dto.CreateQuestionReq{
		TopicID: topicID,
		Text:    "Question " + nextFixtureTag(),
		Answers: []dto.AnswerReq{
			{Text: "right", IsCorrect: true},
			{Text: "wrong"},
		},
	})
	require.NoError(t, err)
	return question
}

// quizRowID resolves the quiz variant row behind a quiz-typed content
func quizRowID(t *testing.T, contentID int) int {
	t.Helper()
	var quiz database.Quiz
	require.NoError(t, database.DB.Where("content_id = ?", contentID).First(&quiz).Error)
	return quiz.ID
}

func TestTopicLifecycle(t *testing.T) {
	topic := mustCreateTopic(t)

	_, err := CreateTopic(&dto.CreateTopicReq{Name: topic.Name})
	assert.True(t, errors.Is(err, consts.ErrConflict))

	question := mustCreateQuestion(t, topic.ID)

	topics, err := ListTopics()
	require.NoError(t, err)
	var found *dto.TopicResp
	for i := range topics {
		if topics[i].ID == topic.ID {
			found = &topics[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, int64(1), found.QuestionCount)

	// a topic with live questions cannot be removed
	err = DeleteTopic(topic.ID)
	assert.True(t, errors.Is(err, consts.ErrConflict))

	require.NoError(t, DeleteQuestion(question.ID))
	require.NoError(t, DeleteTopic(topic.ID))

	err = DeleteTopic(topic.ID)
	assert.True(t, errors.Is(err, consts.ErrNotFound))
}

func TestQuestionLifecycle(t *testing.T) {
	topic := mustCreateTopic(t)

	_, err := CreateQuestion(&dto.CreateQuestionReq{
		TopicID: 999999,
		Text:    "Orphan",
		Answers: []dto.AnswerReq{{Text: "a", IsCorrect: true}, {Text: "b"}},
	})
	assert.True(t, errors.Is(err, consts.ErrValidation))

	question := mustCreateQuestion(t, topic.ID)
	assert.Equal(t, topic.Name, question.TopicName)
	require.Len(t, question.Answers, 2)

	got, err := GetQuestion(question.ID)
	require.NoError(t, err)
	assert.Equal(t, question.Text, got.Text)

	updated, err := UpdateQuestion(question.ID, &dto.UpdateQuestionReq{
		Text:        utils.StringPtr("Rewritten"),
		Explanation: utils.StringPtr("see chapter 3"),
		Answers: []dto.AnswerReq{
			{Text: "one"},
			{Text: "two", IsCorrect: true},
			{Text: "three"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Rewritten", updated.Text)
	assert.Equal(t, "see chapter 3", updated.Explanation)
	require.Len(t, updated.Answers, 3)
	assert.True(t, updated.Answers[1].IsCorrect)

	require.NoError(t, DeleteQuestion(question.ID))
	_, err = GetQuestion(question.ID)
	assert.True(t, errors.Is(err, consts.ErrNotFound))
}

func TestListQuestionsByTopic(t *testing.T) {
	first := mustCreateTopic(t)
	second := mustCreateTopic(t)
	mustCreateQuestion(t, first.ID)
	mustCreateQuestion(t, first.ID)
	mustCreateQuestion(t, second.ID)

	page, err := ListQuestions(&dto.ListQuestionReq{TopicID: &first.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalCount)
	for _, q := range page.Items {
		assert.Equal(t, first.ID, q.TopicID)
	}
}

func TestListQuestionsPagination(t *testing.T) {
	topic := mustCreateTopic(t)
	for i := 0; i < 25; i++ {
		mustCreateQuestion(t, topic.ID)
	}

	seen := 0
	for pageNum := 1; pageNum <= 3; pageNum++ {
		page, err := ListQuestions(&dto.ListQuestionReq{
			PaginationReq: dto.PaginationReq{PageNumber: pageNum, PageSize: 10},
			TopicID:       &topic.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(25), page.TotalCount)
		assert.Equal(t, 3, page.TotalPages)
		assert.LessOrEqual(t, len(page.Items), 10)
		seen += len(page.Items)
	}
	assert.Equal(t, 25, seen)

	// a page past the end is empty, not an error
	past, err := ListQuestions(&dto.ListQuestionReq{
		PaginationReq: dto.PaginationReq{PageNumber: 4, PageSize: 10},
		TopicID:       &topic.ID,
	})
	require.NoError(t, err)
	assert.Empty(t, past.Items)
	assert.Equal(t, int64(25), past.TotalCount)

	// a filter matching nothing returns an empty page
	unknown := 999999
	none, err := ListQuestions(&dto.ListQuestionReq{TopicID: &unknown})
	require.NoError(t, err)
	assert.Equal(t, int64(0), none.TotalCount)
	assert.Empty(t, none.Items)
}

func TestAttachDetachRecomputesPoints(t *testing.T) {
	course := mustCreateCourse(t)
	chapter := mustCreateChapter(t, course.ID, "Quizzes")
	content := mustCreateQuizContent(t, chapter.ID, "Midterm")
	quizID := quizRowID(t, content.ID)

	topic := mustCreateTopic(t)
	q1 := mustCreateQuestion(t, topic.ID)
	q2 := mustCreateQuestion(t, topic.ID)

	link, err := AttachQuestion(quizID, &dto.AttachQuestionReq{QuestionID: q1.ID, Points: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, link.Points)

	_, err = AttachQuestion(quizID, &dto.AttachQuestionReq{QuestionID: q2.ID, Points: 3})
	require.NoError(t, err)

	got, err := GetContent(content.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Quiz)
	assert.Equal(t, 8, got.Quiz.TotalPoints)
	assert.Equal(t, 2, got.Quiz.QuestionCount)

	_, err = AttachQuestion(quizID, &dto.AttachQuestionReq{QuestionID: q1.ID, Points: 1})
	assert.True(t, errors.Is(err, consts.ErrConflict))

	_, err = AttachQuestion(quizID, &dto.AttachQuestionReq{QuestionID: 999999, Points: 1})
	assert.True(t, errors.Is(err, consts.ErrValidation))

	require.NoError(t, DetachQuestion(quizID, q2.ID))

	got, err = GetContent(content.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Quiz.TotalPoints)
	assert.Equal(t, 1, got.Quiz.QuestionCount)

	err = DetachQuestion(quizID, q2.ID)
	assert.True(t, errors.Is(err, consts.ErrNotFound))
}

func TestGetQuizForTakingHidesCorrectness(t *testing.T) {
	course := mustCreateCourse(t)
	chapter := mustCreateChapter(t, course.ID, "Quizzes")
	content := mustCreateQuizContent(t, chapter.ID, "Checkpoint")
	quizID := quizRowID(t, content.ID)

	topic := mustCreateTopic(t)
	question := mustCreateQuestion(t, topic.ID)
	_, err := AttachQuestion(quizID, &dto.AttachQuestionReq{QuestionID: question.ID, Points: 2})
	require.NoError(t, err)

	staffView, err := ListQuizQuestions(quizID)
	require.NoError(t, err)
	require.Len(t, staffView, 1)
	require.NotNil(t, staffView[0].Question)
	assert.True(t, staffView[0].Question.Answers[0].IsCorrect)

	studentView, err := GetQuizForTaking(quizID)
	require.NoError(t, err)
	require.Len(t, studentView, 1)
	assert.Equal(t, question.ID, studentView[0].QuestionID)
	assert.Equal(t, 2, studentView[0].Points)
	assert.Len(t, studentView[0].Answers, 2)

	_, err = GetQuizForTaking(999999)
	assert.True(t, errors.Is(err, consts.ErrNotFound))
}

func TestUpdateTopic(t *testing.T) {
	tag := nextFixtureTag()

	topic := mustCreateTopic(t)
	mustCreateQuestion(t, topic.ID)

	newName := "Renamed " + tag
	updated, err := UpdateTopic(topic.ID, &dto.UpdateTopicReq{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, int64(1), updated.QuestionCount)

	// Name claimed by another topic.
	other := mustCreateTopic(t)
	_, err = UpdateTopic(other.ID, &dto.UpdateTopicReq{Name: &newName})
	assert.True(t, errors.Is(err, consts.ErrConflict))

	empty := "   "
	_, err = UpdateTopic(topic.ID, &dto.UpdateTopicReq{Name: &empty})
	assert.True(t, errors.Is(err, consts.ErrValidation))

	_, err = UpdateTopic(999999, &dto.UpdateTopicReq{Name: &newName})
	assert.True(t, errors.Is(err, consts.ErrNotFound))
}
