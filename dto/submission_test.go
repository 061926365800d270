package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmitQuizReqValidate(t *testing.T) {
	req := SubmitQuizReq{Answers: []SubmitAnswerReq{
		{QuestionID: 1, AnswerID: 10},
		{QuestionID: 2, AnswerID: 20},
	}}
	assert.NoError(t, req.Validate())

	req = SubmitQuizReq{Answers: []SubmitAnswerReq{
		{QuestionID: 1, AnswerID: 10},
		{QuestionID: 1, AnswerID: 11},
	}}
	assert.Error(t, req.Validate(), "same question answered twice")
}

func TestNewCourseProgressResp(t *testing.T) {
	resp := NewCourseProgressResp(1, 2, 4, 2, 2, 1)
	assert.Equal(t, int64(4), resp.LessonsTotal)
	assert.Equal(t, int64(2), resp.LessonsCompleted)
	assert.Equal(t, int64(2), resp.QuizzesTotal)
	assert.Equal(t, int64(1), resp.QuizzesSubmitted)
	assert.InDelta(t, 50.0, resp.PercentComplete, 0.01)

	empty := NewCourseProgressResp(1, 2, 0, 0, 0, 0)
	assert.Equal(t, float64(0), empty.PercentComplete)
}
