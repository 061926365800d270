package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateQuestionReqValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateQuestionReq
		wantErr bool
	}{
		{
			name: "one correct answer",
			req: CreateQuestionReq{
				TopicID: 1,
				Text:    "What is 2+2?",
				Answers: []AnswerReq{
					{Text: "4", IsCorrect: true},
					{Text: "5"},
				},
			},
		},
		{
			name: "multiple correct answers allowed",
			req: CreateQuestionReq{
				TopicID: 1,
				Text:    "Pick even numbers",
				Answers: []AnswerReq{
					{Text: "2", IsCorrect: true},
					{Text: "4", IsCorrect: true},
					{Text: "3"},
				},
			},
		},
		{
			name: "no correct answer",
			req: CreateQuestionReq{
				TopicID: 1,
				Text:    "What is 2+2?",
				Answers: []AnswerReq{
					{Text: "4"},
					{Text: "5"},
				},
			},
			wantErr: true,
		},
		{
			name: "blank question text",
			req: CreateQuestionReq{
				TopicID: 1,
				Text:    "   ",
				Answers: []AnswerReq{
					{Text: "4", IsCorrect: true},
					{Text: "5"},
				},
			},
			wantErr: true,
		},
		{
			name: "blank answer text",
			req: CreateQuestionReq{
				TopicID: 1,
				Text:    "What is 2+2?",
				Answers: []AnswerReq{
					{Text: "4", IsCorrect: true},
					{Text: " "},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateQuestionReqValidate(t *testing.T) {
	// Nil answers means the answer set stays untouched.
	req := UpdateQuestionReq{}
	assert.NoError(t, req.Validate())

	req = UpdateQuestionReq{
		Answers: []AnswerReq{{Text: "a"}, {Text: "b"}},
	}
	assert.Error(t, req.Validate())
}

func TestAttachQuestionReqDefaultPoints(t *testing.T) {
	req := AttachQuestionReq{QuestionID: 3}
	assert.NoError(t, req.Validate())
	assert.Equal(t, 1, req.Points)

	req = AttachQuestionReq{QuestionID: 3, Points: 5}
	assert.NoError(t, req.Validate())
	assert.Equal(t, 5, req.Points)
}
