package dto

import (
	"fmt"
	"strings"
	"time"

	"campus/database"
)

// Question-bank DTOs: topics, questions with their answer options, and the
// quiz/question attachment that assigns point values.

type CreateTopicReq struct {
	Name string `json:"name" binding:"required"`
}

func (req *CreateTopicReq) Validate() error {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return fmt.Errorf("topic name cannot be empty")
	}
	return nil
}

type UpdateTopicReq struct {
	Name *string `json:"name,omitempty"`
}

func (req *UpdateTopicReq) Patch(target *database.QuestionTopic) {
	if req.Name != nil {
		target.Name = strings.TrimSpace(*req.Name)
	}
}

type TopicResp struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	QuestionCount int64     `json:"questionCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func NewTopicResp(t *database.QuestionTopic, questionCount int64) *TopicResp {
	return &TopicResp{
		ID:            t.ID,
		Name:          t.Name,
		QuestionCount: questionCount,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

type AnswerReq struct {
	Text      string `json:"text" binding:"required"`
	IsCorrect bool   `json:"isCorrect"`
}

type CreateQuestionReq struct {
	TopicID     int         `json:"topicId" binding:"required,min=1"`
	Text        string      `json:"text" binding:"required"`
	Explanation string      `json:"explanation"`
	Answers     []AnswerReq `json:"answers" binding:"required,min=2,dive"`
}

// Validate enforces the bank invariant: at least two options and at least
// one marked correct.
func (req *CreateQuestionReq) Validate() error {
	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		return fmt.Errorf("question text cannot be empty")
	}
	correct := 0
	for i := range req.Answers {
		req.Answers[i].Text = strings.TrimSpace(req.Answers[i].Text)
		if req.Answers[i].Text == "" {
			return fmt.Errorf("answer text cannot be empty")
		}
		if req.Answers[i].IsCorrect {
			correct++
		}
	}
	if correct == 0 {
		return fmt.Errorf("question must have at least one correct answer")
	}
	return nil
}

type UpdateQuestionReq struct {
	TopicID     *int        `json:"topicId,omitempty" binding:"omitempty,min=1"`
	Text        *string     `json:"text,omitempty"`
	Explanation *string     `json:"explanation,omitempty"`
	Answers     []AnswerReq `json:"answers,omitempty" binding:"omitempty,min=2,dive"`
}

func (req *UpdateQuestionReq) Validate() error {
	if req.Text != nil && strings.TrimSpace(*req.Text) == "" {
		return fmt.Errorf("question text cannot be empty")
	}
	if req.Answers != nil {
		correct := 0
		for i := range req.Answers {
			req.Answers[i].Text = strings.TrimSpace(req.Answers[i].Text)
			if req.Answers[i].Text == "" {
				return fmt.Errorf("answer text cannot be empty")
			}
			if req.Answers[i].IsCorrect {
				correct++
			}
		}
		if correct == 0 {
			return fmt.Errorf("question must have at least one correct answer")
		}
	}
	return nil
}

func (req *UpdateQuestionReq) Patch(target *database.Question) {
	if req.TopicID != nil {
		target.TopicID = *req.TopicID
	}
	if req.Text != nil {
		target.Text = strings.TrimSpace(*req.Text)
	}
	if req.Explanation != nil {
		target.Explanation = *req.Explanation
	}
}

type ListQuestionReq struct {
	PaginationReq
	TopicID *int `form:"topicId"`
}

type AnswerResp struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

type QuestionResp struct {
	ID          int          `json:"id"`
	TopicID     int          `json:"topicId"`
	TopicName   string       `json:"topicName,omitempty"`
	Text        string       `json:"text"`
	Explanation string       `json:"explanation,omitempty"`
	Answers     []AnswerResp `json:"answers"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

func NewQuestionResp(q *database.Question) *QuestionResp {
	resp := &QuestionResp{
		ID:          q.ID,
		TopicID:     q.TopicID,
		Text:        q.Text,
		Explanation: q.Explanation,
		Answers:     make([]AnswerResp, 0, len(q.Answers)),
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
	if q.Topic != nil {
		resp.TopicName = q.Topic.Name
	}
	for _, a := range q.Answers {
		resp.Answers = append(resp.Answers, AnswerResp{ID: a.ID, Text: a.Text, IsCorrect: a.IsCorrect})
	}
	return resp
}

// StudentQuestionResp is the shape served to students taking a quiz.
// Correctness flags and explanations are withheld.
type StudentQuestionResp struct {
	QuestionID int                 `json:"questionId"`
	Text       string              `json:"text"`
	Points     int                 `json:"points"`
	Answers    []StudentAnswerResp `json:"answers"`
}

type StudentAnswerResp struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

func NewStudentQuestionResp(link *database.QuizQuestion) *StudentQuestionResp {
	resp := &StudentQuestionResp{
		QuestionID: link.QuestionID,
		Points:     link.Points,
		Answers:    []StudentAnswerResp{},
	}
	if link.Question != nil {
		resp.Text = link.Question.Text
		for _, a := range link.Question.Answers {
			resp.Answers = append(resp.Answers, StudentAnswerResp{ID: a.ID, Text: a.Text})
		}
	}
	return resp
}

type AttachQuestionReq struct {
	QuestionID int `json:"questionId" binding:"required,min=1"`
	Points     int `json:"points" binding:"omitempty,min=1"`
}

func (req *AttachQuestionReq) Validate() error {
	if req.Points == 0 {
		req.Points = 1
	}
	return nil
}

type QuizQuestionResp struct {
	QuestionID int           `json:"questionId"`
	Points     int           `json:"points"`
	Question   *QuestionResp `json:"question,omitempty"`
}

func NewQuizQuestionResp(link *database.QuizQuestion) *QuizQuestionResp {
	resp := &QuizQuestionResp{
		QuestionID: link.QuestionID,
		Points:     link.Points,
	}
	if link.Question != nil {
		resp.Question = NewQuestionResp(link.Question)
	}
	return resp
}
