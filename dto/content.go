package dto

import (
	"fmt"
	"strings"
	"time"

	"campus/consts"
	"campus/database"
)

// Content DTOs implement the tagged-union mapping of the table-per-type
// model. ContentType selects exactly one variant payload; requests carrying
// a payload that does not match the declared type are rejected up front.

type LessonPayload struct {
	Body            string `json:"body"`
	VideoURL        string `json:"videoUrl,omitempty"`
	DurationMinutes int    `json:"durationMinutes" binding:"omitempty,min=0"`
}

type QuizPayload struct {
	DurationMinutes int  `json:"durationMinutes" binding:"omitempty,min=1"`
	Shuffle         bool `json:"shuffle"`
}

type AssignmentPayload struct {
	Instructions string     `json:"instructions"`
	DueAt        *time.Time `json:"dueAt,omitempty"`
	MaxPoints    int        `json:"maxPoints" binding:"omitempty,min=1"`
}

type CreateContentReq struct {
	Title       string             `json:"title" binding:"required"`
	ContentType consts.ContentType `json:"contentType" binding:"required"`
	SortOrder   *int               `json:"sortOrder,omitempty" binding:"omitempty,min=0"`

	Lesson     *LessonPayload     `json:"lesson,omitempty"`
	Quiz       *QuizPayload       `json:"quiz,omitempty"`
	Assignment *AssignmentPayload `json:"assignment,omitempty"`
}

func (req *CreateContentReq) Validate() error {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return fmt.Errorf("content title cannot be empty")
	}
	if _, ok := consts.ValidContentTypes[req.ContentType]; !ok {
		return fmt.Errorf("invalid content type: %s", req.ContentType)
	}
	switch req.ContentType {
	case consts.ContentLesson:
		if req.Lesson == nil {
			return fmt.Errorf("lesson payload is required for lesson content")
		}
		if req.Quiz != nil || req.Assignment != nil {
			return fmt.Errorf("lesson content cannot carry quiz or assignment payloads")
		}
	case consts.ContentQuiz:
		if req.Quiz == nil {
			return fmt.Errorf("quiz payload is required for quiz content")
		}
		if req.Lesson != nil || req.Assignment != nil {
			return fmt.Errorf("quiz content cannot carry lesson or assignment payloads")
		}
	case consts.ContentAssignment:
		if req.Assignment == nil {
			return fmt.Errorf("assignment payload is required for assignment content")
		}
		if req.Lesson != nil || req.Quiz != nil {
			return fmt.Errorf("assignment content cannot carry lesson or quiz payloads")
		}
	}
	return nil
}

// UpdateContentReq patches the shared row and the variant row together.
// ContentType itself is immutable once created.
type UpdateContentReq struct {
	Title     *string `json:"title,omitempty"`
	SortOrder *int    `json:"sortOrder,omitempty" binding:"omitempty,min=0"`

	Lesson     *LessonPayload     `json:"lesson,omitempty"`
	Quiz       *QuizPayload       `json:"quiz,omitempty"`
	Assignment *AssignmentPayload `json:"assignment,omitempty"`
}

func (req *UpdateContentReq) Validate(contentType consts.ContentType) error {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return fmt.Errorf("content title cannot be empty")
	}
	if req.Lesson != nil && contentType != consts.ContentLesson {
		return fmt.Errorf("lesson payload not allowed on %s content", contentType)
	}
	if req.Quiz != nil && contentType != consts.ContentQuiz {
		return fmt.Errorf("quiz payload not allowed on %s content", contentType)
	}
	if req.Assignment != nil && contentType != consts.ContentAssignment {
		return fmt.Errorf("assignment payload not allowed on %s content", contentType)
	}
	return nil
}

func (req *UpdateContentReq) Patch(target *database.CourseContent) {
	if req.Title != nil {
		target.Title = strings.TrimSpace(*req.Title)
	}
	if req.SortOrder != nil {
		target.SortOrder = *req.SortOrder
	}
}

// ContentSummaryResp is the compact shape embedded in chapter listings.
type ContentSummaryResp struct {
	ID          int                `json:"id"`
	Title       string             `json:"title"`
	ContentType consts.ContentType `json:"contentType"`
	SortOrder   int                `json:"sortOrder"`
}

func NewContentSummaryResp(c *database.CourseContent) *ContentSummaryResp {
	return &ContentSummaryResp{
		ID:          c.ID,
		Title:       c.Title,
		ContentType: c.ContentType,
		SortOrder:   c.SortOrder,
	}
}

type LessonResp struct {
	Body            string `json:"body"`
	VideoURL        string `json:"videoUrl,omitempty"`
	DurationMinutes int    `json:"durationMinutes"`
}

type QuizResp struct {
	DurationMinutes int  `json:"durationMinutes"`
	TotalPoints     int  `json:"totalPoints"`
	QuestionCount   int  `json:"questionCount"`
	Shuffle         bool `json:"shuffle"`
}

type AssignmentResp struct {
	Instructions string     `json:"instructions"`
	DueAt        *time.Time `json:"dueAt,omitempty"`
	MaxPoints    int        `json:"maxPoints"`
}

// ContentResp is the full tagged-union detail shape. Exactly one of the
// variant pointers is populated, matching ContentType.
type ContentResp struct {
	ID          int                `json:"id"`
	ChapterID   int                `json:"chapterId"`
	Title       string             `json:"title"`
	ContentType consts.ContentType `json:"contentType"`
	SortOrder   int                `json:"sortOrder"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`

	Lesson     *LessonResp     `json:"lesson,omitempty"`
	Quiz       *QuizResp       `json:"quiz,omitempty"`
	Assignment *AssignmentResp `json:"assignment,omitempty"`
}

func NewContentResp(c *database.CourseContent) *ContentResp {
	resp := &ContentResp{
		ID:          c.ID,
		ChapterID:   c.ChapterID,
		Title:       c.Title,
		ContentType: c.ContentType,
		SortOrder:   c.SortOrder,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	switch c.ContentType {
	case consts.ContentLesson:
		if c.Lesson != nil {
			resp.Lesson = &LessonResp{
				Body:            c.Lesson.Body,
				VideoURL:        c.Lesson.VideoURL,
				DurationMinutes: c.Lesson.DurationMinutes,
			}
		}
	case consts.ContentQuiz:
		if c.Quiz != nil {
			resp.Quiz = &QuizResp{
				DurationMinutes: c.Quiz.DurationMinutes,
				TotalPoints:     c.Quiz.TotalPoints,
				QuestionCount:   len(c.Quiz.Questions),
				Shuffle:         c.Quiz.Shuffle,
			}
		}
	case consts.ContentAssignment:
		if c.Assignment != nil {
			resp.Assignment = &AssignmentResp{
				Instructions: c.Assignment.Instructions,
				DueAt:        c.Assignment.DueAt,
				MaxPoints:    c.Assignment.MaxPoints,
			}
		}
	}
	return resp
}
