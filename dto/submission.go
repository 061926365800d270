package dto

import (
	"fmt"
	"strings"
	"time"

	"campus/database"
)

// Submission DTOs: quiz attempts with server-side grading, lesson progress
// marks and assignment hand-ins with lecturer grading.

type SubmitAnswerReq struct {
	QuestionID int `json:"questionId" binding:"required,min=1"`
	AnswerID   int `json:"answerId" binding:"required,min=1"`
}

type SubmitQuizReq struct {
	Answers []SubmitAnswerReq `json:"answers" binding:"required,min=1,dive"`
}

func (req *SubmitQuizReq) Validate() error {
	seen := make(map[int]struct{}, len(req.Answers))
	for _, a := range req.Answers {
		if _, dup := seen[a.QuestionID]; dup {
			return fmt.Errorf("question %d answered more than once", a.QuestionID)
		}
		seen[a.QuestionID] = struct{}{}
	}
	return nil
}

type SubmissionAnswerResp struct {
	QuestionID   int  `json:"questionId"`
	AnswerID     int  `json:"answerId"`
	IsCorrect    bool `json:"isCorrect"`
	PointsEarned int  `json:"pointsEarned"`
}

type QuizSubmissionResp struct {
	ID          int                    `json:"id"`
	Receipt     string                 `json:"receipt"`
	QuizID      int                    `json:"quizId"`
	StudentID   int                    `json:"studentId"`
	StudentName string                 `json:"studentName,omitempty"`
	Score       int                    `json:"score"`
	MaxScore    int                    `json:"maxScore"`
	Answers     []SubmissionAnswerResp `json:"answers,omitempty"`
	SubmittedAt time.Time              `json:"submittedAt"`
}

func NewQuizSubmissionResp(s *database.QuizSubmission) *QuizSubmissionResp {
	resp := &QuizSubmissionResp{
		ID:          s.ID,
		Receipt:     s.Receipt,
		QuizID:      s.QuizID,
		StudentID:   s.StudentID,
		Score:       s.Score,
		MaxScore:    s.MaxScore,
		SubmittedAt: s.SubmittedAt,
	}
	if s.Student != nil {
		resp.StudentName = s.Student.FullName
	}
	for _, a := range s.Answers {
		resp.Answers = append(resp.Answers, SubmissionAnswerResp{
			QuestionID:   a.QuestionID,
			AnswerID:     a.AnswerID,
			IsCorrect:    a.IsCorrect,
			PointsEarned: a.PointsEarned,
		})
	}
	return resp
}

type LessonProgressResp struct {
	LessonID    int       `json:"lessonId"`
	StudentID   int       `json:"studentId"`
	CompletedAt time.Time `json:"completedAt"`
}

func NewLessonProgressResp(p *database.LessonProgress) *LessonProgressResp {
	return &LessonProgressResp{
		LessonID:    p.LessonID,
		StudentID:   p.StudentID,
		CompletedAt: p.CompletedAt,
	}
}

// CourseProgressResp summarises one student's completion across a course.
type CourseProgressResp struct {
	CourseID         int     `json:"courseId"`
	StudentID        int     `json:"studentId"`
	LessonsTotal     int64   `json:"lessonsTotal"`
	LessonsCompleted int64   `json:"lessonsCompleted"`
	QuizzesTotal     int64   `json:"quizzesTotal"`
	QuizzesSubmitted int64   `json:"quizzesSubmitted"`
	PercentComplete  float64 `json:"percentComplete"`
}

func NewCourseProgressResp(courseID, studentID int, lessonsTotal, lessonsDone, quizzesTotal, quizzesDone int64) *CourseProgressResp {
	resp := &CourseProgressResp{
		CourseID:         courseID,
		StudentID:        studentID,
		LessonsTotal:     lessonsTotal,
		LessonsCompleted: lessonsDone,
		QuizzesTotal:     quizzesTotal,
		QuizzesSubmitted: quizzesDone,
	}
	total := lessonsTotal + quizzesTotal
	if total > 0 {
		resp.PercentComplete = float64(lessonsDone+quizzesDone) / float64(total) * 100
	}
	return resp
}

type SubmitAssignmentReq struct {
	FileURL string `json:"fileUrl" binding:"required,url"`
	Note    string `json:"note"`
}

func (req *SubmitAssignmentReq) Validate() error {
	req.FileURL = strings.TrimSpace(req.FileURL)
	if req.FileURL == "" {
		return fmt.Errorf("file url cannot be empty")
	}
	return nil
}

type GradeAssignmentReq struct {
	Grade    int    `json:"grade" binding:"min=0"`
	Feedback string `json:"feedback"`
}

type AssignmentSubmissionResp struct {
	ID           int        `json:"id"`
	AssignmentID int        `json:"assignmentId"`
	StudentID    int        `json:"studentId"`
	StudentName  string     `json:"studentName,omitempty"`
	FileURL      string     `json:"fileUrl"`
	Note         string     `json:"note,omitempty"`
	Grade        *int       `json:"grade,omitempty"`
	Feedback     string     `json:"feedback,omitempty"`
	SubmittedAt  time.Time  `json:"submittedAt"`
	GradedAt     *time.Time `json:"gradedAt,omitempty"`
}

func NewAssignmentSubmissionResp(s *database.AssignmentSubmission) *AssignmentSubmissionResp {
	resp := &AssignmentSubmissionResp{
		ID:           s.ID,
		AssignmentID: s.AssignmentID,
		StudentID:    s.StudentID,
		FileURL:      s.FileURL,
		Note:         s.Note,
		Grade:        s.Grade,
		Feedback:     s.Feedback,
		SubmittedAt:  s.SubmittedAt,
		GradedAt:     s.GradedAt,
	}
	if s.Student != nil {
		resp.StudentName = s.Student.FullName
	}
	return resp
}
