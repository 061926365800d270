package repository

import (
	"fmt"

	"campus/database"
	"campus/dto"

	"gorm.io/gorm"
)

// CreateQuizSubmission stores a graded attempt with its per-answer rows.
// The unique quiz/student index enforces one attempt per student.
func CreateQuizSubmission(db *gorm.DB, submission *database.QuizSubmission) error {
	if err := db.Create(submission).Error; err != nil {
		return fmt.Errorf("failed to create quiz submission: %w", err)
	}
	return nil
}

// GetQuizSubmission fetches a student's attempt for a quiz
func GetQuizSubmission(db *gorm.DB, quizID, studentID int) (*database.QuizSubmission, error) {
	var submission database.QuizSubmission
	if err := db.Preload("Answers").
		Where("quiz_id = ? AND student_id = ?", quizID, studentID).
		First(&submission).Error; err != nil {
		return nil, fmt.Errorf("failed to get quiz submission: %w", err)
	}
	return &submission, nil
}

// GetQuizSubmissionByReceipt resolves an attempt by its opaque receipt
func GetQuizSubmissionByReceipt(db *gorm.DB, receipt string) (*database.QuizSubmission, error) {
	var submission database.QuizSubmission
	if err := db.Preload("Answers").Preload("Student").
		Where("receipt = ?", receipt).
		First(&submission).Error; err != nil {
		return nil, fmt.Errorf("failed to get quiz submission '%s': %w", receipt, err)
	}
	return &submission, nil
}

// ListQuizSubmissions returns a page of a quiz's attempts with students
func ListQuizSubmissions(db *gorm.DB, quizID int, req *dto.PaginationReq) (int64, []database.QuizSubmission, error) {
	builder := func(query *gorm.DB) *gorm.DB {
		return query.Where("quiz_id = ?", quizID)
	}

	return genericQueryWithBuilder[database.QuizSubmission](&genericQueryParams{
		db:        db,
		builder:   builder,
		sortField: "submitted_at DESC, id DESC",
		pageNum:   req.PageNumber,
		pageSize:  req.PageSize,
		preloads:  []string{"Student"},
	})
}

// CountQuizSubmissionsByStudent counts a student's attempts across quizzes
func CountQuizSubmissionsByStudent(db *gorm.DB, studentID int, quizIDs []int) (int64, error) {
	if len(quizIDs) == 0 {
		return 0, nil
	}
	var count int64
	if err := db.Model(&database.QuizSubmission{}).
		Where("student_id = ? AND quiz_id IN ?", studentID, quizIDs).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count quiz submissions: %w", err)
	}
	return count, nil
}

// CreateLessonProgress marks a lesson completed for a student. The unique
// index makes the mark idempotent at the store level.
func CreateLessonProgress(db *gorm.DB, progress *database.LessonProgress) error {
	if err := db.Create(progress).Error; err != nil {
		return fmt.Errorf("failed to record lesson progress: %w", err)
	}
	return nil
}

// GetLessonProgress fetches one progress mark
func GetLessonProgress(db *gorm.DB, lessonID, studentID int) (*database.LessonProgress, error) {
	var progress database.LessonProgress
	if err := db.Where("lesson_id = ? AND student_id = ?", lessonID, studentID).
		First(&progress).Error; err != nil {
		return nil, fmt.Errorf("failed to get lesson progress: %w", err)
	}
	return &progress, nil
}

// CountLessonProgressByStudent counts completed lessons out of a lesson set
func CountLessonProgressByStudent(db *gorm.DB, studentID int, lessonIDs []int) (int64, error) {
	if len(lessonIDs) == 0 {
		return 0, nil
	}
	var count int64
	if err := db.Model(&database.LessonProgress{}).
		Where("student_id = ? AND lesson_id IN ?", studentID, lessonIDs).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count lesson progress: %w", err)
	}
	return count, nil
}

// CreateAssignmentSubmission stores a hand-in. The unique index enforces
// one submission per student per assignment.
func CreateAssignmentSubmission(db *gorm.DB, submission *database.AssignmentSubmission) error {
	if err := db.Create(submission).Error; err != nil {
		return fmt.Errorf("failed to create assignment submission: %w", err)
	}
	return nil
}

// GetAssignmentSubmissionByID gets a hand-in with its student preloaded
func GetAssignmentSubmissionByID(db *gorm.DB, id int) (*database.AssignmentSubmission, error) {
	var submission database.AssignmentSubmission
	if err := db.Preload("Student").
		First(&submission, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get assignment submission %d: %w", id, err)
	}
	return &submission, nil
}

// GetAssignmentSubmission fetches a student's hand-in for an assignment
func GetAssignmentSubmission(db *gorm.DB, assignmentID, studentID int) (*database.AssignmentSubmission, error) {
	var submission database.AssignmentSubmission
	if err := db.Where("assignment_id = ? AND student_id = ?", assignmentID, studentID).
		First(&submission).Error; err != nil {
		return nil, fmt.Errorf("failed to get assignment submission: %w", err)
	}
	return &submission, nil
}

// ListAssignmentSubmissions returns a page of an assignment's hand-ins
func ListAssignmentSubmissions(db *gorm.DB, assignmentID int, req *dto.PaginationReq) (int64, []database.AssignmentSubmission, error) {
	builder := func(query *gorm.DB) *gorm.DB {
		return query.Where("assignment_id = ?", assignmentID)
	}

	return genericQueryWithBuilder[database.AssignmentSubmission](&genericQueryParams{
		db:        db,
		builder:   builder,
		sortField: "submitted_at DESC, id DESC",
		pageNum:   req.PageNumber,
		pageSize:  req.PageSize,
		preloads:  []string{"Student"},
	})
}

// UpdateAssignmentSubmission persists grading changes to a hand-in
func UpdateAssignmentSubmission(db *gorm.DB, submission *database.AssignmentSubmission) error {
	if err := db.Save(submission).Error; err != nil {
		return fmt.Errorf("failed to update assignment submission: %w", err)
	}
	return nil
}
