package service

import (
	"errors"
	"fmt"
	"time"

	"campus/consts"
	"campus/database"
	"campus/dto"
	"campus/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmitQuiz grades an attempt server-side and stores it atomically. Each
// student gets exactly one attempt per quiz; the answers are scored
// against the question links captured at submission time.
func SubmitQuiz(quizID, studentID int, req *dto.SubmitQuizReq) (*dto.QuizSubmissionResp, error) {
	var submission *database.QuizSubmission
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		quiz, err := repository.GetQuizByID(tx, quizID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: quiz not found", consts.ErrNotFound)
			}
			return err
		}

		links, err := repository.ListQuizQuestions(tx, quizID)
		if err != nil {
			return err
		}
		if len(links) == 0 {
			return fmt.Errorf("%w: quiz has no questions yet", consts.ErrValidation)
		}

		linkByQuestion := make(map[int]*database.QuizQuestion, len(links))
		for i := range links {
			linkByQuestion[links[i].QuestionID] = &links[i]
		}

		score := 0
		maxScore := 0
		for i := range links {
			maxScore += links[i].Points
		}

		answerRows := make([]database.QuizSubmissionAnswer, 0, len(req.Answers))
		for _, answer := range req.Answers {
			link, ok := linkByQuestion[answer.QuestionID]
			if !ok {
				return fmt.Errorf("%w: question %d is not on this quiz", consts.ErrValidation, answer.QuestionID)
			}
			if link.Question == nil {
				return fmt.Errorf("%w: question %d could not be loaded", consts.ErrInternal, answer.QuestionID)
			}

			var picked *database.Answer
			for j := range link.Question.Answers {
				if link.Question.Answers[j].ID == answer.AnswerID {
					picked = &link.Question.Answers[j]
					break
				}
			}
			if picked == nil {
				return fmt.Errorf("%w: answer %d does not belong to question %d",
					consts.ErrValidation, answer.AnswerID, answer.QuestionID)
			}

			earned := 0
			if picked.IsCorrect {
				earned = link.Points
				score += earned
			}
			answerRows = append(answerRows, database.QuizSubmissionAnswer{
				QuestionID:   answer.QuestionID,
				AnswerID:     answer.AnswerID,
				IsCorrect:    picked.IsCorrect,
				PointsEarned: earned,
			})
		}

		submission = &database.QuizSubmission{
			Receipt:   uuid.NewString(),
			QuizID:    quiz.ID,
			StudentID: studentID,
			Score:     score,
			MaxScore:  maxScore,
			Answers:   answerRows,
		}
		if err := repository.CreateQuizSubmission(tx, submission); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: quiz has already been submitted", consts.ErrConflict)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return dto.NewQuizSubmissionResp(submission), nil
}

// GetMyQuizSubmission returns the caller's own attempt for a quiz
func GetMyQuizSubmission(quizID, studentID int) (*dto.QuizSubmissionResp, error) {
	submission, err := repository.GetQuizSubmission(database.DB, quizID, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no submission for this quiz", consts.ErrNotFound)
		}
		return nil, err
	}
	return dto.NewQuizSubmissionResp(submission), nil
}

// GetQuizSubmissionByReceipt resolves an attempt by its opaque receipt
func GetQuizSubmissionByReceipt(receipt string) (*dto.QuizSubmissionResp, error) {
	submission, err := repository.GetQuizSubmissionByReceipt(database.DB, receipt)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: submission not found", consts.ErrNotFound)
		}
		return nil, err
	}
	return dto.NewQuizSubmissionResp(submission), nil
}

// ListQuizSubmissions returns a page of a quiz's attempts, for lecturers
func ListQuizSubmissions(quizID int, req *dto.PaginationReq) (*dto.PagedResult[dto.QuizSubmissionResp], error) {
	req.Normalize()

	if _, err := repository.GetQuizByID(database.DB, quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: quiz not found", consts.ErrNotFound)
		}
		return nil, err
	}

	total, submissions, err := repository.ListQuizSubmissions(database.DB, quizID, req)
	if err != nil {
		return nil, err
	}

	items := make([]dto.QuizSubmissionResp, 0, len(submissions))
	for i := range submissions {
		items = append(items, *dto.NewQuizSubmissionResp(&submissions[i]))
	}
	return dto.NewPagedResult(items, total, req), nil
}

// CompleteLesson marks a lesson done for the calling student. Repeated
// marks return the original completion rather than an error.
func CompleteLesson(contentID, studentID int) (*dto.LessonProgressResp, error) {
	var progress *database.LessonProgress
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		content, err := repository.GetContentByID(tx, contentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: lesson not found", consts.ErrNotFound)
			}
			return err
		}
		if content.ContentType != consts.ContentLesson || content.Lesson == nil {
			return fmt.Errorf("%w: content is not a lesson", consts.ErrValidation)
		}

		progress = &database.LessonProgress{
			LessonID:  content.Lesson.ID,
			StudentID: studentID,
		}
		if err := repository.CreateLessonProgress(tx, progress); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				progress, err = repository.GetLessonProgress(tx, content.Lesson.ID, studentID)
				return err
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return dto.NewLessonProgressResp(progress), nil
}

// GetCourseProgress summarises a student's completion across a course
func GetCourseProgress(courseID, studentID int) (*dto.CourseProgressResp, error) {
	if _, err := repository.GetCourseByID(database.DB, courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: course not found", consts.ErrNotFound)
		}
		return nil, err
	}

	lessonIDs, err := repository.ListContentVariantIDsByCourse(database.DB, courseID, consts.ContentLesson)
	if err != nil {
		return nil, err
	}
	quizIDs, err := repository.ListContentVariantIDsByCourse(database.DB, courseID, consts.ContentQuiz)
	if err != nil {
		return nil, err
	}

	lessonsDone, err := repository.CountLessonProgressByStudent(database.DB, studentID, lessonIDs)
	if err != nil {
		return nil, err
	}
	quizzesDone, err := repository.CountQuizSubmissionsByStudent(database.DB, studentID, quizIDs)
	if err != nil {
		return nil, err
	}

	return dto.NewCourseProgressResp(courseID, studentID,
		int64(len(lessonIDs)), lessonsDone, int64(len(quizIDs)), quizzesDone), nil
}

// SubmitAssignment stores a student hand-in. Submissions after the due
// date are rejected; one hand-in per student per assignment.
func SubmitAssignment(contentID, studentID int, req *dto.SubmitAssignmentReq) (*dto.AssignmentSubmissionResp, error) {
	var submission *database.AssignmentSubmission
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		content, err := repository.GetContentByID(tx, contentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: assignment not found", consts.ErrNotFound)
			}
			return err
		}
		if content.ContentType != consts.ContentAssignment || content.Assignment == nil {
			return fmt.Errorf("%w: content is not an assignment", consts.ErrValidation)
		}

		if content.Assignment.DueAt != nil && time.Now().After(*content.Assignment.DueAt) {
			return fmt.Errorf("%w: assignment is past its due date", consts.ErrValidation)
		}

		submission = &database.AssignmentSubmission{
			AssignmentID: content.Assignment.ID,
			StudentID:    studentID,
			FileURL:      req.FileURL,
			Note:         req.Note,
		}
		if err := repository.CreateAssignmentSubmission(tx, submission); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: assignment has already been submitted", consts.ErrConflict)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return dto.NewAssignmentSubmissionResp(submission), nil
}

// ListAssignmentSubmissions returns a page of an assignment's hand-ins
func ListAssignmentSubmissions(contentID int, req *dto.PaginationReq) (*dto.PagedResult[dto.AssignmentSubmissionResp], error) {
	req.Normalize()

	assignment, err := resolveAssignment(contentID)
	if err != nil {
		return nil, err
	}

	total, submissions, err := repository.ListAssignmentSubmissions(database.DB, assignment.ID, req)
	if err != nil {
		return nil, err
	}

	items := make([]dto.AssignmentSubmissionResp, 0, len(submissions))
	for i := range submissions {
		items = append(items, *dto.NewAssignmentSubmissionResp(&submissions[i]))
	}
	return dto.NewPagedResult(items, total, req), nil
}

// GradeAssignmentSubmission records a lecturer's grade and feedback. The
// grade is capped by the assignment's max points.
func GradeAssignmentSubmission(submissionID int, req *dto.GradeAssignmentReq) (*dto.AssignmentSubmissionResp, error) {
	var submission *database.AssignmentSubmission
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		submission, err = repository.GetAssignmentSubmissionByID(tx, submissionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: submission not found", consts.ErrNotFound)
			}
			return err
		}

		assignment, err := repository.GetAssignmentByID(tx, submission.AssignmentID)
		if err != nil {
			return err
		}
		if req.Grade > assignment.MaxPoints {
			return fmt.Errorf("%w: grade exceeds the %d point maximum",
				consts.ErrValidation, assignment.MaxPoints)
		}

		now := time.Now()
		submission.Grade = &req.Grade
		submission.Feedback = req.Feedback
		submission.GradedAt = &now
		return repository.UpdateAssignmentSubmission(tx, submission)
	})
	if err != nil {
		return nil, err
	}

	return dto.NewAssignmentSubmissionResp(submission), nil
}

// GetMyAssignmentSubmission returns the caller's own hand-in
func GetMyAssignmentSubmission(contentID, studentID int) (*dto.AssignmentSubmissionResp, error) {
	assignment, err := resolveAssignment(contentID)
	if err != nil {
		return nil, err
	}

	submission, err := repository.GetAssignmentSubmission(database.DB, assignment.ID, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no submission for this assignment", consts.ErrNotFound)
		}
		return nil, err
	}
	return dto.NewAssignmentSubmissionResp(submission), nil
}

func resolveAssignment(contentID int) (*database.Assignment, error) {
	content, err := repository.GetContentByID(database.DB, contentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: assignment not found", consts.ErrNotFound)
		}
		return nil, err
	}
	if content.ContentType != consts.ContentAssignment || content.Assignment == nil {
		return nil, fmt.Errorf("%w: content is not an assignment", consts.ErrValidation)
	}
	return content.Assignment, nil
}
