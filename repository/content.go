package repository

import (
	"fmt"

	"campus/consts"
	"campus/database"

	"gorm.io/gorm"
)

// CreateContent creates the shared content row. The variant row is created
// by the type-specific helpers below inside the same transaction.
func CreateContent(db *gorm.DB, content *database.CourseContent) error {
	if err := db.Create(content).Error; err != nil {
		return fmt.Errorf("failed to create content: %w", err)
	}
	return nil
}

// GetContentByID gets a live content row with its variant preloaded. Quiz
// contents additionally carry their question links.
func GetContentByID(db *gorm.DB, id int) (*database.CourseContent, error) {
	var content database.CourseContent
	if err := db.Scopes(database.NotDeleted).
		Preload("Lesson").
		Preload("Quiz.Questions").
		Preload("Assignment").
		First(&content, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get content %d: %w", id, err)
	}
	return &content, nil
}

// ListContentsByChapter returns a chapter's live contents in sort order
// with their variants preloaded
func ListContentsByChapter(db *gorm.DB, chapterID int) ([]database.CourseContent, error) {
	var contents []database.CourseContent
	if err := db.Scopes(database.NotDeleted).
		Where("chapter_id = ?", chapterID).
		Preload("Lesson").
		Preload("Quiz.Questions").
		Preload("Assignment").
		Order("sort_order, id").
		Find(&contents).Error; err != nil {
		return nil, fmt.Errorf("failed to list contents for chapter %d: %w", chapterID, err)
	}
	return contents, nil
}

// NextContentSortOrder returns the next free sort position in a chapter
func NextContentSortOrder(db *gorm.DB, chapterID int) (int, error) {
	var max *int
	if err := db.Model(&database.CourseContent{}).
		Scopes(database.NotDeleted).
		Where("chapter_id = ?", chapterID).
		Select("MAX(sort_order)").
		Scan(&max).Error; err != nil {
		return 0, fmt.Errorf("failed to compute content sort order: %w", err)
	}
	if max == nil {
		return 0, nil
	}
	return *max + 1, nil
}

// UpdateContent persists changes to the shared content row
func UpdateContent(db *gorm.DB, content *database.CourseContent) error {
	if err := db.Save(content).Error; err != nil {
		return fmt.Errorf("failed to update content: %w", err)
	}
	return nil
}

// SoftDeleteContent marks a content row deleted. The variant row stays so
// existing submissions keep resolving.
func SoftDeleteContent(db *gorm.DB, id int) error {
	result := db.Model(&database.CourseContent{}).
		Scopes(database.NotDeleted).
		Where("id = ?", id).
		Update("is_deleted", true)
	if result.Error != nil {
		return fmt.Errorf("failed to delete content %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete content %d: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// CreateLesson creates a lesson variant row
func CreateLesson(db *gorm.DB, lesson *database.Lesson) error {
	if err := db.Create(lesson).Error; err != nil {
		return fmt.Errorf("failed to create lesson: %w", err)
	}
	return nil
}

// UpdateLesson persists changes to a lesson variant row
func UpdateLesson(db *gorm.DB, lesson *database.Lesson) error {
	if err := db.Save(lesson).Error; err != nil {
		return fmt.Errorf("failed to update lesson: %w", err)
	}
	return nil
}

// CreateQuiz creates a quiz variant row
func CreateQuiz(db *gorm.DB, quiz *database.Quiz) error {
	if err := db.Create(quiz).Error; err != nil {
		return fmt.Errorf("failed to create quiz: %w", err)
	}
	return nil
}

// GetQuizByID gets a quiz variant row with questions and their answers
func GetQuizByID(db *gorm.DB, id int) (*database.Quiz, error) {
	var quiz database.Quiz
	if err := db.Preload("Questions.Question.Answers").
		First(&quiz, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get quiz %d: %w", id, err)
	}
	return &quiz, nil
}

// UpdateQuiz persists changes to a quiz variant row
func UpdateQuiz(db *gorm.DB, quiz *database.Quiz) error {
	if err := db.Save(quiz).Error; err != nil {
		return fmt.Errorf("failed to update quiz: %w", err)
	}
	return nil
}

// CreateAssignment creates an assignment variant row
func CreateAssignment(db *gorm.DB, assignment *database.Assignment) error {
	if err := db.Create(assignment).Error; err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}
	return nil
}

// GetAssignmentByID gets an assignment variant row
func GetAssignmentByID(db *gorm.DB, id int) (*database.Assignment, error) {
	var assignment database.Assignment
	if err := db.First(&assignment, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get assignment %d: %w", id, err)
	}
	return &assignment, nil
}

// UpdateAssignment persists changes to an assignment variant row
func UpdateAssignment(db *gorm.DB, assignment *database.Assignment) error {
	if err := db.Save(assignment).Error; err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
	}
	return nil
}

// CountContentsByCourse counts live contents of one type across a course
func CountContentsByCourse(db *gorm.DB, courseID int, contentType consts.ContentType) (int64, error) {
	var count int64
	if err := db.Model(&database.CourseContent{}).
		Scopes(database.NotDeleted).
		Where("content_type = ?", contentType).
		Where("chapter_id IN (?)",
			db.Session(&gorm.Session{NewDB: true}).
				Model(&database.Chapter{}).
				Select("id").
				Where("course_id = ? AND is_deleted = ?", courseID, false)).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count contents: %w", err)
	}
	return count, nil
}

// ListContentVariantIDsByCourse resolves the variant row IDs of one content
// type across a course, e.g. all lesson IDs for progress computation.
func ListContentVariantIDsByCourse(db *gorm.DB, courseID int, contentType consts.ContentType) ([]int, error) {
	var contentIDs []int
	if err := db.Model(&database.CourseContent{}).
		Scopes(database.NotDeleted).
		Where("content_type = ?", contentType).
		Where("chapter_id IN (?)",
			db.Session(&gorm.Session{NewDB: true}).
				Model(&database.Chapter{}).
				Select("id").
				Where("course_id = ? AND is_deleted = ?", courseID, false)).
		Pluck("id", &contentIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to list content ids: %w", err)
	}

	if len(contentIDs) == 0 {
		return []int{}, nil
	}

	var variantIDs []int
	var err error
	switch contentType {
	case consts.ContentLesson:
		err = db.Model(&database.Lesson{}).Where("content_id IN ?", contentIDs).Pluck("id", &variantIDs).Error
	case consts.ContentQuiz:
		err = db.Model(&database.Quiz{}).Where("content_id IN ?", contentIDs).Pluck("id", &variantIDs).Error
	case consts.ContentAssignment:
		err = db.Model(&database.Assignment{}).Where("content_id IN ?", contentIDs).Pluck("id", &variantIDs).Error
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve variant ids: %w", err)
	}
	return variantIDs, nil
}
