package repository

import (
	"fmt"

	"campus/database"

	"gorm.io/gorm"
)

// CreateChapter creates a chapter
func CreateChapter(db *gorm.DB, chapter *database.Chapter) error {
	if err := db.Create(chapter).Error; err != nil {
		return fmt.Errorf("failed to create chapter: %w", err)
	}
	return nil
}

// GetChapterByID gets a live chapter with its live contents ordered
func GetChapterByID(db *gorm.DB, id int) (*database.Chapter, error) {
	var chapter database.Chapter
	if err := db.Scopes(database.NotDeleted).
		Preload("Contents", func(query *gorm.DB) *gorm.DB {
			return query.Scopes(database.NotDeleted).Order("sort_order, id")
		}).
		First(&chapter, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get chapter %d: %w", id, err)
	}
	return &chapter, nil
}

// ListChaptersByCourse returns all live chapters of a course in display order
func ListChaptersByCourse(db *gorm.DB, courseID int) ([]database.Chapter, error) {
	var chapters []database.Chapter
	if err := db.Scopes(database.NotDeleted).
		Where("course_id = ?", courseID).
		Order("sort_order, id").
		Find(&chapters).Error; err != nil {
		return nil, fmt.Errorf("failed to list chapters: %w", err)
	}
	return chapters, nil
}

// NextChapterSortOrder returns the next free sort position in a course
func NextChapterSortOrder(db *gorm.DB, courseID int) (int, error) {
	var max *int
	if err := db.Model(&database.Chapter{}).
		Scopes(database.NotDeleted).
		Where("course_id = ?", courseID).
		Select("MAX(sort_order)").
		Scan(&max).Error; err != nil {
		return 0, fmt.Errorf("failed to compute chapter sort order: %w", err)
	}
	if max == nil {
		return 0, nil
	}
	return *max + 1, nil
}

// UpdateChapter persists changes to a chapter row
func UpdateChapter(db *gorm.DB, chapter *database.Chapter) error {
	if err := db.Save(chapter).Error; err != nil {
		return fmt.Errorf("failed to update chapter: %w", err)
	}
	return nil
}

// UpdateChapterSortOrder sets one chapter's position
func UpdateChapterSortOrder(db *gorm.DB, chapterID, sortOrder int) error {
	if err := db.Model(&database.Chapter{}).
		Where("id = ?", chapterID).
		Update("sort_order", sortOrder).Error; err != nil {
		return fmt.Errorf("failed to reorder chapter %d: %w", chapterID, err)
	}
	return nil
}

// SoftDeleteChapter marks a chapter and its contents deleted
func SoftDeleteChapter(db *gorm.DB, id int) error {
	result := db.Model(&database.Chapter{}).
		Scopes(database.NotDeleted).
		Where("id = ?", id).
		Update("is_deleted", true)
	if result.Error != nil {
		return fmt.Errorf("failed to delete chapter %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete chapter %d: %w", id, gorm.ErrRecordNotFound)
	}

	if err := db.Model(&database.CourseContent{}).
		Where("chapter_id = ?", id).
		Update("is_deleted", true).Error; err != nil {
		return fmt.Errorf("failed to delete chapter %d contents: %w", id, err)
	}
	return nil
}
