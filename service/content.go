package service

import (
	"errors"
	"fmt"

	"campus/consts"
	"campus/database"
	"campus/dto"
	"campus/repository"

	"gorm.io/gorm"
)

// CreateContent creates the shared row plus its variant row in one
// transaction so a half-created content can never be observed.
func CreateContent(chapterID int, req *dto.CreateContentReq) (*dto.ContentResp, error) {
	var contentID int
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := repository.GetChapterByID(tx, chapterID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: chapter not found", consts.ErrNotFound)
			}
			return err
		}

		sortOrder := 0
		if req.SortOrder != nil {
			sortOrder = *req.SortOrder
		} else {
			var err error
			sortOrder, err = repository.NextContentSortOrder(tx, chapterID)
			if err != nil {
				return err
			}
		}

		content := &database.CourseContent{
			ChapterID:   chapterID,
			Title:       req.Title,
			ContentType: req.ContentType,
			SortOrder:   sortOrder,
		}
		if err := repository.CreateContent(tx, content); err != nil {
			return err
		}
		contentID = content.ID

		switch req.ContentType {
		case consts.ContentLesson:
			return repository.CreateLesson(tx, &database.Lesson{
				ContentID:       content.ID,
				Body:            req.Lesson.Body,
				VideoURL:        req.Lesson.VideoURL,
				DurationMinutes: req.Lesson.DurationMinutes,
			})
		case consts.ContentQuiz:
			duration := req.Quiz.DurationMinutes
			if duration == 0 {
				duration = 30
			}
			return repository.CreateQuiz(tx, &database.Quiz{
				ContentID:       content.ID,
				DurationMinutes: duration,
				Shuffle:         req.Quiz.Shuffle,
			})
		case consts.ContentAssignment:
			maxPoints := req.Assignment.MaxPoints
			if maxPoints == 0 {
				maxPoints = 100
			}
			return repository.CreateAssignment(tx, &database.Assignment{
				ContentID:    content.ID,
				Instructions: req.Assignment.Instructions,
				DueAt:        req.Assignment.DueAt,
				MaxPoints:    maxPoints,
			})
		}
		return fmt.Errorf("%w: unsupported content type %s", consts.ErrValidation, req.ContentType)
	})
	if err != nil {
		return nil, err
	}

	return GetContent(contentID)
}

// ListContents returns a chapter's contents in sort order, each in the
// full tagged-union shape
func ListContents(chapterID int) ([]dto.ContentResp, error) {
	if _, err := repository.GetChapterByID(database.DB, chapterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: chapter not found", consts.ErrNotFound)
		}
		return nil, err
	}

	contents, err := repository.ListContentsByChapter(database.DB, chapterID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ContentResp, 0, len(contents))
	for i := range contents {
		items = append(items, *dto.NewContentResp(&contents[i]))
	}
	return items, nil
}

// GetContent returns the full tagged-union content shape
func GetContent(id int) (*dto.ContentResp, error) {
	content, err := repository.GetContentByID(database.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: content not found", consts.ErrNotFound)
		}
		return nil, err
	}
	return dto.NewContentResp(content), nil
}

// UpdateContent patches the shared row and, when the matching payload is
// present, the variant row. The content type itself never changes.
func UpdateContent(id int, req *dto.UpdateContentReq) (*dto.ContentResp, error) {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		content, err := repository.GetContentByID(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: content not found", consts.ErrNotFound)
			}
			return err
		}

		if err := req.Validate(content.ContentType); err != nil {
			return fmt.Errorf("%w: %v", consts.ErrValidation, err)
		}

		req.Patch(content)
		if err := repository.UpdateContent(tx, content); err != nil {
			return err
		}

		switch {
		case req.Lesson != nil && content.Lesson != nil:
			content.Lesson.Body = req.Lesson.Body
			content.Lesson.VideoURL = req.Lesson.VideoURL
			content.Lesson.DurationMinutes = req.Lesson.DurationMinutes
			return repository.UpdateLesson(tx, content.Lesson)
		case req.Quiz != nil && content.Quiz != nil:
			if req.Quiz.DurationMinutes > 0 {
				content.Quiz.DurationMinutes = req.Quiz.DurationMinutes
			}
			content.Quiz.Shuffle = req.Quiz.Shuffle
			return repository.UpdateQuiz(tx, content.Quiz)
		case req.Assignment != nil && content.Assignment != nil:
			content.Assignment.Instructions = req.Assignment.Instructions
			content.Assignment.DueAt = req.Assignment.DueAt
			if req.Assignment.MaxPoints > 0 {
				content.Assignment.MaxPoints = req.Assignment.MaxPoints
			}
			return repository.UpdateAssignment(tx, content.Assignment)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return GetContent(id)
}

// DeleteContent soft-deletes a content row; submissions keep resolving
func DeleteContent(id int) error {
	if err := repository.SoftDeleteContent(database.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: content not found", consts.ErrNotFound)
		}
		return err
	}
	return nil
}
