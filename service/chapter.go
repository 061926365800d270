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

// CreateChapter appends a chapter to a course. When no explicit position
// is given the chapter lands at the end of the course.
func CreateChapter(courseID int, req *dto.CreateChapterReq) (*dto.ChapterResp, error) {
	var chapter *database.Chapter
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := repository.GetCourseByID(tx, courseID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: course not found", consts.ErrNotFound)
			}
			return err
		}

		sortOrder := 0
		if req.SortOrder != nil {
			sortOrder = *req.SortOrder
		} else {
			var err error
			sortOrder, err = repository.NextChapterSortOrder(tx, courseID)
			if err != nil {
				return err
			}
		}

		chapter = &database.Chapter{
			CourseID:    courseID,
			Title:       req.Title,
			Description: req.Description,
			SortOrder:   sortOrder,
		}
		return repository.CreateChapter(tx, chapter)
	})
	if err != nil {
		return nil, err
	}

	return dto.NewChapterResp(chapter), nil
}

// GetChapter returns one chapter with its content summaries
func GetChapter(id int) (*dto.ChapterResp, error) {
	chapter, err := repository.GetChapterByID(database.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: chapter not found", consts.ErrNotFound)
		}
		return nil, err
	}
	return dto.NewChapterResp(chapter), nil
}

// ListChapters returns a course's chapters in display order
func ListChapters(courseID int) ([]dto.ChapterResp, error) {
	if _, err := repository.GetCourseByID(database.DB, courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: course not found", consts.ErrNotFound)
		}
		return nil, err
	}

	chapters, err := repository.ListChaptersByCourse(database.DB, courseID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ChapterResp, 0, len(chapters))
	for i := range chapters {
		items = append(items, *dto.NewChapterResp(&chapters[i]))
	}
	return items, nil
}

// UpdateChapter applies a partial chapter update
func UpdateChapter(id int, req *dto.UpdateChapterReq) (*dto.ChapterResp, error) {
	var chapter *database.Chapter
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		chapter, err = repository.GetChapterByID(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: chapter not found", consts.ErrNotFound)
			}
			return err
		}

		req.Patch(chapter)
		return repository.UpdateChapter(tx, chapter)
	})
	if err != nil {
		return nil, err
	}

	return dto.NewChapterResp(chapter), nil
}

// ReorderChapters applies a full explicit ordering of a course's chapters.
// The request must cover every live chapter exactly once.
func ReorderChapters(courseID int, req *dto.ReorderChaptersReq) ([]dto.ChapterResp, error) {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := repository.GetCourseByID(tx, courseID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: course not found", consts.ErrNotFound)
			}
			return err
		}

		chapters, err := repository.ListChaptersByCourse(tx, courseID)
		if err != nil {
			return err
		}

		if len(chapters) != len(req.ChapterIDs) {
			return fmt.Errorf("%w: ordering must cover all %d chapters", consts.ErrValidation, len(chapters))
		}

		known := make(map[int]struct{}, len(chapters))
		for i := range chapters {
			known[chapters[i].ID] = struct{}{}
		}
		for _, id := range req.ChapterIDs {
			if _, ok := known[id]; !ok {
				return fmt.Errorf("%w: chapter %d does not belong to this course", consts.ErrValidation, id)
			}
		}

		for position, id := range req.ChapterIDs {
			if err := repository.UpdateChapterSortOrder(tx, id, position); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ListChapters(courseID)
}

// DeleteChapter soft-deletes a chapter and its contents
func DeleteChapter(id int) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := repository.SoftDeleteChapter(tx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: chapter not found", consts.ErrNotFound)
			}
			return err
		}
		return nil
	})
}
