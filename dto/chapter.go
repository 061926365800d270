package dto

import (
	"fmt"
	"strings"
	"time"

	"campus/database"
)

type CreateChapterReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	SortOrder   *int   `json:"sortOrder,omitempty" binding:"omitempty,min=0"`
}

func (req *CreateChapterReq) Validate() error {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return fmt.Errorf("chapter title cannot be empty")
	}
	return nil
}

type UpdateChapterReq struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	SortOrder   *int    `json:"sortOrder,omitempty" binding:"omitempty,min=0"`
}

func (req *UpdateChapterReq) Patch(target *database.Chapter) {
	if req.Title != nil {
		target.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		target.Description = *req.Description
	}
	if req.SortOrder != nil {
		target.SortOrder = *req.SortOrder
	}
}

// ReorderChaptersReq carries the full ordering of a course's chapters.
// Every surviving chapter of the course must appear exactly once.
type ReorderChaptersReq struct {
	ChapterIDs []int `json:"chapterIds" binding:"required,min=1,positive_ids"`
}

func (req *ReorderChaptersReq) Validate() error {
	seen := make(map[int]struct{}, len(req.ChapterIDs))
	for _, id := range req.ChapterIDs {
		if id <= 0 {
			return fmt.Errorf("chapter id must be positive, got %d", id)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("chapter id %d appears more than once", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

type ChapterResp struct {
	ID          int                  `json:"id"`
	CourseID    int                  `json:"courseId"`
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	SortOrder   int                  `json:"sortOrder"`
	Contents    []ContentSummaryResp `json:"contents"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

func NewChapterResp(ch *database.Chapter) *ChapterResp {
	resp := &ChapterResp{
		ID:          ch.ID,
		CourseID:    ch.CourseID,
		Title:       ch.Title,
		Description: ch.Description,
		SortOrder:   ch.SortOrder,
		Contents:    []ContentSummaryResp{},
		CreatedAt:   ch.CreatedAt,
		UpdatedAt:   ch.UpdatedAt,
	}
	for i := range ch.Contents {
		if ch.Contents[i].IsDeleted {
			continue
		}
		resp.Contents = append(resp.Contents, *NewContentSummaryResp(&ch.Contents[i]))
	}
	return resp
}
