package handlers

import (
	"net/http"

	"campus/consts"
	"campus/dto"
	"campus/service"

	"github.com/gin-gonic/gin"
)

// CreateChapter handles chapter creation under a course
//
//	@Summary		Create chapter
//	@Description	Add a chapter to a course; sort order defaults to the end
//	@Tags			Chapters
//	@ID				create_chapter
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int								true	"Course ID"
//	@Param			request		body		dto.CreateChapterReq			true	"Chapter creation request"
//	@Success		201			{object}	dto.APIResponse[dto.ChapterResp]	"Chapter created"
//	@Failure		400			{object}	dto.APIResponse[any]			"Invalid request"
//	@Failure		404			{object}	dto.APIResponse[any]			"Course not found"
//	@Failure		500			{object}	dto.APIResponse[any]			"Internal server error"
//	@Router			/api/v1/courses/{id}/chapters [post]
func CreateChapter(c *gin.Context) {
	courseID, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	var req dto.CreateChapterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request parameters: "+err.Error())
		return
	}

	resp, err := service.CreateChapter(courseID, &req)
	if HandleServiceError(c, err) {
		return
	}

	dto.JSONResponse(c, http.StatusCreated, "Chapter created", resp)
}

// GetChapter handles fetching a single chapter
//
//	@Summary		Get chapter by ID
//	@Description	Get a chapter with its content summaries
//	@Tags			Chapters
//	@ID				get_chapter
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int									true	"Chapter ID"
//	@Success		200	{object}	dto.APIResponse[dto.ChapterResp]	"Chapter detail"
//	@Failure		404	{object}	dto.APIResponse[any]				"Chapter not found"
//	@Failure		500	{object}	dto.APIResponse[any]				"Internal server error"
//	@Router			/api/v1/chapters/{id} [get]
func GetChapter(c *gin.Context) {
	id, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	resp, err := service.GetChapter(id)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Chapter retrieved", resp)
}

// ListChapters handles the ordered chapter list of a course
//
//	@Summary		List chapters
//	@Description	List a course's live chapters in sort order
//	@Tags			Chapters
//	@ID				list_chapters
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int									true	"Course ID"
//	@Success		200			{object}	dto.APIResponse[[]dto.ChapterResp]	"Chapter list"
//	@Failure		404			{object}	dto.APIResponse[any]				"Course not found"
//	@Failure		500			{object}	dto.APIResponse[any]				"Internal server error"
//	@Router			/api/v1/courses/{id}/chapters [get]
func ListChapters(c *gin.Context) {
	courseID, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	resp, err := service.ListChapters(courseID)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Chapters retrieved", resp)
}

// UpdateChapter handles a partial chapter update
//
//	@Summary		Update chapter
//	@Description	Apply a partial update; omitted fields stay unchanged
//	@Tags			Chapters
//	@ID				update_chapter
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int									true	"Chapter ID"
//	@Param			request	body		dto.UpdateChapterReq				true	"Partial update"
//	@Success		200		{object}	dto.APIResponse[dto.ChapterResp]	"Chapter updated"
//	@Failure		400		{object}	dto.APIResponse[any]				"Invalid request"
//	@Failure		404		{object}	dto.APIResponse[any]				"Chapter not found"
//	@Failure		500		{object}	dto.APIResponse[any]				"Internal server error"
//	@Router			/api/v1/chapters/{id} [put]
func UpdateChapter(c *gin.Context) {
	id, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	var req dto.UpdateChapterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	resp, err := service.UpdateChapter(id, &req)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Chapter updated", resp)
}

// ReorderChapters handles wholesale chapter reordering
//
//	@Summary		Reorder chapters
//	@Description	Reposition every live chapter of a course in one call
//	@Tags			Chapters
//	@ID				reorder_chapters
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int									true	"Course ID"
//	@Param			request		body		dto.ReorderChaptersReq				true	"New chapter order"
//	@Success		200			{object}	dto.APIResponse[[]dto.ChapterResp]	"Chapters reordered"
//	@Failure		400			{object}	dto.APIResponse[any]				"Order does not cover the course's chapters"
//	@Failure		404			{object}	dto.APIResponse[any]				"Course not found"
//	@Failure		500			{object}	dto.APIResponse[any]				"Internal server error"
//	@Router			/api/v1/courses/{id}/chapters/reorder [put]
func ReorderChapters(c *gin.Context) {
	courseID, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	var req dto.ReorderChaptersReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request parameters: "+err.Error())
		return
	}

	resp, err := service.ReorderChapters(courseID, &req)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Chapters reordered", resp)
}

// DeleteChapter handles chapter soft deletion
//
//	@Summary		Delete chapter
//	@Description	Soft-delete a chapter along with its contents
//	@Tags			Chapters
//	@ID				delete_chapter
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int						true	"Chapter ID"
//	@Success		200	{object}	dto.APIResponse[any]	"Chapter deleted"
//	@Failure		404	{object}	dto.APIResponse[any]	"Chapter not found"
//	@Failure		500	{object}	dto.APIResponse[any]	"Internal server error"
//	@Router			/api/v1/chapters/{id} [delete]
func DeleteChapter(c *gin.Context) {
	id, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	err := service.DeleteChapter(id)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse[any](c, "Chapter deleted", nil)
}
