package handlers

import (
	"net/http"

	"campus/consts"
	"campus/dto"
	"campus/service"

	"github.com/gin-gonic/gin"
)

// CreateContent handles content creation under a chapter
//
//	@Summary		Create content
//	@Description	Add a lesson, quiz or assignment to a chapter
//	@Tags			Contents
//	@ID				create_content
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int									true	"Chapter ID"
//	@Param			request		body		dto.CreateContentReq				true	"Content creation request"
//	@Success		201			{object}	dto.APIResponse[dto.ContentResp]	"Content created"
//	@Failure		400			{object}	dto.APIResponse[any]				"Invalid request or payload mismatch"
//	@Failure		404			{object}	dto.APIResponse[any]				"Chapter not found"
//	@Failure		500			{object}	dto.APIResponse[any]				"Internal server error"
//	@Router			/api/v1/chapters/{id}/contents [post]
func CreateContent(c *gin.Context) {
	chapterID, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	var req dto.CreateContentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request parameters: "+err.Error())
		return
	}

	resp, err := service.CreateContent(chapterID, &req)
	if HandleServiceError(c, err) {
		return
	}

	dto.JSONResponse(c, http.StatusCreated, "Content created", resp)
}

// ListChapterContents handles listing a chapter's contents
//
//	@Summary		List chapter contents
//	@Description	List a chapter's contents in sort order, each with its lesson, quiz or assignment payload
//	@Tags			Contents
//	@ID				list_chapter_contents
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int									true	"Chapter ID"
//	@Success		200	{object}	dto.APIResponse[[]dto.ContentResp]	"Content list"
//	@Failure		404	{object}	dto.APIResponse[any]				"Chapter not found"
//	@Failure		500	{object}	dto.APIResponse[any]				"Internal server error"
//	@Router			/api/v1/chapters/{id}/contents [get]
func ListChapterContents(c *gin.Context) {
	chapterID, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	resp, err := service.ListContents(chapterID)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Contents retrieved", resp)
}

// GetContent handles fetching a single content item with its variant payload
//
//	@Summary		Get content by ID
//	@Description	Get a content item including its lesson, quiz or assignment payload
//	@Tags			Contents
//	@ID				get_content
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int									true	"Content ID"
//	@Success		200	{object}	dto.APIResponse[dto.ContentResp]	"Content detail"
//	@Failure		404	{object}	dto.APIResponse[any]				"Content not found"
//	@Failure		500	{object}	dto.APIResponse[any]				"Internal server error"
//	@Router			/api/v1/contents/{id} [get]
func GetContent(c *gin.Context) {
	id, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	resp, err := service.GetContent(id)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Content retrieved", resp)
}

// UpdateContent handles a partial content update
//
//	@Summary		Update content
//	@Description	Apply a partial update to shared fields and the typed payload
//	@Tags			Contents
//	@ID				update_content
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int									true	"Content ID"
//	@Param			request	body		dto.UpdateContentReq				true	"Partial update"
//	@Success		200		{object}	dto.APIResponse[dto.ContentResp]	"Content updated"
//	@Failure		400		{object}	dto.APIResponse[any]				"Invalid request or payload mismatch"
//	@Failure		404		{object}	dto.APIResponse[any]				"Content not found"
//	@Failure		500		{object}	dto.APIResponse[any]				"Internal server error"
//	@Router			/api/v1/contents/{id} [put]
func UpdateContent(c *gin.Context) {
	id, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	var req dto.UpdateContentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	resp, err := service.UpdateContent(id, &req)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Content updated", resp)
}

// DeleteContent handles content soft deletion
//
//	@Summary		Delete content
//	@Description	Soft-delete a content item; submission history survives
//	@Tags			Contents
//	@ID				delete_content
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int						true	"Content ID"
//	@Success		200	{object}	dto.APIResponse[any]	"Content deleted"
//	@Failure		404	{object}	dto.APIResponse[any]	"Content not found"
//	@Failure		500	{object}	dto.APIResponse[any]	"Internal server error"
//	@Router			/api/v1/contents/{id} [delete]
func DeleteContent(c *gin.Context) {
	id, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	err := service.DeleteContent(id)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse[any](c, "Content deleted", nil)
}
