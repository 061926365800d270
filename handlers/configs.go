package handlers

import (
	"net/http"

	"campus/consts"
	"campus/dto"
	"campus/service"

	"github.com/gin-gonic/gin"
)

// GetConfig handles an admin config read
//
//	@Summary		Get config entry
//	@Description	Read a config entry by key, public or private
//	@Tags			SystemConfig
//	@ID				get_config
//	@Produce		json
//	@Security		BearerAuth
//	@Param			key	path		string									true	"Config key"
//	@Success		200	{object}	dto.APIResponse[dto.SystemConfigResp]	"Config entry"
//	@Failure		400	{object}	dto.APIResponse[any]					"Malformed key"
//	@Failure		404	{object}	dto.APIResponse[any]					"Key not found"
//	@Failure		500	{object}	dto.APIResponse[any]					"Internal server error"
//	@Router			/api/v1/configs/{key} [get]
func GetConfig(c *gin.Context) {
	key := c.Param(consts.URLPathKey)

	resp, err := service.GetConfig(c.Request.Context(), key)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Config retrieved", resp)
}

// UpsertConfig handles config create-or-update
//
//	@Summary		Upsert config entry
//	@Description	Create or replace a config entry and drop its cache
//	@Tags			SystemConfig
//	@ID				upsert_config
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			key		path		string									true	"Config key"
//	@Param			request	body		dto.UpsertConfigReq						true	"Config value"
//	@Success		200		{object}	dto.APIResponse[dto.SystemConfigResp]	"Config stored"
//	@Failure		400		{object}	dto.APIResponse[any]					"Malformed key or request"
//	@Failure		500		{object}	dto.APIResponse[any]					"Internal server error"
//	@Router			/api/v1/configs/{key} [put]
func UpsertConfig(c *gin.Context) {
	key := c.Param(consts.URLPathKey)

	var req dto.UpsertConfigReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	resp, err := service.UpsertConfig(c.Request.Context(), key, &req)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Config stored", resp)
}

// ListConfigs handles the full admin config list
//
//	@Summary		List config entries
//	@Description	List every config entry including private ones
//	@Tags			SystemConfig
//	@ID				list_configs
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.APIResponse[[]dto.SystemConfigResp]	"Config list"
//	@Failure		500	{object}	dto.APIResponse[any]					"Internal server error"
//	@Router			/api/v1/configs [get]
func ListConfigs(c *gin.Context) {
	resp, err := service.ListConfigs()
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Configs retrieved", resp)
}

// DeleteConfig handles config deletion
//
//	@Summary		Delete config entry
//	@Description	Soft-delete a config entry and drop its cache
//	@Tags			SystemConfig
//	@ID				delete_config
//	@Produce		json
//	@Security		BearerAuth
//	@Param			key	path		string					true	"Config key"
//	@Success		200	{object}	dto.APIResponse[any]	"Config deleted"
//	@Failure		404	{object}	dto.APIResponse[any]	"Key not found"
//	@Failure		500	{object}	dto.APIResponse[any]	"Internal server error"
//	@Router			/api/v1/configs/{key} [delete]
func DeleteConfig(c *gin.Context) {
	key := c.Param(consts.URLPathKey)

	err := service.DeleteConfig(c.Request.Context(), key)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse[any](c, "Config deleted", nil)
}

// GetPublicConfig handles an unauthenticated public config read
//
//	@Summary		Get public config entry
//	@Description	Read a public config entry; private keys read as not found
//	@Tags			SystemConfig
//	@ID				get_public_config
//	@Produce		json
//	@Param			key	path		string									true	"Config key"
//	@Success		200	{object}	dto.APIResponse[dto.PublicConfigResp]	"Config entry"
//	@Failure		404	{object}	dto.APIResponse[any]					"Key not found"
//	@Failure		500	{object}	dto.APIResponse[any]					"Internal server error"
//	@Router			/api/v1/public/configs/{key} [get]
func GetPublicConfig(c *gin.Context) {
	key := c.Param(consts.URLPathKey)

	resp, err := service.GetPublicConfig(c.Request.Context(), key)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Config retrieved", resp)
}

// ListPublicConfigs handles the unauthenticated public config list
//
//	@Summary		List public config entries
//	@Description	List config entries flagged public
//	@Tags			SystemConfig
//	@ID				list_public_configs
//	@Produce		json
//	@Success		200	{object}	dto.APIResponse[[]dto.PublicConfigResp]	"Config list"
//	@Failure		500	{object}	dto.APIResponse[any]					"Internal server error"
//	@Router			/api/v1/public/configs [get]
func ListPublicConfigs(c *gin.Context) {
	resp, err := service.ListPublicConfigs()
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Configs retrieved", resp)
}
