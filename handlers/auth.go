package handlers

import (
	"net/http"

	"campus/dto"
	"campus/middleware"
	"campus/service"

	"github.com/gin-gonic/gin"
)

// Login handles credential authentication
//
//	@Summary		Log in
//	@Description	Authenticate with username and password, returning a token pair
//	@Tags			Auth
//	@ID				login
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginReq						true	"Login request"
//	@Success		200		{object}	dto.APIResponse[dto.TokenResp]		"Authenticated successfully"
//	@Failure		400		{object}	dto.APIResponse[any]				"Invalid request format"
//	@Failure		401		{object}	dto.APIResponse[any]				"Invalid credentials"
//	@Failure		500		{object}	dto.APIResponse[any]				"Internal server error"
//	@Router			/api/v1/auth/login [post]
func Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request parameters: "+err.Error())
		return
	}

	resp, err := service.Login(c.Request.Context(), &req)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Authenticated successfully", resp)
}

// Register handles student self-registration
//
//	@Summary		Register
//	@Description	Create a student account and return a token pair
//	@Tags			Auth
//	@ID				register
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterReq						true	"Registration request"
//	@Success		201		{object}	dto.APIResponse[dto.TokenResp]		"Account created"
//	@Failure		400		{object}	dto.APIResponse[any]				"Invalid request or username/email taken"
//	@Failure		500		{object}	dto.APIResponse[any]				"Internal server error"
//	@Router			/api/v1/auth/register [post]
func Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request parameters: "+err.Error())
		return
	}

	resp, err := service.Register(c.Request.Context(), &req)
	if HandleServiceError(c, err) {
		return
	}

	dto.JSONResponse(c, http.StatusCreated, "Account created", resp)
}

// RefreshToken handles refresh-token rotation
//
//	@Summary		Refresh tokens
//	@Description	Exchange a refresh token for a new token pair
//	@Tags			Auth
//	@ID				refresh_token
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RefreshTokenReq					true	"Refresh request"
//	@Success		200		{object}	dto.APIResponse[dto.TokenResp]		"Tokens refreshed"
//	@Failure		400		{object}	dto.APIResponse[any]				"Invalid request format"
//	@Failure		401		{object}	dto.APIResponse[any]				"Invalid or revoked refresh token"
//	@Failure		500		{object}	dto.APIResponse[any]				"Internal server error"
//	@Router			/api/v1/auth/refresh [post]
func RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	resp, err := service.RefreshToken(c.Request.Context(), &req)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Tokens refreshed", resp)
}

// Logout handles session revocation
//
//	@Summary		Log out
//	@Description	Revoke the presented refresh token
//	@Tags			Auth
//	@ID				logout
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.RefreshTokenReq		true	"Logout request"
//	@Success		200		{object}	dto.APIResponse[any]	"Logged out"
//	@Failure		400		{object}	dto.APIResponse[any]	"Invalid request format"
//	@Failure		401		{object}	dto.APIResponse[any]	"Invalid refresh token"
//	@Failure		500		{object}	dto.APIResponse[any]	"Internal server error"
//	@Router			/api/v1/auth/logout [post]
func Logout(c *gin.Context) {
	var req dto.RefreshTokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	err := service.Logout(c.Request.Context(), &req)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse[any](c, "Logged out", nil)
}

// GetProfile returns the caller's own account
//
//	@Summary		Get profile
//	@Description	Get the authenticated account
//	@Tags			Auth
//	@ID				get_profile
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.APIResponse[dto.UserResp]	"Profile"
//	@Failure		401	{object}	dto.APIResponse[any]			"Authentication required"
//	@Failure		500	{object}	dto.APIResponse[any]			"Internal server error"
//	@Router			/api/v1/auth/profile [get]
func GetProfile(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		dto.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized: authentication required")
		return
	}

	resp, err := service.GetProfile(userID)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Profile retrieved", resp)
}

// UpdateProfile applies the caller's own partial profile update
//
//	@Summary		Update profile
//	@Description	Update the authenticated account's display fields
//	@Tags			Auth
//	@ID				update_profile
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.UpdateProfileReq			true	"Profile update"
//	@Success		200		{object}	dto.APIResponse[dto.UserResp]	"Profile updated"
//	@Failure		400		{object}	dto.APIResponse[any]			"Invalid request format"
//	@Failure		401		{object}	dto.APIResponse[any]			"Authentication required"
//	@Failure		500		{object}	dto.APIResponse[any]			"Internal server error"
//	@Router			/api/v1/auth/profile [put]
func UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		dto.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized: authentication required")
		return
	}

	var req dto.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	resp, err := service.UpdateProfile(userID, &req)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Profile updated", resp)
}

// ChangePassword rotates the caller's password
//
//	@Summary		Change password
//	@Description	Verify the old password and store a new one
//	@Tags			Auth
//	@ID				change_password
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.ChangePasswordReq	true	"Password change"
//	@Success		200		{object}	dto.APIResponse[any]	"Password changed"
//	@Failure		400		{object}	dto.APIResponse[any]	"Invalid request format"
//	@Failure		401		{object}	dto.APIResponse[any]	"Old password incorrect"
//	@Failure		500		{object}	dto.APIResponse[any]	"Internal server error"
//	@Router			/api/v1/auth/password [put]
func ChangePassword(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		dto.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized: authentication required")
		return
	}

	var req dto.ChangePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request parameters: "+err.Error())
		return
	}

	err := service.ChangePassword(c.Request.Context(), userID, &req)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse[any](c, "Password changed", nil)
}
