package handlers

import (
	"net/http"

	"campus/consts"
	"campus/dto"
	"campus/service"
	"campus/utils"

	"github.com/gin-gonic/gin"
)

// CreateUser handles account creation by an administrator
//
//	@Summary		Create a user
//	@Description	Create an account with an explicit role
//	@Tags			Users
//	@ID				create_user
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateUserReq				true	"User creation request"
//	@Success		201		{object}	dto.APIResponse[dto.UserResp]	"User created"
//	@Failure		400		{object}	dto.APIResponse[any]			"Invalid request or username/email taken"
//	@Failure		401		{object}	dto.APIResponse[any]			"Authentication required"
//	@Failure		403		{object}	dto.APIResponse[any]			"Admin role required"
//	@Failure		500		{object}	dto.APIResponse[any]			"Internal server error"
//	@Router			/api/v1/users [post]
func CreateUser(c *gin.Context) {
	var req dto.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request parameters: "+err.Error())
		return
	}

	resp, err := service.CreateUser(&req)
	if HandleServiceError(c, err) {
		return
	}

	dto.CreatedResponse(c, "User created", "/api/v1/users", resp)
}

// GetUser handles fetching one account with activity counts
//
//	@Summary		Get user by ID
//	@Description	Get one account plus enrollment and teaching counts
//	@Tags			Users
//	@ID				get_user
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int									true	"User ID"
//	@Success		200	{object}	dto.APIResponse[dto.UserDetailResp]	"User detail"
//	@Failure		400	{object}	dto.APIResponse[any]				"Invalid user ID"
//	@Failure		404	{object}	dto.APIResponse[any]				"User not found"
//	@Failure		500	{object}	dto.APIResponse[any]				"Internal server error"
//	@Router			/api/v1/users/{id} [get]
func GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	resp, err := service.GetUser(id)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "User retrieved", resp)
}

// ListUsers handles the paginated, filterable account list
//
//	@Summary		List users
//	@Description	List accounts with pagination, search and filters
//	@Tags			Users
//	@ID				list_users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			pageNumber	query		int		false	"Page number (default 1)"
//	@Param			pageSize	query		int		false	"Page size (default 10, max 100)"
//	@Param			searchTerm	query		string	false	"Substring match over username, email and full name"
//	@Param			roleId		query		int		false	"Filter by role"
//	@Param			departmentId	query	int		false	"Filter by department"
//	@Param			isActive	query		bool	false	"Filter by active flag"
//	@Success		200	{object}	dto.APIResponse[dto.PagedResult[dto.UserResp]]	"User page"
//	@Failure		401	{object}	dto.APIResponse[any]							"Authentication required"
//	@Failure		500	{object}	dto.APIResponse[any]							"Internal server error"
//	@Router			/api/v1/users [get]
func ListUsers(c *gin.Context) {
	var req dto.ListUserReq
	if err := c.ShouldBindQuery(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return
	}

	resp, err := service.ListUsers(&req)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Users retrieved", resp)
}

// UpdateUser handles a partial account update
//
//	@Summary		Update user
//	@Description	Apply a partial update; omitted fields stay unchanged
//	@Tags			Users
//	@ID				update_user
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int								true	"User ID"
//	@Param			request	body		dto.UpdateUserReq				true	"Partial update"
//	@Success		200		{object}	dto.APIResponse[dto.UserResp]	"User updated"
//	@Failure		400		{object}	dto.APIResponse[any]			"Invalid request or email taken"
//	@Failure		404		{object}	dto.APIResponse[any]			"User not found"
//	@Failure		500		{object}	dto.APIResponse[any]			"Internal server error"
//	@Router			/api/v1/users/{id} [put]
func UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	var req dto.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	resp, err := service.UpdateUser(id, &req)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "User updated", resp)
}

// DeleteUser handles account soft deletion
//
//	@Summary		Delete user
//	@Description	Soft-delete an account; blocked while it has live enrollments or managed courses
//	@Tags			Users
//	@ID				delete_user
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int						true	"User ID"
//	@Success		200	{object}	dto.APIResponse[any]	"User deleted"
//	@Failure		400	{object}	dto.APIResponse[any]	"Invalid user ID"
//	@Failure		404	{object}	dto.APIResponse[any]	"User not found"
//	@Failure		500	{object}	dto.APIResponse[any]	"Internal server error"
//	@Router			/api/v1/users/{id} [delete]
func DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	err := service.DeleteUser(c.Request.Context(), id)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse[any](c, "User deleted", nil)
}

// SetUserActive enables or disables an account
//
//	@Summary		Activate or deactivate user
//	@Description	Flip the login-allowed flag; deactivation revokes sessions
//	@Tags			Users
//	@ID				set_user_active
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int								true	"User ID"
//	@Param			request	body		object{isActive=bool}			true	"Active flag"
//	@Success		200		{object}	dto.APIResponse[dto.UserResp]	"User updated"
//	@Failure		400		{object}	dto.APIResponse[any]			"Invalid request"
//	@Failure		404		{object}	dto.APIResponse[any]			"User not found"
//	@Failure		500		{object}	dto.APIResponse[any]			"Internal server error"
//	@Router			/api/v1/users/{id}/active [put]
func SetUserActive(c *gin.Context) {
	id, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	var req struct {
		IsActive *bool `json:"isActive" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	resp, err := service.SetUserActive(c.Request.Context(), id, utils.GetBoolValue(req.IsActive, true))
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "User updated", resp)
}

// ResetUserPassword overwrites an account's password
//
//	@Summary		Reset password
//	@Description	Administrative password reset; revokes the user's sessions
//	@Tags			Users
//	@ID				reset_user_password
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int						true	"User ID"
//	@Param			request	body		dto.ResetPasswordReq	true	"New password"
//	@Success		200		{object}	dto.APIResponse[any]	"Password reset"
//	@Failure		400		{object}	dto.APIResponse[any]	"Invalid request"
//	@Failure		404		{object}	dto.APIResponse[any]	"User not found"
//	@Failure		500		{object}	dto.APIResponse[any]	"Internal server error"
//	@Router			/api/v1/users/{id}/password [put]
func ResetUserPassword(c *gin.Context) {
	id, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	var req dto.ResetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	err := service.ResetUserPassword(c.Request.Context(), id, &req)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse[any](c, "Password reset", nil)
}

// ListRoles returns the seeded role set
//
//	@Summary		List roles
//	@Description	List the closed set of assignable roles
//	@Tags			Users
//	@ID				list_roles
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.APIResponse[[]dto.RoleResp]	"Roles"
//	@Failure		500	{object}	dto.APIResponse[any]			"Internal server error"
//	@Router			/api/v1/roles [get]
func ListRoles(c *gin.Context) {
	resp, err := service.ListRoles()
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Roles retrieved", resp)
}
