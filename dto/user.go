package dto

import (
	"fmt"
	"strings"
	"time"

	"campus/consts"
	"campus/database"
)

// ===================== User CRUD DTOs =====================

// CreateUserReq represents user creation by an administrator
type CreateUserReq struct {
	Username     string          `json:"username" binding:"required"`
	Email        string          `json:"email" binding:"required,email"`
	Password     string          `json:"password" binding:"required,min=8"`
	FullName     string          `json:"fullName" binding:"required"`
	Phone        string          `json:"phone" binding:"omitempty"`
	Avatar       string          `json:"avatar" binding:"omitempty"`
	Role         consts.RoleName `json:"role" binding:"required,role_name"`
	DepartmentID *int            `json:"departmentId" binding:"omitempty,min=1"`
}

func (req *CreateUserReq) Validate() error {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if req.Username == "" {
		return fmt.Errorf("username cannot be empty")
	}
	if req.Email == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if len(req.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	if _, ok := consts.ValidRoles[req.Role]; !ok {
		return fmt.Errorf("unknown role: %s", req.Role)
	}
	return nil
}

// ListUserReq represents the user list query parameters
type ListUserReq struct {
	PaginationReq
	RoleID       *int  `form:"roleId"`
	DepartmentID *int  `form:"departmentId"`
	IsActive     *bool `form:"isActive"`
}

// UpdateUserReq represents a partial user update. Pointer fields distinguish
// "not provided" from an explicit zero value; omitted fields stay unchanged.
type UpdateUserReq struct {
	Email        *string `json:"email,omitempty" binding:"omitempty,email"`
	FullName     *string `json:"fullName,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Avatar       *string `json:"avatar,omitempty"`
	DepartmentID *int    `json:"departmentId,omitempty" binding:"omitempty,min=1"`
}

// Patch applies only the provided fields onto the loaded entity
func (req *UpdateUserReq) Patch(target *database.User) {
	if req.Email != nil {
		target.Email = strings.TrimSpace(*req.Email)
	}
	if req.FullName != nil {
		target.FullName = *req.FullName
	}
	if req.Phone != nil {
		target.Phone = *req.Phone
	}
	if req.Avatar != nil {
		target.Avatar = *req.Avatar
	}
	if req.DepartmentID != nil {
		target.DepartmentID = req.DepartmentID
	}
}

// ResetPasswordReq represents an administrative password reset
type ResetPasswordReq struct {
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// UserResp is the flat list-item shape with joined display names
type UserResp struct {
	ID             int        `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	FullName       string     `json:"fullName"`
	Phone          string     `json:"phone,omitempty"`
	Avatar         string     `json:"avatar,omitempty"`
	Role           string     `json:"role"`
	DepartmentName string     `json:"departmentName,omitempty"`
	IsActive       bool       `json:"isActive"`
	LastLoginAt    *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func NewUserResp(user *database.User) *UserResp {
	resp := &UserResp{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		FullName:    user.FullName,
		Phone:       user.Phone,
		Avatar:      user.Avatar,
		IsActive:    user.IsActive,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
	if user.Role != nil {
		resp.Role = user.Role.Name.String()
	}
	if user.Department != nil {
		resp.DepartmentName = user.Department.Name
	}
	return resp
}

// UserDetailResp is the single-resource shape: the list item plus activity
// counts the dashboards show on the profile page.
type UserDetailResp struct {
	UserResp

	EnrollmentCount    int64 `json:"enrollmentCount"`
	ManagedCourseCount int64 `json:"managedCourseCount"`
}

func NewUserDetailResp(user *database.User) *UserDetailResp {
	return &UserDetailResp{UserResp: *NewUserResp(user)}
}

// RoleResp exposes the seeded role rows for admin user forms
type RoleResp struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Description string `json:"description,omitempty"`
}

func NewRoleResp(role *database.Role) *RoleResp {
	return &RoleResp{
		ID:          role.ID,
		Name:        role.Name.String(),
		DisplayName: role.DisplayName,
		Description: role.Description,
	}
}
