package dto

import (
	"fmt"
	"strings"

	"campus/database"
)

type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (req *LoginReq) Validate() error {
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		return fmt.Errorf("username cannot be empty")
	}
	return nil
}

// RegisterReq is the self-service student signup. Role is fixed to student;
// privileged accounts are created through the admin user endpoints.
type RegisterReq struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName" binding:"required"`
	Phone    string `json:"phone"`
}

func (req *RegisterReq) Validate() error {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.FullName = strings.TrimSpace(req.FullName)
	if req.Username == "" {
		return fmt.Errorf("username cannot be empty")
	}
	if req.FullName == "" {
		return fmt.Errorf("full name cannot be empty")
	}
	return nil
}

type RefreshTokenReq struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type ChangePasswordReq struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

func (req *ChangePasswordReq) Validate() error {
	if req.OldPassword == req.NewPassword {
		return fmt.Errorf("new password must differ from the old password")
	}
	return nil
}

type UpdateProfileReq struct {
	FullName *string `json:"fullName,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
}

func (req *UpdateProfileReq) Patch(target *database.User) {
	if req.FullName != nil {
		target.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Phone != nil {
		target.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Avatar != nil {
		target.Avatar = strings.TrimSpace(*req.Avatar)
	}
}

type TokenResp struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresIn    int       `json:"expiresIn"` // Access token lifetime in seconds
	User         *UserResp `json:"user"`
}

func NewTokenResp(access, refresh string, expiresIn int, user *database.User) *TokenResp {
	return &TokenResp{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    expiresIn,
		User:         NewUserResp(user),
	}
}
