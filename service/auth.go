package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campus/consts"
	"campus/database"
	"campus/dto"
	"campus/repository"
	"campus/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Login verifies credentials and mints an access/refresh token pair.
// Failed lookups and bad passwords return the same sentinel so callers
// cannot probe which usernames exist.
func Login(ctx context.Context, req *dto.LoginReq) (*dto.TokenResp, error) {
	user, err := repository.GetUserByUsername(database.DB, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid username or password", consts.ErrAuthenticationFailed)
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, fmt.Errorf("%w: account is disabled", consts.ErrAuthenticationFailed)
	}

	if !utils.VerifyPassword(req.Password, user.Password) {
		return nil, fmt.Errorf("%w: invalid username or password", consts.ErrAuthenticationFailed)
	}

	resp, err := issueTokens(user)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := repository.UpdateUser(database.DB, user); err != nil {
		logrus.Warnf("Failed to stamp last login for user %d: %v", user.ID, err)
	}

	return resp, nil
}

// Register creates a self-service student account
func Register(ctx context.Context, req *dto.RegisterReq) (*dto.TokenResp, error) {
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", consts.ErrValidation, err)
	}

	var user *database.User
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		count, err := repository.CountUsersByUsernameOrEmail(tx, req.Username, req.Email, 0)
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: username or email already in use", consts.ErrConflict)
		}

		role, err := repository.GetRoleByName(tx, consts.RoleStudent.String())
		if err != nil {
			return err
		}

		user = &database.User{
			Username: req.Username,
			Email:    req.Email,
			Password: hashed,
			FullName: req.FullName,
			Phone:    req.Phone,
			RoleID:   role.ID,
			IsActive: true,
			Role:     role,
		}
		if err := repository.CreateUser(tx, user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: username or email already in use", consts.ErrConflict)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return issueTokens(user)
}

// RefreshToken rotates a refresh token into a new token pair. The old
// refresh token is revoked so it cannot be replayed.
func RefreshToken(ctx context.Context, req *dto.RefreshTokenReq) (*dto.TokenResp, error) {
	claims, err := utils.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", consts.ErrAuthenticationFailed, err)
	}

	revoked, err := repository.IsTokenBlacklisted(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, fmt.Errorf("%w: refresh token has been revoked", consts.ErrAuthenticationFailed)
	}

	userRevoked, err := repository.IsUserBlacklisted(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if userRevoked {
		return nil, fmt.Errorf("%w: session has been revoked", consts.ErrAuthenticationFailed)
	}

	user, err := repository.GetUserByID(database.DB, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: account no longer exists", consts.ErrAuthenticationFailed)
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: account is disabled", consts.ErrAuthenticationFailed)
	}

	if err := repository.AddTokenToBlacklist(ctx, claims.ID, claims.ExpiresAt.Time, map[string]any{
		"reason": "rotated",
		"userId": claims.UserID,
	}); err != nil {
		return nil, err
	}

	return issueTokens(user)
}

// Logout revokes the presented refresh token
func Logout(ctx context.Context, req *dto.RefreshTokenReq) error {
	claims, err := utils.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return fmt.Errorf("%w: %v", consts.ErrAuthenticationFailed, err)
	}

	return repository.AddTokenToBlacklist(ctx, claims.ID, claims.ExpiresAt.Time, map[string]any{
		"reason": "logout",
		"userId": claims.UserID,
	})
}

// ChangePassword verifies the old password before storing the new hash,
// then revokes the user's outstanding sessions.
func ChangePassword(ctx context.Context, userID int, req *dto.ChangePasswordReq) error {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		user, err := repository.GetUserByID(tx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: user not found", consts.ErrNotFound)
			}
			return err
		}

		if !utils.VerifyPassword(req.OldPassword, user.Password) {
			return fmt.Errorf("%w: old password is incorrect", consts.ErrAuthenticationFailed)
		}

		hashed, err := utils.HashPassword(req.NewPassword)
		if err != nil {
			return fmt.Errorf("%w: %v", consts.ErrValidation, err)
		}

		user.Password = hashed
		return repository.UpdateUser(tx, user)
	})
	if err != nil {
		return err
	}

	if err := repository.AddUserTokensToBlacklist(ctx, userID, utils.RefreshTokenExpiration, map[string]any{
		"reason": "password-change",
	}); err != nil {
		logrus.Warnf("Failed to revoke sessions for user %d: %v", userID, err)
	}
	return nil
}

// GetProfile returns the caller's own account
func GetProfile(userID int) (*dto.UserResp, error) {
	user, err := repository.GetUserByID(database.DB, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user not found", consts.ErrNotFound)
		}
		return nil, err
	}
	return dto.NewUserResp(user), nil
}

// UpdateProfile applies the caller's own partial profile update
func UpdateProfile(userID int, req *dto.UpdateProfileReq) (*dto.UserResp, error) {
	var user *database.User
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		user, err = repository.GetUserByID(tx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: user not found", consts.ErrNotFound)
			}
			return err
		}

		req.Patch(user)
		return repository.UpdateUser(tx, user)
	})
	if err != nil {
		return nil, err
	}
	return dto.NewUserResp(user), nil
}

func issueTokens(user *database.User) (*dto.TokenResp, error) {
	var roleName consts.RoleName
	if user.Role != nil {
		roleName = user.Role.Name
	}

	access, _, err := utils.GenerateToken(user.ID, user.Username, roleName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", consts.ErrInternal, err)
	}

	refresh, _, err := utils.GenerateRefreshToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", consts.ErrInternal, err)
	}

	return dto.NewTokenResp(access, refresh, int(utils.TokenExpiration.Seconds()), user), nil
}
