package service

import (
	"context"
	"errors"
	"fmt"

	"campus/consts"
	"campus/database"
	"campus/dto"
	"campus/repository"
	"campus/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CreateUser creates an account with an explicit role, admin only
func CreateUser(req *dto.CreateUserReq) (*dto.UserResp, error) {
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

		role, err := repository.GetRoleByName(tx, req.Role.String())
		if err != nil {
			return err
		}

		if req.DepartmentID != nil {
			if _, err := repository.GetDepartmentByID(tx, *req.DepartmentID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: department not found", consts.ErrValidation)
				}
				return err
			}
		}

		user = &database.User{
			Username:     req.Username,
			Email:        req.Email,
			Password:     hashed,
			FullName:     req.FullName,
			Phone:        req.Phone,
			Avatar:       req.Avatar,
			RoleID:       role.ID,
			DepartmentID: req.DepartmentID,
			IsActive:     true,
			Role:         role,
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

	return dto.NewUserResp(user), nil
}

// GetUser returns one account plus its activity counts
func GetUser(id int) (*dto.UserDetailResp, error) {
	user, err := repository.GetUserByID(database.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user not found", consts.ErrNotFound)
		}
		return nil, err
	}

	resp := dto.NewUserDetailResp(user)

	if resp.EnrollmentCount, err = repository.CountEnrollmentsByStudent(database.DB, id); err != nil {
		return nil, err
	}
	if resp.ManagedCourseCount, err = repository.CountCoursesByLecturer(database.DB, id); err != nil {
		return nil, err
	}

	return resp, nil
}

// ListUsers returns a filtered page of accounts
func ListUsers(req *dto.ListUserReq) (*dto.PagedResult[dto.UserResp], error) {
	req.Normalize()

	total, users, err := repository.ListUsers(database.DB, req)
	if err != nil {
		return nil, err
	}

	items := make([]dto.UserResp, 0, len(users))
	for i := range users {
		items = append(items, *dto.NewUserResp(&users[i]))
	}

	return dto.NewPagedResult(items, total, &req.PaginationReq), nil
}

// UpdateUser applies a partial account update
func UpdateUser(id int, req *dto.UpdateUserReq) (*dto.UserResp, error) {
	var user *database.User
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		user, err = repository.GetUserByID(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: user not found", consts.ErrNotFound)
			}
			return err
		}

		if req.Email != nil {
			count, err := repository.CountUsersByUsernameOrEmail(tx, "", *req.Email, id)
			if err != nil {
				return err
			}
			if count > 0 {
				return fmt.Errorf("%w: email already in use", consts.ErrConflict)
			}
		}

		if req.DepartmentID != nil {
			if _, err := repository.GetDepartmentByID(tx, *req.DepartmentID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: department not found", consts.ErrValidation)
				}
				return err
			}
		}

		req.Patch(user)
		if err := repository.UpdateUser(tx, user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: email already in use", consts.ErrConflict)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return dto.NewUserResp(user), nil
}

// SetUserActive enables or disables an account. Disabling also revokes
// the user's outstanding sessions.
func SetUserActive(ctx context.Context, id int, active bool) (*dto.UserResp, error) {
	var user *database.User
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		user, err = repository.GetUserByID(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: user not found", consts.ErrNotFound)
			}
			return err
		}

		user.IsActive = active
		return repository.UpdateUser(tx, user)
	})
	if err != nil {
		return nil, err
	}

	if !active {
		if err := repository.AddUserTokensToBlacklist(ctx, id, utils.RefreshTokenExpiration, map[string]any{
			"reason": "deactivated",
		}); err != nil {
			logrus.Warnf("Failed to revoke sessions for user %d: %v", id, err)
		}
	}

	return dto.NewUserResp(user), nil
}

// ResetUserPassword overwrites an account's password, admin only. The
// user's outstanding sessions are revoked.
func ResetUserPassword(ctx context.Context, id int, req *dto.ResetPasswordReq) error {
	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("%w: %v", consts.ErrValidation, err)
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		user, err := repository.GetUserByID(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: user not found", consts.ErrNotFound)
			}
			return err
		}

		user.Password = hashed
		return repository.UpdateUser(tx, user)
	})
	if err != nil {
		return err
	}

	if err := repository.AddUserTokensToBlacklist(ctx, id, utils.RefreshTokenExpiration, map[string]any{
		"reason": "password-reset",
	}); err != nil {
		logrus.Warnf("Failed to revoke sessions for user %d: %v", id, err)
	}
	return nil
}

// DeleteUser soft-deletes an account. Accounts still enrolled in or
// teaching live courses must be detached first; submission history keeps
// referencing the row after deletion.
func DeleteUser(ctx context.Context, id int) error {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		enrollments, err := repository.CountEnrollmentsByStudent(tx, id)
		if err != nil {
			return err
		}
		if enrollments > 0 {
			return fmt.Errorf("%w: user is still enrolled in %d courses", consts.ErrConflict, enrollments)
		}

		managed, err := repository.CountCoursesByLecturer(tx, id)
		if err != nil {
			return err
		}
		if managed > 0 {
			return fmt.Errorf("%w: user still manages %d courses", consts.ErrConflict, managed)
		}

		if err := repository.SoftDeleteUser(tx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: user not found", consts.ErrNotFound)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := repository.AddUserTokensToBlacklist(ctx, id, utils.RefreshTokenExpiration, map[string]any{
		"reason": "deleted",
	}); err != nil {
		logrus.Warnf("Failed to revoke sessions for user %d: %v", id, err)
	}
	return nil
}

// ListRoles returns the seeded role set
func ListRoles() ([]dto.RoleResp, error) {
	roles, err := repository.ListRoles(database.DB)
	if err != nil {
		return nil, err
	}

	items := make([]dto.RoleResp, 0, len(roles))
	for i := range roles {
		items = append(items, *dto.NewRoleResp(&roles[i]))
	}
	return items, nil
}
