package service

import (
	"context"
	"errors"
	"testing"

	"campus/consts"
	"campus/dto"
	"campus/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserWithRole(t *testing.T) {
	tag := nextFixtureTag()

	user, err := CreateUser(&dto.CreateUserReq{
		Username: "lect" + tag,
		Email:    "lect" + tag + "@example.com",
		Password: "Password123",
		FullName: "New Lecturer",
		Role:     consts.RoleLecturer,
	})
	require.NoError(t, err)
	assert.Equal(t, consts.RoleLecturer.String(), user.Role)
	assert.True(t, user.IsActive)

	// username reuse is rejected before the insert
	_, err = CreateUser(&dto.CreateUserReq{
		Username: "lect" + tag,
		Email:    "other" + nextFixtureTag() + "@example.com",
		Password: "Password123",
		FullName: "Dup",
		Role:     consts.RoleLecturer,
	})
	assert.True(t, errors.Is(err, consts.ErrConflict))

	_, err = CreateUser(&dto.CreateUserReq{
		Username: "dep" + nextFixtureTag(),
		Email:    "dep" + nextFixtureTag() + "@example.com",
		Password: "Password123",
		FullName: "No Department",
		Role:     consts.RoleLecturer,
		DepartmentID: utils.IntPtr(999999),
	})
	assert.True(t, errors.Is(err, consts.ErrValidation))
}

func TestGetUserCounts(t *testing.T) {
	student := mustCreateUser(t, consts.RoleStudent)
	course := mustCreateCourse(t)
	_, err := EnrollStudent(course.ID, &dto.EnrollStudentReq{StudentID: student.ID})
	require.NoError(t, err)

	detail, err := GetUser(student.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.EnrollmentCount)
	assert.Equal(t, int64(0), detail.ManagedCourseCount)

	_, err = GetUser(999999)
	assert.True(t, errors.Is(err, consts.ErrNotFound))
}

func TestListUsersFiltering(t *testing.T) {
	mustCreateUser(t, consts.RoleLecturer)
	student := mustCreateUser(t, consts.RoleStudent)

	page, err := ListUsers(&dto.ListUserReq{IsActive: utils.BoolPtr(true)})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, page.TotalCount, int64(2))

	roles, err := ListRoles()
	require.NoError(t, err)
	var studentRoleID int
	for _, r := range roles {
		if r.Name == consts.RoleStudent.String() {
			studentRoleID = r.ID
		}
	}
	require.NotZero(t, studentRoleID)

	page, err = ListUsers(&dto.ListUserReq{RoleID: &studentRoleID})
	require.NoError(t, err)
	for _, u := range page.Items {
		assert.Equal(t, consts.RoleStudent.String(), u.Role)
	}
	found := false
	for _, u := range page.Items {
		if u.ID == student.ID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestUpdateUser(t *testing.T) {
	first := mustCreateUser(t, consts.RoleStudent)
	second := mustCreateUser(t, consts.RoleStudent)

	updated, err := UpdateUser(first.ID, &dto.UpdateUserReq{
		FullName: utils.StringPtr("Updated Name"),
		Phone:    utils.StringPtr("555-0199"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Updated Name", updated.FullName)
	assert.Equal(t, "555-0199", updated.Phone)

	// another account's email cannot be claimed
	_, err = UpdateUser(first.ID, &dto.UpdateUserReq{Email: &second.Email})
	assert.True(t, errors.Is(err, consts.ErrConflict))

	_, err = UpdateUser(999999, &dto.UpdateUserReq{FullName: utils.StringPtr("Ghost")})
	assert.True(t, errors.Is(err, consts.ErrNotFound))
}

func TestSetUserActive(t *testing.T) {
	registered, password := registerStudent(t)

	deactivated, err := SetUserActive(context.Background(), registered.User.ID, false)
	require.NoError(t, err)
	assert.False(t, deactivated.IsActive)

	_, err = Login(context.Background(), &dto.LoginReq{
		Username: registered.User.Username,
		Password: password,
	})
	assert.True(t, errors.Is(err, consts.ErrAuthenticationFailed))

	// deactivation also revokes outstanding sessions
	_, err = RefreshToken(context.Background(), &dto.RefreshTokenReq{
		RefreshToken: registered.RefreshToken,
	})
	assert.True(t, errors.Is(err, consts.ErrAuthenticationFailed))

	reactivated, err := SetUserActive(context.Background(), registered.User.ID, true)
	require.NoError(t, err)
	assert.True(t, reactivated.IsActive)

	_, err = Login(context.Background(), &dto.LoginReq{
		Username: registered.User.Username,
		Password: password,
	})
	require.NoError(t, err)

	_, err = SetUserActive(context.Background(), 999999, false)
	assert.True(t, errors.Is(err, consts.ErrNotFound))
}

func TestResetUserPassword(t *testing.T) {
	registered, password := registerStudent(t)
	newPassword := "Reset" + nextFixtureTag()

	require.NoError(t, ResetUserPassword(context.Background(), registered.User.ID, &dto.ResetPasswordReq{
		NewPassword: newPassword,
	}))

	_, err := Login(context.Background(), &dto.LoginReq{
		Username: registered.User.Username,
		Password: password,
	})
	assert.True(t, errors.Is(err, consts.ErrAuthenticationFailed))

	_, err = Login(context.Background(), &dto.LoginReq{
		Username: registered.User.Username,
		Password: newPassword,
	})
	require.NoError(t, err)

	err = ResetUserPassword(context.Background(), 999999, &dto.ResetPasswordReq{
		NewPassword: newPassword,
	})
	assert.True(t, errors.Is(err, consts.ErrNotFound))
}

func TestDeleteUser(t *testing.T) {
	user := mustCreateUser(t, consts.RoleStudent)
	course := mustCreateCourse(t)
	_, err := EnrollStudent(course.ID, &dto.EnrollStudentReq{StudentID: user.ID})
	require.NoError(t, err)

	// live enrollments block deletion
	err = DeleteUser(context.Background(), user.ID)
	assert.True(t, errors.Is(err, consts.ErrConflict))

	require.NoError(t, UnenrollStudent(course.ID, user.ID))
	require.NoError(t, DeleteUser(context.Background(), user.ID))

	_, err = GetUser(user.ID)
	assert.True(t, errors.Is(err, consts.ErrNotFound))

	err = DeleteUser(context.Background(), user.ID)
	assert.True(t, errors.Is(err, consts.ErrNotFound))
}

func TestListRolesSeeded(t *testing.T) {
	roles, err := ListRoles()
	require.NoError(t, err)
	require.Len(t, roles, 3)

	names := make(map[string]bool, len(roles))
	for _, r := range roles {
		names[r.Name] = true
	}
	assert.True(t, names[consts.RoleAdmin.String()])
	assert.True(t, names[consts.RoleLecturer.String()])
	assert.True(t, names[consts.RoleStudent.String()])
}
