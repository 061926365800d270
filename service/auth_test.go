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

func registerStudent(t *testing.T) (*dto.TokenResp, string) {
	t.Helper()
	tag := nextFixtureTag()
	password := "Password" + tag
	resp, err := Register(context.Background(), &dto.RegisterReq{
		Username: "student" + tag,
		Email:    "student" + tag + "@example.com",
		Password: password,
		FullName: "Student " + tag,
	})
	require.NoError(t, err)
	return resp, password
}

func TestRegisterIssuesStudentTokens(t *testing.T) {
	resp, _ := registerStudent(t)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Positive(t, resp.ExpiresIn)
	require.NotNil(t, resp.User)
	assert.Equal(t, consts.RoleStudent.String(), resp.User.Role)
	assert.True(t, resp.User.IsActive)

	claims, err := utils.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, resp.User.Username, claims.Username)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	first, _ := registerStudent(t)

	_, err := Register(context.Background(), &dto.RegisterReq{
		Username: first.User.Username,
		Email:    "other" + nextFixtureTag() + "@example.com",
		Password: "Password123",
		FullName: "Other",
	})
	assert.True(t, errors.Is(err, consts.ErrConflict))

	_, err = Register(context.Background(), &dto.RegisterReq{
		Username: "other" + nextFixtureTag(),
		Email:    first.User.Email,
		Password: "Password123",
		FullName: "Other",
	})
	assert.True(t, errors.Is(err, consts.ErrConflict))
}

func TestLogin(t *testing.T) {
	registered, password := registerStudent(t)

	resp, err := Login(context.Background(), &dto.LoginReq{
		Username: registered.User.Username,
		Password: password,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, registered.User.ID, resp.User.ID)

	// wrong password and unknown user fail with the same sentinel
	_, err = Login(context.Background(), &dto.LoginReq{
		Username: registered.User.Username,
		Password: "not-the-password",
	})
	assert.True(t, errors.Is(err, consts.ErrAuthenticationFailed))

	_, err = Login(context.Background(), &dto.LoginReq{
		Username: "ghost" + nextFixtureTag(),
		Password: password,
	})
	assert.True(t, errors.Is(err, consts.ErrAuthenticationFailed))
}

func TestLoginStampsLastLogin(t *testing.T) {
	registered, password := registerStudent(t)
	require.Nil(t, registered.User.LastLoginAt)

	resp, err := Login(context.Background(), &dto.LoginReq{
		Username: registered.User.Username,
		Password: password,
	})
	require.NoError(t, err)

	profile, err := GetProfile(resp.User.ID)
	require.NoError(t, err)
	assert.NotNil(t, profile.LastLoginAt)
}

func TestRefreshTokenRotation(t *testing.T) {
	registered, _ := registerStudent(t)

	rotated, err := RefreshToken(context.Background(), &dto.RefreshTokenReq{
		RefreshToken: registered.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)
	assert.NotEqual(t, registered.RefreshToken, rotated.RefreshToken)

	// the rotated-out token cannot be replayed
	_, err = RefreshToken(context.Background(), &dto.RefreshTokenReq{
		RefreshToken: registered.RefreshToken,
	})
	assert.True(t, errors.Is(err, consts.ErrAuthenticationFailed))

	_, err = RefreshToken(context.Background(), &dto.RefreshTokenReq{
		RefreshToken: "not-a-token",
	})
	assert.True(t, errors.Is(err, consts.ErrAuthenticationFailed))
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	registered, _ := registerStudent(t)

	require.NoError(t, Logout(context.Background(), &dto.RefreshTokenReq{
		RefreshToken: registered.RefreshToken,
	}))

	_, err := RefreshToken(context.Background(), &dto.RefreshTokenReq{
		RefreshToken: registered.RefreshToken,
	})
	assert.True(t, errors.Is(err, consts.ErrAuthenticationFailed))

	err = Logout(context.Background(), &dto.RefreshTokenReq{RefreshToken: "garbage"})
	assert.True(t, errors.Is(err, consts.ErrAuthenticationFailed))
}

func TestChangePassword(t *testing.T) {
	registered, password := registerStudent(t)
	newPassword := "Changed" + nextFixtureTag()

	err := ChangePassword(context.Background(), registered.User.ID, &dto.ChangePasswordReq{
		OldPassword: "wrong-password",
		NewPassword: newPassword,
	})
	assert.True(t, errors.Is(err, consts.ErrAuthenticationFailed))

	require.NoError(t, ChangePassword(context.Background(), registered.User.ID, &dto.ChangePasswordReq{
		OldPassword: password,
		NewPassword: newPassword,
	}))

	_, err = Login(context.Background(), &dto.LoginReq{
		Username: registered.User.Username,
		Password: password,
	})
	assert.True(t, errors.Is(err, consts.ErrAuthenticationFailed))

	_, err = Login(context.Background(), &dto.LoginReq{
		Username: registered.User.Username,
		Password: newPassword,
	})
	require.NoError(t, err)

	// outstanding sessions are revoked along with the old password
	_, err = RefreshToken(context.Background(), &dto.RefreshTokenReq{
		RefreshToken: registered.RefreshToken,
	})
	assert.True(t, errors.Is(err, consts.ErrAuthenticationFailed))
}

func TestProfile(t *testing.T) {
	registered, _ := registerStudent(t)

	profile, err := GetProfile(registered.User.ID)
	require.NoError(t, err)
	assert.Equal(t, registered.User.Username, profile.Username)

	updated, err := UpdateProfile(registered.User.ID, &dto.UpdateProfileReq{
		FullName: utils.StringPtr("Renamed Student"),
		Phone:    utils.StringPtr("  555-0101  "),
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Student", updated.FullName)
	assert.Equal(t, "555-0101", updated.Phone)

	_, err = GetProfile(999999)
	assert.True(t, errors.Is(err, consts.ErrNotFound))
}
