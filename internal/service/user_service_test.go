package service

import (
	"context"
	"testing"

	"github.com/haierkeys/note-keeper-service/internal/dto"
	"github.com/haierkeys/note-keeper-service/pkg/code"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_RegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	out, err := env.users.Register(ctx, &dto.UserRegisterRequest{
		Username: "alice",
		Password: "Passw0rd1",
	})
	require.NoError(t, err)
	assert.NotZero(t, out.UID)
	assert.Equal(t, "alice", out.Username)
	assert.NotEmpty(t, out.Token)

	logged, err := env.users.Login(ctx, &dto.UserLoginRequest{
		Username: "alice",
		Password: "Passw0rd1",
	}, "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, out.UID, logged.UID)
	assert.NotEmpty(t, logged.Token)
}

func TestUserService_Register_UsernameTaken(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.users.Register(ctx, &dto.UserRegisterRequest{Username: "alice", Password: "Passw0rd1"})
	require.NoError(t, err)

	_, err = env.users.Register(ctx, &dto.UserRegisterRequest{Username: "alice", Password: "Passw0rd2"})
	assert.ErrorIs(t, err, code.ErrorUserAlreadyExists)
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cases := []string{
		"short1A",    // 不足 8 位
		"alllower1",  // 无大写
		"ALLUPPER1",  // 无小写
		"NoDigitsAa", // 无数字
	}
	for _, password := range cases {
		_, err := env.users.Register(ctx, &dto.UserRegisterRequest{Username: "bob", Password: password})
		assert.ErrorIs(t, err, code.ErrorUserPasswordWeak, "password %q should be rejected", password)
	}
}

func TestUserService_Register_InvalidUsername(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.users.Register(context.Background(), &dto.UserRegisterRequest{
		Username: "a b!",
		Password: "Passw0rd1",
	})
	assert.ErrorIs(t, err, code.ErrorUserUsernameNotValid)
}

func TestUserService_Login_UniformFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.users.Register(ctx, &dto.UserRegisterRequest{Username: "alice", Password: "Passw0rd1"})
	require.NoError(t, err)

	// 用户不存在与密码错误返回同一个错误，不暴露用户是否存在
	_, errNoUser := env.users.Login(ctx, &dto.UserLoginRequest{Username: "ghost", Password: "Passw0rd1"}, "")
	_, errBadPass := env.users.Login(ctx, &dto.UserLoginRequest{Username: "alice", Password: "Wrong0rd1"}, "")

	assert.ErrorIs(t, errNoUser, code.ErrorUserLoginPasswordFailed)
	assert.ErrorIs(t, errBadPass, code.ErrorUserLoginPasswordFailed)
}

func TestUserService_ChangePassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	registered, err := env.users.Register(ctx, &dto.UserRegisterRequest{Username: "alice", Password: "Passw0rd1"})
	require.NoError(t, err)

	// 旧密码错误
	err = env.users.ChangePassword(ctx, registered.UID, &dto.UserChangePasswordRequest{
		OldPassword: "Wrong0rd1",
		Password:    "NewPassw0rd",
	})
	assert.ErrorIs(t, err, code.ErrorUserOldPasswordFailed)

	// 正常修改
	err = env.users.ChangePassword(ctx, registered.UID, &dto.UserChangePasswordRequest{
		OldPassword: "Passw0rd1",
		Password:    "NewPassw0rd1",
	})
	require.NoError(t, err)

	// 新密码可登录，旧密码失效
	_, err = env.users.Login(ctx, &dto.UserLoginRequest{Username: "alice", Password: "NewPassw0rd1"}, "")
	assert.NoError(t, err)
	_, err = env.users.Login(ctx, &dto.UserLoginRequest{Username: "alice", Password: "Passw0rd1"}, "")
	assert.ErrorIs(t, err, code.ErrorUserLoginPasswordFailed)
}

func TestUserService_GetInfo(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	registered, err := env.users.Register(ctx, &dto.UserRegisterRequest{Username: "alice", Password: "Passw0rd1"})
	require.NoError(t, err)

	info, err := env.users.GetInfo(ctx, registered.UID)
	require.NoError(t, err)
	assert.Equal(t, "alice", info.Username)
	assert.Empty(t, info.Token)

	_, err = env.users.GetInfo(ctx, 99999)
	assert.ErrorIs(t, err, code.ErrorUserNotFound)
}

func TestUserService_RegisterDisabled(t *testing.T) {
	env := newTestEnv(t)

	disabled := NewUserService(env.userRepo, nil, nil, &ServiceConfig{
		User: UserServiceConfig{RegisterIsEnable: false},
	})
	_, err := disabled.Register(context.Background(), &dto.UserRegisterRequest{
		Username: "alice",
		Password: "Passw0rd1",
	})
	assert.ErrorIs(t, err, code.ErrorUserRegisterIsDisable)
}
