package service

import (
	"context"
	"testing"

	"github.com/haierkeys/note-keeper-service/internal/dao"
	"github.com/haierkeys/note-keeper-service/internal/domain"
	"github.com/haierkeys/note-keeper-service/pkg/app"

	"github.com/stretchr/testify/require"
)

// testEnv 测试环境：内存数据库上组装全部仓储与服务
type testEnv struct {
	userRepo  domain.UserRepository
	noteRepo  domain.NoteRepository
	tagRepo   domain.TagRepository
	shareRepo domain.NoteShareRepository

	users  UserService
	notes  NoteService
	shares ShareService
	tags   TagService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := dao.DatabaseConfig{
		Type:        "sqlite",
		Path:        ":memory:",
		AutoMigrate: true,
	}
	db, err := dao.NewDBEngineWithConfig(cfg, nil)
	require.NoError(t, err)

	d := dao.New(db, context.Background(), dao.WithConfig(&cfg))

	svcConfig := &ServiceConfig{
		User: UserServiceConfig{RegisterIsEnable: true},
		Note: NoteServiceConfig{TitleDenylist: []string{"forbidden"}},
	}
	tokenManager := app.NewTokenManager(app.TokenConfig{SecretKey: "test-secret"})

	env := &testEnv{
		userRepo:  dao.NewUserRepository(d),
		noteRepo:  dao.NewNoteRepository(d),
		tagRepo:   dao.NewTagRepository(d),
		shareRepo: dao.NewNoteShareRepository(d),
	}
	env.users = NewUserService(env.userRepo, tokenManager, nil, svcConfig)
	env.notes = NewNoteService(env.noteRepo, env.shareRepo, nil, svcConfig)
	env.shares = NewShareService(env.noteRepo, env.shareRepo, env.userRepo, nil)
	env.tags = NewTagService(env.tagRepo, nil)

	return env
}

// createUser 直接通过仓储造一个用户，绕开注册校验
func (e *testEnv) createUser(t *testing.T, username string) *domain.User {
	t.Helper()

	user, err := e.userRepo.Create(context.Background(), &domain.User{
		Username: username,
		Password: "x",
	})
	require.NoError(t, err)
	return user
}
