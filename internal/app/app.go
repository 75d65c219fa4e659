// Package app 提供应用容器，封装所有依赖和服务
package app

import (
	"context"
	"fmt"

	"github.com/haierkeys/note-keeper-service/internal/dao"
	"github.com/haierkeys/note-keeper-service/internal/domain"
	"github.com/haierkeys/note-keeper-service/internal/service"
	pkgapp "github.com/haierkeys/note-keeper-service/pkg/app"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App 应用容器，封装所有依赖和服务
type App struct {
	// 基础设施（注入的依赖）
	config *AppConfig
	logger *zap.Logger
	DB     *gorm.DB
	Dao    *dao.Dao

	// Repository 层
	UserRepo  domain.UserRepository
	NoteRepo  domain.NoteRepository
	TagRepo   domain.TagRepository
	ShareRepo domain.NoteShareRepository

	// Service 层
	UserService  service.UserService
	NoteService  service.NoteService
	ShareService service.ShareService
	TagService   service.TagService

	// 基础设施组件
	TokenManager pkgapp.TokenManager
}

// NewApp 创建应用容器实例
// 初始化所有依赖并进行依赖注入
// cfg: 应用配置（必须）
// logger: zap 日志器（必须）
// db: 数据库连接（必须）
func NewApp(cfg *AppConfig, logger *zap.Logger, db *gorm.DB) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}

	a := &App{
		config: cfg,
		logger: logger,
		DB:     db,
	}

	// 创建 DatabaseConfig 用于 DAO
	dbConfig := &dao.DatabaseConfig{
		Type:            cfg.Database.Type,
		Path:            cfg.Database.Path,
		UserName:        cfg.Database.UserName,
		Password:        cfg.Database.Password,
		Host:            cfg.Database.Host,
		Name:            cfg.Database.Name,
		TablePrefix:     cfg.Database.TablePrefix,
		AutoMigrate:     cfg.Database.AutoMigrate,
		Charset:         cfg.Database.Charset,
		ParseTime:       cfg.Database.ParseTime,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.GetConnMaxLifetime(),
		ConnMaxIdleTime: cfg.GetConnMaxIdleTime(),
		RunMode:         cfg.Server.RunMode,
	}

	// 初始化 DAO（使用依赖注入）
	a.Dao = dao.New(db, context.Background(),
		dao.WithConfig(dbConfig),
		dao.WithLogger(logger),
	)

	// 初始化 TokenManager
	tokenConfig := pkgapp.TokenConfig{
		SecretKey: cfg.Security.AuthTokenKey,
		Issuer:    "note-keeper-service",
		Expiry:    cfg.GetTokenExpiry(),
	}
	a.TokenManager = pkgapp.NewTokenManager(tokenConfig)

	// 初始化 Repository 层
	a.UserRepo = dao.NewUserRepository(a.Dao)
	a.NoteRepo = dao.NewNoteRepository(a.Dao)
	a.TagRepo = dao.NewTagRepository(a.Dao)
	a.ShareRepo = dao.NewNoteShareRepository(a.Dao)

	// 创建 ServiceConfig（从 AppConfig 提取 Service 层需要的配置）
	svcConfig := &service.ServiceConfig{
		User: service.UserServiceConfig{
			RegisterIsEnable: cfg.User.RegisterIsEnable,
		},
		Note: service.NoteServiceConfig{
			TitleDenylist:    cfg.Note.TitleDenylist,
			DefaultListLimit: cfg.Note.DefaultListLimit,
		},
	}

	// 初始化 Service 层（依赖注入）
	a.UserService = service.NewUserService(a.UserRepo, a.TokenManager, logger, svcConfig)
	a.NoteService = service.NewNoteService(a.NoteRepo, a.ShareRepo, logger, svcConfig)
	a.ShareService = service.NewShareService(a.NoteRepo, a.ShareRepo, a.UserRepo, logger)
	a.TagService = service.NewTagService(a.TagRepo, logger)

	logger.Info("App container initialized successfully")

	return a, nil
}

// Close 释放应用容器持有的资源
func (a *App) Close() error {
	if a.DB != nil {
		sqlDB, err := a.DB.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}
		if err := sqlDB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
		a.logger.Info("Database connection closed")
	}
	return nil
}

// Shutdown 优雅关闭应用容器，超时由 ctx 控制
func (a *App) Shutdown(ctx context.Context) error {
	done := make(chan error, 1)
	go func() {
		done <- a.Close()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Config 获取应用配置
func (a *App) Config() *AppConfig {
	return a.config
}

// Logger 获取日志器
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Version 获取版本信息
func (a *App) Version() pkgapp.VersionInfo {
	return pkgapp.VersionInfo{
		Version:   Version,
		GitTag:    GitTag,
		BuildTime: BuildTime,
	}
}
