// Package dao 实现数据访问层
package dao

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/haierkeys/note-keeper-service/internal/model"
	"github.com/haierkeys/note-keeper-service/pkg/fileurl"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Type            string
	Path            string
	UserName        string
	Password        string
	Host            string
	Name            string
	TablePrefix     string
	AutoMigrate     bool
	Charset         string
	ParseTime       bool
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	RunMode         string
}

// Dao 数据访问对象
type Dao struct {
	db     *gorm.DB
	ctx    context.Context
	config *DatabaseConfig
	logger *zap.Logger
}

// Option Dao 配置选项
type Option func(*Dao)

// WithConfig 注入数据库配置
func WithConfig(cfg *DatabaseConfig) Option {
	return func(d *Dao) {
		d.config = cfg
	}
}

// WithLogger 注入日志器
func WithLogger(lg *zap.Logger) Option {
	return func(d *Dao) {
		d.logger = lg
	}
}

// New 创建 Dao 实例
func New(db *gorm.DB, ctx context.Context, opts ...Option) *Dao {
	d := &Dao{db: db, ctx: ctx}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DB 获取底层 gorm 连接
func (d *Dao) DB() *gorm.DB {
	return d.db
}

// dialector 根据配置选择数据库驱动
func dialector(c DatabaseConfig) gorm.Dialector {
	switch c.Type {
	case "mysql":
		return mysql.Open(fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=%s&parseTime=%t&loc=Local",
			c.UserName,
			c.Password,
			c.Host,
			c.Name,
			c.Charset,
			c.ParseTime,
		))
	case "postgres":
		return postgres.Open(fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=disable",
			c.Host,
			c.UserName,
			c.Password,
			c.Name,
		))
	case "sqlite":
		if c.Path != ":memory:" && !fileurl.IsExist(c.Path) {
			_ = fileurl.CreatePath(c.Path, os.ModePerm)
		}
		return sqlite.Open(c.Path)
	}
	return nil
}

// NewDBEngineWithConfig initializes the gorm engine with the given config
// NewDBEngineWithConfig 根据配置初始化 gorm 引擎
func NewDBEngineWithConfig(c DatabaseConfig, lg *zap.Logger) (*gorm.DB, error) {

	dial := dialector(c)
	if dial == nil {
		return nil, fmt.Errorf("unsupported database type: %s", c.Type)
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   c.TablePrefix, // 表名前缀
			SingularTable: true,          // 使用单数表名
		},
	})
	if err != nil {
		return nil, err
	}

	if c.RunMode == "debug" {
		db.Config.Logger = logger.Default.LogMode(logger.Info)
	}

	// 获取通用数据库对象 sql.DB ，然后使用其提供的功能
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if c.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	}
	if c.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(c.MaxOpenConns)
	}
	if c.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(c.ConnMaxLifetime)
	} else {
		sqlDB.SetConnMaxLifetime(time.Minute * 10)
	}
	if c.ConnMaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(c.ConnMaxIdleTime)
	}

	if c.AutoMigrate {
		if err := model.AutoMigrate(db); err != nil {
			return nil, err
		}
	}

	if lg != nil {
		lg.Info("database engine initialized", zap.String("type", c.Type))
	}

	return db, nil
}
