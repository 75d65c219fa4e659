package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/creasty/defaults"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppConfig_DurationHelpers(t *testing.T) {
	cfg := &AppConfig{}
	require.NoError(t, defaults.Set(cfg))

	// 字符串配置在边界处统一转换为 time.Duration
	assert.Equal(t, 30*time.Minute, cfg.GetConnMaxLifetime())
	assert.Equal(t, 10*time.Minute, cfg.GetConnMaxIdleTime())
	assert.Equal(t, 365*24*time.Hour, cfg.GetTokenExpiry())

	cfg.Database.ConnMaxLifetime = "1h"
	cfg.Database.ConnMaxIdleTime = "5m"
	assert.Equal(t, time.Hour, cfg.GetConnMaxLifetime())
	assert.Equal(t, 5*time.Minute, cfg.GetConnMaxIdleTime())

	// 非法值回退到内置默认
	cfg.Database.ConnMaxLifetime = "bogus"
	cfg.Database.ConnMaxIdleTime = ""
	assert.Equal(t, 30*time.Minute, cfg.GetConnMaxLifetime())
	assert.Equal(t, 10*time.Minute, cfg.GetConnMaxIdleTime())
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	content := `
server:
  http-port: ":18080"
database:
  type: sqlite
  conn-max-lifetime: 45m
note:
  default-list-limit: 50
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))

	cfg, realpath, err := LoadConfig(file)
	require.NoError(t, err)
	assert.Equal(t, file, realpath)
	assert.Equal(t, ":18080", cfg.Server.HttpPort)
	assert.Equal(t, 45*time.Minute, cfg.GetConnMaxLifetime())
	assert.Equal(t, 50, cfg.Note.DefaultListLimit)

	// 未写的字段走默认值
	assert.Equal(t, 10*time.Minute, cfg.GetConnMaxIdleTime())
	assert.Equal(t, []string{"forbidden"}, cfg.Note.TitleDenylist)
}
