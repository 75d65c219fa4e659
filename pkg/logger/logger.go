package logger

import (
	"os"
	"strings"

	"github.com/haierkeys/note-keeper-service/pkg/fileurl"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config logger configuration
// Config 日志器配置
type Config struct {
	Level      string // debug / info / warn / error
	File       string // log file path, empty for console only // 日志文件路径，为空则只输出控制台
	Production bool   // production mode uses JSON encoding // 生产模式使用 JSON 编码
}

// NewLogger creates a zap logger with console output and optional
// lumberjack file rotation
// NewLogger 创建一个 zap 日志器，输出到控制台，可选使用 lumberjack 进行文件切割
func NewLogger(cfg Config) (*zap.Logger, error) {

	level := parseLevel(cfg.Level)

	var cores []zapcore.Core

	consoleEncoderConfig := zap.NewDevelopmentEncoderConfig()
	consoleEncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	consoleEncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	consoleEncoder := zapcore.NewConsoleEncoder(consoleEncoderConfig)
	cores = append(cores, zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stderr), level))

	if cfg.File != "" {
		if err := fileurl.CreatePath(cfg.File, os.ModePerm); err != nil {
			return nil, err
		}

		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    100, // MB
			MaxBackups: 10,
			MaxAge:     30, // days
			Compress:   true,
		})

		var fileEncoder zapcore.Encoder
		if cfg.Production {
			fileEncoderConfig := zap.NewProductionEncoderConfig()
			fileEncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
			fileEncoder = zapcore.NewJSONEncoder(fileEncoderConfig)
		} else {
			fileEncoderConfig := zap.NewDevelopmentEncoderConfig()
			fileEncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
			fileEncoder = zapcore.NewConsoleEncoder(fileEncoderConfig)
		}
		cores = append(cores, zapcore.NewCore(fileEncoder, fileWriter, level))
	}

	core := zapcore.NewTee(cores...)
	lg := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	return lg, nil
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
