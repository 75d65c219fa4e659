// Package global 持有进程级共享状态，目前只有日志器
package global

import (
	"fmt"
	"runtime"

	dumpx "github.com/gookit/goutil/dump"
	"go.uber.org/zap"
)

// Logger 进程级日志器，由服务启动流程赋值
var Logger *zap.Logger

// Log 获取进程级日志器，未初始化时返回空实现
func Log() *zap.Logger {
	if Logger == nil {
		return zap.NewNop()
	}
	return Logger
}

// Dump 打印调用位置和变量内容，仅用于调试
func Dump(a ...any) {
	_, file, line, ok := runtime.Caller(1)
	if ok {
		fmt.Printf("\033[32m%s:%d:\033[0m\n", file, line)
	}
	dumpx.P(a...)
}
