package logger

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLogger 初始化全局日志，失败直接panic。之前的日志都进zap默认的nop logger
func InitLogger(level, projectName, logPath string, maxAge, rotationTime time.Duration, rotationSize uint32, sentryDsn string) {
	l, err := initZap(level, projectName, logPath, maxAge, rotationTime, rotationSize, sentryDsn)
	if err != nil {
		panic(err)
	}
	// 替换全局日志
	zap.ReplaceGlobals(l)

	// 将系统输出重定向到zap中，保证所有出现异常均能打印到文件中
	if _, err := zap.RedirectStdLogAt(l, zapcore.ErrorLevel); err != nil {
		panic(err)
	}
}

func Sync() {
	_ = zap.L().Sync()
}

func Debugf(template string, args ...interface{}) {
	zap.S().Debugf(template, args...)
}

func Infof(template string, args ...interface{}) {
	zap.S().Infof(template, args...)
}

func Warnf(template string, args ...interface{}) {
	zap.S().Warnf(template, args...)
}

func Errorf(template string, args ...interface{}) {
	zap.S().Errorf(template, args...)
}

func Info(args ...interface{}) {
	zap.S().Info(args...)
}

func Warn(args ...interface{}) {
	zap.S().Warn(args...)
}

func Error(args ...interface{}) {
	zap.S().Error(args...)
}
