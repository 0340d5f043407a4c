package logger

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
)

const slowThreshold = 200 * time.Millisecond

// gormLogger adapts zap to GORM's statement logger so every executed
// statement is traced through the same sink as the rest of the process.
type gormLogger struct {
	l     *zap.Logger
	level glogger.LogLevel
}

// NewGorm wraps l as a GORM logger.
func NewGorm(l *zap.Logger) glogger.Interface {
	return &gormLogger{l: l, level: glogger.Warn}
}

func (g *gormLogger) LogMode(level glogger.LogLevel) glogger.Interface {
	return &gormLogger{l: g.l, level: level}
}

func (g *gormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	if g.level >= glogger.Info {
		g.l.Sugar().Infof(msg, args...)
	}
}

func (g *gormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	if g.level >= glogger.Warn {
		g.l.Sugar().Warnf(msg, args...)
	}
}

func (g *gormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	if g.level >= glogger.Error {
		g.l.Sugar().Errorf(msg, args...)
	}
}

func (g *gormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= glogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := []zap.Field{
		zap.String("sql", sql),
		zap.Int64("rows", rows),
		zap.Duration("elapsed", elapsed),
	}
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && g.level >= glogger.Error:
		g.l.Error("query failed", append(fields, zap.Error(err))...)
	case elapsed > slowThreshold && g.level >= glogger.Warn:
		g.l.Warn("slow query", fields...)
	case g.level >= glogger.Info:
		g.l.Debug("query", fields...)
	}
}
