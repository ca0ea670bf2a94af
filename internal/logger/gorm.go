package logger

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// GormAdapter bridges gorm's query logging onto zap. It is wired into the
// gorm session only when database logging is enabled in the configuration.
type GormAdapter struct {
	log   *zap.Logger
	level gormlogger.LogLevel
}

// NewGormAdapter returns a gorm logger writing through the given zap
// logger at Info level.
func NewGormAdapter(log *zap.Logger) *GormAdapter {
	return &GormAdapter{log: log, level: gormlogger.Info}
}

func (a *GormAdapter) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *a
	clone.level = level
	return &clone
}

func (a *GormAdapter) Info(_ context.Context, msg string, args ...interface{}) {
	if a.level >= gormlogger.Info {
		a.log.Sugar().Infof(msg, args...)
	}
}

func (a *GormAdapter) Warn(_ context.Context, msg string, args ...interface{}) {
	if a.level >= gormlogger.Warn {
		a.log.Sugar().Warnf(msg, args...)
	}
}

func (a *GormAdapter) Error(_ context.Context, msg string, args ...interface{}) {
	if a.level >= gormlogger.Error {
		a.log.Sugar().Errorf(msg, args...)
	}
}

func (a *GormAdapter) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if a.level <= gormlogger.Silent {
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
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		a.log.Error("query failed", append(fields, zap.Error(err))...)
	case elapsed > slowQueryThreshold:
		a.log.Warn("slow query", fields...)
	default:
		a.log.Debug("query", fields...)
	}
}
