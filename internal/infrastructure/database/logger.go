package database

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"gamestore/pkg/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormLogger sends gorm's output through the process logger.
type gormLogger struct {
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

func newGormLogger(level gormlogger.LogLevel) gormlogger.Interface {
	return &gormLogger{level: level, slowThreshold: slowQueryThreshold}
}

func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *gormLogger) Info(_ context.Context, format string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		logger.Info(format, args...)
	}
}

func (l *gormLogger) Warn(_ context.Context, format string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		logger.Warn(format, args...)
	}
}

func (l *gormLogger) Error(_ context.Context, format string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		logger.Error(format, args...)
	}
}

func (l *gormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		logger.Logger().Error().Err(err).Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("Query failed")
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		sql, rows := fc()
		logger.Logger().Warn().Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("Slow query")
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		logger.Logger().Debug().Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("Query")
	}
}
