package database

import (
	"context"
	"errors"
	"time"

	"github.com/go-quizhub/quizhub/pkg/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormLogger 将 gorm 日志桥接到全局 zap logger
type GormLogger struct {
	conf logger.Config
}

func NewGormLogger(conf logger.Config) logger.Interface {
	return &GormLogger{conf: conf}
}

func (l *GormLogger) LogMode(level logger.LogLevel) logger.Interface {
	newLogger := *l
	newLogger.conf.LogLevel = level
	return &newLogger
}

func (l *GormLogger) Info(_ context.Context, msg string, data ...any) {
	if l.conf.LogLevel >= logger.Info {
		log.Infof(msg, data...)
	}
}

func (l *GormLogger) Warn(_ context.Context, msg string, data ...any) {
	if l.conf.LogLevel >= logger.Warn {
		log.Warnf(msg, data...)
	}
}

func (l *GormLogger) Error(_ context.Context, msg string, data ...any) {
	if l.conf.LogLevel >= logger.Error {
		log.Errorf(msg, data...)
	}
}

func (l *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.conf.LogLevel <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && !(l.conf.IgnoreRecordNotFoundError && errors.Is(err, gorm.ErrRecordNotFound)):
		log.Errorw("sql error", "sql", sql, "rows", rows, "elapsed", elapsed, "error", err)
	case elapsed > l.conf.SlowThreshold && l.conf.SlowThreshold != 0:
		log.Warnw("slow sql", "sql", sql, "rows", rows, "elapsed", elapsed)
	case l.conf.LogLevel == logger.Info:
		log.Debugw("sql", "sql", sql, "rows", rows, "elapsed", elapsed)
	}
}
