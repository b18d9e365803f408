package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// gormZerolog routes GORM's query log through the global zerolog logger
type gormZerolog struct {
	logger        zerolog.Logger
	logLevel      logger.LogLevel
	slowThreshold time.Duration
}

func newGormLogger() logger.Interface {
	level := logger.Warn
	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		level = logger.Info
	}
	return &gormZerolog{
		logger:        log.Logger,
		logLevel:      level,
		slowThreshold: 200 * time.Millisecond,
	}
}

func (l *gormZerolog) LogMode(level logger.LogLevel) logger.Interface {
	clone := *l
	clone.logLevel = level
	return &clone
}

func (l *gormZerolog) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Info {
		l.logger.Info().Msgf(msg, data...)
	}
}

func (l *gormZerolog) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Warn {
		l.logger.Warn().Msgf(msg, data...)
	}
}

func (l *gormZerolog) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Error {
		l.logger.Error().Msgf(msg, data...)
	}
}

func (l *gormZerolog) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logLevel <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	event := l.logger.With().
		Dur("elapsed_ms", elapsed).
		Int64("rows", rows).
		Str("sql", sql).
		Logger()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.logLevel >= logger.Error:
		event.Error().Err(err).Msg("database query error")
	case l.slowThreshold != 0 && elapsed > l.slowThreshold && l.logLevel >= logger.Warn:
		event.Warn().Dur("threshold", l.slowThreshold).Msg("slow database query")
	case l.logLevel >= logger.Info:
		event.Info().Msg("database query")
	}
}
