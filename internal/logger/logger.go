// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the server and cryptctl.
//
// Request and campaign scoped loggers travel in the context: handlers use
// FromRequest, services and workers use FromContext. Secrets, plaintext and
// tokens are never passed to a logger.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger on stdout. Every entry carries role, a
// timestamp and the calling function under "func". The global level is
// reset to Debug.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	return newLogger(os.Stdout, role)
}

func newLogger(w io.Writer, role string) *Logger {
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// NewLoggerWithLevel is NewLogger with the global level parsed from level
// ("debug", "info", "warn", ...). An empty level keeps Debug.
func NewLoggerWithLevel(role, level string) (*Logger, error) {
	l := NewLogger(role)
	if level == "" {
		return l, nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zerolog.SetGlobalLevel(lvl)

	return l, nil
}

// Nop discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger the trace id middleware put into the
// request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext never returns nil: without an attached logger zerolog hands
// out its default one.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

func (l *Logger) WithCampaign(campaignID string) *Logger {
	return &Logger{l.With().Str("campaign_id", campaignID).Logger()}
}

func (l *Logger) WithPool(poolID int64) *Logger {
	return &Logger{l.With().Int64("pool_id", poolID).Logger()}
}
