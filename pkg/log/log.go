// Copyright 2020 Anapaya Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package log implements application logging on top of zap.
//
// Log entry context is a flat list of alternating keys and values, the same
// shape used throughout the codebase for error context. Loggers are cheap to
// derive: New returns a child logger carrying additional context, and
// CtxWith/FromCtx move loggers through a context.Context.
package log

import (
	"flag"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nsiproto/supa/pkg/private/serrors"
)

func init() {
	zap.ReplaceGlobals(zap.NewNop())
}

// Setup configures the logging library with the given config. It must be
// called before the logging library is used, otherwise all entries are
// discarded.
func Setup(cfg Config, opts ...Option) error {
	cfg.InitDefaults()
	return setupConsole(cfg.Console, applyOptions(opts))
}

func setupConsole(cfg ConsoleConfig, opts options) error {
	lvl, err := parseLvl(cfg.Level)
	if err != nil {
		return err
	}
	encoding := "console"
	if strings.EqualFold(cfg.Format, "json") {
		encoding = "json"
	}
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeTime = timeEncoder
	encoderCfg.EncodeDuration = zapcore.StringDurationEncoder

	zCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(lvl),
		DisableCaller:     cfg.DisableCaller,
		DisableStacktrace: true,
		Encoding:          encoding,
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}
	zOpts, err := stacktraceOptions(cfg.StacktraceLevel)
	if err != nil {
		return err
	}
	zOpts = append(zOpts, opts.zapOptions()...)
	logger, err := zCfg.Build(zOpts...)
	if err != nil {
		return serrors.Wrap("creating logger", err)
	}
	zap.ReplaceGlobals(logger)
	return nil
}

func parseLvl(lvl string) (zapcore.Level, error) {
	switch strings.ToLower(lvl) {
	case "debug", "dbug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "error", "eror":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, serrors.New("unsupported log level", "level", lvl)
	}
}

func stacktraceOptions(lvl string) ([]zap.Option, error) {
	switch strings.ToLower(lvl) {
	case "", "none":
		return nil, nil
	case "error":
		return []zap.Option{zap.AddStacktrace(zapcore.ErrorLevel)}, nil
	case "all":
		return []zap.Option{zap.AddStacktrace(zapcore.DebugLevel)}, nil
	default:
		return nil, serrors.New("unsupported stacktrace level", "level", lvl)
	}
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02T15:04:05.000000-0700"))
}

// Level is the log level.
type Level zapcore.Level

// The different log levels.
const (
	DebugLevel = Level(zapcore.DebugLevel)
	InfoLevel  = Level(zapcore.InfoLevel)
	ErrorLevel = Level(zapcore.ErrorLevel)
)

// Logger describes the logger interface.
type Logger interface {
	New(ctx ...any) Logger
	Debug(msg string, ctx ...any)
	Info(msg string, ctx ...any)
	Error(msg string, ctx ...any)
	Enabled(lvl Level) bool
}

var _ Logger = (*logger)(nil)

type logger struct {
	logger *zap.Logger
}

// New creates a logger with the given context.
func New(ctx ...any) Logger {
	return &logger{logger: zap.L().With(convertCtx(ctx)...)}
}

// Root returns the root logger. It's a logger without any context.
func Root() Logger {
	return &logger{logger: zap.L()}
}

func (l *logger) New(ctx ...any) Logger {
	return &logger{logger: l.logger.With(convertCtx(ctx)...)}
}

func (l *logger) Debug(msg string, ctx ...any) {
	l.logger.Debug(msg, convertCtx(ctx)...)
}

func (l *logger) Info(msg string, ctx ...any) {
	l.logger.Info(msg, convertCtx(ctx)...)
}

func (l *logger) Error(msg string, ctx ...any) {
	l.logger.Error(msg, convertCtx(ctx)...)
}

func (l *logger) Enabled(lvl Level) bool {
	return l.logger.Core().Enabled(zapcore.Level(lvl))
}

func (l *logger) WithOptions(opts ...zap.Option) Logger {
	return &logger{logger: l.logger.WithOptions(opts...)}
}

// Debug logs at debug level.
func Debug(msg string, ctx ...any) {
	Root().Debug(msg, ctx...)
}

// Info logs at info level.
func Info(msg string, ctx ...any) {
	Root().Info(msg, ctx...)
}

// Error logs at error level.
func Error(msg string, ctx ...any) {
	Root().Error(msg, ctx...)
}

// Discard sets the logger up to discard all log entries. This is useful for
// testing.
func Discard() {
	zap.ReplaceGlobals(zap.NewNop())
}

// Flush writes the logs to the underlying buffer.
func Flush() error {
	return zap.L().Sync()
}

// HandlePanic catches panics and logs them.
func HandlePanic() {
	if msg := recover(); msg != nil {
		// If this flag is set, we are inside a test.
		// In that case we want to rethrow the panic so that it appears in stdout.
		if flag.Lookup("test.v") != nil {
			panic(msg)
		}
		zap.L().Error("Panic", zap.Any("msg", msg), zap.Stack("stack"))
		_ = zap.L().Sync()
		os.Exit(255)
	}
}

func convertCtx(ctx []any) []zap.Field {
	fields := make([]zap.Field, 0, len(ctx)/2)
	for i := 0; i+1 < len(ctx); i += 2 {
		fields = append(fields, zap.Any(ctx[i].(string), ctx[i+1]))
	}
	return fields
}
