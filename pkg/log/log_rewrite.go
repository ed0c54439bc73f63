package log

import "go.uber.org/zap"

// Package-level helpers delegating to the global sugared logger.
// They fall back to a nop logger before Init so early callers never panic.

func s() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	if sugar == nil {
		return zap.NewNop().Sugar()
	}
	return sugar
}

func Debugf(format string, args ...any) { s().Debugf(format, args...) }
func Infof(format string, args ...any)  { s().Infof(format, args...) }
func Warnf(format string, args ...any)  { s().Warnf(format, args...) }
func Errorf(format string, args ...any) { s().Errorf(format, args...) }
func Fatalf(format string, args ...any) { s().Fatalf(format, args...) }

func Debug(args ...any) { s().Debug(args...) }
func Info(args ...any)  { s().Info(args...) }
func Warn(args ...any)  { s().Warn(args...) }
func Error(args ...any) { s().Error(args...) }

func Debugw(msg string, kv ...any) { s().Debugw(msg, kv...) }
func Infow(msg string, kv ...any)  { s().Infow(msg, kv...) }
func Warnw(msg string, kv ...any)  { s().Warnw(msg, kv...) }
func Errorw(msg string, kv ...any) { s().Errorw(msg, kv...) }
