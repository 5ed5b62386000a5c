// Copyright (c) 2023-2024 GoXDB Project. All right reserved.

package xresult

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// XLogger is the logging interface used by this package. It abstracts away
// the underlying logging mechanism so that an application can plug in its
// own implementation.
type XLogger interface {
	Tracef(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})

	SetLogLevel(level string) error
	GetLogLevel() string
	SetOutput(output io.Writer)
}

// defaultLogger wraps a logrus logger.
type defaultLogger struct {
	inner *logrus.Logger
}

func (l *defaultLogger) Tracef(format string, args ...interface{}) {
	l.inner.Tracef(format, args...)
}

func (l *defaultLogger) Debugf(format string, args ...interface{}) {
	l.inner.Debugf(format, args...)
}

func (l *defaultLogger) Infof(format string, args ...interface{}) {
	l.inner.Infof(format, args...)
}

func (l *defaultLogger) Warnf(format string, args ...interface{}) {
	l.inner.Warnf(format, args...)
}

func (l *defaultLogger) Errorf(format string, args ...interface{}) {
	l.inner.Errorf(format, args...)
}

func (l *defaultLogger) SetLogLevel(level string) error {
	if strings.EqualFold(level, logLevelOff) {
		// logrus has no off level; panic is the quietest one
		l.inner.SetLevel(logrus.PanicLevel)
		return nil
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	l.inner.SetLevel(parsed)
	return nil
}

func (l *defaultLogger) GetLogLevel() string {
	return strings.ToUpper(l.inner.GetLevel().String())
}

func (l *defaultLogger) SetOutput(output io.Writer) {
	l.inner.SetOutput(output)
}

// CreateDefaultLogger creates and returns a new instance of XLogger with
// the default configuration. It does not modify global state; use SetLogger
// to install it.
func CreateDefaultLogger() XLogger {
	inner := logrus.New()
	inner.SetLevel(logrus.ErrorLevel)
	return &defaultLogger{inner: inner}
}

var logger = CreateDefaultLogger()

// SetLogger sets a new logger of XLogger interface for this package.
func SetLogger(inLogger XLogger) {
	logger = inLogger
}

// GetLogger returns the logger currently used by this package.
func GetLogger() XLogger {
	return logger
}
