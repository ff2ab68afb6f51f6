/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"

	"github.com/stormogulen/Installer/commonerrors"
)

const (
	KeyLogSource    = "source"
	KeyLoggerSource = "logger-source"
)

type logrLogger struct {
	mu      sync.RWMutex
	logger  logr.Logger
	closeFn func() error
}

func (l *logrLogger) Close() error {
	if l.closeFn == nil {
		return nil
	}
	return l.closeFn()
}

// Check always succeeds: a logr logger without sink discards messages.
func (l *logrLogger) Check() error {
	return nil
}

func (l *logrLogger) getLogger() logr.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.logger
}

func (l *logrLogger) SetLogSource(source string) error {
	if strings.TrimSpace(source) == "" {
		return commonerrors.ErrNoLogSource
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = l.logger.WithValues(KeyLogSource, source)
	return nil
}

func (l *logrLogger) SetLoggerSource(source string) error {
	if strings.TrimSpace(source) == "" {
		return commonerrors.ErrNoLoggerSource
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = l.logger.WithName(source).WithValues(KeyLoggerSource, source)
	return nil
}

func (l *logrLogger) Log(output ...any) {
	l.getLogger().Info(strings.TrimSpace(fmt.Sprintln(output...)))
}

func (l *logrLogger) LogError(err ...any) {
	var cause error
	if len(err) > 0 {
		if e, ok := err[0].(error); ok {
			cause = e
			err = err[1:]
		}
	}
	l.getLogger().Error(cause, strings.TrimSpace(fmt.Sprintln(err...)))
}

// NewLogrLogger creates loggers based on a logr implementation (https://github.com/go-logr/logr)
func NewLogrLogger(logrImpl logr.Logger, loggerSource string) (Loggers, error) {
	return NewLogrLoggerWithClose(logrImpl, loggerSource, nil)
}

// NewLogrLoggerWithClose is similar to NewLogrLogger but runs closeFunc when the loggers are closed.
func NewLogrLoggerWithClose(logrImpl logr.Logger, loggerSource string, closeFunc func() error) (loggers Loggers, err error) {
	l := &logrLogger{logger: logrImpl, closeFn: closeFunc}
	err = l.SetLoggerSource(loggerSource)
	if err != nil {
		return
	}
	loggers = l
	return
}

// NewLogrLoggerFromLoggers converts loggers into a logr.Logger
func NewLogrLoggerFromLoggers(loggers Loggers) logr.Logger {
	return stdr.New(newGolangStdLoggerFromLoggers(loggers))
}

func newGolangStdLoggerFromLoggers(loggers Loggers) *log.Logger {
	return log.New(newInfoWriterFromLoggers(loggers), "", 0)
}
