/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/stormogulen/Installer/commonerrors"
)

type zerologLoggers struct {
	mu     sync.RWMutex
	logger zerolog.Logger
}

func (l *zerologLoggers) Close() error {
	return nil
}

func (l *zerologLoggers) Check() error {
	return nil
}

func (l *zerologLoggers) SetLogSource(source string) error {
	if strings.TrimSpace(source) == "" {
		return commonerrors.ErrNoLogSource
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = l.logger.With().Str(KeyLogSource, source).Logger()
	return nil
}

func (l *zerologLoggers) SetLoggerSource(source string) error {
	if strings.TrimSpace(source) == "" {
		return commonerrors.ErrNoLoggerSource
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = l.logger.With().Str(KeyLoggerSource, source).Logger()
	return nil
}

func (l *zerologLoggers) get() *zerolog.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	logger := l.logger
	return &logger
}

func (l *zerologLoggers) Log(output ...any) {
	l.get().Info().Msg(strings.TrimSpace(fmt.Sprintln(output...)))
}

func (l *zerologLoggers) LogError(err ...any) {
	l.get().Error().Msg(strings.TrimSpace(fmt.Sprintln(err...)))
}

// NewZerologLogger returns a logger which uses zerolog logger (https://github.com/rs/zerolog)
func NewZerologLogger(zerologL zerolog.Logger, loggerSource string) (loggers Loggers, err error) {
	l := &zerologLoggers{logger: zerologL}
	err = l.SetLoggerSource(loggerSource)
	if err != nil {
		return
	}
	loggers = l
	return
}
