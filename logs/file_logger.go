/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"fmt"
	"log"
	"strings"

	"github.com/DeRuina/timberjack"

	"github.com/stormogulen/Installer/commonerrors"
)

const (
	defaultMaxFileSizeMB = 10
	defaultMaxBackups    = 3
	defaultMaxAgeDays    = 28
)

// RollingFileLoggers logs to a file which is rotated once it grows too large.
type RollingFileLoggers struct {
	GenericLoggers
	writer *timberjack.Logger
}

func (l *RollingFileLoggers) Check() error {
	if l.writer == nil {
		return commonerrors.ErrNoLogger
	}
	return l.GenericLoggers.Check()
}

// Close flushes and closes the log file.
func (l *RollingFileLoggers) Close() error {
	if l.writer == nil {
		return nil
	}
	return l.writer.Close()
}

// NewRollingFileLogger creates loggers writing to the file at path.
func NewRollingFileLogger(path string, loggerSource string) (loggers *RollingFileLoggers, err error) {
	if strings.TrimSpace(path) == "" {
		err = commonerrors.UndefinedParameter("log file path")
		return
	}
	writer := &timberjack.Logger{
		Filename:   path,
		MaxSize:    defaultMaxFileSizeMB,
		MaxBackups: defaultMaxBackups,
		MaxAge:     defaultMaxAgeDays,
	}
	loggers = &RollingFileLoggers{
		GenericLoggers: GenericLoggers{
			Output: log.New(writer, fmt.Sprintf("[%v] Output: ", loggerSource), log.LstdFlags),
			Error:  log.New(writer, fmt.Sprintf("[%v] Error: ", loggerSource), log.LstdFlags),
		},
		writer: writer,
	}
	return
}
