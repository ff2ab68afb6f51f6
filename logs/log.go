/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package logs defines loggers used to report pipeline runs.
package logs

import (
	"fmt"
	"log"
	"os"

	"github.com/stormogulen/Installer/commonerrors"
)

// GenericLoggers defines loggers based on two standard library loggers.
type GenericLoggers struct {
	Output *log.Logger
	Error  *log.Logger
}

// Check checks whether the loggers are correctly defined or not.
func (l *GenericLoggers) Check() error {
	if l.Error == nil || l.Output == nil {
		return commonerrors.ErrNoLogger
	}
	return nil
}

func (l *GenericLoggers) SetLogSource(_ string) error {
	return nil
}

func (l *GenericLoggers) SetLoggerSource(_ string) error {
	return nil
}

// Log logs to the output logger.
func (l *GenericLoggers) Log(output ...any) {
	l.Output.Println(output...)
}

// LogError logs to the Error logger.
func (l *GenericLoggers) LogError(err ...any) {
	l.Error.Println(err...)
}

// Close closes the logger
func (l *GenericLoggers) Close() error {
	return nil
}

// NewStdLogger creates a logger to standard output/error
func NewStdLogger(loggerSource string) (loggers Loggers, err error) {
	loggers = &GenericLoggers{
		Output: log.New(os.Stdout, fmt.Sprintf("[%v] Output: ", loggerSource), log.LstdFlags),
		Error:  log.New(os.Stderr, fmt.Sprintf("[%v] Error: ", loggerSource), log.LstdFlags),
	}
	return
}
