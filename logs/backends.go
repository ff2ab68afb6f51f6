/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"log/slog"

	"github.com/hashicorp/go-hclog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"github.com/stormogulen/Installer/commonerrors"
	"github.com/stormogulen/Installer/logs/logrimp"
)

const (
	syncError = "invalid argument" // sync error can happen on Linux (sync /dev/stderr: invalid argument) see https://github.com/uber-go/zap/issues/328
)

// NewZapLogger returns a logger which uses zap logger (https://github.com/uber-go/zap)
func NewZapLogger(zapL *zap.Logger, loggerSource string) (loggers Loggers, err error) {
	if zapL == nil {
		err = commonerrors.ErrNoLogger
		return
	}
	return NewLogrLoggerWithClose(logrimp.NewZapLogger(zapL), loggerSource, func() error {
		err := zapL.Sync()
		if commonerrors.CorrespondTo(err, syncError, "inappropriate ioctl") {
			return nil
		}
		return err
	})
}

// NewLogrusLogger returns a logger which uses logrus logger (https://github.com/Sirupsen/logrus)
func NewLogrusLogger(logrusL *logrus.Logger, loggerSource string) (loggers Loggers, err error) {
	if logrusL == nil {
		err = commonerrors.ErrNoLogger
		return
	}
	return NewLogrLogger(logrimp.NewLogrusLogger(logrusL), loggerSource)
}

// NewHclogLogger returns a logger which uses hclog logger (https://github.com/hashicorp/go-hclog)
func NewHclogLogger(hclogL hclog.Logger, loggerSource string) (loggers Loggers, err error) {
	if hclogL == nil {
		err = commonerrors.ErrNoLogger
		return
	}
	return NewLogrLogger(logrimp.NewHclogLogger(hclogL), loggerSource)
}

// NewSlogLogger returns a logger which uses slog logger (standard library package)
func NewSlogLogger(slogL *slog.Logger, loggerSource string) (loggers Loggers, err error) {
	if slogL == nil {
		err = commonerrors.ErrNoLogger
		return
	}
	return NewLogrLogger(logrimp.NewSlogLogger(slogL), loggerSource)
}

// NewNoopLogger returns a logger discarding everything.
func NewNoopLogger(loggerSource string) (loggers Loggers, err error) {
	return NewLogrLogger(logrimp.NewNoopLogger(), loggerSource)
}
