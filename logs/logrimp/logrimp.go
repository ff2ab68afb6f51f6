/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package logrimp defines some common logr implementations
package logrimp

import (
	"fmt"
	"log/slog"

	"github.com/bombsimon/logrusr/v4"
	"github.com/evanphx/hclogr"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/go-logr/zapr"
	"github.com/hashicorp/go-hclog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

// NewNoopLogger returns a logger discarding every message.
func NewNoopLogger() logr.Logger {
	return logr.Discard()
}

// NewStdOutLogr returns a logger to standard out.
func NewStdOutLogr() logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Printf("%s: %s\n", prefix, args)
		} else {
			fmt.Println(args)
		}
	}, funcr.Options{})
}

// NewZapLogger returns a new zap logger
func NewZapLogger(logger *zap.Logger) logr.Logger {
	return zapr.NewLogger(logger)
}

// NewHclogLogger returns a new HCLog logger.
func NewHclogLogger(logger hclog.Logger) logr.Logger {
	return hclogr.Wrap(logger)
}

// NewLogrusLogger returns a logrus logger.
func NewLogrusLogger(logger logrus.FieldLogger, opts ...logrusr.Option) logr.Logger {
	return logrusr.New(logger, opts...)
}

// NewSlogLogger returns a logger backed by a slog logger.
func NewSlogLogger(logger *slog.Logger) logr.Logger {
	return logr.FromSlogHandler(logger.Handler())
}
