/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"github.com/stormogulen/Installer/commonerrors"
)

const (
	BackendStd     = "std"
	BackendZap     = "zap"
	BackendLogrus  = "logrus"
	BackendHclog   = "hclog"
	BackendZerolog = "zerolog"
	BackendNoop    = "noop"
)

// SupportedBackends lists the logging backends which can be configured.
var SupportedBackends = []string{BackendStd, BackendZap, BackendLogrus, BackendHclog, BackendZerolog, BackendNoop}

// LoggingConfiguration describes which loggers should be created.
type LoggingConfiguration struct {
	Backend string `mapstructure:"backend"`
	Source  string `mapstructure:"source"`
	Verbose bool   `mapstructure:"verbose"`
	// File is an optional path to a rotating log file which receives a copy of every message.
	File string `mapstructure:"file"`
}

func (cfg *LoggingConfiguration) Validate() error {
	backends := make([]any, 0, len(SupportedBackends))
	for i := range SupportedBackends {
		backends = append(backends, SupportedBackends[i])
	}
	err := validation.ValidateStruct(cfg,
		validation.Field(&cfg.Backend, validation.Required, validation.In(backends...)),
		validation.Field(&cfg.Source, validation.Required),
	)
	if err != nil {
		return commonerrors.WrapError(commonerrors.ErrInvalid, err, "invalid logging configuration")
	}
	return nil
}

// DefaultLoggingConfiguration returns a configuration logging to standard output.
func DefaultLoggingConfiguration() *LoggingConfiguration {
	return &LoggingConfiguration{
		Backend: BackendStd,
		Source:  "installer",
	}
}

// NewLoggerFromConfiguration creates loggers as described by cfg.
func NewLoggerFromConfiguration(cfg *LoggingConfiguration) (loggers Loggers, err error) {
	if cfg == nil {
		err = commonerrors.UndefinedParameter("logging configuration")
		return
	}
	err = cfg.Validate()
	if err != nil {
		return
	}
	loggers, err = newBackendLogger(cfg)
	if err != nil || strings.TrimSpace(cfg.File) == "" {
		return
	}
	file, err := NewRollingFileLogger(cfg.File, cfg.Source)
	if err != nil {
		_ = loggers.Close()
		loggers = nil
		return
	}
	return NewCombinedLoggers(loggers, file)
}

func newBackendLogger(cfg *LoggingConfiguration) (Loggers, error) {
	switch cfg.Backend {
	case BackendZap:
		var (
			zapL *zap.Logger
			err  error
		)
		if cfg.Verbose {
			zapL, err = zap.NewDevelopment()
		} else {
			zapL, err = zap.NewProduction()
		}
		if err != nil {
			return nil, commonerrors.WrapError(commonerrors.ErrUnexpected, err, "could not create zap logger")
		}
		return NewZapLogger(zapL, cfg.Source)
	case BackendLogrus:
		logrusL := logrus.New()
		if cfg.Verbose {
			logrusL.SetLevel(logrus.DebugLevel)
		}
		return NewLogrusLogger(logrusL, cfg.Source)
	case BackendHclog:
		level := hclog.Info
		if cfg.Verbose {
			level = hclog.Debug
		}
		return NewHclogLogger(hclog.New(&hclog.LoggerOptions{Name: cfg.Source, Level: level}), cfg.Source)
	case BackendZerolog:
		level := zerolog.InfoLevel
		if cfg.Verbose {
			level = zerolog.DebugLevel
		}
		return NewZerologLogger(zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger(), cfg.Source)
	case BackendNoop:
		return NewNoopLogger(cfg.Source)
	case BackendStd:
		return NewStdLogger(cfg.Source)
	default:
		return nil, commonerrors.Newf(commonerrors.ErrUnsupported, "logging backend %q", cfg.Backend)
	}
}
