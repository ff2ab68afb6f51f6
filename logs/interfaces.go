/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import "io"

// Loggers is the logging surface used by pipelines to report step outcomes.
type Loggers interface {
	io.Closer
	// Check checks whether the loggers are correctly defined or not.
	Check() error
	// SetLogSource sets the source of the log message e.g. the pipeline run.
	SetLogSource(source string) error
	// SetLoggerSource sets the source of the logger e.g. installer, pipeline.
	SetLoggerSource(source string) error
	// Log logs to the output logger.
	Log(output ...any)
	// LogError logs to the Error logger.
	LogError(err ...any)
}
