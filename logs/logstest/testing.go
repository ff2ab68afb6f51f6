/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package logstest provides loggers to use in tests.
package logstest

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"

	"github.com/stormogulen/Installer/logs"
	"github.com/stormogulen/Installer/logs/logrimp"
)

// NewNullTestLogger returns a logger to nothing
func NewNullTestLogger() logr.Logger {
	return logrimp.NewNoopLogger()
}

// NewTestLogger returns a logger to use in tests
func NewTestLogger(t *testing.T) logr.Logger {
	t.Helper()
	return testr.New(t)
}

// NewTestLoggers returns loggers writing to the test output.
func NewTestLoggers(t *testing.T) logs.Loggers {
	t.Helper()
	loggers, err := logs.NewLogrLogger(NewTestLogger(t), t.Name())
	if err != nil {
		t.Fatalf("could not create test loggers: %v", err)
	}
	return loggers
}
