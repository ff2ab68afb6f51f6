/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/stormogulen/Installer/commonerrors"
	"github.com/stormogulen/Installer/commonerrors/errortest"
)

func TestLog(t *testing.T) {
	defer goleak.VerifyNone(t)
	var loggers Loggers = &GenericLoggers{}
	err := loggers.Check()
	errortest.AssertError(t, err, commonerrors.ErrNoLogger)
	err = loggers.Close()
	assert.NoError(t, err)
}

func testLog(t *testing.T, loggers Loggers) {
	t.Helper()
	err := loggers.Check()
	require.NoError(t, err)
	defer func() { _ = loggers.Close() }()

	err = loggers.SetLogSource("source1")
	require.NoError(t, err)
	err = loggers.SetLoggerSource("LoggerSource1")
	require.NoError(t, err)

	loggers.Log("execute action of unit-0 succeeded")
	loggers.Log("script action of unit-0 succeeded")
	loggers.Log("\n")
	loggers.LogError("\n")
	err = loggers.SetLogSource("source2")
	require.NoError(t, err)

	loggers.LogError(commonerrors.ErrCancelled)
	loggers.LogError(nil)
	loggers.LogError(commonerrors.ErrUnexpected, "rollback action of unit-1 failed")
	loggers.LogError("rollback failed", commonerrors.ErrUnexpected)
	loggers.LogError(nil, "no error")
	err = loggers.Close()
	require.NoError(t, err)
}

func TestStdLogger(t *testing.T) {
	defer goleak.VerifyNone(t)
	loggers, err := NewStdLogger("Test")
	require.NoError(t, err)
	testLog(t, loggers)
}

func TestNoopLogger(t *testing.T) {
	defer goleak.VerifyNone(t)
	loggers, err := NewNoopLogger("Test")
	require.NoError(t, err)
	testLog(t, loggers)
}

func TestZapLogger(t *testing.T) {
	defer goleak.VerifyNone(t)
	logger, err := zap.NewDevelopment()
	require.NoError(t, err)
	loggers, err := NewZapLogger(logger, "Test")
	require.NoError(t, err)
	testLog(t, loggers)

	_, err = NewZapLogger(nil, "Test")
	errortest.AssertError(t, err, commonerrors.ErrNoLogger)
}

func TestLogrusLogger(t *testing.T) {
	defer goleak.VerifyNone(t)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	loggers, err := NewLogrusLogger(logger, "Test")
	require.NoError(t, err)
	testLog(t, loggers)
}

func TestHclogLogger(t *testing.T) {
	defer goleak.VerifyNone(t)
	loggers, err := NewHclogLogger(hclog.New(&hclog.LoggerOptions{Output: io.Discard}), "Test")
	require.NoError(t, err)
	testLog(t, loggers)
}

func TestSlogLogger(t *testing.T) {
	defer goleak.VerifyNone(t)
	buf := &bytes.Buffer{}
	loggers, err := NewSlogLogger(slog.New(slog.NewTextHandler(buf, nil)), "Test")
	require.NoError(t, err)
	message := faker.Sentence()
	loggers.Log(message)
	assert.Contains(t, buf.String(), message)
	testLog(t, loggers)
}

func TestZerologLogger(t *testing.T) {
	defer goleak.VerifyNone(t)
	buf := &bytes.Buffer{}
	loggers, err := NewZerologLogger(zerolog.New(buf), "Test")
	require.NoError(t, err)
	message := faker.Sentence()
	loggers.LogError(message)
	assert.Contains(t, buf.String(), message)
	assert.Contains(t, buf.String(), KeyLoggerSource)
	testLog(t, loggers)

	_, err = NewZerologLogger(zerolog.New(buf), " ")
	errortest.AssertError(t, err, commonerrors.ErrNoLoggerSource)
}

func TestStringLogger(t *testing.T) {
	defer goleak.VerifyNone(t)
	loggers, err := NewStringLogger("Test")
	require.NoError(t, err)
	require.NoError(t, loggers.Check())
	loggers.LogError("Test err")
	loggers.Log("Test1")
	contents := loggers.GetLogContent()
	assert.Contains(t, contents, "Test err")
	assert.Contains(t, contents, "Test1")
	assert.Contains(t, contents, "[Test] Error: ")
	require.NoError(t, loggers.Close())
	assert.Empty(t, loggers.GetLogContent())
}

func TestRollingFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "installer.log")
	loggers, err := NewRollingFileLogger(path, "Test")
	require.NoError(t, err)
	require.NoError(t, loggers.Check())
	message := faker.Sentence()
	loggers.Log(message)
	loggers.LogError("failure")
	require.NoError(t, loggers.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), message)
	// the timestamp sits between the prefix and the message.
	assert.Regexp(t, `\[Test\] Error: .*failure`, string(content))
	assert.Regexp(t, `\[Test\] Output: .*`+regexp.QuoteMeta(message), string(content))

	_, err = NewRollingFileLogger(" ", "Test")
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
}

func TestCombinedLoggers(t *testing.T) {
	defer goleak.VerifyNone(t)
	_, err := NewCombinedLoggers()
	errortest.AssertError(t, err, commonerrors.ErrNoLogger)

	first, err := NewStringLogger("first")
	require.NoError(t, err)
	second, err := NewStringLogger("second")
	require.NoError(t, err)
	combined, err := NewCombinedLoggers(first, second)
	require.NoError(t, err)
	require.NoError(t, combined.Check())
	require.NoError(t, combined.SetLogSource(faker.Word()))
	combined.Log("shared")
	combined.LogError("shared error")
	assert.Contains(t, first.GetLogContent(), "shared error")
	assert.Contains(t, second.GetLogContent(), "shared")
	require.NoError(t, combined.Close())
}

func TestLogrLoggerFromLoggers(t *testing.T) {
	defer goleak.VerifyNone(t)
	loggers, err := NewStringLogger("Test")
	require.NoError(t, err)
	logger := NewLogrLoggerFromLoggers(loggers)
	message := faker.Sentence()
	logger.Info(message, "unit", "unit-0")
	logger.Error(commonerrors.ErrUnexpected, "retrying")
	content := loggers.GetLogContent()
	assert.Contains(t, content, message)
	assert.Contains(t, content, "retrying")
	assert.True(t, strings.Contains(content, "unit-0"))
}
