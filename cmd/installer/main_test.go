/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stormogulen/Installer/commonerrors"
	"github.com/stormogulen/Installer/commonerrors/errortest"
	"github.com/stormogulen/Installer/logs"
	"github.com/stormogulen/Installer/retry"
)

func runInstaller(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(context.Background(), "installer", args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func lines(output string) []string {
	return strings.Split(strings.TrimSpace(output), "\n")
}

func TestRun_Committed(t *testing.T) {
	code, stdout, stderr := runInstaller(t, "--log-backend", logs.BackendNoop)
	assert.Equal(t, exitCommitted, code)
	assert.Empty(t, stderr)
	assert.Equal(t, []string{
		"execute copy@installer: succeeded",
		"script copy@installer: succeeded",
		"execute directory@installer: succeeded",
		"script directory@installer: succeeded",
		"installation committed",
	}, lines(stdout))
}

func TestRun_RolledBack(t *testing.T) {
	code, stdout, stderr := runInstaller(t, "--log-backend", logs.BackendNoop, "--fail-at", "directory:execute")
	assert.Equal(t, exitRolledBack, code)
	assert.Contains(t, stderr, "injected fault")
	output := lines(stdout)
	require.Len(t, output, 5)
	assert.True(t, strings.HasPrefix(output[2], "execute directory@installer: failed"))
	assert.Equal(t, "rollback copy@installer: succeeded", output[3])
	assert.Equal(t, "installation rolledback", output[4])
}

func TestRun_Environment(t *testing.T) {
	t.Setenv("INSTALLER_FAIL_AT", "copy:script")
	t.Setenv("INSTALLER_LOGGING_BACKEND", logs.BackendNoop)
	code, stdout, _ := runInstaller(t)
	assert.Equal(t, exitRolledBack, code)
	assert.Equal(t, []string{
		"execute copy@installer: succeeded",
		"script copy@installer: failed (script action of copy@installer failed: unexpected: injected fault: at copy:script)",
		"rollback copy@installer: succeeded",
		"installation rolledback",
	}, lines(stdout))
}

func TestRun_LogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "installer.log")
	code, _, stderr := runInstaller(t, "--log-backend", logs.BackendNoop, "--log-file", logFile, "--verbose")
	assert.Equal(t, exitCommitted, code)
	assert.Empty(t, stderr)
	assert.FileExists(t, logFile)
}

func TestRun_InvalidConfiguration(t *testing.T) {
	tests := [][]string{
		{"--fail-at", "copy"},
		{"--log-backend", faker.Word()},
		{"--destination", "/src/payload.bin"},
		{"--" + faker.Word()},
	}
	for i := range tests {
		args := tests[i]
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			code, stdout, stderr := runInstaller(t, args...)
			assert.Equal(t, exitInvalidConfiguration, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "invalid configuration")
		})
	}
}

func TestLoadConfiguration(t *testing.T) {
	cfg, err := loadConfiguration("installer", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfiguration(), cfg)

	directory := "/opt/" + faker.Word()
	cfg, err = loadConfiguration("installer", []string{"--max-retry", "5", "--directory", directory, "--log-backend", logs.BackendZerolog})
	require.NoError(t, err)
	assert.True(t, cfg.Retry.Enabled)
	assert.Equal(t, 5, cfg.Retry.RetryMax)
	assert.Equal(t, directory, cfg.Layout.Directory)
	assert.Equal(t, directory, cfg.Installer().Layout.Directory)
	assert.Equal(t, logs.BackendZerolog, cfg.Logging.Backend)

	cfg = DefaultConfiguration()
	cfg.FailAt = "nowhere:execute"
	errortest.AssertError(t, cfg.Validate(), commonerrors.ErrInvalid)
}

func TestLoadConfiguration_RetriesFromEnvironment(t *testing.T) {
	t.Run("more than one attempt", func(t *testing.T) {
		t.Setenv("INSTALLER_RETRY_MAX_RETRY", "5")
		cfg, err := loadConfiguration("installer", nil)
		require.NoError(t, err)
		assert.True(t, cfg.Retry.Enabled)
		assert.Equal(t, 5, cfg.Retry.RetryMax)
		assert.Equal(t, retry.DefaultBasicRetryPolicyConfiguration().RetryWaitMin, cfg.Retry.RetryWaitMin)
		assert.Equal(t, retry.DefaultBasicRetryPolicyConfiguration().RetryWaitMax, cfg.Retry.RetryWaitMax)
	})
	t.Run("wait bounds kept", func(t *testing.T) {
		t.Setenv("INSTALLER_RETRY_MAX_RETRY", "2")
		t.Setenv("INSTALLER_RETRY_RETRY_WAIT_MAX", "5s")
		cfg, err := loadConfiguration("installer", nil)
		require.NoError(t, err)
		assert.True(t, cfg.Retry.Enabled)
		assert.Equal(t, 5*time.Second, cfg.Retry.RetryWaitMax)
	})
	t.Run("single attempt", func(t *testing.T) {
		t.Setenv("INSTALLER_RETRY_MAX_RETRY", "1")
		cfg, err := loadConfiguration("installer", nil)
		require.NoError(t, err)
		assert.False(t, cfg.Retry.Enabled)
	})
}
