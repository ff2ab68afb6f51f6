/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Command installer installs a file and a data directory in an in-memory filesystem, rolling back on failure.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/stormogulen/Installer/internal/fsactions"
	"github.com/stormogulen/Installer/logs"
	"github.com/stormogulen/Installer/transaction"
)

const (
	exitCommitted = iota
	exitRolledBack
	exitInvalidConfiguration
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[0], os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) int {
	cfg, err := loadConfiguration(name, args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitCommitted
		}
		_, _ = fmt.Fprintf(stderr, "invalid configuration: %v\n", err)
		return exitInvalidConfiguration
	}
	loggers, err := logs.NewLoggerFromConfiguration(&cfg.Logging)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "could not create loggers: %v\n", err)
		return exitInvalidConfiguration
	}
	defer func() { _ = loggers.Close() }()

	fs, err := newFileSystem(cfg.Layout.Source)
	if err != nil {
		loggers.LogError(err, "could not prepare the filesystem")
		return exitInvalidConfiguration
	}
	pipeline, err := fsactions.InstallerPipeline(ctx, fs, cfg.Installer(), loggers,
		transaction.WithObserver(transaction.OutcomeObserverFunc(func(outcome transaction.Outcome) {
			_, _ = fmt.Fprintln(stdout, outcome)
		})))
	if err != nil {
		loggers.LogError(err, "could not create the installation pipeline")
		return exitInvalidConfiguration
	}
	report, err := pipeline.Execute(ctx)
	_, _ = fmt.Fprintf(stdout, "installation %v\n", report.State)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "installation failed: %v\n", err)
	}
	if !report.Committed() {
		return exitRolledBack
	}
	return exitCommitted
}

// newFileSystem returns an in-memory filesystem holding the file to install.
func newFileSystem(source string) (afero.Fs, error) {
	fs := afero.NewMemMapFs()
	err := afero.WriteFile(fs, source, []byte("payload\n"), 0644)
	if err != nil {
		return nil, fsactions.ConvertFileSystemError(err)
	}
	return fs, nil
}
