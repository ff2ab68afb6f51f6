/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package fsactions

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/afero"

	"github.com/stormogulen/Installer/commonerrors"
	"github.com/stormogulen/Installer/logs"
	"github.com/stormogulen/Installer/retry"
	"github.com/stormogulen/Installer/transaction"
)

const (
	Namespace     = "installer"
	UnitCopy      = "copy"
	UnitDirectory = "directory"
)

// ErrInjectedFault is returned by actions replaced through a Fault.
var ErrInjectedFault = commonerrors.New(commonerrors.ErrUnexpected, "injected fault")

// Units lists the steps of the installer, in the order they run.
var Units = []string{UnitCopy, UnitDirectory}

// Layout describes where the installer copies files and creates directories.
type Layout struct {
	Source      string `mapstructure:"source"`
	Destination string `mapstructure:"destination"`
	Directory   string `mapstructure:"directory"`
}

func (l *Layout) Validate() error {
	err := validation.ValidateStruct(l,
		validation.Field(&l.Source, validation.Required),
		validation.Field(&l.Destination, validation.Required, validation.NotIn(l.Source)),
		validation.Field(&l.Directory, validation.Required),
	)
	if err != nil {
		return commonerrors.WrapError(commonerrors.ErrInvalid, err, "invalid installation layout")
	}
	return nil
}

// DefaultLayout returns the layout used by the installer when nothing is configured.
func DefaultLayout() *Layout {
	return &Layout{
		Source:      "/src/payload.bin",
		Destination: "/opt/installer/payload.bin",
		Directory:   "/opt/installer/data",
	}
}

// Fault replaces the action in Slot of Unit by one failing with ErrInjectedFault.
type Fault struct {
	Unit string
	Slot transaction.Slot
}

func (f *Fault) String() string {
	return fmt.Sprintf("%v:%v", f.Unit, f.Slot)
}

// ParseFault parses a fault described as `unit:slot` e.g. `directory:script`. An empty description means no fault.
func ParseFault(description string) (*Fault, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, nil
	}
	unit, slot, found := strings.Cut(strings.ToLower(description), ":")
	if !found {
		return nil, commonerrors.Newf(commonerrors.ErrInvalid, "fault [%v] is not of the form unit:slot", description)
	}
	fault := &Fault{Unit: strings.TrimSpace(unit)}
	if !isUnit(fault.Unit) {
		return nil, commonerrors.Newf(commonerrors.ErrInvalid, "unknown unit [%v], expected one of %v", fault.Unit, Units)
	}
	switch strings.TrimSpace(slot) {
	case transaction.SlotExecute.String():
		fault.Slot = transaction.SlotExecute
	case transaction.SlotScript.String():
		fault.Slot = transaction.SlotScript
	case transaction.SlotRollback.String():
		fault.Slot = transaction.SlotRollback
	default:
		return nil, commonerrors.Newf(commonerrors.ErrInvalid, "unknown slot [%v]", slot)
	}
	return fault, nil
}

func isUnit(name string) bool {
	for i := range Units {
		if Units[i] == name {
			return true
		}
	}
	return false
}

// InstallerConfiguration is what the installer needs to build its pipeline.
type InstallerConfiguration struct {
	Layout Layout                         `mapstructure:"layout"`
	Retry  retry.RetryPolicyConfiguration `mapstructure:"retry"`
	// FailAt optionally injects a fault, see ParseFault.
	FailAt string `mapstructure:"fail_at"`
}

func (cfg *InstallerConfiguration) Validate() error {
	err := cfg.Layout.Validate()
	if err != nil {
		return err
	}
	err = cfg.Retry.Validate()
	if err != nil {
		return err
	}
	_, err = ParseFault(cfg.FailAt)
	return err
}

// DefaultInstallerConfiguration returns the default layout, without retries nor fault.
func DefaultInstallerConfiguration() *InstallerConfiguration {
	return &InstallerConfiguration{
		Layout: *DefaultLayout(),
		Retry:  *retry.DefaultNoRetryPolicyConfiguration(),
	}
}

// InstallerPipeline builds the installation pipeline:
//   - copy: copies the source file to its destination, verifies the copy and removes it on rollback;
//   - directory: creates the data directory, verifies it and removes it on rollback.
//
// Rollbacks also remove the parent directories their step created, unless something else was put in them.
//
// Forward actions are retried according to the retry policy.
func InstallerPipeline(ctx context.Context, fs afero.Fs, cfg *InstallerConfiguration, loggers logs.Loggers, opts ...transaction.Option) (*transaction.Pipeline, error) {
	if fs == nil {
		return nil, commonerrors.UndefinedParameter("filesystem")
	}
	if cfg == nil {
		return nil, commonerrors.UndefinedParameter("installer configuration")
	}
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	fault, err := ParseFault(cfg.FailAt)
	if err != nil {
		return nil, err
	}
	pipeline, err := transaction.NewPipeline(append([]transaction.Option{transaction.WithLogger(loggers)}, opts...)...)
	if err != nil {
		return nil, err
	}
	layout := cfg.Layout
	retried := func(action transaction.Action) transaction.Action {
		return transaction.RetryAction(ctx, loggers, &cfg.Retry, action)
	}

	// directories created to reach the targets are removed along with them.
	copyParents, directoryParents := &Parents{}, &Parents{}
	pipeline.Register(
		newUnit(fault, UnitCopy,
			retried(CopyFile(fs, layout.Source, layout.Destination, copyParents)),
			RemoveFile(fs, layout.Destination, copyParents),
			RunScript(loggers, "verify-copy", VerifyCopy(fs, layout.Source, layout.Destination)),
		),
		newUnit(fault, UnitDirectory,
			retried(CreateDirectory(fs, filepath.Clean(layout.Directory), directoryParents)),
			RemoveDirectory(fs, filepath.Clean(layout.Directory), directoryParents),
			RunScript(loggers, "verify-directory", VerifyDirectory(fs, layout.Directory)),
		),
	)
	return pipeline, nil
}

func newUnit(fault *Fault, name string, execute, rollback, script transaction.Action) *transaction.Transaction {
	if fault != nil && fault.Unit == name {
		failing := Failing(commonerrors.Newf(ErrInjectedFault, "at %v", fault))
		switch fault.Slot {
		case transaction.SlotExecute:
			execute = failing
		case transaction.SlotScript:
			script = failing
		case transaction.SlotRollback:
			rollback = failing
		}
	}
	return transaction.NewNamedTransaction(transaction.NewStepIdentifier(name, Namespace), execute, rollback, script)
}
