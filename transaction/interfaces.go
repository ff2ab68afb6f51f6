/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package transaction provides a pipeline of compensable steps, following the [Compensating Transaction pattern](https://learn.microsoft.com/en-us/azure/architecture/patterns/compensating-transaction).
// Each step (a Transaction) pairs a forward action with a rollback action and, optionally, a script run right after the forward action.
// The pipeline runs steps in order and, on the first failure, rolls back the steps whose forward action applied, in reverse order.
// Rollback is best-effort: a failing rollback is reported and the sweep carries on with the remaining steps.
//
// Every action is single-use. Running an action twice is a programming error and panics.
package transaction

//go:generate go tool mockgen -destination=../mocks/mock_$GOPACKAGE.go -package=mocks github.com/stormogulen/Installer/$GOPACKAGE ITransaction,IObserver

import "fmt"

type IActionIdentifier interface {
	fmt.Stringer
	GetName() string
	GetNamespace() string
}

// ITransaction describes a step of a pipeline.
type ITransaction interface {
	// GetID returns an identifier of the step. It may be nil, in which case the pipeline names the step after its position.
	GetID() IActionIdentifier
	// HasScript states whether a script must run after the forward action.
	HasScript() bool
	// RunExecute performs the forward action.
	RunExecute() error
	// RunScript performs the script following the forward action.
	RunScript() error
	// RunRollback performs the compensating action.
	RunRollback() error
	// Release drops any action which was not run.
	Release()
}

// IObserver is notified synchronously of everything happening during a pipeline run.
type IObserver interface {
	// OnOutcome is called after every action invocation.
	OnOutcome(outcome Outcome)
	// OnStateChange is called whenever the pipeline changes state.
	OnStateChange(state State)
}
