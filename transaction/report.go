/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package transaction

import (
	"fmt"
	"slices"
)

// Outcome is the result of one action invocation.
type Outcome struct {
	Index int
	Unit  string
	Slot  Slot
	Err   error
}

func (o Outcome) Succeeded() bool {
	return o.Err == nil
}

func (o Outcome) String() string {
	if o.Succeeded() {
		return fmt.Sprintf("%v %v: succeeded", o.Slot, o.Unit)
	}
	return fmt.Sprintf("%v %v: failed (%v)", o.Slot, o.Unit, o.Err)
}

// Report describes a pipeline run: every action invocation in order and the state the pipeline ended in.
type Report struct {
	RunID string
	State State
	// Cause is the forward failure which triggered the rollback, if any.
	Cause    error
	Outcomes []Outcome
}

func (r *Report) Committed() bool {
	return r.State == StateCommitted
}

func (r *Report) RolledBack() bool {
	return r.State == StateRolledBack
}

// Forward returns the outcomes of execute and script actions.
func (r *Report) Forward() []Outcome {
	return r.filter(func(o Outcome) bool { return o.Slot != SlotRollback })
}

// Rollbacks returns the outcomes of rollback actions, in the order they ran.
func (r *Report) Rollbacks() []Outcome {
	return r.filter(func(o Outcome) bool { return o.Slot == SlotRollback })
}

// Failed returns every outcome which failed.
func (r *Report) Failed() []Outcome {
	return r.filter(func(o Outcome) bool { return !o.Succeeded() })
}

// RollbackFailures returns the rollback actions which failed.
func (r *Report) RollbackFailures() []Outcome {
	return r.filter(func(o Outcome) bool { return o.Slot == SlotRollback && !o.Succeeded() })
}

func (r *Report) filter(keep func(Outcome) bool) []Outcome {
	return slices.DeleteFunc(slices.Clone(r.Outcomes), func(o Outcome) bool { return !keep(o) })
}

func (r *Report) record(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// OutcomeObserverFunc adapts a function into an observer only interested in outcomes.
type OutcomeObserverFunc func(Outcome)

func (f OutcomeObserverFunc) OnOutcome(outcome Outcome) {
	f(outcome)
}

func (f OutcomeObserverFunc) OnStateChange(State) {}
