/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package transaction

import (
	"errors"
	"fmt"
)

var (
	// ErrActionFailed is matched by every error reported by an action.
	ErrActionFailed = errors.New("action failed")
	// ErrActionConsumed is the cause of the panic raised when an action is run twice.
	ErrActionConsumed = errors.New("action already consumed")
)

// ActionError is the failure of one of the actions of a step.
type ActionError struct {
	Slot  Slot
	Unit  string
	Cause error
}

func (e *ActionError) Error() string {
	unit := e.Unit
	if unit == "" {
		unit = "transaction"
	}
	return fmt.Sprintf("%v action of %v failed: %v", e.Slot, unit, e.Cause)
}

func (e *ActionError) Unwrap() []error {
	return []error{ErrActionFailed, e.Cause}
}

func newActionError(slot Slot, unit string, cause error) error {
	if cause == nil {
		return nil
	}
	var actionErr *ActionError
	if errors.As(cause, &actionErr) && actionErr.Slot == slot {
		if actionErr.Unit == "" {
			actionErr.Unit = unit
		}
		return actionErr
	}
	return &ActionError{
		Slot:  slot,
		Unit:  unit,
		Cause: cause,
	}
}

func newProtocolViolation(slot Slot, unit string) error {
	if unit == "" {
		unit = "transaction"
	}
	return fmt.Errorf("%w: %v action of %v", ErrActionConsumed, slot, unit)
}
