/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package transaction

import (
	"github.com/stormogulen/Installer/commonerrors"
)

var _ ITransaction = &Transaction{}

// Transaction holds a forward action, its compensating action and an optional script.
// Each action can only be taken once: running it empties its slot.
type Transaction struct {
	id        IActionIdentifier
	slots     [slotCount]Action
	hasScript bool
}

// NewTransaction returns a step made of the three actions. script may be nil if nothing has to run after execute.
// It panics if execute or rollback is nil.
func NewTransaction(execute, rollback, script Action) *Transaction {
	return NewNamedTransaction(nil, execute, rollback, script)
}

// NewNamedTransaction is similar to NewTransaction but the step is identified by id in reports and logs.
func NewNamedTransaction(id IActionIdentifier, execute, rollback, script Action) *Transaction {
	if execute == nil {
		panic(commonerrors.UndefinedParameter("execute action"))
	}
	if rollback == nil {
		panic(commonerrors.UndefinedParameter("rollback action"))
	}
	t := &Transaction{
		id:        id,
		hasScript: script != nil,
	}
	if script == nil {
		script = NoOp()
	}
	t.slots[SlotExecute] = execute
	t.slots[SlotScript] = script
	t.slots[SlotRollback] = rollback
	return t
}

func (t *Transaction) GetID() IActionIdentifier {
	return t.id
}

func (t *Transaction) HasScript() bool {
	return t.hasScript
}

func (t *Transaction) RunExecute() error {
	return t.run(SlotExecute)
}

func (t *Transaction) RunScript() error {
	return t.run(SlotScript)
}

func (t *Transaction) RunRollback() error {
	return t.run(SlotRollback)
}

// IsPending states whether the action in slot has neither been run nor released.
func (t *Transaction) IsPending(slot Slot) bool {
	if slot < 0 || slot >= slotCount {
		return false
	}
	return t.slots[slot] != nil
}

// Release drops the actions which were not run so that whatever they hold can be garbage collected.
func (t *Transaction) Release() {
	for i := range t.slots {
		t.slots[i] = nil
	}
}

func (t *Transaction) run(slot Slot) error {
	action := t.take(slot)
	return newActionError(slot, t.label(), action())
}

func (t *Transaction) take(slot Slot) Action {
	action := t.slots[slot]
	if action == nil {
		panic(newProtocolViolation(slot, t.label()))
	}
	t.slots[slot] = nil
	return action
}

func (t *Transaction) label() string {
	if t.id == nil {
		return ""
	}
	return t.id.String()
}
