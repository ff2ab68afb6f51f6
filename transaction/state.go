/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package transaction

import (
	"log/slog"

	"github.com/robbyt/go-fsm"

	"github.com/stormogulen/Installer/commonerrors"
)

// State is the lifecycle state of a pipeline.
type State string

const (
	StatePending      State = "pending"
	StateExecuting    State = "executing"
	StateCommitted    State = "committed"
	StateCompensating State = "compensating"
	StateRolledBack   State = "rolledback"
)

// pipelineTransitions lists the allowed state changes. Committed and RolledBack are terminal.
var pipelineTransitions = map[string][]string{
	string(StatePending):      {string(StateExecuting)},
	string(StateExecuting):    {string(StateCommitted), string(StateCompensating)},
	string(StateCompensating): {string(StateRolledBack)},
	string(StateCommitted):    {},
	string(StateRolledBack):   {},
}

type stateMachine struct {
	machine *fsm.Machine
}

func newStateMachine(handler slog.Handler) (*stateMachine, error) {
	machine, err := fsm.New(handler, string(StatePending), pipelineTransitions)
	if err != nil {
		return nil, commonerrors.WrapError(commonerrors.ErrUnexpected, err, "could not create the pipeline state machine")
	}
	return &stateMachine{machine: machine}, nil
}

func (m *stateMachine) Current() State {
	return State(m.machine.GetState())
}

func (m *stateMachine) Transition(state State) error {
	err := m.machine.Transition(string(state))
	if err != nil {
		return commonerrors.WrapErrorf(commonerrors.ErrUnexpected, err, "pipeline cannot move from %v to %v", m.Current(), state)
	}
	return nil
}
