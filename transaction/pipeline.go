/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package transaction

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/go-logr/logr"
	"github.com/gofrs/uuid/v5"
	"github.com/sasha-s/go-deadlock"
	"go.uber.org/atomic"

	"github.com/stormogulen/Installer/commonerrors"
	"github.com/stormogulen/Installer/execution"
	"github.com/stormogulen/Installer/logs"
)

const (
	loggerSource = "pipeline"
	keyRunID     = "run"
)

type unit struct {
	index int
	label string
	tx    ITransaction
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger reports every action outcome to loggers.
func WithLogger(loggers logs.Loggers) Option {
	return func(p *Pipeline) {
		if loggers != nil {
			p.loggers = loggers
		}
	}
}

// WithObserver notifies observer of every outcome and state change.
func WithObserver(observer IObserver) Option {
	return func(p *Pipeline) {
		p.observer = observer
	}
}

// WithRunID overrides the generated identifier of the run.
func WithRunID(runID string) Option {
	return func(p *Pipeline) {
		p.runID = runID
	}
}

// Pipeline runs steps in order and rolls back the applied ones, in reverse order, when a step fails.
// A pipeline can only be executed once. Steps registered once the execution has started are never run.
type Pipeline struct {
	mu       deadlock.Mutex
	runID    string
	loggers  logs.Loggers
	observer IObserver
	units    []*unit
	state    *stateMachine
	report   *Report
	executed *atomic.Bool
}

// NewPipeline returns an empty pipeline.
func NewPipeline(opts ...Option) (*Pipeline, error) {
	p := &Pipeline{executed: atomic.NewBool(false)}
	for i := range opts {
		opts[i](p)
	}
	if p.runID == "" {
		id, err := uuid.NewV4()
		if err != nil {
			return nil, commonerrors.WrapError(commonerrors.ErrUnexpected, err, "failed generating run identifier")
		}
		p.runID = id.String()
	}
	if p.loggers == nil {
		loggers, err := logs.NewNoopLogger(loggerSource)
		if err != nil {
			return nil, err
		}
		p.loggers = loggers
	}
	if err := p.loggers.Check(); err != nil {
		return nil, commonerrors.WrapError(commonerrors.ErrNoLogger, err, "invalid pipeline loggers")
	}
	state, err := newStateMachine(logr.ToSlogHandler(logs.NewLogrLoggerFromLoggers(p.loggers).WithValues(keyRunID, p.runID)))
	if err != nil {
		return nil, err
	}
	p.state = state
	p.report = &Report{RunID: p.runID, State: StatePending}
	return p, nil
}

// Register appends steps to the pipeline.
func (p *Pipeline) Register(transactions ...ITransaction) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range transactions {
		index := len(p.units)
		label := fmt.Sprintf("unit-%d", index)
		if transactions[i] != nil {
			if id := transactions[i].GetID(); id != nil {
				label = id.String()
			}
		}
		p.units = append(p.units, &unit{index: index, label: label, tx: transactions[i]})
	}
}

// RegisterActions appends a step made of the given actions. script may be nil.
func (p *Pipeline) RegisterActions(execute, rollback, script Action) {
	p.Register(NewTransaction(execute, rollback, script))
}

func (p *Pipeline) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.units)
}

func (p *Pipeline) RunID() string {
	return p.runID
}

// State returns the current lifecycle state of the pipeline.
func (p *Pipeline) State() State {
	return p.state.Current()
}

// Execute runs the pipeline. On success, the returned report is in the Committed state and no rollback ran.
// Otherwise, the applied steps are rolled back, the report ends in the RolledBack state and the forward failure is returned.
// Rollback failures are reported as they happen but never returned.
// Cancelling ctx stops the forward phase before the next step; it does not interrupt the rollback.
// Actions and observers run without any lock held so they may query the pipeline.
func (p *Pipeline) Execute(ctx context.Context) (*Report, error) {
	if !p.executed.CompareAndSwap(false, true) {
		return p.report, commonerrors.New(commonerrors.ErrConflict, "pipeline has already been executed")
	}
	p.mu.Lock()
	units := slices.Clone(p.units)
	p.mu.Unlock()
	defer release(units)

	if err := p.transition(StateExecuting); err != nil {
		return p.report, err
	}
	if len(units) == 0 {
		return p.report, p.transition(StateCommitted)
	}

	compensation := execution.NewExecutionGroup[*unit](p.compensate, execution.SequentialInReverse, execution.ExecuteAll, execution.OnlyOnce)
	forward := execution.NewExecutionGroup[*unit](func(_ context.Context, u *unit) error {
		return p.forward(u, compensation)
	}, execution.Sequential, execution.StopOnFirstError, execution.OnlyOnce)
	forward.RegisterFunction(units...)

	cause := forward.Execute(ctx)
	if cause == nil {
		p.log(fmt.Sprintf("pipeline committed (%d steps)", len(units)))
		return p.report, p.transition(StateCommitted)
	}

	p.report.Cause = cause
	p.logError(cause, fmt.Sprintf("pipeline failed, rolling back %d steps", compensation.Len()))
	if err := p.transition(StateCompensating); err != nil {
		return p.report, commonerrors.Join(cause, err)
	}
	// failures were reported one by one.
	_ = compensation.Execute(context.WithoutCancel(ctx))
	p.log("pipeline rolled back")
	if err := p.transition(StateRolledBack); err != nil {
		return p.report, commonerrors.Join(cause, err)
	}
	return p.report, cause
}

func (p *Pipeline) forward(u *unit, compensation *execution.ExecutionGroup[*unit]) error {
	if u.tx == nil {
		return commonerrors.UndefinedVariable(u.label)
	}
	err := p.invoke(u, SlotExecute, u.tx.RunExecute)
	if err != nil {
		return err
	}
	// the forward effect applied: from now on, this step is rolled back on failure.
	compensation.RegisterFunction(u)
	if !u.tx.HasScript() {
		return nil
	}
	return p.invoke(u, SlotScript, u.tx.RunScript)
}

func (p *Pipeline) compensate(_ context.Context, u *unit) error {
	return p.invoke(u, SlotRollback, u.tx.RunRollback)
}

func (p *Pipeline) invoke(u *unit, slot Slot, run func() error) error {
	err := newActionError(slot, u.label, run())
	outcome := Outcome{
		Index: u.index,
		Unit:  u.label,
		Slot:  slot,
		Err:   err,
	}
	p.report.record(outcome)
	if err == nil {
		p.log(fmt.Sprintf("%v action of %v succeeded", slot, u.label))
	} else {
		p.logError(err, "")
	}
	if p.observer != nil {
		p.observer.OnOutcome(outcome)
	}
	return err
}

func (p *Pipeline) transition(state State) error {
	if err := p.state.Transition(state); err != nil {
		return err
	}
	p.report.State = state
	if p.observer != nil {
		p.observer.OnStateChange(state)
	}
	return nil
}

// log tags messages with the run identifier as not every logger keeps track of sources.
func (p *Pipeline) log(msg string) {
	p.loggers.Log(p.tag(msg))
}

func (p *Pipeline) logError(err error, msg string) {
	p.loggers.LogError(err, p.tag(msg))
}

func (p *Pipeline) tag(msg string) string {
	return strings.TrimSpace(fmt.Sprintf("[%v=%v] %v", keyRunID, p.runID, msg))
}

func release(units []*unit) {
	for i := range units {
		if units[i].tx != nil {
			units[i].tx.Release()
		}
	}
}
