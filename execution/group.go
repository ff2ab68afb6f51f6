/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package execution runs a list of elements one after the other.
package execution

import (
	"context"

	"github.com/sasha-s/go-deadlock"
	"go.uber.org/atomic"

	"github.com/stormogulen/Installer/commonerrors"
)

type IExecutor interface {
	// Execute executes all the elements in the group.
	Execute(ctx context.Context) error
}

type IExecutionGroup[T any] interface {
	IExecutor
	RegisterFunction(function ...T)
	Len() int
}

type ExecuteFunc[T any] func(ctx context.Context, element T) error

var _ IExecutionGroup[int] = &ExecutionGroup[int]{}

// NewExecutionGroup returns an execution group which executes elements according to store options.
func NewExecutionGroup[T any](executeFunc ExecuteFunc[T], options ...StoreOption) *ExecutionGroup[T] {
	opts := WithOptions(options...)
	return &ExecutionGroup[T]{
		functions:   make([]wrappedElement[T], 0),
		executeFunc: executeFunc,
		options:     *opts,
	}
}

type ExecutionGroup[T any] struct {
	mu          deadlock.RWMutex
	functions   []wrappedElement[T]
	executeFunc ExecuteFunc[T]
	options     StoreOptions
}

// RegisterFunction registers elements to the group.
func (s *ExecutionGroup[T]) RegisterFunction(function ...T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wrapped := make([]wrappedElement[T], len(function))
	for i := range function {
		wrapped[i] = newWrapped(function[i], s.options.onlyOnce)
	}
	s.functions = append(s.functions, wrapped...)
}

func (s *ExecutionGroup[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.functions)
}

// Execute executes all the elements in the group according to store options.
func (s *ExecutionGroup[T]) Execute(ctx context.Context) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.executeFunc == nil {
		return commonerrors.New(commonerrors.ErrUndefined, "the group was not initialised correctly")
	}

	err = s.executeSequentially(ctx, s.options.stopOnFirstError, s.options.reverse)
	return
}

func (s *ExecutionGroup[T]) executeSequentially(ctx context.Context, stopOnFirstError, reverse bool) (err error) {
	err = commonerrors.DetermineContextError(ctx)
	if err != nil {
		return
	}
	funcNum := len(s.functions)
	for j := 0; j < funcNum; j++ {
		i := j
		if reverse {
			i = funcNum - j - 1
		}
		shouldBreak, subErr := s.executeFunction(ctx, s.functions[i])
		if shouldBreak {
			err = subErr
			return
		}
		if subErr != nil && err == nil {
			err = subErr
			if stopOnFirstError {
				return
			}
		}
	}
	return
}

func (s *ExecutionGroup[T]) executeFunction(ctx context.Context, w wrappedElement[T]) (mustBreak bool, err error) {
	err = commonerrors.DetermineContextError(ctx)
	if err != nil {
		mustBreak = true
		return
	}
	if w == nil {
		err = commonerrors.UndefinedVariable("function element")
		mustBreak = true
		return
	}
	err = w.Execute(ctx, s.executeFunc)
	return
}

type wrappedElement[T any] interface {
	Execute(ctx context.Context, f ExecuteFunc[T]) error
	Element() T
}

type basicWrap[T any] struct {
	value T
}

func (w *basicWrap[T]) Execute(ctx context.Context, f ExecuteFunc[T]) error {
	return f(ctx, w.value)
}

func (w *basicWrap[T]) Element() T {
	return w.value
}

type once[T any] struct {
	basicWrap[T]
	done *atomic.Bool
}

func (w *once[T]) Execute(ctx context.Context, f ExecuteFunc[T]) error {
	if !w.done.Swap(true) {
		return w.basicWrap.Execute(ctx, f)
	}
	return nil
}

func newWrapped[T any](e T, onlyOnce bool) wrappedElement[T] {
	if onlyOnce {
		return &once[T]{
			basicWrap: basicWrap[T]{value: e},
			done:      atomic.NewBool(false),
		}
	}
	return &basicWrap[T]{value: e}
}
