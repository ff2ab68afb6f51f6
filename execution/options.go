/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package execution

// StoreOptions defines how the elements of an ExecutionGroup are run.
type StoreOptions struct {
	stopOnFirstError bool
	reverse          bool
	onlyOnce         bool
}

func (o *StoreOptions) Default() *StoreOptions {
	o.stopOnFirstError = false
	o.reverse = false
	o.onlyOnce = false
	return o
}

type StoreOption func(*StoreOptions) *StoreOptions

// StopOnFirstError stops ExecutionGroup execution on first error.
var StopOnFirstError StoreOption = func(o *StoreOptions) *StoreOptions {
	if o == nil {
		o = DefaultOptions()
	}
	o.stopOnFirstError = true
	return o
}

// ExecuteAll executes all functions in the ExecutionGroup even if an error is raised. The first error raised is then returned.
var ExecuteAll StoreOption = func(o *StoreOptions) *StoreOptions {
	if o == nil {
		o = DefaultOptions()
	}
	o.stopOnFirstError = false
	return o
}

// OnlyOnce will ensure the elements are executed at most once, however often the group is executed.
var OnlyOnce StoreOption = func(o *StoreOptions) *StoreOptions {
	if o == nil {
		o = DefaultOptions()
	}
	o.onlyOnce = true
	return o
}

// Sequential ensures every element registered in the ExecutionGroup is executed in the order they were registered.
var Sequential StoreOption = func(o *StoreOptions) *StoreOptions {
	if o == nil {
		o = DefaultOptions()
	}
	o.reverse = false
	return o
}

// SequentialInReverse ensures every element registered in the ExecutionGroup is executed in the reverse order they were registered.
var SequentialInReverse StoreOption = func(o *StoreOptions) *StoreOptions {
	if o == nil {
		o = DefaultOptions()
	}
	o.reverse = true
	return o
}

// WithOptions defines a store configuration.
func WithOptions(option ...StoreOption) (opts *StoreOptions) {
	for i := range option {
		opts = option[i](opts)
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	return
}

// DefaultOptions returns the default store configuration
func DefaultOptions() *StoreOptions {
	opts := &StoreOptions{}
	return opts.Default()
}
