/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package transaction

import (
	"context"
	"time"

	"github.com/go-logr/logr"

	"github.com/stormogulen/Installer/commonerrors"
	"github.com/stormogulen/Installer/logs"
	"github.com/stormogulen/Installer/retry"
)

// Action is a unit of work which either succeeds or returns the reason it failed.
type Action func() error

// NoOp returns an action which does nothing.
func NoOp() Action {
	return func() error { return nil }
}

// ContextualAction turns a function expecting a context into an Action.
// If timeout is positive, the context given to fn expires after timeout. fn is expected to honour it: the pipeline never interrupts an action.
func ContextualAction(ctx context.Context, timeout time.Duration, fn func(context.Context) error) Action {
	return func() error {
		if fn == nil {
			return commonerrors.UndefinedParameter("contextual function")
		}
		runCtx := ctx
		if timeout > 0 {
			var cancel context.CancelFunc
			runCtx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return commonerrors.ConvertContextError(fn(runCtx))
	}
}

// RetryAction returns an action which runs action again on failure according to policy.
// The pipeline still invokes the returned action only once.
func RetryAction(ctx context.Context, loggers logs.Loggers, policy *retry.RetryPolicyConfiguration, action Action) Action {
	logger := logr.Discard()
	if loggers != nil {
		logger = logs.NewLogrLoggerFromLoggers(loggers)
	}
	return func() error {
		if action == nil {
			return commonerrors.UndefinedParameter("action")
		}
		return retry.RetryAlways(ctx, logger, policy, action, "action failed, retrying")
	}
}
