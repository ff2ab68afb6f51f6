/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package retry retries functions according to a retry policy.
package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/go-logr/logr"

	"github.com/stormogulen/Installer/commonerrors"
)

// RetryIf will retry fn when the value returned from retryConditionFn is true
func RetryIf(ctx context.Context, logger logr.Logger, retryPolicy *RetryPolicyConfiguration, fn func() error, msgOnRetry string, retryConditionFn func(err error) bool) error {
	if retryPolicy == nil {
		return commonerrors.UndefinedParameter("retry policy configuration")
	}
	if fn == nil {
		return commonerrors.UndefinedParameter("function to retry")
	}
	if !retryPolicy.Enabled {
		return fn()
	}
	if err := retryPolicy.Validate(); err != nil {
		return err
	}
	var retryType retry.DelayTypeFunc
	switch {
	case retryPolicy.LinearBackOffEnabled:
		retryType = retry.CombineDelay(retry.FixedDelay, retry.RandomDelay)
	case retryPolicy.BackOffEnabled:
		retryType = retry.BackOffDelay
	default:
		retryType = retry.FixedDelay
	}

	return commonerrors.ConvertContextError(
		retry.Do(
			fn,
			retry.OnRetry(func(n uint, err error) {
				logger.Error(err, fmt.Sprintf("%v (attempt #%v)", msgOnRetry, n+1), "attempt", n+1)
			}),
			retry.Delay(retryPolicy.RetryWaitMin),
			retry.MaxDelay(retryPolicy.RetryWaitMax),
			retry.MaxJitter(25*time.Millisecond),
			retry.DelayType(retryType),
			retry.Attempts(uint(retryPolicy.RetryMax)), //nolint:gosec // RetryMax is validated to be positive
			retry.RetryIf(retryConditionFn),
			retry.LastErrorOnly(true),
			retry.Context(ctx),
		),
	)
}

// RetryOnError allows the caller to retry fn when the error returned by fn is retriable
// as in of the type specified by retriableErr.
func RetryOnError(ctx context.Context, logger logr.Logger, retryPolicy *RetryPolicyConfiguration, fn func() error, msgOnRetry string, retriableErr ...error) error {
	return RetryIf(ctx, logger, retryPolicy, fn, msgOnRetry, func(err error) bool {
		return commonerrors.Any(err, retriableErr...)
	})
}

// RetryAlways retries fn on any error.
func RetryAlways(ctx context.Context, logger logr.Logger, retryPolicy *RetryPolicyConfiguration, fn func() error, msgOnRetry string) error {
	return RetryIf(ctx, logger, retryPolicy, fn, msgOnRetry, func(err error) bool {
		return err != nil
	})
}
