/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package retry

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/stormogulen/Installer/commonerrors"
)

// RetryPolicyConfiguration describes how a failing function is retried.
type RetryPolicyConfiguration struct {
	// Enabled specifies whether retries are performed at all.
	Enabled bool `mapstructure:"enabled"`
	// RetryMax is the maximum number of attempts.
	RetryMax int `mapstructure:"max_retry"`
	// RetryWaitMin is the minimum time to wait between two attempts.
	RetryWaitMin time.Duration `mapstructure:"retry_wait_min"`
	// RetryWaitMax is the maximum time to wait between two attempts.
	RetryWaitMax time.Duration `mapstructure:"retry_wait_max"`
	// BackOffEnabled specifies whether an exponential backoff is applied between attempts.
	BackOffEnabled bool `mapstructure:"backoff_enabled"`
	// LinearBackOffEnabled specifies whether a linear backoff with jitter is applied between attempts.
	LinearBackOffEnabled bool `mapstructure:"linear_backoff_enabled"`
}

func (cfg *RetryPolicyConfiguration) Validate() error {
	if !cfg.Enabled {
		return nil
	}
	err := validation.ValidateStruct(cfg,
		validation.Field(&cfg.RetryMax, validation.Required, validation.Min(1)),
		validation.Field(&cfg.RetryWaitMin, validation.Min(time.Duration(0))),
		validation.Field(&cfg.RetryWaitMax, validation.Min(cfg.RetryWaitMin)),
	)
	if err != nil {
		return commonerrors.WrapError(commonerrors.ErrInvalid, err, "invalid retry policy")
	}
	return nil
}

// DefaultNoRetryPolicyConfiguration defines a policy which never retries.
func DefaultNoRetryPolicyConfiguration() *RetryPolicyConfiguration {
	return &RetryPolicyConfiguration{
		Enabled: false,
	}
}

// DefaultBasicRetryPolicyConfiguration defines a policy retrying a few times with a fixed delay.
func DefaultBasicRetryPolicyConfiguration() *RetryPolicyConfiguration {
	return &RetryPolicyConfiguration{
		Enabled:      true,
		RetryMax:     3,
		RetryWaitMin: 100 * time.Millisecond,
		RetryWaitMax: time.Second,
	}
}

// DefaultExponentialBackoffRetryPolicyConfiguration defines a policy with exponential backoff.
func DefaultExponentialBackoffRetryPolicyConfiguration() *RetryPolicyConfiguration {
	return &RetryPolicyConfiguration{
		Enabled:        true,
		RetryMax:       5,
		RetryWaitMin:   100 * time.Millisecond,
		RetryWaitMax:   5 * time.Second,
		BackOffEnabled: true,
	}
}

// DefaultLinearBackoffRetryPolicyConfiguration defines a policy with linear backoff and jitter.
func DefaultLinearBackoffRetryPolicyConfiguration() *RetryPolicyConfiguration {
	return &RetryPolicyConfiguration{
		Enabled:              true,
		RetryMax:             5,
		RetryWaitMin:         100 * time.Millisecond,
		RetryWaitMax:         5 * time.Second,
		LinearBackOffEnabled: true,
	}
}
