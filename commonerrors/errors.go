/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package commonerrors defines typical errors which can happen while running actions and pipelines.
package commonerrors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrNoLogger       = errors.New("missing logger")
	ErrNoLoggerSource = errors.New("missing logger source")
	ErrNoLogSource    = errors.New("missing log source")
	ErrUndefined      = errors.New("undefined")
	ErrTimeout        = errors.New("timeout")
	ErrNotFound       = errors.New("not found")
	ErrUnsupported    = errors.New("unsupported")
	ErrUnknown        = errors.New("unknown")
	ErrInvalid        = errors.New("invalid")
	ErrConflict       = errors.New("conflict")
	ErrCancelled      = errors.New("cancelled")
	ErrUnexpected     = errors.New("unexpected")
	ErrCondition      = errors.New("failed condition")
	ErrEmpty          = errors.New("empty")
)

// Any determines whether the target error is of the same type as any of the errors `err`
func Any(target error, err ...error) bool {
	for i := range err {
		e := err[i]
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None determines whether the target error is of none of the types of the errors `err`
func None(target error, err ...error) bool {
	for i := range err {
		e := err[i]
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}

// CorrespondTo determines whether a `target` error corresponds to a specific error described by `description`
// It will check whether the error contains the string in its description.
func CorrespondTo(target error, description ...string) bool {
	if target == nil {
		return false
	}
	desc := strings.ToLower(target.Error())
	for i := range description {
		if strings.Contains(desc, strings.ToLower(description[i])) {
			return true
		}
	}
	return false
}

// New returns an error of type `errorType` with a description `message`.
func New(errorType error, message string) error {
	if errorType == nil {
		return errors.New(message)
	}
	if strings.TrimSpace(message) == "" {
		return errorType
	}
	return fmt.Errorf("%w: %v", errorType, message)
}

// Newf is similar to New but formats the message.
func Newf(errorType error, msgFormat string, args ...any) error {
	return New(errorType, fmt.Sprintf(msgFormat, args...))
}

// WrapError wraps an error `originalError` into a `targetErrorType` error with a `message`.
// If the original error is already of the target type, only the message is added.
func WrapError(targetErrorType, originalError error, message string) error {
	if originalError == nil {
		return New(targetErrorType, message)
	}
	if Any(originalError, targetErrorType) || targetErrorType == nil {
		if strings.TrimSpace(message) == "" {
			return originalError
		}
		return fmt.Errorf("%v: %w", message, originalError)
	}
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("%w: %w", targetErrorType, originalError)
	}
	return fmt.Errorf("%w: %v: %w", targetErrorType, message, originalError)
}

// WrapErrorf is similar to WrapError but formats the message.
func WrapErrorf(targetErrorType, originalError error, msgFormat string, args ...any) error {
	return WrapError(targetErrorType, originalError, fmt.Sprintf(msgFormat, args...))
}

// Join returns an error wrapping the given errors. nil errors are discarded and nil is returned if no errors remain.
func Join(errs ...error) error {
	nonNil := make([]error, 0, len(errs))
	for i := range errs {
		if errs[i] != nil {
			nonNil = append(nonNil, errs[i])
		}
	}
	switch len(nonNil) {
	case 0:
		return nil
	case 1:
		return nonNil[0]
	default:
		return errors.Join(nonNil...)
	}
}

// Ignore returns nil if `target` is of any of the `ignore` types, otherwise `target` is returned.
func Ignore(target error, ignore ...error) error {
	if Any(target, ignore...) {
		return nil
	}
	return target
}

// UndefinedVariable returns an undefined error for a particular variable.
func UndefinedVariable(variableName string) error {
	return Newf(ErrUndefined, "%v is undefined", variableName)
}

// UndefinedParameter returns an undefined error for a function parameter.
func UndefinedParameter(parameterName string) error {
	return Newf(ErrUndefined, "parameter '%v' is undefined", parameterName)
}

// ConvertContextError converts a context error into common errors.
func ConvertContextError(err error) error {
	if err == nil {
		return nil
	}
	if Any(err, ErrTimeout, ErrCancelled) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return WrapError(ErrTimeout, err, "")
	}
	if errors.Is(err, context.Canceled) {
		return WrapError(ErrCancelled, err, "")
	}
	return err
}

// DetermineContextError determines what the context error is if any.
func DetermineContextError(ctx context.Context) error {
	return ConvertContextError(ctx.Err())
}
