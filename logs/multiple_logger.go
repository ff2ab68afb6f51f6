/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"sync"

	"github.com/stormogulen/Installer/commonerrors"
)

// MultipleLogger forwards every message to a list of loggers.
type MultipleLogger struct {
	mu      sync.RWMutex
	loggers []Loggers
}

func (c *MultipleLogger) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	errs := make([]error, 0, len(c.loggers))
	for i := range c.loggers {
		errs = append(errs, c.loggers[i].Close())
	}
	return commonerrors.Join(errs...)
}

func (c *MultipleLogger) Check() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.loggers) == 0 {
		return commonerrors.ErrNoLogger
	}
	for i := range c.loggers {
		if err := c.loggers[i].Check(); err != nil {
			return err
		}
	}
	return nil
}

func (c *MultipleLogger) SetLogSource(source string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.loggers {
		if err := c.loggers[i].SetLogSource(source); err != nil {
			return err
		}
	}
	return nil
}

func (c *MultipleLogger) SetLoggerSource(source string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.loggers {
		if err := c.loggers[i].SetLoggerSource(source); err != nil {
			return err
		}
	}
	return nil
}

func (c *MultipleLogger) Log(output ...any) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.loggers {
		c.loggers[i].Log(output...)
	}
}

func (c *MultipleLogger) LogError(err ...any) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.loggers {
		c.loggers[i].LogError(err...)
	}
}

// Append adds loggers to the list.
func (c *MultipleLogger) Append(l ...Loggers) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loggers = append(c.loggers, l...)
}

// NewCombinedLoggers returns a logger which logs to a list of logger. If list is empty, it will error.
func NewCombinedLoggers(loggersList ...Loggers) (l *MultipleLogger, err error) {
	if len(loggersList) == 0 {
		err = commonerrors.ErrNoLogger
		return
	}
	l = &MultipleLogger{}
	l.Append(loggersList...)
	return
}
