/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"fmt"
	"log"
	"strings"
	"sync"
)

// StringWriter stores everything written to it in memory.
type StringWriter struct {
	mu   sync.RWMutex
	logs strings.Builder
}

func (w *StringWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.logs.Write(p)
}

func (w *StringWriter) Close() (err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.logs.Reset()
	return
}

func (w *StringWriter) GetFullContent() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.logs.String()
}

// StringLoggers keeps every message in memory. Mostly useful in tests.
type StringLoggers struct {
	GenericLoggers
	LogWriter *StringWriter
}

func (l *StringLoggers) GetLogContent() string {
	return l.LogWriter.GetFullContent()
}

// Close closes the logger and discards its content.
func (l *StringLoggers) Close() (err error) {
	err = l.LogWriter.Close()
	if err != nil {
		return
	}
	err = l.GenericLoggers.Close()
	return
}

// NewStringLogger creates a logger writing to memory.
func NewStringLogger(loggerSource string) (loggers *StringLoggers, err error) {
	writer := &StringWriter{}
	loggers = &StringLoggers{
		LogWriter: writer,
		GenericLoggers: GenericLoggers{
			Output: log.New(writer, fmt.Sprintf("[%v] Output: ", loggerSource), 0),
			Error:  log.New(writer, fmt.Sprintf("[%v] Error: ", loggerSource), 0),
		},
	}
	return
}
