/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"io"
	"strings"
)

type infoWriter struct {
	loggers Loggers
}

func (w *infoWriter) Write(p []byte) (int, error) {
	if w.loggers != nil {
		w.loggers.Log(strings.TrimSpace(string(p)))
	}
	return len(p), nil
}

func newInfoWriterFromLoggers(loggers Loggers) io.Writer {
	return &infoWriter{loggers: loggers}
}
