// Copyright 2026 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package testing

import (
	"fmt"
)

// CheckLog is an interface that can be used to log messages to a
// *testing.T or *check.C.
type CheckLog interface {
	Logf(string, ...any)
}

// CheckLogger is a logger that logs to a *testing.T or *check.C. It
// satisfies the Logger interfaces accepted by the jwm packages.
type CheckLogger struct {
	Log CheckLog
}

// NewCheckLogger returns a CheckLogger that logs to the given CheckLog.
func NewCheckLogger(log CheckLog) CheckLogger {
	return CheckLogger{Log: log}
}

func (c CheckLogger) Warningf(msg string, args ...any) {
	c.Log.Logf(fmt.Sprintf("WARNING: %s", msg), args...)
}
func (c CheckLogger) Debugf(msg string, args ...any) {
	c.Log.Logf(fmt.Sprintf("DEBUG: %s", msg), args...)
}
func (c CheckLogger) Tracef(msg string, args ...any) {
	c.Log.Logf(fmt.Sprintf("TRACE: %s", msg), args...)
}

// RecordingLogger collects formatted messages, keyed by level, for
// assertions on what was logged.
type RecordingLogger struct {
	Messages []string
}

func (r *RecordingLogger) Warningf(msg string, args ...any) {
	r.Messages = append(r.Messages, "WARNING: "+fmt.Sprintf(msg, args...))
}
func (r *RecordingLogger) Debugf(msg string, args ...any) {
	r.Messages = append(r.Messages, "DEBUG: "+fmt.Sprintf(msg, args...))
}
func (r *RecordingLogger) Tracef(msg string, args ...any) {
	r.Messages = append(r.Messages, "TRACE: "+fmt.Sprintf(msg, args...))
}
