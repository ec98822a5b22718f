// Copyright 2026 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package jwm

import (
	"github.com/juju/loggo/v2"
)

var logger = loggo.GetLogger("jwm")

// Logger is the logging interface used by the Verifier.
type Logger interface {
	Warningf(string, ...any)
	Debugf(string, ...any)
	Tracef(string, ...any)
}
