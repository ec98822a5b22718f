// Copyright 2026 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package jwm

import (
	"context"
	"strings"

	"github.com/go-macaroon-bakery/macaroon-bakery/v3/bakery/checkers"
	"github.com/juju/clock"
	"github.com/juju/errors"

	"github.com/juju/jwm/engine"
)

var (
	_ engine.Checker = AcceptAll
	_ engine.Checker = KeyValueShape
)

// AcceptAll accepts every predicate, leaving only the signature chain
// to be checked.
func AcceptAll(string) error {
	return nil
}

// KeyValueShape accepts predicates that split on ":" into exactly two
// non-empty parts.
func KeyValueShape(predicate string) error {
	parts := strings.Split(predicate, ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return errors.Errorf("predicate %q is not of the form key:value", predicate)
	}
	return nil
}

// AllOf returns a checker accepting predicates accepted by every one
// of checks.
func AllOf(checks ...engine.Checker) engine.Checker {
	return func(predicate string) error {
		for _, check := range checks {
			if err := check(predicate); err != nil {
				return errors.Trace(err)
			}
		}
		return nil
	}
}

// AnyOf returns a checker accepting predicates accepted by at least one
// of checks. The error from the last checker is returned otherwise.
func AnyOf(checks ...engine.Checker) engine.Checker {
	return func(predicate string) error {
		err := errors.Errorf("predicate %q not recognized", predicate)
		for _, check := range checks {
			if err = check(predicate); err == nil {
				return nil
			}
		}
		return errors.Trace(err)
	}
}

// BakeryChecker returns a checker that validates predicates with the
// macaroon-bakery first-party checkers, such as time-before. If clk is
// not nil, time based caveats are checked against it.
func BakeryChecker(ctx context.Context, checker *checkers.Checker, clk clock.Clock) engine.Checker {
	if clk != nil {
		ctx = checkers.ContextWithClock(ctx, clk)
	}
	return func(predicate string) error {
		return errors.Trace(checker.CheckFirstPartyCaveat(ctx, predicate))
	}
}
