// Copyright 2026 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package jwm

import (
	"github.com/juju/errors"

	"github.com/juju/jwm/engine"
)

// Verify checks the token against the root key of its authorizing
// macaroon. With validatePredicates false every first-party predicate
// is accepted and only the signature chain is checked; with it true
// predicates must have the key:value shape.
//
// A token that does not verify yields an error satisfying
// errors.Is(err, ErrVerification).
func (j *JWM) Verify(rootKey []byte, validatePredicates bool) error {
	check := AcceptAll
	if validatePredicates {
		check = KeyValueShape
	}
	return j.VerifyWithChecker(rootKey, check)
}

// VerifyWithChecker is like Verify, but checks first-party predicates
// with check.
func (j *JWM) VerifyWithChecker(rootKey []byte, check engine.Checker) error {
	v, err := NewVerifier(VerifierConfig{
		RootKey: rootKey,
		Checker: check,
	})
	if err != nil {
		return errors.Trace(err)
	}
	return v.Verify(j)
}

// Valid reports whether the token verifies.
func (j *JWM) Valid(rootKey []byte, validatePredicates bool) bool {
	return j.Verify(rootKey, validatePredicates) == nil
}

// VerifierConfig holds the parameters of a Verifier.
type VerifierConfig struct {
	// RootKey is the key the authorizing macaroon was created with.
	RootKey []byte

	// Checker validates first-party caveat predicates.
	Checker engine.Checker

	// Logger is used for verification logging. The package logger is
	// used if it is nil.
	Logger Logger

	// Metrics, if set, counts verification outcomes.
	Metrics *Collector
}

// Validate checks that the config has everything a Verifier needs.
func (c VerifierConfig) Validate() error {
	if len(c.RootKey) == 0 {
		return errors.NotValidf("empty RootKey")
	}
	if c.Checker == nil {
		return errors.NotValidf("nil Checker")
	}
	return nil
}

// Verifier verifies tokens against one root key and predicate policy.
// It is safe for concurrent use, provided the tokens it is given are
// not being mutated.
type Verifier struct {
	rootKey []byte
	check   engine.Checker
	logger  Logger
	metrics *Collector
}

// NewVerifier returns a Verifier for the given config.
func NewVerifier(cfg VerifierConfig) (*Verifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	v := &Verifier{
		rootKey: append([]byte(nil), cfg.RootKey...),
		check:   cfg.Checker,
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
	}
	if v.logger == nil {
		v.logger = logger
	}
	return v, nil
}

// Verify checks that every first-party caveat of the token is accepted
// by the checker and every third-party caveat is satisfied by a bound
// discharge.
func (v *Verifier) Verify(j *JWM) error {
	if err := j.validate(); err != nil {
		return errors.Trace(err)
	}
	auth := j.authorizing
	discharges := make([]engine.Macaroon, len(j.discharges))
	for i, d := range j.discharges {
		discharges[i] = d.Native()
	}

	err := auth.Engine().Verify(auth.Native(), v.rootKey, v.check, discharges)
	switch {
	case err == nil:
		v.metrics.observe(resultValid)
		v.logger.Tracef("verified %q with %d discharges", auth.Identifier(), len(discharges))
		return nil
	case errors.Is(err, engine.ErrEngine):
		v.metrics.observe(resultError)
		v.logger.Warningf("cannot verify %q: %v", auth.Identifier(), err)
		return errors.Trace(err)
	default:
		v.metrics.observe(resultInvalid)
		v.logger.Debugf("verification of %q failed: %v", auth.Identifier(), err)
		return errors.WithType(errors.Annotatef(err, "verifying %q", auth.Identifier()), ErrVerification)
	}
}
