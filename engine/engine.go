// Copyright 2026 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

// Package engine defines the macaroon primitive consumed by the JWM
// envelope. The envelope never touches HMAC chaining or caveat key
// encryption directly; it asks an Engine to do it.
package engine

import (
	"github.com/juju/errors"
)

// ErrEngine is the type of every failure originating in an engine.
const ErrEngine = errors.ConstError("macaroon engine error")

// Caveat describes one caveat as held by an engine macaroon.
// VerificationId and Location are empty for first-party caveats.
type Caveat struct {
	Id             []byte
	VerificationId []byte
	Location       string
}

// Checker reports whether a first-party caveat predicate is satisfied.
// It returns nil when it is.
type Checker func(predicate string) error

// Macaroon is an engine-native macaroon handle.
type Macaroon interface {
	// Id returns the macaroon identifier.
	Id() []byte

	// Location returns the location hint.
	Location() string

	// Signature returns the current signature.
	Signature() []byte

	// Caveats returns the caveats in chain order.
	Caveats() []Caveat

	// AddFirstPartyCaveat appends a first-party caveat and
	// recomputes the signature.
	AddFirstPartyCaveat(predicate []byte) error

	// AddThirdPartyCaveat encrypts caveatKey under the current
	// signature, appends a caveat identified by caveatId and
	// recomputes the signature.
	AddThirdPartyCaveat(caveatKey, caveatId []byte, location string) error

	// Bind rebinds the signature of a discharge macaroon to the
	// given authorizing signature.
	Bind(primarySignature []byte)

	// Clone returns an independent copy.
	Clone() Macaroon
}

// Engine creates and verifies macaroons.
type Engine interface {
	// New returns a root macaroon signed with rootKey.
	New(rootKey, id []byte, location string) (Macaroon, error)

	// FromParts rehydrates a macaroon whose signature has already
	// been computed. The signature is trusted as given.
	FromParts(id []byte, location string, signature []byte, caveats []Caveat) (Macaroon, error)

	// Verify checks the caveat chain of primary against rootKey,
	// using check for first-party predicates and discharges to
	// satisfy third-party caveats.
	Verify(primary Macaroon, rootKey []byte, check Checker, discharges []Macaroon) error
}
