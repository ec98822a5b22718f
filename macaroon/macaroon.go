// Copyright 2026 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package macaroon

import (
	"encoding/hex"
	"fmt"
	"unicode/utf8"

	"github.com/go-macaroon-bakery/macaroon-bakery/v3/bakery/checkers"
	"github.com/juju/errors"
	"github.com/juju/loggo/v2"

	"github.com/juju/jwm/engine"
)

var logger = loggo.GetLogger("jwm.macaroon")

// Factory creates macaroons backed by a specific engine.
type Factory struct {
	engine engine.Engine
}

// NewFactory returns a Factory using the given engine.
func NewFactory(e engine.Engine) Factory {
	return Factory{engine: e}
}

// DefaultFactory returns a Factory using the default engine.
func DefaultFactory() Factory {
	return NewFactory(engine.Default())
}

// New returns a root macaroon signed with key.
func (f Factory) New(location, identifier string, key []byte) (*Macaroon, error) {
	if identifier == "" {
		return nil, errors.NotValidf("empty identifier")
	}
	if err := checkUTF8("identifier", identifier, "location", location); err != nil {
		return nil, errors.Trace(err)
	}
	m, err := f.engine.New(key, []byte(identifier), location)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return f.wrap(m), nil
}

// FromParts returns a macaroon whose signature is taken as given.
// It is used to rehydrate macaroons whose signature was computed
// elsewhere; no key is involved.
func (f Factory) FromParts(location, identifier string, signature []byte, caveats ...Caveat) (*Macaroon, error) {
	if identifier == "" {
		return nil, errors.NotValidf("empty identifier")
	}
	if err := checkUTF8("identifier", identifier, "location", location); err != nil {
		return nil, errors.Trace(err)
	}
	cavs := make([]engine.Caveat, len(caveats))
	for i, cav := range caveats {
		if err := checkUTF8("caveat id", cav.CaveatId, "caveat location", cav.Location); err != nil {
			return nil, errors.Trace(err)
		}
		cavs[i] = cav.engineCaveat()
	}
	m, err := f.engine.FromParts([]byte(identifier), location, signature, cavs)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return f.wrap(m), nil
}

func (f Factory) wrap(m engine.Macaroon) *Macaroon {
	return &Macaroon{
		engine:     f.engine,
		m:          m,
		location:   m.Location(),
		identifier: string(m.Id()),
	}
}

// New returns a root macaroon created by the default engine.
func New(location, identifier string, key []byte) (*Macaroon, error) {
	return DefaultFactory().New(location, identifier, key)
}

// FromParts rehydrates a macaroon using the default engine.
func FromParts(location, identifier string, signature []byte, caveats ...Caveat) (*Macaroon, error) {
	return DefaultFactory().FromParts(location, identifier, signature, caveats...)
}

// Macaroon is one link of a delegated authority chain: either an
// authorizing macaroon or a discharge.
//
// A Macaroon is not safe for concurrent mutation.
type Macaroon struct {
	engine engine.Engine
	m      engine.Macaroon

	location   string
	identifier string
}

// Location returns the advisory location hint.
func (m *Macaroon) Location() string {
	return m.location
}

// Identifier returns the macaroon identifier.
func (m *Macaroon) Identifier() string {
	return m.identifier
}

// Signature returns the hex encoded signature.
func (m *Macaroon) Signature() string {
	return hex.EncodeToString(m.m.Signature())
}

// Caveats returns a copy of the caveats in chain order.
func (m *Macaroon) Caveats() []Caveat {
	cavs := m.m.Caveats()
	result := make([]Caveat, len(cavs))
	for i, cav := range cavs {
		result[i] = caveatFromEngine(cav)
	}
	return result
}

// Engine returns the engine backing the macaroon.
func (m *Macaroon) Engine() engine.Engine {
	return m.engine
}

// Native returns the engine handle.
func (m *Macaroon) Native() engine.Macaroon {
	return m.m
}

// Clone returns an independent copy of the macaroon.
func (m *Macaroon) Clone() *Macaroon {
	c := *m
	c.m = m.m.Clone()
	return &c
}

// AddFirstPartyCaveat adds a caveat whose predicate pairs key with
// value, in the form {"key": "value"}.
func (m *Macaroon) AddFirstPartyCaveat(key, value string) error {
	return m.AddFirstPartyPredicate(fmt.Sprintf(`{"%s": "%s"}`, key, value))
}

// AddFirstPartyPredicate adds a first-party caveat with the predicate
// used verbatim.
func (m *Macaroon) AddFirstPartyPredicate(predicate string) error {
	if err := checkUTF8("predicate", predicate); err != nil {
		return errors.Trace(err)
	}
	return m.mutate(func(em engine.Macaroon) error {
		return em.AddFirstPartyCaveat([]byte(predicate))
	})
}

// AddCaveat adds a macaroon-bakery first-party caveat, resolving its
// namespace through ns.
func (m *Macaroon) AddCaveat(ns *checkers.Namespace, cav checkers.Caveat) error {
	if cav.Location != "" {
		return errors.NotValidf("third party caveat %q", cav.Condition)
	}
	if ns != nil {
		cav = ns.ResolveCaveat(cav)
	}
	return m.AddFirstPartyPredicate(cav.Condition)
}

// AddThirdPartyCaveat adds a caveat to be discharged by the third party
// at location. The caveat key is encrypted under the current signature
// and identifier tells the third party how to recover it.
func (m *Macaroon) AddThirdPartyCaveat(location string, caveatKey []byte, identifier string) error {
	if identifier == "" {
		return errors.NotValidf("empty third party caveat identifier")
	}
	if err := checkUTF8("third party caveat identifier", identifier, "location", location); err != nil {
		return errors.Trace(err)
	}
	return m.mutate(func(em engine.Macaroon) error {
		return em.AddThirdPartyCaveat(caveatKey, []byte(identifier), location)
	})
}

// checkUTF8 takes name, value pairs. Text fields are carried as JSON
// strings, which cannot hold invalid UTF-8 without altering it.
func checkUTF8(fields ...string) error {
	for i := 0; i+1 < len(fields); i += 2 {
		if !utf8.ValidString(fields[i+1]) {
			return errors.NotValidf("non UTF-8 %s %q", fields[i], fields[i+1])
		}
	}
	return nil
}

// mutate applies f to a copy of the engine macaroon and keeps it only
// if f succeeds.
func (m *Macaroon) mutate(f func(engine.Macaroon) error) error {
	clone := m.m.Clone()
	if err := f(clone); err != nil {
		return errors.Trace(err)
	}
	m.m = clone
	return nil
}

// Bind returns a copy of discharge whose signature is bound to the
// current signature of m. Neither macaroon is modified.
func (m *Macaroon) Bind(discharge *Macaroon) *Macaroon {
	bound := discharge.Clone()
	bound.m.Bind(m.m.Signature())
	logger.Tracef("bound discharge %q to %q", bound.identifier, m.identifier)
	return bound
}
