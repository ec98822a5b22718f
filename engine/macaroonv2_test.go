// Copyright 2026 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package engine_test

import (
	"encoding/hex"

	"github.com/juju/errors"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/juju/jwm/engine"
)

type macaroonV2Suite struct {
	testing.IsolationSuite

	engine engine.Engine
}

var _ = gc.Suite(&macaroonV2Suite{})

func (s *macaroonV2Suite) SetUpTest(c *gc.C) {
	s.IsolationSuite.SetUpTest(c)
	s.engine = engine.Default()
}

func acceptAll(string) error { return nil }

func (s *macaroonV2Suite) TestNew(c *gc.C) {
	m, err := s.engine.New([]byte("super_secret_key"), []byte("use super_secret_key"), "example.com")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(string(m.Id()), gc.Equals, "use super_secret_key")
	c.Check(m.Location(), gc.Equals, "example.com")
	c.Check(hex.EncodeToString(m.Signature()), gc.Equals, "2cb019237b82c7655724caf6b7bab36c2fcf342171c1a05d9d49897c00d893f1")
	c.Check(m.Caveats(), gc.HasLen, 0)
}

func (s *macaroonV2Suite) TestAddFirstPartyCaveat(c *gc.C) {
	m, err := s.engine.New([]byte("super_secret_key"), []byte("use super_secret_key"), "example.com")
	c.Assert(err, jc.ErrorIsNil)
	err = m.AddFirstPartyCaveat([]byte(`{"key": "value"}`))
	c.Assert(err, jc.ErrorIsNil)
	c.Check(hex.EncodeToString(m.Signature()), gc.Equals, "af3cafcb20826f5d39f6828a17f3691169155ad41d239deeaa86be9114be426a")
	c.Check(m.Caveats(), jc.DeepEquals, []engine.Caveat{{Id: []byte(`{"key": "value"}`)}})
}

func (s *macaroonV2Suite) TestCloneIsIndependent(c *gc.C) {
	m, err := s.engine.New([]byte("key"), []byte("id"), "loc")
	c.Assert(err, jc.ErrorIsNil)
	clone := m.Clone()
	err = clone.AddFirstPartyCaveat([]byte("a:b"))
	c.Assert(err, jc.ErrorIsNil)
	c.Check(m.Caveats(), gc.HasLen, 0)
	c.Check(m.Signature(), gc.Not(jc.DeepEquals), clone.Signature())
}

func (s *macaroonV2Suite) TestFromParts(c *gc.C) {
	m, err := s.engine.New([]byte("root"), []byte("id"), "loc")
	c.Assert(err, jc.ErrorIsNil)
	err = m.AddFirstPartyCaveat([]byte("a:b"))
	c.Assert(err, jc.ErrorIsNil)
	err = m.AddThirdPartyCaveat([]byte("caveat key"), []byte("third"), "http://auth/")
	c.Assert(err, jc.ErrorIsNil)

	rehydrated, err := s.engine.FromParts(m.Id(), m.Location(), m.Signature(), m.Caveats())
	c.Assert(err, jc.ErrorIsNil)
	c.Check(rehydrated.Id(), jc.DeepEquals, m.Id())
	c.Check(rehydrated.Location(), gc.Equals, m.Location())
	c.Check(rehydrated.Signature(), jc.DeepEquals, m.Signature())
	c.Check(rehydrated.Caveats(), jc.DeepEquals, m.Caveats())
}

func (s *macaroonV2Suite) TestFromPartsBadSignature(c *gc.C) {
	_, err := s.engine.FromParts([]byte("id"), "loc", []byte("short"), nil)
	c.Assert(err, jc.ErrorIs, engine.ErrEngine)
}

func (s *macaroonV2Suite) TestVerify(c *gc.C) {
	m, err := s.engine.New([]byte("root"), []byte("id"), "loc")
	c.Assert(err, jc.ErrorIsNil)
	err = s.engine.Verify(m, []byte("root"), acceptAll, nil)
	c.Assert(err, jc.ErrorIsNil)
	err = s.engine.Verify(m, []byte("wrong"), acceptAll, nil)
	c.Assert(err, gc.NotNil)
}

func (s *macaroonV2Suite) TestVerifyChecker(c *gc.C) {
	m, err := s.engine.New([]byte("root"), []byte("id"), "loc")
	c.Assert(err, jc.ErrorIsNil)
	err = m.AddFirstPartyCaveat([]byte("denied"))
	c.Assert(err, jc.ErrorIsNil)
	err = s.engine.Verify(m, []byte("root"), func(p string) error {
		return errors.Errorf("%q not allowed", p)
	}, nil)
	c.Assert(err, gc.ErrorMatches, `.*"denied" not allowed.*`)
}

func (s *macaroonV2Suite) TestVerifyBoundDischarge(c *gc.C) {
	m, err := s.engine.New([]byte("root"), []byte("id"), "loc")
	c.Assert(err, jc.ErrorIsNil)
	err = m.AddThirdPartyCaveat([]byte("caveat key"), []byte("third"), "http://auth/")
	c.Assert(err, jc.ErrorIsNil)

	d, err := s.engine.New([]byte("caveat key"), []byte("third"), "http://auth/")
	c.Assert(err, jc.ErrorIsNil)

	// Unbound discharges do not satisfy the chain.
	err = s.engine.Verify(m, []byte("root"), acceptAll, []engine.Macaroon{d})
	c.Assert(err, gc.NotNil)

	bound := d.Clone()
	bound.Bind(m.Signature())
	err = s.engine.Verify(m, []byte("root"), acceptAll, []engine.Macaroon{bound})
	c.Assert(err, jc.ErrorIsNil)
}

type foreignMacaroon struct {
	engine.Macaroon
}

func (s *macaroonV2Suite) TestVerifyForeignMacaroon(c *gc.C) {
	err := s.engine.Verify(foreignMacaroon{}, []byte("root"), acceptAll, nil)
	c.Assert(err, jc.ErrorIs, engine.ErrEngine)
}
