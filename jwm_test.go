// Copyright 2026 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package jwm_test

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/juju/errors"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"
	gomacaroon "gopkg.in/macaroon.v2"

	"github.com/juju/jwm"
	"github.com/juju/jwm/macaroon"
	jwmtesting "github.com/juju/jwm/testing"
)

type jwmSuite struct {
	testing.IsolationSuite
}

var _ = gc.Suite(&jwmSuite{})

func (s *jwmSuite) TestSerialize(c *gc.C) {
	token := jwm.New(jwmtesting.NewExampleMacaroon(c))
	out, err := token.Serialize()
	c.Assert(err, jc.ErrorIsNil)
	c.Check(out, gc.Equals, jwmtesting.ExampleToken)

	// Stable across calls.
	again, err := token.Serialize()
	c.Assert(err, jc.ErrorIsNil)
	c.Check(again, gc.Equals, out)
}

func (s *jwmSuite) TestSerializePayloadHoldsObjects(c *gc.C) {
	auth, discharge := jwmtesting.NewBankMacaroons(c)
	token := jwm.New(auth)
	c.Assert(token.AttachAndBindDischarge(discharge), jc.ErrorIsNil)
	out, err := token.Serialize()
	c.Assert(err, jc.ErrorIsNil)

	parts := strings.Split(out, ".")
	c.Assert(parts, gc.HasLen, 2)
	hdr, err := base64.StdEncoding.DecodeString(parts[0])
	c.Assert(err, jc.ErrorIsNil)
	c.Check(string(hdr), gc.Equals, `{"typ":"jwm"}`)
	payload, err := base64.StdEncoding.DecodeString(parts[1])
	c.Assert(err, jc.ErrorIsNil)
	c.Check(payload, jwmtesting.BytesToStringMatch, `\[\{"identifier":"we used our other secret key",.*\},\{"identifier":"this was how we remind auth of key/pred",.*\}\]`)
}

func (s *jwmSuite) TestSerializeWithoutAuthorizingMacaroon(c *gc.C) {
	_, err := jwm.New(nil).Serialize()
	c.Assert(err, jc.ErrorIs, errors.NotValid)
}

func (s *jwmSuite) TestNewCopiesDischarges(c *gc.C) {
	auth, discharge := jwmtesting.NewBankMacaroons(c)
	discharges := []*macaroon.Macaroon{discharge}
	token := jwm.New(auth, discharges...)
	discharges[0] = auth
	c.Check(token.DischargeMacaroons()[0], gc.Equals, discharge)
	c.Check(token.AuthorizingMacaroon(), gc.Equals, auth)
}

func (s *jwmSuite) TestAttachDischarge(c *gc.C) {
	auth, discharge := jwmtesting.NewBankMacaroons(c)
	token := jwm.New(auth)
	c.Assert(token.AttachDischarge(discharge), jc.ErrorIsNil)
	c.Assert(token.DischargeMacaroons(), gc.HasLen, 1)
	c.Check(token.DischargeMacaroons()[0], gc.Equals, discharge)
}

func (s *jwmSuite) TestAttachAndBindDischarge(c *gc.C) {
	auth, discharge := jwmtesting.NewBankMacaroons(c)
	unboundSig := discharge.Signature()

	token := jwm.New(auth)
	c.Assert(token.AttachAndBindDischarge(discharge), jc.ErrorIsNil)
	c.Assert(token.DischargeMacaroons(), gc.HasLen, 1)
	bound := token.DischargeMacaroons()[0]
	c.Check(bound, jwmtesting.MacaroonEquals, auth.Bind(discharge))
	c.Check(bound.Signature(), gc.Not(gc.Equals), unboundSig)
	c.Check(discharge.Signature(), gc.Equals, unboundSig)
}

func (s *jwmSuite) TestAttachNilDischarge(c *gc.C) {
	auth, _ := jwmtesting.NewBankMacaroons(c)
	token := jwm.New(auth)
	c.Check(token.AttachDischarge(nil), jc.ErrorIs, errors.NotValid)
	c.Check(token.AttachAndBindDischarge(nil), jc.ErrorIs, errors.NotValid)
	c.Check(token.DischargeMacaroons(), gc.HasLen, 0)
}

func (s *jwmSuite) TestAttachAndBindWithoutAuthorizingMacaroon(c *gc.C) {
	_, discharge := jwmtesting.NewBankMacaroons(c)
	token := jwm.New(nil)
	c.Check(token.AttachAndBindDischarge(discharge), jc.ErrorIs, errors.NotValid)
	c.Check(token.DischargeMacaroons(), gc.HasLen, 0)
}

func (s *jwmSuite) TestSerializeNilDischarge(c *gc.C) {
	auth, _ := jwmtesting.NewBankMacaroons(c)
	_, err := jwm.New(auth, nil).Serialize()
	c.Assert(err, jc.ErrorIs, errors.NotValid)
}

func (s *jwmSuite) TestRoundTrip(c *gc.C) {
	auth, discharge := jwmtesting.NewBankMacaroons(c)
	other, err := macaroon.New("http://other/", "other", []byte("other key"))
	c.Assert(err, jc.ErrorIsNil)

	token := jwm.New(auth)
	c.Assert(token.AttachAndBindDischarge(discharge), jc.ErrorIsNil)
	c.Assert(token.AttachDischarge(other), jc.ErrorIsNil)
	out, err := token.Serialize()
	c.Assert(err, jc.ErrorIsNil)

	decoded, err := jwm.Deserialize(out)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(decoded.AuthorizingMacaroon(), jwmtesting.MacaroonEquals, auth)
	expected := token.DischargeMacaroons()
	obtained := decoded.DischargeMacaroons()
	c.Assert(obtained, gc.HasLen, len(expected))
	for i := range expected {
		c.Check(obtained[i], jwmtesting.MacaroonEquals, expected[i])
	}
}

func (s *jwmSuite) TestRoundTripIsIdempotent(c *gc.C) {
	auth, discharge := jwmtesting.NewBankMacaroons(c)
	token := jwm.New(auth)
	c.Assert(token.AttachAndBindDischarge(discharge), jc.ErrorIsNil)
	out, err := token.Serialize()
	c.Assert(err, jc.ErrorIsNil)

	decoded, err := jwm.Deserialize(out)
	c.Assert(err, jc.ErrorIsNil)
	again, err := decoded.Serialize()
	c.Assert(err, jc.ErrorIsNil)
	c.Check(again, gc.Equals, out)
}

func (s *jwmSuite) TestDeserializeExample(c *gc.C) {
	token, err := jwm.Deserialize(jwmtesting.ExampleToken)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(token.AuthorizingMacaroon(), jwmtesting.MacaroonEquals, jwmtesting.NewExampleMacaroon(c))
	c.Check(token.DischargeMacaroons(), gc.HasLen, 0)
}

func (s *jwmSuite) TestDeserializeLegacyEncoding(c *gc.C) {
	token, err := jwm.Deserialize(jwmtesting.LegacyExampleToken)
	c.Assert(err, jc.ErrorIsNil)
	auth := token.AuthorizingMacaroon()
	c.Check(auth.Identifier(), gc.Equals, jwmtesting.ExampleIdentifier)
	c.Check(auth.Location(), gc.Equals, jwmtesting.ExampleLocation)
	c.Check(auth.Signature(), gc.Equals, jwmtesting.ExampleSignature)
	c.Check(token.Verify([]byte(jwmtesting.ExampleKey), false), jc.ErrorIsNil)
}

func (s *jwmSuite) TestDeserializeV1JSONMacaroons(c *gc.C) {
	// Macaroons in the V1 JSON form, as emitted by other macaroon
	// libraries, carry vid as unpadded URL-safe base64.
	auth, err := gomacaroon.New([]byte(jwmtesting.BankKey), []byte(jwmtesting.BankIdentifier), jwmtesting.BankLocation, gomacaroon.V1)
	c.Assert(err, jc.ErrorIsNil)
	err = auth.AddFirstPartyCaveat([]byte("account = 3735928559"))
	c.Assert(err, jc.ErrorIsNil)
	err = auth.AddThirdPartyCaveat([]byte(jwmtesting.AuthCaveatKey), []byte(jwmtesting.AuthCaveatMessage), jwmtesting.AuthLocation)
	c.Assert(err, jc.ErrorIsNil)
	discharge, err := gomacaroon.New([]byte(jwmtesting.AuthCaveatKey), []byte(jwmtesting.AuthCaveatMessage), jwmtesting.AuthLocation, gomacaroon.V1)
	c.Assert(err, jc.ErrorIsNil)
	discharge.Bind(auth.Signature())

	payload, err := json.Marshal([]*gomacaroon.Macaroon{auth, discharge})
	c.Assert(err, jc.ErrorIsNil)
	token, err := jwm.Deserialize(encode(`{"typ":"jwm"}`) + "." + base64.StdEncoding.EncodeToString(payload))
	c.Assert(err, jc.ErrorIsNil)

	c.Check(token.AuthorizingMacaroon().Caveats(), gc.HasLen, 2)
	c.Check(token.DischargeMacaroons(), gc.HasLen, 1)
	c.Check(token.Verify([]byte(jwmtesting.BankKey), false), jc.ErrorIsNil)
	c.Check(token.Verify([]byte("wrong key"), false), jc.ErrorIs, jwm.ErrVerification)
}

func encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func (s *jwmSuite) TestDeserializeErrors(c *gc.C) {
	validHeader := encode(`{"typ":"jwm"}`)
	validPayload := strings.Split(jwmtesting.ExampleToken, ".")[1]

	tests := []struct {
		about string
		input string
		err   string
	}{{
		about: "empty string",
		input: "",
		err:   "unable to detect header and body",
	}, {
		about: "no separator",
		input: validHeader + validPayload,
		err:   "unable to detect header and body",
	}, {
		about: "too many separators",
		input: validHeader + "." + validPayload + ".",
		err:   "unable to detect header and body",
	}, {
		about: "header not base64",
		input: "!!!." + validPayload,
		err:   "invalid header: .*",
	}, {
		about: "header not json",
		input: encode("jwm") + "." + validPayload,
		err:   "invalid header: .*",
	}, {
		about: "header wrong type",
		input: encode(`{"typ":"jwt"}`) + "." + validPayload,
		err:   "invalid header",
	}, {
		about: "header type wrong case",
		input: encode(`{"typ":"JWM"}`) + "." + validPayload,
		err:   "invalid header",
	}, {
		about: "header without type",
		input: encode(`{}`) + "." + validPayload,
		err:   "invalid header",
	}, {
		about: "payload not base64",
		input: validHeader + ".!!!",
		err:   "invalid payload: .*",
	}, {
		about: "payload not an array",
		input: validHeader + "." + encode(`{"identifier":"id"}`),
		err:   "invalid payload: .*",
	}, {
		about: "payload empty array",
		input: validHeader + "." + encode(`[]`),
		err:   "invalid payload",
	}, {
		about: "payload null",
		input: validHeader + "." + encode(`null`),
		err:   "invalid payload",
	}, {
		about: "payload holds strings",
		input: validHeader + "." + encode(`["macaroon"]`),
		err:   "invalid payload: macaroon 0: .*",
	}, {
		about: "malformed discharge",
		input: validHeader + "." + encode(`[{"identifier":"use super_secret_key","signature":"`+
			jwmtesting.ExampleSignature+`","location":"example.com"},{"identifier":"d"}]`),
		err: "invalid payload: macaroon 1: missing signature",
	}}
	for i, test := range tests {
		c.Logf("test %d: %s", i, test.about)
		token, err := jwm.Deserialize(test.input)
		c.Check(token, gc.IsNil)
		c.Check(err, jc.ErrorIs, jwm.ErrDeserialization)
		c.Check(err, gc.ErrorMatches, test.err)
	}
}
