// Copyright 2026 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package testing

import (
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/juju/jwm/macaroon"
)

const (
	// ExampleLocation, ExampleIdentifier and ExampleKey describe the
	// caveat-free macaroon used for serialization regression tests.
	ExampleLocation   = "example.com"
	ExampleIdentifier = "use super_secret_key"
	ExampleKey        = "super_secret_key"

	// ExampleSignature is the signature of the example macaroon.
	ExampleSignature = "2cb019237b82c7655724caf6b7bab36c2fcf342171c1a05d9d49897c00d893f1"

	// ExampleToken is the example macaroon wrapped on its own. The
	// header is written compactly as {"typ":"jwm"}; the spaced form
	// {"typ": "jwm"} of older encoders decodes the same, see
	// LegacyExampleToken.
	ExampleToken = "eyJ0eXAiOiJqd20ifQ==." +
		"W3siaWRlbnRpZmllciI6InVzZSBzdXBlcl9zZWNyZXRfa2V5Iiwic2lnbmF0dXJlIjoiMmNiMDE5MjM3YjgyYzc2NTU3MjRjYWY2YjdiYWIzNmMy" +
		"ZmNmMzQyMTcxYzFhMDVkOWQ0OTg5N2MwMGQ4OTNmMSIsImxvY2F0aW9uIjoiZXhhbXBsZS5jb20ifV0="

	// LegacyExampleToken is the example macaroon as emitted by older
	// encoders: spaced JSON and unpadded base64.
	LegacyExampleToken = "eyJ0eXAiOiAiandtIn0." +
		"W3siaWRlbnRpZmllciI6ICJ1c2Ugc3VwZXJfc2VjcmV0X2tleSIsICJzaWduYXR1cmUiOiAiMmNiMDE5MjM3YjgyYzc2NTU3MjRjYWY2YjdiYWIz" +
		"NmMyZmNmMzQyMTcxYzFhMDVkOWQ0OTg5N2MwMGQ4OTNmMSIsICJsb2NhdGlvbiI6ICJleGFtcGxlLmNvbSJ9XQ"
)

// Bank scenario values: an authorizing macaroon from a bank with a
// third-party caveat addressed to the bank's auth service.
const (
	BankLocation      = "http://mybank/"
	BankIdentifier    = "we used our other secret key"
	BankKey           = "this is a different super-secret key; never use the same secret twice"
	AuthLocation      = "http://auth.mybank/"
	AuthCaveatKey     = "4; guaranteed random by a fair toss of the dice"
	AuthCaveatMessage = "this was how we remind auth of key/pred"
)

// NewExampleMacaroon returns the caveat-free example macaroon.
func NewExampleMacaroon(c *gc.C) *macaroon.Macaroon {
	m, err := macaroon.New(ExampleLocation, ExampleIdentifier, []byte(ExampleKey))
	c.Assert(err, jc.ErrorIsNil)
	return m
}

// NewBankMacaroons returns the bank's authorizing macaroon, carrying
// an account caveat and a third-party caveat, and an unbound discharge
// for it issued by the auth service.
func NewBankMacaroons(c *gc.C) (authorizing, discharge *macaroon.Macaroon) {
	authorizing, err := macaroon.New(BankLocation, BankIdentifier, []byte(BankKey))
	c.Assert(err, jc.ErrorIsNil)
	err = authorizing.AddFirstPartyCaveat("account", "3735928559")
	c.Assert(err, jc.ErrorIsNil)
	err = authorizing.AddThirdPartyCaveat(AuthLocation, []byte(AuthCaveatKey), AuthCaveatMessage)
	c.Assert(err, jc.ErrorIsNil)

	discharge, err = macaroon.New(AuthLocation, AuthCaveatMessage, []byte(AuthCaveatKey))
	c.Assert(err, jc.ErrorIsNil)
	err = discharge.AddFirstPartyCaveat("time", "< 2015-01-01T00:00")
	c.Assert(err, jc.ErrorIsNil)
	return authorizing, discharge
}
