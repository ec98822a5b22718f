// Copyright 2026 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

/*
Package jwm implements JSON Web Macaroons: an envelope carrying one
authorizing macaroon and the discharge macaroons that satisfy its
third-party caveats, in a compact two part form similar to a JWT.

	base64({"typ":"jwm"}) "." base64([authorizing, discharge...])

The payload is a JSON array of macaroon objects, with the authorizing
macaroon always at index 0.

A typical flow:

	m, err := macaroon.New("http://mybank/", "id", rootKey)
	...
	err = m.AddThirdPartyCaveat("http://auth.mybank/", caveatKey, "caveat id")
	...
	token := jwm.New(m)
	err = token.AttachAndBindDischarge(discharge)
	...
	s, err := token.Serialize()

and on the receiving side:

	token, err := jwm.Deserialize(s)
	...
	if err := token.Verify(rootKey, false); errors.Is(err, jwm.ErrVerification) {
		// deny
	}

Discharges attached with AttachDischarge are kept as given. They only
verify if they were already bound to the authorizing macaroon;
AttachAndBindDischarge binds them first.
*/
package jwm
