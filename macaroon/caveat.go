// Copyright 2026 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package macaroon

import (
	"github.com/juju/jwm/engine"
)

// Caveat is one restriction on a macaroon. Caveats are values; a
// Macaroon never hands out references to its own.
type Caveat struct {
	// CaveatId holds the predicate of a first-party caveat, or the
	// identifier sent to the third party.
	CaveatId string

	// VerificationKeyId holds the encrypted caveat key of a third-party
	// caveat. It is empty for first-party caveats.
	VerificationKeyId []byte

	// Location is the third party location hint.
	Location string
}

// IsThirdParty reports whether the caveat must be discharged.
func (c Caveat) IsThirdParty() bool {
	return len(c.VerificationKeyId) > 0
}

func (c Caveat) engineCaveat() engine.Caveat {
	return engine.Caveat{
		Id:             []byte(c.CaveatId),
		VerificationId: append([]byte(nil), c.VerificationKeyId...),
		Location:       c.Location,
	}
}

func caveatFromEngine(cav engine.Caveat) Caveat {
	c := Caveat{
		CaveatId: string(cav.Id),
		Location: cav.Location,
	}
	if len(cav.VerificationId) > 0 {
		c.VerificationKeyId = append([]byte(nil), cav.VerificationId...)
	}
	return c
}
