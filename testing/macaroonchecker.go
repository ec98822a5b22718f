// Copyright 2026 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package testing

import (
	"fmt"
	"reflect"

	gc "gopkg.in/check.v1"

	"github.com/juju/jwm/macaroon"
)

type macaroonEqualsChecker struct {
	*gc.CheckerInfo
}

// MacaroonEquals checks that two macaroons have the same identifier,
// location, signature and caveats.
var MacaroonEquals gc.Checker = &macaroonEqualsChecker{
	&gc.CheckerInfo{Name: "MacaroonEquals", Params: []string{"obtained", "expected"}},
}

func (c *macaroonEqualsChecker) Check(params []interface{}, names []string) (bool, string) {
	m1, ok := params[0].(*macaroon.Macaroon)
	if !ok {
		return false, "obtained value is not a *macaroon.Macaroon"
	}
	m2, ok := params[1].(*macaroon.Macaroon)
	if !ok {
		return false, "expected value is not a *macaroon.Macaroon"
	}
	switch {
	case m1.Identifier() != m2.Identifier():
		return false, fmt.Sprintf("identifier mismatch: %q != %q", m1.Identifier(), m2.Identifier())
	case m1.Location() != m2.Location():
		return false, fmt.Sprintf("location mismatch: %q != %q", m1.Location(), m2.Location())
	case m1.Signature() != m2.Signature():
		return false, fmt.Sprintf("signature mismatch: %s != %s", m1.Signature(), m2.Signature())
	case !reflect.DeepEqual(m1.Caveats(), m2.Caveats()):
		return false, "caveat mismatch"
	}
	return true, ""
}
