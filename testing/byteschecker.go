// Copyright 2026 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package testing

import (
	"regexp"

	gc "gopkg.in/check.v1"
)

type BytesToStringChecker struct {
	*gc.CheckerInfo
}

// BytesToStringMatch allows comparison of a []byte with a regex
// expression by converting the byte slice to a string and then
// performing a regex match. The whole string must match.
var BytesToStringMatch gc.Checker = &BytesToStringChecker{
	&gc.CheckerInfo{Name: "BytesToStringMatch", Params: []string{"obtained", "expected"}},
}

func (c *BytesToStringChecker) Check(params []interface{}, name []string) (bool, string) {
	bytes, ok := params[0].([]byte)
	if !ok {
		return false, "param 0 is not of type []byte"
	}
	regexMatch, ok := params[1].(string)
	if !ok {
		return false, "param 1 is not of type string"
	}

	re, err := regexp.Compile("^(?:" + regexMatch + ")$")
	if err != nil {
		return false, "cannot compile regexp: " + err.Error()
	}
	return re.Match(bytes), ""
}
