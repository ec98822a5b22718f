// Copyright 2026 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package jwm

import (
	"github.com/juju/errors"
)

const (
	// ErrDeserialization is the type of errors returned for malformed
	// envelopes.
	ErrDeserialization = errors.ConstError("jwm deserialization error")

	// ErrVerification is the type of errors returned when a token does
	// not verify. It denotes a denied token, not a fault.
	ErrVerification = errors.ConstError("jwm verification failed")
)

func deserializationError(cause error, msg string) error {
	err := errors.New(msg)
	if cause != nil {
		err = errors.Annotate(cause, msg)
	}
	return errors.WithType(err, ErrDeserialization)
}
