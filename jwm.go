// Copyright 2026 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package jwm

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/juju/errors"

	"github.com/juju/jwm/macaroon"
)

// Type is the only header type understood.
const Type = "jwm"

type header struct {
	Type string `json:"typ"`
}

// JWM holds an authorizing macaroon and its discharges.
//
// A JWM is not safe for concurrent mutation.
type JWM struct {
	authorizing *macaroon.Macaroon
	discharges  []*macaroon.Macaroon
}

// New returns an envelope for the authorizing macaroon and any
// discharges. The discharges are not checked against the authorizing
// macaroon until Verify is called.
func New(authorizing *macaroon.Macaroon, discharges ...*macaroon.Macaroon) *JWM {
	return &JWM{
		authorizing: authorizing,
		discharges:  append([]*macaroon.Macaroon(nil), discharges...),
	}
}

// AuthorizingMacaroon returns the authorizing macaroon.
func (j *JWM) AuthorizingMacaroon() *macaroon.Macaroon {
	return j.authorizing
}

// DischargeMacaroons returns the discharge macaroons in the order
// they were attached.
func (j *JWM) DischargeMacaroons() []*macaroon.Macaroon {
	return append([]*macaroon.Macaroon(nil), j.discharges...)
}

// AttachDischarge appends the discharge as given. An unbound discharge
// can be replayed with any macaroon carrying the same caveat, and will
// not verify against this one.
func (j *JWM) AttachDischarge(discharge *macaroon.Macaroon) error {
	if discharge == nil {
		return errors.NotValidf("nil discharge")
	}
	j.discharges = append(j.discharges, discharge)
	return nil
}

// AttachAndBindDischarge binds the discharge to the current signature
// of the authorizing macaroon and appends the bound copy. The given
// discharge is left unchanged.
func (j *JWM) AttachAndBindDischarge(discharge *macaroon.Macaroon) error {
	if j.authorizing == nil {
		return errors.NotValidf("envelope without authorizing macaroon")
	}
	if discharge == nil {
		return errors.NotValidf("nil discharge")
	}
	j.discharges = append(j.discharges, j.authorizing.Bind(discharge))
	return nil
}

// validate reports whether every macaroon of the envelope is present.
func (j *JWM) validate() error {
	if j == nil || j.authorizing == nil {
		return errors.NotValidf("envelope without authorizing macaroon")
	}
	for i, d := range j.discharges {
		if d == nil {
			return errors.NotValidf("nil discharge %d", i)
		}
	}
	return nil
}

// Serialize encodes the envelope in its wire form.
func (j *JWM) Serialize() (string, error) {
	if err := j.validate(); err != nil {
		return "", errors.Trace(err)
	}
	hdr, err := json.Marshal(header{Type: Type})
	if err != nil {
		return "", errors.Trace(err)
	}
	macaroons := append([]*macaroon.Macaroon{j.authorizing}, j.discharges...)
	payload, err := json.Marshal(macaroons)
	if err != nil {
		return "", errors.Annotate(err, "encoding payload")
	}
	logger.Tracef("serialized envelope for %q with %d discharges", j.authorizing.Identifier(), len(j.discharges))
	return encodeSegment(hdr) + "." + encodeSegment(payload), nil
}

// Deserialize decodes an envelope using the default macaroon engine.
// All errors satisfy errors.Is(err, ErrDeserialization).
func Deserialize(s string) (*JWM, error) {
	return DeserializeWithFactory(macaroon.DefaultFactory(), s)
}

// DeserializeWithFactory decodes an envelope, creating its macaroons
// with f. Decoding stops at the first malformed macaroon.
func DeserializeWithFactory(f macaroon.Factory, s string) (*JWM, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return nil, deserializationError(nil, "unable to detect header and body")
	}

	data, err := decodeSegment(parts[0])
	if err != nil {
		return nil, deserializationError(err, "invalid header")
	}
	var hdr header
	if err := json.Unmarshal(data, &hdr); err != nil {
		return nil, deserializationError(err, "invalid header")
	}
	if hdr.Type != Type {
		return nil, deserializationError(nil, "invalid header")
	}

	if data, err = decodeSegment(parts[1]); err != nil {
		return nil, deserializationError(err, "invalid payload")
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, deserializationError(err, "invalid payload")
	}
	if len(items) == 0 {
		return nil, deserializationError(nil, "invalid payload")
	}

	macaroons := make([]*macaroon.Macaroon, len(items))
	for i, item := range items {
		if macaroons[i], err = f.Deserialize(item); err != nil {
			return nil, errors.WithType(errors.Annotatef(err, "invalid payload: macaroon %d", i), ErrDeserialization)
		}
	}
	logger.Tracef("deserialized envelope for %q with %d discharges", macaroons[0].Identifier(), len(macaroons)-1)
	return &JWM{
		authorizing: macaroons[0],
		discharges:  macaroons[1:],
	}, nil
}

func encodeSegment(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// decodeSegment accepts padded and unpadded standard base64.
func decodeSegment(s string) ([]byte, error) {
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
}
