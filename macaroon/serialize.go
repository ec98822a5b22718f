// Copyright 2026 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package macaroon

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/juju/errors"
	gomacaroon "gopkg.in/macaroon.v2"
)

// ErrInvalidFormat is the type of errors returned when a serialized
// macaroon cannot be decoded.
const ErrInvalidFormat = errors.ConstError("invalid macaroon format")

// macaroonJSON is the serialized form of a macaroon. Field order is
// the output key order.
type macaroonJSON struct {
	Identifier string       `json:"identifier"`
	Signature  string       `json:"signature"`
	Location   string       `json:"location"`
	Caveats    []caveatJSON `json:"caveats,omitempty"`
}

// caveatJSON carries vid as unpadded URL-safe base64, as the V1
// macaroon JSON form does.
type caveatJSON struct {
	CID string `json:"cid"`
	VID string `json:"vid,omitempty"`
	CL  string `json:"cl,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (m *Macaroon) MarshalJSON() ([]byte, error) {
	doc := macaroonJSON{
		Identifier: m.identifier,
		Signature:  m.Signature(),
		Location:   m.location,
	}
	for _, cav := range m.Caveats() {
		cj := caveatJSON{
			CID: cav.CaveatId,
			CL:  cav.Location,
		}
		if cav.IsThirdParty() {
			cj.VID = base64.RawURLEncoding.EncodeToString(cav.VerificationKeyId)
		}
		doc.Caveats = append(doc.Caveats, cj)
	}
	return json.Marshal(doc)
}

// Serialize returns the canonical JSON form of the macaroon. The same
// macaroon always serializes to the same bytes.
func (m *Macaroon) Serialize() ([]byte, error) {
	data, err := m.MarshalJSON()
	return data, errors.Trace(err)
}

// UnmarshalJSON implements json.Unmarshaler. The receiver keeps its
// engine if it has one, otherwise the default engine is used.
func (m *Macaroon) UnmarshalJSON(data []byte) error {
	f := DefaultFactory()
	if m.engine != nil {
		f = NewFactory(m.engine)
	}
	decoded, err := f.Deserialize(data)
	if err != nil {
		return errors.Trace(err)
	}
	*m = *decoded
	return nil
}

// Deserialize decodes a macaroon serialized by Serialize.
func (f Factory) Deserialize(data []byte) (*Macaroon, error) {
	var doc macaroonJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.WithType(errors.Annotate(err, "decoding macaroon"), ErrInvalidFormat)
	}
	if doc.Identifier == "" {
		return nil, errors.WithType(errors.New("missing identifier"), ErrInvalidFormat)
	}
	if doc.Signature == "" {
		return nil, errors.WithType(errors.New("missing signature"), ErrInvalidFormat)
	}
	sig, err := hex.DecodeString(doc.Signature)
	if err != nil {
		return nil, errors.WithType(errors.Annotate(err, "decoding signature"), ErrInvalidFormat)
	}
	caveats := make([]Caveat, len(doc.Caveats))
	for i, cj := range doc.Caveats {
		cav := Caveat{
			CaveatId: cj.CID,
			Location: cj.CL,
		}
		if cj.VID != "" {
			// Any base64 variant is accepted on input.
			if cav.VerificationKeyId, err = gomacaroon.Base64Decode([]byte(cj.VID)); err != nil {
				return nil, errors.WithType(errors.Annotatef(err, "decoding caveat %d", i), ErrInvalidFormat)
			}
		}
		caveats[i] = cav
	}
	m, err := f.FromParts(doc.Location, doc.Identifier, sig, caveats...)
	if err != nil {
		return nil, errors.WithType(errors.Trace(err), ErrInvalidFormat)
	}
	logger.Tracef("deserialized macaroon %q with %d caveats", m.identifier, len(caveats))
	return m, nil
}

// Deserialize decodes a macaroon using the default engine.
func Deserialize(data []byte) (*Macaroon, error) {
	return DefaultFactory().Deserialize(data)
}

// Inspect returns a human readable dump of the macaroon, for debugging.
func (m *Macaroon) Inspect() string {
	var b strings.Builder
	fmt.Fprintf(&b, "location %s\n", m.location)
	fmt.Fprintf(&b, "identifier %s\n", m.identifier)
	for _, cav := range m.Caveats() {
		fmt.Fprintf(&b, "cid %s\n", cav.CaveatId)
		if cav.IsThirdParty() {
			fmt.Fprintf(&b, "vid %s\n", base64.RawURLEncoding.EncodeToString(cav.VerificationKeyId))
			fmt.Fprintf(&b, "cl %s\n", cav.Location)
		}
	}
	fmt.Fprintf(&b, "signature %s", m.Signature())
	return b.String()
}
