// Copyright 2026 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package engine

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"

	"github.com/juju/errors"
	"gopkg.in/macaroon.v2"
)

// Default returns the engine backed by gopkg.in/macaroon.v2.
func Default() Engine {
	return macaroonV2{}
}

type macaroonV2 struct{}

// New is part of the Engine interface.
func (macaroonV2) New(rootKey, id []byte, location string) (Macaroon, error) {
	m, err := macaroon.New(rootKey, id, location, macaroon.V2)
	if err != nil {
		return nil, errors.WithType(errors.Annotate(err, "creating macaroon"), ErrEngine)
	}
	return &v2Macaroon{m: m}, nil
}

// The library only exposes signature rehydration through its
// decoders, so FromParts goes through the V2 JSON form.
type jsonV2 struct {
	Caveats     []caveatJSONV2 `json:"c,omitempty"`
	Location    string         `json:"l,omitempty"`
	Identifier  string         `json:"i64"`
	Signature64 string         `json:"s64"`
}

type caveatJSONV2 struct {
	CID64    string `json:"i64"`
	VID64    string `json:"v64,omitempty"`
	Location string `json:"l,omitempty"`
}

// FromParts is part of the Engine interface.
func (macaroonV2) FromParts(id []byte, location string, signature []byte, caveats []Caveat) (Macaroon, error) {
	if len(signature) != sha256.Size {
		return nil, errors.WithType(errors.Errorf("signature has unexpected length %d", len(signature)), ErrEngine)
	}
	enc := base64.RawURLEncoding
	doc := jsonV2{
		Location:    location,
		Identifier:  enc.EncodeToString(id),
		Signature64: enc.EncodeToString(signature),
	}
	for _, cav := range caveats {
		doc.Caveats = append(doc.Caveats, caveatJSONV2{
			CID64:    enc.EncodeToString(cav.Id),
			VID64:    enc.EncodeToString(cav.VerificationId),
			Location: cav.Location,
		})
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.WithType(errors.Trace(err), ErrEngine)
	}
	var m macaroon.Macaroon
	if err := m.UnmarshalJSON(data); err != nil {
		return nil, errors.WithType(errors.Annotate(err, "rehydrating macaroon"), ErrEngine)
	}
	return &v2Macaroon{m: &m}, nil
}

// Verify is part of the Engine interface.
func (macaroonV2) Verify(primary Macaroon, rootKey []byte, check Checker, discharges []Macaroon) error {
	m, err := unwrap(primary)
	if err != nil {
		return errors.Trace(err)
	}
	ds := make([]*macaroon.Macaroon, len(discharges))
	for i, d := range discharges {
		if ds[i], err = unwrap(d); err != nil {
			return errors.Trace(err)
		}
	}
	return m.Verify(rootKey, check, ds)
}

func unwrap(m Macaroon) (*macaroon.Macaroon, error) {
	v2, ok := m.(*v2Macaroon)
	if !ok {
		return nil, errors.WithType(errors.Errorf("unexpected macaroon type %T", m), ErrEngine)
	}
	return v2.m, nil
}

type v2Macaroon struct {
	m *macaroon.Macaroon
}

func (v *v2Macaroon) Id() []byte {
	return v.m.Id()
}

func (v *v2Macaroon) Location() string {
	return v.m.Location()
}

func (v *v2Macaroon) Signature() []byte {
	return v.m.Signature()
}

func (v *v2Macaroon) Caveats() []Caveat {
	cavs := v.m.Caveats()
	result := make([]Caveat, len(cavs))
	for i, cav := range cavs {
		result[i] = Caveat{
			Id:             cav.Id,
			VerificationId: cav.VerificationId,
			Location:       cav.Location,
		}
	}
	return result
}

func (v *v2Macaroon) AddFirstPartyCaveat(predicate []byte) error {
	if err := v.m.AddFirstPartyCaveat(predicate); err != nil {
		return errors.WithType(errors.Annotate(err, "adding first party caveat"), ErrEngine)
	}
	return nil
}

func (v *v2Macaroon) AddThirdPartyCaveat(caveatKey, caveatId []byte, location string) error {
	if err := v.m.AddThirdPartyCaveat(caveatKey, caveatId, location); err != nil {
		return errors.WithType(errors.Annotate(err, "adding third party caveat"), ErrEngine)
	}
	return nil
}

func (v *v2Macaroon) Bind(primarySignature []byte) {
	v.m.Bind(primarySignature)
}

func (v *v2Macaroon) Clone() Macaroon {
	return &v2Macaroon{m: v.m.Clone()}
}
