// Copyright 2026 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

// Package macaroon wraps an engine macaroon in the shape the JWM
// envelope works with: a location, an identifier, a hex signature and
// an ordered list of caveats, with a stable JSON form.
//
// Every caveat mutation is applied to a copy of the engine macaroon and
// committed only on success, so a failed mutation never leaves a
// signature that disagrees with the caveats.
package macaroon
