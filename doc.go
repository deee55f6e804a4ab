// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dns implements encoding, decoding, truncation and signing of DNS
// messages on the wire (RFC 1035 §4, RFC 2136, RFC 2845, RFC 6891).
//
// The package is organized around a single mutable Packet value that is
// built up or parsed, then encoded once. Domain-name compression during
// encode and pointer expansion during decode are handled by the NameCodec
// in name.go; the generic resource-record envelope by rr.go; EDNS(0) OPT
// splicing by opt.go; RFC 2181 truncation by truncate.go; and TSIG/SIG0
// signing by tsig.go and sig0.go.
//
// Resolver transport, per-type RDATA bodies beyond PTR, OPT and the
// TSIG/SIG/KEY records the signing hooks use, and zone-file parsing are
// out of scope. The cryptographic primitives backing TSIG/SIG0 are
// reached through the MACFunc/Signer collaborator interfaces in
// crypto.go.
package dns
