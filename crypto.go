// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Pluggable MAC/signature collaborators for TSIG and SIG(0), grounded on
// the teacher's tsig.go/sig0.go, which called straight into crypto/hmac
// and crypto/*. This package keeps that choice (spec's Non-goals exclude
// a crypto backend of our own) but names the seams as interfaces so a
// caller can swap in a hardware-backed key store without touching the
// wire code.
package dns

import (
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
)

// TSIG algorithm names, RFC 4635 / RFC 8945 §6.
const (
	HmacMD5    = "hmac-md5.sig-alg.reg.int."
	HmacSHA1   = "hmac-sha1."
	HmacSHA256 = "hmac-sha256."
	HmacSHA512 = "hmac-sha512."
)

// MACFunc computes a keyed MAC over msg under the named algorithm. The
// default implementation is hmacMAC, backed by crypto/hmac.
type MACFunc interface {
	MAC(algorithm string, secret, msg []byte) ([]byte, error)
}

type hmacMAC struct{}

// DefaultMAC is the package's built-in MACFunc, implementing the four
// HMAC algorithms TSIG conventionally uses.
var DefaultMAC MACFunc = hmacMAC{}

func (hmacMAC) MAC(algorithm string, secret, msg []byte) ([]byte, error) {
	var newHash func() hash.Hash
	switch algorithm {
	case HmacMD5:
		newHash = md5.New
	case HmacSHA1:
		newHash = sha1.New
	case HmacSHA256:
		newHash = sha256.New
	case HmacSHA512:
		newHash = sha512.New
	default:
		return nil, ErrAlg
	}
	h := hmac.New(newHash, secret)
	h.Write(msg)
	return h.Sum(nil), nil
}

// SIG(0) algorithm numbers this package signs/verifies with (RFC 8080 §3).
const (
	AlgED25519 uint8 = 15
)

// Signer produces and verifies SIG(0)-style public-key signatures. The
// default implementation, ed25519Signer, covers AlgED25519 only; the
// spec's older RSA/DSA algorithm numbers are accepted on the wire
// (SIGData round-trips them) but this package does not sign or verify
// them itself.
type Signer interface {
	Sign(algorithm uint8, privateKey, msg []byte) ([]byte, error)
	Verify(algorithm uint8, publicKey, msg, sig []byte) error
}

type ed25519Signer struct{}

// DefaultSigner is the package's built-in Signer.
var DefaultSigner Signer = ed25519Signer{}

func (ed25519Signer) Sign(algorithm uint8, privateKey, msg []byte) ([]byte, error) {
	if algorithm != AlgED25519 {
		return nil, ErrAlg
	}
	if len(privateKey) != ed25519.PrivateKeySize {
		return nil, ErrKey
	}
	return ed25519.Sign(ed25519.PrivateKey(privateKey), msg), nil
}

func (ed25519Signer) Verify(algorithm uint8, publicKey, msg, sig []byte) error {
	if algorithm != AlgED25519 {
		return ErrAlg
	}
	if len(publicKey) != ed25519.PublicKeySize {
		return ErrKey
	}
	if !ed25519.Verify(ed25519.PublicKey(publicKey), msg, sig) {
		return ErrBadSig
	}
	return nil
}
