// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dns

// ErrorKind classifies an Error without requiring callers to string-match.
type ErrorKind int

const (
	KindOther ErrorKind = iota
	KindTruncatedHeader
	KindTruncatedName
	KindTruncatedRData
	KindTruncatedSection
	KindMalformedName
	KindUnboundedNameExpansion
	KindNameTooLong
	KindLabelTooLong
	KindErroneousQr
	KindBadTsigSig
	KindBadTsigKey
	KindBadTsigTime
	KindBadTsigTrunc
	KindSigNotPresent
)

// Error is the error type returned throughout this package. Decode errors
// never panic; they are returned alongside whatever partial data could be
// recovered. Encode errors indicate a programming error in the caller.
type Error struct {
	Kind ErrorKind
	Err  string
}

func (e *Error) Error() string { return "dns: " + e.Err }

var (
	ErrFqdn                   error = &Error{KindOther, "name must be fully qualified"}
	ErrShortBuf               error = &Error{KindTruncatedSection, "buffer size too small"}
	ErrLoop                   error = &Error{KindUnboundedNameExpansion, "too many compression pointers"}
	ErrMalformedName          error = &Error{KindMalformedName, "reserved label type"}
	ErrNameTooLong            error = &Error{KindNameTooLong, "name exceeds 255 octets"}
	ErrLabelTooLong           error = &Error{KindLabelTooLong, "label exceeds 63 octets"}
	ErrTruncatedName          error = &Error{KindTruncatedName, "name extends past buffer end"}
	ErrTruncatedHeader        error = &Error{KindTruncatedHeader, "header extends past buffer end"}
	ErrTruncatedRData         error = &Error{KindTruncatedRData, "rdlength extends past buffer end"}
	ErrTruncatedSection       error = &Error{KindTruncatedSection, "section extends past buffer end"}
	ErrErroneousQr            error = &Error{KindErroneousQr, "reply() called on a response-flagged packet"}
	ErrSigNotPresent          error = &Error{KindSigNotPresent, "not signed"}
	ErrBadSig                 error = &Error{KindBadTsigSig, "signature did not verify (BADSIG)"}
	ErrBadKey                 error = &Error{KindBadTsigKey, "unknown or malformed key (BADKEY)"}
	ErrBadTime                error = &Error{KindBadTsigTime, "signature time outside fudge window (BADTIME)"}
	ErrBadTrunc               error = &Error{KindBadTsigTrunc, "truncated MAC (BADTRUNC)"}
	ErrNoSig                  error = &Error{KindSigNotPresent, "no signature record found"}
	ErrKey                    error = &Error{KindOther, "bad key"}
	ErrAlg                    error = &Error{KindOther, "bad algorithm"}
	ErrSecret                 error = &Error{KindOther, "no secret defined for key"}
	ErrSoa                    error = &Error{KindOther, "no SOA"}
	ErrTooManyOPT             error = &Error{KindOther, "at most one OPT record is allowed"}
)
