// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dns

// Resource record types this package knows the wire numbers of. Only
// TypePTR and TypeOPT (plus TypeTSIG/TypeSIG/TypeKEY for the signing
// hooks) get typed RDATA; everything else round-trips as opaque bytes.
const (
	TypeNone  uint16 = 0
	TypeA     uint16 = 1
	TypeNS    uint16 = 2
	TypeCNAME uint16 = 5
	TypeSOA   uint16 = 6
	TypePTR   uint16 = 12
	TypeMX    uint16 = 15
	TypeTXT   uint16 = 16
	TypeAAAA  uint16 = 28
	TypeSRV   uint16 = 33
	TypeOPT   uint16 = 41
	TypeKEY   uint16 = 25
	TypeSIG   uint16 = 24
	TypeTSIG  uint16 = 250
	TypeAXFR  uint16 = 252
	TypeANY   uint16 = 255
)

// Classes.
const (
	ClassINET   uint16 = 1
	ClassCSNET  uint16 = 2
	ClassCHAOS  uint16 = 3
	ClassHESIOD uint16 = 4
	ClassNONE   uint16 = 254
	ClassANY    uint16 = 255
)

// Opcodes.
const (
	OpcodeQuery  = 0
	OpcodeIQuery = 1
	OpcodeStatus = 2
	OpcodeNotify = 4
	OpcodeUpdate = 5
)

// Rcodes. Values above 15 are only representable when an OPT record is
// present (RFC 6891 §6.1.3): the low 4 bits live in the header, the
// extended 8 bits live in the OPT TTL field.
const (
	RcodeSuccess        = 0
	RcodeFormatError    = 1
	RcodeServerFailure  = 2
	RcodeNameError      = 3
	RcodeNotImplemented = 4
	RcodeRefused        = 5
	RcodeYXDomain       = 6
	RcodeYXRrset        = 7
	RcodeNXRrset        = 8
	RcodeNotAuth        = 9
	RcodeNotZone        = 10
	RcodeBadSig         = 16
	RcodeBadKey         = 17
	RcodeBadTime        = 18
	RcodeBadMode        = 19
	RcodeBadName        = 20
	RcodeBadAlg         = 21
	RcodeBadTrunc       = 22
)

// wellKnownCompressible lists the RFC 1035-era types whose RDATA names
// are eligible for compression against the rest of the packet (§4.2).
// Newer types never compress their embedded names.
var wellKnownCompressible = map[uint16]bool{
	TypeCNAME: true,
	TypeMX:    true,
	TypeNS:    true,
	TypePTR:   true,
	TypeSOA:   true,
}

// TypeString renders a type number using its mnemonic when known, else "TYPEnnn".
func TypeString(t uint16) string {
	if s, ok := typeStr[t]; ok {
		return s
	}
	return "TYPE" + uitoa(uint(t))
}

var typeStr = map[uint16]string{
	TypeA:     "A",
	TypeNS:    "NS",
	TypeCNAME: "CNAME",
	TypeSOA:   "SOA",
	TypePTR:   "PTR",
	TypeMX:    "MX",
	TypeTXT:   "TXT",
	TypeAAAA:  "AAAA",
	TypeSRV:   "SRV",
	TypeOPT:   "OPT",
	TypeKEY:   "KEY",
	TypeSIG:   "SIG",
	TypeTSIG:  "TSIG",
	TypeAXFR:  "AXFR",
	TypeANY:   "ANY",
}

var classStr = map[uint16]string{
	ClassINET:   "IN",
	ClassCSNET:  "CS",
	ClassCHAOS:  "CH",
	ClassHESIOD: "HS",
	ClassNONE:   "NONE",
	ClassANY:    "ANY",
}

// ClassString renders a class number using its mnemonic when known, else "CLASSnnn".
func ClassString(c uint16) string {
	if s, ok := classStr[c]; ok {
		return s
	}
	return "CLASS" + uitoa(uint(c))
}

var opcodeStr = map[int]string{
	OpcodeQuery:  "QUERY",
	OpcodeIQuery: "IQUERY",
	OpcodeStatus: "STATUS",
	OpcodeNotify: "NOTIFY",
	OpcodeUpdate: "UPDATE",
}

var rcodeStr = map[int]string{
	RcodeSuccess:        "NOERROR",
	RcodeFormatError:    "FORMERR",
	RcodeServerFailure:  "SERVFAIL",
	RcodeNameError:      "NXDOMAIN",
	RcodeNotImplemented: "NOTIMPL",
	RcodeRefused:        "REFUSED",
	RcodeYXDomain:       "YXDOMAIN",
	RcodeYXRrset:        "YXRRSET",
	RcodeNXRrset:        "NXRRSET",
	RcodeNotAuth:        "NOTAUTH",
	RcodeNotZone:        "NOTZONE",
	RcodeBadSig:         "BADSIG",
	RcodeBadKey:         "BADKEY",
	RcodeBadTime:        "BADTIME",
	RcodeBadMode:        "BADMODE",
	RcodeBadName:        "BADNAME",
	RcodeBadAlg:         "BADALG",
	RcodeBadTrunc:       "BADTRUNC",
}

func uitoa(v uint) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
