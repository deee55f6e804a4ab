// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Generic resource-record envelope packing/unpacking, adapted from the
// historic dns package's PackRR/UnpackRR. Where the teacher dispatches
// per rrtype via reflection over a struct tag ("dns:\"domain\""), this
// package dispatches over a small RData interface (spec §9's redesign
// note): a tagged union of known typed variants plus an opaque catch-all.
package dns

import "encoding/hex"

// RR_Header is the fixed-size envelope shared by every resource record:
// owner name, type, class, TTL, and the RDLENGTH recorded at decode time
// (encode always recomputes it; callers should not set it by hand).
type RR_Header struct {
	Name     Name
	Rrtype   uint16
	Class    uint16
	Ttl      uint32
	Rdlength uint16
}

// RData is implemented by every typed RDATA variant (PTRData, OPTData,
// TSIGData, SIGData, KEYData) and by OpaqueData for every other type.
type RData interface {
	Type() uint16
	String() string
	// len reports the uncompressed wire length of the RDATA body; used
	// only to size the encode buffer, so overestimating (e.g. ignoring
	// compression) is safe.
	len() int
	pack(msg []byte, off int, comp map[string]int, compress bool) (int, error)
}

// RR is a single resource record: an envelope plus its RDATA.
type RR struct {
	Hdr   RR_Header
	Rdata RData
}

// Header returns a pointer to rr's envelope, for callers that want to
// mutate owner/class/ttl in place (e.g. UPDATE class coercion).
func (rr *RR) Header() *RR_Header { return &rr.Hdr }

func (rr RR) String() string {
	if rr.Rdata == nil {
		return rr.Hdr.Name.String() + "\t" + uitoa(uint(rr.Hdr.Ttl)) + "\t" +
			ClassString(rr.Hdr.Class) + "\t" + TypeString(rr.Hdr.Rrtype)
	}
	return rr.Hdr.Name.String() + "\t" + uitoa(uint(rr.Hdr.Ttl)) + "\t" +
		ClassString(rr.Hdr.Class) + "\t" + TypeString(rr.Hdr.Rrtype) + "\t" + rr.Rdata.String()
}

func (rr RR) wireLen() int {
	rdlen := 0
	if rr.Rdata != nil {
		rdlen = rr.Rdata.len()
	}
	return rr.Hdr.Name.wireLen() + 10 + rdlen
}

// IsOPT reports whether rr is the EDNS(0) pseudo-record.
func (rr RR) IsOPT() bool { return rr.Hdr.Rrtype == TypeOPT }

// EncodeRR writes rr at msg[off:]: owner name, fixed fields, RDLENGTH
// (back-patched after the RDATA is written), then the RDATA itself
// (spec §4.2). Only RFC 1035 "well-known" types (CNAME, MX, NS, PTR,
// SOA) get to compress names embedded in their own RDATA; the owner
// name compresses regardless of type, except on a TSIG record, which is
// written uncompressed (VerifyTSIG strips the trailing TSIG by its
// uncompressed length).
func EncodeRR(msg []byte, off int, rr RR, comp map[string]int, compress bool) (int, error) {
	off, err := EncodeName(msg, off, rr.Hdr.Name, comp, compress && rr.Hdr.Rrtype != TypeTSIG)
	if err != nil {
		return off, err
	}
	if off+10 > len(msg) {
		return off, ErrShortBuf
	}
	off = packUint16(msg, off, rr.Hdr.Rrtype)
	off = packUint16(msg, off, rr.Hdr.Class)
	off = packUint32(msg, off, rr.Hdr.Ttl)
	rdlenOff := off
	off += 2

	rdataCompress := compress && wellKnownCompressible[rr.Hdr.Rrtype]
	off2, err := rr.Rdata.pack(msg, off, comp, rdataCompress)
	if err != nil {
		return off2, err
	}
	rdlen := off2 - off
	if rdlen > 0xFFFF {
		return off2, ErrShortBuf
	}
	packUint16(msg, rdlenOff, uint16(rdlen))
	return off2, nil
}

// DecodeRR reads one resource record from msg[off:], dispatching its
// RDATA by type (spec §4.2).
func DecodeRR(msg []byte, off int) (RR, int, error) {
	name, off, err := DecodeName(msg, off)
	if err != nil {
		return RR{}, off, err
	}
	if off+10 > len(msg) {
		return RR{}, len(msg), ErrTruncatedRData
	}
	var rrtype, class uint16
	var ttl uint32
	rrtype, off = unpackUint16(msg, off)
	class, off = unpackUint16(msg, off)
	ttl, off = unpackUint32(msg, off)
	var rdlen uint16
	rdlen, off = unpackUint16(msg, off)
	if off+int(rdlen) > len(msg) {
		return RR{}, len(msg), ErrTruncatedRData
	}
	end := off + int(rdlen)

	rdata, next, err := decodeRData(rrtype, msg, off, end)
	if err != nil {
		return RR{}, next, err
	}
	if next != end {
		return RR{}, len(msg), ErrTruncatedRData
	}
	rr := RR{
		Hdr: RR_Header{Name: name, Rrtype: rrtype, Class: class, Ttl: ttl, Rdlength: rdlen},
		Rdata: rdata,
	}
	return rr, end, nil
}

func decodeRData(rrtype uint16, msg []byte, off, end int) (RData, int, error) {
	switch rrtype {
	case TypePTR:
		return decodePTR(msg, off)
	case TypeOPT:
		return decodeOPT(msg, off, end)
	case TypeTSIG:
		return decodeTSIG(msg, off, end)
	case TypeSIG:
		return decodeSIG(msg, off, end)
	case TypeKEY:
		return decodeKEY(msg, off, end)
	default:
		raw := make([]byte, end-off)
		copy(raw, msg[off:end])
		return &OpaqueData{Rrtype: rrtype, Raw: raw}, end, nil
	}
}

// OpaqueData is the catch-all RDATA variant for every type this package
// does not need to inspect (spec §3: "RData is either a typed variant
// ... or an opaque octet string for unknown types").
type OpaqueData struct {
	Rrtype uint16
	Raw    []byte
}

func (o *OpaqueData) Type() uint16   { return o.Rrtype }
func (o *OpaqueData) String() string { return "\\# " + uitoa(uint(len(o.Raw))) + " " + hex.EncodeToString(o.Raw) }
func (o *OpaqueData) len() int       { return len(o.Raw) }

func (o *OpaqueData) pack(msg []byte, off int, comp map[string]int, compress bool) (int, error) {
	if off+len(o.Raw) > len(msg) {
		return off, ErrShortBuf
	}
	copy(msg[off:], o.Raw)
	return off + len(o.Raw), nil
}
