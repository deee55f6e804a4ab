// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// EDNS(0) OPT pseudo-record (RFC 6891). The option-list pack/unpack loop
// here is the direct descendant of the teacher's msg.go []EDNS0 branch
// inside PackStruct/UnpackStruct (option-code/option-length/option-data,
// one after another until RDLENGTH is exhausted).
package dns

import "encoding/hex"

// EDNSOption is one (option-code, option-data) pair carried in an OPT
// record's RDATA.
type EDNSOption struct {
	Code uint16
	Data []byte
}

// OPTData is the RDATA of the EDNS(0) pseudo-record: a concatenation of
// options. The extended-rcode/version/DO-bit/UDP-size fields live in the
// owning RR's repurposed TTL and CLASS (see EDNS0* helpers on RR).
type OPTData struct {
	Options []EDNSOption
}

func (o *OPTData) Type() uint16 { return TypeOPT }

func (o *OPTData) String() string {
	s := "; EDNS: version 0"
	for _, opt := range o.Options {
		s += "; OPT " + uitoa(uint(opt.Code)) + ": " + hex.EncodeToString(opt.Data)
	}
	return s
}

func (o *OPTData) len() int {
	n := 0
	for _, opt := range o.Options {
		n += 4 + len(opt.Data)
	}
	return n
}

func (o *OPTData) pack(msg []byte, off int, comp map[string]int, compress bool) (int, error) {
	for _, opt := range o.Options {
		if off+4+len(opt.Data) > len(msg) {
			return off, ErrShortBuf
		}
		off = packUint16(msg, off, opt.Code)
		off = packUint16(msg, off, uint16(len(opt.Data)))
		copy(msg[off:], opt.Data)
		off += len(opt.Data)
	}
	return off, nil
}

func decodeOPT(msg []byte, off, end int) (RData, int, error) {
	var opts []EDNSOption
	for off < end {
		if off+4 > end {
			return nil, len(msg), ErrTruncatedRData
		}
		var code, dlen uint16
		code, off = unpackUint16(msg, off)
		dlen, off = unpackUint16(msg, off)
		if off+int(dlen) > end {
			return nil, len(msg), ErrTruncatedRData
		}
		data := make([]byte, dlen)
		copy(data, msg[off:off+int(dlen)])
		off += int(dlen)
		opts = append(opts, EDNSOption{Code: code, Data: data})
	}
	return &OPTData{Options: opts}, off, nil
}

// NewOPT builds an OPT record with the given EDNS(0) fields spliced into
// its repurposed TTL (extended-rcode, version, DO bit) and CLASS
// (requester UDP payload size), per RFC 6891 §6.1.
func NewOPT(udpSize uint16, extendedRcode, version uint8, do bool, opts ...EDNSOption) RR {
	ttl := uint32(extendedRcode)<<24 | uint32(version)<<16
	if do {
		ttl |= 1 << 15
	}
	return RR{
		Hdr:   RR_Header{Name: Name{}, Rrtype: TypeOPT, Class: udpSize, Ttl: ttl},
		Rdata: &OPTData{Options: opts},
	}
}

// EDNS0ExtendedRcode returns the high 8 bits of rcode carried in rr's TTL.
func (rr RR) EDNS0ExtendedRcode() uint8 { return uint8(rr.Hdr.Ttl >> 24) }

// EDNS0Version returns the EDNS version carried in rr's TTL.
func (rr RR) EDNS0Version() uint8 { return uint8(rr.Hdr.Ttl >> 16) }

// EDNS0DO reports the DNSSEC-OK bit carried in rr's TTL.
func (rr RR) EDNS0DO() bool { return rr.Hdr.Ttl&(1<<15) != 0 }

// EDNS0UDPSize returns the requester's advertised UDP payload size,
// carried in rr's CLASS field.
func (rr RR) EDNS0UDPSize() uint16 { return rr.Hdr.Class }
