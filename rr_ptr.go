// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// PTR RDATA: the sole typed variant beyond OPT that this spec's core
// requires (spec §3, §9). Modeled on the pack/unpack free-function pair
// the teacher establishes for A/AAAA in msg_tags.go/msg_types.go
// (packA/unpackA with the same (off, err)/(value, off, err) shapes),
// retargeted from an IP address to a compressible domain name.
package dns

// PTRData is the RDATA of a PTR record: a single name.
type PTRData struct {
	Ptr Name
}

func (p *PTRData) Type() uint16   { return TypePTR }
func (p *PTRData) String() string { return p.Ptr.String() }
func (p *PTRData) len() int       { return p.Ptr.wireLen() }

func (p *PTRData) pack(msg []byte, off int, comp map[string]int, compress bool) (int, error) {
	return packPTRName(p.Ptr, msg, off, comp, compress)
}

// packPTRName packs the name stored in a PTR record's RDATA.
func packPTRName(n Name, msg []byte, off int, comp map[string]int, compress bool) (int, error) {
	return EncodeName(msg, off, n, comp, compress)
}

// unpackPTRName unpacks the name stored in a PTR record's RDATA. It is
// handed the full message buffer (not just the RDATA slice) because the
// name may be compressed against an owner name earlier in the packet.
func unpackPTRName(msg []byte, off int) (Name, int, error) {
	return DecodeName(msg, off)
}

func decodePTR(msg []byte, off int) (RData, int, error) {
	n, next, err := unpackPTRName(msg, off)
	if err != nil {
		return nil, next, err
	}
	return &PTRData{Ptr: n}, next, nil
}
