// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// TSIG (RFC 2845 / RFC 8945): a MAC appended to the additional section
// covering everything that precedes it, keyed by a name shared out of
// band. Adapted from the teacher's tsig.go TsigGenerate/TsigVerify pair,
// retargeted from that package's reflection-packed Msg to this one's
// Packet/RR types and the pluggable MACFunc of crypto.go.
package dns

import "crypto/subtle"

// TSIGData is the RDATA of a TSIG record (RFC 2845 §2.3). TimeSigned
// only uses its low 48 bits on the wire.
type TSIGData struct {
	AlgorithmName Name
	TimeSigned    uint64
	Fudge         uint16
	MAC           []byte
	OrigId        uint16
	Error         uint16
	OtherData     []byte
}

func (t *TSIGData) Type() uint16 { return TypeTSIG }

func (t *TSIGData) String() string {
	return t.AlgorithmName.String() + " " + uitoa(uint(t.TimeSigned)) + " " + uitoa(uint(t.Fudge))
}

func (t *TSIGData) len() int {
	return t.AlgorithmName.wireLen() + 6 + 2 + 2 + len(t.MAC) + 2 + 2 + 2 + len(t.OtherData)
}

func (t *TSIGData) pack(msg []byte, off int, comp map[string]int, compress bool) (int, error) {
	off, err := EncodeName(msg, off, t.AlgorithmName, comp, false)
	if err != nil {
		return off, err
	}
	if off+6+2+2+len(t.MAC)+2+2+2+len(t.OtherData) > len(msg) {
		return off, ErrShortBuf
	}
	off = packUint48(msg, off, t.TimeSigned)
	off = packUint16(msg, off, t.Fudge)
	off = packUint16(msg, off, uint16(len(t.MAC)))
	copy(msg[off:], t.MAC)
	off += len(t.MAC)
	off = packUint16(msg, off, t.OrigId)
	off = packUint16(msg, off, t.Error)
	off = packUint16(msg, off, uint16(len(t.OtherData)))
	copy(msg[off:], t.OtherData)
	off += len(t.OtherData)
	return off, nil
}

func decodeTSIG(msg []byte, off, end int) (RData, int, error) {
	alg, off, err := DecodeName(msg, off)
	if err != nil {
		return nil, off, err
	}
	if off+6+2+2 > end {
		return nil, len(msg), ErrTruncatedRData
	}
	t := &TSIGData{AlgorithmName: alg}
	t.TimeSigned, off = unpackUint48(msg, off)
	t.Fudge, off = unpackUint16(msg, off)
	var macSize uint16
	macSize, off = unpackUint16(msg, off)
	if off+int(macSize)+6 > end {
		return nil, len(msg), ErrTruncatedRData
	}
	t.MAC = append([]byte(nil), msg[off:off+int(macSize)]...)
	off += int(macSize)
	t.OrigId, off = unpackUint16(msg, off)
	t.Error, off = unpackUint16(msg, off)
	var otherLen uint16
	otherLen, off = unpackUint16(msg, off)
	if off+int(otherLen) > end {
		return nil, len(msg), ErrTruncatedRData
	}
	t.OtherData = append([]byte(nil), msg[off:off+int(otherLen)]...)
	off += int(otherLen)
	return t, off, nil
}

// tsigVariables packs the "TSIG variables" RFC 2845 §3.4.2 folds into the
// MAC, in canonical (lowercased, uncompressed) wire form.
func tsigVariables(keyName Name, algorithm string, timeSigned uint64, fudge uint16, errCode uint16, other []byte) ([]byte, error) {
	algo := canonicalName(algorithm)
	buf := make([]byte, keyName.wireLen()+2+2+4+algo.wireLen()+6+2+2+2+len(other))
	comp := map[string]int{}
	off, err := EncodeName(buf, 0, canonicalName(keyName.String()), comp, false)
	if err != nil {
		return nil, err
	}
	off = packUint16(buf, off, ClassANY)
	off = packUint32(buf, off, 0)
	off, err = EncodeName(buf, off, algo, comp, false)
	if err != nil {
		return nil, err
	}
	off = packUint48(buf, off, timeSigned)
	off = packUint16(buf, off, fudge)
	off = packUint16(buf, off, errCode)
	off = packUint16(buf, off, uint16(len(other)))
	copy(buf[off:], other)
	off += len(other)
	return buf[:off], nil
}

// canonicalName parses s (already a valid presentation name) and folds
// every label to lowercase, per RFC 2845 §3.4.
func canonicalName(s string) Name {
	n, err := ParseName(s)
	if err != nil {
		return Name{}
	}
	for _, l := range n.Labels {
		for i, c := range l {
			l[i] = foldByte(c)
		}
	}
	return n
}

// SignTSIG appends a TSIG record to p's additional section, its MAC
// computed by mac over p's canonical wire image (requestMAC, when
// non-nil, is prepended per RFC 2845 §4.4 response chaining) followed by
// the TSIG variables.
func SignTSIG(p *Packet, mac MACFunc, keyName Name, algorithm string, secret, requestMAC []byte, timeSigned uint64, fudge uint16) error {
	origId := p.Id
	wire, err := p.Encode()
	if err != nil {
		return err
	}

	vars, err := tsigVariables(keyName, algorithm, timeSigned, fudge, 0, nil)
	if err != nil {
		return err
	}
	signed := make([]byte, 0, len(requestMAC)+2+len(wire)+len(vars))
	if len(requestMAC) > 0 {
		signed = packUint16Slice(signed, uint16(len(requestMAC)))
		signed = append(signed, requestMAC...)
	}
	signed = append(signed, wire...)
	signed = append(signed, vars...)

	sum, err := mac.MAC(algorithm, secret, signed)
	if err != nil {
		return err
	}

	algName, err := ParseName(algorithm)
	if err != nil {
		return err
	}
	rr := RR{
		Hdr: RR_Header{Name: keyName, Rrtype: TypeTSIG, Class: ClassANY, Ttl: 0},
		Rdata: &TSIGData{
			AlgorithmName: algName,
			TimeSigned:    timeSigned,
			Fudge:         fudge,
			MAC:           sum,
			OrigId:        origId,
			Error:         0,
		},
	}
	p.Extra = append(p.Extra, rr)
	return nil
}

func packUint16Slice(b []byte, v uint16) []byte {
	return append(b, byte(v>>8), byte(v))
}

// VerifyTSIG checks the TSIG record at the end of p's additional section
// (per RFC 2845 §4.5/§4.6: it must be the final record, and p's counts
// must be stripped of it before recomputing the MAC). wire must be the
// exact bytes p was decoded from.
func VerifyTSIG(p *Packet, wire []byte, mac MACFunc, secret, requestMAC []byte) error {
	if len(p.Extra) == 0 || p.Extra[len(p.Extra)-1].Hdr.Rrtype != TypeTSIG {
		return ErrNoSig
	}
	rr := p.Extra[len(p.Extra)-1]
	t, ok := rr.Rdata.(*TSIGData)
	if !ok {
		return ErrNoSig
	}

	stripped, err := stripTrailingRecord(wire, rr.wireLen())
	if err != nil {
		return err
	}

	vars, err := tsigVariables(rr.Hdr.Name, t.AlgorithmName.String(), t.TimeSigned, t.Fudge, t.Error, t.OtherData)
	if err != nil {
		return err
	}
	signed := make([]byte, 0, len(requestMAC)+2+len(stripped)+len(vars))
	if len(requestMAC) > 0 {
		signed = packUint16Slice(signed, uint16(len(requestMAC)))
		signed = append(signed, requestMAC...)
	}
	signed = append(signed, stripped...)
	signed = append(signed, vars...)

	want, err := mac.MAC(t.AlgorithmName.String(), secret, signed)
	if err != nil {
		return err
	}
	if len(want) != len(t.MAC) || subtle.ConstantTimeCompare(want, t.MAC) != 1 {
		return ErrBadSig
	}
	return nil
}

// stripTrailingRecord rewrites wire's header ARCOUNT down by one and
// truncates off the trailing additional-section record (TSIG or SIG(0)),
// whose on-the-wire size is recLen octets, to reconstruct the message
// image that was actually signed.
func stripTrailingRecord(wire []byte, recLen int) ([]byte, error) {
	if len(wire) < 12 {
		return nil, ErrTruncatedHeader
	}
	out := append([]byte(nil), wire...)
	arcount, _ := unpackUint16(out, 10)
	if arcount == 0 {
		return nil, ErrNoSig
	}
	packUint16(out, 10, arcount-1)
	if recLen > len(out) {
		return nil, ErrTruncatedRData
	}
	return out[:len(out)-recLen], nil
}
