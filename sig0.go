// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// SIG(0) (RFC 2931): a public-key signature over an entire message,
// carried as a SIG record with TypeCovered 0 appended to the additional
// section. Fleshes out the teacher's SIG.Sign/SIG.Verify stub (which
// never got past zeroing the envelope fields) using the Signer
// collaborator from crypto.go.
package dns

// SIGData is the RDATA shared by SIG and SIG(0) records (RFC 2535 §4.1,
// RFC 2931 §3). For SIG(0), TypeCovered, Labels and OrigTTL are always
// zero and the envelope's Name, Class and Ttl are "." / ANY / 0.
type SIGData struct {
	TypeCovered uint16
	Algorithm   uint8
	Labels      uint8
	OrigTTL     uint32
	Expiration  uint32
	Inception   uint32
	KeyTag      uint16
	SignerName  Name
	Signature   []byte
}

func (s *SIGData) Type() uint16 { return TypeSIG }

func (s *SIGData) String() string {
	return s.SignerName.String() + " " + uitoa(uint(s.KeyTag))
}

func (s *SIGData) len() int {
	return 2 + 1 + 1 + 4 + 4 + 4 + 2 + s.SignerName.wireLen() + len(s.Signature)
}

func (s *SIGData) pack(msg []byte, off int, comp map[string]int, compress bool) (int, error) {
	if off+18 > len(msg) {
		return off, ErrShortBuf
	}
	off = packUint16(msg, off, s.TypeCovered)
	msg[off] = s.Algorithm
	off++
	msg[off] = s.Labels
	off++
	off = packUint32(msg, off, s.OrigTTL)
	off = packUint32(msg, off, s.Expiration)
	off = packUint32(msg, off, s.Inception)
	off = packUint16(msg, off, s.KeyTag)
	off, err := EncodeName(msg, off, s.SignerName, comp, false)
	if err != nil {
		return off, err
	}
	if off+len(s.Signature) > len(msg) {
		return off, ErrShortBuf
	}
	copy(msg[off:], s.Signature)
	return off + len(s.Signature), nil
}

func decodeSIG(msg []byte, off, end int) (RData, int, error) {
	if off+18 > end {
		return nil, len(msg), ErrTruncatedRData
	}
	s := &SIGData{}
	s.TypeCovered, off = unpackUint16(msg, off)
	s.Algorithm = msg[off]
	off++
	s.Labels = msg[off]
	off++
	s.OrigTTL, off = unpackUint32(msg, off)
	s.Expiration, off = unpackUint32(msg, off)
	s.Inception, off = unpackUint32(msg, off)
	s.KeyTag, off = unpackUint16(msg, off)
	name, off, err := DecodeName(msg, off)
	if err != nil {
		return nil, off, err
	}
	s.SignerName = name
	if off > end {
		return nil, len(msg), ErrTruncatedRData
	}
	s.Signature = append([]byte(nil), msg[off:end]...)
	return s, end, nil
}

// KEYData is the RDATA of a KEY record (RFC 2535 §3.1), used here only
// to carry the public key SIG(0) verification needs.
type KEYData struct {
	Flags     uint16
	Protocol  uint8
	Algorithm uint8
	PublicKey []byte
}

func (k *KEYData) Type() uint16   { return TypeKEY }
func (k *KEYData) String() string { return uitoa(uint(k.Flags)) }
func (k *KEYData) len() int       { return 2 + 1 + 1 + len(k.PublicKey) }

func (k *KEYData) pack(msg []byte, off int, comp map[string]int, compress bool) (int, error) {
	if off+4+len(k.PublicKey) > len(msg) {
		return off, ErrShortBuf
	}
	off = packUint16(msg, off, k.Flags)
	msg[off] = k.Protocol
	off++
	msg[off] = k.Algorithm
	off++
	copy(msg[off:], k.PublicKey)
	return off + len(k.PublicKey), nil
}

func decodeKEY(msg []byte, off, end int) (RData, int, error) {
	if off+4 > end {
		return nil, len(msg), ErrTruncatedRData
	}
	k := &KEYData{}
	k.Flags, off = unpackUint16(msg, off)
	k.Protocol = msg[off]
	off++
	k.Algorithm = msg[off]
	off++
	k.PublicKey = append([]byte(nil), msg[off:end]...)
	return k, end, nil
}

// sig0Envelope returns the fixed envelope a SIG(0) record always carries:
// owner ".", class ANY, TTL 0 (RFC 2931 §3).
func sig0Envelope() RR_Header {
	return RR_Header{Name: Name{}, Rrtype: TypeSIG, Class: ClassANY, Ttl: 0}
}

// SignSIG0 appends a SIG(0) record to p's additional section. The
// signature covers p's canonical wire image (encoded without the SIG
// record present) followed by the SIG record's own RDATA up to but not
// including the signature field itself, per RFC 2931 §3.1.
func SignSIG0(p *Packet, signer Signer, algorithm uint8, keyTag uint16, signerName Name, privateKey []byte, inception, expiration uint32) error {
	wire, err := p.Encode()
	if err != nil {
		return err
	}

	sig := &SIGData{
		Algorithm:  algorithm,
		KeyTag:     keyTag,
		SignerName: signerName,
		Inception:  inception,
		Expiration: expiration,
	}
	signedData := append(append([]byte(nil), wire...), sigWireNoSignature(sig)...)

	sum, err := signer.Sign(algorithm, privateKey, signedData)
	if err != nil {
		return err
	}
	sig.Signature = sum

	p.Extra = append(p.Extra, RR{Hdr: sig0Envelope(), Rdata: sig})
	return nil
}

// sigWireNoSignature packs s's fixed fields and signer name, matching
// SIGData.pack but stopping short of the signature.
func sigWireNoSignature(s *SIGData) []byte {
	buf := make([]byte, 18+s.SignerName.wireLen())
	off := packUint16(buf, 0, s.TypeCovered)
	buf[off] = s.Algorithm
	off++
	buf[off] = s.Labels
	off++
	off = packUint32(buf, off, s.OrigTTL)
	off = packUint32(buf, off, s.Expiration)
	off = packUint32(buf, off, s.Inception)
	off = packUint16(buf, off, s.KeyTag)
	off, _ = EncodeName(buf, off, s.SignerName, map[string]int{}, false)
	return buf[:off]
}

// VerifySIG0 checks the SIG(0) record at the end of p's additional
// section against key, using wire (the exact bytes p was decoded from)
// to reconstruct the signed image.
func VerifySIG0(p *Packet, wire []byte, signer Signer, key KEYData) error {
	if len(p.Extra) == 0 {
		return ErrNoSig
	}
	last := p.Extra[len(p.Extra)-1]
	sig, ok := last.Rdata.(*SIGData)
	if !ok || sig.TypeCovered != 0 {
		return ErrNoSig
	}

	recLen := last.wireLen()
	stripped, err := stripTrailingRecord(wire, recLen)
	if err != nil {
		return err
	}
	signedData := append(append([]byte(nil), stripped...), sigWireNoSignature(sig)...)
	return signer.Verify(sig.Algorithm, key.PublicKey, signedData, sig.Signature)
}
