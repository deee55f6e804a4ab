// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Packet orchestration: the in-memory message, its four sections, and
// the encode/decode pipeline that drives the Header/Question/RR codecs.
// Adapted from the teacher's Msg.Pack/Msg.Unpack/Msg.String/Msg.Len in
// msg.go, generalized to a tagged-RDATA RR (see rr.go) and a fresh
// compression table per encode (spec §4.5, §9).
package dns

import (
	"fmt"
	"net"
	"strings"
)

// Packet is a single-owner, in-memory DNS message. It is either built up
// via New/Push/UniquePush/Pop for an outbound query or update, or
// produced by Decode from a received buffer. No internal locking:
// concurrent mutation of one Packet is not supported (spec §5).
type Packet struct {
	Header
	Compress bool

	Question []Question
	Answer   []RR
	Ns       []RR
	Extra    []RR

	// AnswerFrom/AnswerSize record where a decoded packet arrived from
	// and how large the wire buffer was; both are zero/nil for a packet
	// that was never decoded.
	AnswerFrom net.Addr
	AnswerSize int

	// edns caches the packet's intended single OPT record across
	// mutation, spliced to the head of Extra at Encode time (spec §4.5
	// step 2). nil means "no EDNS".
	edns *RR
}

// New returns an empty outbound packet with a fresh 16-bit id and
// RecursionDesired set (spec §4.5).
func New() *Packet {
	p := &Packet{Compress: true}
	p.Id = NextID()
	p.RecursionDesired = true
	return p
}

// NewQuery returns an outbound packet with a single question.
func NewQuery(qname Name, qtype, qclass uint16) *Packet {
	p := New()
	p.Question = []Question{{Name: qname, Qtype: qtype, Qclass: qclass}}
	return p
}

// Decode parses buf into a new Packet. If parsing fails partway through a
// section, the packet returned retains whatever was already parsed
// (including the section counts taken from the header, which may then
// legitimately disagree with the decoded slice lengths) alongside the
// error (spec §4.5).
func Decode(buf []byte) (*Packet, error) {
	p := &Packet{Compress: true}

	h, off, err := DecodeHeader(buf, 0)
	if err != nil {
		return p, err
	}
	p.Header = h
	p.AnswerSize = len(buf)

	for i := 0; i < int(h.Qdcount); i++ {
		q, next, err := DecodeQuestion(buf, off)
		if err != nil {
			return p, err
		}
		p.Question = append(p.Question, q)
		off = next
	}
	if off, err = decodeRRSection(buf, off, int(h.Ancount), &p.Answer); err != nil {
		return p, err
	}
	if off, err = decodeRRSection(buf, off, int(h.Nscount), &p.Ns); err != nil {
		return p, err
	}
	if _, err = decodeRRSection(buf, off, int(h.Arcount), &p.Extra); err != nil {
		return p, err
	}

	p.cacheEDNS()
	return p, nil
}

func decodeRRSection(buf []byte, off int, count int, out *[]RR) (int, error) {
	for i := 0; i < count; i++ {
		rr, next, err := DecodeRR(buf, off)
		if err != nil {
			return off, err
		}
		*out = append(*out, rr)
		off = next
	}
	return off, nil
}

// section keys accepted by Push/UniquePush/Pop (spec §4.5, §6): literal
// names and update aliases both resolve via their first three letters.
type sectionKey int

const (
	sectionAnswer sectionKey = iota
	sectionAuthority
	sectionAdditional
)

func resolveSection(key string) (sectionKey, error) {
	k := strings.ToLower(key)
	if len(k) > 3 {
		k = k[:3]
	}
	switch k {
	case "ans", "pre":
		return sectionAnswer, nil
	case "aut", "upd":
		return sectionAuthority, nil
	case "add":
		return sectionAdditional, nil
	default:
		return 0, &Error{KindOther, "unknown section key " + key}
	}
}

func (p *Packet) sectionSlice(key sectionKey) *[]RR {
	switch key {
	case sectionAnswer:
		return &p.Answer
	case sectionAuthority:
		return &p.Ns
	default:
		return &p.Extra
	}
}

// zoneClass returns the UPDATE message's zone class: the class of its
// (sole) question/zone entry, defaulting to IN if absent.
func (p *Packet) zoneClass() uint16 {
	if len(p.Question) > 0 {
		return p.Question[0].Qclass
	}
	return ClassINET
}

// coerceUpdateClass implements spec §3's UPDATE invariant: pushed RRs
// inherit the zone class unless their class is ANY or NONE.
func coerceUpdateClass(rr *RR, zoneClass uint16) {
	if rr.Hdr.Class == ClassANY || rr.Hdr.Class == ClassNONE {
		return
	}
	rr.Hdr.Class = zoneClass
}

func (p *Packet) applyUpdateCoercion(rrs []RR) {
	if p.Opcode != OpcodeUpdate {
		return
	}
	zc := p.zoneClass()
	for i := range rrs {
		coerceUpdateClass(&rrs[i], zc)
	}
}

// Push appends rrs to the named section and returns its new length.
func (p *Packet) Push(section string, rrs ...RR) (int, error) {
	key, err := resolveSection(section)
	if err != nil {
		return 0, err
	}
	p.applyUpdateCoercion(rrs)
	target := p.sectionSlice(key)
	*target = append(*target, rrs...)
	return len(*target), nil
}

// UniquePush appends rrs to the named section, replacing any existing
// member whose canonical key (owner lowercased, type, class, RDATA, TTL
// normalized to 0) already matches — last write wins (spec §4.5,
// grounded on the teacher's sanitize.go Dedup).
func (p *Packet) UniquePush(section string, rrs ...RR) (int, error) {
	key, err := resolveSection(section)
	if err != nil {
		return 0, err
	}
	p.applyUpdateCoercion(rrs)
	target := p.sectionSlice(key)
	*target = dedupPush(*target, rrs)
	return len(*target), nil
}

// Pop removes and returns the last RR of the named section.
func (p *Packet) Pop(section string) (RR, bool) {
	key, err := resolveSection(section)
	if err != nil {
		return RR{}, false
	}
	target := p.sectionSlice(key)
	if len(*target) == 0 {
		return RR{}, false
	}
	last := (*target)[len(*target)-1]
	*target = (*target)[:len(*target)-1]
	return last, true
}

func (p *Packet) cacheEDNS() {
	p.edns = nil
	for i := range p.Extra {
		if p.Extra[i].IsOPT() {
			rr := p.Extra[i]
			p.edns = &rr
			return
		}
	}
}

// SetEDNS0 installs (or replaces) the packet's cached OPT view, spliced
// to the head of the additional section at Encode time. The extended
// (high 8 bits of) rcode lives in the OPT record itself (RFC 6891
// §6.1.3); SetRcode keeps it in sync with p.Rcode whenever the rcode is
// changed after EDNS is enabled.
func (p *Packet) SetEDNS0(udpSize uint16, do bool, opts ...EDNSOption) {
	rr := NewOPT(udpSize, uint8(p.Rcode>>4), 0, do, opts...)
	p.edns = &rr
}

// SetRcode sets p.Rcode and, if EDNS is enabled, updates the extended
// rcode bits cached in the OPT record to match.
func (p *Packet) SetRcode(rcode int) {
	p.Rcode = rcode & 0xF
	if p.edns != nil {
		p.edns.Hdr.Ttl = (p.edns.Hdr.Ttl &^ (0xFF << 24)) | uint32(rcode>>4)<<24
	}
}

// EDNS0 returns the packet's cached OPT record, if any.
func (p *Packet) EDNS0() (RR, bool) {
	if p.edns == nil {
		return RR{}, false
	}
	return *p.edns, true
}

// mergeEDNS implements spec §4.5 step 2: pull every OPT record out of
// Extra, then reinsert at most one (preferring the cached edns view) at
// its head.
func (p *Packet) mergeEDNS() {
	var rest []RR
	var found *RR
	for i := range p.Extra {
		if p.Extra[i].IsOPT() {
			if found == nil {
				rr := p.Extra[i]
				found = &rr
			}
			continue
		}
		rest = append(rest, p.Extra[i])
	}
	if p.edns != nil {
		found = p.edns
	}
	if found == nil {
		p.Extra = rest
		return
	}
	merged := make([]RR, 0, len(rest)+1)
	merged = append(merged, *found)
	merged = append(merged, rest...)
	p.Extra = merged
}

func (p *Packet) estimateSize() int {
	n := 12
	for _, q := range p.Question {
		n += q.wireLen()
	}
	for _, sec := range [][]RR{p.Answer, p.Ns, p.Extra} {
		for _, rr := range sec {
			n += rr.wireLen()
		}
	}
	return n
}

// Encode converts p to wire format (spec §4.5 Encode pipeline): a fresh
// compression table is created, the OPT record is merged, the header's
// counts are derived from the current section lengths, then header,
// questions and all three RR sections are emitted in order.
func (p *Packet) Encode() ([]byte, error) {
	p.mergeEDNS()

	h := p.Header
	h.Qdcount = uint16(len(p.Question))
	h.Ancount = uint16(len(p.Answer))
	h.Nscount = uint16(len(p.Ns))
	h.Arcount = uint16(len(p.Extra))

	msg := make([]byte, p.estimateSize())
	comp := make(map[string]int)

	off, err := EncodeHeader(msg, 0, h)
	if err != nil {
		return nil, err
	}
	for _, q := range p.Question {
		if off, err = EncodeQuestion(msg, off, q, comp, p.Compress); err != nil {
			return nil, err
		}
	}
	for _, sec := range [][]RR{p.Answer, p.Ns, p.Extra} {
		for _, rr := range sec {
			if off, err = EncodeRR(msg, off, rr, comp, p.Compress); err != nil {
				return nil, err
			}
		}
	}
	return msg[:off], nil
}

// Reply produces a response skeleton to a query packet p (spec §4.5):
// qr=1, same id/opcode/rd/cd, the question list copied verbatim, rcode
// defaulted to FORMERR (callers override), and an OPT attached if p
// advertised EDNS.
func (p *Packet) Reply(maxUDP uint16) (*Packet, error) {
	if p.Response {
		return nil, ErrErroneousQr
	}
	r := New()
	r.Id = p.Id
	r.Opcode = p.Opcode
	r.Response = true
	r.RecursionDesired = p.RecursionDesired
	r.CheckingDisabled = p.CheckingDisabled
	r.Rcode = RcodeFormatError
	r.Question = append([]Question(nil), p.Question...)
	if p.edns != nil {
		r.SetEDNS0(maxUDP, false)
	}
	return r, nil
}

// String renders p as a dig-like diagnostic dump (spec §6). UPDATE
// packets (RFC 2136) get the alternate ZONE/PREREQUISITE/UPDATE section
// titles.
func (p *Packet) String() string {
	qTitle, anTitle, auTitle := "QUESTION", "ANSWER", "AUTHORITY"
	if p.Opcode == OpcodeUpdate {
		qTitle, anTitle, auTitle = "ZONE", "PREREQUISITE", "UPDATE"
	}

	var b strings.Builder
	b.WriteString(";; HEADER SECTION\n")
	b.WriteString(p.Header.String())
	b.WriteString("\n")

	fmt.Fprintf(&b, "\n;; %s SECTION: %d\n", qTitle, len(p.Question))
	for _, q := range p.Question {
		b.WriteString(q.String())
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n;; %s SECTION: %d\n", anTitle, len(p.Answer))
	for _, rr := range p.Answer {
		b.WriteString(rr.String())
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n;; %s SECTION: %d\n", auTitle, len(p.Ns))
	for _, rr := range p.Ns {
		b.WriteString(rr.String())
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n;; ADDITIONAL SECTION: %d\n", len(p.Extra))
	for _, rr := range p.Extra {
		b.WriteString(rr.String())
		b.WriteString("\n")
	}

	return b.String()
}
