// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dns

// Question is a single entry of the question/zone section.
type Question struct {
	Name   Name
	Qtype  uint16
	Qclass uint16
}

func (q Question) String() string {
	return q.Name.String() + "\t" + ClassString(q.Qclass) + "\t" + TypeString(q.Qtype)
}

func (q Question) wireLen() int { return q.Name.wireLen() + 4 }

// EncodeQuestion writes q at msg[off:], compressing its name like any
// other (spec §4.3: "Same name codec").
func EncodeQuestion(msg []byte, off int, q Question, comp map[string]int, compress bool) (int, error) {
	off, err := EncodeName(msg, off, q.Name, comp, compress)
	if err != nil {
		return off, err
	}
	if off+4 > len(msg) {
		return off, ErrShortBuf
	}
	off = packUint16(msg, off, q.Qtype)
	off = packUint16(msg, off, q.Qclass)
	return off, nil
}

// DecodeQuestion reads a question entry from msg[off:].
func DecodeQuestion(msg []byte, off int) (Question, int, error) {
	name, off, err := DecodeName(msg, off)
	if err != nil {
		return Question{}, off, err
	}
	if off+4 > len(msg) {
		return Question{}, len(msg), ErrTruncatedSection
	}
	var q Question
	q.Name = name
	q.Qtype, off = unpackUint16(msg, off)
	q.Qclass, off = unpackUint16(msg, off)
	return q, off, nil
}
