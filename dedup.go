// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Uniqueness-on-push, adapted from the teacher's sanitize.go Dedup,
// which hashed a packed RR with its TTL zeroed to detect duplicates
// after the fact. This package instead builds the same key up front and
// applies it as RRs are pushed (spec §4.5 UniquePush), so the section
// never holds a duplicate in the first place.
package dns

import "strings"

// canonicalRRKey returns the key used to decide whether two RRs are the
// "same" record for UniquePush purposes: owner name case-folded, type,
// class and RDATA text — TTL is deliberately excluded, matching the
// teacher's zero-before-hash trick (spec §4.5).
func canonicalRRKey(rr RR) string {
	var rdata string
	if rr.Rdata != nil {
		rdata = rr.Rdata.String()
	}
	return strings.ToLower(rr.Hdr.Name.String()) + "\x00" +
		uitoa(uint(rr.Hdr.Rrtype)) + "\x00" +
		uitoa(uint(rr.Hdr.Class)) + "\x00" + rdata
}

// dedupPush returns existing with each of rrs applied: a new entry whose
// key matches one already present replaces it in place (keeping its
// original position); a genuinely new key is appended. Last write wins.
func dedupPush(existing, rrs []RR) []RR {
	index := make(map[string]int, len(existing))
	for i, rr := range existing {
		index[canonicalRRKey(rr)] = i
	}
	out := existing
	for _, rr := range rrs {
		key := canonicalRRKey(rr)
		if i, ok := index[key]; ok {
			out[i] = rr
			continue
		}
		index[key] = len(out)
		out = append(out, rr)
	}
	return out
}
