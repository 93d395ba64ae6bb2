/*
Copyright 2025 hcs-url Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package uri

import "strings"

// upperHexDigit upper-cases a single hex digit byte, leaving any other
// byte unchanged.
func upperHexDigit(b byte) byte {
	if b >= 'a' && b <= 'f' {
		return b - 'a' + 'A'
	}
	return b
}

// decodeHexPair decodes two hex digits into the byte they represent.
func decodeHexPair(hi, lo byte) byte {
	val := func(b byte) byte {
		switch {
		case b >= '0' && b <= '9':
			return b - '0'
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10
		default: // 'A'-'F'
			return b - 'A' + 10
		}
	}
	return val(hi)<<4 | val(lo)
}

// normalizeAuthority lower-cases every ASCII letter outside of
// pct-encoded triplets, upper-cases the hex digits of every triplet, and
// replaces a triplet with its raw byte when that byte is unreserved —
// the authority half of RFC 3986 §6.2.2.
func normalizeAuthority(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if isPctEncodedAt(s, i) {
			decoded := decodeHexPair(s[i+1], s[i+2])
			if isUnreserved(decoded) {
				b.WriteByte(decoded)
			} else {
				b.WriteByte('%')
				b.WriteByte(upperHexDigit(s[i+1]))
				b.WriteByte(upperHexDigit(s[i+2]))
			}
			i += 2
			continue
		}
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c = c - 'A' + 'a'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Normalize produces a new *URI whose serialized form has its scheme
// lower-cased and its authority lower-cased with percent-encoded
// triplets upper-cased (and decoded where the decoded byte is
// unreserved). The path, query, and fragment are carried over
// unchanged; it stops short of dot-segment removal, IP-literal hex
// case folding, and pct-encoding normalization of path/query/fragment.
//
// Normalize re-parses the rewritten string so every accessor on the
// result points into its own freshly owned storage; it never mutates u.
// Calling Normalize on an invalid *URI returns u unchanged.
func (u *URI) Normalize() *URI {
	if !u.IsValid() {
		return u
	}

	var b strings.Builder
	b.Grow(len(u.src))
	b.WriteString(strings.ToLower(u.Scheme()))
	b.WriteByte(':')
	if u.hasAuthority {
		b.WriteString("//")
		b.WriteString(normalizeAuthority(u.Authority()))
	}
	b.WriteString(u.Path())
	if u.hasQuery {
		b.WriteByte('?')
		b.WriteString(u.Query())
	}
	if u.hasFragment {
		b.WriteByte('#')
		b.WriteString(u.Fragment())
	}

	return Parse(b.String())
}
