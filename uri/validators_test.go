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

import "testing"

func TestIsDecOctet(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"zero", "0", true},
		{"single digit", "7", true},
		{"max", "255", true},
		{"over max", "256", false},
		{"three nines", "999", false},
		{"leading zero two digits", "02", false},
		{"leading zero three digits", "012", false},
		{"all zero", "000", false},
		{"empty", "", false},
		{"too long", "1234", false},
		{"non digit", "2a", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isDecOctet(tt.input); got != tt.want {
				t.Errorf("isDecOctet(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsIPv4(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid", "192.168.0.1", true},
		{"all zero", "0.0.0.0", true},
		{"broadcast", "255.255.255.255", true},
		{"too few parts", "1.2.3", false},
		{"too many parts", "1.2.3.4.5", false},
		{"octet leading zero", "1.02.3.4", false},
		{"octet out of range", "312.412.512.110", false},
		{"empty part", "1..3.4", false},
		{"non numeric", "a.b.c.d", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isIPv4(tt.input); got != tt.want {
				t.Errorf("isIPv4(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsIPv6Loose(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple", "2001:db8::7", true},
		{"all zeros", "::", true},
		{"ipv4 tail after colon", "::ffff:192.0.2.1", true},
		{"dot before any colon", "192.0.2.1", false},
		{"empty", "", false},
		{"invalid char", "2001:db8::g", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isIPv6Loose(tt.input); got != tt.want {
				t.Errorf("isIPv6Loose(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsIPvFuture(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"minimal", "v1.a", true},
		{"multi hex version", "vAB.some-addr:1", true},
		{"address allows sub-delims and colons", "v123ab.345:32:!(999a99", true},
		{"no dot", "v1a", false},
		{"empty version", "v.a", false},
		{"empty address", "v1.", false},
		{"missing v prefix", "1.a", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isIPvFuture(tt.input); got != tt.want {
				t.Errorf("isIPvFuture(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsIPLiteral(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"ipv6", "[2001:db8::7]", true},
		{"ipvfuture", "[v1.a]", true},
		{"missing close bracket", "[2001:db8::7", false},
		{"empty interior", "[]", false},
		{"no brackets", "2001:db8::7", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isIPLiteral(tt.input); got != tt.want {
				t.Errorf("isIPLiteral(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsRegName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", true},
		{"plain host", "example.com", true},
		{"with pct encoding", "exa%6dple.com", true},
		{"bad pct encoding", "exa%gxple.com", false},
		{"invalid char", "exa mple.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRegName(tt.input); got != tt.want {
				t.Errorf("isRegName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidHost(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"reg-name", "address", true},
		{"dotted digits falls back to reg-name", "312.412.512.110", true},
		{"ip literal", "[2001:db8::7]", true},
		{"unterminated ip literal", "[2001:db8::7", false},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isValidHost(tt.input); got != tt.want {
				t.Errorf("isValidHost(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidUserinfo(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", true},
		{"user and pass", "user:password", true},
		{"pct encoded", "us%65r", true},
		{"invalid char", "user name", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isValidUserinfo(tt.input); got != tt.want {
				t.Errorf("isValidUserinfo(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidPort(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", true},
		{"digits", "1234", true},
		{"oversized but unbounded", "1234567890", true},
		{"non digit", "12a4", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isValidPort(tt.input); got != tt.want {
				t.Errorf("isValidPort(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidPathSegment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", true},
		{"plain", "path", true},
		{"with colon and at", "John.Doe@example.com", true},
		{"pct encoded", "a%20b", true},
		{"invalid char", "a b", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isValidPathSegment(tt.input); got != tt.want {
				t.Errorf("isValidPathSegment(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidQueryAndFragment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", true},
		{"with slash and question", "objectClass?one", true},
		{"ampersand-joined", "with&a&query=param", true},
		{"invalid char", "a b", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isValidQuery(tt.input); got != tt.want {
				t.Errorf("isValidQuery(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got := isValidFragment(tt.input); got != tt.want {
				t.Errorf("isValidFragment(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
