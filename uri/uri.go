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

// Package uri parses, validates, and normalizes URI references per
// RFC 3986. It performs a single forward pass over the input, recording
// component boundaries as (offset, length) spans into the caller's
// string rather than copying substrings, then exposes those components
// as read-only views. Resolving relative references against a base,
// percent-decoding into application text, full RFC 3986 IPv6
// validation, Unicode/IDNA host handling, and building URIs from parts
// are intentionally out of scope.
package uri

// URI is the decomposed, validated form of a single URI reference. It is
// immutable once returned by Parse: there is no exported mutator, and
// every accessor reads from the owned src string without copying it.
type URI struct {
	src string

	scheme    span
	authority span
	userinfo  span
	host      span
	port      span
	path      span
	query     span
	fragment  span

	segments   []span
	queryItems []span

	hasAuthority bool
	hasQuery     bool
	hasFragment  bool
	err          ErrorKind
}

// Parse parses s as a URI reference. The returned *URI is never nil; on
// failure, IsValid reports false and Err reports which rule failed
// first. ParseErr additionally returns a wrapped *ParseError for callers
// that prefer idiomatic error handling over querying Err directly.
func Parse(s string) *URI {
	u := &URI{src: s}
	u.err = u.run()
	return u
}

// ParseErr behaves like Parse but also returns a *ParseError (as an
// error) when the input is invalid, or nil when it is valid.
func ParseErr(s string) (*URI, error) {
	u := Parse(s)
	if u.err == ErrNone {
		return u, nil
	}
	return u, newParseError(u.err, u.errOffset(), "")
}

// errOffset reports the byte offset at which parsing stopped, for
// inclusion in ParseError. It falls back to the length of whichever
// span was being built when the failing stage returned.
func (u *URI) errOffset() int {
	switch u.err {
	case ErrURLEmpty:
		return 0
	case ErrInvalidSchemeChar, ErrInvalidScheme, ErrEmptyScheme:
		return u.scheme.offset
	case ErrInvalidUserInfo:
		return u.userinfo.offset
	case ErrInvalidHost:
		return u.host.offset
	case ErrInvalidPort:
		return u.port.offset
	case ErrInvalidPath:
		return u.path.offset
	case ErrInvalidQuery:
		return u.query.offset
	case ErrInvalidFragment:
		return u.fragment.offset
	default:
		return 0
	}
}

// run is the driver state machine described by the package's design
// notes: Scheme -> HierPart -> Authority|Path -> Path -> QueryOrFragment
// -> Query -> Fragment -> terminal. Any stage error is sticky; the
// remaining states are skipped and their spans stay at whatever
// empty-at-offset value the previous state initialized them to.
func (u *URI) run() ErrorKind {
	if len(u.src) == 0 {
		return ErrURLEmpty
	}
	return u.parseSchemeState()
}

func (u *URI) parseSchemeState() ErrorKind {
	scheme, colon, errKind := parseScheme(u.src, 0)
	u.scheme = scheme
	if errKind != ErrNone {
		return errKind
	}
	return u.parseHierPartState(colon + 1)
}

// parseHierPartState initializes every downstream span to an empty span
// anchored at idx, then decides whether an authority follows.
func (u *URI) parseHierPartState(idx int) ErrorKind {
	u.authority = spanAt(idx)
	u.userinfo = spanAt(idx)
	u.host = spanAt(idx)
	u.port = spanAt(idx)
	u.path = spanAt(idx)
	u.query = spanAt(idx)
	u.fragment = spanAt(idx)

	if idx+1 < len(u.src) && u.src[idx] == '/' && u.src[idx+1] == '/' {
		u.hasAuthority = true
		return u.parseAuthorityState(idx + 2)
	}
	return u.parsePathState(idx, false)
}

func (u *URI) parseAuthorityState(idx int) ErrorKind {
	authority, userinfo, host, port, next, errKind := parseAuthority(u.src, idx)
	u.authority = authority
	u.userinfo = userinfo
	u.host = host
	u.port = port
	if errKind != ErrNone {
		return errKind
	}
	return u.parsePathState(next, true)
}

func (u *URI) parsePathState(idx int, authorityPresent bool) ErrorKind {
	path, segments, next, errKind := parsePath(u.src, idx, authorityPresent)
	u.path = path
	u.segments = segments
	if errKind != ErrNone {
		return errKind
	}
	return u.parseQueryOrFragmentState(next)
}

func (u *URI) parseQueryOrFragmentState(idx int) ErrorKind {
	if idx >= len(u.src) {
		return ErrNone
	}
	switch u.src[idx] {
	case '?':
		u.hasQuery = true
		return u.parseQueryState(idx + 1)
	case '#':
		u.hasFragment = true
		return u.parseFragmentState(idx + 1)
	default:
		return ErrNone
	}
}

func (u *URI) parseQueryState(idx int) ErrorKind {
	query, items, next, errKind := parseQuery(u.src, idx)
	u.query = query
	u.queryItems = items
	if errKind != ErrNone {
		return errKind
	}
	if next < len(u.src) && u.src[next] == '#' {
		u.hasFragment = true
		return u.parseFragmentState(next + 1)
	}
	return ErrNone
}

func (u *URI) parseFragmentState(idx int) ErrorKind {
	fragment, _, errKind := parseFragment(u.src, idx)
	u.fragment = fragment
	return errKind
}

// Source returns the original input string, unmodified, regardless of
// whether parsing succeeded.
func (u *URI) Source() string {
	return u.src
}

// IsValid reports whether the URI parsed without error.
func (u *URI) IsValid() bool {
	return u.err == ErrNone
}

// Err returns the specific rule that failed, or ErrNone if the URI is
// valid.
func (u *URI) Err() ErrorKind {
	return u.err
}

// Scheme returns the scheme component, or "" if parsing failed before
// a scheme was recorded.
func (u *URI) Scheme() string {
	return u.scheme.slice(u.src)
}

// Authority returns the authority component (without its "//" prefix),
// or "" if none is present.
func (u *URI) Authority() string {
	return u.authority.slice(u.src)
}

// UserInfo returns the userinfo sub-component of the authority, or ""
// if none is present.
func (u *URI) UserInfo() string {
	return u.userinfo.slice(u.src)
}

// Host returns the host sub-component of the authority. For IP-literal
// hosts the surrounding "[" and "]" are excluded.
func (u *URI) Host() string {
	return u.host.slice(u.src)
}

// Port returns the port sub-component of the authority, or "" if none
// is present.
func (u *URI) Port() string {
	return u.port.slice(u.src)
}

// Path returns the path component. A path is always present, though it
// may be "".
func (u *URI) Path() string {
	return u.path.slice(u.src)
}

// Query returns the query component (without its leading "?"), or ""
// if none is present.
func (u *URI) Query() string {
	return u.query.slice(u.src)
}

// Fragment returns the fragment component (without its leading "#"),
// or "" if none is present.
func (u *URI) Fragment() string {
	return u.fragment.slice(u.src)
}

// Segments returns the path's "/"-delimited segments in order,
// including empty segments produced by consecutive slashes. It returns
// nil iff Path() is "".
func (u *URI) Segments() []string {
	if len(u.segments) == 0 {
		return nil
	}
	out := make([]string, len(u.segments))
	for i, s := range u.segments {
		out[i] = s.slice(u.src)
	}
	return out
}

// QueryItems returns the query's "&"-delimited items in order,
// including empty items. It returns nil iff Query() is "".
func (u *URI) QueryItems() []string {
	if len(u.queryItems) == 0 {
		return nil
	}
	out := make([]string, len(u.queryItems))
	for i, s := range u.queryItems {
		out[i] = s.slice(u.src)
	}
	return out
}

// IsAbsolutePath reports whether the path is non-empty and begins with
// "/".
func (u *URI) IsAbsolutePath() bool {
	p := u.Path()
	return p != "" && p[0] == '/'
}

// PathPrefix returns the path truncated just after the n-th segment
// (0-indexed, inclusive); n is clamped to the last valid segment index.
// It returns "" if there are no segments. The returned string always
// starts at the beginning of the path.
func (u *URI) PathPrefix(n int) string {
	if len(u.segments) == 0 {
		return ""
	}
	if n > len(u.segments)-1 {
		n = len(u.segments) - 1
	}
	if n < 0 {
		n = 0
	}
	end := u.segments[n].end()
	return u.src[u.path.offset:end]
}
