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

import (
	"errors"
	"fmt"
)

// ErrorKind identifies which RFC 3986 rule caused a parse to fail. It is a
// closed set; ErrNone is the only value for which IsValid reports true.
type ErrorKind int

const (
	ErrNone ErrorKind = iota
	ErrURLEmpty
	ErrInvalidSchemeChar
	ErrInvalidScheme
	ErrEmptyScheme
	ErrInvalidUserInfo
	ErrInvalidHost
	ErrInvalidPort
	ErrInvalidPath
	ErrInvalidQuery
	ErrInvalidFragment
)

// String implements fmt.Stringer so ErrorKind values read well in logs
// and test failure output.
func (k ErrorKind) String() string {
	switch k {
	case ErrNone:
		return "none"
	case ErrURLEmpty:
		return "empty url"
	case ErrInvalidSchemeChar:
		return "invalid scheme char"
	case ErrInvalidScheme:
		return "invalid scheme"
	case ErrEmptyScheme:
		return "empty scheme"
	case ErrInvalidUserInfo:
		return "invalid userinfo"
	case ErrInvalidHost:
		return "invalid host"
	case ErrInvalidPort:
		return "invalid port"
	case ErrInvalidPath:
		return "invalid path"
	case ErrInvalidQuery:
		return "invalid query"
	case ErrInvalidFragment:
		return "invalid fragment"
	default:
		return fmt.Sprintf("unknown error kind (%d)", int(k))
	}
}

// sentinel errors, one per failure category (ErrInvalidSchemeChar and
// ErrInvalidScheme share ErrScheme; every other ErrorKind but ErrNone has
// its own), so callers can errors.Is against a specific failure without
// switching on ErrorKind.
var (
	ErrEmpty    = errors.New("uri: empty source")
	ErrScheme   = errors.New("uri: invalid scheme")
	ErrNoScheme = errors.New("uri: empty scheme")
	ErrUserInfo = errors.New("uri: invalid userinfo")
	ErrHost     = errors.New("uri: invalid host")
	ErrPort     = errors.New("uri: invalid port")
	ErrPath     = errors.New("uri: invalid path")
	ErrQuery    = errors.New("uri: invalid query")
	ErrFragment = errors.New("uri: invalid fragment")
)

// sentinelFor maps an ErrorKind to the sentinel error ParseError wraps.
func sentinelFor(kind ErrorKind) error {
	switch kind {
	case ErrURLEmpty:
		return ErrEmpty
	case ErrInvalidSchemeChar, ErrInvalidScheme:
		return ErrScheme
	case ErrEmptyScheme:
		return ErrNoScheme
	case ErrInvalidUserInfo:
		return ErrUserInfo
	case ErrInvalidHost:
		return ErrHost
	case ErrInvalidPort:
		return ErrPort
	case ErrInvalidPath:
		return ErrPath
	case ErrInvalidQuery:
		return ErrQuery
	case ErrInvalidFragment:
		return ErrFragment
	default:
		return nil
	}
}

// ParseError is the error type returned alongside an invalid *URI. It
// carries the kind and the start offset of the failing component, and
// wraps a sentinel error
// so callers can use errors.Is without caring about the message text.
type ParseError struct {
	Kind    ErrorKind
	Offset  int
	Message string
	err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("uri: %s at offset %d", e.Kind, e.Offset)
	}
	return fmt.Sprintf("uri: %s at offset %d: %s", e.Kind, e.Offset, e.Message)
}

// Unwrap provides compatibility with errors.Is / errors.As.
func (e *ParseError) Unwrap() error {
	return e.err
}

// newParseError builds a *ParseError for the given kind, offset, and
// human-readable detail. It returns nil for ErrNone.
func newParseError(kind ErrorKind, offset int, message string) *ParseError {
	if kind == ErrNone {
		return nil
	}
	return &ParseError{Kind: kind, Offset: offset, Message: message, err: sentinelFor(kind)}
}
