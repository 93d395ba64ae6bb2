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

// authorityParts is the result of splitting an authority string into its
// userinfo, host, and port sub-spans, all relative to the authority's own
// start offset in the original source.
type authorityParts struct {
	userinfo span
	host     span
	port     span
}

// splitAuthority implements the split rules of §4.6: a trailing ":"-port
// is located by skipping past any "]" that closes an IP-literal, and
// userinfo is separated from host by the last "@" that precedes the port.
func splitAuthority(authority string, start int) authorityParts {
	searchFrom := 0
	if bracket := strings.IndexByte(authority, ']'); bracket >= 0 {
		searchFrom = bracket
	}

	portColon := -1
	if idx := strings.LastIndexByte(authority[searchFrom:], ':'); idx >= 0 {
		portColon = searchFrom + idx
	}

	hostEnd := len(authority)
	var port span
	if portColon >= 0 {
		hostEnd = portColon
		port = span{offset: start + portColon + 1, length: len(authority) - portColon - 1}
	} else {
		port = spanAt(start + len(authority))
	}

	preHost := authority[:hostEnd]
	at := strings.LastIndexByte(preHost, '@')

	var userinfo, host span
	if at >= 0 {
		userinfo = span{offset: start, length: at}
		host = span{offset: start + at + 1, length: hostEnd - at - 1}
	} else {
		userinfo = spanAt(start)
		host = span{offset: start, length: hostEnd}
	}

	return authorityParts{userinfo: userinfo, host: host, port: port}
}

// parseAuthority consumes the authority component. It must be called
// only when the bytes immediately preceding start were "//"; the caller
// is responsible for having advanced past them. It returns the
// authority span (not including the "//" prefix), the userinfo/host/port
// sub-spans, and the index of the first byte of the path.
func parseAuthority(src string, start int) (authority, userinfo, host, port span, next int, errKind ErrorKind) {
	end := len(src)
	if idx := strings.IndexByte(src[start:], '/'); idx >= 0 {
		end = start + idx
	}
	authority = span{offset: start, length: end - start}

	parts := splitAuthority(src[start:end], start)

	if !isValidUserinfo(parts.userinfo.slice(src)) {
		return authority, parts.userinfo, parts.host, parts.port, end, ErrInvalidUserInfo
	}
	if !isValidHost(parts.host.slice(src)) {
		return authority, parts.userinfo, parts.host, parts.port, end, ErrInvalidHost
	}
	if !isValidPort(parts.port.slice(src)) {
		return authority, parts.userinfo, parts.host, parts.port, end, ErrInvalidPort
	}

	host = parts.host
	if hostStr := host.slice(src); isIPLiteral(hostStr) {
		// Strip the surrounding brackets from the recorded span so that
		// Host() never returns "[" or "]" (P2).
		host = span{offset: host.offset + 1, length: host.length - 2}
	}

	return authority, parts.userinfo, host, parts.port, end, ErrNone
}
