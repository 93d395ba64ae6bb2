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

// parseScheme consumes the scheme component starting at start. On
// success it returns the scheme span (excluding the trailing colon)
// and the index of that colon as the next read position.
func parseScheme(src string, start int) (span, int, ErrorKind) {
	if start == len(src) {
		return span{}, start, ErrEmptyScheme
	}
	if !isAlpha(src[start]) {
		return span{}, start, ErrInvalidSchemeChar
	}
	i := start + 1
	for i < len(src) {
		if src[i] == ':' {
			return span{offset: start, length: i - start}, i, ErrNone
		}
		if !isSchemeChar(src[i]) {
			return span{}, i, ErrInvalidSchemeChar
		}
		i++
	}
	return span{}, i, ErrInvalidScheme
}
