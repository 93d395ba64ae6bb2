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

// parseQuery consumes the query component starting one byte after the
// "?" that introduces it, stopping at "#" or end of input. It validates
// the whole component via isValidQuery and splits it on "&" into
// queryItems, preserving order and empty items.
func parseQuery(src string, start int) (query span, items []span, next int, errKind ErrorKind) {
	end := len(src)
	for i := start; i < len(src); i++ {
		if src[i] == '#' {
			end = i
			break
		}
	}
	query = span{offset: start, length: end - start}
	if !isValidQuery(query.slice(src)) {
		return query, nil, end, ErrInvalidQuery
	}

	if query.empty() {
		return query, nil, end, ErrNone
	}

	itemStart := start
	for i := start; i < end; i++ {
		if src[i] == '&' {
			items = append(items, span{offset: itemStart, length: i - itemStart})
			itemStart = i + 1
		}
	}
	items = append(items, span{offset: itemStart, length: end - itemStart})

	return query, items, end, ErrNone
}
