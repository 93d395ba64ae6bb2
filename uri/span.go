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

// span is a half-open byte range (offset, length) into a URI's owned
// source string. Unlike a Go string slice, a span survives being copied
// around before the source it refers to is known, and it never pins a
// second backing array the way a re-sliced string can.
type span struct {
	offset int
	length int
}

// empty reports whether the span covers zero bytes. Its offset is still
// meaningful: it marks where the component would have started.
func (s span) empty() bool {
	return s.length == 0
}

// end returns the exclusive end offset of the span.
func (s span) end() int {
	return s.offset + s.length
}

// slice materializes the span as a view into src.
func (s span) slice(src string) string {
	return src[s.offset:s.end()]
}

// spanAt returns an empty span anchored at offset, used to initialize
// downstream components before a stage has run (or after a stage is
// skipped because an earlier one failed).
func spanAt(offset int) span {
	return span{offset: offset}
}
