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

// parseFragment consumes the fragment component starting one byte
// after the "#" that introduces it, running to the end of input.
func parseFragment(src string, start int) (fragment span, next int, errKind ErrorKind) {
	fragment = span{offset: start, length: len(src) - start}
	if !isValidFragment(fragment.slice(src)) {
		return fragment, len(src), ErrInvalidFragment
	}
	return fragment, len(src), ErrNone
}
