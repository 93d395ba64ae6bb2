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

package main

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// captureStdout redirects os.Stdout for the duration of fn and returns
// everything written to it. The commands under test print with fmt's
// package-level functions, which always target os.Stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()
	require.NoError(t, w.Close())

	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)
	return buf.String()
}

func TestParseCommandPrintsComponents(t *testing.T) {
	printed := captureStdout(t, func() {
		require.NoError(t, runParse("https://example.com/a/b?q=1#f"))
	})
	require.Contains(t, printed, "scheme:    https")
	require.Contains(t, printed, "host:      example.com")
	require.Contains(t, printed, "fragment:  f")
}

func TestParseCommandRejectsInvalidURI(t *testing.T) {
	require.Error(t, runParse("1:"))
}

func TestNormalizeCommandLowerCasesSchemeAndAuthority(t *testing.T) {
	printed := captureStdout(t, func() {
		require.NoError(t, runNormalize("HTTP://EXAMPLE.com/path"))
	})
	require.Equal(t, "http://example.com/path\n", printed)
}

func TestBenchCommandRejectsNonPositiveCount(t *testing.T) {
	require.Error(t, runBench("https://example.com", 0))
}

func TestBenchCommandRunsAgainstValidURI(t *testing.T) {
	printed := captureStdout(t, func() {
		require.NoError(t, runBench("https://example.com", 10))
	})
	require.True(t, strings.HasPrefix(printed, "10 parses in"))
}

func TestRootCommandHasExpectedSubcommands(t *testing.T) {
	root := newRootCommand()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	require.ElementsMatch(t, []string{"parse", "normalize", "bench", "version"}, names)
}
