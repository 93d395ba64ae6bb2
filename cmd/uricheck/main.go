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

// Command uricheck is a small diagnostic front-end over the uri package:
// it parses a URI reference from the command line, prints its
// decomposed components or normalized form, and can run a throughput
// micro-benchmark over repeated parses of the same input.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dyle71/hcs-url/uri"
)

var (
	verbose bool
	logger  zerolog.Logger
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "uricheck",
		Short:         "uricheck parses and normalizes URI references per RFC 3986",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each parse stage to stderr")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := zerolog.Disabled
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	}

	root.AddCommand(newParseCommand())
	root.AddCommand(newNormalizeCommand())
	root.AddCommand(newBenchCommand())
	root.AddCommand(newVersionCommand())
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the uricheck version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(version)
			return nil
		},
	}
}

func newParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <uri>",
		Short: "parse a URI reference and print its components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args[0])
		},
	}
}

func runParse(src string) error {
	logger.Debug().Str("source", src).Msg("parsing")
	u, err := uri.ParseErr(src)
	if err != nil {
		logger.Debug().Err(err).Msg("parse failed")
		return err
	}

	fmt.Printf("scheme:    %s\n", u.Scheme())
	fmt.Printf("authority: %s\n", u.Authority())
	fmt.Printf("userinfo:  %s\n", u.UserInfo())
	fmt.Printf("host:      %s\n", u.Host())
	fmt.Printf("port:      %s\n", u.Port())
	fmt.Printf("path:      %s\n", u.Path())
	fmt.Printf("segments:  %v\n", u.Segments())
	fmt.Printf("query:     %s\n", u.Query())
	fmt.Printf("items:     %v\n", u.QueryItems())
	fmt.Printf("fragment:  %s\n", u.Fragment())
	return nil
}

func newNormalizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <uri>",
		Short: "parse a URI reference and print its normalized form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNormalize(args[0])
		},
	}
}

func runNormalize(src string) error {
	logger.Debug().Str("source", src).Msg("parsing")
	u, err := uri.ParseErr(src)
	if err != nil {
		logger.Debug().Err(err).Msg("parse failed")
		return err
	}
	fmt.Println(u.Normalize().Source())
	return nil
}

func newBenchCommand() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "bench <uri>",
		Short: "parse a URI reference repeatedly and report throughput",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(args[0], count)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 100000, "number of parses to run")
	return cmd
}

func runBench(src string, count int) error {
	if count <= 0 {
		return fmt.Errorf("uricheck: count must be positive, got %d", count)
	}
	logger.Debug().Str("source", src).Int("count", count).Msg("benchmarking")

	start := time.Now()
	for i := 0; i < count; i++ {
		if u := uri.Parse(src); !u.IsValid() {
			return fmt.Errorf("uricheck: parse failed at iteration %d: %s", i, u.Err())
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("%d parses in %s (%s/parse)\n", count, elapsed, elapsed/time.Duration(count))
	return nil
}
