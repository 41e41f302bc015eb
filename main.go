// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// strref scans text files, interns their lines or fields and reports how much
// memory sharing equal strings saves.
package main

import (
	"errors"
	"flag"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

type exitCode int

const (
	exitSuccess exitCode = 0
	exitFailure exitCode = 1

	// Go 'flag' package calls os.Exit(2) on flag parse errors, if ExitOnError is set
	exitParseError exitCode = 2
)

func main() {
	os.Exit(int(mainWithExitCode(os.Args[1:], os.Stdout)))
}

func mainWithExitCode(argv []string, out io.Writer) exitCode {
	args, err := parseArgs(argv)
	if errors.Is(err, flag.ErrHelp) {
		return exitSuccess
	}
	if err != nil {
		return parseError("Failure to parse arguments: %v", err)
	}

	if args.verboseMode {
		log.SetLevel(log.DebugLevel)
		// Dump the arguments in debug mode.
		args.dump()
	}

	if err = args.SanityCheck(); err != nil {
		return parseError("Invalid arguments: %v", err)
	}

	a, err := newAnalyzer(args)
	if err != nil {
		return failure("Failed to create analyzer: %v", err)
	}
	defer a.close()

	for _, path := range args.paths {
		if err = a.scanFile(path); err != nil {
			return failure("%v", err)
		}
	}

	a.summary(args.top).print(out)
	return exitSuccess
}

func parseError(msg string, args ...any) exitCode {
	log.Errorf(msg, args...)
	return exitParseError
}

func failure(msg string, args ...any) exitCode {
	log.Errorf(msg, args...)
	return exitFailure
}
