// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"math"

	"github.com/peterbourgon/ff/v3"
	log "github.com/sirupsen/logrus"
)

const (
	// Default values for CLI flags
	defaultArgCacheSize = 1 << 16
	defaultArgMode      = modeLine
	defaultArgMaxFields = 0
	defaultArgTop       = 10
)

// Help strings for command line arguments
var (
	configHelp    = "Path to a configuration file with one 'flag value' pair per line."
	cacheSizeHelp = "Maximum number of distinct strings kept by the interner. " +
		"Strings evicted from the interner are allocated again when seen later."
	modeHelp = fmt.Sprintf("Tokenization of input lines: %q interns whole lines, "+
		"%q splits on white space, %q splits on -separator.", modeLine, modeFields, modeSplit)
	separatorHelp   = "Separator used by the split mode."
	maxFieldsHelp   = "Maximum number of tokens per line, the last one keeps the remainder. 0 means no limit."
	topHelp         = "Number of most frequent tokens to report."
	verboseModeHelp = "Enable verbose logging."
)

type arguments struct {
	cacheSize   uint
	mode        string
	separator   string
	maxFields   int
	top         int
	verboseMode bool
	paths       []string

	fs *flag.FlagSet
}

func (args *arguments) SanityCheck() error {
	if args.cacheSize == 0 || uint64(args.cacheSize) > math.MaxUint32 {
		return fmt.Errorf("cache size %d out of range [1..%d]", args.cacheSize, math.MaxUint32)
	}

	switch args.mode {
	case modeLine, modeFields:
	case modeSplit:
		if args.separator == "" {
			return errors.New("split mode requires a separator")
		}
	default:
		return fmt.Errorf("unknown mode %q", args.mode)
	}

	if args.maxFields < 0 {
		return fmt.Errorf("negative max-fields %d", args.maxFields)
	}
	if args.top < 0 {
		return fmt.Errorf("negative top %d", args.top)
	}
	if len(args.paths) == 0 {
		return errors.New("no input files specified")
	}
	return nil
}

// dump logs the effective configuration at debug level.
func (args *arguments) dump() {
	log.Debug("Config:")
	args.fs.VisitAll(func(f *flag.Flag) {
		log.Debugf("%s: %v", f.Name, f.Value)
	})
	log.Debugf("inputs: %v", args.paths)
}

func parseArgs(argv []string) (*arguments, error) {
	var args arguments

	fs := flag.NewFlagSet("strref", flag.ContinueOnError)

	// Please keep the parameters ordered alphabetically in the source-code.
	fs.UintVar(&args.cacheSize, "cache-size", defaultArgCacheSize, cacheSizeHelp)

	fs.String("config", "", configHelp)

	fs.IntVar(&args.maxFields, "max-fields", defaultArgMaxFields, maxFieldsHelp)
	fs.StringVar(&args.mode, "mode", defaultArgMode, modeHelp)

	fs.StringVar(&args.separator, "separator", "", separatorHelp)

	fs.IntVar(&args.top, "top", defaultArgTop, topHelp)

	fs.BoolVar(&args.verboseMode, "v", false, "Shorthand for -verbose.")
	fs.BoolVar(&args.verboseMode, "verbose", false, verboseModeHelp)

	args.fs = fs

	err := ff.Parse(fs, argv,
		ff.WithEnvVarPrefix("STRREF"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
		ff.WithIgnoreUndefined(true),
		ff.WithAllowMissingConfigFile(true),
	)
	if err != nil {
		return nil, err
	}
	args.paths = fs.Args()
	return &args, nil
}
