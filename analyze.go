// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"iter"
	"slices"

	log "github.com/sirupsen/logrus"

	"go.opentelemetry.io/strref/internal/fields"
	"go.opentelemetry.io/strref/internal/input"
	"go.opentelemetry.io/strref/internal/unsafestr"
	"go.opentelemetry.io/strref/interner"
	"go.opentelemetry.io/strref/str"
)

// Tokenization modes
const (
	modeLine   = "line"
	modeFields = "fields"
	modeSplit  = "split"
)

// maxLineSize is the longest input line accepted by the scanner.
const maxLineSize = 1 << 20

// tokenizer yields the tokens of a line. The tokens alias the line.
type tokenizer func(line string) iter.Seq[string]

func newTokenizer(mode, separator string, maxFields int) (tokenizer, error) {
	switch mode {
	case modeLine:
		return func(line string) iter.Seq[string] {
			return func(yield func(string) bool) { yield(line) }
		}, nil
	case modeFields:
		return func(line string) iter.Seq[string] {
			return fields.Fields(line, maxFields)
		}, nil
	case modeSplit:
		return func(line string) iter.Seq[string] {
			return fields.Split(line, separator, maxFields)
		}, nil
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
}

// analyzer interns every token it sees and counts the occurrences of each
// distinct token.
type analyzer struct {
	interner *interner.Interner
	tokenize tokenizer

	// counts is keyed by interned tokens.
	counts str.Map[*uint64]

	files       uint64
	lines       uint64
	tokens      uint64
	tokenBytes  uint64
	uniqueBytes uint64

	startStats str.Stats
}

func newAnalyzer(args *arguments) (*analyzer, error) {
	tokenize, err := newTokenizer(args.mode, args.separator, args.maxFields)
	if err != nil {
		return nil, err
	}
	in, err := interner.New(uint32(args.cacheSize))
	if err != nil {
		return nil, err
	}
	return &analyzer{
		interner:   in,
		tokenize:   tokenize,
		startStats: str.ReadStats(),
	}, nil
}

// addToken records one occurrence of token, which may alias a reused buffer.
// Every token goes through the interner, as it would when stored by a
// long-lived data structure, so the cache statistics reflect the input.
func (a *analyzer) addToken(token string) {
	a.tokens++
	a.tokenBytes += uint64(len(token))

	s := a.interner.InternString(token)
	if n, ok := a.counts.Get(token); ok {
		*n++
		s.Release()
		return
	}

	count := uint64(1)
	a.counts.Put(s, &count)
	a.uniqueBytes += uint64(len(token))
}

// scan reads r line by line. The lines are views into the scanner's buffer,
// only tokens that are not yet known get copied by the interner.
func (a *analyzer) scan(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for sc.Scan() {
		a.lines++
		for token := range a.tokenize(unsafestr.FromBytes(sc.Bytes())) {
			a.addToken(token)
		}
	}
	return sc.Err()
}

func (a *analyzer) scanFile(path string) error {
	r, err := input.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer r.Close()

	log.Debugf("Scanning %s", path)
	if err := a.scan(r); err != nil {
		return fmt.Errorf("failed to scan %s: %w", path, err)
	}
	a.files++
	return nil
}

// tokenCount is a token and its number of occurrences.
type tokenCount struct {
	token str.Str
	count uint64
}

// summary returns the results so far with the top most frequent tokens,
// ties broken by token order.
func (a *analyzer) summary(top int) *summary {
	ranked := make([]tokenCount, 0, a.counts.Len())
	for token, n := range a.counts.All() {
		ranked = append(ranked, tokenCount{token: token, count: *n})
	}
	slices.SortFunc(ranked, func(x, y tokenCount) int {
		if c := cmp.Compare(y.count, x.count); c != 0 {
			return c
		}
		return x.token.Compare(y.token)
	})
	if len(ranked) > top {
		ranked = ranked[:top]
	}

	return &summary{
		files:          a.files,
		lines:          a.lines,
		tokens:         a.tokens,
		uniqueTokens:   uint64(a.counts.Len()),
		tokenBytes:     a.tokenBytes,
		uniqueBytes:    a.uniqueBytes,
		allocatedBytes: str.ReadStats().Sub(a.startStats).CopiedBytes,
		cache:          a.interner.GetAndResetStatistics(),
		top:            ranked,
	}
}

// close releases all interned tokens.
func (a *analyzer) close() {
	a.counts.Clear()
	a.interner.Purge()
}
