// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/sfecode/alphabet"
	"github.com/katalvlaran/sfecode/generate"
	"github.com/katalvlaran/sfecode/textio"
	"github.com/spf13/cobra"
)

var errUnknownDist = errors.New("sfe: unknown distribution")

func newGenCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate sample alphabet and sequence files",
	}
	cmd.AddCommand(newGenAlphabetCmd(a), newGenSequenceCmd(a))

	return cmd
}

func newGenAlphabetCmd(a *app) *cobra.Command {
	var (
		n       int
		seed    int64
		dist    string
		symbols string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "alphabet",
		Short: "Write an alphabet with generated probabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkSymbols(symbols); err != nil {
				return err
			}
			if n == 0 {
				n = len(symbols)
			}
			opts := []generate.Option{generate.WithSeed(seed), generate.WithSymbols(symbols)}

			var (
				alpha *alphabet.Alphabet
				err   error
			)
			switch dist {
			case "uniform":
				alpha, err = generate.Alphabet(n, append(opts, generate.WithUniformWeight(0.05, 1))...)
			case "exponential":
				alpha, err = generate.Alphabet(n, append(opts, generate.WithExponentialWeight(1))...)
			case "equal":
				alpha, err = generate.Alphabet(n, opts...)
			case "dyadic":
				alpha, err = generate.Dyadic(n, opts...)
			default:
				return fmt.Errorf("%w: %q", errUnknownDist, dist)
			}
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := textio.WriteAlphabet(&buf, alpha); err != nil {
				return err
			}
			a.log.Debug("alphabet generated", "symbols", alpha.Len(), "dist", dist, "seed", seed)

			return emit(cmd.OutOrStdout(), outPath, buf.Bytes())
		},
	}
	f := cmd.Flags()
	f.IntVarP(&n, "count", "n", 0, "number of symbols (0 = all of --symbols)")
	f.Int64Var(&seed, "seed", 1, "random seed")
	f.StringVar(&dist, "dist", "uniform", "weight distribution: uniform, exponential, equal, dyadic")
	f.StringVar(&symbols, "symbols", alphabet.AllowedSymbols, "symbols to use, in order")
	f.StringVarP(&outPath, "out", "o", "", "write to this file instead of stdout")

	return cmd
}

func newGenSequenceCmd(a *app) *cobra.Command {
	var (
		alphabetPath string
		length       int
		perLine      int
		seed         int64
		outPath      string
	)

	cmd := &cobra.Command{
		Use:   "sequence -a ALPHABET",
		Short: "Write a symbol sequence sampled from an alphabet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			alpha, err := textio.LoadAlphabet(alphabetPath)
			if err != nil {
				return err
			}
			seq, err := generate.Sequence(alpha, length, generate.WithSeed(seed))
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := textio.WriteSequence(&buf, seq, perLine); err != nil {
				return err
			}
			a.log.Debug("sequence generated", "tokens", len(seq), "seed", seed)

			return emit(cmd.OutOrStdout(), outPath, buf.Bytes())
		},
	}
	f := cmd.Flags()
	f.StringVarP(&alphabetPath, "alphabet", "a", "", "alphabet file")
	f.IntVarP(&length, "length", "l", 32, "number of symbols")
	f.IntVar(&perLine, "per-line", 16, "symbols per line (0 = one line)")
	f.Int64Var(&seed, "seed", 1, "random seed")
	f.StringVarP(&outPath, "out", "o", "", "write to this file instead of stdout")
	_ = cmd.MarkFlagRequired("alphabet")

	return cmd
}

// checkSymbols rejects symbol sets that generate.WithSymbols would panic on.
func checkSymbols(syms string) error {
	if syms == "" {
		return alphabet.ErrEmptyAlphabet
	}
	seen := make(map[rune]bool, len(syms))
	for _, r := range syms {
		if err := alphabet.ValidateSymbol(string(r)); err != nil {
			return err
		}
		if seen[r] {
			return fmt.Errorf("%w %q", alphabet.ErrDuplicateSymbol, r)
		}
		seen[r] = true
	}

	return nil
}

// emit writes data to path, or to w when path is empty.
func emit(w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("sfe: write %s: %w", path, err)
	}

	return nil
}
