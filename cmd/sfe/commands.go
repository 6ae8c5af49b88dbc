// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/sfecode/batch"
	"github.com/katalvlaran/sfecode/internal/ux"
	"github.com/katalvlaran/sfecode/session"
	"github.com/katalvlaran/sfecode/sfe"
	"github.com/katalvlaran/sfecode/textio"
	"github.com/spf13/cobra"
)

const (
	modeEncode = session.ModeEncode
	modeDecode = session.ModeDecode
)

func newTableCmd(a *app) *cobra.Command {
	var alphabetPath string

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the code table and metrics for an alphabet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			alpha, err := textio.LoadAlphabet(alphabetPath)
			if err != nil {
				return err
			}
			code, err := sfe.Build(alpha)
			if err != nil {
				return err
			}
			rep := textio.NewReport(code)
			rep.Precision = a.cfg.Output.Precision

			return ux.WriteResult(cmd.OutOrStdout(), "", rep, a.output)
		},
	}
	cmd.Flags().StringVarP(&alphabetPath, "alphabet", "a", "", "alphabet file")
	_ = cmd.MarkFlagRequired("alphabet")

	return cmd
}

func newCodecCmd(a *app, mode session.Mode) *cobra.Command {
	var alphabetPath, outPath string

	short := "Encode symbol sequences into codewords"
	if mode == modeDecode {
		short = "Decode codeword sequences back into symbols"
	}

	cmd := &cobra.Command{
		Use:   mode.String() + " -a ALPHABET [-o OUT] SEQUENCE...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return a.runOne(cmd.OutOrStdout(), mode, alphabetPath, args[0], outPath)
			}
			if outPath != "" {
				return errOutputWithMany
			}

			return a.runMany(cmd, mode, alphabetPath, args)
		},
	}
	cmd.Flags().StringVarP(&alphabetPath, "alphabet", "a", "", "alphabet file")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "save the result to this file (single sequence only)")
	_ = cmd.MarkFlagRequired("alphabet")

	return cmd
}

// runOne drives a session through load, run and the optional save.
func (a *app) runOne(w io.Writer, mode session.Mode, alphabetPath, seqPath, outPath string) error {
	s := session.New(
		session.WithLogger(a.log),
		session.WithSeparator(a.cfg.Output.Separator),
		session.WithPrecision(a.cfg.Output.Precision),
		session.WithFormat(a.output),
	)
	if err := s.LoadAlphabet(alphabetPath); err != nil {
		return err
	}
	if err := s.LoadSequence(seqPath); err != nil {
		return err
	}
	res, err := s.Run(mode)
	if err != nil {
		return err
	}
	if outPath != "" {
		if err := s.Save(outPath); err != nil {
			return err
		}
	}

	return ux.WriteResult(w, res.Blob(a.cfg.Output.Separator), res.Report(a.cfg.Output.Precision), a.output)
}

// runMany processes every sequence file in parallel and prints the results
// in argument order.
func (a *app) runMany(cmd *cobra.Command, mode session.Mode, alphabetPath string, paths []string) error {
	alpha, err := textio.LoadAlphabet(alphabetPath)
	if err != nil {
		return err
	}
	items, err := batch.Process(cmd.Context(), alpha, paths, mode,
		batch.WithWorkers(a.cfg.Batch.Workers),
		batch.WithLogger(a.log),
	)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for i, it := range items {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "==> %s <==\n", it.Path)
		rep := it.Result.Report(a.cfg.Output.Precision)
		if err := ux.WriteResult(w, it.Result.Blob(a.cfg.Output.Separator), rep, a.output); err != nil {
			return err
		}
	}

	return nil
}
