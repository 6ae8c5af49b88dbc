// SPDX-License-Identifier: MIT

// Command sfe builds Shannon–Fano–Elias codes and encodes or decodes
// sequence files with them.
//
// Usage:
//
//	sfe table  -a alphabet.txt
//	sfe encode -a alphabet.txt [-o encoded.txt] message.txt
//	sfe decode -a alphabet.txt [-o decoded.txt] encoded.txt
//	sfe encode -a alphabet.txt --workers 4 part1.txt part2.txt part3.txt
//
// An alphabet file holds one "<symbol> <probability>" pair per line, symbols
// drawn from "+-*/=". A sequence file holds whitespace separated symbols (to
// encode) or binary codewords (to decode).
//
// Global flags: --config sfe.yaml, --log-level, --log-json, --format text|yaml.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
