// SPDX-License-Identifier: MIT

// Package sfe builds Shannon–Fano–Elias prefix codes for an alphabet and
// maps symbol sequences to codewords and back.
//
// 🚀 What is Shannon–Fano–Elias coding?
//
//	Every symbol owns the interval [F, F+p) of the cumulative distribution.
//	The codeword is the midpoint of that interval, M = F + p/2, written as a
//	binary fraction and truncated to L = ⌈-log₂(p/2)⌉ bits. One extra bit
//	over the Shannon length keeps the truncated midpoint strictly inside its
//	own interval, which makes the code prefix-free.
//
// ✨ Key features:
//   - deterministic construction in alphabet declaration order (no sorting)
//   - Kraft-inequality validation before any codeword is emitted
//   - metrics: average length, entropy, redundancy, Kraft sum
//   - whole-token Encode/Decode over whitespace-delimited codewords
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/sfecode/sfe"
//
//	code, err := sfe.Build(a)         // a is an *alphabet.Alphabet
//	bits, err := code.Encode([]string{"+", "-", "+"})
//	syms, err := code.Decode(bits)
//	m := code.Metrics()
//
// The package-level Encode and Decode rebuild the code on every call.
//
// Decoding does not peel prefixes off a bit string: each input token must
// equal a codeword exactly.
//
// Complexity:
//
//   - Build:  O(n·L) for n symbols and maximal word length L
//   - Encode: O(k) lookups for k tokens
//   - Decode: O(k) lookups for k tokens
package sfe
