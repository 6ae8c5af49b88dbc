// Package sfecode builds Shannon–Fano–Elias prefix codes for a tiny
// arithmetic alphabet and encodes or decodes token sequences with them.
//
// 🚀 What is sfecode?
//
//	A small, deterministic codec toolkit that brings together:
//		• Alphabets: the symbols + - * / = with validated probabilities
//		• Code construction: cumulative midpoints, word lengths, codewords
//		• Metrics: average length, entropy, redundancy, Kraft sum
//		• Codec: whole-token encode and decode over a built table
//		• File I/O: alphabet and sequence parsers, text and YAML reports
//		• Session & batch: stateful workflow, ordered parallel processing
//
// ✨ Why choose sfecode?
//
//   - Exact – word lengths are snapped against float noise; Kraft is checked
//   - Fail fast – the first bad token or line aborts with a typed error
//   - Concurrency-safe – Session guards its state with an RWMutex
//   - Scriptable – the sfe command speaks plain text or YAML
//
// Packages:
//
//	alphabet/   Entry and Alphabet types, symbol and probability validators
//	sfe/        Build, WordLength, BinaryFraction, Metrics, Encode, Decode
//	textio/     alphabet/sequence readers and writers, Report, Save
//	session/    Session: LoadAlphabet, LoadSequence, Encode, Decode, Save
//	batch/      Process: many sequence files, results in input order
//	generate/   seeded random alphabets and sequences for tests and demos
//	cmd/sfe/    command line front end (table, encode, decode, gen)
//
// Quick example:
//
//	+ 0.4    F=0.0  M=0.20  L=3  → 001
//	- 0.3    F=0.4  M=0.55  L=3  → 100
//	* 0.2    F=0.7  M=0.80  L=4  → 1100
//	/ 0.1    F=0.9  M=0.95  L=5  → 11110
//
// Average length 3.4 bits, entropy ≈ 1.846 bits, Kraft sum 0.34375 ✓.
//
//	go install github.com/katalvlaran/sfecode/cmd/sfe@latest
package sfecode
