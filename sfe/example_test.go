// SPDX-License-Identifier: MIT
package sfe_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sfecode/alphabet"
	"github.com/katalvlaran/sfecode/sfe"
)

// ExampleBuild builds the code for a dyadic source and prints the table.
func ExampleBuild() {
	a, err := alphabet.New([]alphabet.Entry{
		{Symbol: "+", P: 0.25},
		{Symbol: "-", P: 0.25},
		{Symbol: "*", P: 0.5},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	code, err := sfe.Build(a)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i, s := range code.Symbols {
		fmt.Printf("%s: %s\n", s, code.Codewords[i])
	}
	m := code.Metrics()
	fmt.Printf("avg=%.4f entropy=%.4f redundancy=%.4f kraft=%.4f\n",
		m.AvgLength, m.Entropy, m.Redundancy, m.KraftSum)
	// Output:
	// +: 001
	// -: 011
	// *: 11
	// avg=2.5000 entropy=1.5000 redundancy=1.0000 kraft=0.5000
}

// ExampleEncode shows an encode/decode round trip.
func ExampleEncode() {
	a := alphabet.MustNew([]alphabet.Entry{{Symbol: "+", P: 0.5}, {Symbol: "-", P: 0.5}})

	bits, _, err := sfe.Encode(a, []string{"+", "-", "-", "+"})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(strings.Join(bits, " "))

	syms, _, err := sfe.Decode(a, bits)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(strings.Join(syms, " "))
	// Output:
	// 01 11 11 01
	// + - - +
}
