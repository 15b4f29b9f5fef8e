//go:build ignore

// gen_widths writes widths.go, the B1..B64 width markers.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
)

const maxBits = 64

func main() {
	var buf bytes.Buffer

	buf.WriteString("// Code generated by gen_widths.go. DO NOT EDIT.\n\npackage arbint\n")

	for i := 1; i <= maxBits; i++ {
		fmt.Fprintf(&buf, "\n// B%d marks a %d-bit wide integer.\n", i, i)
		fmt.Fprintf(&buf, "type B%d struct{}\n\n", i)
		fmt.Fprintf(&buf, "// Bits returns %d.\n", i)
		fmt.Fprintf(&buf, "func (B%d) Bits() uint { return %d }\n", i, i)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("formatting widths: %v", err)
	}

	if err := os.WriteFile("widths.go", src, 0o644); err != nil {
		log.Fatalf("writing widths.go: %v", err)
	}
}
