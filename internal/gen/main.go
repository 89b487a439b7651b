//go:build ignore

// Command gen emits a literal Go source table of binomial coefficients,
// computed via gonum's combinatorics package, for anyone who wants to swap
// the package's init-time Pascal's-triangle computation (see combin.go) for
// a precomputed literal table. Not part of the build; run manually with
// `go run internal/gen/main.go`.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"gonum.org/v1/gonum/stat/combin"
)

func main() {
	n := flag.Int("n", 10, "max n (and k) to tabulate, inclusive")
	flag.Parse()
	buf := new(bytes.Buffer)
	fmt.Fprintln(buf, "// Code generated by internal/gen/main.go; DO NOT EDIT.")
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "package yahtzee")
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "var generatedBinom = [%d][%d]int64{\n", *n+1, *n+1)
	for i := 0; i <= *n; i++ {
		fmt.Fprint(buf, "\t{")
		for j := 0; j <= *n; j++ {
			if j != 0 {
				fmt.Fprint(buf, ", ")
			}
			var v int64
			if j <= i {
				v = int64(combin.Binomial(i, j))
			}
			fmt.Fprintf(buf, "%d", v)
		}
		fmt.Fprintln(buf, "},")
	}
	fmt.Fprintln(buf, "}")
	os.Stdout.Write(buf.Bytes())
}
