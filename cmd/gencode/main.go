// Command gencode prints random numeric barcode ids for labelling
// stock that arrives without a scannable code.
//
// Usage: gencode [count]
package main

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"strconv"
)

const codeDigits = 11

func main() {
	count := 1
	if len(os.Args) > 1 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil || n < 1 {
			fmt.Fprintf(os.Stderr, "usage: %s [count]\n", os.Args[0])
			os.Exit(2)
		}
		count = n
	}

	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(codeDigits), nil)
	for i := 0; i < count; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			fmt.Fprintln(os.Stderr, "gencode:", err)
			os.Exit(1)
		}
		fmt.Printf("%0*d\n", codeDigits, n)
	}
}
