package main

import (
	"fmt"
	"io"

	"tokenmint/ledger"
)

func runBalancesCommand(dir string, args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(stderr, "Error: balances takes no arguments, got %q\n", args)
		return 1
	}

	balances, err := ledger.Aggregate(dir)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	ledger.Report(stdout, balances)
	return 0
}
