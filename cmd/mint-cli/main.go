package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("mint-cli", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dir := fs.String("dir", "", "directory containing the balance JSON files and the PEM file")
	configPath := fs.String("config", "", "path to the tool configuration file (default <dir>/mint-cli.toml)")
	fs.Usage = func() { printUsage(stderr) }
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *dir == "" {
		fmt.Fprintln(stderr, "Error: --dir is required.")
		printUsage(stderr)
		return 1
	}
	rest := fs.Args()
	if len(rest) < 1 {
		printUsage(stderr)
		return 1
	}

	cfgPath := *configPath
	if cfgPath == "" {
		cfgPath = filepath.Join(*dir, "mint-cli.toml")
	}

	switch rest[0] {
	case "mint":
		return runMintCommand(*dir, cfgPath, rest[1:], stdout, stderr)
	case "balances":
		return runBalancesCommand(*dir, rest[1:], stdout, stderr)
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", rest[0])
		printUsage(stderr)
		return 1
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mint-cli --dir <path> [--config <path>] <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  mint      - Output the minting command to run and record an offsetting audit file")
	fmt.Fprintln(w, "  balances  - Show remaining balances to mint")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Mint options:")
	fmt.Fprintln(w, "  --max <decimal>  - Maximum amount to mint in one run (default 100)")
	fmt.Fprintln(w, "  --dry-run        - Compute and print the plan without writing the audit file")
	fmt.Fprintln(w, "  --randomize      - Jitter each identifier's ceiling within the configured band")
	fmt.Fprintln(w, "  --seed <int>     - Seed for --randomize (default: time-based)")
	fmt.Fprintln(w, "  --memo <text>    - Memo to pass to the minting command")
	fmt.Fprintln(w, "  --json           - Output the plan as JSON instead of the command line")
	fmt.Fprintln(w, "  --pem <path>     - PEM file to embed in the command line")
}
