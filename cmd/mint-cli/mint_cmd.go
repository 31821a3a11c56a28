package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"

	"tokenmint/config"
	"tokenmint/ledger"
	"tokenmint/mint"
	"tokenmint/observability/logging"
)

var (
	mintNow  = time.Now
	mintSeed = func() int64 { return time.Now().UnixNano() }
	newRunID = uuid.NewString
)

func runMintCommand(dir, configPath string, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("mint", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		maxStr    = fs.String("max", "", "maximum amount to mint in one run (default from config)")
		dryRun    = fs.Bool("dry-run", false, "compute and print the plan without writing the audit file")
		randomize = fs.Bool("randomize", false, "jitter each identifier's ceiling within the configured band")
		seedStr   = fs.String("seed", "", "seed for --randomize (default: time-based)")
		memo      = fs.String("memo", "", "memo to pass to the minting command")
		jsonOut   = fs.Bool("json", false, "output the plan as JSON instead of the command line")
		pem       = fs.String("pem", "", "PEM file to embed in the command line (default from config)")
	)
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	maxValue := cfg.MaxAmount
	if *maxStr != "" {
		maxValue = *maxStr
	}
	maxAmount, err := ledger.ParseAmount(maxValue)
	if err != nil || maxAmount.Sign() < 0 {
		fmt.Fprintf(stderr, "Error: --max must be a non-negative decimal amount, got %q\n", maxValue)
		return 1
	}

	pemFile := cfg.PemFile
	if *pem != "" {
		pemFile = *pem
	}

	seed := mintSeed()
	if *seedStr != "" {
		parsed, err := strconv.ParseInt(*seedStr, 10, 64)
		if err != nil {
			fmt.Fprintf(stderr, "Error: --seed must be an integer, got %q\n", *seedStr)
			return 1
		}
		seed = parsed
	}

	balances, err := ledger.Aggregate(dir)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	planCfg := mint.Config{
		MaxAmount:     maxAmount,
		Randomize:     *randomize,
		JitterLowBps:  cfg.JitterLowBps,
		JitterHighBps: cfg.JitterHighBps,
		LedgerURL:     cfg.LedgerURL,
		TokenID:       cfg.TokenID,
		PemFile:       pemFile,
		Memo:          *memo,
	}
	now := mintNow()
	plan := mint.Plan(balances, planCfg, rand.New(rand.NewSource(seed)))

	logger := logging.Setup(stderr, "mint-cli")
	logger.Info("planning mint run",
		"run", newRunID(),
		"date", now.Format(time.RFC1123Z),
		"max", ledger.FormatAmountTrimmed(maxAmount),
		"randomize", *randomize,
		"dryRun", *dryRun,
		"identifiers", len(plan.Entries),
	)
	printPlanTable(stderr, plan)

	if !*dryRun {
		path, err := mint.WriteAudit(dir, plan, now)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		logger.Info("wrote audit file", "path", path)
	}

	if *jsonOut {
		out, err := mint.RenderJSON(plan)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, out)
		return 0
	}
	if cmdLine := mint.RenderCommand(plan, planCfg); cmdLine != "" {
		fmt.Fprintln(stdout, cmdLine)
	}
	return 0
}

func printPlanTable(w io.Writer, plan mint.MintPlan) {
	longest := 0
	for _, entry := range plan.Entries {
		if l := len(ledger.FormatAmount(entry.Amount)); l > longest {
			longest = l
		}
	}
	for _, entry := range plan.Entries {
		fmt.Fprintf(w, "%s\t%*s\n", entry.Identifier, longest, ledger.FormatAmount(entry.Amount))
	}
	fmt.Fprintln(w, "--------------------------------------------------")
}
