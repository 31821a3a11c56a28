package mint

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// RenderJSON pretty-prints the plan as an identifier to scaled-amount object.
func RenderJSON(plan MintPlan) (string, error) {
	doc := make(map[string]*big.Int, len(plan.Entries))
	for _, entry := range plan.Entries {
		doc[entry.Identifier] = entry.Amount
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode mint plan: %w", err)
	}
	return string(data), nil
}

// RenderCommand produces the one-line ledger invocation that performs the
// planned mint. An empty plan renders an empty string: there is nothing to
// mint, so there is no command to run.
func RenderCommand(plan MintPlan, cfg Config) string {
	if len(plan.Entries) == 0 {
		return ""
	}

	pairs := make([]string, 0, len(plan.Entries))
	for _, entry := range plan.Entries {
		pairs = append(pairs, fmt.Sprintf("%q: %s", entry.Identifier, entry.Amount.String()))
	}
	literal := "{" + strings.Join(pairs, ", ") + "}"

	cmd := fmt.Sprintf("ledger --pem %s %s token mint %s '%s'",
		cfg.PemFile, cfg.LedgerURL, cfg.TokenID, literal)
	if cfg.Memo != "" {
		cmd += fmt.Sprintf(" --memo '%s'", cfg.Memo)
	}
	return cmd
}
