package mint

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"time"

	"tokenmint/ledger"
)

// WriteAudit records the negated minted amounts as a debit file inside the
// source directory. The file is itself valid aggregator input, so the next
// run sees balances reduced by exactly what this run minted. Returns the
// path of the written file.
func WriteAudit(dir string, plan MintPlan, now time.Time) (string, error) {
	doc := make(map[string]string, len(plan.Entries))
	for _, entry := range plan.Entries {
		doc[entry.Identifier] = ledger.FormatAmountTrimmed(new(big.Int).Neg(entry.Amount))
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode audit record: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("mint-%s.json", now.Format("20060102-150405")))
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("write audit file %s: %w", path, err)
	}
	return path, nil
}
