package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"os"
	"path/filepath"
	"sort"
)

// Balances maps an identifier to its accumulated scaled token amount.
type Balances map[string]*big.Int

// Identifiers returns the identifiers in ascending order.
func (b Balances) Identifiers() []string {
	ids := make([]string, 0, len(b))
	for id := range b {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

var maxAccumulated = new(big.Int).SetUint64(math.MaxUint64)

// Aggregate reads every .json file directly inside dir and sums the token
// amounts recorded per identifier into a single scaled ledger. Amounts for
// the same identifier across files add up, so debit records written by prior
// mint runs fold into the running total. Only identifiers with a strictly
// positive total are returned.
func Aggregate(dir string) (Balances, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read balances directory %s: %w", dir, err)
	}

	totals := make(map[string]*big.Int)
	for _, entry := range entries {
		name := entry.Name()
		ext := filepath.Ext(name)
		if ext == "" {
			return nil, fmt.Errorf("entry %q in %s has no file extension", name, dir)
		}
		if ext != ".json" {
			continue
		}
		path := filepath.Join(dir, name)
		if err := aggregateFile(path, totals); err != nil {
			return nil, err
		}
	}

	balances := make(Balances)
	for id, total := range totals {
		if total.Cmp(maxAccumulated) >= 0 {
			return nil, fmt.Errorf("accumulated balance for %q is too large", id)
		}
		if total.Sign() > 0 {
			balances[id] = total
		}
	}
	return balances, nil
}

func aggregateFile(path string, totals map[string]*big.Int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read balances file %s: %w", path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc map[string]interface{}
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("parse balances file %s: %w", path, err)
	}

	for id, value := range doc {
		var raw string
		switch v := value.(type) {
		case json.Number:
			raw = v.String()
		case string:
			raw = v
		default:
			return fmt.Errorf("invalid value type %T for %q in file %s", value, id, path)
		}
		amount, err := ParseAmount(raw)
		if err != nil {
			return fmt.Errorf("invalid token amount %q for %q in file %s: %w", raw, id, path, err)
		}
		if amount.Cmp(maxSaneAmount) > 0 {
			return fmt.Errorf("token amount %q for %q in file %s exceeds the sanity limit", raw, id, path)
		}
		total, ok := totals[id]
		if !ok {
			total = new(big.Int)
			totals[id] = total
		}
		total.Add(total, amount)
	}
	return nil
}
