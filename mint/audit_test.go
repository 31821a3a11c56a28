package mint

import (
	"encoding/json"
	"math/big"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tokenmint/ledger"
)

func TestWriteAuditNamesFileFromTimestamp(t *testing.T) {
	dir := t.TempDir()
	plan := MintPlan{Entries: []Entry{{Identifier: "id1", Amount: big.NewInt(80_500_000_000)}}}

	path, err := WriteAudit(dir, plan, time.Date(2024, 1, 31, 15, 4, 5, 0, time.UTC))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "mint-20240131-150405.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]string
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Equal(t, map[string]string{"id1": "-80.5"}, doc)
}

func TestWriteAuditEmptyPlan(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteAudit(dir, MintPlan{}, time.Date(2024, 1, 31, 15, 4, 5, 0, time.UTC))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.JSONEq(t, "{}", string(data))
}

// An audit file folded back into the aggregator must reduce each balance by
// exactly what was minted.
func TestAuditRoundTrip(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte(`{"id1": 50, "id2": "30.5"}`), 0o644))

	balances, err := ledger.Aggregate(dir)
	require.NoError(t, err)

	cfg := planConfig(40_000_000_000)
	plan := Plan(balances, cfg, rand.New(rand.NewSource(1)))
	_, err = WriteAudit(dir, plan, time.Date(2024, 1, 31, 15, 4, 5, 0, time.UTC))
	require.NoError(t, err)

	after, err := ledger.Aggregate(dir)
	require.NoError(t, err)
	// id1 had 50, minted 40, 10 remains. id2 was minted in full and drops out.
	require.Len(t, after, 1)
	require.Equal(t, int64(10_000_000_000), after["id1"].Int64())
}
