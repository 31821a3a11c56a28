package mint

import (
	"math/big"
	"math/rand"

	"tokenmint/ledger"
)

// Config carries the knobs for a single mint run.
type Config struct {
	// MaxAmount is the scaled per-identifier mint ceiling.
	MaxAmount *big.Int
	// Randomize jitters each identifier's ceiling independently within the
	// configured band.
	Randomize     bool
	JitterLowBps  int64
	JitterHighBps int64

	// Rendering inputs for the generated ledger invocation.
	LedgerURL string
	TokenID   string
	PemFile   string
	Memo      string
}

// Entry is one identifier with the scaled amount planned for minting.
type Entry struct {
	Identifier string
	Amount     *big.Int
}

// MintPlan holds the per-identifier amounts of one run, ordered by identifier.
type MintPlan struct {
	Entries []Entry
}

// Plan clamps every balance to the run's effective ceiling. With Randomize
// set, the ceiling for each identifier is drawn independently from the jitter
// band as basis points of the configured maximum. The computation is pure:
// the caller owns the RNG, so a fixed seed reproduces the plan exactly.
func Plan(balances ledger.Balances, cfg Config, rng *rand.Rand) MintPlan {
	plan := MintPlan{Entries: make([]Entry, 0, len(balances))}
	for _, id := range balances.Identifiers() {
		ceiling := new(big.Int).Set(cfg.MaxAmount)
		if cfg.Randomize {
			bps := cfg.JitterLowBps + rng.Int63n(cfg.JitterHighBps-cfg.JitterLowBps)
			ceiling.Mul(ceiling, big.NewInt(bps))
			ceiling.Div(ceiling, big.NewInt(10_000))
		}
		amount := new(big.Int).Set(balances[id])
		if amount.Cmp(ceiling) > 0 {
			amount.Set(ceiling)
		}
		plan.Entries = append(plan.Entries, Entry{Identifier: id, Amount: amount})
	}
	return plan
}
