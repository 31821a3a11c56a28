package ledger

import (
	"fmt"
	"io"
)

// Report prints every balance with nine decimal places, one identifier per
// line in ascending order.
func Report(w io.Writer, balances Balances) {
	for _, id := range balances.Identifiers() {
		fmt.Fprintf(w, "%s: %s\n", id, FormatAmount(balances[id]))
	}
}
