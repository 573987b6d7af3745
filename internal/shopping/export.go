package shopping

import (
	"fmt"
	"strings"
	"time"
)

// ExportText renders the list in the plain-text share format: a header
// followed by one checkbox line per item still to buy. Owned entries
// are left out; the share/clipboard collaborator only reads the result.
func ExportText(title string, entries []ListEntry, generatedAt time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", title)
	fmt.Fprintf(&b, "Generated on: %s\n\n", generatedAt.Format("2006-01-02"))

	for _, e := range entries {
		if e.IsOwned {
			continue
		}
		fmt.Fprintf(&b, "☐ %s - %s %s\n", e.Name, e.Amount, e.Unit)
	}

	return b.String()
}
