package procurement

import (
	"regexp"
	"strconv"
	"strings"
)

// Legacy orders encode "item name + quantity" as a single description in
// the form "Item Name (Qty Unit)". The quantity is the first number after
// the opening parenthesis.
var legacyQtyPattern = regexp.MustCompile(`\((\d+)`)

// parseLegacyItem recovers the item name and quantity from a legacy
// description. ok is false when either part cannot be extracted.
func parseLegacyItem(desc string) (name string, qty int64, ok bool) {
	name, _, found := strings.Cut(desc, " (")
	m := legacyQtyPattern.FindStringSubmatch(desc)
	if !found || m == nil {
		return "", 0, false
	}
	qty, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil || strings.TrimSpace(name) == "" || qty <= 0 {
		return "", 0, false
	}
	return strings.TrimSpace(name), qty, true
}
