package tablespec

import (
	"strings"
	"unicode"
)

// GoName converts a table name into an exported Go identifier:
// "tx_flow_control" to "TxFlowControl", "mii_10_bt" to "Mii10Bt". An
// underscore between two digits is kept so "tag_15_8" becomes "Tag15_8".
// Names without underscores only get their first letter capitalized.
func GoName(name string) string {
	var b strings.Builder
	var prev string
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		if prev != "" && isDigit(prev[len(prev)-1]) && isDigit(part[0]) {
			b.WriteByte('_')
		}
		r := []rune(part)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
		prev = part
	}
	return b.String()
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
