package math

import (
	"strconv"
	"strings"
)

// formatComponents renders "(a, b, ...)" using 6 significant digits,
// matching the default float formatting of C++ streams.
func formatComponents(c ...float32) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, f := range c {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(float64(f), 'g', 6, 32))
	}
	b.WriteByte(')')
	return b.String()
}
