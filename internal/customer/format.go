package customer

import (
	"fmt"
	"strings"
)

// FormatList renders items as {a, b, c}. Debug output only.
func FormatList[T any](items []T) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, it := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, it)
	}
	b.WriteByte('}')
	return b.String()
}
