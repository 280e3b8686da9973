package export

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Worksheet name rules: at most 31 characters, none of : \ / ? * [ ]
const (
	maxSheetNameLen  = 31
	defaultSheetName = "sheet"
	forbiddenChars   = `:\/?*[]`
)

// SanitizeSheetName derives a valid, unique worksheet name from an arbitrary
// category label. Forbidden characters are replaced with underscores, the
// result is truncated to 31 characters, and collisions with already-used
// names are resolved with the smallest numeric suffix that fits. The chosen
// name is recorded in used before returning, so the used set is scoped to
// one export run.
func SanitizeSheetName(label string, used map[string]bool) string {
	var b strings.Builder
	for _, r := range label {
		if strings.ContainsRune(forbiddenChars, r) {
			b.WriteRune('_')
		} else {
			b.WriteRune(r)
		}
	}

	// Truncate before collision checking: labels that collide only after
	// truncation still get disambiguated.
	name := truncate(b.String(), maxSheetNameLen)
	if name == "" {
		name = defaultSheetName
	}

	base := name
	for i := 1; used[name]; i++ {
		suffix := fmt.Sprintf("_%d", i)
		if utf8.RuneCountInString(base)+len(suffix) > maxSheetNameLen {
			name = truncate(base, maxSheetNameLen-len(suffix)) + suffix
		} else {
			name = base + suffix
		}
	}

	used[name] = true
	return name
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
