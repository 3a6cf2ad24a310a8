package meta

import (
	"os"
	"strings"
	"unicode"
)

// expandEnvExpr replaces every ${env.KEY} in the input with the value of
// the environment variable KEY, leaving malformed references untouched.
func expandEnvExpr(value string) string {
	const prefix = "${env."
	var b strings.Builder
	i := 0
	for {
		idx := strings.Index(value[i:], prefix)
		if idx < 0 {
			b.WriteString(value[i:])
			break
		}
		b.WriteString(value[i : i+idx])
		startKey := i + idx + len(prefix)
		endKey := strings.IndexByte(value[startKey:], '}')
		if endKey < 0 {
			b.WriteString(value[i+idx:])
			break
		}
		key := value[startKey : startKey+endKey]
		if isEnvKey(key) {
			b.WriteString(os.Getenv(key))
		} else {
			b.WriteString(value[i+idx : startKey+endKey+1])
		}
		i = startKey + endKey + 1
	}
	return b.String()
}

func isEnvKey(key string) bool {
	for _, r := range key {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
