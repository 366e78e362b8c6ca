// Package lookup holds the static astrology and vastu tables the derivation
// rules consult. Every table is built at init and never mutated afterwards,
// so lookups are safe from any goroutine.
package lookup

// firstN returns at most n leading items of s.
func firstN(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func copyOf(s []string) []string {
	return append([]string(nil), s...)
}
