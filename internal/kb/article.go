package kb

import (
	"strconv"
	"strings"
)

// Article is a single numbered provision of the Constitution, the primary
// addressable unit of the knowledge base.
type Article struct {
	Title    string   `json:"title"`
	Text     string   `json:"text"`
	Summary  string   `json:"summary"`
	Examples []string `json:"examples"`
	Related  []string `json:"related"`
}

// CanonicalNumber normalizes an article number to integer text with no
// leading zeros, so "089" and "89" resolve to the same key.
func CanonicalNumber(s string) string {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return s
	}
	return strconv.Itoa(n)
}
