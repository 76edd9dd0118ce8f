// Package scope gates the assistant to the Pakistani legal domain.
package scope

import (
	"regexp"
	"strings"
)

// Classifier decides whether free text not resolved to an article is
// plausibly about Pakistani law. Implementations are swappable without
// touching the router.
type Classifier interface {
	InScope(text string) bool
}

// DefaultKeywords is the built-in domain vocabulary: jurisdiction names,
// legal instruments, institutions, and statute abbreviations.
var DefaultKeywords = []string{
	"pakistan", "pakistani", "constitution", "article",
	"ppc", "crpc", "family", "nikah", "khula",
	"court", "supreme court", "ordinance", "act", "law",
	"bylaws", "labour", "cyber", "pta", "fbr", "nab",
}

// KeywordClassifier is a recall-biased keyword-presence filter. Any keyword
// match means in-scope; false positives and negatives are accepted
// tradeoffs of the heuristic.
type KeywordClassifier struct {
	pattern *regexp.Regexp
}

// NewKeywordClassifier builds a classifier over the given keyword set. An
// empty set falls back to DefaultKeywords.
func NewKeywordClassifier(keywords []string) *KeywordClassifier {
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}
	quoted := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		quoted = append(quoted, regexp.QuoteMeta(kw))
	}
	pattern := regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
	return &KeywordClassifier{pattern: pattern}
}

func (c *KeywordClassifier) InScope(text string) bool {
	return c.pattern.MatchString(text)
}
