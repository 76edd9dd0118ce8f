// Package extract detects references to numbered constitutional articles in
// free-form text.
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	articlePattern = regexp.MustCompile(`(?i)\barticle\s+(\d{1,3})\b`)
	numberPattern  = regexp.MustCompile(`\b(\d{1,3})\b`)
)

// ArticleNumber returns the canonical article number referenced by text, or
// "" when no numeric reference is found. The primary pattern is
// "article <1-3 digits>"; as a secondary heuristic, any standalone 1-3 digit
// number counts if the word "article" appears anywhere in the text. The
// secondary heuristic takes the first standalone number and can misfire on
// unrelated numbers (e.g. years); that ambiguity is intentional.
func ArticleNumber(text string) string {
	if m := articlePattern.FindStringSubmatch(text); m != nil {
		return canonical(m[1])
	}
	if strings.Contains(strings.ToLower(text), "article") {
		if m := numberPattern.FindStringSubmatch(text); m != nil {
			return canonical(m[1])
		}
	}
	return ""
}

func canonical(digits string) string {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return digits
	}
	return strconv.Itoa(n)
}
