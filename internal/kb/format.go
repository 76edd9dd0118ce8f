package kb

import (
	"fmt"
	"strconv"
	"strings"
)

// wordingLimit is the length above which the authoritative wording is not
// quoted in full; the summary carries the content instead.
const wordingLimit = 600

// maxExamples caps how many practical scenarios a response shows.
const maxExamples = 2

// defaultSuggestions are offered when an unknown article number is asked
// about and no better contextual hint applies.
var defaultSuggestions = []string{"89", "128", "175", "176", "177"}

// judiciarySuggestions narrow the hint for numbers falling in the
// judicature chapters of the Constitution.
var judiciarySuggestions = []string{"175", "176", "177"}

// Render formats an article into exactly one structured block under a
// single top-level heading. It never returns a partial response.
func Render(number string, a Article) string {
	var b strings.Builder
	b.WriteString("### Article Information\n\n")
	b.WriteString(fmt.Sprintf("**Article %s – %s**\n\n", number, strings.TrimSpace(a.Title)))

	text := strings.TrimSpace(a.Text)
	summary := strings.TrimSpace(a.Summary)

	if text != "" {
		if len(text) <= wordingLimit {
			b.WriteString(fmt.Sprintf("**Authentic Wording:** %s\n\n", text))
		} else {
			// Long provisions are summarised rather than quoted in full.
			b.WriteString(fmt.Sprintf("**Authentic Wording:** omitted here (%d characters); see the official text of the Constitution for the full provision.\n\n", len(text)))
		}
	}
	if summary != "" {
		b.WriteString(fmt.Sprintf("**Detailed Explanation:** %s\n\n", summary))
	}
	if len(a.Examples) > 0 {
		b.WriteString("**Practical Example(s) / Scenario(s):**\n")
		for i, ex := range a.Examples {
			if i >= maxExamples {
				break
			}
			b.WriteString(fmt.Sprintf("- %s\n", ex))
		}
		b.WriteString("\n")
	}
	if len(a.Related) > 0 {
		refs := make([]string, 0, len(a.Related))
		for _, r := range a.Related {
			refs = append(refs, "Article "+r)
		}
		b.WriteString(fmt.Sprintf("**Related Provisions:** %s\n", strings.Join(refs, ", ")))
	}

	return b.String()
}

// RenderMiss formats the polite response for an article number the KB does
// not hold. It suggests likely articles instead of fabricating content.
func RenderMiss(number string) string {
	suggestions := suggestionsFor(number)
	refs := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		refs = append(refs, "Article "+s)
	}
	return "I'm not fully certain without checking the official text for that Article number. " +
		"If you can share the subject matter (e.g., 'ordinances', 'composition of Supreme Court'), " +
		"I can match it precisely. Likely relevant: " + strings.Join(refs, ", ") + "."
}

// suggestionsFor narrows the hint set for numbers near the judicature
// chapters (Articles 175-212). Heuristic repair hint, not a search.
func suggestionsFor(number string) []string {
	n, err := strconv.Atoi(CanonicalNumber(number))
	if err != nil {
		return defaultSuggestions
	}
	if n >= 170 && n <= 212 {
		return judiciarySuggestions
	}
	return defaultSuggestions
}
