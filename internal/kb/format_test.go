package kb

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_SingleBlockWithAllSections(t *testing.T) {
	knowledge := Default()
	a, ok := knowledge.Get("176")
	require.True(t, ok)

	out := Render("176", a)

	assert.True(t, strings.HasPrefix(out, "### Article Information"))
	assert.Contains(t, out, "**Article 176 – Constitution of Supreme Court**")
	assert.Contains(t, out, "Chief Justice of Pakistan")
	assert.Contains(t, out, "**Authentic Wording:**")
	assert.Contains(t, out, "**Detailed Explanation:**")
	assert.Contains(t, out, "**Practical Example(s) / Scenario(s):**")
	assert.Contains(t, out, "**Related Provisions:** Article 175, Article 177, Article 178")
}

func TestRender_ExamplesCappedAtTwo(t *testing.T) {
	a := Article{
		Title:    "Test",
		Summary:  "s",
		Examples: []string{"one", "two", "three"},
	}

	out := Render("1", a)

	assert.Contains(t, out, "- one")
	assert.Contains(t, out, "- two")
	assert.NotContains(t, out, "- three")
}

func TestRender_LongWordingSummarised(t *testing.T) {
	a := Article{
		Title:   "Long provision",
		Text:    strings.Repeat("x", 601),
		Summary: "short version",
	}

	out := Render("240", a)

	assert.NotContains(t, out, strings.Repeat("x", 601))
	assert.Contains(t, out, "see the official text of the Constitution")
	assert.Contains(t, out, "**Detailed Explanation:** short version")
}

func TestRender_EmptyWordingOmitted(t *testing.T) {
	a := Article{Title: "No text", Summary: "only summary"}

	out := Render("3", a)

	assert.NotContains(t, out, "**Authentic Wording:**")
	assert.Contains(t, out, "**Detailed Explanation:** only summary")
}

func TestRenderMiss_DefaultSuggestions(t *testing.T) {
	out := RenderMiss("999")

	assert.Contains(t, out, "I'm not fully certain")
	for _, s := range []string{"Article 89", "Article 128", "Article 175", "Article 176", "Article 177"} {
		assert.Contains(t, out, s)
	}
}

func TestRenderMiss_JudiciaryRangeNarrowsSuggestions(t *testing.T) {
	out := RenderMiss("181")

	assert.Contains(t, out, "Article 175")
	assert.Contains(t, out, "Article 176")
	assert.Contains(t, out, "Article 177")
	assert.NotContains(t, out, "Article 89")
	assert.NotContains(t, out, "Article 128")
}
