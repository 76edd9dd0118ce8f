package kb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDefault_HoldsBuiltInArticles(t *testing.T) {
	knowledge := Default()

	assert.Equal(t, 5, knowledge.Len())
	for _, num := range []string{"89", "128", "175", "176", "177"} {
		_, ok := knowledge.Get(num)
		assert.True(t, ok, "expected built-in article %s", num)
	}
}

func TestGet_CanonicalizesNumber(t *testing.T) {
	knowledge := Default()

	a1, ok1 := knowledge.Get("89")
	a2, ok2 := knowledge.Get("089")
	a3, ok3 := knowledge.Get(" 89 ")

	require.True(t, ok1)
	require.True(t, ok2)
	require.True(t, ok3)
	assert.Equal(t, a1.Title, a2.Title)
	assert.Equal(t, a1.Title, a3.Title)
}

func TestLoad_MergesExternalOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "constitution.json")
	data := `{
		"019": {"title": "Freedom to profess religion", "summary": "Religious freedom subject to law, public order and morality."},
		"176": {"title": "Overridden title", "summary": "external wins"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	knowledge := Load(path, zap.NewNop())

	// New entry present under its canonical key.
	a, ok := knowledge.Get("19")
	require.True(t, ok)
	assert.Equal(t, "Freedom to profess religion", a.Title)

	// External entry wins on collision.
	a, ok = knowledge.Get("176")
	require.True(t, ok)
	assert.Equal(t, "Overridden title", a.Title)

	// Defaults not overridden survive.
	a, ok = knowledge.Get("89")
	require.True(t, ok)
	assert.Equal(t, "Power of President to promulgate Ordinances", a.Title)
}

func TestLoad_MissingFileFallsBack(t *testing.T) {
	knowledge := Load(filepath.Join(t.TempDir(), "nope.json"), zap.NewNop())
	assert.Equal(t, 5, knowledge.Len())
}

func TestLoad_MalformedFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "constitution.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	knowledge := Load(path, zap.NewNop())
	assert.Equal(t, 5, knowledge.Len())
}

func TestCanonicalNumber(t *testing.T) {
	assert.Equal(t, "89", CanonicalNumber("089"))
	assert.Equal(t, "89", CanonicalNumber("89"))
	assert.Equal(t, "176", CanonicalNumber(" 176 "))
	// Non-numeric input is passed through trimmed.
	assert.Equal(t, "abc", CanonicalNumber("abc"))
}
