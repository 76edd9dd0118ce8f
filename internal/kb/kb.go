package kb

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// KnowledgeBase is the static article mapping used for deterministic
// answers. It is built once at startup and read-only afterwards.
type KnowledgeBase struct {
	articles map[string]Article
}

// New builds a knowledge base from the given articles. Keys are normalized
// to canonical integer text.
func New(articles map[string]Article) *KnowledgeBase {
	m := make(map[string]Article, len(articles))
	for num, a := range articles {
		m[CanonicalNumber(num)] = a
	}
	return &KnowledgeBase{articles: m}
}

// Default returns a knowledge base holding only the built-in articles.
func Default() *KnowledgeBase {
	return New(defaultArticles)
}

// Load reads an external KB file and merges it over the built-in defaults,
// external entries winning on key collision. A missing or malformed file is
// not fatal: the built-in defaults are used and the problem is logged.
func Load(path string, logger *zap.Logger) *KnowledgeBase {
	merged := make(map[string]Article, len(defaultArticles))
	for num, a := range defaultArticles {
		merged[num] = a
	}

	external, err := readFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("failed to load KB file, falling back to built-in articles",
				zap.String("path", path), zap.Error(err))
		}
		return New(merged)
	}

	for num, a := range external {
		merged[CanonicalNumber(num)] = a
	}
	logger.Info("loaded external KB file",
		zap.String("path", path), zap.Int("articles", len(external)))
	return New(merged)
}

func readFile(path string) (map[string]Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var articles map[string]Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("failed to parse KB JSON: %w", err)
	}
	return articles, nil
}

// Get looks up an article by number. The number is canonicalized before the
// lookup, so padded forms like "089" resolve too.
func (kb *KnowledgeBase) Get(number string) (Article, bool) {
	a, ok := kb.articles[CanonicalNumber(number)]
	return a, ok
}

// Len reports how many articles the knowledge base holds.
func (kb *KnowledgeBase) Len() int {
	return len(kb.articles)
}
