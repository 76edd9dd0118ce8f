package core

// Source identifies which routing branch produced a response, so callers
// can distinguish provenance without parsing the text.
type Source string

const (
	SourceKnowledgeBase Source = "knowledge_base"
	SourceDelegate      Source = "delegate"
	SourceRefusal       Source = "refusal"
)

// Result is the router's answer to a single query.
type Result struct {
	Source Source `json:"source"`
	Text   string `json:"text"`
}
