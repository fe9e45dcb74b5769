package model

// MetadataKeyScore is the metadata key the retriever writes the relevance score under.
const MetadataKeyScore = "score"

// CandidateDocument is one item returned by a similarity search.
type CandidateDocument struct {
	ID       string
	Content  string
	Metadata map[string]any
	Score    float64 // in [0,1], higher is more similar
}

// GetMetadata returns the document metadata.
func (d CandidateDocument) GetMetadata() map[string]any {
	return d.Metadata
}

// TemplateDocument is a canned-question template to be indexed for retrieval.
type TemplateDocument struct {
	ID       string
	Content  string
	Metadata map[string]any
}
