package document

import "document-chatbot/internal/model"

// DocumentInput is one document to ingest.
type DocumentInput struct {
	Source  string // file name or other identifier
	Content string // plain text content
}

// IngestInput carries documents to ingest.
type IngestInput struct {
	Documents []DocumentInput
}

// IngestOutput reports how much was stored.
type IngestOutput struct {
	DocumentCount int
	ChunkCount    int
}

// AskInput is a question over the ingested documents.
type AskInput struct {
	Question string
	History  []model.ChatMessage
}

// Source identifies a document chunk the answer was grounded on.
type Source struct {
	Source  string
	Score   float64
	Excerpt string
}

// AskOutput is the generated answer with its supporting sources.
type AskOutput struct {
	Answer  string
	Sources []Source
}

// StatsOutput reports the state of the document index.
type StatsOutput struct {
	ChunkCount int
}
