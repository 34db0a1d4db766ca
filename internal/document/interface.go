package document

import (
	"context"

	"document-chatbot/internal/model"
)

// UseCase defines the business logic interface for the document domain.
type UseCase interface {
	// Ingest splits documents into chunks, embeds them and stores them
	// in the vector store.
	Ingest(ctx context.Context, sc model.Scope, input IngestInput) (IngestOutput, error)

	// Ask answers a question over the ingested documents using
	// retrieval-augmented generation.
	Ask(ctx context.Context, sc model.Scope, input AskInput) (AskOutput, error)

	// Stats reports the state of the document index.
	Stats(ctx context.Context, sc model.Scope) (StatsOutput, error)
}
