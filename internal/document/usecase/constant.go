package usecase

const (
	// LogPrefixIngest is the log prefix for the Ingest operation.
	LogPrefixIngest = "document.Ingest"
	// LogPrefixAsk is the log prefix for the Ask operation.
	LogPrefixAsk = "document.Ask"
	// LogPrefixStats is the log prefix for the Stats operation.
	LogPrefixStats = "document.Stats"

	// ChunkSize is the target chunk length in bytes.
	ChunkSize = 1000
	// ChunkOverlap is the number of trailing bytes repeated at the start
	// of the next chunk to preserve context across boundaries.
	ChunkOverlap = 200

	// searchTopK is the number of chunks retrieved per question.
	searchTopK = 4
	// historyWindow is the number of recent exchanges included in the prompt.
	historyWindow = 5

	llmTemperature = 0.3
	llmMaxTokens   = 4000
)

const qaSystemPrompt = `You are a helpful assistant answering questions about the provided documents.
Use only the context below to answer. If the answer is not in the context, say you don't know.`
