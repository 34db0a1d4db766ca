package usecase

import (
	"context"
	"fmt"
	"strings"

	"document-chatbot/internal/document"
	"document-chatbot/internal/document/repository"
	"document-chatbot/internal/model"
	"document-chatbot/pkg/groq"
)

// Ask answers a question over the ingested documents: retrieve the
// closest chunks, then generate an answer grounded on them.
func (uc *implUseCase) Ask(ctx context.Context, sc model.Scope, input document.AskInput) (document.AskOutput, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return document.AskOutput{}, document.ErrEmptyQuestion
	}

	uc.l.Infof(ctx, "%s: user=%s question_length=%d", LogPrefixAsk, sc.UserID, len(question))

	results, err := uc.vectorRepo.Search(ctx, question, searchTopK)
	if err != nil {
		uc.l.Errorf(ctx, "%s: vectorRepo.Search: %v", LogPrefixAsk, err)
		return document.AskOutput{}, err
	}

	messages := uc.buildMessages(question, results, input.History)

	resp, err := uc.llm.ChatCompletion(ctx, groq.ChatRequest{
		Messages:    messages,
		Temperature: llmTemperature,
		MaxTokens:   llmMaxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: llm.ChatCompletion: %v", LogPrefixAsk, err)
		return document.AskOutput{}, err
	}
	if len(resp.Choices) == 0 {
		return document.AskOutput{}, fmt.Errorf("llm returned no choices")
	}

	sources := make([]document.Source, 0, len(results))
	for _, r := range results {
		sources = append(sources, document.Source{
			Source:  r.Source,
			Score:   r.Score,
			Excerpt: excerpt(r.Text, 200),
		})
	}

	return document.AskOutput{
		Answer:  resp.Choices[0].Message.Content,
		Sources: sources,
	}, nil
}

// buildMessages assembles the chat messages: system prompt with the
// retrieved context, a window of recent history, then the question.
func (uc *implUseCase) buildMessages(question string, results []repository.SearchResult, history []model.ChatMessage) []groq.Message {
	var contextBlock strings.Builder
	for i, r := range results {
		fmt.Fprintf(&contextBlock, "[%d] (%s)\n%s\n\n", i+1, r.Source, r.Text)
	}

	system := qaSystemPrompt
	if contextBlock.Len() > 0 {
		system = fmt.Sprintf("%s\n\nContext:\n%s", qaSystemPrompt, contextBlock.String())
	}

	messages := []groq.Message{{Role: "system", Content: system}}

	start := len(history) - historyWindow*2
	if start < 0 {
		start = 0
	}
	for _, msg := range history[start:] {
		messages = append(messages, groq.Message{Role: msg.Role, Content: msg.Content})
	}

	messages = append(messages, groq.Message{Role: "user", Content: question})
	return messages
}

// excerpt truncates text for source attribution.
func excerpt(text string, max int) string {
	if len(text) <= max {
		return text
	}
	return text[:max] + "..."
}
