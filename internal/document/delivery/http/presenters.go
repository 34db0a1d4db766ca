package http

import (
	"document-chatbot/internal/document"
)

// --- Request DTOs ---

type documentReq struct {
	Source  string `json:"source"  binding:"required,min=1,max=255"`
	Content string `json:"content" binding:"required"`
}

type ingestReq struct {
	Documents []documentReq `json:"documents" binding:"required,min=1,dive"`
}

func (r ingestReq) toInput() document.IngestInput {
	docs := make([]document.DocumentInput, len(r.Documents))
	for i, d := range r.Documents {
		docs[i] = document.DocumentInput{
			Source:  d.Source,
			Content: d.Content,
		}
	}
	return document.IngestInput{Documents: docs}
}

// --- Response DTOs ---

type ingestResp struct {
	DocumentCount int `json:"document_count"`
	ChunkCount    int `json:"chunk_count"`
}

func (h *handler) newIngestResp(out document.IngestOutput) ingestResp {
	return ingestResp{
		DocumentCount: out.DocumentCount,
		ChunkCount:    out.ChunkCount,
	}
}

type statsResp struct {
	ChunkCount int `json:"chunk_count"`
}

func (h *handler) newStatsResp(out document.StatsOutput) statsResp {
	return statsResp{ChunkCount: out.ChunkCount}
}
