package usecase

import "strings"

// separators are tried in order: paragraph break, line break, word
// boundary, then raw bytes as a last resort.
var separators = []string{"\n\n", "\n", " ", ""}

// splitText splits text into chunks of at most size bytes, preferring
// to break at the coarsest boundary available. Consecutive chunks share
// up to overlap bytes of trailing context.
func splitText(text string, size, overlap int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if len(text) <= size {
		return []string{text}
	}

	pieces := splitPieces(text, size, 0)
	return mergePieces(pieces, size, overlap)
}

// splitPieces breaks text into fragments no longer than size, using the
// separator at sepIdx and recursing to finer separators as needed.
func splitPieces(text string, size, sepIdx int) []string {
	if len(text) <= size {
		return []string{text}
	}
	if sepIdx >= len(separators)-1 {
		// Hard split on byte boundaries.
		var out []string
		for len(text) > size {
			out = append(out, text[:size])
			text = text[size:]
		}
		if text != "" {
			out = append(out, text)
		}
		return out
	}

	var out []string
	for _, part := range strings.Split(text, separators[sepIdx]) {
		if part == "" {
			continue
		}
		if len(part) <= size {
			out = append(out, part)
			continue
		}
		out = append(out, splitPieces(part, size, sepIdx+1)...)
	}
	return out
}

// mergePieces greedily packs fragments into chunks of at most size
// bytes, carrying overlap bytes from the end of each chunk into the
// start of the next.
func mergePieces(pieces []string, size, overlap int) []string {
	var chunks []string
	var current strings.Builder

	flush := func() string {
		chunk := strings.TrimSpace(current.String())
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		current.Reset()
		return chunk
	}

	for _, piece := range pieces {
		if current.Len() > 0 && current.Len()+1+len(piece) > size {
			chunk := flush()
			if overlap > 0 && chunk != "" {
				current.WriteString(tailAtWordBoundary(chunk, overlap))
			}
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(piece)
	}
	flush()

	return chunks
}

// tailAtWordBoundary returns at most n trailing bytes of s, trimmed
// forward to the next word boundary so overlaps never start mid-word.
func tailAtWordBoundary(s string, n int) string {
	if len(s) <= n {
		return s
	}
	tail := s[len(s)-n:]
	if idx := strings.IndexAny(tail, " \n"); idx >= 0 {
		return strings.TrimSpace(tail[idx:])
	}
	return ""
}
