package router

import "strings"

// Route classifies a single user message. An in-progress form captures
// every turn regardless of content, until it completes or is abandoned.
// Otherwise the message routes to the form only when it matches the
// scheduling keyword or pattern table; everything else is a document
// question. Pure function of its inputs and the static tables.
func (r *KeywordRouter) Route(message string, formActive bool) Decision {
	if formActive {
		return Decision{Route: RouteForm, Matched: "form_active"}
	}

	normalized := strings.ToLower(strings.TrimSpace(message))

	for _, keyword := range schedulingKeywords {
		if strings.Contains(normalized, keyword) {
			return Decision{Route: RouteForm, Matched: keyword}
		}
	}

	for _, pattern := range r.patterns {
		if pattern.MatchString(normalized) {
			return Decision{Route: RouteForm, Matched: pattern.String()}
		}
	}

	return Decision{Route: RouteQA}
}
