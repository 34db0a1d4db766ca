package router

// Keywords that indicate the user wants to be contacted. Matched as
// case-insensitive substrings.
var schedulingKeywords = []string{
	"call me",
	"call back",
	"schedule call",
	"book appointment",
	"appointment",
	"meeting",
	"talk to someone",
	"speak with",
	"contact me",
	"get in touch",
	"schedule meeting",
}

// Patterns that indicate a scheduling request phrased as a sentence
// rather than a bare keyword.
var schedulingPatterns = []string{
	`\b(can you|could you|please)\s+(call|contact)\s+me\b`,
	`\b(schedule|book)\s+(a|an)?\s*(call|appointment|meeting)\b`,
	`\bi\s*(want|need|would like)\s+(to\s+)?(schedule|book)\b`,
}
