// Package validate holds the pure input validators used by the
// conversational appointment form. Each validator returns a Result
// carrying both a human-readable message and, on success, the
// normalized value to store. Callers must never parse the message.
package validate

import (
	"regexp"
	"strings"
)

// Result is the outcome of a single validation.
type Result struct {
	Valid      bool
	Message    string
	Normalized string // canonical value to store; empty when invalid
}

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRe = regexp.MustCompile(`[\s\-().]+`)
)

// Name checks that the input is at least two characters of ASCII
// letters and spaces. The normalized value is the title-cased name.
func Name(name string) Result {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 2 {
		return Result{Message: "Name must be at least 2 characters long"}
	}
	if !nameRe.MatchString(trimmed) {
		return Result{Message: "Name should only contain letters and spaces"}
	}
	return Result{
		Valid:      true,
		Message:    "Valid name",
		Normalized: titleCase(trimmed),
	}
}

// Email checks the input against a basic local@domain.tld pattern with
// a TLD of two or more letters. No MX or DNS lookups are performed.
// The normalized value is the lower-cased address.
func Email(email string) Result {
	trimmed := strings.TrimSpace(email)
	if !emailRe.MatchString(trimmed) {
		return Result{Message: "Invalid email: does not match email format"}
	}
	return Result{
		Valid:      true,
		Message:    "Valid email",
		Normalized: strings.ToLower(trimmed),
	}
}

// Phone strips whitespace, hyphens, parentheses and dots, then requires
// the remainder to be all digits with at least 10 of them. The
// normalized value is the cleaned digit string.
func Phone(phone string) Result {
	cleaned := phoneRe.ReplaceAllString(strings.TrimSpace(phone), "")
	if cleaned == "" || !isAllDigits(cleaned) || len(cleaned) < 10 {
		return Result{Message: "Invalid phone number"}
	}
	return Result{
		Valid:      true,
		Message:    "Valid phone number: " + cleaned,
		Normalized: cleaned,
	}
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// titleCase upper-cases the first letter of each space-separated word
// and lower-cases the rest, e.g. "jOHN smith" -> "John Smith".
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		lower := strings.ToLower(w)
		words[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(words, " ")
}
