package usecase

// Log prefixes
const (
	LogPrefixSubmit = "internal.form.usecase.Submit"
)

// Step prompts
const (
	PromptOpening = "I'd be happy to help you schedule a call! Let me collect some information. First, could you please tell me your full name?"

	PromptNameOK    = "Great! Nice to meet you, %s. Now, could you please provide your email address?"
	PromptNameRetry = "%s. Please provide your full name."

	PromptEmailOK    = "Perfect! Now, please share your phone number so we can reach you."
	PromptEmailRetry = "%s. Please provide a valid email address."

	PromptPhoneOK    = "Great! When would you like us to call you? You can say something like 'tomorrow', 'next Monday', or provide a specific date."
	PromptPhoneRetry = "%s. Please provide a valid phone number."

	PromptDateRetry = "I couldn't understand that date. Please try again with something like 'tomorrow', 'next Monday', or a specific date like '2024-01-15'."

	PromptConfirm = `Perfect! Let me confirm your information:

- Name: %s
- Email: %s
- Phone: %s
- Preferred Call Date: %s

Is this information correct? Please reply with 'yes' to confirm or 'no' to make changes.`

	PromptConfirmRetry = "Please reply with 'yes' to confirm the information is correct, or 'no' if you'd like to make changes."

	PromptRestart = "No problem! Let's start over. Please provide your full name."

	PromptRecovered = "Let's start collecting your information. Please provide your full name."

	PromptCompleted = `Appointment request confirmed!

Thank you, %s! We have successfully recorded your information:

- Name: %s
- Email: %s
- Phone: %s
- Preferred Date: %s

Someone from our team will contact you at %s on or before %s to schedule your call. You should also receive a confirmation email at %s shortly.

Is there anything else I can help you with today?`
)

// Confirmation tokens, matched as whole words only so that e.g.
// "yesterday" is not read as a yes or "incorrect" as a correct.
var (
	affirmativeWords = []string{"yes", "y", "correct", "confirm"}
	negativeWords    = []string{"no", "n", "incorrect", "wrong"}
)

// Display names for progress labels.
var stepNames = map[string]string{
	"name":         "Name",
	"email":        "Email",
	"phone":        "Phone",
	"date":         "Date",
	"confirmation": "Confirmation",
}
