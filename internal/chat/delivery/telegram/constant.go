package telegram

const (
	msgWelcome = "Hi! I can answer questions about the uploaded documents, " +
		"or book an appointment for you. Just say \"book appointment\" to get started."
	msgHelp = "Ask me anything about the documents and I'll look up the answer. " +
		"To schedule a call, say something like \"I'd like to book an appointment\" " +
		"and I'll collect your details step by step."
	msgProcessingError = "Something went wrong while processing your message. Please try again."
)
