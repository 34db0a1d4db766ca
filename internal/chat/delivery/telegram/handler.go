package telegram

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"document-chatbot/internal/chat"
	"document-chatbot/internal/model"
	pkgResponse "document-chatbot/pkg/response"
	pkgTelegram "document-chatbot/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook
// updates. It responds with HTTP 200 immediately and processes the
// message in a background goroutine: Telegram expects a response within
// a few seconds, but the QA path can take longer.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message

	go func() {
		// Detach from the request context, which is cancelled once the
		// webhook response is sent.
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, msgProcessingError)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	switch msg.Text {
	case "/start":
		return h.bot.SendMessage(ctx, msg.Chat.ID, msgWelcome)
	case "/help":
		return h.bot.SendMessage(ctx, msg.Chat.ID, msgHelp)
	}

	sc := model.Scope{
		ConversationID: fmt.Sprintf("telegram_%d", msg.Chat.ID),
		Username:       userName(msg),
	}
	if msg.From != nil {
		sc.UserID = fmt.Sprintf("telegram_%d", msg.From.ID)
	}

	output, err := h.uc.Respond(ctx, sc, chat.RespondInput{
		ConversationID: sc.ConversationID,
		Message:        msg.Text,
	})
	if err != nil {
		return err
	}

	reply := output.Reply
	if output.Completed && output.CalendarLink != "" {
		reply += fmt.Sprintf("\n\nCalendar event: %s", output.CalendarLink)
	}

	return h.bot.SendMessage(ctx, msg.Chat.ID, reply)
}

func userName(msg *pkgTelegram.Message) string {
	if msg.From == nil {
		return ""
	}
	return msg.From.Username
}
