package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"document-chatbot/internal/appointment"
	"document-chatbot/internal/chat"
	tgDelivery "document-chatbot/internal/chat/delivery/telegram"
	"document-chatbot/internal/document"
	"document-chatbot/internal/middleware"
	"document-chatbot/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	chatUC chat.UseCase
	docUC  document.UseCase
	apptUC appointment.UseCase

	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	ChatUC        chat.UseCase
	DocumentUC    document.UseCase
	AppointmentUC appointment.UseCase

	// Optional; nil disables the Telegram webhook route.
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              cfg.Middleware,
		chatUC:          cfg.ChatUC,
		docUC:           cfg.DocumentUC,
		apptUC:          cfg.AppointmentUC,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat usecase is required")
	}
	if srv.docUC == nil {
		return errors.New("document usecase is required")
	}
	if srv.apptUC == nil {
		return errors.New("appointment usecase is required")
	}
	return nil
}
