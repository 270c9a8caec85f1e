package responderHandler

import (
	responderService "ResponderBot/internal/api/responder/service"
	"ResponderBot/internal/middleware"
	"ResponderBot/pkg/handlerUtil"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type ResponderHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	responderService responderService.IResponderService
	errorHandler     *handlerUtil.ErrorHandler
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	rs responderService.IResponderService,
) *ResponderHandler {
	return &ResponderHandler{
		log:              log,
		validator:        validator,
		middleware:       middleware,
		responderService: rs,
		errorHandler:     handlerUtil.New(log),
	}
}

// Start registers the admin panel surface. Paths are fixed by the panel
// contract, so routes sit on the app root rather than a versioned group.
func (h *ResponderHandler) Start(srv fiber.Router) {
	srv.Post("/save-respuestas", h.middleware.NewRateLimiter, h.middleware.NewTokenMiddleware, h.SaveDocument)
	srv.Get("/load-respuestas", h.middleware.NewRateLimiter, h.LoadDocument)
	srv.Get("/debug", h.Debug)

	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	test := srv.Group("/test")
	test.Use("/ws", wsMiddleware)
	test.Get("/ws", websocket.New(h.handleTestWebSocket))
}
