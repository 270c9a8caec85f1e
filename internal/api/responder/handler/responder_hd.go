package responderHandler

import (
	"ResponderBot/internal/api/responder"
	"ResponderBot/internal/entity"
	contextPkg "ResponderBot/pkg/context"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// SaveDocument replaces the whole response document. Missing global_vars
// or intenciones are coerced to empty maps rather than rejected; only a
// body that is not a JSON object fails.
func (h *ResponderHandler) SaveDocument(c *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(c)
	ctx := contextPkg.FromFiberCtx(c)

	doc := entity.NewResponseDocument()
	if err := c.BodyParser(doc); err != nil {
		h.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Rejected malformed save payload")
		return c.Status(fiber.StatusBadRequest).JSON(responder.SaveDocumentResponse{
			OK:    false,
			Error: "Datos deben ser un objeto JSON",
		})
	}

	stats, err := h.responderService.SaveDocument(ctx, doc)
	if err != nil {
		status := h.errorHandler.StatusFromError(requestID, err, c.Path(), "SaveDocument")
		return c.Status(status).JSON(responder.SaveDocumentResponse{
			OK:    false,
			Error: err.Error(),
		})
	}

	return c.JSON(responder.SaveDocumentResponse{
		OK:      true,
		Message: "Datos guardados correctamente",
		Stats:   stats,
	})
}

// LoadDocument returns the persisted document, defaulting to the empty
// structure on any read or parse failure. It never errors to the caller.
func (h *ResponderHandler) LoadDocument(c *fiber.Ctx) error {
	ctx := contextPkg.FromFiberCtx(c)

	doc := h.responderService.LoadPersisted(ctx)

	return h.errorHandler.HandleSuccess(c, fiber.StatusOK, doc)
}

func (h *ResponderHandler) Debug(c *fiber.Ctx) error {
	ctx := contextPkg.FromFiberCtx(c)

	info := h.responderService.StoreDebug(ctx)

	return h.errorHandler.HandleSuccess(c, fiber.StatusOK, responder.DebugResponse{
		Status:        "online",
		ResponsesJSON: info,
		Endpoints: map[string]string{
			"save":  "POST /save-respuestas",
			"load":  "GET /load-respuestas",
			"debug": "GET /debug",
			"test":  "GET /test/ws",
		},
	})
}
