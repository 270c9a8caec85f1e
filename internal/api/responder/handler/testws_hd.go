package responderHandler

import (
	"ResponderBot/internal/api/responder"
	"time"

	"github.com/gofiber/websocket/v2"
)

// handleTestWebSocket is the admin panel's live test box: every frame is
// a {"text": ...} probe, answered with the match result and the reply
// that would have been sent. No real message goes out.
func (h *ResponderHandler) handleTestWebSocket(c *websocket.Conn) {
	h.log.Info("Match test WebSocket client connected")
	defer h.log.Info("Match test WebSocket client disconnected")

	maxReadTimeout := 60 * time.Second

	for {
		if err := c.SetReadDeadline(time.Now().Add(maxReadTimeout)); err != nil {
			h.log.Errorf("Error setting read deadline: %v", err)
			break
		}

		var req responder.TestMatchRequest
		if err := c.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Errorf("Match test WebSocket error: %v", err)
			} else {
				h.log.Info("Match test WebSocket connection closed")
			}
			break
		}

		if err := h.validator.Struct(req); err != nil {
			if writeErr := c.WriteJSON(map[string]string{"error": "text is required"}); writeErr != nil {
				h.log.Errorf("Error sending error response: %v", writeErr)
				break
			}
			continue
		}

		result := h.responderService.TestMatch(req.Text)

		if err := c.WriteJSON(result); err != nil {
			h.log.Errorf("Error writing JSON response: %v", err)
			break
		}
	}
}
