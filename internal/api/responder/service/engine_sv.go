package responderService

import (
	"ResponderBot/internal/entity"
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	commandPrefix    = "!"
	fallbackGreeting = "¡Hola! Soy un bot inteligente. ¿En qué puedo ayudarte?"
)

// ProcessMessage runs the per-message pipeline: extract, command
// dispatch or intent match, reply, history append. Nothing thrown inside
// ever escapes; one bad message must not take the engine down or block
// the next one.
func (s *responderService) ProcessMessage(msg entity.InboundMessage) {
	defer func() {
		if rec := recover(); rec != nil {
			s.log.WithFields(logrus.Fields{
				"conversation_id": msg.ConversationID,
				"panic":           rec,
			}).Error("Recovered from message processing failure")
		}
	}()

	if msg.IsSelfSent {
		return
	}

	text := msg.ExtractText()
	if text == "" {
		return
	}

	s.log.WithFields(logrus.Fields{
		"conversation_id": msg.ConversationID,
		"sender_id":       msg.SenderID,
		"kind":            msg.Kind.String(),
		"text":            text,
	}).Info("Inbound message")

	doc := s.Document()

	switch {
	case strings.HasPrefix(text, commandPrefix):
		s.handleCommand(doc, msg.ConversationID, text)

	default:
		if match := s.FindMatchingIntent(doc, text); match != nil {
			s.log.WithFields(logrus.Fields{
				"conversation_id": msg.ConversationID,
				"intent":          match.Name,
				"pattern":         match.Match.Pattern,
				"similarity":      match.Match.Similarity,
			}).Info("Intent matched")

			if response := s.generateResponse(doc, match); response != "" {
				s.send(msg.ConversationID, response)
			}
		} else if strings.Contains(text, "hola") || strings.Contains(text, "buenas") {
			s.send(msg.ConversationID, fallbackGreeting)
		}
	}

	s.history.Append(msg.ConversationID, text, time.Now().UnixMilli())
}

// send emits the reply without waiting for transport acknowledgment. A
// failed delivery is logged and never retried; it rolls nothing back.
func (s *responderService) send(conversationID, text string) {
	out := entity.OutboundMessage{
		ConversationID: conversationID,
		Text:           text,
	}

	go func() {
		if err := s.sender.SendMessage(context.Background(), out.ConversationID, out.Text); err != nil {
			s.log.WithFields(logrus.Fields{
				"conversation_id": out.ConversationID,
				"error":           err.Error(),
			}).Error("Failed to send message")
		}
	}()
}
