package responderService

import (
	"context"

	"github.com/sirupsen/logrus"
)

// logSender is the dry-run transport used when WhatsApp is disabled:
// outbound messages land in the log instead of a chat.
type logSender struct {
	log *logrus.Logger
}

func NewLogSender(log *logrus.Logger) Sender {
	return &logSender{log: log}
}

func (s *logSender) SendMessage(_ context.Context, conversationID, message string) error {
	s.log.WithFields(logrus.Fields{
		"conversation_id": conversationID,
		"text":            message,
	}).Info("Outbound message (dry run)")
	return nil
}
