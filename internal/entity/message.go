package entity

import (
	"strings"

	"ResponderBot/pkg/nlp"
)

type ContentKind uint8

const (
	ContentUnsupported  ContentKind = 0
	ContentConversation ContentKind = 1
	ContentExtendedText ContentKind = 2
)

var ContentKindMap = map[ContentKind]string{
	ContentUnsupported:  "Unsupported",
	ContentConversation: "Conversation",
	ContentExtendedText: "ExtendedText",
}

func (k ContentKind) String() string {
	return ContentKindMap[k]
}

// InboundMessage is the transport-neutral shape of a received chat
// message. Payload carries the raw text for the supported content kinds
// and is empty for ContentUnsupported.
type InboundMessage struct {
	ConversationID string
	SenderID       string
	Kind           ContentKind
	Payload        string
	IsSelfSent     bool
}

// ExtractText resolves the tagged content into lowercased, trimmed plain
// text. Unsupported kinds yield "", which callers treat as "drop the
// message".
func (m InboundMessage) ExtractText() string {
	switch m.Kind {
	case ContentConversation, ContentExtendedText:
		return nlp.CleanText(strings.TrimSpace(m.Payload))
	default:
		return ""
	}
}

type OutboundMessage struct {
	ConversationID string
	Text           string
}

// ConversationEntry is one message in a per-conversation history log.
// History lives only in process memory and is lost on restart.
type ConversationEntry struct {
	Text            string `json:"text"`
	TimestampMillis int64  `json:"timestamp"`
}
