package whatsapp

import (
	"ResponderBot/database/postgres"
	"ResponderBot/internal/entity"
	"context"
	"fmt"
	"sync"
	"time"

	"go.mau.fi/whatsmeow"
	waProto "go.mau.fi/whatsmeow/binary/proto"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	waLog "go.mau.fi/whatsmeow/util/log"
	"google.golang.org/protobuf/proto"
)

// MessageHandler receives every inbound message after it has been mapped
// into the transport-neutral shape. Self-sent messages are filtered out
// before the handler runs.
type MessageHandler func(msg entity.InboundMessage)

type IWhatsappClient interface {
	SendMessage(ctx context.Context, conversationID, message string) error
	OnMessage(handler MessageHandler)
	Disconnect() error
	IsConnected() bool
}

type whatsappClient struct {
	client *whatsmeow.Client

	mu      sync.RWMutex
	handler MessageHandler
}

func New() (IWhatsappClient, error) {
	ctx := context.Background()

	db, err := postgres.New()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	dbLog := waLog.Stdout("Database", "INFO", true)
	container := sqlstore.NewWithDB(db.DB, "postgres", dbLog)
	if err := container.Upgrade(ctx); err != nil {
		return nil, fmt.Errorf("failed to migrate session store: %w", err)
	}

	deviceStore, err := container.GetFirstDevice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get device store: %w", err)
	}

	client := whatsmeow.NewClient(deviceStore, waLog.Stdout("Client", "INFO", true))

	w := &whatsappClient{client: client}

	connected := make(chan bool)
	client.AddEventHandler(func(evt interface{}) {
		switch e := evt.(type) {
		case *events.Connected:
			select {
			case connected <- true:
			default:
			}
		case *events.Message:
			w.dispatchMessage(e)
		}
	})

	if client.Store.ID == nil {
		qrChan, _ := client.GetQRChannel(context.Background())
		if err := client.Connect(); err != nil {
			return nil, fmt.Errorf("failed to connect: %w", err)
		}

		go func() {
			for evt := range qrChan {
				if evt.Event == "code" {
					fmt.Println("QR Code:", evt.Code)
				}
			}
		}()
	} else {
		if err := client.Connect(); err != nil {
			return nil, fmt.Errorf("failed to connect: %w", err)
		}
	}

	select {
	case <-connected:
		fmt.Println("WhatsApp connected")
	case <-time.After(60 * time.Second):
		return nil, fmt.Errorf("connection timeout")
	}

	return w, nil
}

func (w *whatsappClient) OnMessage(handler MessageHandler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handler = handler
}

func (w *whatsappClient) dispatchMessage(evt *events.Message) {
	w.mu.RLock()
	handler := w.handler
	w.mu.RUnlock()

	if handler == nil || evt.Message == nil || evt.Info.IsFromMe {
		return
	}

	inbound := entity.InboundMessage{
		ConversationID: evt.Info.Chat.String(),
		SenderID:       evt.Info.Sender.String(),
		IsSelfSent:     evt.Info.IsFromMe,
	}

	switch {
	case evt.Message.GetConversation() != "":
		inbound.Kind = entity.ContentConversation
		inbound.Payload = evt.Message.GetConversation()
	case evt.Message.GetExtendedTextMessage().GetText() != "":
		inbound.Kind = entity.ContentExtendedText
		inbound.Payload = evt.Message.GetExtendedTextMessage().GetText()
	default:
		inbound.Kind = entity.ContentUnsupported
	}

	handler(inbound)
}

func (w *whatsappClient) SendMessage(ctx context.Context, conversationID, message string) error {
	jid, err := types.ParseJID(conversationID)
	if err != nil {
		return fmt.Errorf("invalid conversation id %q: %w", conversationID, err)
	}

	waMsg := &waProto.Message{
		Conversation: proto.String(message),
	}

	_, err = w.client.SendMessage(ctx, jid, waMsg)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

func (w *whatsappClient) Disconnect() error {
	w.client.Disconnect()
	return nil
}

func (w *whatsappClient) IsConnected() bool {
	return w.client.IsConnected()
}
