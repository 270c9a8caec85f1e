package responderService

import (
	responderRepository "ResponderBot/internal/api/responder/repository"
	"ResponderBot/internal/entity"
	"ResponderBot/pkg/nlp"
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

const greetDoc = `{
  "global_vars": {},
  "intenciones": {
    "saludo": {
      "patterns": ["hola"],
      "plantilla": ["Hola ${nombre}"],
      "variables": {
        "nombre": ["Mundo"]
      }
    }
  }
}`

// seqRand replays a fixed sequence so template and variable draws are
// deterministic in tests.
type seqRand struct {
	mu     sync.Mutex
	values []int
	pos    int
}

func (r *seqRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.pos%len(r.values)]
	r.pos++
	return v % n
}

type fakeSender struct {
	ch chan entity.OutboundMessage
}

func newFakeSender() *fakeSender {
	return &fakeSender{ch: make(chan entity.OutboundMessage, 64)}
}

func (f *fakeSender) SendMessage(_ context.Context, conversationID, message string) error {
	f.ch <- entity.OutboundMessage{ConversationID: conversationID, Text: message}
	return nil
}

func (f *fakeSender) wait(t *testing.T) entity.OutboundMessage {
	t.Helper()
	select {
	case msg := <-f.ch:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for an outbound message")
		return entity.OutboundMessage{}
	}
}

func (f *fakeSender) expectSilence(t *testing.T) {
	t.Helper()
	select {
	case msg := <-f.ch:
		t.Fatalf("unexpected outbound message: %q", msg.Text)
	case <-time.After(100 * time.Millisecond):
	}
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// newTestService builds a service over a file-backed store in a temp
// dir, seeded with docJSON when non-empty. The document path is returned
// so tests can rewrite the file and exercise reloads.
func newTestService(t *testing.T, docJSON string, sender Sender, rand RandSource) (IResponderService, string) {
	t.Helper()

	logger := testLogger()
	path := filepath.Join(t.TempDir(), "respuestas.json")
	if docJSON != "" {
		if err := os.WriteFile(path, []byte(docJSON), 0o644); err != nil {
			t.Fatalf("failed to seed document: %v", err)
		}
	}

	repo := responderRepository.New(responderRepository.NewFileBackend(path), logger)
	if rand == nil {
		rand = &seqRand{}
	}

	return New(logger, repo, sender, rand, nlp.DefaultSimilarityThreshold), path
}

func conversationMsg(conversationID, text string) entity.InboundMessage {
	return entity.InboundMessage{
		ConversationID: conversationID,
		SenderID:       "tester@s.whatsapp.net",
		Kind:           entity.ContentConversation,
		Payload:        text,
	}
}
