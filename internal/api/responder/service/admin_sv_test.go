package responderService

import (
	"ResponderBot/internal/api/responder"
	responderRepository "ResponderBot/internal/api/responder/repository"
	"ResponderBot/internal/entity"
	"ResponderBot/pkg/nlp"
	"context"
	"errors"
	"strings"
	"testing"
)

type failingBackend struct{}

func (failingBackend) Read() ([]byte, error) { return nil, responderRepository.ErrDocumentNotFound }
func (failingBackend) Write([]byte) error    { return errors.New("disk full") }
func (failingBackend) Exists() bool          { return false }
func (failingBackend) Location() string      { return "failing://respuestas.json" }

func TestSaveDocument_SwapsLiveDocument(t *testing.T) {
	svc, _ := newTestService(t, "", newFakeSender(), nil)

	doc := entity.NewResponseDocument()
	doc.GlobalVars["nombre"] = []string{"Ana"}
	doc.Intents["saludo"] = entity.Intent{
		Patterns:  []string{"hola"},
		Templates: []string{"Hola"},
	}

	stats, err := svc.SaveDocument(context.Background(), doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Intents != 1 || stats.GlobalVars != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}

	if result := svc.TestMatch("hola"); !result.Matched {
		t.Error("expected the saved document to serve matching immediately")
	}
}

func TestSaveDocument_WriteFailureKeepsOldDocument(t *testing.T) {
	logger := testLogger()
	repo := responderRepository.New(failingBackend{}, logger)
	svc := New(logger, repo, newFakeSender(), &seqRand{}, nlp.DefaultSimilarityThreshold)

	doc := entity.NewResponseDocument()
	doc.Intents["saludo"] = entity.Intent{
		Patterns:  []string{"hola"},
		Templates: []string{"Hola"},
	}

	if _, err := svc.SaveDocument(context.Background(), doc); !errors.Is(err, responder.ErrStoreWrite) {
		t.Fatalf("expected ErrStoreWrite, got %v", err)
	}

	if result := svc.TestMatch("hola"); result.Matched {
		t.Error("expected the failed save to leave the old document active")
	}
}

func TestLoadPersisted_ReadsStore(t *testing.T) {
	svc, _ := newTestService(t, greetDoc, newFakeSender(), nil)

	doc := svc.LoadPersisted(context.Background())
	if _, ok := doc.Intents["saludo"]; !ok {
		t.Errorf("expected the persisted intent, got %+v", doc.Intents)
	}
}

func TestStoreDebug_MissingDocument(t *testing.T) {
	svc, _ := newTestService(t, "", newFakeSender(), nil)

	info := svc.StoreDebug(context.Background())
	if info.Exists {
		t.Error("expected exists=false for a missing document")
	}
	if info.SizeKB != "0.00" {
		t.Errorf("expected size 0.00, got %q", info.SizeKB)
	}
	if info.ContentPreview != "{}" {
		t.Errorf("expected empty preview, got %q", info.ContentPreview)
	}
}

func TestStoreDebug_ExistingDocument(t *testing.T) {
	svc, _ := newTestService(t, greetDoc, newFakeSender(), nil)

	info := svc.StoreDebug(context.Background())
	if !info.Exists {
		t.Fatal("expected exists=true")
	}
	if info.SizeKB == "0.00" {
		t.Errorf("expected a non-zero size, got %q", info.SizeKB)
	}
	if !strings.Contains(info.ContentPreview, "intenciones") {
		t.Errorf("expected the preview to show document content, got %q", info.ContentPreview)
	}
	if !strings.HasSuffix(info.ContentPreview, "...") {
		t.Errorf("expected a truncation marker, got %q", info.ContentPreview)
	}
}
