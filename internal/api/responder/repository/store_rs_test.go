package responderRepository

import (
	"ResponderBot/internal/entity"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestRepository(t *testing.T) (Repository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "respuestas.json")
	return New(NewFileBackend(path), testLogger()), path
}

func TestLoad_MissingDocumentYieldsEmptyDefault(t *testing.T) {
	repo, _ := newTestRepository(t)

	doc := repo.Load()
	if doc == nil {
		t.Fatal("expected a document, got nil")
	}
	if doc.GlobalVars == nil || doc.Intents == nil {
		t.Errorf("expected initialized maps, got %+v", doc)
	}
	if len(doc.Intents) != 0 {
		t.Errorf("expected an empty document, got %+v", doc.Intents)
	}
}

func TestLoad_MalformedDocumentYieldsEmptyDefault(t *testing.T) {
	repo, path := newTestRepository(t)
	if err := os.WriteFile(path, []byte("{not valid json"), 0o644); err != nil {
		t.Fatalf("failed to write malformed document: %v", err)
	}

	doc := repo.Load()
	if doc == nil || doc.GlobalVars == nil || doc.Intents == nil {
		t.Fatalf("expected an initialized empty document, got %+v", doc)
	}
	if len(doc.Intents) != 0 {
		t.Errorf("expected no intents from a malformed document, got %+v", doc.Intents)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	repo, _ := newTestRepository(t)

	doc := entity.NewResponseDocument()
	doc.GlobalVars["nombre"] = []string{"Ana", "Luis"}
	doc.Intents["saludo"] = entity.Intent{
		Patterns:  []string{"hola", "buenos dias"},
		Templates: []string{"Hola ${nombre}"},
		LocalVars: map[string][]string{"tono": {"formal"}},
	}
	doc.DebugMode = true

	if err := repo.Save(doc); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded := repo.Load()
	if !reflect.DeepEqual(loaded.GlobalVars, doc.GlobalVars) {
		t.Errorf("global vars did not round-trip: %+v", loaded.GlobalVars)
	}
	if !reflect.DeepEqual(loaded.Intents, doc.Intents) {
		t.Errorf("intents did not round-trip: %+v", loaded.Intents)
	}
	if !loaded.DebugMode {
		t.Error("debug flag did not round-trip")
	}
}

func TestSave_NormalizesNilMaps(t *testing.T) {
	repo, path := newTestRepository(t)

	if err := repo.Save(&entity.ResponseDocument{}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved document: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, `"global_vars"`) || !strings.Contains(content, `"intenciones"`) {
		t.Errorf("expected normalized empty objects in output:\n%s", content)
	}
	if strings.Contains(content, "null") {
		t.Errorf("expected no null maps in output:\n%s", content)
	}
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	repo, path := newTestRepository(t)

	if err := repo.Save(entity.NewResponseDocument()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	files, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("failed to list store dir: %v", err)
	}
	for _, f := range files {
		if f.Name() != filepath.Base(path) {
			t.Errorf("unexpected leftover file %q", f.Name())
		}
	}
}

func TestFileBackend_ExistsAndLocation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "respuestas.json")
	backend := NewFileBackend(path)

	if backend.Exists() {
		t.Error("expected exists=false before any write")
	}
	if _, err := backend.Read(); err != ErrDocumentNotFound {
		t.Errorf("expected ErrDocumentNotFound, got %v", err)
	}

	if err := backend.Write([]byte("{}")); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if !backend.Exists() {
		t.Error("expected exists=true after write")
	}
	if backend.Location() != path {
		t.Errorf("expected location %q, got %q", path, backend.Location())
	}
}
