package config

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func TestHealthCheck_ReportsWhatsappStatus(t *testing.T) {
	t.Setenv("WHATSAPP_ENABLED", "false")
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("RESPONSES_PATH", filepath.Join(t.TempDir(), "respuestas.json"))

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	server, err := NewServer(
		WithFiber(NewFiber(logger)),
		WithLogger(logger),
		WithValidator(NewValidator()),
		WithMiddleware(),
		WithS3Client(),
		WithWhatsappClient(),
	)
	if err != nil {
		t.Fatalf("failed to build server: %v", err)
	}

	server.RegisterHandler()

	resp, err := server.engine.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}

	var health map[string]string
	if err := json.Unmarshal(body, &health); err != nil {
		t.Fatalf("failed to decode %q: %v", body, err)
	}
	if health["whatsapp"] != "disabled" {
		t.Errorf("expected whatsapp status %q, got %q", "disabled", health["whatsapp"])
	}
}

func TestSimilarityThreshold_FromEnv(t *testing.T) {
	cases := map[string]float64{
		"":        0.6,
		"0.75":    0.75,
		"1.5":     0.6,
		"0":       0.6,
		"not-num": 0.6,
	}
	for raw, want := range cases {
		t.Setenv("SIMILARITY_THRESHOLD", raw)
		if got := similarityThreshold(); got != want {
			t.Errorf("similarityThreshold() with %q = %f, want %f", raw, got, want)
		}
	}
}
