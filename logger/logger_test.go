package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("info", "json", &buf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	log.WithField("score", 3).Info("turn resolved")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected a JSON line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "turn resolved" {
		t.Errorf("Expected msg field, got %v", entry["msg"])
	}
	if entry["score"] != float64(3) {
		t.Errorf("Expected score field 3, got %v", entry["score"])
	}
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("warn", "text", &buf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if log.GetLevel() != logrus.WarnLevel {
		t.Errorf("Expected warn level, got %s", log.GetLevel())
	}

	log.Info("hidden")
	log.Warn("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("Info entry must be filtered at warn level")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("Warn entry must be written")
	}
}

func TestNew_Errors(t *testing.T) {
	if _, err := New("loud", "text", &bytes.Buffer{}); err == nil {
		t.Error("Expected an error for an unknown level")
	}
	if _, err := New("info", "xml", &bytes.Buffer{}); err == nil {
		t.Error("Expected an error for an unknown format")
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic or write anywhere
	Discard().WithField("k", "v").Error("dropped")
}
