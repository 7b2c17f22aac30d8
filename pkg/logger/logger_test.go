package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestNewDefaultsToInfoText(t *testing.T) {
	var buf bytes.Buffer
	l := New(env(nil), &buf)
	if l.GetLevel() != logrus.InfoLevel {
		t.Fatalf("level = %v, want info", l.GetLevel())
	}
	if _, ok := l.Formatter.(*logrus.TextFormatter); !ok {
		t.Fatalf("formatter = %T, want text", l.Formatter)
	}
	l.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatal("debug entry written at info level")
	}
}

func TestNewJSONAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(env(map[string]string{"LOG_LEVEL": "debug", "LOG_FORMAT": "JSON"}), &buf)
	l.WithField("seed", 7).Debug("generated")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not json: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "generated" || entry["seed"] != float64(7) {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestNewBadLevelFallsBack(t *testing.T) {
	l := New(env(map[string]string{"LOG_LEVEL": "chatty"}), &bytes.Buffer{})
	if l.GetLevel() != logrus.InfoLevel {
		t.Fatalf("level = %v, want info", l.GetLevel())
	}
}
