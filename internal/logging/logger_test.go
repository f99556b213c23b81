package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/rulesync/internal/logging"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		level    string
		expected log.Level
	}{
		{"debug level", "debug", log.DebugLevel},
		{"info level", "info", log.InfoLevel},
		{"warn level", "warn", log.WarnLevel},
		{"warning level", "warning", log.WarnLevel},
		{"error level", "error", log.ErrorLevel},
		{"invalid defaults to info", "invalid", log.InfoLevel},
		{"empty defaults to info", "", log.InfoLevel},
		{"case insensitive DEBUG", "DEBUG", log.DebugLevel},
		{"case insensitive Info", "Info", log.InfoLevel},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			logger := logging.New(testCase.level)
			if logger == nil {
				t.Fatal("New returned nil logger")
			}

			if logger.GetLevel() != testCase.expected {
				t.Errorf("expected level %v, got %v", testCase.expected, logger.GetLevel())
			}
		})
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	logger := logging.Default()
	if logger == nil {
		t.Fatal("Default returned nil logger")
	}
}

func TestSetLevel(t *testing.T) {
	// Not parallel because it modifies global state.

	// Save original and restore after test.
	original := logging.Default()
	defer logging.SetDefault(original)

	// Create a fresh logger for testing.
	testLogger := logging.New("info")
	logging.SetDefault(testLogger)

	logging.SetLevel("debug")
	if logging.Default().GetLevel() != log.DebugLevel {
		t.Error("SetLevel to debug failed")
	}

	logging.SetLevel("error")
	if logging.Default().GetLevel() != log.ErrorLevel {
		t.Error("SetLevel to error failed")
	}
}

func TestSetDefault(t *testing.T) {
	// Not parallel because it modifies global state.

	original := logging.Default()
	defer logging.SetDefault(original)

	newLogger := logging.New("error")
	logging.SetDefault(newLogger)

	if logging.Default() != newLogger {
		t.Error("SetDefault did not change the default logger")
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	if got := logging.ParseLevel(" Warning "); got != log.WarnLevel {
		t.Errorf("expected %v, got %v", log.WarnLevel, got)
	}
	if got := logging.ParseLevel("verbose"); got != log.InfoLevel {
		t.Errorf("expected %v, got %v", log.InfoLevel, got)
	}
}

func TestNewWithWriter_Options(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, "debug", logging.WithPrefix("watch"))
	logger.Debug("regenerated")

	if !strings.Contains(buf.String(), "watch") {
		t.Errorf("missing prefix in %q", buf.String())
	}
}

func TestNewWithWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, "info")
	logger.Info("generated", logging.FieldRule, "overview", logging.FieldCategory, "always")
	logger.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "rule=overview") || !strings.Contains(out, "category=always") {
		t.Errorf("missing structured fields in %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message written at info level: %q", out)
	}
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	logger := logging.New("error")
	ctx := logging.WithLogger(context.Background(), logger)

	if logging.FromContext(ctx) != logger {
		t.Error("FromContext did not return the attached logger")
	}
	if logging.FromContext(context.Background()) != logging.Default() {
		t.Error("FromContext without logger should return Default")
	}
}

func TestWithFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := logging.WithLogger(context.Background(), logging.NewWithWriter(&buf, "info"))
	ctx = logging.WithFields(ctx, logging.FieldTool, "cursor")

	logging.FromContext(ctx).Info("records", logging.FieldRecords, 3)

	out := buf.String()
	if !strings.Contains(out, "tool=cursor") || !strings.Contains(out, "records=3") {
		t.Errorf("missing scoped fields in %q", out)
	}
}
