package wordview

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

func TestDefaultViewConfig(t *testing.T) {
	config := defaultViewConfig()

	t.Run("signature disabled by default", func(t *testing.T) {
		if config.withSignature {
			t.Error("Expected withSignature to be false by default")
		}
	})

	t.Run("logger set by default", func(t *testing.T) {
		if config.logger == nil {
			t.Error("Expected a default logger")
		}
	})
}

func TestWithSignature(t *testing.T) {
	config := defaultViewConfig()
	WithSignature()(config)

	if !config.withSignature {
		t.Error("Expected withSignature to be true")
	}
}

func TestWithLogger(t *testing.T) {
	t.Run("sets logger", func(t *testing.T) {
		logger, _ := logtest.NewNullLogger()
		config := defaultViewConfig()
		WithLogger(logger)(config)

		if config.logger != logrus.FieldLogger(logger) {
			t.Error("Expected the provided logger")
		}
	})

	t.Run("nil restores the default", func(t *testing.T) {
		config := defaultViewConfig()
		WithLogger(nil)(config)

		if config.logger == nil {
			t.Error("Expected a non-nil logger")
		}
	})
}

func TestMultipleOptions(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	view := NewView(CalldataFromHex("a9059cbb"), WithSignature(), WithLogger(logger))

	if view.SignatureHex() != "a9059cbb" {
		t.Errorf("Expected a9059cbb, got %s", view.SignatureHex())
	}

	view.Clear(3)
	if len(hook.AllEntries()) != 1 {
		t.Errorf("Expected 1 log entry, got %d", len(hook.AllEntries()))
	}
}
