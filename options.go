package wordview

import (
	"io"

	"github.com/sirupsen/logrus"
)

// ViewOption configures a View.
type ViewOption func(*viewConfig)

// viewConfig holds configuration for NewView.
type viewConfig struct {
	withSignature bool
	logger        logrus.FieldLogger
}

// defaultViewConfig returns the default view configuration.
func defaultViewConfig() *viewConfig {
	return &viewConfig{
		withSignature: false,
		logger:        discardLogger(),
	}
}

// WithSignature treats the first 4 bytes of the calldata as a function
// selector. Without it the whole buffer is split into words.
func WithSignature() ViewOption {
	return func(c *viewConfig) {
		c.withSignature = true
	}
}

// WithLogger sets a logger that receives a Debug entry each time the View
// substitutes input: a clamped index, a zero selector or a synthesized word.
// A nil logger restores the default, which discards everything.
func WithLogger(logger logrus.FieldLogger) ViewOption {
	return func(c *viewConfig) {
		if logger == nil {
			logger = discardLogger()
		}
		c.logger = logger
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
