package logging_test

import (
	"path/filepath"
	"testing"

	"ghroast/pkg/utils/logging"

	"github.com/m-mizutani/gt"
)

func TestConfigure(t *testing.T) {
	t.Run("configure with json format to stderr", func(t *testing.T) {
		err := logging.Configure("json", "info", "stderr")
		gt.NoError(t, err)
	})

	t.Run("configure with text format", func(t *testing.T) {
		err := logging.Configure("text", "debug", "stderr")
		gt.NoError(t, err)
	})

	t.Run("dash output means stderr", func(t *testing.T) {
		err := logging.Configure("text", "info", "-")
		gt.NoError(t, err)
	})

	t.Run("configure with file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ghroast.log")
		err := logging.Configure("json", "info", path)
		gt.NoError(t, err)
	})

	t.Run("configure with invalid format returns error", func(t *testing.T) {
		err := logging.Configure("invalid", "info", "stderr")
		gt.Error(t, err)
	})

	t.Run("configure with invalid level returns error", func(t *testing.T) {
		err := logging.Configure("json", "invalid", "stderr")
		gt.Error(t, err)
	})
}

func TestDefault(t *testing.T) {
	logger := logging.Default()
	logger.Info("test message", "key", "value")
}
