package logging_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/monieshop/salesight/internal/logging"
)

func TestSetup_Levels(t *testing.T) {
	var buf bytes.Buffer

	logger := logging.Setup(&buf, false, false)
	logger.Debug("hidden")
	logger.Info("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")

	buf.Reset()

	logger = logging.Setup(&buf, true, false)
	logger.Debug("now visible")
	require.Contains(t, buf.String(), "now visible")

	buf.Reset()

	logger = logging.Setup(&buf, false, true)
	logger.Info("suppressed")
	logger.Error("errors pass")
	require.NotContains(t, buf.String(), "suppressed")
	require.Contains(t, buf.String(), "errors pass")
}

func TestSetup_VerboseWinsOverQuiet(t *testing.T) {
	var buf bytes.Buffer

	logger := logging.Setup(&buf, true, true)
	logger.Debug("debug on")
	require.Contains(t, buf.String(), "debug on")
}
