package common

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/lni/dragonboat/v4/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]logger.LogLevel{
		"debug":   logger.DEBUG,
		"INFO":    logger.INFO,
		"warn":    logger.WARNING,
		"Warning": logger.WARNING,
		"error":   logger.ERROR,
	}
	for input, expected := range tests {
		lvl, err := ParseLogLevel(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, lvl, input)
	}

	_, err := ParseLogLevel("verbose")
	assert.Error(t, err)
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := &pKVLogger{
		name:   "persist",
		level:  logger.WARNING,
		logger: log.New(&buf, "", 0),
	}

	l.Debugf("debug %d", 1)
	l.Infof("info %d", 2)
	assert.Empty(t, buf.String())

	l.Warningf("warn %d", 3)
	l.Errorf("error %d", 4)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "WARN  | persist    | warn 3", lines[0])
	assert.Equal(t, "ERROR | persist    | error 4", lines[1])

	buf.Reset()
	l.SetLevel(logger.DEBUG)
	l.Debugf("now visible")
	assert.Contains(t, buf.String(), "DEBUG | persist    | now visible")
}

func TestInitLoggers(t *testing.T) {
	require.NoError(t, InitLoggers("info"))
	require.NoError(t, InitLoggers("debug"))
	assert.Error(t, InitLoggers("loud"))
}

func TestWriteMetrics(t *testing.T) {
	StoreReads.Inc()

	var buf bytes.Buffer
	WriteMetrics(&buf)
	assert.Contains(t, buf.String(), "pkv_store_reads_total")
}
