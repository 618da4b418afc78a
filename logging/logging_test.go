package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(slog.LevelWarn, ParseLevel("WARNING"))
	assert.Equal(slog.LevelError, ParseLevel("error"))
	assert.Equal(slog.LevelInfo, ParseLevel("nonsense"))
}

func TestSetupWithWritersFansOut(t *testing.T) {
	var text, js bytes.Buffer
	logger := SetupWithWriters(&text, &js, slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("induced clock", "period", 4)

	assert := assert.New(t)
	assert.Contains(text.String(), "induced clock")
	assert.NotContains(text.String(), "hidden")

	var record map[string]any
	assert.NoError(json.Unmarshal(js.Bytes(), &record))
	assert.Equal("induced clock", record["msg"])
	assert.Equal(4.0, record["period"])
}

func TestSetupWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "povel.log")
	logger, cleanup := Setup(path, slog.LevelInfo)
	logger.Info("hello")

	assert := assert.New(t)
	assert.NoError(cleanup())
	dat, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Contains(string(dat), `"msg":"hello"`)
}
