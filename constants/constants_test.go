package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	t.Setenv("POVEL_ADDR", "")
	t.Setenv("POVEL_LOG_LEVEL", "")

	assert := assert.New(t)
	assert.Equal(DefaultAddr, GetAddr())
	assert.Equal("INFO", GetLogLevel())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("POVEL_ADDR", ":9999")
	t.Setenv("POVEL_LOG_LEVEL", "debug")
	t.Setenv("POVEL_CORPUS_DIR", "/tmp/corpora")

	assert := assert.New(t)
	assert.Equal(":9999", GetAddr())
	assert.Equal("DEBUG", GetLogLevel())
	assert.Equal("/tmp/corpora", GetCorpusDir())
}
