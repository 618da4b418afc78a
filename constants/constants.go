package constants

import (
	"os"
	"strings"
)

const (
	DefaultAddr     = ":8080"
	DefaultLogLevel = "INFO"
)

func GetAddr() string {
	return getEnv("POVEL_ADDR", DefaultAddr)
}

func GetLogLevel() string {
	return strings.ToUpper(getEnv("POVEL_LOG_LEVEL", DefaultLogLevel))
}

// GetLogFile is where JSON logs go in addition to stderr, empty for none.
func GetLogFile() string {
	return os.Getenv("POVEL_LOG_FILE")
}

// GetCorpusDir is searched for <name>.yaml corpora after the built-in ones.
func GetCorpusDir() string {
	return os.Getenv("POVEL_CORPUS_DIR")
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
