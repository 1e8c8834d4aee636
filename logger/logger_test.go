package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitLogger(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.log")
	cfg := &Config{
		Level:      "DEBUG",
		Filename:   filename,
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
	}

	log, err := InitLogger(cfg)
	require.NoError(t, err)
	assert.Same(t, log, zap.L())

	zap.L().Info("test log message")
	Sync()

	_, err = os.Stat(filename)
	assert.NoError(t, err)
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	_, err := InitLogger(&Config{Level: "INVALID", Filename: filepath.Join(t.TempDir(), "x.log")})
	assert.Error(t, err)
}
