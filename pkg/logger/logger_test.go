package logger

import (
	"testing"

	"recon_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSetLevel(t *testing.T) {
	SetLevel(&config.Config{Log: config.LogConfig{Level: "warn"}, Server: config.ServerConfig{Mode: "release"}})
	assert.Equal(t, zap.WarnLevel, Level())

	SetLevel(&config.Config{Log: config.LogConfig{Level: "warn"}, Server: config.ServerConfig{Mode: "debug"}})
	assert.Equal(t, zap.DebugLevel, Level())

	SetLevel(&config.Config{Log: config.LogConfig{Level: "bogus"}, Server: config.ServerConfig{Mode: "release"}})
	assert.Equal(t, zap.InfoLevel, Level())
}
