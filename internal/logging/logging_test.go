package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNewQuietByDefault(t *testing.T) {
	log := New(false)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	assert.False(t, log.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewVerboseEnablesDebug(t *testing.T) {
	log := New(true)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}
