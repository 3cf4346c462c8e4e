package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestSetup(t *testing.T) {
	flush, err := Setup("debug", true)
	require.NoError(t, err)
	require.True(t, zap.L().Core().Enabled(zapcore.DebugLevel))
	flush()
}

func TestSetup_InvalidLevel(t *testing.T) {
	_, err := Setup("loud", false)
	require.Error(t, err)
}
