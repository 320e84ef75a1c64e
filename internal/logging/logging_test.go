package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	for _, tc := range []struct {
		cfg  Config
		want zapcore.Level
	}{
		{Config{Level: "debug"}, zapcore.DebugLevel},
		{Config{Level: "warn", Format: "json"}, zapcore.WarnLevel},
		{Config{Level: "ERROR"}, zapcore.ErrorLevel},
		{Config{Level: "loud"}, zapcore.InfoLevel},
		{Config{}, zapcore.InfoLevel},
	} {
		log, err := New(tc.cfg)
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(tc.want), "%+v", tc.cfg)
		if tc.want > zapcore.DebugLevel {
			assert.False(t, log.Core().Enabled(tc.want-1), "%+v", tc.cfg)
		}
	}
}
