package commands

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clierrors "github.com/thoreinstein/appdirs/internal/errors"
	"github.com/thoreinstein/appdirs/internal/logging"
)

func TestSetupLoggingVerbosity(t *testing.T) {
	origVerbosity, origQuiet := verbosity, quiet
	t.Cleanup(func() { verbosity, quiet = origVerbosity, origQuiet })

	tests := []struct {
		name      string
		verbosity int
		wantLevel slog.Level
	}{
		{"default", 0, slog.LevelWarn},
		{"verbose", 1, slog.LevelInfo},
		{"debug", 2, slog.LevelDebug},
		{"trace", 3, logging.LevelTrace},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = tt.verbosity
			quiet = false
			require.NoError(t, setupLogging())

			logger := slog.Default()
			assert.True(t, logger.Enabled(context.Background(), tt.wantLevel),
				"expected level %v to be enabled", tt.wantLevel)
			if tt.wantLevel > logging.LevelTrace {
				assert.False(t, logger.Enabled(context.Background(), tt.wantLevel-4),
					"expected level %v to be disabled", tt.wantLevel-4)
			}
		})
	}
}

func TestSetupLoggingQuiet(t *testing.T) {
	origVerbosity, origQuiet := verbosity, quiet
	t.Cleanup(func() { verbosity, quiet = origVerbosity, origQuiet })

	verbosity = 0
	quiet = true
	require.NoError(t, setupLogging())

	logger := slog.Default()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelError))
}

func TestSetupLoggingQuietAndVerboseConflict(t *testing.T) {
	origVerbosity, origQuiet := verbosity, quiet
	t.Cleanup(func() { verbosity, quiet = origVerbosity, origQuiet })

	verbosity = 1
	quiet = true
	err := setupLogging()
	require.Error(t, err)

	var exitErr *clierrors.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, clierrors.ExitUser, exitErr.Code)
}
