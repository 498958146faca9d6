package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDBFlagOverridesEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env@localhost/dogs")
	envFile = filepath.Join(t.TempDir(), "missing.env")
	dbURL = "postgres://flag@localhost/dogs"
	t.Cleanup(func() { dbURL, envFile = "", ".env" })

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "postgres://flag@localhost/dogs", cfg.RemoteDSN())
}

func TestCommandsRegistered(t *testing.T) {
	for _, path := range [][]string{{"reminders", "run"}, {"reminders", "schedule"}, {"migrate"}} {
		cmd, _, err := rootCmd.Find(path)
		require.NoError(t, err)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}
