package config

import (
	"os"
	"testing"
	"time"

	"drawpoker-server/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("DPS_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("DPS_TURN_TIMEOUT", "45")
	defer clear2()

	config = Config{}

	a := assert.New(t)
	cfg := Instance()
	a.Equal(":6000", cfg.ListenAddr)
	a.Equal(":5080", cfg.HTTPAddr)
	a.EqualValues(500, cfg.StartingChips)
	a.Equal(45*time.Second, cfg.TurnTimeoutDuration())
	a.Equal("debug", cfg.Log.Level)
	a.Equal("json", cfg.Log.Format)

	// ensure that it's only loaded once
	_ = os.Setenv("DPS_TURN_TIMEOUT", "60")
	// ensure we aren't using a pointer
	cfg.TurnTimeout = 1
	cfg = Instance()
	a.Equal(45, cfg.TurnTimeout)
}

func TestLoad_MissingFile(t *testing.T) {
	clear1 := util.SetEnv("DPS_CONFIG_FILE", "testdata/missing.yaml")
	defer clear1()
	clear2 := util.SetEnv("DPS_LOG_DISABLE_ACCESS_LOGS", "true")
	defer clear2()

	require.NoError(t, Load())
	cfg := Instance()

	defaults := DefaultConfig()
	assert.Equal(t, defaults.ListenAddr, cfg.ListenAddr)
	assert.EqualValues(t, 10000, cfg.StartingChips)
	assert.Equal(t, 30*time.Minute, cfg.ReadTimeoutDuration())
	assert.True(t, cfg.Log.DisableAccessLogs)
}

func TestLoad_BadEnvironment(t *testing.T) {
	clear1 := util.SetEnv("DPS_CONFIG_FILE", "testdata/missing.yaml")
	defer clear1()
	clear2 := util.SetEnv("DPS_MAX_IDLE_TURNS", "lots")
	defer clear2()

	assert.Error(t, Load())
}
