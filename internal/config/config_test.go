package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"holdem/internal/util"
	"holdem/pkg/playable/poker/texasholdem"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("HOLDEM_TABLE_BIG_BLIND", "100")
	defer clear2()

	a := assert.New(t)
	config = Config{}
	cfg := Instance()
	a.Equal(6, cfg.Table.Seats)
	a.Equal(10000, cfg.Table.StartingStack, "defaults fill in what the file leaves out")
	a.Equal(25, cfg.Table.SmallBlind)
	a.Equal(100, cfg.Table.BigBlind)
	a.Equal(5, cfg.Table.Ante)
	a.Equal("debug", cfg.Log.Level)
	a.Equal("", cfg.Log.Format)
	a.Equal(int64(42), cfg.Seed)

	// ensure that it's only loaded once
	_ = os.Setenv("HOLDEM_TABLE_BIG_BLIND", "200")
	// ensure we aren't using a pointer
	cfg.Table.BigBlind = 1
	cfg = Instance()
	a.Equal(100, cfg.Table.BigBlind)
}

func TestDefaults(t *testing.T) {
	clear1 := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/missing.yaml")
	defer clear1()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.Equal(DefaultConfig(), cfg.withoutLoaded())
	a.Equal(texasholdem.DefaultOptions(), cfg.GameOptions())
}

func TestLoad_invalidEnv(t *testing.T) {
	clear1 := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/missing.yaml")
	defer clear1()
	clear2 := util.SetEnv("HOLDEM_SEED", "not-a-number")
	defer clear2()

	assert.Error(t, Load())
}

func TestConfig_GameOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Table.Seats = 9
	cfg.Seed = 7

	opts := cfg.GameOptions()
	assert.Equal(t, 9, opts.Seats)
	assert.Equal(t, int64(7), opts.Seed)
}

func (c Config) withoutLoaded() Config {
	c.loaded = false
	return c
}
