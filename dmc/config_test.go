package dmc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iwtcode/galilAdapter/dmc/model"
)

func TestConfigValidate(t *testing.T) {
	cfg := testConfig(model.DMC4000, []int{0, 1})
	require.NoError(t, cfg.Validate())

	cfg = testConfig(model.DMC4000, nil)
	require.Error(t, cfg.Validate())

	cfg = testConfig(model.DMC4000, []int{0, 0})
	require.ErrorIs(t, cfg.Validate(), ErrDuplicateChannel)

	cfg = testConfig(model.DMC4000, []int{9})
	require.ErrorIs(t, cfg.Validate(), ErrChannelOutOfRange)

	cfg = testConfig(model.DMC4000, []int{0})
	cfg.Robot.Axes[0].PositionBitsToSI.Scale = 0
	require.Error(t, cfg.Validate())

	cfg = testConfig(model.DMC4000, []int{0})
	cfg.Robot.HomedTracking = "sometimes"
	require.Error(t, cfg.Validate())

	cfg = testConfig(model.DMC4000, []int{0, 1})
	cfg.SpeedDefault = []float64{0.1}
	require.Error(t, cfg.Validate())
}

func TestConfigDefaultPeriod(t *testing.T) {
	// Validate только проверяет и не меняет конфигурацию; период по
	// умолчанию подставляет applyDefaults.
	cfg := testConfig(model.DMC4000, []int{0})
	cfg.DRPeriodMs = 0
	require.NoError(t, cfg.Validate())
	require.Equal(t, 0, cfg.DRPeriodMs)

	cfg.applyDefaults()
	require.Equal(t, 2, cfg.DRPeriodMs)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "galil.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"model": 4000,
		"DR_period_ms": 4,
		"robot": {
			"name": "xy-stage",
			"homed_tracking": "record",
			"axes": [
				{"index": 0, "type": "prismatic",
				 "position_bits_to_SI": {"scale": 4096, "offset": -1500},
				 "home_pos": 0.1,
				 "position_limits": {"lower": -0.5, "upper": 0.5}},
				{"index": 2, "type": "revolute",
				 "position_bits_to_SI": {"scale": 1000},
				 "is_absolute": true}
			]
		},
		"speed_default": [0.05, 0.2]
	}`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, uint32(4000), cfg.Model)
	require.Equal(t, 4, cfg.DRPeriodMs)
	require.Equal(t, "xy-stage", cfg.Robot.Name)
	require.Equal(t, HomedTrackingRecord, cfg.Robot.HomedTracking)
	require.Equal(t, []int{0, 2}, cfg.Channels())
	require.Equal(t, 4096.0, cfg.Robot.Axes[0].PositionBitsToSI.Scale)
	require.Equal(t, -1500.0, cfg.Robot.Axes[0].PositionBitsToSI.Offset)
	require.True(t, cfg.Robot.Axes[1].IsAbsolute)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
