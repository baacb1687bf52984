package dmc

import (
	"encoding/json"
	"fmt"
	"os"
)

// Политика отслеживания признака хоуминга для инкрементальных энкодеров.
// На контроллерах без пользовательского поля ZA признак негде хранить,
// поэтому выбор делается явно в конфигурации.
const (
	// HomedTrackingRecord - признак читается из пользовательского поля
	// осевой записи каждый цикл (требует поддержки ZA).
	HomedTrackingRecord = "record"
	// HomedTrackingManual - признак меняют только операции Home/UnHome.
	HomedTrackingManual = "manual"
)

// Conversion - линейное преобразование единиц устройства в физические.
type Conversion struct {
	Scale  float64 `json:"scale"`
	Offset float64 `json:"offset"`
}

// PositionLimits - программные пределы позиции оси в физических единицах.
type PositionLimits struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// AxisConfig описывает одну логическую ось робота.
type AxisConfig struct {
	// Index - аппаратный канал контроллера (0 = ось A).
	Index int `json:"index"`
	// Type - тип сочленения ("prismatic" или "revolute").
	Type string `json:"type"`
	// PositionBitsToSI - пересчет отсчетов энкодера в физические единицы.
	PositionBitsToSI Conversion `json:"position_bits_to_SI"`
	// VoltsToSI - пересчет напряжения аналогового входа в физические единицы.
	VoltsToSI Conversion `json:"volts_to_SI"`
	// IsAbsolute - абсолютный энкодер; такая ось всегда считается приведенной.
	IsAbsolute bool `json:"is_absolute"`
	// HomePos - позиция дома в физических единицах.
	HomePos        float64        `json:"home_pos"`
	PositionLimits PositionLimits `json:"position_limits"`
}

// RobotConfig описывает один робот (группу осей) контроллера.
type RobotConfig struct {
	Name string       `json:"name"`
	Axes []AxisConfig `json:"axes"`
	// HomedTracking - политика признака хоуминга, см. HomedTracking*.
	// Пустое значение означает "record" на моделях с ZA и "manual" иначе.
	HomedTracking string `json:"homed_tracking"`
}

// Config - конфигурация одного контроллера, читается один раз при старте.
type Config struct {
	// Model - номер модели DMC; 0 означает автоопределение по строке ревизии.
	Model uint32 `json:"model"`
	// DRPeriodMs - запрашиваемый период записи данных в миллисекундах.
	DRPeriodMs int `json:"DR_period_ms"`
	Robot      RobotConfig `json:"robot"`
	// SpeedDefault, AccelDefault, DecelDefault - значения по умолчанию в
	// физических единицах, применяются при старте.
	SpeedDefault []float64 `json:"speed_default"`
	AccelDefault []float64 `json:"accel_default"`
	DecelDefault []float64 `json:"decel_default"`
}

// LoadConfig читает и валидирует конфигурацию контроллера из JSON-файла.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults заполняет значения, которые конфигурация может не задавать.
func (c *Config) applyDefaults() {
	if c.DRPeriodMs <= 0 {
		c.DRPeriodMs = 2 // максимальная частота записи данных
	}
}

// Validate проверяет согласованность конфигурации. Ошибки здесь фатальны:
// без корректной раскладки осей интерпретировать запись данных нельзя.
func (c *Config) Validate() error {
	if len(c.Robot.Axes) == 0 {
		return fmt.Errorf("no axes configured")
	}
	channels := make([]int, len(c.Robot.Axes))
	for i, ax := range c.Robot.Axes {
		if ax.PositionBitsToSI.Scale == 0 {
			return fmt.Errorf("axis %d: position_bits_to_SI.scale must be non-zero", i)
		}
		channels[i] = ax.Index
	}
	if _, err := BuildAxisMapping(channels); err != nil {
		return err
	}
	switch c.Robot.HomedTracking {
	case "", HomedTrackingRecord, HomedTrackingManual:
	default:
		return fmt.Errorf("unknown homed_tracking %q", c.Robot.HomedTracking)
	}
	for _, name := range []string{"speed_default", "accel_default", "decel_default"} {
		v := map[string][]float64{
			"speed_default": c.SpeedDefault,
			"accel_default": c.AccelDefault,
			"decel_default": c.DecelDefault,
		}[name]
		if len(v) != 0 && len(v) != len(c.Robot.Axes) {
			return fmt.Errorf("%s: expected %d values, got %d", name, len(c.Robot.Axes), len(v))
		}
	}
	return nil
}

// Channels возвращает список аппаратных каналов в порядке логических осей.
func (c *Config) Channels() []int {
	channels := make([]int, len(c.Robot.Axes))
	for i, ax := range c.Robot.Axes {
		channels[i] = ax.Index
	}
	return channels
}
