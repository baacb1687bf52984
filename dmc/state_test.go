package dmc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnitConversionRoundTrip(t *testing.T) {
	cal := Calibration{CountsPerUnit: 4096, Offset: -1500}

	for _, v := range []float64{0, 1, -1, 0.25, 123.456, -987.654} {
		counts := UnitsToCounts(v, cal)
		back := CountsToUnits(counts, cal)
		// Округление до целого отсчета: ошибка не более половины отсчета.
		require.InDelta(t, v, back, 0.5/cal.CountsPerUnit, "value %v", v)
	}

	require.Equal(t, int64(-1500), UnitsToCounts(0, cal))
	require.Equal(t, float64(0), CountsToUnits(-1500, cal))
}

func TestProjectAxisFlags(t *testing.T) {
	cal := Calibration{CountsPerUnit: 1000}
	pol := Polarity{LimitActiveLow: true}
	prev := AxisState{StopCode: SCRunning}

	raw := &RawAxisSample{
		Status:   StatusMotorMoving,
		Switches: SwitchFwdLimit | SwitchHome,
		StopCode: SCRevLim,
		Pos:      2500,
		RefPos:   3000,
		Vel:      -500,
		Torque:   32767,
	}
	st := projectAxis(raw, &prev, cal, pol, false, false, 0, Conversion{})

	require.InDelta(t, 2.5, st.Position, 1e-9)
	require.InDelta(t, 3.0, st.SetpointPos, 1e-9)
	require.InDelta(t, -0.5, st.Velocity, 1e-9)
	require.InDelta(t, 9.9982, st.SetpointTorq, 1e-6)
	require.True(t, st.Moving)
	require.False(t, st.MotorOff)
	require.True(t, st.StopCodeDelta)
	require.True(t, st.SoftRevLimit)
	require.False(t, st.SoftFwdLimit)

	// Активный низкий уровень: установленный бит означает "не нажат".
	require.False(t, st.HardFwdLimit)
	require.True(t, st.HardRevLimit)
	require.True(t, st.HomeSwitch)

	// Без инверсии трактовка битов обратная.
	st = projectAxis(raw, &prev, cal, Polarity{}, false, false, 0, Conversion{})
	require.True(t, st.HardFwdLimit)
	require.False(t, st.HardRevLimit)
	require.True(t, st.HomeSwitch)
}

func TestProjectAxisHomedSources(t *testing.T) {
	cal := Calibration{CountsPerUnit: 1000}
	raw := &RawAxisSample{UserVar: 1}

	// Абсолютный энкодер приведен всегда.
	st := projectAxis(raw, &AxisState{}, Calibration{CountsPerUnit: 1000, Absolute: true}, Polarity{}, true, true, 0, Conversion{})
	require.True(t, st.Homed)

	// Отслеживание по записи: признак читается из пользовательского поля.
	st = projectAxis(raw, &AxisState{}, cal, Polarity{}, true, true, 0, Conversion{})
	require.True(t, st.Homed)
	st = projectAxis(&RawAxisSample{}, &AxisState{Homed: true}, cal, Polarity{}, true, true, 0, Conversion{})
	require.False(t, st.Homed)

	// Ручное отслеживание: признак наследуется из предыдущего состояния.
	st = projectAxis(raw, &AxisState{Homed: true}, cal, Polarity{}, true, false, 0, Conversion{})
	require.True(t, st.Homed)
	st = projectAxis(raw, &AxisState{}, cal, Polarity{}, true, false, 0, Conversion{})
	require.False(t, st.Homed)
}

func TestProjectAxisAnalogValue(t *testing.T) {
	cal := Calibration{CountsPerUnit: 1000}
	bitsToVolts := 20.0 / 65535.0
	conv := Conversion{Scale: 2.0, Offset: 1.0}

	raw := &RawAxisSample{AnalogIn: 65535}
	st := projectAxis(raw, &AxisState{}, cal, Polarity{}, false, false, bitsToVolts, conv)
	require.InDelta(t, (20.0-1.0)/2.0, st.AnalogValue, 1e-9)

	// Нулевой масштаб означает, что вход не сконфигурирован.
	st = projectAxis(raw, &AxisState{}, cal, Polarity{}, false, false, bitsToVolts, Conversion{})
	require.Equal(t, 0.0, st.AnalogValue)
	require.Equal(t, uint16(65535), st.AnalogIn)
}

func TestAggregate(t *testing.T) {
	rec := &Record{SampleNumber: 7, HasAmpStatus: true, AmpStatus: AmpEloLower}

	axes := []AxisState{
		{Moving: true, Homed: true},
		{MotorOff: true},
	}
	d := aggregate(axes, rec)
	require.True(t, d.AnyMoving)
	require.False(t, d.AllMotorsOn)
	require.False(t, d.AllMotorsOff)
	require.False(t, d.AllHomed)
	require.True(t, d.EStop)
	require.Equal(t, StateDisabled, d.State)

	axes = []AxisState{{Homed: true}, {Homed: true}}
	d = aggregate(axes, &Record{})
	require.True(t, d.AllMotorsOn)
	require.True(t, d.AllHomed)
	require.False(t, d.EStop)
	require.Equal(t, StateEnabled, d.State)
}
