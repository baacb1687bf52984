package dmc

import "math"

// Пересчет момента из отсчетов в физические единицы (команда TT):
// обе ширины поля момента используют один масштаб.
const (
	torqueScale     = 9.9982
	torqueFullScale = 32767.0
)

// Calibration - калибровка одной оси, задается конфигурацией.
type Calibration struct {
	CountsPerUnit float64 // отсчетов энкодера на физическую единицу
	Offset        int64   // смещение нуля в отсчетах
	Absolute      bool    // абсолютный энкодер
}

// CountsToUnits переводит отсчеты энкодера в физические единицы.
func CountsToUnits(counts int64, cal Calibration) float64 {
	return (float64(counts) - float64(cal.Offset)) / cal.CountsPerUnit
}

// UnitsToCounts переводит физические единицы в отсчеты энкодера
// (обратное к CountsToUnits, с округлением до ближайшего отсчета).
func UnitsToCounts(value float64, cal Calibration) int64 {
	return int64(math.Round(value*cal.CountsPerUnit)) + cal.Offset
}

// Polarity - полярность концевиков и датчика дома; определяется один раз
// при старте запросами _CN0/_CN1 и дальше не меняется.
type Polarity struct {
	// LimitActiveLow - концевики активны низким уровнем (CN -1, по умолчанию).
	LimitActiveLow bool
	// HomeInverted - значение датчика дома инвертировано (CN ,1).
	HomeInverted bool
}

// AxisState - логическое состояние одной оси; живет между циклами.
type AxisState struct {
	Position      float64 // измеренная позиция, физические единицы
	Velocity      float64 // измеренная скорость, физические единицы
	SetpointPos   float64 // командная позиция
	SetpointTorq  float64 // командный момент (TT)
	Status        uint16
	Switches      uint8
	StopCode      uint8
	StopCodeDelta bool // код останова сменился в этом цикле
	Moving        bool
	MotorOff      bool
	SoftFwdLimit  bool
	SoftRevLimit  bool
	HardFwdLimit  bool
	HardRevLimit  bool
	HomeSwitch    bool
	Homed         bool
	AnalogIn      uint16
	AnalogValue   float64 // аналоговый вход в физических единицах
}

// OperatingState - агрегатное состояние контроллера.
type OperatingState int

const (
	StateDisabled OperatingState = iota
	StateEnabled
	StateFault
)

func (s OperatingState) String() string {
	switch s {
	case StateEnabled:
		return "enabled"
	case StateFault:
		return "fault"
	default:
		return "disabled"
	}
}

// DeviceState - агрегаты по всем осям, обновляются каждый цикл.
type DeviceState struct {
	Header       uint32
	SampleNumber uint16
	ErrorCode    uint8
	AmpStatus    uint32
	EStop        bool
	AnyMoving    bool
	AllMotorsOn  bool
	AllMotorsOff bool
	AllHomed     bool
	State        OperatingState
}

// projectAxis переводит сырую осевую запись в логическое состояние оси.
// prev нужен для детектирования смены кода останова; признак хоуминга
// наследуется из prev, если ни энкодер, ни запись его не определяют.
func projectAxis(raw *RawAxisSample, prev *AxisState, cal Calibration, pol Polarity,
	hasUserVar bool, trackFromRecord bool, analogBitsToVolts float64, analogConv Conversion) AxisState {

	st := AxisState{
		Position:      CountsToUnits(int64(raw.Pos), cal),
		Velocity:      float64(raw.Vel) / cal.CountsPerUnit,
		SetpointPos:   CountsToUnits(int64(raw.RefPos), cal),
		SetpointTorq:  float64(raw.Torque) * torqueScale / torqueFullScale,
		Status:        raw.Status,
		Switches:      raw.Switches,
		StopCode:      raw.StopCode,
		StopCodeDelta: raw.StopCode != prev.StopCode,
		Moving:        raw.Status&StatusMotorMoving != 0,
		MotorOff:      raw.Status&StatusMotorOff != 0,
		SoftFwdLimit:  raw.StopCode == SCFwdLim,
		SoftRevLimit:  raw.StopCode == SCRevLim,
		HardFwdLimit:  pol.LimitActiveLow != (raw.Switches&SwitchFwdLimit != 0),
		HardRevLimit:  pol.LimitActiveLow != (raw.Switches&SwitchRevLimit != 0),
		HomeSwitch:    pol.HomeInverted != (raw.Switches&SwitchHome != 0),
		AnalogIn:      raw.AnalogIn,
	}
	if analogConv.Scale != 0 {
		st.AnalogValue = (analogBitsToVolts*float64(raw.AnalogIn) - analogConv.Offset) / analogConv.Scale
	}

	// Признак хоуминга: абсолютный энкодер приведен всегда; иначе источником
	// служит пользовательское поле записи, когда оно есть и политика
	// разрешает; иначе признак меняют только команды Home/UnHome.
	switch {
	case cal.Absolute:
		st.Homed = true
	case hasUserVar && trackFromRecord:
		st.Homed = raw.UserVar != 0
	default:
		st.Homed = prev.Homed
	}
	return st
}

// aggregate сводит поосевые состояния в агрегаты устройства.
func aggregate(axes []AxisState, rec *Record) DeviceState {
	d := DeviceState{
		Header:       rec.Header,
		SampleNumber: rec.SampleNumber,
		ErrorCode:    rec.ErrorCode,
		AmpStatus:    rec.AmpStatus,
		AllMotorsOn:  true,
		AllMotorsOff: true,
		AllHomed:     true,
	}
	for i := range axes {
		if axes[i].Moving {
			d.AnyMoving = true
		}
		if axes[i].MotorOff {
			d.AllMotorsOn = false
		} else {
			d.AllMotorsOff = false
		}
		if !axes[i].Homed {
			d.AllHomed = false
		}
	}
	if rec.HasAmpStatus {
		d.EStop = rec.AmpStatus&(AmpEloUpper|AmpEloLower) != 0
	}
	if d.AllMotorsOn {
		d.State = StateEnabled
	} else {
		d.State = StateDisabled
	}
	return d
}
