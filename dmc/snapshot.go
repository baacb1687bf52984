package dmc

// AxisSnapshot - опубликованное состояние одной оси за цикл.
type AxisSnapshot struct {
	Channel        string  `json:"channel"`
	Position       float64 `json:"position"`
	Velocity       float64 `json:"velocity"`
	SetpointPos    float64 `json:"setpoint_position"`
	SetpointTorque float64 `json:"setpoint_torque"`
	Status         uint16  `json:"status"`
	Switches       uint8   `json:"switches"`
	StopCode       uint8   `json:"stop_code"`
	Moving         bool    `json:"moving"`
	MotorOff       bool    `json:"motor_off"`
	Homed          bool    `json:"homed"`
	HomeSwitch     bool    `json:"home_switch"`
	HardFwdLimit   bool    `json:"hard_fwd_limit"`
	HardRevLimit   bool    `json:"hard_rev_limit"`
	SoftFwdLimit   bool    `json:"soft_fwd_limit"`
	SoftRevLimit   bool    `json:"soft_rev_limit"`
	AnalogValue    float64 `json:"analog_value"`
}

// Snapshot - опубликованное состояние контроллера после очередного цикла.
type Snapshot struct {
	Robot        string         `json:"robot"`
	Model        uint32         `json:"model"`
	Header       uint32         `json:"header"`
	SampleNumber uint16         `json:"sample_number"`
	ErrorCode    uint8          `json:"error_code"`
	AmpStatus    uint32         `json:"amp_status"`
	State        string         `json:"state"`
	Busy         bool           `json:"busy"`
	Homed        bool           `json:"homed"`
	Homing       bool           `json:"homing"`
	EStop        bool           `json:"estop"`
	MotorPowerOn bool           `json:"motor_power_on"`
	Axes         []AxisSnapshot `json:"axes"`
}

func (c *Controller) snapshotLocked() Snapshot {
	s := Snapshot{
		Robot:        c.cfg.Robot.Name,
		Header:       c.device.Header,
		SampleNumber: c.device.SampleNumber,
		ErrorCode:    c.device.ErrorCode,
		AmpStatus:    c.device.AmpStatus,
		State:        c.device.State.String(),
		Busy:         c.device.AnyMoving,
		Homed:        c.device.AllHomed,
		Homing:       c.homing,
		EStop:        c.device.EStop,
		MotorPowerOn: c.motorPowerOn,
		Axes:         make([]AxisSnapshot, len(c.axes)),
	}
	if c.profile != nil {
		s.Model = c.profile.Model
	}
	for i := range c.axes {
		ax := &c.axes[i]
		s.Axes[i] = AxisSnapshot{
			Channel:        string(c.mapping.AxisLetter(i)),
			Position:       ax.Position,
			Velocity:       ax.Velocity,
			SetpointPos:    ax.SetpointPos,
			SetpointTorque: ax.SetpointTorq,
			Status:         ax.Status,
			Switches:       ax.Switches,
			StopCode:       ax.StopCode,
			Moving:         ax.Moving,
			MotorOff:       ax.MotorOff,
			Homed:          ax.Homed,
			HomeSwitch:     ax.HomeSwitch,
			HardFwdLimit:   ax.HardFwdLimit,
			HardRevLimit:   ax.HardRevLimit,
			SoftFwdLimit:   ax.SoftFwdLimit,
			SoftRevLimit:   ax.SoftRevLimit,
			AnalogValue:    ax.AnalogValue,
		}
	}
	return s
}
